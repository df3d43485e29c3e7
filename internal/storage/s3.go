package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Config holds configuration for S3-compatible object storage.
type S3Config struct {
	Bucket    string
	Region    string
	Endpoint  string // custom endpoint for MinIO / LocalStack; empty for AWS
	AccessKey string
	SecretKey string
}

// S3Store implements ObjectStore using AWS S3 or an S3-compatible
// endpoint such as MinIO.
type S3Store struct {
	client *s3.Client
	config S3Config
}

// NewS3Store creates an S3 object store. The bucket is not validated
// here; an absent or wrong bucket surfaces as a backend error on Put.
func NewS3Store(ctx context.Context, cfg S3Config) (*S3Store, error) {
	awsCfg, err := loadAWSConfig(ctx, cfg.Region, cfg.AccessKey, cfg.SecretKey, cfg.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(withScheme(cfg.Endpoint))
			o.UsePathStyle = true // required for MinIO
		}
	})

	return &S3Store{client: client, config: cfg}, nil
}

// Put uploads body to the configured bucket under key.
func (s *S3Store) Put(ctx context.Context, key string, body []byte) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.config.Bucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader(body),
	})
	if err != nil {
		return &Error{Op: "put", Bucket: s.config.Bucket, Key: key, Err: err}
	}
	return nil
}

// Bucket returns the destination bucket name.
func (s *S3Store) Bucket() string {
	return s.config.Bucket
}

// loadAWSConfig builds an aws.Config, switching to static credentials
// when a custom endpoint is configured.
func loadAWSConfig(ctx context.Context, region, accessKey, secretKey, endpoint string) (aws.Config, error) {
	if endpoint != "" {
		return awsconfig.LoadDefaultConfig(ctx,
			awsconfig.WithRegion(region),
			awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(accessKey, secretKey, "")),
		)
	}
	return awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
}

// withScheme prefixes http:// when the endpoint carries no scheme.
func withScheme(endpoint string) string {
	if strings.HasPrefix(endpoint, "http://") || strings.HasPrefix(endpoint, "https://") {
		return endpoint
	}
	return "http://" + endpoint
}
