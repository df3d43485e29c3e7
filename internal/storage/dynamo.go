package storage

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/skommel/form_uploads/internal/model"
)

// DynamoConfig holds configuration for the upload metadata table.
type DynamoConfig struct {
	Table     string
	Region    string
	Endpoint  string // custom endpoint for LocalStack; empty for AWS
	AccessKey string
	SecretKey string
}

// DynamoRecorder implements MetadataRecorder against a DynamoDB table.
type DynamoRecorder struct {
	client *dynamodb.Client
	table  string
}

// NewDynamoRecorder creates a metadata recorder for the given table.
func NewDynamoRecorder(ctx context.Context, cfg DynamoConfig) (*DynamoRecorder, error) {
	if cfg.Table == "" {
		return nil, fmt.Errorf("table name is required")
	}

	awsCfg, err := loadAWSConfig(ctx, cfg.Region, cfg.AccessKey, cfg.SecretKey, cfg.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(withScheme(cfg.Endpoint))
		}
	})

	return &DynamoRecorder{client: client, table: cfg.Table}, nil
}

// Record writes one metadata item describing a stored object.
func (r *DynamoRecorder) Record(ctx context.Context, meta model.FileMetadata) error {
	item, err := attributevalue.MarshalMap(meta)
	if err != nil {
		return &Error{Op: "record", Key: meta.Key, Err: err}
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.table),
		Item:      item,
	})
	if err != nil {
		return &Error{Op: "record", Key: meta.Key, Err: err}
	}
	return nil
}
