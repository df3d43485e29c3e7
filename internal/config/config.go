package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the upload function.
type Config struct {
	Bucket        string // destination S3 bucket
	MetadataTable string // optional DynamoDB table for upload records
	Region        string
	Endpoint      string // custom S3/DynamoDB endpoint for local stacks
	AccessKey     string
	SecretKey     string
}

// Load reads configuration from environment variables. A missing
// bucket is not fatal here; the store call fails at request time.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return &Config{
		Bucket:        getEnv("S3_BUCKET", ""),
		MetadataTable: getEnv("METADATA_TABLE", ""),
		Region:        getEnv("AWS_REGION", "us-east-1"),
		Endpoint:      getEnv("S3_ENDPOINT", ""),
		AccessKey:     getEnv("S3_ACCESS_KEY", ""),
		SecretKey:     getEnv("S3_SECRET_KEY", ""),
	}
}

// getEnv reads an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
