package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/skommel/form_uploads/internal/config"
	"github.com/skommel/form_uploads/internal/handler"
	"github.com/skommel/form_uploads/internal/storage"
	"github.com/skommel/form_uploads/internal/uploader"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := config.Load()
	if cfg.Bucket == "" {
		logger.Warn("S3_BUCKET is not set; store operations will fail at request time")
	}

	ctx := context.Background()

	store, err := storage.NewS3Store(ctx, storage.S3Config{
		Bucket:    cfg.Bucket,
		Region:    cfg.Region,
		Endpoint:  cfg.Endpoint,
		AccessKey: cfg.AccessKey,
		SecretKey: cfg.SecretKey,
	})
	if err != nil {
		logger.Error("failed to initialize object storage", "error", err)
		os.Exit(1)
	}

	var recorder storage.MetadataRecorder
	if cfg.MetadataTable != "" {
		rec, err := storage.NewDynamoRecorder(ctx, storage.DynamoConfig{
			Table:     cfg.MetadataTable,
			Region:    cfg.Region,
			Endpoint:  cfg.Endpoint,
			AccessKey: cfg.AccessKey,
			SecretKey: cfg.SecretKey,
		})
		if err != nil {
			logger.Error("failed to initialize metadata recorder", "error", err)
			os.Exit(1)
		}
		recorder = rec
	}

	dispatcher := uploader.New(store, recorder, logger)
	lambda.Start(handler.New(dispatcher, logger).Handle)
}
