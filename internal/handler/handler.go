// Package handler orchestrates one invocation: parse the payload,
// dispatch uploads, and shape the response.
package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/aws/aws-lambda-go/events"

	"github.com/skommel/form_uploads/internal/formdata"
	"github.com/skommel/form_uploads/internal/model"
	"github.com/skommel/form_uploads/internal/uploader"
)

// Handler is the Lambda entry point for upload invocations.
type Handler struct {
	dispatcher *uploader.Dispatcher
	log        *slog.Logger
}

// New creates a handler.
func New(dispatcher *uploader.Dispatcher, log *slog.Logger) *Handler {
	return &Handler{dispatcher: dispatcher, log: log}
}

// Handle processes one invocation. A body with no file parts yields
// 200 without touching storage; a body with files yields 201 once
// every file is stored. Parse and store failures are returned to the
// platform as invocation errors.
func (h *Handler) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	form, err := formdata.Parse(req)
	if err != nil {
		h.log.Error("parse failed", "error", err)
		return events.APIGatewayProxyResponse{}, err
	}

	if len(form.Files) == 0 {
		h.log.Info("no files in form", "fields", len(form.Fields))
		return respond(http.StatusOK, model.NoopResponse{Message: "no files to upload"})
	}

	keys, err := h.dispatcher.Dispatch(ctx, form.Files)
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}

	return respond(http.StatusCreated, model.UploadResponse{Uploaded: len(keys), Keys: keys})
}

func respond(status int, body any) (events.APIGatewayProxyResponse, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return events.APIGatewayProxyResponse{}, fmt.Errorf("marshal response: %w", err)
	}
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(data),
	}, nil
}
