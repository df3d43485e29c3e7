// Package formdata decodes invocation payloads into form fields and
// uploaded file records.
package formdata

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"strings"

	"github.com/aws/aws-lambda-go/events"

	"github.com/skommel/form_uploads/internal/model"
)

// ParseError reports a body that could not be decoded as multipart
// form-data. No fields or files from a failed parse are usable.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse multipart form: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Form is the decoded payload: named form fields plus file records in
// the order they appear in the body.
type Form struct {
	Fields map[string]string
	Files  []model.FileRecord
}

// Parse decodes the request body as multipart form-data. It settles
// exactly once per invocation: either the full form or a *ParseError.
func Parse(req events.APIGatewayProxyRequest) (*Form, error) {
	mediaType, params, err := mime.ParseMediaType(header(req.Headers, "Content-Type"))
	if err != nil {
		return nil, &ParseError{Err: err}
	}
	if mediaType != "multipart/form-data" {
		return nil, &ParseError{Err: fmt.Errorf("unexpected media type %q", mediaType)}
	}
	boundary := params["boundary"]
	if boundary == "" {
		return nil, &ParseError{Err: fmt.Errorf("content type %q has no boundary", mediaType)}
	}

	body := []byte(req.Body)
	if req.IsBase64Encoded {
		body, err = base64.StdEncoding.DecodeString(req.Body)
		if err != nil {
			return nil, &ParseError{Err: fmt.Errorf("decode base64 body: %w", err)}
		}
	}

	form := &Form{Fields: make(map[string]string)}
	reader := multipart.NewReader(bytes.NewReader(body), boundary)
	for {
		part, err := reader.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &ParseError{Err: err}
		}

		content, err := io.ReadAll(io.LimitReader(part, model.MaxFileSizeBytes+1))
		if err != nil {
			return nil, &ParseError{Err: err}
		}
		if int64(len(content)) > model.MaxFileSizeBytes {
			return nil, &ParseError{Err: fmt.Errorf("part %q exceeds %d bytes", part.FormName(), model.MaxFileSizeBytes)}
		}

		if part.FileName() == "" {
			form.Fields[part.FormName()] = string(content)
			continue
		}

		headers := make(map[string]string, len(part.Header))
		for name, values := range part.Header {
			if len(values) > 0 {
				headers[strings.ToLower(name)] = values[0]
			}
		}
		form.Files = append(form.Files, model.FileRecord{
			FieldName: part.FormName(),
			FileName:  part.FileName(),
			Headers:   headers,
			Content:   content,
		})
	}

	return form, nil
}

// header looks up a request header by name without assuming any
// canonicalization; API Gateway forwards header names as sent.
func header(headers map[string]string, name string) string {
	for k, v := range headers {
		if strings.EqualFold(k, name) {
			return v
		}
	}
	return ""
}
