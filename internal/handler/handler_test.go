package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/textproto"
	"sync"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/require"

	"github.com/skommel/form_uploads/internal/formdata"
	"github.com/skommel/form_uploads/internal/handler"
	"github.com/skommel/form_uploads/internal/model"
	"github.com/skommel/form_uploads/internal/uploader"
)

type memStore struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func (m *memStore) Put(_ context.Context, key string, body []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[key] = body
	return nil
}

func (m *memStore) Bucket() string { return "uploads" }

func newHandler(store *memStore) *handler.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return handler.New(uploader.New(store, nil, logger), logger)
}

func multipartRequest(t *testing.T, build func(w *multipart.Writer)) events.APIGatewayProxyRequest {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	build(w)
	require.NoError(t, w.Close())

	return events.APIGatewayProxyRequest{
		HTTPMethod: "POST",
		Path:       "/uploads",
		Headers:    map[string]string{"Content-Type": w.FormDataContentType()},
		Body:       buf.String(),
	}
}

func addFile(t *testing.T, w *multipart.Writer, field, name, contentType, content string) {
	t.Helper()

	h := textproto.MIMEHeader{}
	h.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+name+`"`)
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
}

func TestHandleNoFiles(t *testing.T) {
	store := &memStore{objects: make(map[string][]byte)}
	h := newHandler(store)

	req := multipartRequest(t, func(w *multipart.Writer) {
		require.NoError(t, w.WriteField("name", "foo"))
	})

	resp, err := h.Handle(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)
	require.Empty(t, store.objects)

	var body model.NoopResponse
	require.NoError(t, json.Unmarshal([]byte(resp.Body), &body))
	require.NotEmpty(t, body.Message)
}

func TestHandleSingleJPEG(t *testing.T) {
	store := &memStore{objects: make(map[string][]byte)}
	h := newHandler(store)

	req := multipartRequest(t, func(w *multipart.Writer) {
		addFile(t, w, "photo", "photo.jpeg", "image/jpeg", "abc")
	})

	resp, err := h.Handle(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, 201, resp.StatusCode)
	require.Len(t, store.objects, 1)

	for key, content := range store.objects {
		require.Regexp(t, `^[0-9a-f-]{36}\.jpg$`, key)
		require.Equal(t, []byte("abc"), content)
	}

	var body model.UploadResponse
	require.NoError(t, json.Unmarshal([]byte(resp.Body), &body))
	require.Equal(t, 1, body.Uploaded)
	require.Len(t, body.Keys, 1)
}

func TestHandleMultipleFiles(t *testing.T) {
	store := &memStore{objects: make(map[string][]byte)}
	h := newHandler(store)

	req := multipartRequest(t, func(w *multipart.Writer) {
		require.NoError(t, w.WriteField("album", "trip"))
		addFile(t, w, "a", "a.jpeg", "image/jpeg", "111")
		addFile(t, w, "b", "b.png", "image/png", "222")
		addFile(t, w, "c", "c.json", "application/json", "{}")
	})

	resp, err := h.Handle(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, 201, resp.StatusCode)
	require.Len(t, store.objects, 3)
}

func TestHandleUnsupportedSiblingFailsBatch(t *testing.T) {
	store := &memStore{objects: make(map[string][]byte)}
	h := newHandler(store)

	req := multipartRequest(t, func(w *multipart.Writer) {
		addFile(t, w, "ok", "ok.png", "image/png", "fine")
		addFile(t, w, "doc", "doc.pdf", "application/pdf", "nope")
	})

	_, err := h.Handle(context.Background(), req)
	require.ErrorIs(t, err, uploader.ErrUnsupportedContentType)
}

func TestHandleMalformedBody(t *testing.T) {
	store := &memStore{objects: make(map[string][]byte)}
	h := newHandler(store)

	resp, err := h.Handle(context.Background(), events.APIGatewayProxyRequest{
		HTTPMethod: "POST",
		Path:       "/uploads",
		Headers:    map[string]string{"Content-Type": "multipart/form-data; boundary=b"},
		Body:       "--b\r\ngarbage",
	})
	var perr *formdata.ParseError
	require.ErrorAs(t, err, &perr)
	require.Zero(t, resp.StatusCode)
	require.Empty(t, store.objects, "no storage operation before a failed parse")
}
