package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewS3Store(t *testing.T) {
	st, err := NewS3Store(context.Background(), S3Config{
		Bucket:    "bucket",
		Region:    "us-east-1",
		Endpoint:  "localhost:9000",
		AccessKey: "x",
		SecretKey: "y",
	})
	require.NoError(t, err)
	require.NotNil(t, st)
	require.NotNil(t, st.client)
	require.Equal(t, "bucket", st.Bucket())

	// an empty bucket is not rejected upfront; the Put call fails instead
	st, err = NewS3Store(context.Background(), S3Config{Region: "us-east-1"})
	require.NoError(t, err)
	require.Equal(t, "", st.Bucket())
}

func TestNewDynamoRecorder(t *testing.T) {
	_, err := NewDynamoRecorder(context.Background(), DynamoConfig{})
	require.Error(t, err)

	rec, err := NewDynamoRecorder(context.Background(), DynamoConfig{
		Table:     "uploads",
		Region:    "us-east-1",
		Endpoint:  "localhost:4566",
		AccessKey: "x",
		SecretKey: "y",
	})
	require.NoError(t, err)
	require.NotNil(t, rec)
	require.NotNil(t, rec.client)
}

func TestWithScheme(t *testing.T) {
	require.Equal(t, "http://localhost:9000", withScheme("localhost:9000"))
	require.Equal(t, "http://localhost:9000", withScheme("http://localhost:9000"))
	require.Equal(t, "https://minio.internal", withScheme("https://minio.internal"))
}

func TestErrorFormatting(t *testing.T) {
	base := errors.New("access denied")

	err := &Error{Op: "put", Bucket: "b", Key: "k.jpg", Err: base}
	require.Equal(t, "storage.put b/k.jpg: access denied", err.Error())
	require.ErrorIs(t, err, base)

	err = &Error{Op: "put", Bucket: "b", Err: base}
	require.Equal(t, "storage.put bucket b: access denied", err.Error())

	err = &Error{Op: "record", Key: "k.jpg", Err: base}
	require.Equal(t, "storage.record object k.jpg: access denied", err.Error())

	err = &Error{Op: "record", Err: base}
	require.Equal(t, "storage.record: access denied", err.Error())
}
