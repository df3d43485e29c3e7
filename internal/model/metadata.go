package model

// FileMetadata represents a single item in the uploads DynamoDB table.
// The generated storage key is the item's identity.
type FileMetadata struct {
	Key         string `dynamodbav:"key"`
	FileName    string `dynamodbav:"fileName"`
	SizeBytes   int64  `dynamodbav:"sizeBytes"`
	ContentType string `dynamodbav:"contentType"`
	Status      string `dynamodbav:"status"`
	CreatedAt   string `dynamodbav:"createdAt"`
	UpdatedAt   string `dynamodbav:"updatedAt"`
}

// Status constants for FileMetadata.Status.
const (
	StatusUploaded = "UPLOADED"
)
