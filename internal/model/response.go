package model

// UploadResponse is returned when at least one file was stored.
type UploadResponse struct {
	Uploaded int      `json:"uploaded"`
	Keys     []string `json:"keys"`
}

// NoopResponse is returned when the form carried no file parts.
type NoopResponse struct {
	Message string `json:"message"`
}
