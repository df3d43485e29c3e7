package model

// FileRecord is one uploaded file extracted from a multipart body.
// Headers carries the part's MIME headers with lowercased names; a nil
// Headers map means the part declared none.
type FileRecord struct {
	FieldName string
	FileName  string
	Headers   map[string]string
	Content   []byte
}

// ContentType returns the declared content-type header, or "" when the
// part did not declare one.
func (f FileRecord) ContentType() string {
	return f.Headers["content-type"]
}
