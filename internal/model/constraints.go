package model

// Domain constants shared across handler, parser, and uploader packages.
const (
	MaxFileSizeBytes = int64(10_485_760) // 10 MiB per part
)

// extensions is the fixed content-type to extension table. Lookup is
// exact; any content type absent from the table is rejected.
var extensions = map[string]string{
	"image/jpeg":             "jpg",
	"image/png":              "png",
	"text/html":              "html",
	"text/css":               "css",
	"application/javascript": "javascript",
	"application/json":       "json",
}

// ExtensionForContentType returns the storage-key extension for a
// declared content type. The second return value is false when the
// content type is not supported.
func ExtensionForContentType(contentType string) (string, bool) {
	ext, ok := extensions[contentType]
	return ext, ok
}
