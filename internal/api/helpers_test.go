package api

import (
	"bytes"
	"io"
	"mime/multipart"
	"testing"
)

// newMultipartImage writes a single-file multipart body into buf and
// returns the Content-Type header value for the request.
func newMultipartImage(t *testing.T, buf *bytes.Buffer, filename, content string) string {
	t.Helper()

	writer := multipart.NewWriter(buf)
	part, err := writer.CreateFormFile("image", filename)
	if err != nil {
		t.Fatalf("Failed to create form file: %v", err)
	}
	if _, err := io.WriteString(part, content); err != nil {
		t.Fatalf("Failed to write form file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Failed to close multipart writer: %v", err)
	}
	return writer.FormDataContentType()
}
