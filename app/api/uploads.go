package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"

	"nuclight.org/feedctl/pkg/entities"
)

// UploadResult is the server's description of a stored file.
type UploadResult struct {
	Filename  string             `json:"filename"`
	URL       string             `json:"url"`
	MediaType entities.MediaKind `json:"media_type"`
	Size      int64              `json:"size"`
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// Upload sends one file as multipart form data. The server validates the
// declared content type and size again on its side; the part's Content-Type
// header is what it looks at, so it is set explicitly here.
func (c *Client) Upload(ctx context.Context, name, contentType string, r io.Reader) (UploadResult, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, quoteEscaper.Replace(name)))
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	if err != nil {
		return UploadResult{}, fmt.Errorf("building multipart body: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return UploadResult{}, fmt.Errorf("reading %s: %w", name, err)
	}
	if err := writer.Close(); err != nil {
		return UploadResult{}, fmt.Errorf("finishing multipart body: %w", err)
	}

	var result UploadResult
	err = c.do(ctx, http.MethodPost, "/uploads/", nil, &body, writer.FormDataContentType(), &result)
	if err != nil {
		return UploadResult{}, fmt.Errorf("uploading %s: %w", name, err)
	}

	return result, nil
}
