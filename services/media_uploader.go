package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Uploader stores a file on the external media host and returns its public
// URL. Kept narrow so tests can swap in a fake.
type Uploader interface {
	Upload(ctx context.Context, filename string, file io.Reader) (string, error)
}

// MediaUploader talks to a Cloudinary-style unsigned upload endpoint: one
// multipart POST carrying the file and an upload preset, answered with a
// JSON body containing the secure URL.
type MediaUploader struct {
	uploadURL    string
	uploadPreset string
	client       *http.Client
}

func NewMediaUploader(uploadURL, uploadPreset string, timeout time.Duration) *MediaUploader {
	return &MediaUploader{
		uploadURL:    uploadURL,
		uploadPreset: uploadPreset,
		client:       &http.Client{Timeout: timeout},
	}
}

type uploadResponse struct {
	SecureURL string `json:"secure_url"`
	URL       string `json:"url"`
}

func (u *MediaUploader) Upload(ctx context.Context, filename string, file io.Reader) (string, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", fmt.Errorf("copy file: %w", err)
	}
	if err := writer.WriteField("upload_preset", u.uploadPreset); err != nil {
		return "", fmt.Errorf("write preset field: %w", err)
	}
	if err := writer.WriteField("public_id", uuid.NewString()); err != nil {
		return "", fmt.Errorf("write public_id field: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("close multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.uploadURL, &body)
	if err != nil {
		return "", fmt.Errorf("build upload request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := u.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("media host unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("media host returned %d: %s", resp.StatusCode, snippet)
	}

	var parsed uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decode upload response: %w", err)
	}
	if parsed.SecureURL != "" {
		return parsed.SecureURL, nil
	}
	if parsed.URL != "" {
		return parsed.URL, nil
	}
	return "", fmt.Errorf("upload response carried no url")
}
