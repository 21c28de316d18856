package infra

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// MediaClient proxies image/video uploads to the external media host.
// The host is an opaque HTTP collaborator: POST multipart, get back a
// public URL. Files are renamed to a uuid so original names never leak.
type MediaClient struct {
	baseURL string
	http    *http.Client
}

func NewMediaClient(baseURL string) *MediaClient {
	return &MediaClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// UploadImage streams an image to the media host and returns its public URL.
func (c *MediaClient) UploadImage(ctx context.Context, filename string, r io.Reader) (string, error) {
	return c.upload(ctx, "/images", filename, r)
}

// UploadVideo streams a video to the media host and returns its public URL.
func (c *MediaClient) UploadVideo(ctx context.Context, filename string, r io.Reader) (string, error) {
	return c.upload(ctx, "/videos", filename, r)
}

func (c *MediaClient) upload(ctx context.Context, path, filename string, r io.Reader) (string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	name := uuid.NewString() + filepath.Ext(filename)
	part, err := mw.CreateFormFile("file", name)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, r); err != nil {
		return "", err
	}
	if err := mw.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("media host: status %d", resp.StatusCode)
	}

	var out struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("media host: decode response: %w", err)
	}
	if out.URL == "" {
		return "", fmt.Errorf("media host: empty url in response")
	}
	return out.URL, nil
}
