// Package transport is the HTTP client for the photo service: multipart
// uploads with progress reporting plus the list/delete/status calls the
// CLI uses.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/dmitrijs2005/photokeeper/internal/client/models"
)

var (
	// ErrNetwork is a transport-level failure (connection refused, reset,
	// cancelled). The UI should offer a retry.
	ErrNetwork = errors.New("network error")

	// ErrUpload is a non-2xx server response.
	ErrUpload = errors.New("upload rejected")

	// ErrInvalidResponse is a 2xx response whose body could not be
	// parsed into the expected shape.
	ErrInvalidResponse = errors.New("invalid server response")
)

// ProgressFunc observes upload progress as a 0-100 percentage. Reported
// values are monotone; the final call on success reports exactly 100.
type ProgressFunc func(pct int)

// UploadResponse is the server's answer to a successful upload.
type UploadResponse struct {
	URL      string `json:"url"`
	ID       string `json:"id"`
	FileName string `json:"fileName"`
}

// PhotoInfo describes one stored photo in a listing.
type PhotoInfo struct {
	ID           string    `json:"id"`
	FileName     string    `json:"fileName"`
	URL          string    `json:"url"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"lastModified"`
}

// ListResponse is the server's photo listing.
type ListResponse struct {
	Photos []PhotoInfo `json:"photos"`
	Total  int         `json:"total"`
}

// StatusResponse reports whether the server's storage backend is usable.
type StatusResponse struct {
	Configured bool   `json:"configured"`
	Bucket     string `json:"bucket"`
	Endpoint   string `json:"endpoint"`
}

// Client talks to one photo service instance.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a Client for the service at baseURL (no trailing slash
// required).
func New(baseURL string) *Client {
	for len(baseURL) > 0 && baseURL[len(baseURL)-1] == '/' {
		baseURL = baseURL[:len(baseURL)-1]
	}
	return &Client{baseURL: baseURL, httpClient: &http.Client{}}
}

// progressReader counts bytes leaving the body and reports percentages.
type progressReader struct {
	r      io.Reader
	total  int64
	sent   int64
	report func(pct int)
}

func (pr *progressReader) Read(p []byte) (int, error) {
	n, err := pr.r.Read(p)
	if n > 0 && pr.total > 0 {
		pr.sent += int64(n)
		pr.report(int(pr.sent * 100 / pr.total))
	}
	return n, err
}

// Upload sends the processed bytes to the server and returns the durable
// URL. Progress lands both on the photo record and on onProgress (which
// may be nil). Cancelling ctx aborts the in-flight request. On failure
// the photo's progress freezes at its last value; RemoteURL stays empty.
func (c *Client) Upload(ctx context.Context, photo *models.ProcessedPhoto, onProgress ProgressFunc) (string, error) {
	body, contentType, err := encodeMultipart(photo)
	if err != nil {
		return "", err
	}

	pr := &progressReader{
		r:     bytes.NewReader(body),
		total: int64(len(body)),
		report: func(pct int) {
			before := photo.UploadProgress
			photo.SetProgress(pct)
			if onProgress != nil && photo.UploadProgress > before {
				onProgress(photo.UploadProgress)
			}
		},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/photos/upload", pr)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	req.Header.Set("Content-Type", contentType)
	req.ContentLength = int64(len(body))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := resp.Status
		var e struct {
			Error string `json:"error"`
		}
		if json.NewDecoder(resp.Body).Decode(&e) == nil && e.Error != "" {
			msg = fmt.Sprintf("%s: %s", resp.Status, e.Error)
		}
		return "", fmt.Errorf("%w: %s", ErrUpload, msg)
	}

	var result UploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	if result.URL == "" {
		return "", fmt.Errorf("%w: missing url field", ErrInvalidResponse)
	}

	photo.RemoteURL = result.URL
	pr.report(100)
	return result.URL, nil
}

// encodeMultipart builds the upload form: file, originalName, photoId.
func encodeMultipart(photo *models.ProcessedPhoto) ([]byte, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	part, err := w.CreateFormFile("file", photo.File.Name)
	if err != nil {
		return nil, "", fmt.Errorf("encode form: %w", err)
	}
	if _, err := part.Write(photo.File.Data); err != nil {
		return nil, "", fmt.Errorf("encode form: %w", err)
	}
	if err := w.WriteField("originalName", photo.File.Name); err != nil {
		return nil, "", fmt.Errorf("encode form: %w", err)
	}
	if err := w.WriteField("photoId", photo.ID); err != nil {
		return nil, "", fmt.Errorf("encode form: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("encode form: %w", err)
	}

	return buf.Bytes(), w.FormDataContentType(), nil
}

// List fetches the stored photos.
func (c *Client) List(ctx context.Context) (*ListResponse, error) {
	var out ListResponse
	if err := c.getJSON(ctx, "/api/photos", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Status fetches the storage backend status.
func (c *Client) Status(ctx context.Context) (*StatusResponse, error) {
	var out StatusResponse
	if err := c.getJSON(ctx, "/api/photos/status", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes the photo whose storage key contains id.
func (c *Client) Delete(ctx context.Context, id string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+"/api/photos/"+id, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %s", ErrUpload, resp.Status)
	}
	return nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %s", ErrUpload, resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return nil
}
