package cms

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"jobboard/internal/domain"
)

// UploadFile sends one file to the backend's multipart upload endpoint and
// returns its asset descriptor, whose ID can then be attached to records
// such as a job application's resume.
func (c *Client) UploadFile(ctx context.Context, filename string, r io.Reader) (domain.Asset, error) {
	if c == nil || c.http == nil {
		return domain.Asset{}, errors.New("cms: nil client")
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("files", filename)
	if err != nil {
		return domain.Asset{}, fmt.Errorf("cms: build upload: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return domain.Asset{}, fmt.Errorf("cms: read upload: %w", err)
	}
	if err := mw.Close(); err != nil {
		return domain.Asset{}, fmt.Errorf("cms: finalize upload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/upload", &buf)
	if err != nil {
		return domain.Asset{}, fmt.Errorf("cms: build request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	c.authorize(ctx, req)

	resp, err := c.http.Do(req)
	if err != nil {
		return domain.Asset{}, fmt.Errorf("cms: request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return domain.Asset{}, c.failure(ctx, resp, "/api/upload", "Failed to upload file")
	}

	// The upload endpoint answers with a flat array of stored files.
	var assets []domain.Asset
	if err := json.NewDecoder(resp.Body).Decode(&assets); err != nil {
		return domain.Asset{}, fmt.Errorf("cms: decode response: %w", err)
	}
	if len(assets) == 0 {
		return domain.Asset{}, &APIError{Status: resp.StatusCode, Message: "Upload returned no files"}
	}
	return assets[0], nil
}
