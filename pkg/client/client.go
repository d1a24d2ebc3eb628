// Package client provides a Go HTTP client for programmatic access to
// the notak API.
//
// [Client] mirrors the server's endpoint structure with strongly-typed
// methods over the same [github.com/notak/notak/pkg/models] entities the
// server serializes, so the contract cannot drift between the two sides.
//
// Every failed request yields an *[APIError] carrying the HTTP status
// and the server's error message, so callers get an inspectable outcome
// for each call rather than an opaque failure: a 404 is distinguishable
// from a validation error or a server fault with [errors.As] or the
// [IsNotFound] helper. Network-level failures are returned as ordinary
// wrapped errors.
//
// The client is safe for concurrent use by multiple goroutines.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/notak/notak/pkg/models"
)

// APIError is a non-2xx response from the notak API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: status=%d message=%s", e.StatusCode, e.Message)
}

// IsNotFound reports whether err is an APIError with status 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// Client provides typed access to the notak REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new notak API client.
//
// The baseURL should include the protocol and host (e.g.
// "http://localhost:8080") without a trailing slash or API path prefix.
// The client uses a 30-second request timeout.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// doRequest performs an HTTP request with proper headers.
func (c *Client) doRequest(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	return c.httpClient.Do(req)
}

// decodeResponse decodes the JSON response into target, or returns an
// *APIError for non-2xx statuses.
func decodeResponse(resp *http.Response, target any) error {
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var body struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
			apiErr.Message = body.Error
		}
		return apiErr
	}

	if target != nil && resp.StatusCode != http.StatusNoContent {
		if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// Health checks the health status of the server.
func (c *Client) Health(ctx context.Context) (map[string]string, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/api/health", nil)
	if err != nil {
		return nil, err
	}

	var result map[string]string
	if err := decodeResponse(resp, &result); err != nil {
		return nil, err
	}

	return result, nil
}

// ListNotes retrieves all notes, newest first.
func (c *Client) ListNotes(ctx context.Context) ([]*models.Note, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/api/notes", nil)
	if err != nil {
		return nil, err
	}

	var result []*models.Note
	if err := decodeResponse(resp, &result); err != nil {
		return nil, err
	}

	return result, nil
}

// GetNote retrieves a note by ID.
func (c *Client) GetNote(ctx context.Context, id models.NoteID) (*models.Note, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, fmt.Sprintf("/api/notes/%s", id), nil)
	if err != nil {
		return nil, err
	}

	var result models.Note
	if err := decodeResponse(resp, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// CreateNote creates a new note with the given title and content.
func (c *Client) CreateNote(ctx context.Context, title, content string) (*models.Note, error) {
	body := map[string]string{"title": title, "content": content}
	resp, err := c.doRequest(ctx, http.MethodPost, "/api/notes", body)
	if err != nil {
		return nil, err
	}

	var result models.Note
	if err := decodeResponse(resp, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// UpdateNote replaces title and content of an existing note.
func (c *Client) UpdateNote(ctx context.Context, id models.NoteID, title, content string) (*models.Note, error) {
	body := map[string]string{"title": title, "content": content}
	resp, err := c.doRequest(ctx, http.MethodPut, fmt.Sprintf("/api/notes/%s", id), body)
	if err != nil {
		return nil, err
	}

	var result models.Note
	if err := decodeResponse(resp, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// DeleteNote deletes a note by ID.
func (c *Client) DeleteNote(ctx context.Context, id models.NoteID) error {
	resp, err := c.doRequest(ctx, http.MethodDelete, fmt.Sprintf("/api/notes/%s", id), nil)
	if err != nil {
		return err
	}

	return decodeResponse(resp, nil)
}
