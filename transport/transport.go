// Package transport fetches JSON documents over HTTP on behalf of oracle
// clients.
package transport

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Client fetches the JSON document at url, sending header along, and
// decodes it into target. Connection errors, non-2xx statuses and decode
// failures are all reported as errors.
type Client interface {
	GetJSON(ctx context.Context, url string, header http.Header, target any) error
}

// HTTPError is returned when the server answers with a non-2xx status.
type HTTPError struct {
	StatusCode int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("status code %d from request", e.StatusCode)
}

type httpClient struct {
	client *http.Client
}

// NewHTTPClient returns a Client backed by net/http. It is safe for
// concurrent use.
func NewHTTPClient() Client {
	return httpClient{client: &http.Client{}}
}

func (c httpClient) GetJSON(ctx context.Context, url string, header http.Header, target any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to construct request: %w", err)
	}

	for key, values := range header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}

	res, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed making request: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return &HTTPError{StatusCode: res.StatusCode}
	}

	b, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if err := json.Unmarshal(b, target); err != nil {
		return fmt.Errorf("failed to unmarshal response body: %w", err)
	}

	return nil
}
