package otp

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// doGet issues one synchronous GET and returns the body and status code.
// The body is returned for non-200 statuses too: the planner reports its
// errors as JSON on error statuses and the caller decides. No retries; a
// failed or error-bearing response surfaces to the caller as-is.
func (c *Connection) doGet(ctx context.Context, url string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("failed to read response from %s: %w", url, err)
	}
	return body, resp.StatusCode, nil
}

// doGetOK is doGet with a 200 guard, for endpoints that never carry a
// useful error body.
func (c *Connection) doGetOK(ctx context.Context, url string) ([]byte, error) {
	body, status, err := c.doGet(ctx, url)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d from %s", status, url)
	}
	return body, nil
}
