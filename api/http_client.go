// api/http_client.go
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// validator is implemented by response types that check their own shape after decoding.
type validator interface {
	Validate() error
}

// HTTPClient struct to hold base URL and HTTP client configuration
type HTTPClient struct {
	BaseURL    string
	UserAgent  string
	HTTPClient *http.Client
}

// NewHTTPClient creates a new instance of HTTPClient with default settings
func NewHTTPClient(baseURL, userAgent string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		BaseURL:   baseURL,
		UserAgent: userAgent,
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Request makes an HTTP request to the API and decodes the response.
// It returns the response status code. A 204 response is not decoded and
// leaves response untouched. Non-2xx statuses yield a *StatusError and
// undecodable bodies a *DecodeError.
func (c *HTTPClient) Request(ctx context.Context, method, endpoint string, query url.Values, response interface{}) (int, error) {
	u, err := url.Parse(c.BaseURL + endpoint)
	if err != nil {
		return 0, &RequestError{Err: fmt.Errorf("parse url: %w", err)}
	}
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), nil)
	if err != nil {
		return 0, &RequestError{Err: fmt.Errorf("create request: %w", err)}
	}

	req.Header.Set("Accept", "application/json")
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	res, err := c.HTTPClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return res.StatusCode, fmt.Errorf("read response body: %w", err)
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return res.StatusCode, &StatusError{StatusCode: res.StatusCode, Status: res.Status, Body: string(resBody)}
	}

	if res.StatusCode == http.StatusNoContent || response == nil {
		return res.StatusCode, nil
	}

	if err := json.Unmarshal(resBody, response); err != nil {
		return res.StatusCode, &DecodeError{Err: err}
	}
	if v, ok := response.(validator); ok {
		if err := v.Validate(); err != nil {
			return res.StatusCode, &DecodeError{Err: err}
		}
	}

	return res.StatusCode, nil
}
