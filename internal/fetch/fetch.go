// Package fetch retrieves page and image bytes over HTTP.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/transform"
)

const (
	// DefaultTimeout bounds a single request when the caller sets nothing.
	DefaultTimeout = 30 * time.Second

	defaultUserAgent = "pagelens/1.0 (+https://github.com/jkorri/pagelens)"
)

// StatusError reports a non-success HTTP status. It keeps the status code
// available so the boundary can word the user-facing message.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d for %s", e.StatusCode, e.URL)
}

// Client wraps http.Client with a per-request timeout and user agent.
// The same client fetches HTML pages and gallery images, so it applies no
// scheme or content-type gating; a malformed URL simply fails at request
// time. Each analysis cycle is one synchronous call, no retries.
type Client struct {
	HTTPClient *http.Client
	UserAgent  string
	// PerRequestTimeout bounds each request. Zero means DefaultTimeout.
	PerRequestTimeout time.Duration
	// MaxBodyBytes caps the response body read. Zero means unlimited.
	MaxBodyBytes int64
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

func (c *Client) timeout() time.Duration {
	if c.PerRequestTimeout > 0 {
		return c.PerRequestTimeout
	}
	return DefaultTimeout
}

// Get issues a GET with context and user agent and returns the body bytes
// and Content-Type. Any transport failure or non-2xx status is an error.
func (c *Client) Get(ctx context.Context, url string) ([]byte, string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout())
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", fmt.Errorf("new request: %w", err)
	}
	ua := c.UserAgent
	if ua == "" {
		ua = defaultUserAgent
	}
	req.Header.Set("User-Agent", ua)

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("get %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, "", &StatusError{URL: url, StatusCode: resp.StatusCode}
	}

	var r io.Reader = resp.Body
	if c.MaxBodyBytes > 0 {
		r = io.LimitReader(resp.Body, c.MaxBodyBytes)
	}
	body, err := io.ReadAll(r)
	if err != nil {
		return nil, "", fmt.Errorf("read body: %w", err)
	}
	return body, resp.Header.Get("Content-Type"), nil
}

// DecodeHTML converts raw page bytes to UTF-8 using the apparent encoding:
// the Content-Type charset when present, otherwise BOM and meta sniffing.
// When detection or decoding fails the raw bytes are returned unchanged,
// which keeps ASCII-compatible pages usable.
func DecodeHTML(body []byte, contentType string) []byte {
	enc, _, _ := charset.DetermineEncoding(body, contentType)
	if enc == nil {
		return body
	}
	decoded, _, err := transform.Bytes(enc.NewDecoder(), body)
	if err != nil {
		return body
	}
	return decoded
}

// GetHTML fetches a page and decodes it to UTF-8 in one step.
func (c *Client) GetHTML(ctx context.Context, url string) ([]byte, error) {
	body, ct, err := c.Get(ctx, url)
	if err != nil {
		return nil, err
	}
	return DecodeHTML(body, ct), nil
}
