// Package fetch wraps plain document retrieval over HTTP. The extractors
// never touch the network themselves; they get raw text from here.
package fetch

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// DefaultTimeout bounds each request; the upstream sources set none of
// their own.
const DefaultTimeout = 30 * time.Second

// Client fetches raw documents.
type Client struct {
	http *resty.Client
}

// New builds a document fetcher. A non-positive timeout falls back to
// DefaultTimeout.
func New(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		http: resty.New().SetTimeout(timeout),
	}
}

// Get retrieves the document at url and returns its body as text. A
// non-2xx status is an error; the caller decides whether to skip or
// abort.
func (c *Client) Get(ctx context.Context, url string) (string, error) {
	resp, err := c.http.R().SetContext(ctx).Get(url)
	if err != nil {
		return "", fmt.Errorf("get %s: %w", url, err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("get %s: unexpected status %s", url, resp.Status())
	}
	return resp.String(), nil
}
