package fetch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"resty.dev/v3"
)

// Options tunes a Client.
type Options struct {
	Timeout   time.Duration
	Retries   int
	UserAgent string
	Transport http.RoundTripper
}

// Client is a thin wrapper over a resty client.
type Client struct {
	rc *resty.Client
}

// New creates a Client. A zero Timeout means 15 seconds.
func New(opts Options) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = 15 * time.Second
	}
	transport := opts.Transport
	if transport == nil {
		transport = &http.Transport{
			Proxy:               http.ProxyFromEnvironment,
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 4,
			IdleConnTimeout:     90 * time.Second,
		}
	}

	rc := resty.NewWithClient(&http.Client{Transport: transport}).
		SetTimeout(opts.Timeout).
		SetRetryCount(opts.Retries)
	if opts.UserAgent != "" {
		rc.SetHeader("User-Agent", opts.UserAgent)
	}

	return &Client{rc: rc}
}

// Close releases idle connections.
func (c *Client) Close() error {
	return c.rc.Close()
}

// Text fetches url and returns the response body.
func (c *Client) Text(ctx context.Context, url string) (string, error) {
	resp, err := c.rc.R().SetContext(ctx).Get(url)
	if err != nil {
		return "", fmt.Errorf("request to %s failed: %w", url, err)
	}
	if resp.IsError() {
		return "", &StatusError{URL: url, Code: resp.StatusCode()}
	}
	return resp.String(), nil
}

// JSON fetches url and decodes the JSON response into v.
func (c *Client) JSON(ctx context.Context, url string, v any) error {
	resp, err := c.rc.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetResult(v).
		Get(url)
	if err != nil {
		var syntaxErr *json.SyntaxError
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
			return fmt.Errorf("json response parsing failed: %w", err)
		}
		return fmt.Errorf("request to %s failed: %w", url, err)
	}
	if resp.IsError() {
		return &StatusError{URL: url, Code: resp.StatusCode()}
	}
	return nil
}

// Get starts fetching url in the background.
func (c *Client) Get(ctx context.Context, url string) *Pending[string] {
	return Start(func() (string, error) {
		return c.Text(ctx, url)
	})
}

// StatusError reports a non-2xx response.
type StatusError struct {
	URL  string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("request to %s failed: %d %s", e.URL, e.Code, http.StatusText(e.Code))
}
