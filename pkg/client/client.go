package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client talks to the música API. All methods take a context and make
// exactly one round trip: no retries, no local mutation of results.
type Client struct {
	base string
	hc   *http.Client
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.hc = hc }
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.hc.Timeout = d }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		base: strings.TrimRight(baseURL, "/"),
		hc:   &http.Client{Timeout: 30 * time.Second},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// do performs one request. A non-2xx response becomes an
// HTTPStatusError carrying the body's detail message when present.
// out, when non-nil, receives the decoded success body.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	url := c.base + path

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.hc.Do(req)
	if err != nil {
		return &TransportError{Op: method, URL: url, Err: err}
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return &TransportError{Op: method, URL: url, Err: err}
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return &HTTPStatusError{Status: res.StatusCode, Detail: extraerDetalle(raw)}
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &MalformedResponseError{Reason: err.Error()}
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// extraerDetalle pulls {"detail": ...} out of an error body. Anything
// else falls back to the generic message via HTTPStatusError.Error.
func extraerDetalle(raw []byte) string {
	var e struct {
		Detail string `json:"detail"`
	}
	if json.Unmarshal(raw, &e) == nil && e.Detail != "" {
		return e.Detail
	}
	return ""
}
