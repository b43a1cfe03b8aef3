package integrations

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/matzehuels/surepatch/pkg/errors"
	"github.com/matzehuels/surepatch/pkg/observability"
)

// Client provides shared HTTP functionality for registry and backend clients.
type Client struct {
	http    *http.Client
	headers map[string]string
}

// NewClient creates a Client with the given default headers.
// Headers are applied to all requests made through this client.
// Pass nil for headers if no default headers are needed.
func NewClient(headers map[string]string) *Client {
	return &Client{
		http:    NewHTTPClient(),
		headers: headers,
	}
}

// SetHTTPClient replaces the underlying HTTP client (tests, proxies).
func (c *Client) SetHTTPClient(h *http.Client) {
	c.http = h
}

// SetHeader sets a default header for all subsequent requests.
func (c *Client) SetHeader(key, value string) {
	if c.headers == nil {
		c.headers = make(map[string]string)
	}
	c.headers[key] = value
}

// Get performs an HTTP GET request and JSON-decodes the response into v.
func (c *Client) Get(ctx context.Context, url string, v any) error {
	return c.Do(ctx, http.MethodGet, url, nil, nil, v)
}

// Do sends a request with an optional JSON body and decodes a JSON response
// into v. Either in or v may be nil. Request-specific headers override
// client defaults for the same key.
func (c *Client) Do(ctx context.Context, method, url string, headers map[string]string, in, v any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "encode %s request", method)
		}
		body = bytes.NewReader(data)
	}

	rc, err := c.doRequest(ctx, method, url, headers, body)
	if err != nil {
		return err
	}
	defer rc.Close()

	if v == nil {
		_, _ = io.Copy(io.Discard, rc)
		return nil
	}
	if err := json.NewDecoder(rc).Decode(v); err != nil {
		return errors.Wrap(errors.ErrCodeNetwork, err, "decode response from %s", url)
	}
	return nil
}

func (c *Client) doRequest(ctx context.Context, method, rawURL string, headers map[string]string, body io.Reader) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "build request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	host, path := splitURL(req.URL)
	hooks := observability.HTTP()
	hooks.OnRequest(ctx, method, host, path)
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		hooks.OnError(ctx, method, host, path, err)
		return nil, errors.Wrap(errors.ErrCodeNetwork, err, "%s %s", method, path)
	}
	hooks.OnResponse(ctx, method, host, path, resp.StatusCode, time.Since(start))

	if err := checkStatus(resp); err != nil {
		resp.Body.Close()
		return nil, err
	}
	return resp.Body, nil
}

func splitURL(u *url.URL) (host, path string) {
	if u == nil {
		return "", ""
	}
	return u.Host, u.Path
}

// checkStatus maps non-2xx responses to coded errors. A short plain-text
// or JSON {"message": ...} body is included in the error message.
func checkStatus(resp *http.Response) error {
	code := resp.StatusCode
	if code >= 200 && code < 300 {
		return nil
	}

	msg := http.StatusText(code)
	if detail := readDetail(resp.Body); detail != "" {
		msg = detail
	}

	switch {
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return errors.New(errors.ErrCodeUnauthorized, "status %d: %s", code, msg)
	case code == http.StatusNotFound:
		return errors.New(errors.ErrCodeNotFound, "status %d: %s", code, msg)
	case code == http.StatusConflict:
		return errors.New(errors.ErrCodeAlreadyExists, "status %d: %s", code, msg)
	case code == http.StatusBadRequest || code == http.StatusUnprocessableEntity:
		return errors.New(errors.ErrCodeInvalidInput, "status %d: %s", code, msg)
	default:
		return errors.New(errors.ErrCodeNetwork, "status %d: %s", code, msg)
	}
}

func readDetail(r io.Reader) string {
	if r == nil {
		return ""
	}
	data, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil || len(data) == 0 {
		return ""
	}
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if json.Unmarshal(data, &payload) == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Error != "" {
			return payload.Error
		}
		return ""
	}
	return string(bytes.TrimSpace(data))
}
