// Package upstream is the data-access layer for the backing ordering
// API. It plays the role a database repository would: every read decodes
// into loose maps that the normalize package turns canonical, and every
// write forwards JSON as-is. The upstream's schema is not trusted to be
// stable, so nothing here binds to concrete response structs.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

type Client struct {
	base string
	http *http.Client
}

func New(base string) *Client {
	return &Client{
		base: strings.TrimRight(base, "/"),
		http: &http.Client{Timeout: 15 * time.Second},
	}
}

// StatusError is a non-2xx upstream response, carrying the message the
// upstream put in its JSON error body (or the HTTP status line).
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string { return e.Message }

// IsNotFound reports whether err is an upstream 404.
func IsNotFound(err error) bool {
	se, ok := err.(*StatusError)
	return ok && se.Code == http.StatusNotFound
}

// getJSON issues a GET and decodes whatever JSON comes back.
func (c *Client) getJSON(ctx context.Context, path string) (any, error) {
	return c.do(ctx, http.MethodGet, path, nil)
}

// do issues a request with an optional JSON body and decodes the
// response. Transport failures surface as "unable to connect"; non-2xx
// responses surface the upstream's message/error field when it has one.
func (c *Client) do(ctx context.Context, method, path string, body any) (any, error) {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("unable to connect: %w", err)
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("unable to connect: %w", err)
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, &StatusError{Code: res.StatusCode, Message: errorMessage(data, res.Status)}
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		// Mutations sometimes answer with non-JSON bodies; a 2xx is
		// still a success.
		return nil, nil
	}
	return out, nil
}

// errorMessage digs a human message out of an upstream error body,
// falling back to the HTTP status line when the body is not JSON or
// carries no message/error field.
func errorMessage(body []byte, status string) string {
	var m map[string]any
	if err := json.Unmarshal(body, &m); err == nil {
		for _, k := range []string{"message", "error"} {
			if s, ok := m[k].(string); ok && s != "" {
				return s
			}
		}
	}
	return status
}

// asObject coerces a decoded payload into a single JSON object.
func asObject(v any) map[string]any {
	if m, ok := v.(map[string]any); ok {
		return m
	}
	return map[string]any{}
}
