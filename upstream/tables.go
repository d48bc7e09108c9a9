package upstream

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"gateway/normalize"
)

// The upstream exposes two incompatible table endpoints: /admin/tables
// and the legacy /admin/table. Which one is authoritative is an open
// question on the upstream contract, so every verb tries the primary
// path and falls back to the legacy one on 404 or connection failure.
const (
	tablesPath       = "/admin/tables"
	tablesLegacyPath = "/admin/table"
)

func (c *Client) tableFallback(ctx context.Context, run func(path string) (any, error)) (any, error) {
	v, err := run(tablesPath)
	if err == nil {
		return v, nil
	}
	var se *StatusError
	if IsNotFound(err) || !errors.As(err, &se) {
		return run(tablesLegacyPath)
	}
	return nil, err
}

func (c *Client) ListTables(ctx context.Context) ([]normalize.Raw, error) {
	v, err := c.tableFallback(ctx, func(path string) (any, error) {
		return c.getJSON(ctx, path)
	})
	if err != nil {
		return nil, err
	}
	return normalize.List(v, "tables", "data"), nil
}

func (c *Client) CreateTable(ctx context.Context, payload map[string]any) error {
	_, err := c.tableFallback(ctx, func(path string) (any, error) {
		return c.do(ctx, http.MethodPost, path, payload)
	})
	return err
}

func (c *Client) UpdateTable(ctx context.Context, id string, payload map[string]any) error {
	_, err := c.tableFallback(ctx, func(path string) (any, error) {
		return c.do(ctx, http.MethodPatch, fmt.Sprintf("%s/%s", path, id), payload)
	})
	return err
}

func (c *Client) DeleteTable(ctx context.Context, id string) error {
	_, err := c.tableFallback(ctx, func(path string) (any, error) {
		return c.do(ctx, http.MethodDelete, fmt.Sprintf("%s/%s", path, id), nil)
	})
	return err
}
