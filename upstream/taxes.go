package upstream

import (
	"context"
	"fmt"
	"net/http"

	"gateway/normalize"
)

func (c *Client) ListTaxes(ctx context.Context) ([]normalize.Raw, error) {
	v, err := c.getJSON(ctx, "/admin/taxes")
	if err != nil {
		return nil, err
	}
	return normalize.List(v, "taxes", "data"), nil
}

func (c *Client) CreateTax(ctx context.Context, payload map[string]any) error {
	_, err := c.do(ctx, http.MethodPost, "/admin/taxes", payload)
	return err
}

func (c *Client) UpdateTax(ctx context.Context, id string, payload map[string]any) error {
	_, err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/admin/taxes/%s", id), payload)
	return err
}

func (c *Client) DeleteTax(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/admin/taxes/%s", id), nil)
	return err
}

func (c *Client) ListCharges(ctx context.Context) ([]normalize.Raw, error) {
	v, err := c.getJSON(ctx, "/admin/charges")
	if err != nil {
		return nil, err
	}
	return normalize.List(v, "charges", "data"), nil
}

func (c *Client) CreateCharge(ctx context.Context, payload map[string]any) error {
	_, err := c.do(ctx, http.MethodPost, "/admin/charges", payload)
	return err
}

func (c *Client) UpdateCharge(ctx context.Context, id string, payload map[string]any) error {
	_, err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/admin/charges/%s", id), payload)
	return err
}

func (c *Client) DeleteCharge(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/admin/charges/%s", id), nil)
	return err
}
