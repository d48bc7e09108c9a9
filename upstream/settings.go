package upstream

import (
	"context"
	"net/http"

	"gateway/normalize"
)

func (c *Client) InvoiceSettings(ctx context.Context) (normalize.Raw, error) {
	v, err := c.getJSON(ctx, "/admin/invoice-settings")
	if err != nil {
		return nil, err
	}
	return asObject(v), nil
}

func (c *Client) UpdateInvoiceSettings(ctx context.Context, payload map[string]any) error {
	_, err := c.do(ctx, http.MethodPatch, "/admin/invoice-settings", payload)
	return err
}
