package upstream

import (
	"context"
	"fmt"

	"gateway/normalize"
)

// ListOrders fetches the desk order list. The upstream returns either a
// bare array or {"orders": [...]}.
func (c *Client) ListOrders(ctx context.Context) ([]normalize.Raw, error) {
	v, err := c.getJSON(ctx, "/desk/orders")
	if err != nil {
		return nil, err
	}
	return normalize.List(v, "orders"), nil
}

// OrderDetail fetches one order by id.
func (c *Client) OrderDetail(ctx context.Context, id string) (normalize.Raw, error) {
	v, err := c.getJSON(ctx, fmt.Sprintf("/desk/orders/%s", id))
	if err != nil {
		return nil, err
	}
	return asObject(v), nil
}

// OrderInvoice fetches the invoice for an order. A 2xx answer does not
// guarantee a real invoice: some upstream versions echo order data from
// this endpoint. Callers must check normalize.IsInvoice.
func (c *Client) OrderInvoice(ctx context.Context, id string) (normalize.Raw, error) {
	v, err := c.getJSON(ctx, fmt.Sprintf("/desk/orders/%s/invoice", id))
	if err != nil {
		return nil, err
	}
	return asObject(v), nil
}

// CreateOrderInvoice asks the upstream to issue an invoice for an order.
func (c *Client) CreateOrderInvoice(ctx context.Context, id string, body map[string]any) (normalize.Raw, error) {
	v, err := c.do(ctx, "POST", fmt.Sprintf("/desk/orders/%s/invoice", id), body)
	if err != nil {
		return nil, err
	}
	return asObject(v), nil
}
