package upstream

import (
	"context"
	"fmt"
	"net/http"

	"gateway/normalize"
)

func (c *Client) MenuCategories(ctx context.Context) ([]normalize.Raw, error) {
	v, err := c.getJSON(ctx, "/admin/menu/categories")
	if err != nil {
		return nil, err
	}
	return normalize.List(v, "categories", "data"), nil
}

func (c *Client) CreateMenuCategory(ctx context.Context, payload map[string]any) error {
	_, err := c.do(ctx, http.MethodPost, "/admin/menu/categories", payload)
	return err
}

func (c *Client) UpdateMenuCategory(ctx context.Context, id string, payload map[string]any) error {
	_, err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/admin/menu/categories/%s", id), payload)
	return err
}

func (c *Client) DeleteMenuCategory(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/admin/menu/categories/%s", id), nil)
	return err
}

// CreateMenuItem creates an item inside a category; the upstream wants
// the category reference inside the body as category_id.
func (c *Client) CreateMenuItem(ctx context.Context, categoryID string, payload map[string]any) error {
	body := make(map[string]any, len(payload)+1)
	for k, v := range payload {
		body[k] = v
	}
	body["category_id"] = categoryID
	_, err := c.do(ctx, http.MethodPost, "/admin/menu/items", body)
	return err
}

func (c *Client) UpdateMenuItem(ctx context.Context, id string, payload map[string]any) error {
	_, err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/admin/menu/items/%s", id), payload)
	return err
}

func (c *Client) DeleteMenuItem(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/admin/menu/items/%s", id), nil)
	return err
}
