package controllers

import (
	"context"

	"gateway/entity"
	"gateway/normalize"
	"gateway/pkg/resp"
	"gateway/upstream"

	"github.com/gin-gonic/gin"
)

type MenuController struct {
	Upstream *upstream.Client
}

func NewMenuController(client *upstream.Client) *MenuController {
	return &MenuController{Upstream: client}
}

func (mc *MenuController) categories(ctx context.Context) ([]entity.MenuCategory, error) {
	raws, err := mc.Upstream.MenuCategories(ctx)
	if err != nil {
		return nil, err
	}
	return normalize.MenuCategories(raws), nil
}

// GET /menu (public) and GET /admin/menu/categories
func (mc *MenuController) List(c *gin.Context) {
	cats, err := mc.categories(c.Request.Context())
	if err != nil {
		resp.UpstreamError(c, err)
		return
	}
	resp.OK(c, gin.H{"categories": cats})
}

type CategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

// POST /admin/menu/categories
func (mc *MenuController) CreateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	ctx := c.Request.Context()
	if err := mc.Upstream.CreateMenuCategory(ctx, map[string]any{"name": req.Name}); err != nil {
		resp.UpstreamError(c, err)
		return
	}
	// Mutations always re-fetch the full list; the gateway never patches
	// a local copy.
	cats, err := mc.categories(ctx)
	if err != nil {
		resp.UpstreamError(c, err)
		return
	}
	resp.Created(c, gin.H{"categories": cats})
}

// PATCH /admin/menu/categories/:id
func (mc *MenuController) UpdateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	ctx := c.Request.Context()
	if err := mc.Upstream.UpdateMenuCategory(ctx, c.Param("id"), map[string]any{"name": req.Name}); err != nil {
		resp.UpstreamError(c, err)
		return
	}
	cats, err := mc.categories(ctx)
	if err != nil {
		resp.UpstreamError(c, err)
		return
	}
	resp.OK(c, gin.H{"categories": cats})
}

// DELETE /admin/menu/categories/:id
func (mc *MenuController) DeleteCategory(c *gin.Context) {
	ctx := c.Request.Context()
	if err := mc.Upstream.DeleteMenuCategory(ctx, c.Param("id")); err != nil {
		resp.UpstreamError(c, err)
		return
	}
	cats, err := mc.categories(ctx)
	if err != nil {
		resp.UpstreamError(c, err)
		return
	}
	resp.OK(c, gin.H{"categories": cats})
}

type ItemRequest struct {
	CategoryID  string   `json:"categoryId"`
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Price       *float64 `json:"price" binding:"required"`
	IsVeg       bool     `json:"isVeg"`
}

// POST /admin/menu/items
func (mc *MenuController) CreateItem(c *gin.Context) {
	var req ItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if req.CategoryID == "" {
		resp.BadRequest(c, "categoryId is required")
		return
	}
	ctx := c.Request.Context()
	payload := map[string]any{
		"name":        req.Name,
		"description": req.Description,
		"price":       *req.Price,
		"is_veg":      req.IsVeg,
	}
	if err := mc.Upstream.CreateMenuItem(ctx, req.CategoryID, payload); err != nil {
		resp.UpstreamError(c, err)
		return
	}
	cats, err := mc.categories(ctx)
	if err != nil {
		resp.UpstreamError(c, err)
		return
	}
	resp.Created(c, gin.H{"categories": cats})
}

// PATCH /admin/menu/items/:id
func (mc *MenuController) UpdateItem(c *gin.Context) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	ctx := c.Request.Context()
	if err := mc.Upstream.UpdateMenuItem(ctx, c.Param("id"), body); err != nil {
		resp.UpstreamError(c, err)
		return
	}
	cats, err := mc.categories(ctx)
	if err != nil {
		resp.UpstreamError(c, err)
		return
	}
	resp.OK(c, gin.H{"categories": cats})
}

// DELETE /admin/menu/items/:id
func (mc *MenuController) DeleteItem(c *gin.Context) {
	ctx := c.Request.Context()
	if err := mc.Upstream.DeleteMenuItem(ctx, c.Param("id")); err != nil {
		resp.UpstreamError(c, err)
		return
	}
	cats, err := mc.categories(ctx)
	if err != nil {
		resp.UpstreamError(c, err)
		return
	}
	resp.OK(c, gin.H{"categories": cats})
}
