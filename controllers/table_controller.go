package controllers

import (
	"context"

	"gateway/entity"
	"gateway/normalize"
	"gateway/pkg/resp"
	"gateway/upstream"

	"github.com/gin-gonic/gin"
)

type TableController struct {
	Upstream *upstream.Client
}

func NewTableController(client *upstream.Client) *TableController {
	return &TableController{Upstream: client}
}

func (tc *TableController) tables(ctx context.Context) ([]entity.Table, error) {
	raws, err := tc.Upstream.ListTables(ctx)
	if err != nil {
		return nil, err
	}
	return normalize.Tables(raws), nil
}

// GET /admin/tables
func (tc *TableController) List(c *gin.Context) {
	tables, err := tc.tables(c.Request.Context())
	if err != nil {
		resp.UpstreamError(c, err)
		return
	}
	resp.OK(c, gin.H{"tables": tables})
}

type TableRequest struct {
	TableNumber int `json:"tableNumber" binding:"required,min=1"`
}

// POST /admin/tables
func (tc *TableController) Create(c *gin.Context) {
	var req TableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	ctx := c.Request.Context()

	existing, err := tc.tables(ctx)
	if err != nil {
		resp.UpstreamError(c, err)
		return
	}
	for _, t := range existing {
		if t.TableNumber == req.TableNumber {
			resp.BadRequest(c, "table number already exists")
			return
		}
	}

	if err := tc.Upstream.CreateTable(ctx, map[string]any{"table_number": req.TableNumber}); err != nil {
		resp.UpstreamError(c, err)
		return
	}
	tables, err := tc.tables(ctx)
	if err != nil {
		resp.UpstreamError(c, err)
		return
	}
	resp.Created(c, gin.H{"tables": tables})
}

// PATCH /admin/tables/:id (renumber or toggle active)
func (tc *TableController) Update(c *gin.Context) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	ctx := c.Request.Context()
	if err := tc.Upstream.UpdateTable(ctx, c.Param("id"), body); err != nil {
		resp.UpstreamError(c, err)
		return
	}
	tables, err := tc.tables(ctx)
	if err != nil {
		resp.UpstreamError(c, err)
		return
	}
	resp.OK(c, gin.H{"tables": tables})
}

// DELETE /admin/tables/:id
func (tc *TableController) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	if err := tc.Upstream.DeleteTable(ctx, c.Param("id")); err != nil {
		resp.UpstreamError(c, err)
		return
	}
	tables, err := tc.tables(ctx)
	if err != nil {
		resp.UpstreamError(c, err)
		return
	}
	resp.OK(c, gin.H{"tables": tables})
}
