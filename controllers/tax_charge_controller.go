package controllers

import (
	"context"

	"gateway/entity"
	"gateway/normalize"
	"gateway/pkg/resp"
	"gateway/upstream"

	"github.com/gin-gonic/gin"
)

type TaxChargeController struct {
	Upstream *upstream.Client
}

func NewTaxChargeController(client *upstream.Client) *TaxChargeController {
	return &TaxChargeController{Upstream: client}
}

func (tc *TaxChargeController) taxes(ctx context.Context) ([]entity.Tax, error) {
	raws, err := tc.Upstream.ListTaxes(ctx)
	if err != nil {
		return nil, err
	}
	return normalize.Taxes(raws), nil
}

func (tc *TaxChargeController) charges(ctx context.Context) ([]entity.Charge, error) {
	raws, err := tc.Upstream.ListCharges(ctx)
	if err != nil {
		return nil, err
	}
	return normalize.Charges(raws), nil
}

// GET /admin/taxes
func (tc *TaxChargeController) ListTaxes(c *gin.Context) {
	taxes, err := tc.taxes(c.Request.Context())
	if err != nil {
		resp.UpstreamError(c, err)
		return
	}
	resp.OK(c, gin.H{"taxes": taxes})
}

type TaxRequest struct {
	Name  string   `json:"name" binding:"required"`
	Type  string   `json:"type" binding:"required,oneof=PERCENT FIXED"`
	Value *float64 `json:"value" binding:"required"`
}

// POST /admin/taxes
func (tc *TaxChargeController) CreateTax(c *gin.Context) {
	var req TaxRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	ctx := c.Request.Context()
	payload := map[string]any{"name": req.Name, "type": req.Type, "value": *req.Value}
	if err := tc.Upstream.CreateTax(ctx, payload); err != nil {
		resp.UpstreamError(c, err)
		return
	}
	taxes, err := tc.taxes(ctx)
	if err != nil {
		resp.UpstreamError(c, err)
		return
	}
	resp.Created(c, gin.H{"taxes": taxes})
}

// PATCH /admin/taxes/:id handles edits and active toggles. Toggling twice in
// quick succession is safe: the upstream applies the calls in order and
// the final state is whatever the last call asked for.
func (tc *TaxChargeController) UpdateTax(c *gin.Context) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	ctx := c.Request.Context()
	if err := tc.Upstream.UpdateTax(ctx, c.Param("id"), body); err != nil {
		resp.UpstreamError(c, err)
		return
	}
	taxes, err := tc.taxes(ctx)
	if err != nil {
		resp.UpstreamError(c, err)
		return
	}
	resp.OK(c, gin.H{"taxes": taxes})
}

// DELETE /admin/taxes/:id
func (tc *TaxChargeController) DeleteTax(c *gin.Context) {
	ctx := c.Request.Context()
	if err := tc.Upstream.DeleteTax(ctx, c.Param("id")); err != nil {
		resp.UpstreamError(c, err)
		return
	}
	taxes, err := tc.taxes(ctx)
	if err != nil {
		resp.UpstreamError(c, err)
		return
	}
	resp.OK(c, gin.H{"taxes": taxes})
}

// GET /admin/charges
func (tc *TaxChargeController) ListCharges(c *gin.Context) {
	charges, err := tc.charges(c.Request.Context())
	if err != nil {
		resp.UpstreamError(c, err)
		return
	}
	resp.OK(c, gin.H{"charges": charges})
}

type ChargeRequest struct {
	Name      string   `json:"name" binding:"required"`
	Type      string   `json:"type" binding:"required,oneof=PERCENT FIXED"`
	Value     *float64 `json:"value" binding:"required"`
	AppliesTo string   `json:"appliesTo" binding:"omitempty,oneof=ALL DINE_IN TAKEAWAY DELIVERY"`
}

// POST /admin/charges
func (tc *TaxChargeController) CreateCharge(c *gin.Context) {
	var req ChargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if req.AppliesTo == "" {
		req.AppliesTo = entity.AppliesAll
	}
	ctx := c.Request.Context()
	payload := map[string]any{
		"name": req.Name, "type": req.Type, "value": *req.Value, "applies_to": req.AppliesTo,
	}
	if err := tc.Upstream.CreateCharge(ctx, payload); err != nil {
		resp.UpstreamError(c, err)
		return
	}
	charges, err := tc.charges(ctx)
	if err != nil {
		resp.UpstreamError(c, err)
		return
	}
	resp.Created(c, gin.H{"charges": charges})
}

// PATCH /admin/charges/:id
func (tc *TaxChargeController) UpdateCharge(c *gin.Context) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	ctx := c.Request.Context()
	if err := tc.Upstream.UpdateCharge(ctx, c.Param("id"), body); err != nil {
		resp.UpstreamError(c, err)
		return
	}
	charges, err := tc.charges(ctx)
	if err != nil {
		resp.UpstreamError(c, err)
		return
	}
	resp.OK(c, gin.H{"charges": charges})
}

// DELETE /admin/charges/:id
func (tc *TaxChargeController) DeleteCharge(c *gin.Context) {
	ctx := c.Request.Context()
	if err := tc.Upstream.DeleteCharge(ctx, c.Param("id")); err != nil {
		resp.UpstreamError(c, err)
		return
	}
	charges, err := tc.charges(ctx)
	if err != nil {
		resp.UpstreamError(c, err)
		return
	}
	resp.OK(c, gin.H{"charges": charges})
}
