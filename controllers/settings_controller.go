package controllers

import (
	"gateway/normalize"
	"gateway/pkg/resp"
	"gateway/upstream"

	"github.com/gin-gonic/gin"
)

type SettingsController struct {
	Upstream *upstream.Client
}

func NewSettingsController(client *upstream.Client) *SettingsController {
	return &SettingsController{Upstream: client}
}

// GET /admin/invoice-settings
func (sc *SettingsController) Get(c *gin.Context) {
	raw, err := sc.Upstream.InvoiceSettings(c.Request.Context())
	if err != nil {
		resp.UpstreamError(c, err)
		return
	}
	resp.OK(c, normalize.InvoiceSettings(raw))
}

// PATCH /admin/invoice-settings
func (sc *SettingsController) Update(c *gin.Context) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	ctx := c.Request.Context()
	if err := sc.Upstream.UpdateInvoiceSettings(ctx, body); err != nil {
		resp.UpstreamError(c, err)
		return
	}
	raw, err := sc.Upstream.InvoiceSettings(ctx)
	if err != nil {
		resp.UpstreamError(c, err)
		return
	}
	resp.OK(c, normalize.InvoiceSettings(raw))
}
