package controllers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"gateway/pkg/resp"
	"gateway/services"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Orders *services.OrderService
	Export *services.ExportService
}

func NewOrderController(orders *services.OrderService, export *services.ExportService) *OrderController {
	return &OrderController{Orders: orders, Export: export}
}

// filterFromQuery reads the shared list filters:
// ?search= &status=PLACED,READY &type=DINE_IN &from=2024-01-19 &to=2024-01-20
// The date range is inclusive on both ends, whole days.
func filterFromQuery(c *gin.Context) services.OrderFilter {
	f := services.OrderFilter{
		Search: c.Query("search"),
		Type:   c.Query("type"),
	}
	if s := c.Query("status"); s != "" {
		for _, part := range strings.Split(s, ",") {
			if part = strings.TrimSpace(part); part != "" {
				f.Statuses = append(f.Statuses, part)
			}
		}
	}
	if from := c.Query("from"); from != "" {
		if t, err := time.Parse("2006-01-02", from); err == nil {
			f.From = t
		}
	}
	if to := c.Query("to"); to != "" {
		if t, err := time.Parse("2006-01-02", to); err == nil {
			f.To = t.Add(24*time.Hour - time.Millisecond)
		}
	}
	return f
}

// GET /desk/orders
func (oc *OrderController) List(c *gin.Context) {
	orders, err := oc.Orders.List(c.Request.Context())
	if err != nil {
		resp.UpstreamError(c, err)
		return
	}
	filtered := services.FilterOrders(orders, filterFromQuery(c))
	resp.OK(c, gin.H{"orders": filtered})
}

// GET /desk/orders/grouped
func (oc *OrderController) ListGrouped(c *gin.Context) {
	orders, err := oc.Orders.List(c.Request.Context())
	if err != nil {
		resp.UpstreamError(c, err)
		return
	}
	filtered := services.FilterOrders(orders, filterFromQuery(c))
	resp.OK(c, gin.H{"groups": services.GroupOrdersByDay(filtered)})
}

// GET /desk/orders/:id
func (oc *OrderController) Detail(c *gin.Context) {
	result, err := oc.Orders.Detail(c.Request.Context(), c.Param("id"))
	if err != nil {
		resp.UpstreamError(c, err)
		return
	}
	resp.OK(c, result)
}

// GET /desk/orders/:id/invoice
func (oc *OrderController) Invoice(c *gin.Context) {
	inv, ok, err := oc.Orders.Invoice(c.Request.Context(), c.Param("id"))
	if err != nil {
		resp.UpstreamError(c, err)
		return
	}
	if !ok {
		resp.NotFound(c, "order has no invoice yet")
		return
	}
	resp.OK(c, inv)
}

// POST /desk/orders/:id/invoice
func (oc *OrderController) CreateInvoice(c *gin.Context) {
	var body map[string]any
	// Empty bodies are fine; the upstream bills from its own data.
	_ = c.ShouldBindJSON(&body)

	inv, err := oc.Orders.CreateInvoice(c.Request.Context(), c.Param("id"), body)
	if err != nil {
		resp.UpstreamError(c, err)
		return
	}
	resp.Created(c, inv)
}

// GET /desk/orders/export serves a CSV of invoices for the filtered orders.
// Orders whose invoice fetch failed are listed in X-Failed-Orders so the
// body can stay a plain file.
func (oc *OrderController) ExportCSV(c *gin.Context) {
	orders, err := oc.Orders.List(c.Request.Context())
	if err != nil {
		resp.UpstreamError(c, err)
		return
	}
	filtered := services.FilterOrders(orders, filterFromQuery(c))

	result := oc.Export.CollectInvoices(c.Request.Context(), filtered)
	if len(result.Rows) == 0 && len(result.Failed) == 0 {
		resp.NotFound(c, "no invoices found for the current filters")
		return
	}

	name := fmt.Sprintf("invoices-%s.csv", time.Now().Format("2006-01-02"))
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename=%q`, name))
	if len(result.Failed) > 0 {
		c.Header("X-Failed-Orders", strings.Join(result.Failed, ","))
	}
	c.Status(http.StatusOK)
	if err := oc.Export.WriteCSV(c.Writer, result.Rows); err != nil {
		// Headers are gone already; nothing better to do than log via gin.
		_ = c.Error(err)
	}
}
