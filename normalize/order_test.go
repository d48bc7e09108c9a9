package normalize

import (
	"testing"
	"time"

	"gateway/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderSnakeAndCamelShapesAgree(t *testing.T) {
	snake := Raw{
		"order_id":       "1045",
		"order_status":   "preparing",
		"order_type":     "DINE_IN",
		"customer_name":  "Anita",
		"customer_phone": "555-0101",
		"table_number":   "4",
		"payment_status": "Paid",
		"payment_method": "card",
		"created_at":     "2024-01-19T12:35:00Z",
		"amount":         520.0,
		"order_items": []any{
			map[string]any{"item_name": "Paneer Tikka", "qty": 2.0, "single_price": 260.0},
		},
	}
	camel := Raw{
		"orderId":       "1045",
		"status":        "PREPARING",
		"orderType":     "DINE_IN",
		"customerName":  "Anita",
		"phone":         "555-0101",
		"tableNumber":   "4",
		"paymentStatus": "Paid",
		"paymentMethod": "card",
		"timePlaced":    "2024-01-19T12:35:00Z",
		"total":         520.0,
		"items": []any{
			map[string]any{"name": "Paneer Tikka", "quantity": 2.0, "price": 260.0},
		},
	}

	assert.Equal(t, Order(camel), Order(snake))
}

func TestOrderDefaults(t *testing.T) {
	o := Order(Raw{"id": "9"})
	assert.Equal(t, entity.StatusPlaced, o.Status)
	assert.Equal(t, entity.TypeDineIn, o.Type)
	assert.Equal(t, entity.PaymentPending, o.PaymentStatus)
	assert.Empty(t, o.Items)
	assert.True(t, o.TimePlaced.IsZero())
}

func TestOrderStatusUpperCased(t *testing.T) {
	assert.Equal(t, "OUT_FOR_DELIVERY", Order(Raw{"status": "out_for_delivery"}).Status)
}

func TestItemSingleStringModifier(t *testing.T) {
	it := Item(Raw{"name": "Masala Chai", "qty": 1.0, "price": 60.0, "modifier": "less sugar"})
	assert.Equal(t, []string{"less sugar"}, it.Modifiers)
}

func TestOrderSubtotal(t *testing.T) {
	o := entity.Order{Items: []entity.OrderItem{
		{Quantity: 2, UnitPrice: 260},
		{Quantity: 1, UnitPrice: 80},
	}}
	assert.Equal(t, 600.0, o.Subtotal())
}

func TestIsInvoiceRequiresInvoiceNumber(t *testing.T) {
	assert.True(t, IsInvoice(Raw{"invoice_number": "INV-1045"}))
	assert.True(t, IsInvoice(Raw{"invoiceNumber": "INV-1045"}))
	assert.False(t, IsInvoice(Raw{"id": "1045", "status": "COMPLETED", "total": 520.0}))
}

func TestInvoiceFallsBackToOrderFields(t *testing.T) {
	order := entity.Order{
		ID:           "1045",
		Type:         entity.TypeDineIn,
		CustomerName: "Anita",
		Phone:        "555-0101",
		TimePlaced:   time.Date(2024, 1, 19, 12, 35, 0, 0, time.UTC),
		Items: []entity.OrderItem{
			{Name: "Paneer Tikka", Quantity: 2, UnitPrice: 260},
		},
	}
	inv := Invoice(Raw{"invoice_number": "INV-1045", "grand_total": 546.0}, order)

	assert.Equal(t, "INV-1045", inv.ID)
	assert.Equal(t, "1045", inv.OrderID)
	assert.Equal(t, "Anita", inv.CustomerName)
	assert.Equal(t, "555-0101", inv.Phone)
	assert.Equal(t, order.TimePlaced, inv.TimePlaced)
	assert.Equal(t, 546.0, inv.GrandTotal)
	require.Len(t, inv.Items, 1)
	assert.Equal(t, 520.0, inv.Subtotal)
}

func TestInvoiceFromOrderRecomputesGrandTotal(t *testing.T) {
	o := entity.Order{
		ID:     "88",
		Status: entity.StatusPreparing,
		Items: []entity.OrderItem{
			{Quantity: 3, UnitPrice: 100},
			{Quantity: 1, UnitPrice: 45},
		},
	}
	inv := InvoiceFromOrder(o)
	assert.Equal(t, 345.0, inv.Subtotal)
	assert.Equal(t, 345.0, inv.GrandTotal)

	o.Total = 360
	assert.Equal(t, 360.0, InvoiceFromOrder(o).GrandTotal)
}
