package entity

import "time"

// Invoice is the canonical bill for an order.
type Invoice struct {
	ID            string      `json:"id"`
	OrderID       string      `json:"orderId"`
	Type          string      `json:"type"`
	TableNumber   string      `json:"tableNumber,omitempty"`
	CustomerName  string      `json:"customerName"`
	Phone         string      `json:"phone"`
	PaymentStatus string      `json:"paymentStatus"`
	Status        string      `json:"status"`
	TimePlaced    time.Time   `json:"timePlaced"`
	PaymentMethod string      `json:"paymentMethod"`
	Subtotal      float64     `json:"subtotal"`
	Taxes         float64     `json:"taxes"`
	Charges       float64     `json:"charges"`
	GrandTotal    float64     `json:"grandTotal"`
	Instructions  string      `json:"instructions,omitempty"`
	Items         []OrderItem `json:"items"`
}

// Detail sources.
const (
	SourceInvoice     = "invoice"
	SourceOrderDetail = "order-detail"
)

// OrderDetailResult is the tagged outcome of a detail lookup: either the
// upstream had a real invoice, or we fell back to the order detail and
// derived the bill from it. Callers branch on Source, not on field
// presence heuristics.
type OrderDetailResult struct {
	Source   string       `json:"source"`
	Invoice  Invoice      `json:"invoice"`
	Timeline []OrderEvent `json:"timeline"`
}
