package entity

import "time"

// Order is the canonical view of an upstream order, whatever field names
// the upstream happened to use.
type Order struct {
	ID            string       `json:"id"`
	Type          string       `json:"type"`
	TableNumber   string       `json:"tableNumber,omitempty"`
	CustomerName  string       `json:"customerName"`
	Phone         string       `json:"phone"`
	Status        string       `json:"status"`
	PaymentStatus string       `json:"paymentStatus"`
	PaymentMethod string       `json:"paymentMethod"`
	TimePlaced    time.Time    `json:"timePlaced"`
	Instructions  string       `json:"instructions"`
	Discount      float64      `json:"discount"`
	Taxes         float64      `json:"taxes"`
	Charges       float64      `json:"charges"`
	Total         float64      `json:"total"`
	Items         []OrderItem  `json:"items"`
	Timeline      []OrderEvent `json:"timeline"`
}

// Subtotal recomputes sum(quantity × unitPrice) from the items. Used when
// the upstream does not supply one; never reconciled against Total.
func (o Order) Subtotal() float64 {
	sum := 0.0
	for _, it := range o.Items {
		sum += float64(it.Quantity) * it.UnitPrice
	}
	return sum
}
