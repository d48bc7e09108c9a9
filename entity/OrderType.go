package entity

// Order types.
const (
	TypeDineIn   = "DINE_IN"
	TypeTakeaway = "TAKEAWAY"
	TypeDelivery = "DELIVERY"
)

// Payment statuses.
const (
	PaymentPaid    = "Paid"
	PaymentPending = "Pending"
)
