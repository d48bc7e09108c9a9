package entity

type OrderItem struct {
	Name      string   `json:"name"`
	Quantity  int      `json:"quantity"`
	UnitPrice float64  `json:"unitPrice"`
	Modifiers []string `json:"modifiers"`
	Notes     string   `json:"notes,omitempty"`
}
