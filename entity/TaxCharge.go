package entity

// Tax/charge value types.
const (
	ValuePercent = "PERCENT"
	ValueFixed   = "FIXED"
)

// AppliesTo scopes: "ALL" or one of the order types.
const AppliesAll = "ALL"

type Tax struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Type     string  `json:"type"`
	Value    float64 `json:"value"`
	IsActive bool    `json:"isActive"`
}

type Charge struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Type      string  `json:"type"`
	Value     float64 `json:"value"`
	AppliesTo string  `json:"appliesTo"`
	IsActive  bool    `json:"isActive"`
}
