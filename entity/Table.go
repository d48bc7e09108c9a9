package entity

import "time"

type Table struct {
	ID          string    `json:"id"`
	TableNumber int       `json:"tableNumber"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	QRCodeURL   string    `json:"qrCodeUrl,omitempty"`
}
