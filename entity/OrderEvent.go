package entity

import "time"

// OrderEvent is one entry of an order's timeline.
type OrderEvent struct {
	Label string    `json:"label"`
	At    time.Time `json:"at"`
}
