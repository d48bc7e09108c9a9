package entity

import "strings"

// Order statuses as the upstream reports them (upper snake case).
const (
	StatusPlaced         = "PLACED"
	StatusAccepted       = "ACCEPTED"
	StatusPreparing      = "PREPARING"
	StatusReady          = "READY"
	StatusOutForDelivery = "OUT_FOR_DELIVERY"
	StatusCompleted      = "COMPLETED"
	StatusCancelled      = "CANCELLED"
	StatusDelivered      = "DELIVERED"
)

// ActiveStatuses are the queues the kitchen display cares about.
var ActiveStatuses = []string{
	StatusPlaced, StatusAccepted, StatusPreparing, StatusReady, StatusOutForDelivery,
}

func IsActiveStatus(status string) bool {
	s := strings.ToUpper(status)
	for _, a := range ActiveStatuses {
		if s == a {
			return true
		}
	}
	return false
}

// StatusLabel renders a status for display: "OUT_FOR_DELIVERY" -> "Out For Delivery".
func StatusLabel(status string) string {
	words := strings.Split(strings.ToLower(strings.TrimSpace(status)), "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
