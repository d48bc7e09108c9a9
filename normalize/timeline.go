package normalize

import (
	"sort"
	"time"

	"gateway/entity"
)

// Timeline builds the ordered, label-deduplicated event sequence for an
// order. A "Placed" event is seeded from TimePlaced when known; explicit
// upstream events follow; when the upstream supplies none, a single event
// is synthesized from the current status, stamped now.
func Timeline(o entity.Order) []entity.OrderEvent {
	return timelineAt(o, time.Now())
}

func timelineAt(o entity.Order, now time.Time) []entity.OrderEvent {
	events := make([]entity.OrderEvent, 0, len(o.Timeline)+2)

	if !o.TimePlaced.IsZero() {
		events = append(events, entity.OrderEvent{Label: "Placed", At: o.TimePlaced})
	}

	if len(o.Timeline) > 0 {
		events = append(events, o.Timeline...)
	} else if o.Status != "" {
		events = append(events, entity.OrderEvent{Label: entity.StatusLabel(o.Status), At: now})
	}

	// Dedup by label, last write wins. Losing the earlier of two events
	// sharing a label is intentional, not a bug.
	seen := make(map[string]int, len(events))
	unique := events[:0]
	for _, e := range events {
		if i, ok := seen[e.Label]; ok {
			unique[i] = e
			continue
		}
		seen[e.Label] = len(unique)
		unique = append(unique, e)
	}

	sort.SliceStable(unique, func(i, j int) bool {
		return unique[i].At.Before(unique[j].At)
	})
	return unique
}
