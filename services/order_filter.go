package services

import (
	"sort"
	"strings"
	"time"

	"gateway/entity"
)

// OrderFilter is the criteria set shared by the orders and invoices list
// views: free text over id/phone/customer, status-set membership, exact
// order type, inclusive date range on time placed.
type OrderFilter struct {
	Search   string
	Statuses []string
	Type     string
	From     time.Time
	To       time.Time
}

// FilterOrders applies the criteria. Pure: the input slice is never
// mutated, zero-value fields match everything.
func FilterOrders(orders []entity.Order, f OrderFilter) []entity.Order {
	search := strings.ToLower(strings.TrimSpace(f.Search))
	out := make([]entity.Order, 0, len(orders))

	for _, o := range orders {
		if search != "" {
			hit := strings.Contains(strings.ToLower(o.ID), search) ||
				strings.Contains(strings.ToLower(o.Phone), search) ||
				strings.Contains(strings.ToLower(o.CustomerName), search)
			if !hit {
				continue
			}
		}
		if len(f.Statuses) > 0 && !containsFold(f.Statuses, o.Status) {
			continue
		}
		if f.Type != "" && !strings.EqualFold(f.Type, "all") && !strings.EqualFold(f.Type, o.Type) {
			continue
		}
		if !f.From.IsZero() && o.TimePlaced.Before(f.From) {
			continue
		}
		if !f.To.IsZero() && o.TimePlaced.After(f.To) {
			continue
		}
		out = append(out, o)
	}
	return out
}

func containsFold(set []string, v string) bool {
	for _, s := range set {
		if strings.EqualFold(s, v) {
			return true
		}
	}
	return false
}

// OrderGroup is one calendar day of orders, newest day first.
type OrderGroup struct {
	Date  string         `json:"date"`
	Month string         `json:"month"`
	Count int            `json:"count"`
	Items []entity.Order `json:"items"`
}

// GroupOrdersByDay sorts time-descending, then opens a new group
// whenever the formatted date changes relative to the previous item.
// Regrouping a flattened result yields the same groups.
func GroupOrdersByDay(orders []entity.Order) []OrderGroup {
	sorted := make([]entity.Order, len(orders))
	copy(sorted, orders)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].TimePlaced.After(sorted[j].TimePlaced)
	})

	var groups []OrderGroup
	for _, o := range sorted {
		date := o.TimePlaced.Format("Monday, 2 January 2006")
		if len(groups) == 0 || groups[len(groups)-1].Date != date {
			groups = append(groups, OrderGroup{
				Date:  date,
				Month: o.TimePlaced.Format("January 2006"),
			})
		}
		g := &groups[len(groups)-1]
		g.Items = append(g.Items, o)
		g.Count = len(g.Items)
	}
	return groups
}
