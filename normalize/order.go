package normalize

import (
	"strings"

	"gateway/entity"
)

// Item maps one raw order/invoice line item into the canonical form.
// Alternate keys cover every shape the upstream has been seen to emit.
func Item(raw Raw) entity.OrderItem {
	return entity.OrderItem{
		Name:      Str(raw, "name", "item_name", "itemName"),
		Quantity:  int(Num(raw, "quantity", "qty", "Quantity", "Qty")),
		UnitPrice: Num(raw, "single_price", "price", "unit_price", "unitPrice"),
		Modifiers: StrSlice(raw, "modifiers", "modifier", "modifications"),
		Notes:     Str(raw, "notes", "special_notes", "specialNotes", "instructions"),
	}
}

func Items(raws []any) []entity.OrderItem {
	out := make([]entity.OrderItem, 0, len(raws))
	for _, e := range raws {
		if m, ok := e.(Raw); ok {
			out = append(out, Item(m))
		}
	}
	return out
}

// Order maps a raw order payload (list row or detail) into the canonical
// Order. Missing statuses default to PLACED; the status is always
// upper-cased so DINE_IN/COMPLETED comparisons hold.
func Order(raw Raw) entity.Order {
	status := strings.ToUpper(Str(raw, "status", "order_status"))
	if status == "" {
		status = entity.StatusPlaced
	}
	typ := Str(raw, "type", "order_type", "orderType")
	if typ == "" {
		typ = entity.TypeDineIn
	}
	payStatus := Str(raw, "paymentStatus", "payment_status")
	if payStatus == "" {
		payStatus = entity.PaymentPending
	}

	o := entity.Order{
		ID:            Str(raw, "id", "order_id", "orderId", "_id"),
		Type:          typ,
		TableNumber:   Str(raw, "tableNumber", "table_number", "table"),
		CustomerName:  Str(raw, "customerName", "customer_name", "customer"),
		Phone:         Str(raw, "phone", "customer_phone", "contact"),
		Status:        status,
		PaymentStatus: payStatus,
		PaymentMethod: Str(raw, "paymentMethod", "payment_method", "pay_method"),
		TimePlaced:    Time(raw, "timePlaced", "created_at", "createdAt"),
		Instructions:  Str(raw, "instructions", "notes"),
		Discount:      Num(raw, "discount"),
		Taxes:         Num(raw, "tax_total", "taxes"),
		Charges:       Num(raw, "charges_total", "charges", "service_charge"),
		Total:         Num(raw, "total", "amount", "grand_total", "subtotal"),
		Items:         Items(Slice(raw, "items", "order_items", "products")),
	}
	o.Timeline = events(Slice(raw, "timeline", "events"))
	return o
}

func events(raws []any) []entity.OrderEvent {
	out := make([]entity.OrderEvent, 0, len(raws))
	for _, e := range raws {
		m, ok := e.(map[string]any)
		if !ok {
			continue
		}
		out = append(out, entity.OrderEvent{
			Label: Str(m, "label", "status", "name"),
			At:    Time(m, "at", "timestamp", "time", "created_at"),
		})
	}
	return out
}
