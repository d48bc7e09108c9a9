package normalize

import (
	"gateway/entity"
)

// InvoiceNumber extracts the invoice-number-like field if present. Its
// presence is what distinguishes a real invoice payload from a bare
// order echoed back by the invoice endpoint.
func InvoiceNumber(raw Raw) string {
	return Str(raw, "invoice_number", "invoiceNumber", "invoice_id")
}

// IsInvoice reports whether the payload is a real invoice rather than
// order data served from the invoice endpoint.
func IsInvoice(raw Raw) bool {
	return InvoiceNumber(raw) != ""
}

// Invoice maps a raw invoice payload into the canonical Invoice, filling
// gaps from the known order reference (the invoice endpoint often omits
// customer and type fields it considers redundant). Subtotal is
// recomputed from the items when the upstream does not supply one; the
// declared grand total is passed through untouched.
func Invoice(raw Raw, order entity.Order) entity.Invoice {
	items := Items(Slice(raw, "items", "order_items", "products"))
	if len(items) == 0 {
		items = order.Items
	}

	inv := entity.Invoice{
		ID:            firstNonEmpty(InvoiceNumber(raw), Str(raw, "id", "order_id"), order.ID),
		OrderID:       firstNonEmpty(Str(raw, "order_id", "orderId"), order.ID),
		Type:          firstNonEmpty(Str(raw, "type", "order_type"), order.Type),
		TableNumber:   firstNonEmpty(Str(raw, "tableNumber", "table_number"), order.TableNumber),
		CustomerName:  firstNonEmpty(Str(raw, "customerName", "customer_name"), order.CustomerName),
		Phone:         firstNonEmpty(Str(raw, "phone", "customer_phone"), order.Phone),
		PaymentStatus: firstNonEmpty(Str(raw, "paymentStatus", "payment_status"), order.PaymentStatus),
		Status:        firstNonEmpty(Str(raw, "status"), order.Status),
		PaymentMethod: firstNonEmpty(Str(raw, "paymentMethod", "payment_method"), order.PaymentMethod),
		Subtotal:      Num(raw, "subtotal", "sub_total"),
		Taxes:         Num(raw, "tax_total", "taxes"),
		Charges:       Num(raw, "charges_total", "charges", "service_charge"),
		GrandTotal:    Num(raw, "grand_total", "grandTotal", "total"),
		Instructions:  firstNonEmpty(Str(raw, "instructions"), order.Instructions),
		Items:         items,
	}

	inv.TimePlaced = Time(raw, "timePlaced", "created_at", "createdAt")
	if inv.TimePlaced.IsZero() {
		inv.TimePlaced = order.TimePlaced
	}
	if inv.Subtotal == 0 {
		inv.Subtotal = sumItems(items)
	}
	return inv
}

// InvoiceFromOrder derives an invoice-shaped record from order detail
// data, for orders the upstream has not billed yet. The grand total is
// the declared order total when present, else the recomputed subtotal.
func InvoiceFromOrder(o entity.Order) entity.Invoice {
	subtotal := sumItems(o.Items)
	grand := o.Total
	if grand == 0 {
		grand = subtotal
	}
	return entity.Invoice{
		ID:            o.ID,
		OrderID:       o.ID,
		Type:          o.Type,
		TableNumber:   o.TableNumber,
		CustomerName:  o.CustomerName,
		Phone:         o.Phone,
		PaymentStatus: o.PaymentStatus,
		Status:        o.Status,
		TimePlaced:    o.TimePlaced,
		PaymentMethod: o.PaymentMethod,
		Subtotal:      subtotal,
		Taxes:         o.Taxes,
		Charges:       o.Charges,
		GrandTotal:    grand,
		Instructions:  o.Instructions,
		Items:         o.Items,
	}
}

func sumItems(items []entity.OrderItem) float64 {
	sum := 0.0
	for _, it := range items {
		sum += float64(it.Quantity) * it.UnitPrice
	}
	return sum
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
