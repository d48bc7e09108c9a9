package services

import (
	"context"
	"encoding/csv"
	"io"
	"strconv"
	"sync"
	"time"

	"gateway/entity"
	"gateway/normalize"
	"gateway/upstream"
)

// ExportService turns a set of orders into an invoice CSV. One invoice
// fetch per order, fanned out with bounded concurrency; orders whose
// fetch failed are reported, orders that simply have no invoice yet are
// skipped.
type ExportService struct {
	Upstream *upstream.Client
	Workers  int
}

func NewExportService(client *upstream.Client) *ExportService {
	return &ExportService{Upstream: client, Workers: 8}
}

// InvoiceRow is one CSV line. Field order here is the column order.
type InvoiceRow struct {
	InvoiceID     string
	OrderID       string
	TimePlaced    string
	CustomerName  string
	Phone         string
	PaymentMethod string
	Status        string
	Subtotal      float64
	Taxes         float64
	Charges       float64
	GrandTotal    float64
}

var csvHeader = []string{
	"invoiceId", "orderId", "timePlaced", "customerName", "phone",
	"paymentMethod", "status", "subtotal", "taxes", "charges", "grandTotal",
}

// ExportResult reports the fan-out outcome: resolved rows in input
// order, plus the ids whose invoice fetch errored.
type ExportResult struct {
	Rows   []InvoiceRow
	Failed []string
}

func (s *ExportService) workers() int {
	if s.Workers <= 0 {
		return 8
	}
	return s.Workers
}

// CollectInvoices fetches the invoice for every order concurrently and
// joins the results. Row order follows the input order regardless of
// completion order.
func (s *ExportService) CollectInvoices(ctx context.Context, orders []entity.Order) ExportResult {
	rows := make([]*InvoiceRow, len(orders))
	failed := make([]bool, len(orders))

	sem := make(chan struct{}, s.workers())
	var wg sync.WaitGroup
	for i, o := range orders {
		if o.ID == "" {
			continue
		}
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, o entity.Order) {
			defer wg.Done()
			defer func() { <-sem }()

			raw, err := s.Upstream.OrderInvoice(ctx, o.ID)
			if err != nil {
				failed[i] = true
				return
			}
			// Tolerate invoices that lack a number but carry a grand
			// total; anything with neither is "not billed yet".
			if !normalize.IsInvoice(raw) && normalize.Num(raw, "grand_total") == 0 {
				return
			}
			row := buildRow(o, raw)
			rows[i] = &row
		}(i, o)
	}
	wg.Wait()

	res := ExportResult{}
	for i, r := range rows {
		if r != nil {
			res.Rows = append(res.Rows, *r)
		}
		if failed[i] {
			res.Failed = append(res.Failed, orders[i].ID)
		}
	}
	return res
}

func buildRow(o entity.Order, raw normalize.Raw) InvoiceRow {
	placed := normalize.Time(raw, "timePlaced", "created_at", "createdAt")
	if placed.IsZero() {
		placed = o.TimePlaced
	}
	placedStr := ""
	if !placed.IsZero() {
		placedStr = placed.Format(time.RFC3339)
	}

	return InvoiceRow{
		InvoiceID:     normalize.Str(raw, "invoice_number", "invoiceNumber", "invoice_id", "id"),
		OrderID:       firstOf(o.ID, normalize.Str(raw, "order_id", "orderId")),
		TimePlaced:    placedStr,
		CustomerName:  firstOf(normalize.Str(raw, "customerName", "customer_name"), o.CustomerName),
		Phone:         firstOf(normalize.Str(raw, "phone", "customer_phone"), o.Phone),
		PaymentMethod: firstOf(normalize.Str(raw, "paymentMethod", "payment_method"), o.PaymentMethod),
		Status:        firstOf(normalize.Str(raw, "status"), o.Status),
		Subtotal:      normalize.Num(raw, "subtotal", "sub_total"),
		Taxes:         normalize.Num(raw, "tax_total", "taxes"),
		Charges:       normalize.Num(raw, "charges_total", "charges"),
		GrandTotal:    normalize.Num(raw, "grand_total", "grandTotal", "total"),
	}
}

func firstOf(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

// WriteCSV writes the rows RFC 4180 style: fixed header order, cells
// quoted only when they contain a comma, quote or newline, absent values
// as empty strings.
func (s *ExportService) WriteCSV(w io.Writer, rows []InvoiceRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range rows {
		record := []string{
			r.InvoiceID, r.OrderID, r.TimePlaced, r.CustomerName, r.Phone,
			r.PaymentMethod, r.Status,
			formatAmount(r.Subtotal), formatAmount(r.Taxes),
			formatAmount(r.Charges), formatAmount(r.GrandTotal),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
