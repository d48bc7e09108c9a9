package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gateway/entity"
	"gateway/upstream"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectInvoicesPreservesInputOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/desk/orders/a/invoice":
			// Simulate a slow fetch so a later order can finish first.
			time.Sleep(30 * time.Millisecond)
			w.Write([]byte(`{"invoice_number":"INV-a","grand_total":100}`))
		case "/desk/orders/b/invoice":
			w.Write([]byte(`{"invoice_number":"INV-b","grand_total":200}`))
		case "/desk/orders/c/invoice":
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"message":"flaky"}`))
		case "/desk/orders/d/invoice":
			// Not billed yet: no number, no grand total.
			w.Write([]byte(`{"id":"d","status":"PLACED"}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	svc := NewExportService(upstream.New(srv.URL))
	svc.Workers = 4

	res := svc.CollectInvoices(context.Background(), []entity.Order{
		{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "d"},
	})

	require.Len(t, res.Rows, 2)
	assert.Equal(t, "INV-a", res.Rows[0].InvoiceID)
	assert.Equal(t, "INV-b", res.Rows[1].InvoiceID)
	assert.Equal(t, []string{"c"}, res.Failed)
}

func TestCollectInvoicesFillsRowFromOrder(t *testing.T) {
	placed := time.Date(2024, 1, 19, 12, 35, 0, 0, time.UTC)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"invoice_number":"INV-1045","subtotal":520,"tax_total":26,"grand_total":546}`))
	}))
	defer srv.Close()

	svc := NewExportService(upstream.New(srv.URL))
	res := svc.CollectInvoices(context.Background(), []entity.Order{{
		ID:            "1045",
		CustomerName:  "Anita Sharma",
		Phone:         "555-0101",
		PaymentMethod: "card",
		Status:        "COMPLETED",
		TimePlaced:    placed,
	}})

	require.Len(t, res.Rows, 1)
	row := res.Rows[0]
	assert.Equal(t, "INV-1045", row.InvoiceID)
	assert.Equal(t, "1045", row.OrderID)
	assert.Equal(t, "Anita Sharma", row.CustomerName)
	assert.Equal(t, "card", row.PaymentMethod)
	assert.Equal(t, "COMPLETED", row.Status)
	assert.Equal(t, "2024-01-19T12:35:00Z", row.TimePlaced)
	assert.Equal(t, 520.0, row.Subtotal)
	assert.Equal(t, 546.0, row.GrandTotal)
}

func TestWriteCSVEscapesSpecialCharacters(t *testing.T) {
	rows := []InvoiceRow{
		{
			InvoiceID:    "INV-1",
			OrderID:      "1",
			CustomerName: "Sharma, Anita \"Annie\"\nc/o desk",
			Subtotal:     520,
			GrandTotal:   546.5,
		},
	}

	var buf bytes.Buffer
	svc := &ExportService{}
	require.NoError(t, svc.WriteCSV(&buf, rows))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, csvHeader, records[0])
	got := records[1]
	assert.Equal(t, "INV-1", got[0])
	assert.Equal(t, "Sharma, Anita \"Annie\"\nc/o desk", got[3])
	assert.Equal(t, "520", got[7])
	assert.Equal(t, "546.5", got[10])
}

func TestWriteCSVHeaderOnlyWhenNoRows(t *testing.T) {
	var buf bytes.Buffer
	svc := &ExportService{}
	require.NoError(t, svc.WriteCSV(&buf, nil))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, csvHeader, records[0])
}
