package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gateway/services"
	"gateway/upstream"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterFromQuery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet,
		"/desk/orders?search=anita&status=PLACED,%20READY,&type=DINE_IN&from=2024-01-19&to=2024-01-20", nil)

	f := filterFromQuery(c)

	assert.Equal(t, "anita", f.Search)
	assert.Equal(t, []string{"PLACED", "READY"}, f.Statuses)
	assert.Equal(t, "DINE_IN", f.Type)
	assert.Equal(t, time.Date(2024, 1, 19, 0, 0, 0, 0, time.UTC), f.From)
	// To covers the whole end day.
	assert.Equal(t, time.Date(2024, 1, 20, 23, 59, 59, 999000000, time.UTC), f.To)
}

func TestFilterFromQueryIgnoresBadDates(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/desk/orders?from=yesterday&to=19-01-2024", nil)

	f := filterFromQuery(c)
	assert.True(t, f.From.IsZero())
	assert.True(t, f.To.IsZero())
}

func TestExportCSVReportsFailures(t *testing.T) {
	up := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/desk/orders":
			w.Write([]byte(`[
				{"id":"1","status":"COMPLETED","customer_name":"Anita"},
				{"id":"2","status":"COMPLETED","customer_name":"Rohan"}
			]`))
		case "/desk/orders/1/invoice":
			w.Write([]byte(`{"invoice_number":"INV-1","grand_total":100}`))
		case "/desk/orders/2/invoice":
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"message":"flaky"}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer up.Close()

	client := upstream.New(up.URL)
	ctrl := NewOrderController(services.NewOrderService(client), services.NewExportService(client))

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/desk/orders/export", ctrl.ExportCSV)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/desk/orders/export", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, w.Header().Get("Content-Disposition"), "invoices-")
	assert.Equal(t, "2", w.Header().Get("X-Failed-Orders"))
	assert.Contains(t, w.Body.String(), "INV-1")
}

func TestExportCSVNothingToExport(t *testing.T) {
	up := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer up.Close()

	client := upstream.New(up.URL)
	ctrl := NewOrderController(services.NewOrderService(client), services.NewExportService(client))

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/desk/orders/export", ctrl.ExportCSV)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/desk/orders/export", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}
