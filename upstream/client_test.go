package upstream

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListOrdersWrappedAndBare(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"orders":[{"id":"1"},{"id":"2"}]}`))
	}))
	defer srv.Close()

	raws, err := New(srv.URL).ListOrders(context.Background())
	require.NoError(t, err)
	require.Len(t, raws, 2)
	assert.Equal(t, "1", raws[0]["id"])

	bare := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":"3"}]`))
	}))
	defer bare.Close()

	raws, err = New(bare.URL).ListOrders(context.Background())
	require.NoError(t, err)
	require.Len(t, raws, 1)
}

func TestErrorBodyMessageSurfaces(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"order already billed"}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL).OrderInvoice(context.Background(), "7")
	require.Error(t, err)
	assert.Equal(t, "order already billed", err.Error())

	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusBadRequest, se.Code)
}

func TestErrorFallsBackToStatusLine(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	_, err := New(srv.URL).OrderDetail(context.Background(), "7")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestUnableToConnect(t *testing.T) {
	// Nothing listens here.
	_, err := New("http://127.0.0.1:1").ListOrders(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unable to connect")
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(&StatusError{Code: 404, Message: "no"}))
	assert.False(t, IsNotFound(&StatusError{Code: 500, Message: "no"}))
	assert.False(t, IsNotFound(context.Canceled))
}

func TestListTablesFallsBackToLegacyPath(t *testing.T) {
	var hits []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits = append(hits, r.URL.Path)
		if r.URL.Path == "/admin/tables" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write([]byte(`[{"table_number":4,"capacity":2}]`))
	}))
	defer srv.Close()

	raws, err := New(srv.URL).ListTables(context.Background())
	require.NoError(t, err)
	require.Len(t, raws, 1)
	assert.Equal(t, []string{"/admin/tables", "/admin/table"}, hits)
}

func TestListTablesNoFallbackOnServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/admin/tables", r.URL.Path)
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"boom"}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL).ListTables(context.Background())
	require.Error(t, err)
	assert.Equal(t, "boom", err.Error())
}

func TestEmptyBodySuccessIsNil(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	err := New(srv.URL).DeleteTable(context.Background(), "3")
	assert.NoError(t, err)
}
