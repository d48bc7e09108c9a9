package normalize

import (
	"testing"

	"gateway/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTablesDropRowsWithoutNumber(t *testing.T) {
	got := Tables([]Raw{
		{"id": "t1", "table_number": 4.0, "is_active": true},
		{"id": "t2"},
		{"uuid": "t3", "number": 7.0},
	})

	require.Len(t, got, 2)
	assert.Equal(t, 4, got[0].TableNumber)
	assert.True(t, got[0].IsActive)
	assert.Equal(t, "t3", got[1].ID)
	assert.Equal(t, 7, got[1].TableNumber)
}

func TestChargeAppliesToNormalized(t *testing.T) {
	assert.Equal(t, "DINE_IN", Charge(Raw{"name": "Service", "applies_to": "Dine-In"}).AppliesTo)
	assert.Equal(t, "DINE_IN", Charge(Raw{"name": "Service", "appliesTo": "dine in"}).AppliesTo)
	assert.Equal(t, entity.AppliesAll, Charge(Raw{"name": "Service"}).AppliesTo)
}

func TestTaxTypeUpperCased(t *testing.T) {
	tax := Tax(Raw{"tax_name": "GST", "tax_type": "percent", "tax_value": 5.0, "is_active": true})
	assert.Equal(t, "GST", tax.Name)
	assert.Equal(t, entity.ValuePercent, tax.Type)
	assert.Equal(t, 5.0, tax.Value)
	assert.True(t, tax.IsActive)
}

func TestMenuCategoryNestedItems(t *testing.T) {
	cat := MenuCategory(Raw{
		"_id":  "c1",
		"name": "Starters",
		"items": []any{
			map[string]any{"id": "i1", "name": "Paneer Tikka", "price": 260.0, "is_veg": true},
			"garbage entry",
		},
	})

	assert.Equal(t, "c1", cat.ID)
	require.Len(t, cat.Items, 1)
	assert.Equal(t, "Paneer Tikka", cat.Items[0].Name)
	assert.True(t, cat.Items[0].IsVeg)
}

func TestInvoiceSettingsAliases(t *testing.T) {
	s := InvoiceSettings(Raw{
		"restaurant_name": "Spice Route",
		"gst_number":      "27AAAAA0000A1Z5",
		"invoice_prefix":  "INV-",
	})
	assert.Equal(t, "Spice Route", s.RestaurantName)
	assert.Equal(t, "27AAAAA0000A1Z5", s.GSTIN)
	assert.Equal(t, "INV-", s.InvoicePrefix)
}
