package normalize

import (
	"gateway/entity"
)

func InvoiceSettings(raw Raw) entity.InvoiceSettings {
	return entity.InvoiceSettings{
		RestaurantName: Str(raw, "restaurantName", "restaurant_name", "name"),
		Address:        Str(raw, "address"),
		Phone:          Str(raw, "phone", "contact"),
		GSTIN:          Str(raw, "gstin", "gst_number", "gstNumber"),
		InvoicePrefix:  Str(raw, "invoicePrefix", "invoice_prefix", "prefix"),
		FooterNote:     Str(raw, "footerNote", "footer_note", "footer"),
	}
}
