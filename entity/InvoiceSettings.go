package entity

type InvoiceSettings struct {
	RestaurantName string `json:"restaurantName"`
	Address        string `json:"address"`
	Phone          string `json:"phone"`
	GSTIN          string `json:"gstin,omitempty"`
	InvoicePrefix  string `json:"invoicePrefix"`
	FooterNote     string `json:"footerNote,omitempty"`
}
