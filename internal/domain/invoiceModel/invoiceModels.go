package invoiceModel

// Invoice is the flat record handed to callers. Every field is nullable except Items.
type Invoice struct {
	InvoiceId     *string    `json:"invoice_id"`
	InvoiceDate   *string    `json:"invoice_date"`
	DueDate       *string    `json:"due_date"`
	VendorName    *string    `json:"vendor_name"`
	VendorAddress *string    `json:"vendor_address"`
	CustomerName  *string    `json:"customer_name"`
	TotalAmount   *float64   `json:"total_amount"`
	TotalTax      *float64   `json:"total_tax"`
	Items         []LineItem `json:"items"`
	Confidence    *float64   `json:"confidence"`
}

type LineItem struct {
	Description *string  `json:"description"`
	Quantity    *float64 `json:"quantity"`
	UnitPrice   *float64 `json:"unit_price"`
	Amount      *float64 `json:"amount"`
}

// DocType is the content label a submission is sent with.
type DocType string

const PDF DocType = "application/pdf"
