package normalize

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/akolanti/InvoiceAPI/internal/domain/invoiceModel"
)

const (
	fieldInvoiceId     = "InvoiceId"
	fieldVendorName    = "VendorName"
	fieldVendorAddress = "VendorAddress"
	fieldCustomerName  = "CustomerName"
	fieldInvoiceDate   = "InvoiceDate"
	fieldDueDate       = "DueDate"
	fieldInvoiceTotal  = "InvoiceTotal"
	fieldTotalTax      = "TotalTax"
	fieldItems         = "Items"

	itemDescription = "Description"
	itemQuantity    = "Quantity"
	itemUnitPrice   = "UnitPrice"
	itemAmount      = "Amount"
)

type analyzeResponse struct {
	AnalyzeResult *struct {
		Documents []analyzedDocument `json:"documents"`
	} `json:"analyzeResult"`
}

type analyzedDocument struct {
	Fields     map[string]*TypedValue `json:"fields"`
	Confidence *float64               `json:"confidence"`
}

// Invoice reshapes a succeeded analyze response into the flat invoice record.
// Only the first analyzed document is read. It has no side effects.
func Invoice(raw []byte) (invoiceModel.Invoice, error) {
	var resp analyzeResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return invoiceModel.Invoice{}, invoiceModel.NewError(invoiceModel.KindMalformedResult, "decode analysis result", err)
	}
	if resp.AnalyzeResult == nil || len(resp.AnalyzeResult.Documents) == 0 {
		return invoiceModel.Invoice{}, invoiceModel.NewError(invoiceModel.KindMalformedResult, "analysis result has no documents", nil)
	}
	doc := resp.AnalyzeResult.Documents[0]
	if doc.Fields == nil {
		return invoiceModel.Invoice{}, invoiceModel.NewError(invoiceModel.KindMalformedResult, "analyzed document has no fields", nil)
	}
	fields := doc.Fields

	return invoiceModel.Invoice{
		InvoiceId:     stringOf(fields[fieldInvoiceId]),
		InvoiceDate:   stringOf(fields[fieldInvoiceDate]),
		DueDate:       stringOf(fields[fieldDueDate]),
		VendorName:    stringOf(fields[fieldVendorName]),
		VendorAddress: stringOf(fields[fieldVendorAddress]),
		CustomerName:  stringOf(fields[fieldCustomerName]),
		TotalAmount:   numberOf(fields[fieldInvoiceTotal]),
		TotalTax:      numberOf(fields[fieldTotalTax]),
		Items:         lineItems(fields[fieldItems]),
		Confidence:    doc.Confidence,
	}, nil
}

// lineItems keeps every entry that unwraps to an object, even an empty one.
func lineItems(field *TypedValue) []invoiceModel.LineItem {
	entries, _ := field.Unwrap().([]*TypedValue)
	items := make([]invoiceModel.LineItem, 0, len(entries))
	for _, entry := range entries {
		obj, ok := entry.Unwrap().(map[string]*TypedValue)
		if !ok {
			continue
		}
		items = append(items, invoiceModel.LineItem{
			Description: stringOf(obj[itemDescription]),
			Quantity:    numberOf(obj[itemQuantity]),
			UnitPrice:   numberOf(obj[itemUnitPrice]),
			Amount:      numberOf(obj[itemAmount]),
		})
	}
	return items
}

func stringOf(field *TypedValue) *string {
	switch v := field.Unwrap().(type) {
	case string:
		return &v
	case float64:
		s := strconv.FormatFloat(v, 'f', -1, 64)
		return &s
	}
	return nil
}

// numberOf accepts numbers, currency amounts and strings that parse as a plain decimal.
func numberOf(field *TypedValue) *float64 {
	switch v := field.Unwrap().(type) {
	case float64:
		return &v
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
			return &f
		}
	}
	return nil
}
