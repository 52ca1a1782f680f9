package handlers

import (
	"context"

	"github.com/akolanti/InvoiceAPI/internal/api"
	"github.com/akolanti/InvoiceAPI/internal/invoice"
	"github.com/akolanti/InvoiceAPI/pkg/logger_i"
)

var (
	handlerInstance *InvoiceHandler //private singleton
	logIH           *logger_i.Logger
	logRH           = logger_i.NewLogger("RequestHandler")
)

type ReadinessChecker interface {
	Ready(ctx context.Context) api.ReadinessResponse
}

type InvoiceHandler struct {
	service   invoice.Service
	readiness ReadinessChecker
	strictPDF bool
}

// InitInvoiceHandler wires the handlers to their collaborators. main calls it once before serving.
func InitInvoiceHandler(service invoice.Service, readiness ReadinessChecker, strictPDF bool) {
	handlerInstance = &InvoiceHandler{
		service:   service,
		readiness: readiness,
		strictPDF: strictPDF,
	}
	logIH = logger_i.NewLogger("InvoiceHandler")
	logIH.Info("Starting invoice handler", "strict_pdf_check", strictPDF)
}
