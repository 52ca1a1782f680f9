package handlers

import (
	"net/http"

	"github.com/akolanti/InvoiceAPI/internal/adapter"
	"github.com/akolanti/InvoiceAPI/internal/api"
	"github.com/akolanti/InvoiceAPI/pkg/logger_i"
)

// HealthHandler godoc
// @Summary      Liveness
// @Description  Reports that the process is up. Never calls the backend.
// @Tags         Health
// @Produce      json
// @Success      200  {object}  api.LivenessResponse  "OK"
// @Router       /health [get]
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	writeJsonResponse(w, http.StatusOK, api.LivenessResponse{Status: api.StatusOK})
}

// ReadinessHandler godoc
// @Summary      Readiness
// @Description  Checks the environment and the Document Intelligence info endpoint.
// @Tags         Health
// @Produce      json
// @Success      200  {object}  api.ReadinessResponse  "All checks passed"
// @Failure      503  {object}  api.ReadinessResponse  "At least one check failed"
// @Router       /health/ready [get]
func ReadinessHandler(w http.ResponseWriter, r *http.Request) {
	if handlerInstance == nil {
		WriteErrorResponse(w, http.StatusServiceUnavailable, adapter.CodeInternalError, "handlers not initialised")
		return
	}
	report := handlerInstance.readiness.Ready(r.Context())
	status := http.StatusOK
	if report.Status != api.StatusOK {
		status = http.StatusServiceUnavailable
	}
	writeJsonResponse(w, status, report)
}

// ExtractHandler godoc
// @Summary      Extract an invoice from an uploaded PDF
// @Description  Accepts a PDF upload in the multipart field "file", analyzes it and returns the normalized invoice.
// @Tags         Extraction
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "PDF invoice"
// @Success      200  {object}  invoiceModel.Invoice  "Normalized invoice"
// @Failure      400  {object}  api.ErrorResponse     "Missing, empty or unsupported file"
// @Failure      429  {object}  api.ErrorResponse     "Rate limit exceeded"
// @Failure      500  {object}  api.ErrorResponse     "Analysis result could not be normalized"
// @Failure      502  {object}  api.ErrorResponse     "Document Intelligence rejected or failed the document"
// @Failure      504  {object}  api.ErrorResponse     "Analysis did not finish in time"
// @Router       /extract [post]
func ExtractHandler(w http.ResponseWriter, r *http.Request) {
	document, status, message := readUpload(w, r)
	if status != 0 {
		logRH.Warn("Bad extract request", "httpCode", status, "errorMessage", message)
		WriteErrorResponse(w, status, adapter.CodeBadRequest, message)
		return
	}
	processDocument(w, r, document)
}

// RawInvoiceHandler godoc
// @Summary      Extract an invoice from a raw PDF body
// @Description  Accepts the raw PDF as the request body, analyzes it and returns the normalized invoice.
// @Tags         Extraction
// @Accept       application/pdf
// @Produce      json
// @Success      200  {object}  invoiceModel.Invoice  "Normalized invoice"
// @Failure      400  {object}  api.ErrorResponse     "Empty body, wrong content type or missing configuration"
// @Failure      429  {object}  api.ErrorResponse     "Rate limit exceeded"
// @Failure      500  {object}  api.ErrorResponse     "Analysis result could not be normalized"
// @Failure      502  {object}  api.ErrorResponse     "Document Intelligence rejected or failed the document"
// @Failure      504  {object}  api.ErrorResponse     "Analysis did not finish in time"
// @Router       /api/invoice [post]
func RawInvoiceHandler(w http.ResponseWriter, r *http.Request) {
	document, status, message := readRawBody(w, r)
	if status != 0 {
		logRH.Warn("Bad invoice request", "httpCode", status, "errorMessage", message)
		WriteErrorResponse(w, status, adapter.CodeBadRequest, message)
		return
	}
	processDocument(w, r, document)
}

func processDocument(w http.ResponseWriter, r *http.Request, document []byte) {
	if handlerInstance == nil {
		WriteErrorResponse(w, http.StatusInternalServerError, adapter.CodeInternalError, "handlers not initialised")
		return
	}
	ctx := r.Context()
	log := logger_i.FromContext(ctx, "InvoiceHandler")

	if err := handlerInstance.inspectDocument(document, log); err != nil {
		writeDomainError(w, err)
		return
	}

	inv, err := handlerInstance.service.ProcessDocument(ctx, document)
	if err != nil {
		log.Error("Invoice extraction failed", "error", err)
		writeDomainError(w, err)
		return
	}

	log.Info("Invoice extraction completed", "invoice_id", valueOrNil(inv.InvoiceId), "items", len(inv.Items))
	writeJsonResponse(w, http.StatusOK, inv)
}
