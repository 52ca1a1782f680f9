package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/akolanti/InvoiceAPI/internal/adapter"
	"github.com/akolanti/InvoiceAPI/internal/config"
	"github.com/akolanti/InvoiceAPI/internal/pdfcheck"
	"github.com/akolanti/InvoiceAPI/pkg/logger_i"
)

var allowedUploadTypes = map[string]bool{
	"application/pdf":          true,
	"application/octet-stream": true,
}

func writeJsonResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but can't send a clean status code now
		logRH.Error("Error encoding response", "error", err)
	}
}

func WriteErrorResponse(w http.ResponseWriter, httpCode int, code string, message string) {
	writeJsonResponse(w, httpCode, adapter.BadRequest(code, message))
}

func writeDomainError(w http.ResponseWriter, err error) {
	status, body := adapter.ToErrorResponse(err)
	writeJsonResponse(w, status, body)
}

func readUpload(w http.ResponseWriter, r *http.Request) ([]byte, int, string) {
	r.Body = http.MaxBytesReader(w, r.Body, config.MaxUploadSize)
	if err := r.ParseMultipartForm(config.MaxUploadSize); err != nil {
		return nil, http.StatusBadRequest, uploadReadError(err, "Expected a multipart form with a \"file\" field.")
	}
	defer func() {
		if err := r.MultipartForm.RemoveAll(); err != nil {
			logRH.Warn("Couldn't clean up multipart form", "error", err)
		}
	}()

	file, header, err := r.FormFile("file")
	if err != nil {
		return nil, http.StatusBadRequest, "Missing \"file\" field in upload."
	}
	defer func(file io.Closer) {
		if err := file.Close(); err != nil {
			logRH.Error("Couldn't close the uploaded file", "error", err)
		}
	}(file)

	contentType := header.Header.Get("Content-Type")
	if !allowedUploadTypes[contentType] {
		return nil, http.StatusBadRequest, fmt.Sprintf("Unsupported content type: %s. Expected application/pdf.", contentType)
	}

	document, err := io.ReadAll(file)
	if err != nil {
		return nil, http.StatusBadRequest, fmt.Sprintf("Failed to read file: %v", err)
	}
	if len(document) == 0 {
		return nil, http.StatusBadRequest, "Uploaded file is empty."
	}
	return document, 0, ""
}

func readRawBody(w http.ResponseWriter, r *http.Request) ([]byte, int, string) {
	defer func(Body io.ReadCloser) {
		if err := Body.Close(); err != nil {
			logRH.Error("Couldn't close the request body", "error", err)
		}
	}(r.Body)

	document, err := io.ReadAll(http.MaxBytesReader(w, r.Body, config.MaxUploadSize))
	if err != nil {
		return nil, http.StatusBadRequest, uploadReadError(err, "Failed to read request body.")
	}
	if len(document) == 0 {
		return nil, http.StatusBadRequest, "Request body is empty. Please POST a PDF file."
	}
	if contentType := r.Header.Get("Content-Type"); !strings.Contains(strings.ToLower(contentType), "pdf") {
		return nil, http.StatusBadRequest, "Unsupported content type. Please send a PDF with Content-Type: application/pdf."
	}
	return document, 0, ""
}

func uploadReadError(err error, fallback string) string {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return fmt.Sprintf("Document exceeds the %d MB upload limit.", config.MaxUploadSize>>20)
	}
	return fallback
}

// inspectDocument logs what the PDF looks like locally. In strict mode an unreadable PDF is returned as an error.
func (h *InvoiceHandler) inspectDocument(document []byte, log *logger_i.Logger) error {
	info, err := pdfcheck.Inspect(document)
	if err != nil {
		if h.strictPDF {
			log.Warn("Rejecting unreadable PDF", "error", err)
			return err
		}
		log.Warn("Could not inspect PDF locally, forwarding anyway", "error", err)
		return nil
	}
	log.Debug("PDF inspected", "pages", info.Pages, "has_text", info.HasText, "bytes", len(document))
	return nil
}

func valueOrNil(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}
