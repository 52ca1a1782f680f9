package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/akolanti/InvoiceAPI/internal/api"
	"github.com/akolanti/InvoiceAPI/internal/domain/invoiceModel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type MockInvoiceService struct {
	Calls             int
	OnProcessDocument func(ctx context.Context, document []byte) (invoiceModel.Invoice, error)
}

func (m *MockInvoiceService) ProcessDocument(ctx context.Context, document []byte) (invoiceModel.Invoice, error) {
	m.Calls++
	if m.OnProcessDocument != nil {
		return m.OnProcessDocument(ctx, document)
	}
	return invoiceModel.Invoice{Items: []invoiceModel.LineItem{}}, nil
}

type MockReadiness struct {
	Report api.ReadinessResponse
}

func (m *MockReadiness) Ready(ctx context.Context) api.ReadinessResponse {
	return m.Report
}

func setup(t *testing.T, service *MockInvoiceService, strict bool) {
	t.Helper()
	InitInvoiceHandler(service, &MockReadiness{Report: api.ReadinessResponse{Status: api.StatusOK}}, strict)
	t.Cleanup(func() { handlerInstance = nil })
}

func multipartRequest(t *testing.T, contentType string, content []byte) *http.Request {
	t.Helper()
	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="invoice.pdf"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/extract", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) api.OutgoingError {
	t.Helper()
	var body api.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Error
}

func TestHealthHandler(t *testing.T) {
	rec := httptest.NewRecorder()
	HealthHandler(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestReadinessHandler(t *testing.T) {
	InitInvoiceHandler(&MockInvoiceService{}, &MockReadiness{Report: api.ReadinessResponse{Status: api.StatusDegraded, Checks: []api.Check{}}}, false)
	t.Cleanup(func() { handlerInstance = nil })

	rec := httptest.NewRecorder()
	ReadinessHandler(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"degraded"`)

	handlerInstance.readiness = &MockReadiness{Report: api.ReadinessResponse{Status: api.StatusOK}}
	rec = httptest.NewRecorder()
	ReadinessHandler(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestExtractHandler_Success(t *testing.T) {
	id := "INV-7"
	total := 99.5
	service := &MockInvoiceService{
		OnProcessDocument: func(ctx context.Context, document []byte) (invoiceModel.Invoice, error) {
			assert.Equal(t, []byte("%PDF-1.4 fake"), document)
			return invoiceModel.Invoice{InvoiceId: &id, TotalAmount: &total, Items: []invoiceModel.LineItem{}}, nil
		},
	}
	setup(t, service, false)

	for _, contentType := range []string{"application/pdf", "application/octet-stream"} {
		rec := httptest.NewRecorder()
		ExtractHandler(rec, multipartRequest(t, contentType, []byte("%PDF-1.4 fake")))

		assert.Equal(t, http.StatusOK, rec.Code, contentType)
		assert.Contains(t, rec.Body.String(), `"invoice_id":"INV-7"`)
		assert.Contains(t, rec.Body.String(), `"total_amount":99.5`)
		assert.Contains(t, rec.Body.String(), `"items":[]`)
	}
	assert.Equal(t, 2, service.Calls)
}

func TestExtractHandler_BadUploads(t *testing.T) {
	service := &MockInvoiceService{}
	setup(t, service, false)

	rec := httptest.NewRecorder()
	ExtractHandler(rec, multipartRequest(t, "image/png", []byte("png")))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeError(t, rec).Message, "Unsupported content type: image/png")

	rec = httptest.NewRecorder()
	ExtractHandler(rec, multipartRequest(t, "application/pdf", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Uploaded file is empty.", decodeError(t, rec).Message)

	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/extract", bytes.NewReader([]byte(`{"file":"x"}`)))
	req.Header.Set("Content-Type", "application/json")
	ExtractHandler(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	assert.Equal(t, 0, service.Calls)
}

func TestExtractHandler_DomainErrors(t *testing.T) {
	tests := []struct {
		kind   invoiceModel.ErrorKind
		status int
	}{
		{invoiceModel.KindConfig, http.StatusBadRequest},
		{invoiceModel.KindBackendRejected, http.StatusBadGateway},
		{invoiceModel.KindBackendFailed, http.StatusBadGateway},
		{invoiceModel.KindTransport, http.StatusBadGateway},
		{invoiceModel.KindPollTimeout, http.StatusGatewayTimeout},
		{invoiceModel.KindMalformedResult, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			setup(t, &MockInvoiceService{
				OnProcessDocument: func(ctx context.Context, document []byte) (invoiceModel.Invoice, error) {
					return invoiceModel.Invoice{}, invoiceModel.NewError(tt.kind, "from service", nil)
				},
			}, false)

			rec := httptest.NewRecorder()
			ExtractHandler(rec, multipartRequest(t, "application/pdf", []byte("%PDF-1.4 fake")))
			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, string(tt.kind), decodeError(t, rec).Code)
		})
	}
}

func TestExtractHandler_StrictPDFCheck(t *testing.T) {
	service := &MockInvoiceService{}
	setup(t, service, true)

	rec := httptest.NewRecorder()
	ExtractHandler(rec, multipartRequest(t, "application/pdf", []byte("definitely not a pdf")))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_PDF", decodeError(t, rec).Code)
	assert.Equal(t, 0, service.Calls)
}

func TestRawInvoiceHandler(t *testing.T) {
	service := &MockInvoiceService{}
	setup(t, service, false)

	req := httptest.NewRequest(http.MethodPost, "/api/invoice", bytes.NewReader([]byte("%PDF-1.4 fake")))
	req.Header.Set("Content-Type", "application/PDF")
	rec := httptest.NewRecorder()
	RawInvoiceHandler(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, service.Calls)

	req = httptest.NewRequest(http.MethodPost, "/api/invoice", bytes.NewReader(nil))
	req.Header.Set("Content-Type", "application/pdf")
	rec = httptest.NewRecorder()
	RawInvoiceHandler(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeError(t, rec).Message, "Request body is empty")

	req = httptest.NewRequest(http.MethodPost, "/api/invoice", bytes.NewReader([]byte("hello")))
	req.Header.Set("Content-Type", "text/plain")
	rec = httptest.NewRecorder()
	RawInvoiceHandler(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeError(t, rec).Message, "Unsupported content type")

	assert.Equal(t, 1, service.Calls)
}
