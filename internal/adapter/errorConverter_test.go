package adapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/akolanti/InvoiceAPI/internal/domain/invoiceModel"
	"github.com/akolanti/InvoiceAPI/internal/pdfcheck"
)

func TestToErrorResponse_Status(t *testing.T) {
	tests := []struct {
		kind     invoiceModel.ErrorKind
		status   int
		canRetry bool
	}{
		{invoiceModel.KindEmptyInput, http.StatusBadRequest, false},
		{invoiceModel.KindConfig, http.StatusBadRequest, false},
		{invoiceModel.KindBackendRejected, http.StatusBadGateway, false},
		{invoiceModel.KindBackendFailed, http.StatusBadGateway, false},
		{invoiceModel.KindTransport, http.StatusBadGateway, true},
		{invoiceModel.KindPollTimeout, http.StatusGatewayTimeout, true},
		{invoiceModel.KindMalformedResult, http.StatusInternalServerError, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			err := fmt.Errorf("wrapped: %w", invoiceModel.NewError(tt.kind, "boom", nil))
			status, body := ToErrorResponse(err)
			if status != tt.status {
				t.Errorf("status = %d, want %d", status, tt.status)
			}
			if body.Error.Code != string(tt.kind) || body.Error.Retry != tt.canRetry {
				t.Errorf("body = %+v", body.Error)
			}
		})
	}
}

func TestToErrorResponse_Details(t *testing.T) {
	_, rejected := ToErrorResponse(&invoiceModel.Error{
		Kind: invoiceModel.KindBackendRejected, Message: "expected 202", StatusCode: 401, Body: "denied",
	})
	out, _ := json.Marshal(rejected)
	if !strings.Contains(string(out), `"details":{"body":"denied","status_code":401}`) {
		t.Errorf("rejected body = %s", out)
	}

	_, failed := ToErrorResponse(&invoiceModel.Error{
		Kind: invoiceModel.KindBackendFailed, Message: "failed", Detail: json.RawMessage(`{"code":"InvalidContent"}`),
	})
	out, _ = json.Marshal(failed)
	if !strings.Contains(string(out), `"details":{"code":"InvalidContent"}`) {
		t.Errorf("failed body = %s", out)
	}

	_, transport := ToErrorResponse(invoiceModel.NewError(invoiceModel.KindTransport, "submit document", errors.New("dial tcp: refused")))
	if transport.Error.Message != "submit document: dial tcp: refused" || transport.Error.Details != nil {
		t.Errorf("transport body = %+v", transport.Error)
	}
}

func TestToErrorResponse_NonDomainErrors(t *testing.T) {
	status, body := ToErrorResponse(errors.New("something odd"))
	if status != http.StatusInternalServerError || body.Error.Code != CodeInternalError {
		t.Errorf("got %d %+v", status, body.Error)
	}
	if strings.Contains(body.Error.Message, "odd") {
		t.Error("internal error text should not leak")
	}

	status, body = ToErrorResponse(fmt.Errorf("%w: bad xref", pdfcheck.ErrUnreadable))
	if status != http.StatusBadRequest || body.Error.Code != CodeInvalidPDF {
		t.Errorf("got %d %+v", status, body.Error)
	}
}
