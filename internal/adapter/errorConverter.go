package adapter

import (
	"errors"
	"net/http"

	"github.com/akolanti/InvoiceAPI/internal/api"
	"github.com/akolanti/InvoiceAPI/internal/domain/invoiceModel"
	"github.com/akolanti/InvoiceAPI/internal/pdfcheck"
)

const (
	CodeBadRequest    = "BAD_REQUEST"
	CodeInvalidPDF    = "INVALID_PDF"
	CodeInternalError = "INTERNAL_ERROR"
	CodeRateLimited   = "RATE_LIMITED"
)

var statusByKind = map[invoiceModel.ErrorKind]int{
	invoiceModel.KindEmptyInput:      http.StatusBadRequest,
	invoiceModel.KindConfig:          http.StatusBadRequest,
	invoiceModel.KindBackendRejected: http.StatusBadGateway,
	invoiceModel.KindBackendFailed:   http.StatusBadGateway,
	invoiceModel.KindTransport:       http.StatusBadGateway,
	invoiceModel.KindPollTimeout:     http.StatusGatewayTimeout,
	invoiceModel.KindMalformedResult: http.StatusInternalServerError,
}

// ToErrorResponse is the only place domain errors become HTTP statuses.
func ToErrorResponse(err error) (int, api.ErrorResponse) {
	if errors.Is(err, pdfcheck.ErrUnreadable) {
		return http.StatusBadRequest, BadRequest(CodeInvalidPDF, err.Error())
	}

	var e *invoiceModel.Error
	if !errors.As(err, &e) {
		return http.StatusInternalServerError, api.ErrorResponse{Error: api.OutgoingError{
			Code:    CodeInternalError,
			Message: "unexpected server error",
		}}
	}

	status, ok := statusByKind[e.Kind]
	if !ok {
		status = http.StatusInternalServerError
	}
	return status, api.ErrorResponse{Error: api.OutgoingError{
		Code:    string(e.Kind),
		Message: messageOf(e),
		Details: detailsOf(e),
		Retry:   e.Retryable(),
	}}
}

func BadRequest(code string, message string) api.ErrorResponse {
	return api.ErrorResponse{Error: api.OutgoingError{Code: code, Message: message}}
}

func messageOf(e *invoiceModel.Error) string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func detailsOf(e *invoiceModel.Error) any {
	switch {
	case len(e.Detail) > 0:
		return e.Detail
	case e.StatusCode != 0:
		return map[string]any{"status_code": e.StatusCode, "body": e.Body}
	}
	return nil
}
