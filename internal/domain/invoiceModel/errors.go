package invoiceModel

import (
	"encoding/json"
	"errors"
	"fmt"
)

type ErrorKind string

const (
	KindConfig          ErrorKind = "CONFIG_ERROR"
	KindBackendRejected ErrorKind = "BACKEND_REJECTED"
	KindBackendFailed   ErrorKind = "BACKEND_FAILED"
	KindPollTimeout     ErrorKind = "POLL_TIMEOUT"
	KindTransport       ErrorKind = "TRANSPORT_ERROR"
	KindMalformedResult ErrorKind = "MALFORMED_RESULT"
	KindEmptyInput      ErrorKind = "EMPTY_INPUT"
)

// Sentinels for errors.Is; they match any *Error of the same kind.
var (
	ErrConfig          = &Error{Kind: KindConfig}
	ErrBackendRejected = &Error{Kind: KindBackendRejected}
	ErrBackendFailed   = &Error{Kind: KindBackendFailed}
	ErrPollTimeout     = &Error{Kind: KindPollTimeout}
	ErrTransport       = &Error{Kind: KindTransport}
	ErrMalformedResult = &Error{Kind: KindMalformedResult}
	ErrEmptyInput      = &Error{Kind: KindEmptyInput}
)

// Error is the single error type returned by extraction, normalization and the service.
// StatusCode and Body are set for BackendRejected, Detail for BackendFailed.
type Error struct {
	Kind       ErrorKind
	Message    string
	StatusCode int
	Body       string
	Detail     json.RawMessage
	Cause      error
}

func (e *Error) Error() string {
	msg := string(e.Kind)
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(" (status %d)", e.StatusCode)
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// Retryable reports whether resubmitting the same document later can succeed.
func (e *Error) Retryable() bool {
	return e.Kind == KindPollTimeout || e.Kind == KindTransport
}

func NewError(kind ErrorKind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

// KindOf reports the kind of the first *Error in err's chain, or "" when there is none.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
