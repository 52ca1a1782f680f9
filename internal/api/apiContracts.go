package api

type CheckStatus string

const (
	CheckOK    CheckStatus = "ok"
	CheckError CheckStatus = "error"
)

const (
	StatusOK       = "ok"
	StatusDegraded = "degraded"
)

type ErrorResponse struct {
	Error OutgoingError `json:"error"`
}

type OutgoingError struct {
	Code    string `json:"code" example:"POLL_TIMEOUT"`
	Message string `json:"message" example:"analysis did not finish within 1m0s"`
	Details any    `json:"details,omitempty"`
	Retry   bool   `json:"can_retry" example:"true"`
}

type LivenessResponse struct {
	Status string `json:"status" example:"ok"`
}

type ReadinessResponse struct {
	Status       string  `json:"status" example:"degraded"`
	Service      string  `json:"service" example:"invoice-extraction-api"`
	TimestampUTC string  `json:"timestamp_utc" example:"2026-03-02T10:15:01Z"`
	Version      string  `json:"version" example:"v0.1.0"`
	Checks       []Check `json:"checks"`
}

// Check is one readiness check. Details is a map for structured data or a plain string.
type Check struct {
	Name    string      `json:"name" example:"document_intelligence"`
	Status  CheckStatus `json:"status" example:"ok"`
	Details any         `json:"details"`
}
