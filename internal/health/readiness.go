package health

import (
	"context"
	"errors"
	"time"

	"github.com/akolanti/InvoiceAPI/internal/api"
	"github.com/akolanti/InvoiceAPI/internal/config"
	"github.com/akolanti/InvoiceAPI/internal/domain/invoiceModel"
	"github.com/akolanti/InvoiceAPI/internal/extraction"
	"github.com/akolanti/InvoiceAPI/pkg/logger_i"
)

const (
	checkEnvironment          = "environment"
	checkDocumentIntelligence = "document_intelligence"
)

// InfoSource is the read-only backend call used for readiness. It must never submit a document.
type InfoSource interface {
	Info(ctx context.Context) (extraction.InfoResult, error)
}

type Checker struct {
	cfg    *config.Config
	source InfoSource
	now    func() time.Time
	logger *logger_i.Logger
}

func NewChecker(cfg *config.Config, source InfoSource) *Checker {
	return &Checker{
		cfg:    cfg,
		source: source,
		now:    time.Now,
		logger: logger_i.NewLogger("Readiness"),
	}
}

// Ready runs every check and reports ok only when all of them pass.
func (c *Checker) Ready(ctx context.Context) api.ReadinessResponse {
	checks := []api.Check{
		c.checkEnvironment(),
		c.checkDocumentIntelligence(ctx),
	}

	status := api.StatusOK
	for _, check := range checks {
		if check.Status != api.CheckOK {
			status = api.StatusDegraded
			break
		}
	}

	return api.ReadinessResponse{
		Status:       status,
		Service:      config.ServiceName,
		TimestampUTC: c.now().UTC().Format(time.RFC3339),
		Version:      c.cfg.AppVersion,
		Checks:       checks,
	}
}

func (c *Checker) checkEnvironment() api.Check {
	missing := c.cfg.MissingCredentials()
	if len(missing) > 0 {
		return api.Check{Name: checkEnvironment, Status: api.CheckError, Details: map[string]any{"missing": missing}}
	}
	return api.Check{Name: checkEnvironment, Status: api.CheckOK, Details: map[string]any{}}
}

func (c *Checker) checkDocumentIntelligence(ctx context.Context) api.Check {
	if len(c.cfg.MissingCredentials()) > 0 {
		return api.Check{Name: checkDocumentIntelligence, Status: api.CheckError,
			Details: "Missing DOCINT_ENDPOINT or DOCINT_KEY"}
	}

	result, err := c.source.Info(ctx)
	if err == nil {
		return api.Check{Name: checkDocumentIntelligence, Status: api.CheckOK,
			Details: map[string]any{"status_code": result.StatusCode}}
	}

	var domainErr *invoiceModel.Error
	if errors.As(err, &domainErr) && domainErr.Kind == invoiceModel.KindBackendRejected {
		return api.Check{Name: checkDocumentIntelligence, Status: api.CheckError,
			Details: map[string]any{"status_code": result.StatusCode, "body_preview": result.BodyPreview}}
	}

	c.logger.Error("readiness.document_intelligence.error", "error", err)
	return api.Check{Name: checkDocumentIntelligence, Status: api.CheckError,
		Details: map[string]any{"error": err.Error()}}
}
