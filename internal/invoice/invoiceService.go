package invoice

import (
	"context"
	"strings"
	"time"

	"github.com/akolanti/InvoiceAPI/internal/domain/invoiceModel"
	"github.com/akolanti/InvoiceAPI/internal/extraction"
	"github.com/akolanti/InvoiceAPI/internal/metrics"
	"github.com/akolanti/InvoiceAPI/internal/normalize"
	"github.com/akolanti/InvoiceAPI/pkg/logger_i"
)

// Extractor is the part of the extraction client the service needs.
type Extractor interface {
	SubmitAndAwait(ctx context.Context, document []byte) (extraction.AnalysisResult, error)
}

// Service is what the handlers and the CLI call. It knows nothing about HTTP.
type Service interface {
	ProcessDocument(ctx context.Context, document []byte) (invoiceModel.Invoice, error)
}

type service struct {
	extractor Extractor
	normalize func(raw []byte) (invoiceModel.Invoice, error)
}

func NewService(extractor Extractor) Service {
	return &service{
		extractor: extractor,
		normalize: normalize.Invoice,
	}
}

// ProcessDocument runs one document through analysis and normalization.
// Errors from either step are returned as they are.
func (s *service) ProcessDocument(ctx context.Context, document []byte) (inv invoiceModel.Invoice, err error) {
	if len(document) == 0 {
		return invoiceModel.Invoice{}, invoiceModel.NewError(invoiceModel.KindEmptyInput, "no document bytes supplied", nil)
	}
	log := logger_i.FromContext(ctx, "InvoiceService")

	start := time.Now()
	metrics.IncrementExtractionsInFlight()
	defer func() {
		metrics.DecrementExtractionsInFlight()
		outcome := outcomeLabel(err)
		metrics.CountExtractionOutcome(outcome)
		metrics.CaptureJobMetrics(outcome, time.Since(start))
	}()

	result, err := s.extractor.SubmitAndAwait(ctx, document)
	if err != nil {
		log.Error("invoice.extraction_failed", "error", err, "elapsed_ms", time.Since(start).Milliseconds())
		return invoiceModel.Invoice{}, err
	}

	inv, err = s.normalize(result.Body)
	if err != nil {
		log.Error("invoice.normalize_failed", "error", err)
		return invoiceModel.Invoice{}, err
	}

	log.Info("invoice.processed", "items", len(inv.Items), "elapsed_ms", time.Since(start).Milliseconds())
	return inv, nil
}

func outcomeLabel(err error) string {
	if err == nil {
		return "ok"
	}
	if kind := invoiceModel.KindOf(err); kind != "" {
		return strings.ToLower(string(kind))
	}
	return "unknown_error"
}
