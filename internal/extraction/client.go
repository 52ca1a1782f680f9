package extraction

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/akolanti/InvoiceAPI/internal/config"
	"github.com/akolanti/InvoiceAPI/internal/customHttpClient"
	"github.com/akolanti/InvoiceAPI/internal/domain/invoiceModel"
	"github.com/akolanti/InvoiceAPI/internal/metrics"
	"github.com/akolanti/InvoiceAPI/pkg/logger_i"
)

const (
	analyzePath      = "/formrecognizer/documentModels/prebuilt-invoice:analyze"
	infoPath         = "/formrecognizer/info"
	subscriptionKey  = "Ocp-Apim-Subscription-Key"
	operationHeader  = "Operation-Location"
	maxResponseBytes = 64 << 20
	maxDiagnosticLen = 64 << 10
)

var errResponseTooLarge = errors.New("response body exceeds size limit")

// Config is the client's read-only view of the backend. It is safe to share across goroutines.
type Config struct {
	Endpoint     string
	APIKey       string
	APIVersion   string
	PollInterval time.Duration
	PollTimeout  time.Duration
}

func ConfigFrom(c config.DocIntelConfig) Config {
	return Config{
		Endpoint:     c.Endpoint,
		APIKey:       c.APIKey,
		APIVersion:   c.APIVersion,
		PollInterval: c.PollInterval,
		PollTimeout:  c.PollTimeout,
	}
}

// AnalysisResult is the body of the succeeded poll response, byte for byte.
type AnalysisResult struct {
	Status string
	Body   json.RawMessage
}

// InfoResult is what the backend's info endpoint answered.
type InfoResult struct {
	StatusCode  int
	BodyPreview string
}

type Client struct {
	cfg          Config
	httpClient   *http.Client
	clock        Clock
	maxBodyBytes int64
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func WithClock(clock Clock) Option {
	return func(c *Client) { c.clock = clock }
}

func NewClient(cfg Config, opts ...Option) *Client {
	cfg.Endpoint = strings.TrimRight(strings.TrimSpace(cfg.Endpoint), "/")
	if cfg.APIVersion == "" {
		cfg.APIVersion = config.DefaultAPIVersion
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = config.DefaultPollInterval
	}
	if cfg.PollTimeout <= 0 {
		cfg.PollTimeout = config.DefaultPollTimeout
	}
	c := &Client{
		cfg:          cfg,
		httpClient:   customHttpClient.New(config.BackendCallTimeout),
		clock:        wallClock{},
		maxBodyBytes: maxResponseBytes,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) validateConfig() error {
	var missing []string
	if c.cfg.Endpoint == "" {
		missing = append(missing, "endpoint")
	}
	if strings.TrimSpace(c.cfg.APIKey) == "" {
		missing = append(missing, "api key")
	}
	if len(missing) > 0 {
		return invoiceModel.NewError(invoiceModel.KindConfig,
			"missing document intelligence "+strings.Join(missing, " and "), nil)
	}
	return nil
}

// SubmitAndAwait sends the document for analysis and blocks until the operation reaches a
// terminal state or the poll budget runs out. The document is forwarded as given.
func (c *Client) SubmitAndAwait(ctx context.Context, document []byte) (AnalysisResult, error) {
	if err := c.validateConfig(); err != nil {
		return AnalysisResult{}, err
	}
	log := logger_i.FromContext(ctx, "DocIntelClient")

	location, err := c.submit(ctx, document, log)
	if err != nil {
		return AnalysisResult{}, err
	}

	op := newOperation(location, c.clock.Now())
	result, err := c.await(ctx, op, log)
	metrics.ObservePollAttempts(op.attempts)
	return result, err
}

func (c *Client) submit(ctx context.Context, document []byte, log *logger_i.Logger) (string, error) {
	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("docintel_submit", time.Since(start)) }()

	url := fmt.Sprintf("%s%s?api-version=%s", c.cfg.Endpoint, analyzePath, c.cfg.APIVersion)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(document))
	if err != nil {
		return "", invoiceModel.NewError(invoiceModel.KindConfig, "build analyze request", err)
	}
	req.Header.Set(subscriptionKey, c.cfg.APIKey)
	req.Header.Set("Content-Type", string(invoiceModel.PDF))

	log.Info("docintel.submit.request", "bytes", len(document))
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error("docintel.submit.send_error", "error", err, "elapsed_ms", time.Since(start).Milliseconds())
		return "", invoiceModel.NewError(invoiceModel.KindTransport, "submit document", err)
	}
	body, err := readDiagnostic(resp.Body, log)
	if err != nil {
		return "", invoiceModel.NewError(invoiceModel.KindTransport, "read analyze response", err)
	}

	if resp.StatusCode != http.StatusAccepted {
		log.Error("docintel.submit.rejected", "status", resp.StatusCode, "body", string(body))
		return "", &invoiceModel.Error{
			Kind:       invoiceModel.KindBackendRejected,
			Message:    fmt.Sprintf("expected %d from analyze", http.StatusAccepted),
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}

	location := strings.TrimSpace(resp.Header.Get(operationHeader))
	if location == "" {
		log.Error("docintel.submit.missing_operation_location")
		return "", &invoiceModel.Error{
			Kind:       invoiceModel.KindBackendRejected,
			Message:    "analyze response missing " + operationHeader + " header",
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}

	log.Info("docintel.submit.accepted", "elapsed_ms", time.Since(start).Milliseconds())
	return location, nil
}

func (c *Client) await(ctx context.Context, op *operation, log *logger_i.Logger) (AnalysisResult, error) {
	if err := op.advance(StatePolling); err != nil {
		return AnalysisResult{}, err
	}

	for {
		now := c.clock.Now()
		if op.expired(now, c.cfg.PollTimeout) {
			if err := op.advance(StateTimedOut); err != nil {
				return AnalysisResult{}, err
			}
			log.Error("docintel.poll.timeout", "attempts", op.attempts, "budget", c.cfg.PollTimeout.String())
			return AnalysisResult{}, invoiceModel.NewError(invoiceModel.KindPollTimeout,
				fmt.Sprintf("analysis did not finish within %s", c.cfg.PollTimeout), nil)
		}

		op.attempts++
		body, err := c.poll(ctx, op.location, log)
		if errors.Is(err, errResponseTooLarge) {
			log.Error("docintel.poll.body_too_large", "attempt", op.attempts, "limit_bytes", c.maxBodyBytes)
			return AnalysisResult{}, invoiceModel.NewError(invoiceModel.KindMalformedResult,
				fmt.Sprintf("poll response larger than %d bytes", c.maxBodyBytes), err)
		}
		if err != nil {
			return AnalysisResult{}, invoiceModel.NewError(invoiceModel.KindTransport, "poll operation", err)
		}

		var pr pollResponse
		if err := json.Unmarshal(body, &pr); err != nil {
			// the backend sometimes answers with an empty body while warming up
			log.Warn("docintel.poll.invalid_json", "attempt", op.attempts, "error", err)
			if err := c.clock.Sleep(ctx, c.cfg.PollInterval); err != nil {
				return AnalysisResult{}, invoiceModel.NewError(invoiceModel.KindTransport, "poll interrupted", err)
			}
			continue
		}

		next := classifyStatus(pr.Status)
		if err := op.advance(next); err != nil {
			return AnalysisResult{}, err
		}

		switch op.state {
		case StateSucceeded:
			log.Info("docintel.poll.succeeded", "attempts", op.attempts,
				"elapsed_ms", c.clock.Now().Sub(op.started).Milliseconds())
			return AnalysisResult{Status: pr.Status, Body: json.RawMessage(body)}, nil
		case StateFailed:
			log.Error("docintel.poll.failed", "attempts", op.attempts, "detail", string(pr.Error))
			return AnalysisResult{}, &invoiceModel.Error{
				Kind:    invoiceModel.KindBackendFailed,
				Message: "document intelligence failed to process the document",
				Detail:  pr.Error,
			}
		}

		log.Debug("docintel.poll.in_progress", "status", pr.Status, "attempt", op.attempts,
			"elapsed_s", int(now.Sub(op.started).Seconds()))
		if err := c.clock.Sleep(ctx, c.cfg.PollInterval); err != nil {
			return AnalysisResult{}, invoiceModel.NewError(invoiceModel.KindTransport, "poll interrupted", err)
		}
	}
}

func (c *Client) poll(ctx context.Context, location string, log *logger_i.Logger) ([]byte, error) {
	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("docintel_poll", time.Since(start)) }()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set(subscriptionKey, c.cfg.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error("docintel.poll.send_error", "error", err)
		return nil, err
	}
	if resp.StatusCode/100 != 2 {
		log.Warn("docintel.poll.non_2xx", "status", resp.StatusCode)
	}
	return readAndClose(resp.Body, c.maxBodyBytes, log)
}

// Info performs the cheap read-only call used by readiness checks. It never submits a document.
func (c *Client) Info(ctx context.Context) (InfoResult, error) {
	if err := c.validateConfig(); err != nil {
		return InfoResult{}, err
	}
	log := logger_i.FromContext(ctx, "DocIntelClient")

	infoCtx, cancel := context.WithTimeout(ctx, config.ReadinessCheckTimeout)
	defer cancel()

	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("docintel_info", time.Since(start)) }()

	url := fmt.Sprintf("%s%s?api-version=%s", c.cfg.Endpoint, infoPath, c.cfg.APIVersion)
	req, err := http.NewRequestWithContext(infoCtx, http.MethodGet, url, nil)
	if err != nil {
		return InfoResult{}, invoiceModel.NewError(invoiceModel.KindConfig, "build info request", err)
	}
	req.Header.Set(subscriptionKey, c.cfg.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error("docintel.info.send_error", "error", err)
		return InfoResult{}, invoiceModel.NewError(invoiceModel.KindTransport, "info request", err)
	}
	body, err := readDiagnostic(resp.Body, log)
	if err != nil {
		return InfoResult{}, invoiceModel.NewError(invoiceModel.KindTransport, "read info response", err)
	}

	result := InfoResult{StatusCode: resp.StatusCode, BodyPreview: preview(body)}
	if resp.StatusCode != http.StatusOK {
		log.Error("docintel.info.unhealthy", "status", resp.StatusCode, "body_preview", result.BodyPreview)
		return result, &invoiceModel.Error{
			Kind:       invoiceModel.KindBackendRejected,
			Message:    "info endpoint answered non-200",
			StatusCode: resp.StatusCode,
			Body:       result.BodyPreview,
		}
	}
	return result, nil
}

// readAndClose reads the whole body and fails with errResponseTooLarge rather than truncate past limit.
func readAndClose(body io.ReadCloser, limit int64, log *logger_i.Logger) ([]byte, error) {
	defer closeBody(body, log)
	data, err := io.ReadAll(io.LimitReader(body, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > limit {
		return nil, errResponseTooLarge
	}
	return data, nil
}

// readDiagnostic is for bodies only kept for logs and error details, where a cut-off tail is fine.
func readDiagnostic(body io.ReadCloser, log *logger_i.Logger) ([]byte, error) {
	defer closeBody(body, log)
	data, err := io.ReadAll(io.LimitReader(body, maxDiagnosticLen))
	if err != nil {
		return nil, err
	}
	return data, nil
}

func closeBody(body io.ReadCloser, log *logger_i.Logger) {
	if err := body.Close(); err != nil {
		log.Warn("docintel.http.response_body_close_error", "error", err)
	}
}

func preview(body []byte) string {
	runes := []rune(string(body))
	if len(runes) > config.BodyPreviewLimit {
		return string(runes[:config.BodyPreviewLimit])
	}
	return string(runes)
}
