package middleware

import (
	"net/http"
	"strconv"

	"github.com/akolanti/InvoiceAPI/internal/handlers"
	"github.com/akolanti/InvoiceAPI/internal/metrics"
	"github.com/akolanti/InvoiceAPI/pkg/logger_i"
)

type requestResponseStruct struct {
	writer     http.ResponseWriter
	req        *http.Request
	badRequest failureStruct
	logger     *logger_i.Logger
}

type failureStruct struct {
	isBadRequest bool
	httpCode     int
	code         string
	errorMessage string
}

var HealthHandler = Wrap(handlers.HealthHandler, false)
var ReadinessHandler = Wrap(handlers.ReadinessHandler, false)

var ExtractHandler = Wrap(handlers.ExtractHandler, true)
var RawInvoiceHandler = Wrap(handlers.RawInvoiceHandler, true)

// Wrap adds the trace id and request metrics. Extraction routes are also rate limited per client IP.
func Wrap(next http.HandlerFunc, limited bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec := &metrics.HttpStatusRecorder{ResponseWriter: w, Status: http.StatusOK} //metrics
		defer func() {
			metrics.HttpRequestsTotal.WithLabelValues(r.URL.Path, strconv.Itoa(rec.Status)).Inc() //metrics
		}()

		re := processRequest(requestResponseStruct{req: r, writer: rec}, limited)
		if re.badRequest.isBadRequest {
			handleBadRequest(re)
			return
		}
		next(rec, re.req)
	}
}

func processRequest(re requestResponseStruct, limited bool) requestResponseStruct {
	re.logger = logger_i.NewLogger("middleware")
	re = injectTrace(re)
	if re.badRequest.isBadRequest {
		return re
	}
	re.logger.Info("New request received", "method", re.req.Method, "path", re.req.URL.Path)
	if limited {
		re = rateLimiter(re)
	}
	return re
}
