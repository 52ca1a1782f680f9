package customHttpClient

import (
	"net/http"
	"time"

	"github.com/akolanti/InvoiceAPI/internal/config"
)

// one pooled transport for every backend call so submit and poll requests reuse connections
var customTransport = &http.Transport{
	Proxy:               http.ProxyFromEnvironment,
	MaxIdleConns:        config.MaxIdleConns,
	MaxIdleConnsPerHost: config.MaxIdleConnsPerHost,
	IdleConnTimeout:     config.IdleConnTimeout,
}

func New(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = config.BackendCallTimeout
	}
	return &http.Client{
		Transport: customTransport,
		Timeout:   timeout,
	}
}
