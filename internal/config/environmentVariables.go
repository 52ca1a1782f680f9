package config

import (
	"log/slog"
	"time"
)

const (
	LOG_LEVEL_PROD              = slog.LevelInfo
	TRACE_ID_KEY                = "traceId"
	RATE_LIMIT_PER_SECOND       = 2
	BURST_RATE_LIMIT_PER_SECOND = 5

	ServiceName       = "invoice-extraction-api"
	DefaultAppVersion = "v0.1.0"

	//serverTimeouts
	//write timeout has to outlive a full extraction: submit, poll budget, one interval and a last poll
	ReadTimeout            = 15 * time.Second
	MaxExtractionDuration  = 2*BackendCallTimeout + DefaultPollTimeout + DefaultPollInterval
	WriteTimeoutHeadroom   = 30 * time.Second
	WriteTimeout           = MaxExtractionDuration + WriteTimeoutHeadroom
	IdleTimeout            = 120 * time.Second
	ShutdownContextTimeout = 10 * time.Second

	//server listening port
	ServerListenAddr = ":3000"

	//uploads
	MaxUploadSize = 32 << 20 //32mb

	//document intelligence
	DefaultAPIVersion     = "2023-07-31"
	DefaultPollInterval   = 1 * time.Second
	DefaultPollTimeout    = 60 * time.Second
	ReadinessCheckTimeout = 5 * time.Second
	BodyPreviewLimit      = 200

	//http pool for backend calls
	MaxIdleConns        = 50
	MaxIdleConnsPerHost = 25
	IdleConnTimeout     = 60 * time.Second
	BackendCallTimeout  = 30 * time.Second
)
