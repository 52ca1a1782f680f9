// @title           Invoice Extraction API
// @version         1.0
// @description     Upload a PDF invoice and get normalized JSON back, backed by Azure Document Intelligence.
// @termsOfService  http://swagger.io/terms/

// @license.name    Apache 2.0
// @license.url     http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:3000
// @BasePath  /
// @schemes   http https
package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/akolanti/InvoiceAPI/internal/config"
	"github.com/akolanti/InvoiceAPI/internal/extraction"
	"github.com/akolanti/InvoiceAPI/internal/handlers"
	"github.com/akolanti/InvoiceAPI/internal/health"
	"github.com/akolanti/InvoiceAPI/internal/invoice"
	"github.com/akolanti/InvoiceAPI/internal/server"
	"github.com/akolanti/InvoiceAPI/pkg/logger_i"
)

var listenAddr string

func main() {
	cfg := config.Load()

	logger_i.Init(logger_i.Options{IsProd: cfg.Log.IsProd, Level: cfg.Log.Level})
	var logger = logger_i.NewLogger("main")
	if cfg.EnvFileUsed != "" {
		logger.Info("Loaded environment file", "path", cfg.EnvFileUsed)
	}

	//config
	flag.StringVar(&listenAddr, "listen-addr", cfg.Server.ListenAddr, "server listen address")
	flag.Parse()

	if missing := cfg.MissingCredentials(); len(missing) > 0 {
		// liveness keeps working; extraction answers CONFIG_ERROR until these are set
		logger.Warn("Document Intelligence is not configured", "missing", missing)
	}

	client := extraction.NewClient(extraction.ConfigFrom(cfg.DocIntel))
	service := invoice.NewService(client)
	readiness := health.NewChecker(cfg, client)
	handlers.InitInvoiceHandler(service, readiness, cfg.StrictPDF)

	//server handling
	gracefulShutdown := make(chan os.Signal, 1)
	signal.Notify(gracefulShutdown, syscall.SIGINT, syscall.SIGTERM)
	stopExecution := make(chan bool, 1)

	shutdownParams := server.ShutdownParams{
		GracefulShutdown: gracefulShutdown,
		StopExecution:    stopExecution,
	}
	go server.ShutDownHandler(shutdownParams)
	go server.CreateServer(listenAddr, cfg.ServerWriteTimeout())

	logger.Info("Invoice extraction API started", "version", cfg.AppVersion)
	<-stopExecution
	logger.Info("Server stopped")
}
