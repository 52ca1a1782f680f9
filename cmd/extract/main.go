// Command extract runs one local PDF through Document Intelligence and prints the normalized invoice.
//
//	extract -in invoice.pdf [-out normalized.json]
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/akolanti/InvoiceAPI/internal/config"
	"github.com/akolanti/InvoiceAPI/internal/extraction"
	"github.com/akolanti/InvoiceAPI/internal/invoice"
	"github.com/akolanti/InvoiceAPI/internal/pdfcheck"
	"github.com/akolanti/InvoiceAPI/pkg/logger_i"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "extract:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	flags := flag.NewFlagSet("extract", flag.ContinueOnError)
	in := flags.String("in", "", "path to the PDF invoice")
	out := flags.String("out", "", "write the normalized JSON here instead of stdout")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if *in == "" {
		return errors.New("-in is required")
	}

	cfg := config.Load()
	logger_i.Init(logger_i.Options{IsProd: cfg.Log.IsProd, Level: cfg.Log.Level, Output: os.Stderr})
	logger := logger_i.NewLogger("extract")

	document, err := os.ReadFile(*in)
	if err != nil {
		return fmt.Errorf("read %s: %w", *in, err)
	}
	if info, err := pdfcheck.Inspect(document); err != nil {
		logger.Warn("Could not inspect PDF locally", "error", err)
	} else {
		logger.Info("Sending invoice", "path", *in, "pages", info.Pages, "bytes", len(document))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	service := invoice.NewService(extraction.NewClient(extraction.ConfigFrom(cfg.DocIntel)))
	inv, err := service.ProcessDocument(ctx, document)
	if err != nil {
		return err
	}

	encoded, err := json.MarshalIndent(inv, "", "  ")
	if err != nil {
		return err
	}
	encoded = append(encoded, '\n')

	if *out == "" {
		_, err = stdout.Write(encoded)
		return err
	}
	if err := os.WriteFile(*out, encoded, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", *out, err)
	}
	logger.Info("Saved normalized invoice", "path", *out)
	return nil
}
