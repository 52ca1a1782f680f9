package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/akolanti/InvoiceAPI/internal/domain/invoiceModel"
)

func TestRun_RequiresInput(t *testing.T) {
	err := run([]string{}, &bytes.Buffer{})
	if err == nil || err.Error() != "-in is required" {
		t.Fatalf("run() error = %v", err)
	}
}

func TestRun_MissingFile(t *testing.T) {
	err := run([]string{"-in", filepath.Join(t.TempDir(), "missing.pdf")}, &bytes.Buffer{})
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("run() error = %v, want not-exist", err)
	}
}

func TestRun_MissingCredentials(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DOCINT_ENDPOINT", "")
	t.Setenv("DOCINT_KEY", "")

	path := filepath.Join(t.TempDir(), "invoice.pdf")
	if err := os.WriteFile(path, []byte("%PDF-1.4 fake"), 0o600); err != nil {
		t.Fatal(err)
	}

	err := run([]string{"-in", path}, &bytes.Buffer{})
	if !errors.Is(err, invoiceModel.ErrConfig) {
		t.Fatalf("run() error = %v, want CONFIG_ERROR", err)
	}
}
