package pdfcheck

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dslipak/pdf"
)

var ErrUnreadable = errors.New("document is not a readable PDF")

const textSampleTimeout = 2 * time.Second

// Info is what a quick local look at an upload tells us before it goes to the backend.
type Info struct {
	Pages   int
	HasText bool
}

// Inspect opens the document in memory and counts its pages. HasText reports whether the
// first page carries extractable text, which scanned invoices usually do not.
func Inspect(document []byte) (info Info, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrUnreadable, r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(document), int64(len(document)))
	if err != nil {
		return Info{}, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}

	info.Pages = reader.NumPage()
	if info.Pages < 1 {
		return Info{}, fmt.Errorf("%w: no pages", ErrUnreadable)
	}

	page := reader.Page(1)
	if !page.V.IsNull() {
		text, textErr := sampleText(page)
		info.HasText = textErr == nil && strings.TrimSpace(text) != ""
	}
	return info, nil
}

func sampleText(page pdf.Page) (string, error) {
	type result struct {
		content string
		err     error
	}
	resChan := make(chan result, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				resChan <- result{err: fmt.Errorf("text extraction panicked: %v", r)}
			}
		}()
		content, err := page.GetPlainText(nil)
		resChan <- result{content, err}
	}()

	select {
	case r := <-resChan:
		return r.content, r.err
	case <-time.After(textSampleTimeout):
		return "", errors.New("text extraction timed out")
	}
}
