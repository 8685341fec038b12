package extract

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/ledongthuc/pdf"
)

const mimePDF = "application/pdf"

// ErrUnsupported is returned for payloads that are not PDF documents.
var ErrUnsupported = errors.New("unsupported document type")

// TextFromPDF extracts the text of every page and joins the pages that had any.
// Library used: github.com/ledongthuc/pdf.
func TextFromPDF(ctx context.Context, data []byte) (string, error) {
	pages, err := PDFPages(ctx, data)
	if err != nil {
		return "", err
	}
	return JoinPages(pages), nil
}

// PDFPages returns one entry per page. Pages without extractable text
// (scanned images, empty pages, decode failures) are nil. Whitespace-only
// text still counts as present.
func PDFPages(ctx context.Context, data []byte) ([]*string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty payload", ErrUnsupported)
	}
	if mime := detectMime(data); mime != mimePDF {
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, mime)
	}

	reader, err := openReader(data)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}

	total := reader.NumPage()
	pages := make([]*string, total)
	for i := 1; i <= total; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		pages[i-1] = pageText(reader.Page(i))
	}
	return pages, nil
}

func openReader(data []byte) (reader *pdf.Reader, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			reader, err = nil, fmt.Errorf("malformed pdf: %v", rec)
		}
	}()
	return pdf.NewReader(bytes.NewReader(data), int64(len(data)))
}

func pageText(page pdf.Page) (text *string) {
	// Malformed content streams can panic inside the pdf package.
	defer func() {
		if rec := recover(); rec != nil {
			text = nil
		}
	}()
	if page.V.IsNull() {
		return nil
	}
	plain, err := page.GetPlainText(nil)
	if err != nil {
		return nil
	}
	// Every text object starts with a line break; drop the leading ones so
	// the page opens on its first line.
	plain = strings.TrimLeft(plain, "\r\n")
	if plain == "" {
		return nil
	}
	return &plain
}

// JoinPages concatenates the present pages in order, each followed by a line break.
func JoinPages(pages []*string) string {
	var buf strings.Builder
	for _, p := range pages {
		if p == nil || *p == "" {
			continue
		}
		buf.WriteString(*p)
		buf.WriteString("\n")
	}
	return buf.String()
}

func detectMime(data []byte) string {
	clean := strings.ToLower(strings.TrimSpace(strings.Split(http.DetectContentType(data), ";")[0]))
	if clean == mimePDF || bytes.HasPrefix(data, []byte("%PDF-")) {
		return mimePDF
	}
	return clean
}
