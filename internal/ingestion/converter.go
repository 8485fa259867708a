// Package ingestion turns uploaded document bytes into cleaned plain text.
package ingestion

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/gen2brain/go-fitz"
)

// Converter renders raw document bytes to UTF-8 text.
type Converter interface {
	Convert(ctx context.Context, data []byte) (string, error)
}

var pdfMagic = []byte("%PDF-")

// PDFConverter extracts the text layer of a PDF with MuPDF.
type PDFConverter struct{}

// Convert concatenates the text of every page. A document that fails to open
// or has no text (for example a scanned image) is unreadable.
func (PDFConverter) Convert(ctx context.Context, data []byte) (string, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return "", &DocumentUnreadableError{Reason: "failed to open PDF", Cause: err}
	}
	defer doc.Close()

	pageCount := doc.NumPage()
	if pageCount == 0 {
		return "", &DocumentUnreadableError{Reason: "PDF has no pages"}
	}

	var sb strings.Builder
	for i := 0; i < pageCount; i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		text, err := doc.Text(i)
		if err != nil {
			return "", &DocumentUnreadableError{Reason: fmt.Sprintf("failed to read page %d", i+1), Cause: err}
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}

	cleaned := CleanText(sb.String())
	if cleaned == "" {
		return "", &DocumentUnreadableError{Reason: "PDF contains no extractable text"}
	}
	return cleaned, nil
}

// PlainTextConverter accepts documents that are already text.
type PlainTextConverter struct{}

func (PlainTextConverter) Convert(_ context.Context, data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", &DocumentUnreadableError{Reason: "text is not valid UTF-8"}
	}
	cleaned := CleanText(string(data))
	if cleaned == "" {
		return "", &DocumentUnreadableError{Reason: "document is empty"}
	}
	return cleaned, nil
}

var textExtensions = map[string]bool{
	"":      true,
	".txt":  true,
	".text": true,
	".md":   true,
}

// ForDocument picks a converter from the PDF magic header or the file
// extension.
func ForDocument(filename string, data []byte) (Converter, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch {
	case bytes.HasPrefix(data, pdfMagic), ext == ".pdf":
		return PDFConverter{}, nil
	case textExtensions[ext]:
		return PlainTextConverter{}, nil
	default:
		return nil, &DocumentUnreadableError{Reason: fmt.Sprintf("unsupported document type %q", ext)}
	}
}

// CheckSize rejects input larger than limit. A limit of 0 disables the check.
func CheckSize(data []byte, limit int) error {
	if limit > 0 && len(data) > limit {
		return &TooLargeError{Size: len(data), Limit: limit}
	}
	return nil
}

// Convert selects a converter for the document and runs it.
func Convert(ctx context.Context, filename string, data []byte) (string, error) {
	conv, err := ForDocument(filename, data)
	if err != nil {
		return "", err
	}
	return conv.Convert(ctx, data)
}
