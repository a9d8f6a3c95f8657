// Package extract turns uploaded resume documents into plain text.
package extract

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"

	apperrors "portfolioai/internal/errors"
)

const (
	extDOCX = ".docx"
	extPDF  = ".pdf"
	extTXT  = ".txt"
)

// SupportedExtensions lists the file suffixes Extract accepts.
func SupportedExtensions() []string {
	return []string{extDOCX, extPDF, extTXT}
}

// Extractor dispatches on the file extension. It is stateless.
type Extractor struct{}

// NewExtractor creates a new extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract converts the whole document in data to plain text.
func (e *Extractor) Extract(filename string, data []byte) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case extDOCX:
		return wrap("docx", extractDOCX, data)
	case extPDF:
		return wrap("pdf", extractPDF, data)
	case extTXT:
		return wrap("txt", extractTXT, data)
	default:
		return "", fmt.Errorf("%w: %q (supported: %s)", apperrors.ErrUnsupportedFileType,
			filename, strings.Join(SupportedExtensions(), ", "))
	}
}

// wrap runs fn and turns errors and parser panics into an ExtractionError.
func wrap(format string, fn func([]byte) (string, error), data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text, err = "", &apperrors.ExtractionError{Format: format, Err: fmt.Errorf("parser panic: %v", r)}
		}
	}()
	text, err = fn(data)
	if err != nil {
		return "", &apperrors.ExtractionError{Format: format, Err: err}
	}
	return text, nil
}

func extractTXT(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", errors.New("content is not valid UTF-8")
	}
	return string(data), nil
}

func extractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("page %d: %w", i, err)
		}
		sb.WriteString(text)
	}
	return sb.String(), nil
}

func extractDOCX(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open docx: %w", err)
	}
	defer doc.Close()

	paragraphs, err := paragraphTexts(doc.Editable().GetContent())
	if err != nil {
		return "", fmt.Errorf("parse document.xml: %w", err)
	}
	return strings.Join(paragraphs, "\n"), nil
}

// paragraphTexts walks WordprocessingML and returns the text of every w:p in
// document order. w:tab becomes a tab and w:br/w:cr a newline.
func paragraphTexts(documentXML string) ([]string, error) {
	dec := xml.NewDecoder(strings.NewReader(documentXML))
	var (
		paragraphs []string
		current    strings.Builder
		depth      int // nesting of open w:p elements
		inProps    int // inside w:pPr, where w:tab declares tab stops
		inText     bool
	)
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				if depth == 0 {
					current.Reset()
				}
				depth++
			case "pPr":
				inProps++
			case "t":
				inText = depth > 0
			case "tab":
				if depth > 0 && inProps == 0 {
					current.WriteByte('\t')
				}
			case "br", "cr":
				if depth > 0 {
					current.WriteByte('\n')
				}
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "p":
				depth--
				if depth == 0 {
					paragraphs = append(paragraphs, current.String())
				}
			case "pPr":
				inProps--
			case "t":
				inText = false
			}
		case xml.CharData:
			if inText {
				current.Write(t)
			}
		}
	}
	return paragraphs, nil
}
