package extract

import (
	"archive/zip"
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "portfolioai/internal/errors"
)

const wordNS = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

func buildDOCX(t *testing.T, body string) []byte {
	t.Helper()
	files := map[string]string{
		"[Content_Types].xml": `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
			`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
			`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>` +
			`<Default Extension="xml" ContentType="application/xml"/>` +
			`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>` +
			`</Types>`,
		"_rels/.rels": `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
			`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
			`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>` +
			`</Relationships>`,
		"word/_rels/document.xml.rels": `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
			`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`,
		"word/document.xml": `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
			`<w:document xmlns:w="` + wordNS + `"><w:body>` + body + `</w:body></w:document>`,
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range files {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

// buildPDF writes a one-page PDF with a correct xref table showing text.
func buildPDF(text string) []byte {
	content := fmt.Sprintf("BT /F1 12 Tf 72 720 Td (%s) Tj ET", text)
	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 5 0 R >> >> /Contents 4 0 R >>",
		fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content),
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>",
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}
	xrefAt := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n0000000000 65535 f \n", len(objects)+1)
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xrefAt)
	return buf.Bytes()
}

func TestExtract_TXT(t *testing.T) {
	text, err := NewExtractor().Extract("resume.txt", []byte("Jane Doe\nGo developer — Zürich"))
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\nGo developer — Zürich", text)
}

func TestExtract_TXTInvalidUTF8(t *testing.T) {
	_, err := NewExtractor().Extract("resume.txt", []byte{0xff, 0xfe, 0xfd})

	var extractErr *apperrors.ExtractionError
	require.ErrorAs(t, err, &extractErr)
	assert.Equal(t, "txt", extractErr.Format)
}

func TestExtract_DOCX(t *testing.T) {
	body := `<w:p><w:r><w:t>Jane Doe</w:t></w:r></w:p>` +
		`<w:p><w:pPr><w:tabs><w:tab w:val="left" w:pos="720"/></w:tabs></w:pPr>` +
		`<w:r><w:t xml:space="preserve">Senior </w:t></w:r><w:r><w:t>Engineer</w:t></w:r></w:p>` +
		`<w:p/>` +
		`<w:p><w:r><w:t>Go</w:t><w:tab/><w:t>SQL</w:t></w:r></w:p>`

	text, err := NewExtractor().Extract("Resume.DOCX", buildDOCX(t, body))
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\nSenior Engineer\n\nGo\tSQL", text)
}

func TestExtract_DOCXCorrupt(t *testing.T) {
	_, err := NewExtractor().Extract("resume.docx", []byte("definitely not a zip"))

	var extractErr *apperrors.ExtractionError
	require.ErrorAs(t, err, &extractErr)
	assert.Equal(t, "docx", extractErr.Format)
	assert.Contains(t, err.Error(), "DOCX")
}

func TestExtract_PDF(t *testing.T) {
	text, err := NewExtractor().Extract("resume.pdf", buildPDF("Jane Doe Go Engineer"))
	require.NoError(t, err)
	assert.Contains(t, text, "Jane Doe Go Engineer")
}

func TestExtract_PDFCorrupt(t *testing.T) {
	_, err := NewExtractor().Extract("resume.pdf", []byte(strings.Repeat("garbage ", 40)))

	var extractErr *apperrors.ExtractionError
	require.ErrorAs(t, err, &extractErr)
	assert.Equal(t, "pdf", extractErr.Format)
}

func TestExtract_Unsupported(t *testing.T) {
	for _, name := range []string{"resume.csv", "resume", "resume.doc", "pdf", "archive.pdf.zip"} {
		t.Run(name, func(t *testing.T) {
			_, err := NewExtractor().Extract(name, []byte("a,b,c"))
			assert.ErrorIs(t, err, apperrors.ErrUnsupportedFileType)
		})
	}
}

func TestParagraphTexts_MalformedXML(t *testing.T) {
	_, err := paragraphTexts(`<w:document xmlns:w="` + wordNS + `"><w:body><w:p>`)
	assert.Error(t, err)
}
