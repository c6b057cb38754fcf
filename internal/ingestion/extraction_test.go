package ingestion

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const documentXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:body>
<w:p><w:r><w:t>JANE DOE</w:t></w:r></w:p>
<w:p><w:r><w:t xml:space="preserve">jane@example.com </w:t></w:r><w:r><w:tab/><w:t>9876543210</w:t></w:r></w:p>
<w:p><w:r><w:t>SKILLS</w:t></w:r></w:p>
<w:p><w:r><w:t>Go, SQL &amp; Docker</w:t></w:r><w:r><w:br/><w:t>Kubernetes</w:t></w:r></w:p>
</w:body>
</w:document>`

const documentRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`

func buildDocx(t *testing.T, body string) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	files := map[string]string{
		"word/document.xml":            body,
		"word/_rels/document.xml.rels": documentRels,
	}
	for name, content := range files {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestFormatFromFilename(t *testing.T) {
	tests := []struct {
		filename string
		expected string
	}{
		{"resume.pdf", FormatPDF},
		{"Resume.DOCX", FormatDOCX},
		{"cv.htm", FormatHTML},
		{"cv.html", FormatHTML},
		{"notes.text", FormatTXT},
		{"scan.JPEG", FormatJPEG},
		{"archive.tar.gz", "gz"},
		{"README", ""},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatFromFilename(tt.filename))
		})
	}
}

func TestExtractRawText_TXT(t *testing.T) {
	text, err := ExtractRawText(FormatTXT, []byte("Jane Doe  \r\nSkills\r\n\r\n\r\nGo"))

	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\nSkills\n\nGo", text)
}

func TestExtractRawText_DOCX(t *testing.T) {
	text, err := ExtractRawText(FormatDOCX, buildDocx(t, documentXML))

	require.NoError(t, err)
	assert.Equal(t, "JANE DOE\njane@example.com \t9876543210\nSKILLS\nGo, SQL & Docker\nKubernetes", text)
}

func TestExtractRawText_DOCXNotAZip(t *testing.T) {
	_, err := ExtractRawText(FormatDOCX, []byte("plain text pretending to be docx"))

	var extractionErr *ExtractionError
	require.ErrorAs(t, err, &extractionErr)
	assert.Equal(t, FormatDOCX, extractionErr.Format)
}

func TestExtractRawText_PDFInvalid(t *testing.T) {
	_, err := ExtractRawText(FormatPDF, []byte("not a pdf"))

	var extractionErr *ExtractionError
	require.ErrorAs(t, err, &extractionErr)
	assert.Equal(t, FormatPDF, extractionErr.Format)
}

func TestExtractRawText_HTML(t *testing.T) {
	page := `<html><head><title>CV</title><style>h1{color:red}</style></head>
<body><h1>Jane Doe</h1><p>jane@example.com</p><script>var x = 1;</script>
<h2>Skills</h2><ul><li>Go</li><li>PostgreSQL</li></ul><!-- hidden --></body></html>`

	text, err := ExtractRawText(FormatHTML, []byte(page))
	require.NoError(t, err)

	lines := nonEmptyTrimmedLines(text)
	assert.Equal(t, []string{"Jane Doe", "jane@example.com", "Skills", "Go", "PostgreSQL"}, lines)
	assert.NotContains(t, text, "color:red")
	assert.NotContains(t, text, "var x")
	assert.NotContains(t, text, "hidden")
}

func TestExtractRawText_Images(t *testing.T) {
	for _, format := range []string{FormatPNG, FormatJPG, FormatJPEG} {
		t.Run(format, func(t *testing.T) {
			_, err := ExtractRawText(format, []byte{0x89, 'P', 'N', 'G'})

			var unsupported *UnsupportedFormatError
			require.ErrorAs(t, err, &unsupported)
			assert.Contains(t, unsupported.Error(), "OCR")
		})
	}
}

func TestExtractRawText_Unknown(t *testing.T) {
	_, err := ExtractRawText("xls", []byte("data"))

	var unsupported *UnsupportedFormatError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, "xls", unsupported.Format)
}

func TestIsSupported(t *testing.T) {
	assert.True(t, IsSupported(FormatTXT))
	assert.True(t, IsSupported(FormatPDF))
	assert.True(t, IsSupported(FormatDOCX))
	assert.True(t, IsSupported(FormatHTML))
	assert.False(t, IsSupported(FormatPNG))
	assert.False(t, IsSupported(""))
}

func nonEmptyTrimmedLines(text string) []string {
	var lines []string
	for _, ln := range bytes.Split([]byte(text), []byte("\n")) {
		if trimmed := bytes.TrimSpace(ln); len(trimmed) > 0 {
			lines = append(lines, string(trimmed))
		}
	}
	return lines
}
