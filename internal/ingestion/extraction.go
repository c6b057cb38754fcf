package ingestion

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
	"golang.org/x/net/html"
)

// Supported document formats, named by their lowercase file extension
const (
	FormatTXT  = "txt"
	FormatPDF  = "pdf"
	FormatDOCX = "docx"
	FormatHTML = "html"
	FormatPNG  = "png"
	FormatJPG  = "jpg"
	FormatJPEG = "jpeg"
)

var formatAliases = map[string]string{
	"htm":  FormatHTML,
	"text": FormatTXT,
}

// FormatFromFilename returns the lowercase extension of name without the dot,
// folding aliases such as "htm" onto their canonical format.
func FormatFromFilename(name string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	if alias, ok := formatAliases[ext]; ok {
		return alias
	}
	return ext
}

// IsSupported reports whether format has a text extractor.
func IsSupported(format string) bool {
	switch format {
	case FormatTXT, FormatPDF, FormatDOCX, FormatHTML:
		return true
	}
	return false
}

func isImage(format string) bool {
	return format == FormatPNG || format == FormatJPG || format == FormatJPEG
}

// ExtractRawText dispatches data to the extractor for format and returns the
// document text, cleaned but otherwise unnormalized.
func ExtractRawText(format string, data []byte) (string, error) {
	var (
		text string
		err  error
	)

	switch {
	case format == FormatTXT:
		text, _ = DecodeText(data)
	case format == FormatPDF:
		text, err = extractPDFText(data)
	case format == FormatDOCX:
		text, err = extractDocxText(data)
	case format == FormatHTML:
		text, err = extractHTMLText(data)
	case isImage(format):
		return "", &UnsupportedFormatError{
			Format:  format,
			Message: "image text recognition (OCR) is not available; upload a PDF, DOCX, HTML or TXT file",
		}
	default:
		return "", &UnsupportedFormatError{
			Format:  format,
			Message: "supported formats are pdf, docx, html and txt",
		}
	}
	if err != nil {
		return "", err
	}

	return CleanText(text), nil
}

func extractPDFText(data []byte) (text string, err error) {
	// The PDF reader panics on some malformed cross-reference tables.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = &ExtractionError{Format: FormatPDF, Message: fmt.Sprintf("malformed document: %v", r)}
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ExtractionError{Format: FormatPDF, Message: "failed to read pdf", Cause: err}
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			// Keep whatever the other pages yield.
			continue
		}
		sb.WriteString(content)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

const wordprocessingNS = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

func extractDocxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ExtractionError{Format: FormatDOCX, Message: "failed to parse docx", Cause: err}
	}
	defer func() { _ = doc.Close() }()

	text, err := documentXMLText(doc.Editable().GetContent())
	if err != nil {
		return "", &ExtractionError{Format: FormatDOCX, Message: "failed to read document body", Cause: err}
	}
	return text, nil
}

// documentXMLText flattens word/document.xml into text: one line per
// paragraph, with tabs and explicit breaks kept.
func documentXMLText(body string) (string, error) {
	dec := xml.NewDecoder(strings.NewReader(body))
	var (
		sb     strings.Builder
		inText bool
	)

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Space != wordprocessingNS {
				continue
			}
			switch t.Name.Local {
			case "t":
				inText = true
			case "tab":
				sb.WriteByte('\t')
			case "br", "cr":
				sb.WriteByte('\n')
			}
		case xml.EndElement:
			if t.Name.Space != wordprocessingNS {
				continue
			}
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				sb.WriteByte('\n')
			}
		case xml.CharData:
			if inText {
				sb.Write(t)
			}
		}
	}
	return sb.String(), nil
}

var blockElements = map[string]bool{
	"p": true, "div": true, "br": true, "li": true, "tr": true, "section": true,
	"article": true, "header": true, "footer": true, "ul": true, "ol": true, "table": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
}

func extractHTMLText(data []byte) (string, error) {
	decoded, _ := DecodeText(data)
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(decoded))
	if err != nil {
		return "", &ExtractionError{Format: FormatHTML, Message: "failed to parse HTML", Cause: err}
	}

	doc.Find("script, style, noscript, template, head").Remove()

	var sb strings.Builder
	for _, n := range doc.Selection.Nodes {
		writeNodeText(&sb, n)
	}
	return sb.String(), nil
}

// writeNodeText appends the text under n, ending block elements with a
// newline so headings and list items stay on their own lines.
func writeNodeText(sb *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		sb.WriteString(n.Data)
		return
	case html.CommentNode:
		return
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeNodeText(sb, c)
	}
	if n.Type == html.ElementNode && blockElements[n.Data] {
		sb.WriteByte('\n')
	}
}
