package ingestion

import (
	"bytes"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// Encoding names reported by DecodeText
const (
	EncodingUTF8    = "utf-8"
	EncodingUTF8BOM = "utf-8-sig"
	EncodingUTF16   = "utf-16"
	EncodingUTF16LE = "utf-16-le"
	EncodingUTF16BE = "utf-16-be"
	EncodingCP1252  = "cp1252"
	EncodingLatin1  = "latin-1"
	EncodingLenient = "utf-8-replace"
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// Bytes with no assigned character in Windows-1252.
var cp1252Undefined = [256]bool{0x81: true, 0x8D: true, 0x8F: true, 0x90: true, 0x9D: true}

// DecodeText converts plain-text file bytes to a string by walking an
// encoding ladder: UTF-8 (with or without BOM), UTF-16 with BOM, BOM-less
// UTF-16 in either byte order, Windows-1252, Latin-1. The last rung always
// succeeds, so DecodeText never fails; it also reports which encoding won.
func DecodeText(data []byte) (string, string) {
	if bytes.HasPrefix(data, bomUTF8) && utf8.Valid(data[len(bomUTF8):]) {
		return string(data[len(bomUTF8):]), EncodingUTF8BOM
	}
	if utf8.Valid(data) {
		return string(data), EncodingUTF8
	}

	if bytes.HasPrefix(data, bomUTF16LE) || bytes.HasPrefix(data, bomUTF16BE) {
		if s, ok := decodeWith(unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM), data); ok {
			return s, EncodingUTF16
		}
	}

	if looksUTF16(data) {
		order, name := unicode.LittleEndian, EncodingUTF16LE
		if zeroBytesAt(data, 0) > zeroBytesAt(data, 1) {
			order, name = unicode.BigEndian, EncodingUTF16BE
		}
		if s, ok := decodeWith(unicode.UTF16(order, unicode.IgnoreBOM), data); ok {
			return s, name
		}
	}

	if !hasCP1252Undefined(data) {
		if s, ok := decodeWith(charmap.Windows1252, data); ok {
			return s, EncodingCP1252
		}
	}
	if s, ok := decodeWith(charmap.ISO8859_1, data); ok {
		return s, EncodingLatin1
	}
	return strings.ToValidUTF8(string(data), "\uFFFD"), EncodingLenient
}

// decodeWith decodes data and rejects results containing replacement runes.
func decodeWith(enc encoding.Encoding, data []byte) (string, bool) {
	out, err := enc.NewDecoder().Bytes(data)
	if err != nil || bytes.ContainsRune(out, utf8.RuneError) {
		return "", false
	}
	return string(out), true
}

// looksUTF16 treats even-length input with NUL bytes as BOM-less UTF-16.
func looksUTF16(data []byte) bool {
	return len(data) >= 2 && len(data)%2 == 0 && bytes.IndexByte(data, 0) >= 0
}

func zeroBytesAt(data []byte, parity int) int {
	n := 0
	for i := parity; i < len(data); i += 2 {
		if data[i] == 0 {
			n++
		}
	}
	return n
}

func hasCP1252Undefined(data []byte) bool {
	for _, b := range data {
		if cp1252Undefined[b] {
			return true
		}
	}
	return false
}

var (
	trailingSpaceRe = regexp.MustCompile(`[ \t]+\n`)
	blankRunRe      = regexp.MustCompile(`\n{3,}`)
)

// CleanText tidies text coming out of a format extractor while keeping the
// line structure the section splitter depends on: line endings become LF,
// form feeds become line breaks, non-breaking spaces become spaces, trailing
// blanks are dropped and blank-line runs are capped at one empty line.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	content = strings.ReplaceAll(content, "\f", "\n")
	content = strings.ReplaceAll(content, "\u00a0", " ")
	content = strings.ReplaceAll(content, "\x00", "")

	content = trailingSpaceRe.ReplaceAllString(content+"\n", "\n")
	content = blankRunRe.ReplaceAllString(content, "\n\n")

	return strings.TrimSpace(content)
}
