// Package ingestion turns uploaded or on-disk resume files into plain text
// ready for profile extraction.
package ingestion

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/resume-profiler/internal/types"
)

// Document is the text of one ingested file plus its metadata.
type Document struct {
	Text     string
	Metadata *types.UploadMetadata
}

// Ingest validates the input boundary for one file and extracts its text.
// It fails with *MissingFileError when filename is blank,
// *UnsupportedFormatError for unknown types and *EmptyTextError when the
// extractor finds nothing.
func Ingest(filename string, data []byte) (*Document, error) {
	filename = filepath.Base(strings.TrimSpace(filename))
	if filename == "" || filename == "." || filename == string(filepath.Separator) {
		return nil, &MissingFileError{Message: "No file selected for upload."}
	}

	format := FormatFromFilename(filename)
	if format == "" {
		return nil, &UnsupportedFormatError{Format: format, Message: "file has no extension"}
	}

	text, err := ExtractRawText(format, data)
	if err != nil {
		return nil, err
	}
	if text == "" {
		return nil, &EmptyTextError{Filename: filename}
	}

	return &Document{
		Text:     text,
		Metadata: NewMetadata(filename, format, data, text),
	}, nil
}

// IngestFile reads path from disk and ingests it.
func IngestFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("file not found: %w", err)
		}
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return Ingest(filepath.Base(path), data)
}
