package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
	"unicode/utf8"

	"github.com/jonathan/resume-profiler/internal/types"
)

// NewMetadata describes an ingested document. The hash covers the raw bytes
// so identical uploads can be recognized regardless of extraction changes.
func NewMetadata(filename, format string, data []byte, text string) *types.UploadMetadata {
	return &types.UploadMetadata{
		Filename:   filename,
		Format:     format,
		Bytes:      len(data),
		Characters: utf8.RuneCountInString(text),
		Hash:       computeHash(data),
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	}
}

// computeHash computes SHA256 hash of content and returns hex string
func computeHash(content []byte) string {
	hash := sha256.Sum256(content)
	return hex.EncodeToString(hash[:])
}
