package ingestion

import "fmt"

// MissingFileError is returned when no file or no filename was supplied
type MissingFileError struct {
	Message string
}

func (e *MissingFileError) Error() string {
	return e.Message
}

// UnsupportedFormatError is returned for file types without a text extractor
type UnsupportedFormatError struct {
	Format  string
	Message string
}

func (e *UnsupportedFormatError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("unsupported format %q: %s", e.Format, e.Message)
	}
	return fmt.Sprintf("unsupported format %q", e.Format)
}

// EmptyTextError is returned when a document yields no usable text
type EmptyTextError struct {
	Filename string
}

func (e *EmptyTextError) Error() string {
	return fmt.Sprintf("could not extract text from %q: the format may be unsupported or the file may be empty", e.Filename)
}

// ExtractionError represents a failure inside a format extractor
type ExtractionError struct {
	Format  string
	Message string
	Cause   error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s extraction failed: %s: %v", e.Format, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s extraction failed: %s", e.Format, e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}
