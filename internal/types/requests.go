package types

import (
	"github.com/go-playground/validator/v10"
)

// ExtractRequest is the JSON body accepted by the extract endpoint.
// Text may be empty; an empty resume still yields a full profile.
type ExtractRequest struct {
	Text *string `json:"text" validate:"required"`
}

// Validate validates the ExtractRequest using the validator.
func (r *ExtractRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// UploadMetadata describes a file accepted by the upload endpoint.
type UploadMetadata struct {
	Filename   string `json:"filename"`
	Format     string `json:"format"`
	Bytes      int    `json:"bytes"`
	Characters int    `json:"characters"`
	Hash       string `json:"hash"`      // SHA256 hex digest of the raw upload
	Timestamp  string `json:"timestamp"` // RFC3339 format
}

// UploadData is the payload of a successful upload response.
type UploadData struct {
	RawText  string          `json:"raw_text"`
	Profile  *Profile        `json:"profile"`
	Metadata *UploadMetadata `json:"metadata"`
}

// UploadResponse mirrors the {success, data, error} envelope of the upload endpoint.
type UploadResponse struct {
	Success bool        `json:"success"`
	Data    *UploadData `json:"data"`
	Error   *string     `json:"error"`
}

// ValidateResponse lists schema violations for a submitted profile.
// Advisories come from the field checks and do not affect Valid.
type ValidateResponse struct {
	Valid      bool     `json:"valid"`
	Violations []string `json:"violations"`
	Advisories []string `json:"advisories"`
}
