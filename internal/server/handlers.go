package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/jonathan/resume-profiler/internal/extraction"
	"github.com/jonathan/resume-profiler/internal/ingestion"
	"github.com/jonathan/resume-profiler/internal/schemas"
	"github.com/jonathan/resume-profiler/internal/types"
)

// Upload error messages shown to API clients.
const (
	msgNoFilePart    = "No file part in the request. Expected field name 'file'."
	msgNoFileName    = "No file selected for upload."
	msgNoTextFound   = "Could not extract text from uploaded file. The format may be unsupported or the file may be empty."
	msgFileTooLarge  = "Uploaded file is too large."
	uploadFieldName  = "file"
	uploadMemoryCap  = 8 << 20
	schemaViolations = "X-Schema-Violations"
)

// handleRoot is the plain-text liveness probe kept for existing frontends
func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, "Backend is running")
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleExtract runs profile extraction over raw resume text
func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes)

	var req types.ExtractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.errorResponse(w, HTTPStatus(tooLarge), "Request body is too large.")
			return
		}
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		verr := &ErrValidation{Field: "text", Message: "is required"}
		s.errorResponse(w, HTTPStatus(verr), verr.Error())
		return
	}

	profile := extraction.ExtractProfile(*req.Text, s.extractOpts...)
	s.checkSchema(w, profile)
	s.jsonResponse(w, http.StatusOK, profile)
}

// handleUpload accepts a multipart resume file, extracts its text and
// returns the text, the profile and upload metadata in one envelope.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes)

	if err := r.ParseMultipartForm(uploadMemoryCap); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.uploadError(w, HTTPStatus(tooLarge), msgFileTooLarge)
			return
		}
		s.uploadError(w, http.StatusBadRequest, msgNoFilePart)
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	file, header, err := r.FormFile(uploadFieldName)
	if err != nil {
		// A file input submitted without a selection arrives as a plain
		// form value rather than a file part.
		if _, ok := r.MultipartForm.Value[uploadFieldName]; ok {
			s.uploadError(w, http.StatusBadRequest, msgNoFileName)
			return
		}
		s.uploadError(w, http.StatusBadRequest, msgNoFilePart)
		return
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		s.uploadError(w, http.StatusBadRequest, "Failed to read uploaded file: "+err.Error())
		return
	}

	doc, err := ingestion.Ingest(header.Filename, data)
	if err != nil {
		status := HTTPStatus(err)
		log.Printf("[upload] %s rejected (%d): %v", header.Filename, status, err)
		s.uploadError(w, status, uploadErrorMessage(err))
		return
	}

	profile := extraction.ExtractProfile(doc.Text, s.extractOpts...)
	s.checkSchema(w, profile)

	log.Printf("[upload] %s: %d bytes, %d characters, %d warnings",
		doc.Metadata.Filename, doc.Metadata.Bytes, doc.Metadata.Characters, len(profile.Warnings))

	s.jsonResponse(w, http.StatusOK, types.UploadResponse{
		Success: true,
		Data: &types.UploadData{
			RawText:  doc.Text,
			Profile:  profile,
			Metadata: doc.Metadata,
		},
	})
}

func uploadErrorMessage(err error) string {
	var (
		missing     *ingestion.MissingFileError
		unsupported *ingestion.UnsupportedFormatError
	)
	switch {
	case errors.As(err, &missing):
		return msgNoFileName
	case errors.As(err, &unsupported):
		return fmt.Sprintf("Unsupported file type %q. %s.", unsupported.Format, capitalize(unsupported.Message))
	default:
		return msgNoTextFound
	}
}

func capitalize(s string) string {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}

func (s *Server) uploadError(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, types.UploadResponse{Success: false, Error: &message})
}

// handleValidate checks a submitted profile against the profile schema and
// the field validators
func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes)

	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), "Failed to read request body: "+err.Error())
		return
	}
	if !json.Valid(body) {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: not JSON")
		return
	}

	violations := schemas.Violations(schemas.ValidateProfileJSON(body))
	advisories := []string{}

	var profile types.Profile
	if err := json.Unmarshal(body, &profile); err == nil {
		advisories = schemas.CheckProfileFields(&profile)
	}

	s.jsonResponse(w, http.StatusOK, types.ValidateResponse{
		Valid:      len(violations) == 0,
		Violations: violations,
		Advisories: advisories,
	})
}

// checkSchema validates the profile when schema checking is enabled, logging
// violations and reporting their count in a response header.
func (s *Server) checkSchema(w http.ResponseWriter, p *types.Profile) {
	if !s.validateSchema {
		return
	}
	violations := schemas.ValidateProfile(p)
	w.Header().Set(schemaViolations, fmt.Sprintf("%d", len(violations)))
	for _, v := range violations {
		log.Printf("[schema] profile violation: %s", v)
	}
}
