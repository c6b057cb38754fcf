package schemas

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/jonathan/resume-profiler/internal/types"
	"github.com/xeipuuv/gojsonschema"
)

// ProfileSchema is the JSON Schema every extracted profile must satisfy.
//
//go:embed profile.schema.json
var ProfileSchema string

const profileSchemaPath = "(embedded profile schema)"

var (
	profileSchemaOnce sync.Once
	profileSchema     *gojsonschema.Schema
	profileSchemaErr  error
)

func compiledProfileSchema() (*gojsonschema.Schema, error) {
	profileSchemaOnce.Do(func() {
		profileSchema, profileSchemaErr = gojsonschema.NewSchema(gojsonschema.NewStringLoader(ProfileSchema))
		if profileSchemaErr != nil {
			profileSchemaErr = &SchemaLoadError{Path: profileSchemaPath, Message: "failed to compile", Cause: profileSchemaErr}
		}
	})
	return profileSchema, profileSchemaErr
}

// ValidateProfileJSON validates a serialized profile against ProfileSchema.
// It returns a *ValidationError for schema violations and a plain error when
// data is not JSON at all.
func ValidateProfileJSON(data []byte) error {
	schema, err := compiledProfileSchema()
	if err != nil {
		return err
	}
	if !json.Valid(data) {
		return fmt.Errorf("document is not valid JSON")
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("failed to validate profile: %w", err)
	}
	return resultError(result)
}

// ValidateProfile checks p against ProfileSchema and returns the violations
// as "field: message" strings. A conforming profile yields an empty list.
func ValidateProfile(p *types.Profile) []string {
	data, err := json.Marshal(p)
	if err != nil {
		return []string{fmt.Sprintf("(root): cannot serialize profile: %v", err)}
	}
	return Violations(ValidateProfileJSON(data))
}

// Violations renders the result of a validation call as a flat message list.
func Violations(err error) []string {
	if err == nil {
		return []string{}
	}
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Messages()
	}
	return []string{fmt.Sprintf("(root): %v", err)}
}
