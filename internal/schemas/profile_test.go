package schemas

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/resume-profiler/internal/extraction"
	"github.com/jonathan/resume-profiler/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileSchema_Compiles(t *testing.T) {
	_, err := compiledProfileSchema()
	require.NoError(t, err)
}

func TestValidateProfile_ExtractedProfiles(t *testing.T) {
	inputs := []string{
		"",
		"JOHN SMITH\njohn.smith@example.com\n9876543210\n\nEDUCATION\nB.Tech Computer Science, ABC Institute of Technology\n\nSKILLS\nPython, SQL, React\n\nEXPERIENCE\nABC Corp\nSoftware Engineer\nJune 2022 - Present",
		"Jane Doe\nFresher with 6 months internship\nSkills: Go, Docker",
	}

	for _, input := range inputs {
		assert.Empty(t, ValidateProfile(extraction.ExtractProfile(input)))
	}
}

func TestValidateProfile_Violations(t *testing.T) {
	p := extraction.ExtractProfile("")
	p.Employment.Status = "Unknown"
	p.Skills = nil

	violations := ValidateProfile(p)

	assert.NotEmpty(t, violations)
	assert.Contains(t, joinLines(violations), "employment.status")
	assert.Contains(t, joinLines(violations), "skills")
}

func TestValidateProfileJSON_Fixtures(t *testing.T) {
	valid, err := os.ReadFile(filepath.Join("testdata", "valid_profile.json"))
	require.NoError(t, err)
	assert.NoError(t, ValidateProfileJSON(valid))

	invalid, err := os.ReadFile(filepath.Join("testdata", "invalid_profile.json"))
	require.NoError(t, err)

	err = ValidateProfileJSON(invalid)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)

	fields := map[string]bool{}
	for _, e := range validationErr.Errors {
		fields[e.Field] = true
	}
	assert.True(t, fields["personal"], "missing phone")
	assert.True(t, fields["education.highest_qualification"])
	assert.True(t, fields["employment.status"])
	assert.True(t, fields["employment.years_experience"])
	assert.True(t, fields["skills"], "duplicate skills")
	assert.True(t, fields["confidence"], "missing confidence keys")
	assert.True(t, fields["confidence.full_name"], "confidence above 1")
}

func TestValidateProfileJSON_NotJSON(t *testing.T) {
	err := ValidateProfileJSON([]byte("not json"))

	require.Error(t, err)
	var validationErr *ValidationError
	assert.False(t, errors.As(err, &validationErr))
	assert.Equal(t, []string{"(root): document is not valid JSON"}, Violations(err))
}

func TestViolations_Nil(t *testing.T) {
	assert.Equal(t, []string{}, Violations(nil))
}

func TestValidateProfile_NilSlicesRejected(t *testing.T) {
	p := &types.Profile{Confidence: map[string]float64{}}
	assert.NotEmpty(t, ValidateProfile(p))
}

func joinLines(lines []string) string {
	out := ""
	for _, l := range lines {
		out += l + "\n"
	}
	return out
}
