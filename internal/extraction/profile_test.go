package extraction

import (
	"encoding/json"
	"testing"

	"github.com/jonathan/resume-profiler/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResume = "JOHN SMITH\njohn.smith@example.com\n9876543210\n\nEDUCATION\nB.Tech Computer Science, ABC Institute of Technology\n\nSKILLS\nPython, SQL, React\n\nEXPERIENCE\nABC Corp\nSoftware Engineer\nJune 2022 - Present"

func TestExtractProfile_Sample(t *testing.T) {
	p := ExtractProfile(sampleResume)

	assert.Equal(t, types.Personal{
		FullName: "John Smith",
		Email:    "john.smith@example.com",
		Phone:    "9876543210",
	}, p.Personal)
	assert.Equal(t, types.Education{
		HighestQualification: QualificationBachelors,
		BranchOrMajor:        "COMPUTER SCIENCE",
		Institute:            "ABC Institute of Technology",
	}, p.Education)
	assert.Equal(t, []string{"Python", "React", "SQL"}, p.Skills)
	assert.Equal(t, types.Employment{Status: types.StatusExperienced}, p.Employment)

	require.Len(t, p.ExperienceDetails, 1)
	assert.Equal(t, "Software Engineer", p.ExperienceDetails[0].Role)
	assert.Equal(t, "ABC Corp", p.ExperienceDetails[0].Company)
	assert.Equal(t, "June 2022 - Present", p.ExperienceDetails[0].Tenure)

	assert.Equal(t, map[string]float64{
		types.ConfidenceFullName:          0.90,
		types.ConfidenceEmail:             0.98,
		types.ConfidencePhone:             0.92,
		types.ConfidenceEducation:         0.85,
		types.ConfidenceSkills:            0.85,
		types.ConfidenceEmployment:        0.65,
		types.ConfidenceExperienceDetails: 0.80,
	}, p.Confidence)
	assert.Equal(t, []string{WarnEmploymentAmbiguous}, p.Warnings)
}

func TestExtractProfile_ProfileText(t *testing.T) {
	p := ExtractProfile(sampleResume)

	expected := "Full Name: John Smith\n" +
		"Email: john.smith@example.com\n" +
		"Phone: 9876543210\n" +
		"Highest Qualification: BACHELORS\n" +
		"Branch/Major: COMPUTER SCIENCE\n" +
		"Institute: ABC Institute of Technology\n" +
		"Employment: Experienced \n" +
		"Skills: Python, React, SQL\n" +
		"Experience:\n" +
		"- Software Engineer | ABC Corp | June 2022 - Present\n"
	assert.Equal(t, expected, p.ProfileText)
}

func TestExtractProfile_Deterministic(t *testing.T) {
	first := ExtractProfile(sampleResume)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, ExtractProfile(sampleResume))
	}
}

func TestExtractProfile_Empty(t *testing.T) {
	p := ExtractProfile("")

	assert.Equal(t, types.Personal{}, p.Personal)
	assert.True(t, p.Education.IsEmpty())
	assert.NotNil(t, p.Skills)
	assert.Empty(t, p.Skills)
	assert.NotNil(t, p.ExperienceDetails)
	assert.Empty(t, p.ExperienceDetails)
	for key, conf := range p.Confidence {
		if key == types.ConfidenceEmployment {
			continue
		}
		assert.Zero(t, conf, key)
	}
	// No experience evidence still classifies as a fresher at the default confidence.
	assert.Equal(t, types.Employment{Status: types.StatusFresher}, p.Employment)
	assert.Equal(t, employmentDefaultConfidence, p.Confidence[types.ConfidenceEmployment])
	assert.Equal(t, 0.75, p.Confidence[types.ConfidenceEmployment])
	assert.Len(t, p.Warnings, 5)
	assert.Equal(t, []string{
		WarnNameMissing,
		WarnEmailMissing,
		WarnPhoneMissing,
		WarnSkillsMissing,
		WarnEducationMissing,
	}, p.Warnings)
}

func TestExtractProfile_JSONShape(t *testing.T) {
	data, err := json.Marshal(ExtractProfile(""))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, []any{}, decoded["skills"])
	assert.Equal(t, []any{}, decoded["experience_details"])
	assert.Contains(t, decoded, "personal")
	assert.Contains(t, decoded, "profile_text")
}

func TestExtractProfile_WithEntityRecognizer(t *testing.T) {
	recognizer := RecognizerFunc(func(string) ([]string, error) {
		return []string{"Jane Roe"}, nil
	})

	p := ExtractProfile("jane@example.com\n+1 555 123 4567", WithEntityRecognizer(recognizer))

	assert.Equal(t, "Jane Roe", p.Personal.FullName)
	assert.Equal(t, 0.55, p.Confidence[types.ConfidenceFullName])
	assert.Equal(t, "jane@example.com", p.Personal.Email)
}
