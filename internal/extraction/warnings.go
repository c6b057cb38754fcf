package extraction

import (
	"github.com/jonathan/resume-profiler/internal/types"
)

// User-facing warnings
const (
	WarnNameMissing         = "Full name not found. Please enter it manually."
	WarnEmailMissing        = "Email not found. Please verify or enter it."
	WarnPhoneMissing        = "Phone not found. Please verify or enter it."
	WarnSkillsMissing       = "Skills not detected. Please add skills manually."
	WarnEducationMissing    = "Education not detected. Please fill in the highest qualification."
	WarnNameLowConfidence   = "Low confidence for name. Please verify."
	WarnEmailLowConfidence  = "Low confidence for email. Please verify."
	WarnPhoneLowConfidence  = "Low confidence for phone. Please verify."
	WarnEmploymentAmbiguous = "Employment looks experienced but years were not detected. Please verify."
)

const (
	lowConfidenceThreshold   = 0.5
	ambiguousEmploymentLimit = 0.7
)

// BuildWarnings derives the ordered, duplicate-free warning list from an
// assembled profile. Low-confidence warnings only apply to fields that have a
// value, so a missing field is reported once.
func BuildWarnings(p *types.Profile) []string {
	var warnings []string

	if p.Personal.FullName == "" {
		warnings = append(warnings, WarnNameMissing)
	}
	if p.Personal.Email == "" {
		warnings = append(warnings, WarnEmailMissing)
	}
	if p.Personal.Phone == "" {
		warnings = append(warnings, WarnPhoneMissing)
	}
	if len(p.Skills) == 0 {
		warnings = append(warnings, WarnSkillsMissing)
	}
	if p.Education.IsEmpty() {
		warnings = append(warnings, WarnEducationMissing)
	}

	critical := []struct {
		key   string
		value string
		msg   string
	}{
		{types.ConfidenceFullName, p.Personal.FullName, WarnNameLowConfidence},
		{types.ConfidenceEmail, p.Personal.Email, WarnEmailLowConfidence},
		{types.ConfidencePhone, p.Personal.Phone, WarnPhoneLowConfidence},
	}
	for _, c := range critical {
		conf, ok := p.Confidence[c.key]
		if ok && c.value != "" && conf < lowConfidenceThreshold {
			warnings = append(warnings, c.msg)
		}
	}

	if p.Employment.Status == types.StatusExperienced && p.Employment.YearsExperience == "" {
		if conf, ok := p.Confidence[types.ConfidenceEmployment]; ok && conf < ambiguousEmploymentLimit {
			warnings = append(warnings, WarnEmploymentAmbiguous)
		}
	}

	return dedupe(warnings)
}

func dedupe(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, it := range items {
		if !seen[it] {
			seen[it] = true
			out = append(out, it)
		}
	}
	return out
}
