package extraction

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-profiler/internal/types"
)

// Option configures ExtractProfile.
type Option func(*options)

type options struct {
	recognizer EntityRecognizer
}

// WithEntityRecognizer enables the entity-recognizer fallback of the name finder.
func WithEntityRecognizer(r EntityRecognizer) Option {
	return func(o *options) {
		o.recognizer = r
	}
}

// ExtractProfile runs the full pipeline over raw resume text and returns the
// assembled profile. It never fails: fields that cannot be found are left
// empty with zero confidence and reported in Warnings.
func ExtractProfile(raw string, opts ...Option) *types.Profile {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	text := Normalize(raw)
	sections := SplitSections(text)

	email := FindEmail(text)
	phone := FindPhone(text)
	skills := ExtractSkills(text, sections)
	education := ExtractEducation(text, sections)
	employment := ExtractEmployment(text, sections)
	name := ExtractName(text, sections, o.recognizer)
	experience := ExtractExperienceDetails(text, sections)

	profile := &types.Profile{
		Personal: types.Personal{
			FullName: name.Value,
			Email:    email.Value,
			Phone:    phone.Value,
		},
		Education:         education.Value,
		Employment:        employment.Value,
		Skills:            skills.Value,
		ExperienceDetails: experience.Value,
		Confidence: map[string]float64{
			types.ConfidenceFullName:          round2(name.Confidence),
			types.ConfidenceEmail:             round2(email.Confidence),
			types.ConfidencePhone:             round2(phone.Confidence),
			types.ConfidenceEducation:         round2(education.Confidence),
			types.ConfidenceSkills:            round2(skills.Confidence),
			types.ConfidenceEmployment:        round2(employment.Confidence),
			types.ConfidenceExperienceDetails: round2(experience.Confidence),
		},
	}
	if profile.Skills == nil {
		profile.Skills = []string{}
	}
	if profile.ExperienceDetails == nil {
		profile.ExperienceDetails = []types.ExperienceEntry{}
	}

	profile.Warnings = BuildWarnings(profile)
	profile.ProfileText = RenderProfileText(profile)
	return profile
}

// RenderProfileText renders the copy-ready plain-text summary of a profile.
func RenderProfileText(p *types.Profile) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Full Name: %s\n", p.Personal.FullName)
	fmt.Fprintf(&sb, "Email: %s\n", p.Personal.Email)
	fmt.Fprintf(&sb, "Phone: %s\n", p.Personal.Phone)
	fmt.Fprintf(&sb, "Highest Qualification: %s\n", p.Education.HighestQualification)
	fmt.Fprintf(&sb, "Branch/Major: %s\n", p.Education.BranchOrMajor)
	fmt.Fprintf(&sb, "Institute: %s\n", p.Education.Institute)
	fmt.Fprintf(&sb, "Employment: %s %s\n", p.Employment.Status, p.Employment.YearsExperience)
	fmt.Fprintf(&sb, "Skills: %s\n", strings.Join(p.Skills, ", "))

	if len(p.ExperienceDetails) > 0 {
		sb.WriteString("Experience:\n")
		for _, e := range p.ExperienceDetails {
			line := fmt.Sprintf("- %s | %s | %s", e.Role, e.Company, e.Tenure)
			sb.WriteString(strings.TrimSpace(line))
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
