// Package types provides type definitions for the resume profile record and API payloads.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Personal holds the contact fields of a resume profile.
type Personal struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

// Education holds the highest detected credential.
type Education struct {
	HighestQualification string `json:"highest_qualification"`
	BranchOrMajor        string `json:"branch_or_major"`
	Institute            string `json:"institute"`
}

// IsEmpty reports whether none of the education fields were resolved.
func (e Education) IsEmpty() bool {
	return e.HighestQualification == "" && e.BranchOrMajor == "" && e.Institute == ""
}

// Employment status values
const (
	StatusExperienced = "Experienced"
	StatusFresher     = "Fresher"
)

// Employment holds the employment classification.
type Employment struct {
	Status          string `json:"status"`
	YearsExperience string `json:"years_experience"`
}

// ExperienceEntry is one dated work-history line with its role and company.
type ExperienceEntry struct {
	Role    string `json:"role"`
	Company string `json:"company"`
	Start   string `json:"start"`
	End     string `json:"end"`
	Tenure  string `json:"tenure"` // "{start} - {end}"
}

// Confidence keys used in Profile.Confidence
const (
	ConfidenceFullName          = "full_name"
	ConfidenceEmail             = "email"
	ConfidencePhone             = "phone"
	ConfidenceEducation         = "education"
	ConfidenceSkills            = "skills"
	ConfidenceEmployment        = "employment"
	ConfidenceExperienceDetails = "experience_details"
)

// Profile is the structured record extracted from a single resume.
// Slices are always non-nil so the JSON form uses [] rather than null.
type Profile struct {
	Personal          Personal           `json:"personal"`
	Education         Education          `json:"education"`
	Employment        Employment         `json:"employment"`
	Skills            []string           `json:"skills"`
	ExperienceDetails []ExperienceEntry  `json:"experience_details"`
	Confidence        map[string]float64 `json:"confidence"`
	Warnings          []string           `json:"warnings"`
	ProfileText       string             `json:"profile_text"`
}
