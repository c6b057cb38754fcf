package extraction

import (
	"regexp"
	"strings"
)

// Section keys
const (
	TopSection            = "__top__"
	SkillsSection         = "skills"
	EducationSection      = "education"
	ExperienceSection     = "experience"
	ProjectsSection       = "projects"
	SummarySection        = "summary"
	ProfileSection        = "profile"
	ObjectiveSection      = "objective"
	CertificationsSection = "certifications"
)

// Sections maps a canonical section key to its newline-joined content.
// TopSection is always present.
type Sections map[string]string

// Get returns the content of a section, or "" when it is absent.
func (s Sections) Get(key string) string {
	return s[key]
}

var headerShapeRe = regexp.MustCompile(`^[A-Za-z][A-Za-z &/]{2,40}$`)

// headerAliases re-maps alternative header spellings onto a canonical key.
var headerAliases = map[string]string{
	"work experience":         ExperienceSection,
	"professional experience": ExperienceSection,
	"skills summary":          SkillsSection,
	"technical skills":        SkillsSection,
	"certificates":            CertificationsSection,
}

var knownHeaders = map[string]bool{
	SkillsSection:         true,
	EducationSection:      true,
	ExperienceSection:     true,
	ProjectsSection:       true,
	SummarySection:        true,
	ProfileSection:        true,
	ObjectiveSection:      true,
	CertificationsSection: true,
}

func canonicalHeader(line string) string {
	h := strings.TrimSpace(strings.Trim(strings.ToLower(line), ":"))
	if alias, ok := headerAliases[h]; ok {
		return alias
	}
	return h
}

// SplitSections partitions normalized text into sections keyed by recognized
// header lines. Header lines themselves and blank lines are dropped; every
// other line lands in the section active at that point.
func SplitSections(text string) Sections {
	collected := map[string][]string{TopSection: {}}
	current := TopSection

	for _, ln := range strings.Split(text, "\n") {
		ln = strings.TrimSpace(ln)
		if ln == "" {
			continue
		}
		if headerShapeRe.MatchString(ln) {
			if key := canonicalHeader(ln); knownHeaders[key] {
				current = key
				if _, ok := collected[current]; !ok {
					collected[current] = []string{}
				}
				continue
			}
		}
		collected[current] = append(collected[current], ln)
	}

	sections := make(Sections, len(collected))
	for key, lines := range collected {
		sections[key] = strings.TrimSpace(strings.Join(lines, "\n"))
	}
	return sections
}
