package extraction

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-profiler/internal/types"
)

const (
	experienceFoundConfidence = 0.80
	experienceEmptyConfidence = 0.40
)

// "June 2022 – Present", "Jul 2021 - May 2022"
var dateRangeRe = regexp.MustCompile(`(?i)\b([A-Za-z]{3,9}\s+\d{4})\s*[-–—]\s*(Present|[A-Za-z]{3,9}\s+\d{4})\b`)

// ExtractExperienceDetails finds dated entries in the experience section. For
// each date-range line the line above is taken as the role and the one above
// that as the company, unless those lines are date ranges themselves.
func ExtractExperienceDetails(_ string, sections Sections) Field[[]types.ExperienceEntry] {
	exp := sections.Get(ExperienceSection)
	if exp == "" {
		return Field[[]types.ExperienceEntry]{Value: []types.ExperienceEntry{}, Confidence: 0}
	}

	lines := nonBlankLines(exp)
	entries := []types.ExperienceEntry{}

	for i, ln := range lines {
		m := dateRangeRe.FindStringSubmatch(ln)
		if m == nil {
			continue
		}
		start := strings.TrimSpace(m[1])
		end := strings.TrimSpace(m[2])

		entries = append(entries, types.ExperienceEntry{
			Role:    contextLine(lines, i-1),
			Company: contextLine(lines, i-2),
			Start:   start,
			End:     end,
			Tenure:  start + " - " + end,
		})
	}

	if len(entries) == 0 {
		return Field[[]types.ExperienceEntry]{Value: entries, Confidence: experienceEmptyConfidence}
	}
	return Field[[]types.ExperienceEntry]{Value: entries, Confidence: experienceFoundConfidence}
}

// contextLine returns lines[i] with whitespace collapsed, or "" when i is out
// of range or the line is itself a date range.
func contextLine(lines []string, i int) string {
	if i < 0 || i >= len(lines) || dateRangeRe.MatchString(lines[i]) {
		return ""
	}
	return strings.Join(strings.Fields(lines[i]), " ")
}
