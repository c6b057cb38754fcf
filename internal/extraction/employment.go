package extraction

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/resume-profiler/internal/types"
)

const (
	employmentDurationConfidence = 0.90
	employmentSignalConfidence   = 0.80
	employmentSectionConfidence  = 0.65
	employmentDefaultConfidence  = 0.75
)

var (
	yearsRe  = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*\+?\s*(?:years|year|yrs|yr)\b`)
	monthsRe = regexp.MustCompile(`(\d+)\s*(?:months|month)\b`)
)

var fresherSignals = []string{"fresher", "entry level", "recent graduate", "student"}

var internshipSignals = []string{"intern", "internship", "virtual internship", "trainee", "apprentice", "member", "club"}

// ExtractEmployment classifies the candidate as Experienced or Fresher using the
// experience section and the top of the document. Rules, first match wins:
// an explicit duration, then fresher/internship signals, then a non-empty
// experience section, then the Fresher default.
func ExtractEmployment(_ string, sections Sections) Field[types.Employment] {
	exp := sections.Get(ExperienceSection)
	hay := strings.ToLower(exp + "\n" + sections.Get(TopSection))

	if years := durationYears(hay); years != "" {
		return Field[types.Employment]{
			Value:      types.Employment{Status: types.StatusExperienced, YearsExperience: years},
			Confidence: employmentDurationConfidence,
		}
	}

	if containsAny(hay, fresherSignals) || containsAny(hay, internshipSignals) {
		return Field[types.Employment]{
			Value:      types.Employment{Status: types.StatusFresher},
			Confidence: employmentSignalConfidence,
		}
	}

	if strings.TrimSpace(exp) != "" {
		return Field[types.Employment]{
			Value:      types.Employment{Status: types.StatusExperienced},
			Confidence: employmentSectionConfidence,
		}
	}

	return Field[types.Employment]{
		Value:      types.Employment{Status: types.StatusFresher},
		Confidence: employmentDefaultConfidence,
	}
}

// durationYears returns the stated experience in years ("3", "2.5"), converting
// a month count to years with one decimal ("18 months" -> "1.5").
func durationYears(hay string) string {
	if m := yearsRe.FindStringSubmatch(hay); m != nil {
		return m[1]
	}
	if m := monthsRe.FindStringSubmatch(hay); m != nil {
		months, err := strconv.Atoi(m[1])
		if err != nil {
			return ""
		}
		years := math.RoundToEven(float64(months)/12*10) / 10
		return strconv.FormatFloat(years, 'f', 1, 64)
	}
	return ""
}

func containsAny(hay string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(hay, n) {
			return true
		}
	}
	return false
}
