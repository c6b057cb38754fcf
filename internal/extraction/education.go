package extraction

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/jonathan/resume-profiler/internal/types"
)

const (
	educationSectionConfidence = 0.85
	educationTextConfidence    = 0.65

	// Words walked back from an institute keyword to pick up its name ("ABC Institute").
	maxInstitutePrefixWords = 6
)

// Qualification levels in output form
const (
	QualificationPhD          = "PHD"
	QualificationMasters      = "MASTERS"
	QualificationBachelors    = "BACHELORS"
	QualificationDiploma      = "DIPLOMA"
	QualificationIntermediate = "INTERMEDIATE"
	QualificationSSC          = "SSC"
)

type qualificationRank struct {
	rank    int
	pattern *regexp.Regexp
	label   string
}

// qualificationRanks is a total order; the highest matching rank wins.
var qualificationRanks = []qualificationRank{
	{7, regexp.MustCompile(`(?i)\b(ph\.?d|doctorate)\b`), QualificationPhD},
	{6, regexp.MustCompile(`(?i)\b(m\.?\s*tech|mtech|m\.?\s*e\b|me\b|mba|m\.?\s*sc|msc|mca|masters?)\b`), QualificationMasters},
	{5, regexp.MustCompile(`(?i)\b(b\.?\s*tech|btech|b\.?\s*e\b|be\b|b\.?\s*sc|bsc|bca|bcom|b\.?\s*com|bba|ba|bachelors?)\b`), QualificationBachelors},
	{4, regexp.MustCompile(`(?i)\b(diploma|polytechnic)\b`), QualificationDiploma},
	{3, regexp.MustCompile(`(?i)\b(intermediate|12th|xii|higher\s*secondary|hsc)\b`), QualificationIntermediate},
	{2, regexp.MustCompile(`(?i)\b(ssc|10th|x\b|secondary\s*school)\b`), QualificationSSC},
}

var branchKeywords = []string{
	"computer science", "cse", "information technology", "it",
	"ece", "eee", "mechanical", "civil",
	"ai", "artificial intelligence",
	"data science", "machine learning", "electronics",
}

// branchKeywordsByLength holds branchKeywords longest first so that
// "artificial intelligence" wins over "ai".
var branchKeywordsByLength = func() []string {
	sorted := append([]string(nil), branchKeywords...)
	sort.SliceStable(sorted, func(i, j int) bool { return len(sorted[i]) > len(sorted[j]) })
	return sorted
}()

var instituteRe = regexp.MustCompile(`(?i)\b(?:university|college|institute|iit|nit)\b[^\n,]{0,80}`)

// HighestQualification returns the highest-ranked qualification mentioned in hay,
// or "" when none is mentioned.
func HighestQualification(hay string) string {
	bestRank := -1
	best := ""
	for _, q := range qualificationRanks {
		if q.rank > bestRank && q.pattern.MatchString(hay) {
			bestRank = q.rank
			best = q.label
		}
	}
	return best
}

// ExtractEducation resolves the highest qualification, branch and institute.
// The education section is searched when present, otherwise the whole text;
// the institute is only looked for inside the education section.
func ExtractEducation(text string, sections Sections) Field[types.Education] {
	edu := sections.Get(EducationSection)
	hay := text
	if edu != "" {
		hay = edu
	}
	hay = strings.ToLower(hay)

	result := types.Education{
		HighestQualification: HighestQualification(hay),
		BranchOrMajor:        findBranch(hay),
	}
	if edu != "" {
		result.Institute = findInstitute(edu)
	}

	if result.IsEmpty() {
		return notFound[types.Education]()
	}
	if edu != "" {
		return Field[types.Education]{Value: result, Confidence: educationSectionConfidence}
	}
	return Field[types.Education]{Value: result, Confidence: educationTextConfidence}
}

func findBranch(hay string) string {
	for _, b := range branchKeywordsByLength {
		if containsWord(hay, b) {
			return strings.ToUpper(b)
		}
	}
	return ""
}

// findInstitute returns the institute span of the first line that names one,
// extended backwards over the capitalized words of its name.
func findInstitute(edu string) string {
	for _, line := range strings.Split(edu, "\n") {
		loc := instituteRe.FindStringIndex(line)
		if loc == nil {
			continue
		}
		start := instituteNameStart(line[:loc[0]])
		return strings.TrimSpace(line[start:loc[1]])
	}
	return ""
}

// instituteNameStart returns the offset in prefix where the institute's name
// begins: the earliest of the trailing words that start with a capital letter
// and contain no digits or dots. Commas always end the name.
func instituteNameStart(prefix string) int {
	start := len(prefix)
	cut := strings.LastIndex(prefix, ",")
	words := 0
	for i := len(prefix); i > cut+1 && words < maxInstitutePrefixWords; {
		end := i
		for end > cut+1 && prefix[end-1] == ' ' {
			end--
		}
		begin := strings.LastIndexAny(prefix[:end], " ,") + 1
		word := prefix[begin:end]
		if !isNameWord(word) {
			break
		}
		start = begin
		words++
		i = begin
	}
	return start
}

func isNameWord(w string) bool {
	if w == "" {
		return false
	}
	for i, r := range w {
		switch {
		case i == 0 && !unicode.IsUpper(r):
			return false
		case unicode.IsLetter(r), r == '&', r == '\'', r == '-':
		default:
			return false
		}
	}
	return true
}
