package extraction

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

const (
	skillsSectionConfidence = 0.85
	skillsKeywordConfidence = 0.65

	skillTrimCutset    = " ,.;:_-"
	maxSkillTokenWords = 4
)

// skillCanonical maps lowercase skill spellings to their display form.
var skillCanonical = map[string]string{
	// languages
	"python":     "Python",
	"sql":        "SQL",
	"mysql":      "MySQL",
	"postgres":   "PostgreSQL",
	"postgresql": "PostgreSQL",
	"java":       "Java",
	"c++":        "C++",
	"c#":         "C#",
	"c":          "C",
	"javascript": "JavaScript",
	"js":         "JavaScript",
	"typescript": "TypeScript",
	"html":       "HTML",
	"css":        "CSS",
	"php":        "PHP",

	// frameworks
	"django":  "Django",
	"react":   "React",
	"next.js": "Next.js",
	"nextjs":  "Next.js",
	"mern":    "MERN Stack",

	// data engineering
	"spark":      "Apache Spark",
	"pyspark":    "PySpark",
	"databricks": "Databricks",
	"delta":      "Delta Lake",
	"delta lake": "Delta Lake",
	"airflow":    "Airflow",
	"dbt":        "dbt",
	"kafka":      "Kafka",

	// data science / ML
	"tensorflow":   "TensorFlow",
	"scikit-learn": "Scikit-learn",
	"sklearn":      "Scikit-learn",
	"opencv":       "OpenCV",
	"mediapipe":    "MediaPipe",

	// cloud
	"azure":              "Azure",
	"adf":                "Azure Data Factory",
	"azure data factory": "Azure Data Factory",
	"synapse":            "Azure Synapse",
	"aws":                "AWS",
	"gcp":                "GCP",

	// tools
	"git":    "Git",
	"docker": "Docker",
	"linux":  "Linux",
	"excel":  "Excel",
}

var (
	skillSplitRe      = regexp.MustCompile(`[,\n•|/]+`)
	parenAnnotationRe = regexp.MustCompile(`\([^()]*\)`)
	separatorRunRe    = regexp.MustCompile(`[_=\-]{3,}`)
	separatorOnlyRe   = regexp.MustCompile(`^[_=\-]{3,}$`)
	yearRe            = regexp.MustCompile(`\b(19|20)\d{2}\b`)
	personNameShapeRe = regexp.MustCompile(`^[A-Z][a-z]+(?:\s+[A-Z][a-z]+)+$`)
)

var rejectExactSkills = map[string]bool{
	"learning":      true,
	"self learning": true,
	"self-learning": true,
	"teamwork":      true,
	"communication": true,
	"leadership":    true,
}

// Academic, activity and soft-skill phrases that leak out of skills sections.
var rejectSkillSubstrings = []string{
	"relevant coursework",
	"secondary school",
	"secured",
	"award",
	"board examinations",
	"current gpa",
	"education",
	"about me",
	"discipline",
	"punctuality",
	"anchoring",
	"school",
	"college",
	"institute",
	"cloud platform",
}

// Title-cased phrases that look like personal names but are real skills.
var allowedTitlePhrases = map[string]bool{
	"Machine Learning":            true,
	"Artificial Intelligence":     true,
	"Data Science":                true,
	"Statistics for Data Science": true,
}

// IsSkillToken reports whether a cleaned skills-section token plausibly names
// a skill rather than a label, year, separator, soft skill or person's name.
func IsSkillToken(token string) bool {
	token = strings.TrimSpace(token)
	if token == "" {
		return false
	}
	low := strings.ToLower(token)

	if isAllDigits(token) {
		return false
	}
	if yearRe.MatchString(token) {
		return false
	}
	if strings.Contains(token, ":") {
		return false
	}
	if len(strings.Fields(token)) > maxSkillTokenWords {
		return false
	}
	if separatorOnlyRe.MatchString(token) {
		return false
	}
	if n := utf8.RuneCountInString(token); n >= 10 && countDigits(token) == 0 &&
		float64(strings.Count(token, "_"))/float64(n) > 0.6 {
		return false
	}
	if rejectExactSkills[low] {
		return false
	}
	for _, p := range rejectSkillSubstrings {
		if strings.Contains(low, p) {
			return false
		}
	}
	if strings.Contains(token, "&") {
		return false
	}
	if personNameShapeRe.MatchString(token) && !allowedTitlePhrases[token] {
		return false
	}
	return true
}

func isAllDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

// cleanSkillToken strips annotations and separator artifacts from a raw token:
// "React.js (Basic)" -> "React".
func cleanSkillToken(raw string) string {
	tok := strings.TrimSpace(raw)
	tok = parenAnnotationRe.ReplaceAllString(tok, "")
	tok = strings.NewReplacer("(", "", ")", "").Replace(tok)
	tok = strings.TrimSpace(tok)
	if strings.HasSuffix(strings.ToLower(tok), ".js") {
		tok = strings.TrimSpace(tok[:len(tok)-len(".js")])
	}
	tok = separatorRunRe.ReplaceAllString(tok, "")
	tok = strings.TrimSpace(tok)
	return strings.Trim(tok, skillTrimCutset)
}

// ExtractSkills unions skills parsed from the skills section with canonical
// skills found anywhere in the text. The result is sorted and deduplicated.
func ExtractSkills(text string, sections Sections) Field[[]string] {
	raw := sections.Get(SkillsSection)
	found := make(map[string]bool)

	if raw != "" {
		for _, t := range skillSplitRe.Split(raw, -1) {
			tok := cleanSkillToken(t)
			if !IsSkillToken(tok) {
				continue
			}
			if canon, ok := skillCanonical[strings.ToLower(tok)]; ok {
				found[canon] = true
			} else {
				found[tok] = true
			}
		}
	}

	hay := strings.ToLower(text)
	for key, canon := range skillCanonical {
		if containsWord(hay, key) {
			found[canon] = true
		}
	}

	if len(found) == 0 {
		return Field[[]string]{Value: []string{}, Confidence: 0}
	}

	skills := make([]string, 0, len(found))
	for s := range found {
		skills = append(skills, s)
	}
	sort.Strings(skills)

	conf := skillsKeywordConfidence
	if raw != "" {
		conf = skillsSectionConfidence
	}
	return Field[[]string]{Value: skills, Confidence: conf}
}
