package extraction

import (
	"regexp"
	"strings"
	"unicode"
)

const (
	nameFirstLinesConfidence = 0.90
	nameTopSectionConfidence = 0.80
	nameEntityConfidence     = 0.55

	nameFirstLinesLimit = 8
	nameTopLinesLimit   = 15
	nameMinWords        = 2
	nameMaxWords        = 5
)

var nameCharsRe = regexp.MustCompile(`[^A-Za-z .'-]`)

// Job titles and headings that pass the name shape test.
var nonNameTitles = map[string]bool{
	"data analyst":       true,
	"software developer": true,
	"developer":          true,
	"engineer":           true,
	"student":            true,
	"intern":             true,
	"summary":            true,
	"objective":          true,
}

var contactNoise = []string{"linkedin", "github", "portfolio", "resume", "email", "phone", "www", "http"}

// ExtractName finds the candidate's name. It tries the first lines of the
// document, then the top section with contact lines skipped, then the optional
// entity recognizer. A nil recognizer is skipped.
func ExtractName(text string, sections Sections, recognizer EntityRecognizer) Field[string] {
	allLines := nonBlankLines(text)

	for _, ln := range head(allLines, nameFirstLinesLimit) {
		if hasContactMarker(ln) {
			continue
		}
		if name, ok := nameCandidate(ln); ok {
			return Field[string]{Value: titleCaseIfUpper(name), Confidence: nameFirstLinesConfidence}
		}
	}

	for _, ln := range head(nonBlankLines(sections.Get(TopSection)), nameTopLinesLimit) {
		if containsAny(strings.ToLower(ln), contactNoise) || hasContactMarker(ln) {
			continue
		}
		if name, ok := nameCandidate(ln); ok {
			return Field[string]{Value: titleCaseIfUpper(name), Confidence: nameTopSectionConfidence}
		}
	}

	if name := firstPerson(recognizer, strings.Join(head(allLines, nameTopLinesLimit), "\n")); name != "" {
		return Field[string]{Value: name, Confidence: nameEntityConfidence}
	}

	return notFound[string]()
}

func head(lines []string, n int) []string {
	if len(lines) > n {
		return lines[:n]
	}
	return lines
}

// hasContactMarker reports lines carrying an email or any digit.
func hasContactMarker(ln string) bool {
	return strings.ContainsRune(ln, '@') || strings.IndexFunc(ln, unicode.IsDigit) >= 0
}

// nameCandidate strips ln to name characters and checks the word count and
// the title blocklist.
func nameCandidate(ln string) (string, bool) {
	cleaned := strings.Join(strings.Fields(nameCharsRe.ReplaceAllString(ln, "")), " ")
	words := len(strings.Fields(cleaned))
	if words < nameMinWords || words > nameMaxWords {
		return "", false
	}
	if nonNameTitles[strings.ToLower(cleaned)] {
		return "", false
	}
	return cleaned, true
}
