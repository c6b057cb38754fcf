package extraction

import (
	"regexp"
	"strings"
)

const (
	emailConfidence     = 0.98
	phoneConfidence     = 0.92
	phoneWeakConfidence = 0.85
	phoneMinDigits      = 9
	phoneMaxDigits      = 13
)

var (
	emailRe = regexp.MustCompile(`(?i)\b[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,}\b`)

	// "91+ 784274592" -> "+91 784274592"
	misplacedPlusRe = regexp.MustCompile(`\b(\d{1,3})\+\s*`)

	// Loose on purpose; candidates are validated by digit count.
	phoneCandidateRe = regexp.MustCompile(`\+?\d[\d\s().-]{7,}\d`)
)

// FindEmail returns the first email address in text.
func FindEmail(text string) Field[string] {
	m := emailRe.FindString(text)
	if m == "" {
		return notFound[string]()
	}
	return Field[string]{Value: m, Confidence: emailConfidence}
}

// FindPhone returns the candidate phone number with the most digits (9-13).
// Ties keep the first candidate seen.
func FindPhone(text string) Field[string] {
	text = misplacedPlusRe.ReplaceAllString(text, "+${1} ")

	best := ""
	bestLen := 0
	for _, c := range phoneCandidateRe.FindAllString(text, -1) {
		n := countDigits(c)
		if n < phoneMinDigits || n > phoneMaxDigits {
			continue
		}
		if n > bestLen {
			best = strings.TrimSpace(c)
			bestLen = n
		}
	}

	if best == "" {
		return notFound[string]()
	}
	switch bestLen {
	case 10, 12, 13:
		return Field[string]{Value: best, Confidence: phoneConfidence}
	default:
		return Field[string]{Value: best, Confidence: phoneWeakConfidence}
	}
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}
