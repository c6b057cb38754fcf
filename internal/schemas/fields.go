package schemas

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/resume-profiler/internal/types"
)

const (
	minYear     = 1900
	maxYear     = 2100
	phoneDigits = 10
)

var (
	emailShapeRe   = regexp.MustCompile(`^[\w.-]+@[\w.-]+\.\w+$`)
	phoneSeparator = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "", ".", "")
	yearTokenRe    = regexp.MustCompile(`\b\d{4}\b`)
)

// ValidEmail reports whether email has the local@domain.tld shape.
func ValidEmail(email string) bool {
	return emailShapeRe.MatchString(email)
}

// ValidPhone reports whether phone is exactly ten digits once spaces, dashes,
// dots and parentheses are removed. Numbers with a country code fail.
func ValidPhone(phone string) bool {
	digits := phoneSeparator.Replace(phone)
	if len(digits) != phoneDigits {
		return false
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// ValidYear reports whether year is a four-digit number in [1900, 2100].
func ValidYear(year string) bool {
	if len(year) != 4 {
		return false
	}
	n, err := strconv.Atoi(year)
	if err != nil {
		return false
	}
	return n >= minYear && n <= maxYear
}

// CheckProfileFields runs the field-level validators over p and returns
// human-readable advisory messages. Empty contact fields are reported once as
// missing rather than as malformed.
func CheckProfileFields(p *types.Profile) []string {
	problems := []string{}

	if strings.TrimSpace(p.Personal.FullName) == "" {
		problems = append(problems, "Name is required")
	}

	switch {
	case p.Personal.Email == "":
		problems = append(problems, "Email is required")
	case !ValidEmail(p.Personal.Email):
		problems = append(problems, "Invalid email")
	}

	switch {
	case p.Personal.Phone == "":
		problems = append(problems, "Phone is required")
	case !ValidPhone(p.Personal.Phone):
		problems = append(problems, "Invalid phone number")
	}

	for i, entry := range p.ExperienceDetails {
		for _, date := range []string{entry.Start, entry.End} {
			for _, year := range yearTokenRe.FindAllString(date, -1) {
				if !ValidYear(year) {
					problems = append(problems, fmt.Sprintf("Invalid year %s in experience entry %d", year, i+1))
				}
			}
		}
	}

	return problems
}
