package extraction

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	horizontalSpaceRe = regexp.MustCompile(`[ \t]+`)
	excessNewlinesRe  = regexp.MustCompile(`\n{3,}`)
)

// Normalize canonicalizes raw resume text: carriage returns become newlines,
// runs of spaces/tabs collapse to one space, words hyphen-broken across a
// line break are rejoined, 3+ newlines collapse to 2 and the result is trimmed.
//
// Normalize is idempotent.
func Normalize(raw string) string {
	if raw == "" {
		return ""
	}
	text := strings.ReplaceAll(raw, "\r", "\n")
	text = horizontalSpaceRe.ReplaceAllString(text, " ")
	text = joinHyphenBreaks(text)
	text = excessNewlinesRe.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

// joinHyphenBreaks removes every "-\n" that sits between two word characters.
// Chains such as "a-\nb-\nc" are fully joined in a single pass.
func joinHyphenBreaks(text string) string {
	if !strings.Contains(text, "-\n") {
		return text
	}
	var sb strings.Builder
	sb.Grow(len(text))
	for i := 0; i < len(text); {
		if strings.HasPrefix(text[i:], "-\n") {
			prev, _ := utf8.DecodeLastRuneInString(sb.String())
			next, _ := utf8.DecodeRuneInString(text[i+2:])
			if sb.Len() > 0 && i+2 < len(text) && isWordRune(prev) && isWordRune(next) {
				i += 2
				continue
			}
		}
		_, size := utf8.DecodeRuneInString(text[i:])
		sb.WriteString(text[i : i+size])
		i += size
	}
	return sb.String()
}
