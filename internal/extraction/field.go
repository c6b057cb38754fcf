// Package extraction turns unstructured resume text into a structured profile
// using section segmentation and heuristic field extractors.
//
// Every function in this package is pure: no I/O, no logging and no shared
// mutable state. All pattern tables are built once at package init and are
// read-only afterwards, so concurrent calls need no locking.
package extraction

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Field pairs an extracted value with the extractor's confidence in [0,1].
// A confidence of 0 means the value was not found and Value is the zero value.
type Field[T any] struct {
	Value      T
	Confidence float64
}

func notFound[T any]() Field[T] {
	var zero T
	return Field[T]{Value: zero, Confidence: 0}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// containsWord reports whether word occurs in hay without a word character
// immediately before or after it. word may itself contain punctuation
// ("c++", "next.js"), which is why \b cannot be used here.
func containsWord(hay, word string) bool {
	if word == "" {
		return false
	}
	for start := 0; start <= len(hay)-len(word); {
		i := strings.Index(hay[start:], word)
		if i < 0 {
			return false
		}
		i += start
		end := i + len(word)

		before, _ := utf8.DecodeLastRuneInString(hay[:i])
		after, _ := utf8.DecodeRuneInString(hay[end:])
		if (i == 0 || !isWordRune(before)) && (end == len(hay) || !isWordRune(after)) {
			return true
		}
		_, size := utf8.DecodeRuneInString(hay[i:])
		start = i + size
	}
	return false
}

// nonBlankLines splits text into trimmed lines, dropping empty ones.
func nonBlankLines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, ln := range raw {
		if ln = strings.TrimSpace(ln); ln != "" {
			lines = append(lines, ln)
		}
	}
	return lines
}

// titleCaseIfUpper title-cases s when it is written entirely in capitals,
// e.g. "JOHN SMITH" -> "John Smith". Other inputs only get whitespace collapsed.
func titleCaseIfUpper(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if s == "" || strings.ToUpper(s) != s {
		return s
	}
	words := strings.Fields(s)
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + strings.ToLower(w[size:])
	}
	return strings.Join(words, " ")
}
