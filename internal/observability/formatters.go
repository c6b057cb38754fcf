// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/jonathan/resume-profiler/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
	// lineWidth is the usable width inside a box
	lineWidth = boxWidth - 4
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// truncate shortens s to width runes, marking the cut with "...".
func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return string(r[:width-3]) + "..."
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", lineWidth, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", lineWidth, truncate(line, lineWidth))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBanner(message string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", lineWidth, message)
	fmt.Fprintf(p.out, "└%s┘\n", border)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// PrintProfile outputs a human-readable summary of an extracted profile with
// the confidence of each field.
func (p *Printer) PrintProfile(profile *types.Profile) {
	if profile == nil {
		return
	}
	conf := profile.Confidence

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:       %s (%.2f)\n", orDash(profile.Personal.FullName), conf[types.ConfidenceFullName]))
	sb.WriteString(fmt.Sprintf("Email:      %s (%.2f)\n", orDash(profile.Personal.Email), conf[types.ConfidenceEmail]))
	sb.WriteString(fmt.Sprintf("Phone:      %s (%.2f)\n", orDash(profile.Personal.Phone), conf[types.ConfidencePhone]))
	sb.WriteString("\n")

	edu := profile.Education
	sb.WriteString(fmt.Sprintf("Education:  %s (%.2f)\n", orDash(edu.HighestQualification), conf[types.ConfidenceEducation]))
	if edu.BranchOrMajor != "" {
		sb.WriteString(fmt.Sprintf("  Branch:   %s\n", edu.BranchOrMajor))
	}
	if edu.Institute != "" {
		sb.WriteString(fmt.Sprintf("  Institute: %s\n", edu.Institute))
	}

	employment := profile.Employment.Status
	if profile.Employment.YearsExperience != "" {
		employment += fmt.Sprintf(", %s years", profile.Employment.YearsExperience)
	}
	sb.WriteString(fmt.Sprintf("Employment: %s (%.2f)\n", orDash(employment), conf[types.ConfidenceEmployment]))
	sb.WriteString("\n")

	if len(profile.Skills) > 0 {
		sb.WriteString(fmt.Sprintf("Skills (%d, %.2f):\n", len(profile.Skills), conf[types.ConfidenceSkills]))
		count := min(len(profile.Skills), maxItemsToShow)
		for _, skill := range profile.Skills[:count] {
			sb.WriteString(fmt.Sprintf("  • %s\n", skill))
		}
		if len(profile.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profile.Skills)-maxItemsToShow))
		}
	}

	if len(profile.ExperienceDetails) > 0 {
		sb.WriteString("Experience:\n")
		for _, e := range profile.ExperienceDetails {
			sb.WriteString(fmt.Sprintf("  • %s @ %s\n", orDash(e.Role), orDash(e.Company)))
			sb.WriteString(fmt.Sprintf("    %s\n", e.Tenure))
		}
	}

	p.printBox("EXTRACTED PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintWarnings outputs the warnings attached to a profile.
func (p *Printer) PrintWarnings(warnings []string) {
	if len(warnings) == 0 {
		p.printBanner("✅ NO WARNINGS")
		return
	}

	var sb strings.Builder
	for _, w := range warnings {
		sb.WriteString(fmt.Sprintf("⚠ %s\n", w))
	}
	p.printBox(fmt.Sprintf("WARNINGS (%d)", len(warnings)), strings.TrimSuffix(sb.String(), "\n"))
}

// PrintViolations outputs schema violations and field advisories.
func (p *Printer) PrintViolations(violations, advisories []string) {
	if len(violations) == 0 && len(advisories) == 0 {
		p.printBanner("✅ PROFILE MATCHES SCHEMA")
		return
	}

	var sb strings.Builder
	if len(violations) > 0 {
		sb.WriteString(fmt.Sprintf("Found %d schema violations:\n", len(violations)))
		for _, v := range violations {
			sb.WriteString(fmt.Sprintf("✗ %s\n", v))
		}
	}
	if len(advisories) > 0 {
		if len(violations) > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString("Field checks:\n")
		for _, a := range advisories {
			sb.WriteString(fmt.Sprintf("⚠ %s\n", a))
		}
	}
	p.printBox("PROFILE VALIDATION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintBatchSummary outputs the outcome of a batch run. failures maps input
// file names to their error messages.
func (p *Printer) PrintBatchSummary(succeeded int, failures map[string]string, elapsed time.Duration) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Profiles written: %d\n", succeeded))
	sb.WriteString(fmt.Sprintf("Failed:           %d\n", len(failures)))
	sb.WriteString(fmt.Sprintf("Elapsed:          %s\n", elapsed.Round(time.Millisecond)))

	if len(failures) > 0 {
		names := make([]string, 0, len(failures))
		for name := range failures {
			names = append(names, name)
		}
		sort.Strings(names)

		sb.WriteString("\n")
		for _, name := range names {
			sb.WriteString(fmt.Sprintf("✗ %s: %s\n", name, failures[name]))
		}
	}
	p.printBox("BATCH SUMMARY", strings.TrimSuffix(sb.String(), "\n"))
}
