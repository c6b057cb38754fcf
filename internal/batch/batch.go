// Package batch runs profile extraction over every resume in a directory.
package batch

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/resume-profiler/internal/config"
	"github.com/jonathan/resume-profiler/internal/extraction"
	"github.com/jonathan/resume-profiler/internal/ingestion"
	"github.com/jonathan/resume-profiler/internal/schemas"
	"golang.org/x/sync/errgroup"
)

// Options configures a batch run.
type Options struct {
	InputDir       string
	OutputDir      string
	Workers        int  // 0 uses config.DefaultBatchWorkers
	ValidateSchema bool // attach schema violations to each Result
	ExtractOptions []extraction.Option
}

// Result is the outcome for one input file.
type Result struct {
	Input      string   // base name of the input file
	Output     string   // path of the written profile, empty on failure
	Warnings   []string // profile warnings
	Violations []string // schema violations when ValidateSchema is set
	Err        error
}

// Summary collects the results of a run in input order.
type Summary struct {
	RunID   string
	Results []Result
	Skipped []string // files with an unsupported extension
	Elapsed time.Duration
}

// Succeeded returns the number of profiles written.
func (s *Summary) Succeeded() int {
	n := 0
	for _, r := range s.Results {
		if r.Err == nil {
			n++
		}
	}
	return n
}

// Failures maps input names to error messages for failed files.
func (s *Summary) Failures() map[string]string {
	failures := make(map[string]string)
	for _, r := range s.Results {
		if r.Err != nil {
			failures[r.Input] = r.Err.Error()
		}
	}
	return failures
}

// Run extracts a profile from each supported file in opts.InputDir and writes
// it to opts.OutputDir as <stem>.json. A failing file is recorded in its
// Result and does not stop the run; only setup errors and cancellation are
// returned.
func Run(ctx context.Context, opts Options) (*Summary, error) {
	if opts.InputDir == "" {
		return nil, fmt.Errorf("input directory is required")
	}
	if opts.OutputDir == "" {
		return nil, fmt.Errorf("output directory is required")
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = config.DefaultBatchWorkers
	}

	inputs, skipped, err := listInputs(opts.InputDir)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	outputs := outputNames(inputs)
	summary := &Summary{
		RunID:   uuid.NewString(),
		Results: make([]Result, len(inputs)),
		Skipped: skipped,
	}
	start := time.Now()
	log.Printf("[batch] run %s: %d files, %d workers", summary.RunID, len(inputs), workers)
	for _, name := range skipped {
		log.Printf("[batch] run %s: skipping %s (unsupported type)", summary.RunID, name)
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, name := range inputs {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			// Each goroutine owns its slot; no lock needed.
			summary.Results[i] = processFile(opts, name, outputs[name])
			if r := summary.Results[i]; r.Err != nil {
				log.Printf("[batch] run %s: %s failed: %v", summary.RunID, name, r.Err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return summary, fmt.Errorf("batch run cancelled: %w", err)
	}

	summary.Elapsed = time.Since(start)
	log.Printf("[batch] run %s: %d written, %d failed in %s",
		summary.RunID, summary.Succeeded(), len(inputs)-summary.Succeeded(), summary.Elapsed.Round(time.Millisecond))
	return summary, nil
}

// listInputs returns the supported and unsupported regular files of dir,
// sorted by name.
func listInputs(dir string) (inputs, skipped []string, err error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read input directory: %w", err)
	}

	for _, entry := range entries {
		if !entry.Type().IsRegular() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		if ingestion.IsSupported(ingestion.FormatFromFilename(entry.Name())) {
			inputs = append(inputs, entry.Name())
		} else {
			skipped = append(skipped, entry.Name())
		}
	}
	sort.Strings(inputs)
	sort.Strings(skipped)
	return inputs, skipped, nil
}

func processFile(opts Options, name, outName string) Result {
	result := Result{Input: name}

	doc, err := ingestion.IngestFile(filepath.Join(opts.InputDir, name))
	if err != nil {
		result.Err = err
		return result
	}

	profile := extraction.ExtractProfile(doc.Text, opts.ExtractOptions...)
	result.Warnings = profile.Warnings
	if opts.ValidateSchema {
		result.Violations = schemas.ValidateProfile(profile)
	}

	data, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		result.Err = fmt.Errorf("failed to marshal profile: %w", err)
		return result
	}

	out := filepath.Join(opts.OutputDir, outName)
	if err := os.WriteFile(out, append(data, '\n'), 0o644); err != nil {
		result.Err = fmt.Errorf("failed to write profile: %w", err)
		return result
	}
	result.Output = out
	return result
}

// outputNames maps each input to its profile file name. Inputs sharing a
// stem, such as resume.txt and resume.html, keep their extension
// (resume.txt.json) so no two workers write the same file.
func outputNames(inputs []string) map[string]string {
	stems := make(map[string]int, len(inputs))
	for _, name := range inputs {
		stems[OutputName(name)]++
	}

	names := make(map[string]string, len(inputs))
	for _, name := range inputs {
		out := OutputName(name)
		if stems[out] > 1 {
			out = filepath.Base(name) + ".json"
		}
		names[name] = out
	}
	return names
}

// OutputName returns the profile file name for an input file: its stem with
// a .json extension.
func OutputName(input string) string {
	base := filepath.Base(input)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".json"
}
