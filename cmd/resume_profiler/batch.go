package main

import (
	"fmt"

	"github.com/jonathan/resume-profiler/internal/batch"
	"github.com/jonathan/resume-profiler/internal/observability"
	"github.com/spf13/cobra"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Extract profiles from every resume in a directory",
	Long:  "Processes each supported file in the input directory concurrently and writes <name>.json profiles to the output directory.",
	RunE:  runBatch,
}

var (
	batchInput    string
	batchOutput   string
	batchWorkers  int
	batchValidate bool
)

func init() {
	batchCmd.Flags().StringVarP(&batchInput, "in", "i", "", "Input directory of resumes (required)")
	batchCmd.Flags().StringVarP(&batchOutput, "out", "o", "", "Output directory for profiles (default: output_dir from config)")
	batchCmd.Flags().IntVarP(&batchWorkers, "workers", "w", 0, "Concurrent files (default: batch_workers from config)")
	batchCmd.Flags().BoolVar(&batchValidate, "validate", false, "Check each profile against the profile schema")

	if err := batchCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	outDir := batchOutput
	if outDir == "" {
		outDir = cfg.OutputDir
	}
	if outDir == "" {
		return fmt.Errorf("output directory is required: pass --out or set output_dir in config")
	}
	workers := batchWorkers
	if workers <= 0 {
		workers = cfg.BatchWorkers
	}

	summary, err := batch.Run(cmd.Context(), batch.Options{
		InputDir:       batchInput,
		OutputDir:      outDir,
		Workers:        workers,
		ValidateSchema: batchValidate || cfg.ValidateSchema,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if isVerbose(cfg) {
		observability.NewPrinter(out).PrintBatchSummary(summary.Succeeded(), summary.Failures(), summary.Elapsed)
	}

	invalid := 0
	for _, r := range summary.Results {
		if len(r.Violations) > 0 {
			invalid++
			fmt.Fprintf(out, "%s: %d schema violations\n", r.Input, len(r.Violations))
		}
	}

	failed := len(summary.Results) - summary.Succeeded()
	fmt.Fprintf(out, "Wrote %d profiles to %s (%d failed, %d skipped)\n",
		summary.Succeeded(), outDir, failed, len(summary.Skipped))

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(summary.Results))
	}
	if invalid > 0 {
		return fmt.Errorf("%d profiles failed schema validation", invalid)
	}
	return nil
}
