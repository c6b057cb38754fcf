package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jonathan/resume-profiler/internal/extraction"
	"github.com/jonathan/resume-profiler/internal/ingestion"
	"github.com/jonathan/resume-profiler/internal/observability"
	"github.com/jonathan/resume-profiler/internal/schemas"
	"github.com/spf13/cobra"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract a profile from one resume",
	Long:  "Reads a resume file (txt, pdf, docx or html) or plain text on stdin and writes the extracted profile as JSON.",
	RunE:  runExtract,
}

var (
	extractInput    string
	extractOutput   string
	extractValidate bool
)

func init() {
	extractCmd.Flags().StringVarP(&extractInput, "in", "i", "", "Path to resume file (default: read text from stdin)")
	extractCmd.Flags().StringVarP(&extractOutput, "out", "o", "", "Path to output profile JSON (default: stdout)")
	extractCmd.Flags().BoolVar(&extractValidate, "validate", false, "Check the profile against the profile schema")
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var doc *ingestion.Document
	if extractInput == "" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		doc, err = ingestion.Ingest("stdin.txt", data)
		if err != nil {
			return err
		}
	} else {
		doc, err = ingestion.IngestFile(extractInput)
		if err != nil {
			return err
		}
	}

	profile := extraction.ExtractProfile(doc.Text)

	if isVerbose(cfg) {
		printer := observability.NewPrinter(cmd.ErrOrStderr())
		printer.PrintProfile(profile)
		printer.PrintWarnings(profile.Warnings)
	}

	data, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}
	data = append(data, '\n')

	if extractOutput == "" {
		if _, err := cmd.OutOrStdout().Write(data); err != nil {
			return fmt.Errorf("failed to write profile: %w", err)
		}
	} else {
		if err := os.WriteFile(extractOutput, data, 0o644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Wrote profile to %s\n", extractOutput)
	}

	if extractValidate || cfg.ValidateSchema {
		violations := schemas.ValidateProfile(profile)
		if len(violations) > 0 {
			observability.NewPrinter(cmd.ErrOrStderr()).PrintViolations(violations, nil)
			return fmt.Errorf("profile failed schema validation with %d violations", len(violations))
		}
	}

	return nil
}
