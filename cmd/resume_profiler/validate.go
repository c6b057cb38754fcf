package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/jonathan/resume-profiler/internal/observability"
	"github.com/jonathan/resume-profiler/internal/schemas"
	"github.com/jonathan/resume-profiler/internal/types"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a profile JSON file",
	Long:  "Validates a profile JSON file against the built-in profile schema, or against a custom JSON Schema when --schema is given.",
	RunE:  runValidate,
}

var (
	validateJSON   string
	validateSchema string
)

func init() {
	validateCmd.Flags().StringVarP(&validateJSON, "json", "j", "", "Path to profile JSON file (required)")
	validateCmd.Flags().StringVarP(&validateSchema, "schema", "s", "", "Path to JSON Schema file (default: built-in profile schema)")

	if err := validateCmd.MarkFlagRequired("json"); err != nil {
		panic(fmt.Sprintf("failed to mark json flag as required: %v", err))
	}

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	var err error
	var advisories []string
	if validateSchema != "" {
		err = schemas.ValidateJSON(validateSchema, validateJSON)
	} else {
		data, readErr := os.ReadFile(validateJSON)
		if readErr != nil {
			return fmt.Errorf("failed to read profile file: %w", readErr)
		}
		err = schemas.ValidateProfileJSON(data)

		var profile types.Profile
		if json.Unmarshal(data, &profile) == nil {
			advisories = schemas.CheckProfileFields(&profile)
		}
	}

	var validationErr *schemas.ValidationError
	if err != nil && !errors.As(err, &validationErr) {
		return fmt.Errorf("validation could not run: %w", err)
	}

	violations := schemas.Violations(err)
	observability.NewPrinter(out).PrintViolations(violations, advisories)
	if len(violations) > 0 {
		return fmt.Errorf("validation failed with %d violations", len(violations))
	}

	fmt.Fprintf(out, "Validation passed: %s\n", validateJSON)
	return nil
}
