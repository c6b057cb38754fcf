// Package main provides the resume_profiler CLI for extracting structured
// profiles from resumes.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/jonathan/resume-profiler/internal/config"
	"github.com/spf13/cobra"
)

var (
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:           "resume_profiler",
	Short:         "Resume profile extractor",
	Long:          "resume_profiler turns resume text, PDF, DOCX or HTML files into structured JSON profiles with per-field confidence and review warnings.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to JSON config file (optional)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print detailed summaries")
}

// loadConfig returns the config file merged with defaults, or the defaults
// alone when --config is not set.
func loadConfig() (config.Config, error) {
	defaults := config.Default()
	if configPath == "" {
		return defaults, nil
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return config.Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg.MergeWithDefaults(defaults), nil
}

func isVerbose(cfg config.Config) bool {
	return verbose || cfg.Verbose
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
