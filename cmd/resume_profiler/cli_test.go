package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jonathan/resume-profiler/internal/types"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResume = `JANE DOE
jane.doe@example.com
Phone: 9876543210

EDUCATION
B.Tech in Computer Science, ABC Institute of Technology

SKILLS
Python, SQL, Docker
`

// resetFlags restores every flag to its default so commands can run
// repeatedly in one process.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func execute(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	resetFlags(rootCmd)

	var outBuf, errBuf bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&outBuf)
	rootCmd.SetErr(&errBuf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err = rootCmd.Execute()
	return outBuf.String(), errBuf.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestExtract_Stdin(t *testing.T) {
	stdout, _, err := execute(t, sampleResume, "extract")
	require.NoError(t, err)

	var profile types.Profile
	require.NoError(t, json.Unmarshal([]byte(stdout), &profile))
	assert.Equal(t, "jane.doe@example.com", profile.Personal.Email)
	assert.Equal(t, "9876543210", profile.Personal.Phone)
	assert.Equal(t, "BACHELORS", profile.Education.HighestQualification)
}

func TestExtract_FileToFile(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "resume.txt", sampleResume)
	out := filepath.Join(dir, "profile.json")

	stdout, stderr, err := execute(t, "", "extract", "--in", in, "--out", out, "--validate")
	require.NoError(t, err)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "Wrote profile to")

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"email": "jane.doe@example.com"`)
}

func TestExtract_Verbose(t *testing.T) {
	_, stderr, err := execute(t, sampleResume, "extract", "--verbose")
	require.NoError(t, err)
	assert.Contains(t, stderr, "EXTRACTED PROFILE")
	assert.Contains(t, stderr, "jane.doe@example.com")
}

func TestExtract_Errors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name    string
		stdin   string
		args    []string
		wantErr string
	}{
		{name: "missing file", args: []string{"extract", "--in", filepath.Join(dir, "nope.txt")}, wantErr: "file not found"},
		{name: "unsupported type", args: []string{"extract", "--in", writeFile(t, dir, "resume.xls", "x")}, wantErr: "unsupported"},
		{name: "empty stdin", stdin: "  \n", args: []string{"extract"}, wantErr: "could not extract text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.stdin, tt.args...)
			require.Error(t, err)
			assert.Contains(t, strings.ToLower(err.Error()), tt.wantErr)
		})
	}
}

func TestBatch(t *testing.T) {
	in := t.TempDir()
	writeFile(t, in, "jane.txt", sampleResume)
	writeFile(t, in, "john.txt", "John Smith\njohn@example.com\n")
	out := filepath.Join(t.TempDir(), "profiles")

	stdout, _, err := execute(t, "", "batch", "--in", in, "--out", out, "--workers", "2")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Wrote 2 profiles")

	assert.FileExists(t, filepath.Join(out, "jane.json"))
	assert.FileExists(t, filepath.Join(out, "john.json"))
}

func TestBatch_OutputDirFromConfig(t *testing.T) {
	in := t.TempDir()
	writeFile(t, in, "jane.txt", sampleResume)
	out := filepath.Join(t.TempDir(), "from-config")
	cfgPath := writeFile(t, t.TempDir(), "config.json", `{"output_dir": "`+filepath.ToSlash(out)+`", "verbose": true}`)

	stdout, _, err := execute(t, "", "batch", "--config", cfgPath, "--in", in)
	require.NoError(t, err)
	assert.Contains(t, stdout, "BATCH SUMMARY")
	assert.FileExists(t, filepath.Join(out, "jane.json"))
}

func TestBatch_Errors(t *testing.T) {
	in := t.TempDir()
	writeFile(t, in, "empty.txt", "")

	_, _, err := execute(t, "", "batch", "--in", in)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "output directory is required")

	stdout, _, err := execute(t, "", "batch", "--in", in, "--out", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 1 files failed")
	assert.Contains(t, stdout, "1 failed")

	_, _, err = execute(t, "", "batch", "--out", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), `required flag(s) "in" not set`)
}

func TestInvalidConfig(t *testing.T) {
	cfgPath := writeFile(t, t.TempDir(), "config.json", `{"port": 70000}`)

	_, _, err := execute(t, sampleResume, "extract", "--config", cfgPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "'port' must be between")
}

func TestValidate(t *testing.T) {
	dir := t.TempDir()
	profilePath := filepath.Join(dir, "profile.json")
	_, _, err := execute(t, sampleResume, "extract", "--out", profilePath)
	require.NoError(t, err)

	stdout, _, err := execute(t, "", "validate", "--json", profilePath)
	require.NoError(t, err)
	assert.Contains(t, stdout, "PROFILE MATCHES SCHEMA")
	assert.Contains(t, stdout, "Validation passed")
}

func TestValidate_Violations(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "bad.json", `{"personal": {"full_name": "A", "email": "x", "phone": ""}, "skills": "Go"}`)

	stdout, _, err := execute(t, "", "validate", "--json", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed with")
	assert.Contains(t, stdout, "schema violations")
}

func TestValidate_CustomSchema(t *testing.T) {
	dir := t.TempDir()
	schema := writeFile(t, dir, "schema.json", `{"type": "object", "required": ["full_name"]}`)
	good := writeFile(t, dir, "good.json", `{"full_name": "Jane"}`)
	bad := writeFile(t, dir, "bad.json", `{"name": "Jane"}`)

	_, _, err := execute(t, "", "validate", "--json", good, "--schema", schema)
	assert.NoError(t, err)

	_, _, err = execute(t, "", "validate", "--json", bad, "--schema", schema)
	assert.Error(t, err)

	_, _, err = execute(t, "", "validate", "--json", filepath.Join(dir, "missing.json"), "--schema", schema)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation could not run")
}
