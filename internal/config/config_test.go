package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig_ValidJSON(t *testing.T) {
	path := writeConfig(t, `{
		"port": 9090,
		"max_upload_bytes": 2048,
		"batch_workers": 8,
		"output_dir": "out",
		"validate_schema": true,
		"verbose": true
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, int64(2048), cfg.MaxUploadBytes)
	assert.Equal(t, 8, cfg.BatchWorkers)
	assert.Equal(t, "out", cfg.OutputDir)
	assert.True(t, cfg.ValidateSchema)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		path    func(t *testing.T) string
		message string
	}{
		{"empty path", func(*testing.T) string { return "" }, "config path is empty"},
		{"missing file", func(*testing.T) string { return "/nonexistent/path/config.json" }, "failed to read config file"},
		{"invalid JSON", func(t *testing.T) string { return writeConfig(t, "{ invalid json }") }, "failed to parse config JSON"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadConfig(tt.path(t))
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestValidate(t *testing.T) {
	notADir := filepath.Join(t.TempDir(), "file.txt")
	require.NoError(t, os.WriteFile(notADir, []byte("x"), 0644))

	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"zero config", Config{}, ""},
		{"defaults", Default(), ""},
		{"negative port", Config{Port: -1}, "port"},
		{"port too large", Config{Port: 70000}, "port"},
		{"negative upload size", Config{MaxUploadBytes: -5}, "max_upload_bytes"},
		{"negative workers", Config{BatchWorkers: -1}, "batch_workers"},
		{"too many workers", Config{BatchWorkers: 1000}, "at most"},
		{"output dir is a file", Config{OutputDir: notADir}, "not a directory"},
		{"output dir not created yet", Config{OutputDir: filepath.Join(t.TempDir(), "later")}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := &Config{Port: 9000, Verbose: true}

	merged := cfg.MergeWithDefaults(Default())

	assert.Equal(t, 9000, merged.Port, "explicit value wins")
	assert.Equal(t, int64(DefaultMaxUploadBytes), merged.MaxUploadBytes)
	assert.Equal(t, DefaultBatchWorkers, merged.BatchWorkers)
	assert.Equal(t, DefaultCORSOrigin, merged.CORSOrigin)
	assert.True(t, merged.Verbose)
	assert.Equal(t, 0, cfg.BatchWorkers, "receiver is not modified")
}

func TestMergeWithDefaults_EmptyDefaults(t *testing.T) {
	cfg := &Config{OutputDir: "profiles"}

	merged := cfg.MergeWithDefaults(Config{})

	assert.Equal(t, "profiles", merged.OutputDir)
	assert.Equal(t, 0, merged.Port)
}
