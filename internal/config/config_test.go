package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"CHRONIC_FORMAT", "CHRONIC_DEFAULT_UNIT", "CHRONIC_STRICT", "CHRONIC_HIDE_SECONDS", "CHRONIC_JOBS", "CHRONIC_COLOR"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	got, err := Load("")
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	want := Config{
		Format:      "default",
		DefaultUnit: "seconds",
		Jobs:        10,
		Color:       "auto",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("CHRONIC_FORMAT", "chrono")
	t.Setenv("CHRONIC_DEFAULT_UNIT", "min")
	t.Setenv("CHRONIC_STRICT", "true")
	t.Setenv("CHRONIC_HIDE_SECONDS", "true")
	t.Setenv("CHRONIC_JOBS", "4")
	t.Setenv("CHRONIC_COLOR", "never")

	got, err := Load("")
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	want := Config{
		Format:      "chrono",
		DefaultUnit: "min",
		Strict:      true,
		HideSeconds: true,
		Jobs:        4,
		Color:       "never",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFile(t *testing.T) {
	t.Setenv("CHRONIC_JOBS", "3")

	path := filepath.Join(t.TempDir(), "chronic.yaml")
	content := "format: long\ndefault-unit: hours\nstrict: true\njobs: 20\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%q) unexpected error: %v", path, err)
	}

	// The environment overrides the file.
	want := Config{
		Format:      "long",
		DefaultUnit: "hours",
		Strict:      true,
		Jobs:        3,
		Color:       "auto",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() expected error for missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	valid := Config{Format: "default", DefaultUnit: "seconds", Jobs: 10, Color: "auto"}

	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"bad format", func(c *Config) { c.Format = "iso" }, "invalid format"},
		{"bad unit", func(c *Config) { c.DefaultUnit = "fortnight" }, "invalid default unit"},
		{"bad color", func(c *Config) { c.Color = "sometimes" }, "invalid color"},
		{"too few jobs", func(c *Config) { c.Jobs = 0 }, "jobs must be between"},
		{"too many jobs", func(c *Config) { c.Jobs = 101 }, "jobs must be between"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.modify(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestUsage(t *testing.T) {
	usage, err := Usage()
	if err != nil {
		t.Fatalf("Usage() unexpected error: %v", err)
	}
	for _, key := range []string{"CHRONIC_FORMAT", "CHRONIC_JOBS", "CHRONIC_COLOR"} {
		if !strings.Contains(usage, key) {
			t.Errorf("Usage() missing %s:\n%s", key, usage)
		}
	}
}
