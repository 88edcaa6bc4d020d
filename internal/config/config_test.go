package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	cfg, _, exists, err := Load(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if exists {
		t.Fatal("expected missing config file")
	}
	if cfg.Clips.Extension != "mp4" {
		t.Fatalf("unexpected default extension: %q", cfg.Clips.Extension)
	}
	if cfg.FFmpeg.Binary != "ffmpeg" {
		t.Fatalf("unexpected default binary: %q", cfg.FFmpeg.Binary)
	}
	if !filepath.IsAbs(cfg.Paths.OutputDir) {
		t.Fatalf("expected expanded output dir, got %q", cfg.Paths.OutputDir)
	}
}

func TestLoadParsesAndNormalizes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[paths]
output_dir = "/tmp/cleave-out"
log_dir = "/tmp/cleave-logs"

[clips]
extension = ".mkv"
parallel = 4
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, resolved, exists, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("unexpected resolution: %q exists=%v", resolved, exists)
	}
	if cfg.Clips.Extension != "mkv" {
		t.Fatalf("extension not normalized: %q", cfg.Clips.Extension)
	}
	if cfg.Clips.Parallel != 4 {
		t.Fatalf("unexpected parallel: %d", cfg.Clips.Parallel)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"bad parallel":  "[clips]\nparallel = 0\n",
		"bad extension": "[clips]\nextension = \"a/b\"\n",
		"bad format":    "[logging]\nformat = \"xml\"\n",
		"bad timeout":   "[ffmpeg]\ncut_timeout_seconds = -1\n",
	}
	for name, content := range cases {
		path := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, _, _, err := Load(path); err == nil {
			t.Fatalf("%s: expected validation error", name)
		}
	}
}

func TestAPIKeyEnvFallback(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-key")
	cfg, _, _, err := Load(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Gemini.APIKey != "env-key" {
		t.Fatalf("expected env fallback, got %q", cfg.Gemini.APIKey)
	}
}

func TestCreateSampleRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := CreateSample(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "[gemini]") {
		t.Fatal("sample config missing gemini section")
	}
	if _, _, _, err := Load(path); err != nil {
		t.Fatalf("sample config failed to load: %v", err)
	}
}
