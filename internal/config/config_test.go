package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Output.Dir != "out" {
		t.Errorf("expected output dir 'out', got %q", cfg.Output.Dir)
	}
	if cfg.Output.SkipNormals {
		t.Error("expected skip_normals to be false by default")
	}
	if cfg.Properties != "" {
		t.Errorf("expected empty properties path, got %q", cfg.Properties)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %q", cfg.Logging.Level)
	}
}

func TestLoadMergesFileOverDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "forge-convert.yaml")
	content := `
output:
  dir: exported
  skip_normals: true
logging:
  level: debug
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Output.Dir != "exported" {
		t.Errorf("expected output dir 'exported', got %q", cfg.Output.Dir)
	}
	if !cfg.Output.SkipNormals {
		t.Error("expected skip_normals true from file")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %q", cfg.Logging.Level)
	}
	// Untouched keys keep their defaults.
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected default log file, got %q", cfg.Logging.LogFile)
	}
}

func TestLoadMissingExplicitFileFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("explicit missing config file should fail")
	}
}

func TestLoadMissingDefaultFileUsesDefaults(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(wd)
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load with no file should use defaults, got %v", err)
	}
	if cfg.Output.Dir != "out" {
		t.Errorf("expected defaults, got %q", cfg.Output.Dir)
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("output: ["), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("malformed YAML should fail")
	}
}
