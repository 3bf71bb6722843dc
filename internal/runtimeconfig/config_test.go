package runtimeconfig

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if !cfg.Enabled {
		t.Fatal("expected module enabled by default")
	}
	if !cfg.Generator.CreateDirs {
		t.Fatal("expected parent directories to be created by default")
	}
	if !cfg.Generator.WriteManifest {
		t.Fatal("expected manifest writing by default")
	}
	if cfg.Generator.FilePattern != "day-{day}/practice/interview-questions.md" {
		t.Fatalf("unexpected file pattern %q", cfg.Generator.FilePattern)
	}
	if !cfg.Features.Generator {
		t.Fatal("expected generator feature enabled by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected default config to validate, got %v", err)
	}
}

func TestLoadFileOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "questions.yml")
	content := []byte(`
generator:
  output_dir: dist
  days: [6, 7]
  create_dirs: true
  write_manifest: false
  file_pattern: "day-{day}/practice/interview-questions.md"
history:
  enabled: true
  dsn: "file:questions.db"
features:
  generator: true
  history: true
  logger: true
logging:
  provider: console
  level: debug
`)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("load file: %v", err)
	}
	if cfg.Generator.OutputDir != "dist" {
		t.Fatalf("unexpected output dir %q", cfg.Generator.OutputDir)
	}
	if len(cfg.Generator.Days) != 2 || cfg.Generator.Days[0] != 6 {
		t.Fatalf("unexpected days %v", cfg.Generator.Days)
	}
	if cfg.Generator.WriteManifest {
		t.Fatal("expected manifest writing disabled")
	}
	if !cfg.History.Enabled || cfg.History.DSN != "file:questions.db" {
		t.Fatalf("unexpected history config %+v", cfg.History)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected config to validate, got %v", err)
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.yml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadFileBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yml")
	if err := os.WriteFile(path, []byte("generator: [unbalanced"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestValidateRejectsAbsoluteOutputDir(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Generator.OutputDir = "/var/output"

	if err := cfg.Validate(); !errors.Is(err, ErrGeneratorOutputDirInvalid) {
		t.Fatalf("expected ErrGeneratorOutputDirInvalid, got %v", err)
	}
}

func TestValidateRequiresDayPlaceholder(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Generator.FilePattern = "questions.md"

	if err := cfg.Validate(); !errors.Is(err, ErrGeneratorFilePatternRequired) {
		t.Fatalf("expected ErrGeneratorFilePatternRequired, got %v", err)
	}
}

func TestValidateRequiresOverridesDir(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Curriculum.OverridesEnabled = true

	if err := cfg.Validate(); !errors.Is(err, ErrCurriculumDirRequired) {
		t.Fatalf("expected ErrCurriculumDirRequired, got %v", err)
	}
}

func TestValidateRequiresHistoryDSN(t *testing.T) {
	cfg := DefaultConfig()
	cfg.History.Enabled = true

	if err := cfg.Validate(); !errors.Is(err, ErrHistoryDSNRequired) {
		t.Fatalf("expected ErrHistoryDSNRequired, got %v", err)
	}
}

func TestValidateLoggingProvider(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Features.Logger = true
	cfg.Logging.Provider = "syslog"

	if err := cfg.Validate(); !errors.Is(err, ErrLoggingProviderUnknown) {
		t.Fatalf("expected ErrLoggingProviderUnknown, got %v", err)
	}

	cfg.Logging.Provider = "console"
	cfg.Logging.Level = "verbose"
	if err := cfg.Validate(); !errors.Is(err, ErrLoggingLevelInvalid) {
		t.Fatalf("expected ErrLoggingLevelInvalid, got %v", err)
	}

	cfg.Logging.Level = "info"
	cfg.Logging.Provider = "gologger"
	cfg.Logging.Format = "xml"
	if err := cfg.Validate(); !errors.Is(err, ErrLoggingFormatInvalid) {
		t.Fatalf("expected ErrLoggingFormatInvalid, got %v", err)
	}
}
