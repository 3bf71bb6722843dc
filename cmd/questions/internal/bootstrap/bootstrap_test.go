package bootstrap

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/goliatone/go-questions/internal/generator"
)

func TestSplitDays(t *testing.T) {
	days, err := SplitDays("6, 7 ,8")
	if err != nil {
		t.Fatalf("split days: %v", err)
	}
	if len(days) != 3 || days[0] != 6 || days[2] != 8 {
		t.Fatalf("unexpected days %v", days)
	}

	if days, err := SplitDays("  "); err != nil || days != nil {
		t.Fatalf("expected empty input to yield nil, got %v / %v", days, err)
	}

	if _, err := SplitDays("6,x"); err == nil {
		t.Fatal("expected error for non-numeric day")
	}
}

func TestBuildModuleDefaults(t *testing.T) {
	module, err := BuildModule(Options{})
	if err != nil {
		t.Fatalf("build module: %v", err)
	}
	defer module.Close()

	if module.Generator == nil {
		t.Fatal("expected a generator service")
	}
	if module.Markdown == nil {
		t.Fatal("expected a markdown parser")
	}

	result, err := module.Generator.Build(context.Background(), generator.BuildOptions{DryRun: true})
	if err != nil {
		t.Fatalf("dry-run build: %v", err)
	}
	if result.DocumentsBuilt != 15 {
		t.Fatalf("expected 15 documents, got %d", result.DocumentsBuilt)
	}
}

func TestBuildModuleAppliesFlagOverrides(t *testing.T) {
	createDirs := false
	writeManifest := false

	module, err := BuildModule(Options{
		OutputDir:     "dist",
		FilePattern:   "questions/{day}.md",
		CreateDirs:    &createDirs,
		WriteManifest: &writeManifest,
	})
	if err != nil {
		t.Fatalf("build module: %v", err)
	}
	defer module.Close()

	cfg := module.Module.Container().Config
	if cfg.Generator.OutputDir != "dist" {
		t.Fatalf("unexpected output dir %q", cfg.Generator.OutputDir)
	}
	if cfg.Generator.FilePattern != "questions/{day}.md" {
		t.Fatalf("unexpected file pattern %q", cfg.Generator.FilePattern)
	}
	if cfg.Generator.CreateDirs || cfg.Generator.WriteManifest {
		t.Fatal("expected boolean overrides to apply")
	}
}

func TestBuildModuleWritesUnderOutputDir(t *testing.T) {
	t.Chdir(t.TempDir())

	module, err := BuildModule(Options{OutputDir: "dist"})
	if err != nil {
		t.Fatalf("build module: %v", err)
	}
	defer module.Close()

	if _, err := module.Generator.Build(context.Background(), generator.BuildOptions{Days: []int{6}}); err != nil {
		t.Fatalf("build: %v", err)
	}

	want := filepath.Join("dist", "day-6", "practice", "interview-questions.md")
	if _, err := os.Stat(want); err != nil {
		t.Fatalf("expected document at %s: %v", want, err)
	}
	if _, err := os.Stat(filepath.Join("dist", "dist")); !os.IsNotExist(err) {
		t.Fatal("output dir must not be applied twice")
	}
	if _, err := os.Stat(filepath.Join("dist", ".questions-manifest.json")); err != nil {
		t.Fatalf("expected manifest under the output dir: %v", err)
	}
}

func TestBuildModuleLoadsConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "questions.yml")
	content := []byte("generator:\n  output_dir: from-file\n  create_dirs: true\n  file_pattern: \"day-{day}/practice/interview-questions.md\"\nfeatures:\n  generator: true\nenabled: true\n")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	module, err := BuildModule(Options{ConfigPath: path})
	if err != nil {
		t.Fatalf("build module: %v", err)
	}
	defer module.Close()

	if got := module.Module.Container().Config.Generator.OutputDir; got != "from-file" {
		t.Fatalf("unexpected output dir %q", got)
	}
}

func TestBuildModuleRejectsMissingConfig(t *testing.T) {
	if _, err := BuildModule(Options{ConfigPath: filepath.Join(t.TempDir(), "absent.yml")}); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestBuildModuleEnablesHistory(t *testing.T) {
	dsn := "file:" + filepath.Join(t.TempDir(), "history.db")

	module, err := BuildModule(Options{HistoryDSN: dsn})
	if err != nil {
		t.Fatalf("build module: %v", err)
	}
	defer module.Close()

	repo := module.Module.History()
	if repo == nil {
		t.Fatal("expected a history repository")
	}
	if _, err := repo.List(context.Background(), 5); err != nil {
		t.Fatalf("list history: %v", err)
	}
}
