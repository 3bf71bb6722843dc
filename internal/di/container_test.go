package di

import (
	"context"
	"errors"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-questions/internal/generator"
	"github.com/goliatone/go-questions/internal/history"
	"github.com/goliatone/go-questions/internal/runtimeconfig"
	"github.com/goliatone/go-questions/pkg/testsupport"
)

func TestNewContainerDefaults(t *testing.T) {
	container, err := NewContainer(runtimeconfig.DefaultConfig())
	if err != nil {
		t.Fatalf("new container: %v", err)
	}

	if container.GeneratorService() == nil {
		t.Fatal("expected a generator service")
	}
	if container.CurriculumService() == nil {
		t.Fatal("expected a curriculum service")
	}
	if container.HistoryRepository() == nil {
		t.Fatal("expected a history repository fallback")
	}
	if container.MarkdownParser() == nil {
		t.Fatal("expected a markdown parser")
	}
	if container.TemplateRenderer() == nil {
		t.Fatal("expected a template renderer")
	}

	topic, err := container.CurriculumService().Topic(6)
	if err != nil {
		t.Fatalf("topic lookup: %v", err)
	}
	if topic.Title != "Forms & Controlled Components" {
		t.Fatalf("unexpected topic %q", topic.Title)
	}
}

func TestNewContainerDryRunBuild(t *testing.T) {
	container, err := NewContainer(runtimeconfig.DefaultConfig())
	if err != nil {
		t.Fatalf("new container: %v", err)
	}

	result, err := container.GeneratorService().Build(context.Background(), generator.BuildOptions{DryRun: true})
	if err != nil {
		t.Fatalf("dry-run build: %v", err)
	}
	if result.DocumentsBuilt != 15 {
		t.Fatalf("expected 15 documents, got %d", result.DocumentsBuilt)
	}
}

func TestNewContainerDisabledGenerator(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Features.Generator = false

	container, err := NewContainer(cfg)
	if err != nil {
		t.Fatalf("new container: %v", err)
	}

	if _, err := container.GeneratorService().Build(context.Background(), generator.BuildOptions{}); !errors.Is(err, generator.ErrServiceDisabled) {
		t.Fatalf("expected ErrServiceDisabled, got %v", err)
	}
}

func TestNewContainerHistoryRequiresDatabase(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.History.Enabled = true
	cfg.History.DSN = "file:questions.db"
	cfg.Features.History = true

	if _, err := NewContainer(cfg); err == nil {
		t.Fatal("expected error when history is enabled without a database handle")
	}
}

func TestNewContainerHistoryWithDatabase(t *testing.T) {
	t.Chdir(t.TempDir())

	db, err := testsupport.NewBunMemoryDB(t.Name())
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := history.EnsureSchema(context.Background(), db); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}

	cfg := runtimeconfig.DefaultConfig()
	cfg.History.Enabled = true
	cfg.History.DSN = "file:" + t.Name()
	cfg.Features.History = true

	container, err := NewContainer(cfg, WithBunDB(db))
	if err != nil {
		t.Fatalf("new container: %v", err)
	}

	if _, err := container.GeneratorService().Build(context.Background(), generator.BuildOptions{Days: []int{6}}); err != nil {
		t.Fatalf("build: %v", err)
	}

	records, err := container.HistoryRepository().List(context.Background(), 5)
	if err != nil {
		t.Fatalf("list history: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected one build record, got %d", len(records))
	}
	if records[0].Documents != 1 {
		t.Fatalf("expected one document recorded, got %d", records[0].Documents)
	}
}

func TestNewContainerValidatesConfig(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Generator.OutputDir = "/absolute"

	if _, err := NewContainer(cfg); !errors.Is(err, runtimeconfig.ErrGeneratorOutputDirInvalid) {
		t.Fatalf("expected ErrGeneratorOutputDirInvalid, got %v", err)
	}
}

func TestNewContainerCurriculumOverrides(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Curriculum.OverridesEnabled = true
	cfg.Curriculum.OverridesDir = "overrides"

	fsys := fstest.MapFS{
		"day-6.md": {Data: []byte("---\nday: 6\ntitle: Controlled Forms Deep Dive\n---\nnotes\n")},
	}

	container, err := NewContainer(cfg, WithCurriculumOverridesFS(fsys))
	if err != nil {
		t.Fatalf("new container: %v", err)
	}

	topic, err := container.CurriculumService().Topic(6)
	if err != nil {
		t.Fatalf("topic lookup: %v", err)
	}
	if topic.Title != "Controlled Forms Deep Dive" {
		t.Fatalf("expected override title, got %q", topic.Title)
	}

	topic, err = container.CurriculumService().Topic(7)
	if err != nil {
		t.Fatalf("topic lookup: %v", err)
	}
	if topic.Title != "Conditional Rendering Patterns" {
		t.Fatalf("expected default title to survive, got %q", topic.Title)
	}
}

func TestNewContainerGeneratorHooks(t *testing.T) {
	called := false
	hooks := generator.Hooks{
		AfterBuild: func(context.Context, generator.BuildOptions, *generator.BuildResult) error {
			called = true
			return nil
		},
	}

	container, err := NewContainer(runtimeconfig.DefaultConfig(), WithGeneratorHooks(hooks))
	if err != nil {
		t.Fatalf("new container: %v", err)
	}

	if _, err := container.GeneratorService().Build(context.Background(), generator.BuildOptions{DryRun: true}); err != nil {
		t.Fatalf("dry-run build: %v", err)
	}
	if !called {
		t.Fatal("expected the AfterBuild hook to run")
	}
}
