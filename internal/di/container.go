package di

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/goliatone/go-questions/internal/curriculum"
	"github.com/goliatone/go-questions/internal/generator"
	"github.com/goliatone/go-questions/internal/history"
	"github.com/goliatone/go-questions/internal/logging"
	"github.com/goliatone/go-questions/internal/logging/console"
	"github.com/goliatone/go-questions/internal/logging/gologger"
	"github.com/goliatone/go-questions/internal/markdown"
	"github.com/goliatone/go-questions/internal/render"
	"github.com/goliatone/go-questions/internal/runtimeconfig"
	"github.com/goliatone/go-questions/internal/storage"
	"github.com/goliatone/go-questions/pkg/interfaces"
	repocache "github.com/goliatone/go-repository-cache/cache"
	"github.com/uptrace/bun"
)

// Container wires module dependencies from configuration, applying overrides
// supplied through Options before services are finalised.
type Container struct {
	Config runtimeconfig.Config

	loggerProvider interfaces.LoggerProvider
	renderer       interfaces.TemplateRenderer
	store          interfaces.FileStore
	parser         interfaces.MarkdownParser

	bunDB         *bun.DB
	cacheService  repocache.CacheService
	keySerializer repocache.KeySerializer

	overridesFS fs.FS

	curriculumSvc curriculum.Service
	historyRepo   history.Repository
	generatorSvc  generator.Service
	hooks         generator.Hooks
}

// Option mutates the container before it is finalised.
type Option func(*Container)

// WithLoggerProvider overrides the logging provider resolved from configuration.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		c.loggerProvider = provider
	}
}

// WithTemplateRenderer overrides the default template renderer.
func WithTemplateRenderer(renderer interfaces.TemplateRenderer) Option {
	return func(c *Container) {
		c.renderer = renderer
	}
}

// WithFileStore overrides the default filesystem-backed store.
func WithFileStore(store interfaces.FileStore) Option {
	return func(c *Container) {
		c.store = store
	}
}

// WithMarkdownParser overrides the parser used for previews.
func WithMarkdownParser(parser interfaces.MarkdownParser) Option {
	return func(c *Container) {
		c.parser = parser
	}
}

// WithBunDB supplies the bun database handle used by the build history ledger.
func WithBunDB(db *bun.DB) Option {
	return func(c *Container) {
		c.bunDB = db
	}
}

// WithCache enables repository caching for build history reads.
func WithCache(service repocache.CacheService, serializer repocache.KeySerializer) Option {
	return func(c *Container) {
		c.cacheService = service
		c.keySerializer = serializer
	}
}

// WithHistoryRepository overrides the build history repository entirely.
func WithHistoryRepository(repo history.Repository) Option {
	return func(c *Container) {
		c.historyRepo = repo
	}
}

// WithCurriculumOverridesFS supplies the filesystem the override loader reads from.
// Defaults to the overrides directory on the host filesystem.
func WithCurriculumOverridesFS(fsys fs.FS) Option {
	return func(c *Container) {
		c.overridesFS = fsys
	}
}

// WithGeneratorHooks installs lifecycle callbacks on the generator service.
func WithGeneratorHooks(hooks generator.Hooks) Option {
	return func(c *Container) {
		c.hooks = hooks
	}
}

// NewContainer resolves every service the module needs from configuration.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Container{Config: cfg}
	for _, opt := range opts {
		opt(c)
	}

	if c.loggerProvider == nil {
		provider, err := resolveLoggerProvider(cfg)
		if err != nil {
			return nil, err
		}
		c.loggerProvider = provider
	}

	if c.renderer == nil {
		engine := render.NewEngine()
		if err := engine.Register(generator.DocumentTemplateName, generator.DocumentTemplate); err != nil {
			return nil, err
		}
		c.renderer = engine
	}

	if c.store == nil {
		// The generator already prefixes Generator.OutputDir onto every
		// destination, so the store stays rooted at the working directory.
		c.store = storage.NewOSStore("")
	}

	if c.parser == nil {
		c.parser = markdown.NewGoldmarkParser(interfaces.ParseOptions{})
	}

	if err := c.buildCurriculum(); err != nil {
		return nil, err
	}
	if err := c.buildHistory(); err != nil {
		return nil, err
	}
	c.buildGenerator()

	return c, nil
}

func (c *Container) buildCurriculum() error {
	topics := curriculum.DefaultTopics()

	if c.Config.Curriculum.OverridesEnabled {
		fsys := c.overridesFS
		basePath := "."
		if fsys == nil {
			fsys = os.DirFS(c.Config.Curriculum.OverridesDir)
		}
		loader := curriculum.NewLoader(fsys, curriculum.LoaderConfig{
			BasePath: basePath,
			Pattern:  c.Config.Curriculum.Pattern,
		})
		overrides, err := loader.LoadOverrides(context.Background())
		if err != nil {
			return err
		}
		topics = curriculum.MergeTopics(topics, overrides)
	}

	svc, err := curriculum.NewService(curriculum.Config{
		Topics:    topics,
		Companies: curriculum.DefaultCompanies(),
		Logger:    logging.CurriculumLogger(c.loggerProvider),
	})
	if err != nil {
		return err
	}
	c.curriculumSvc = svc
	return nil
}

func (c *Container) buildHistory() error {
	if c.historyRepo != nil {
		return nil
	}
	if !c.Config.History.Enabled || !c.Config.Features.History {
		c.historyRepo = history.NewMemoryRepository()
		return nil
	}
	if c.bunDB == nil {
		return fmt.Errorf("questions di: history is enabled but no bun database was provided")
	}
	if c.cacheService != nil {
		c.historyRepo = history.NewBunRepositoryWithCache(c.bunDB, c.cacheService, c.keySerializer)
		return nil
	}
	c.historyRepo = history.NewBunRepository(c.bunDB)
	return nil
}

func (c *Container) buildGenerator() {
	if !c.Config.Enabled || !c.Config.Features.Generator {
		c.generatorSvc = generator.NewDisabledService()
		return
	}
	c.generatorSvc = generator.NewService(generator.Config{
		OutputDir:     c.Config.Generator.OutputDir,
		Days:          c.Config.Generator.Days,
		CreateDirs:    c.Config.Generator.CreateDirs,
		WriteManifest: c.Config.Generator.WriteManifest,
		FilePattern:   c.Config.Generator.FilePattern,
	}, generator.Dependencies{
		Curriculum: c.curriculumSvc,
		Renderer:   c.renderer,
		Storage:    c.store,
		History:    c.historyRepo,
		Hooks:      c.hooks,
		Logger:     logging.GeneratorLogger(c.loggerProvider),
	})
}

// LoggerProvider returns the resolved logging provider.
func (c *Container) LoggerProvider() interfaces.LoggerProvider {
	return c.loggerProvider
}

// CurriculumService returns the configured curriculum service.
func (c *Container) CurriculumService() curriculum.Service {
	return c.curriculumSvc
}

// GeneratorService returns the configured generator service.
func (c *Container) GeneratorService() generator.Service {
	return c.generatorSvc
}

// HistoryRepository returns the configured build history repository.
func (c *Container) HistoryRepository() history.Repository {
	return c.historyRepo
}

// MarkdownParser returns the parser used for HTML previews.
func (c *Container) MarkdownParser() interfaces.MarkdownParser {
	return c.parser
}

// TemplateRenderer returns the renderer the generator uses.
func (c *Container) TemplateRenderer() interfaces.TemplateRenderer {
	return c.renderer
}

// FileStore returns the artifact store backing the generator.
func (c *Container) FileStore() interfaces.FileStore {
	return c.store
}

func resolveLoggerProvider(cfg runtimeconfig.Config) (interfaces.LoggerProvider, error) {
	if !cfg.Features.Logger {
		return nil, nil
	}
	switch strings.ToLower(strings.TrimSpace(cfg.Logging.Provider)) {
	case "", "console":
		level := console.ParseLevel(cfg.Logging.Level)
		return console.NewProvider(console.Options{MinLevel: &level}), nil
	case "gologger":
		return gologger.NewProvider(gologger.Config{
			Level:     cfg.Logging.Level,
			Format:    cfg.Logging.Format,
			AddSource: cfg.Logging.AddSource,
			Focus:     cfg.Logging.Focus,
		})
	default:
		return nil, fmt.Errorf("%w: %s", runtimeconfig.ErrLoggingProviderUnknown, cfg.Logging.Provider)
	}
}
