package questions

import (
	"github.com/goliatone/go-questions/internal/curriculum"
	"github.com/goliatone/go-questions/internal/di"
	"github.com/goliatone/go-questions/internal/generator"
	"github.com/goliatone/go-questions/internal/history"
	"github.com/goliatone/go-questions/pkg/interfaces"
)

// CurriculumService exports the curriculum service contract for consumers of the questions package.
type CurriculumService = curriculum.Service

// GeneratorService exports the document generator contract.
type GeneratorService = generator.Service

// HistoryRepository exports the build history ledger contract.
type HistoryRepository = history.Repository

// BuildOptions exports generator build options.
type BuildOptions = generator.BuildOptions

// BuildResult exports the generator build result.
type BuildResult = generator.BuildResult

// RenderedDocument exports a single rendered document.
type RenderedDocument = generator.RenderedDocument

// Hooks exports generator lifecycle callbacks.
type Hooks = generator.Hooks

// Topic exports a curriculum entry.
type Topic = curriculum.Topic

// Module represents the top level questions runtime façade.
type Module struct {
	container *di.Container
}

// New constructs a questions module using the provided configuration and optional DI overrides.
func New(cfg Config, opts ...di.Option) (*Module, error) {
	container, err := di.NewContainer(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Container exposes the underlying DI container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

// Curriculum returns the configured curriculum service.
func (m *Module) Curriculum() CurriculumService {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.CurriculumService()
}

// Generator returns the configured generator service.
func (m *Module) Generator() GeneratorService {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.GeneratorService()
}

// History returns the configured build history repository.
func (m *Module) History() HistoryRepository {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.HistoryRepository()
}

// Markdown returns the markdown parser used for HTML previews.
func (m *Module) Markdown() interfaces.MarkdownParser {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.MarkdownParser()
}

// LoggerProvider returns the resolved logging provider when logging is enabled.
func (m *Module) LoggerProvider() interfaces.LoggerProvider {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.LoggerProvider()
}
