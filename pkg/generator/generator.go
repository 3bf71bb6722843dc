// Package generator exposes the question document generation API for
// go-questions hosts. Use NewService with Config and Dependencies to build
// the full day range or single day documents.
package generator

import internal "github.com/goliatone/go-questions/internal/generator"

type (
	Service          = internal.Service
	Config           = internal.Config
	Dependencies     = internal.Dependencies
	BuildOptions     = internal.BuildOptions
	BuildResult      = internal.BuildResult
	RenderedDocument = internal.RenderedDocument
	RenderDiagnostic = internal.RenderDiagnostic
	Hooks            = internal.Hooks
	DocumentContext  = internal.DocumentContext
	WriteError       = internal.WriteError
)

const (
	DocumentTemplateName = internal.DocumentTemplateName
	DocumentTemplate     = internal.DocumentTemplate
	DefaultFilePattern   = internal.DefaultFilePattern
)

var (
	ErrServiceDisabled = internal.ErrServiceDisabled
	ErrWriteFailed     = internal.ErrWriteFailed
)

// NewService wires a document generator with the supplied configuration and
// dependencies.
func NewService(cfg Config, deps Dependencies) Service {
	return internal.NewService(cfg, deps)
}

// NewDisabledService returns a Service that fails all operations with
// ErrServiceDisabled.
func NewDisabledService() Service {
	return internal.NewDisabledService()
}
