// Package render provides the default text/template backed implementation of
// interfaces.TemplateRenderer. The engine is deliberately small: templates
// are registered up front, parsed once, and rendered into strings.
package render

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"text/template"

	"github.com/goliatone/go-questions/pkg/interfaces"
)

var (
	ErrTemplateNameRequired = errors.New("render: template name is required")
	ErrTemplateNotFound     = errors.New("render: template not registered")
)

// Engine renders registered templates. Safe for concurrent use once all
// templates are registered.
type Engine struct {
	mu        sync.RWMutex
	templates map[string]*template.Template
	funcs     template.FuncMap
}

var _ interfaces.TemplateRenderer = (*Engine)(nil)

// NewEngine constructs an empty engine with the default helper functions
// (`join`) available to every template.
func NewEngine() *Engine {
	return &Engine{
		templates: map[string]*template.Template{},
		funcs: template.FuncMap{
			"join": strings.Join,
		},
	}
}

// Register parses and stores a template under the given name, replacing any
// previous registration.
func (e *Engine) Register(name, content string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrTemplateNameRequired
	}
	tmpl, err := template.New(name).Funcs(e.funcs).Parse(content)
	if err != nil {
		return fmt.Errorf("render: parse template %q: %w", name, err)
	}
	e.mu.Lock()
	e.templates[name] = tmpl
	e.mu.Unlock()
	return nil
}

// RenderTemplate executes a registered template against data. When writers
// are supplied the output is also copied to each of them.
func (e *Engine) RenderTemplate(name string, data any, out ...io.Writer) (string, error) {
	e.mu.RLock()
	tmpl, ok := e.templates[strings.TrimSpace(name)]
	e.mu.RUnlock()
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
	}
	return e.execute(tmpl, data, out...)
}

// RenderString parses and executes a one-off template.
func (e *Engine) RenderString(templateContent string, data any, out ...io.Writer) (string, error) {
	tmpl, err := template.New("inline").Funcs(e.funcs).Parse(templateContent)
	if err != nil {
		return "", fmt.Errorf("render: parse inline template: %w", err)
	}
	return e.execute(tmpl, data, out...)
}

func (e *Engine) execute(tmpl *template.Template, data any, out ...io.Writer) (string, error) {
	var buf strings.Builder
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render: execute template %q: %w", tmpl.Name(), err)
	}
	rendered := buf.String()
	for _, w := range out {
		if w == nil {
			continue
		}
		if _, err := io.WriteString(w, rendered); err != nil {
			return "", fmt.Errorf("render: copy output: %w", err)
		}
	}
	return rendered, nil
}
