package interfaces

import "io"

// TemplateRenderer renders named templates into text. The generator only
// depends on this narrow contract so hosts can swap the default text/template
// engine for any other implementation.
type TemplateRenderer interface {
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
}
