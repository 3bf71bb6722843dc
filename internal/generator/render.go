package generator

import "time"

// RenderedDocument captures the rendered markdown output for one day.
type RenderedDocument struct {
	Day      int
	Topic    string
	Slug     string
	Output   string
	Markdown string
	Checksum string
	Duration time.Duration
}

// RenderDiagnostic records rendering timing and errors for individual days.
type RenderDiagnostic struct {
	Day      int
	Topic    string
	Output   string
	Duration time.Duration
	Err      error
}

type renderOutcome struct {
	doc        RenderedDocument
	diagnostic RenderDiagnostic
	err        error
}
