package generatecmd

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goliatone/go-questions/internal/generator"
)

const (
	generateMessageType = "questions.generate.build"
	previewMessageType  = "questions.generate.preview"
	cleanMessageType    = "questions.generate.clean"
)

// ResultCallback receives build results produced by generator operations. The callback is optional
// and is invoked synchronously from the handler when a BuildResult is available.
type ResultCallback func(ResultEnvelope)

// ResultEnvelope captures the outcome of a generate command execution that produced a BuildResult.
type ResultEnvelope struct {
	Result   *generator.BuildResult
	Metadata map[string]any
}

// PreviewCallback receives the rendered preview produced by PreviewDayCommand.
type PreviewCallback func(PreviewEnvelope)

// PreviewEnvelope carries a single rendered document and, when requested, its HTML conversion.
type PreviewEnvelope struct {
	Document *generator.RenderedDocument
	HTML     []byte
}

// GenerateQuestionsCommand renders interview question documents for the requested days.
// An empty Days slice renders every day in the curriculum.
type GenerateQuestionsCommand struct {
	Days           []int          `json:"days,omitempty"`
	DryRun         bool           `json:"dry_run,omitempty"`
	ResultCallback ResultCallback `json:"-"`
}

// Type implements command.Message.
func (GenerateQuestionsCommand) Type() string { return generateMessageType }

// Validate ensures requested days are positive.
func (m GenerateQuestionsCommand) Validate() error {
	errs := validation.Errors{}
	for _, day := range m.Days {
		if day <= 0 {
			errs["days"] = validation.NewError("questions.generate.day_invalid", "days must contain positive values")
			break
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// PreviewDayCommand renders a single day's document without writing artifacts.
type PreviewDayCommand struct {
	Day             int             `json:"day"`
	RenderHTML      bool            `json:"render_html,omitempty"`
	PreviewCallback PreviewCallback `json:"-"`
}

// Type implements command.Message.
func (PreviewDayCommand) Type() string { return previewMessageType }

// Validate ensures the requested day is positive.
func (m PreviewDayCommand) Validate() error {
	errs := validation.Errors{}
	if m.Day <= 0 {
		errs["day"] = validation.NewError("questions.generate.preview.day_invalid", "day must be a positive value")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// CleanCommand removes generated documents and the build manifest.
type CleanCommand struct{}

// Type implements command.Message.
func (CleanCommand) Type() string { return cleanMessageType }

// Validate satisfies command.Message; there are no payload constraints.
func (CleanCommand) Validate() error { return nil }

// FeatureGates exposes runtime switches used to guard handler execution.
type FeatureGates struct {
	GeneratorEnabled func() bool
}

func (g FeatureGates) generatorEnabled() bool {
	if g.GeneratorEnabled == nil {
		return false
	}
	return g.GeneratorEnabled()
}
