package generatecmd

import (
	"context"

	"github.com/goliatone/go-questions/internal/commands"
	"github.com/goliatone/go-questions/internal/curriculum"
	"github.com/goliatone/go-questions/internal/generator"
	"github.com/goliatone/go-questions/internal/logging"
	"github.com/goliatone/go-questions/pkg/interfaces"
)

// GenerateQuestionsHandler orchestrates generator builds using the shared command handler foundation.
type GenerateQuestionsHandler struct {
	inner *commands.Handler[GenerateQuestionsCommand]
}

// NewGenerateQuestionsHandler constructs a handler wired to the provided generator service.
func NewGenerateQuestionsHandler(service generator.Service, logger interfaces.Logger, gates FeatureGates, opts ...commands.HandlerOption[GenerateQuestionsCommand]) *GenerateQuestionsHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg GenerateQuestionsCommand) error {
		if service == nil || !gates.generatorEnabled() {
			return generator.ErrServiceDisabled
		}

		options := generator.BuildOptions{
			DryRun: msg.DryRun,
		}
		if len(msg.Days) > 0 {
			options.Days = append([]int(nil), msg.Days...)
		}

		result, err := service.Build(ctx, options)
		invokeCallback(msg.ResultCallback, ResultEnvelope{
			Result: result,
			Metadata: map[string]any{
				"operation": "build",
			},
		})
		return err
	}

	handlerOpts := []commands.HandlerOption[GenerateQuestionsCommand]{
		commands.WithLogger[GenerateQuestionsCommand](baseLogger),
		commands.WithOperation[GenerateQuestionsCommand]("generate.build"),
		commands.WithMessageFields(func(msg GenerateQuestionsCommand) map[string]any {
			fields := map[string]any{}
			if len(msg.Days) > 0 {
				fields["days"] = len(msg.Days)
			}
			if msg.DryRun {
				fields["dry_run"] = true
			}
			return fields
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[GenerateQuestionsCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &GenerateQuestionsHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[GenerateQuestionsCommand].
func (h *GenerateQuestionsHandler) Execute(ctx context.Context, msg GenerateQuestionsCommand) error {
	return h.inner.Execute(ctx, msg)
}

// PreviewDayHandler renders a single day without persisting output.
type PreviewDayHandler struct {
	inner *commands.Handler[PreviewDayCommand]
}

// NewPreviewDayHandler constructs a handler that renders one day's document, optionally
// converting the markdown to HTML with the supplied parser.
func NewPreviewDayHandler(service generator.Service, parser interfaces.MarkdownParser, logger interfaces.Logger, gates FeatureGates, opts ...commands.HandlerOption[PreviewDayCommand]) *PreviewDayHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg PreviewDayCommand) error {
		if service == nil || !gates.generatorEnabled() {
			return generator.ErrServiceDisabled
		}

		result, err := service.Build(ctx, generator.BuildOptions{Days: []int{msg.Day}, DryRun: true})
		if err != nil {
			return err
		}
		if result == nil || len(result.Documents) == 0 {
			return &curriculum.DayNotFoundError{Day: msg.Day}
		}
		doc := result.Documents[0]

		envelope := PreviewEnvelope{Document: &doc}
		if msg.RenderHTML && parser != nil {
			html, err := parser.Parse([]byte(doc.Markdown))
			if err != nil {
				return err
			}
			envelope.HTML = html
		}
		invokePreview(msg.PreviewCallback, envelope)
		return nil
	}

	handlerOpts := []commands.HandlerOption[PreviewDayCommand]{
		commands.WithLogger[PreviewDayCommand](baseLogger),
		commands.WithOperation[PreviewDayCommand]("generate.preview"),
		commands.WithMessageFields(func(msg PreviewDayCommand) map[string]any {
			fields := map[string]any{"day": msg.Day}
			if msg.RenderHTML {
				fields["render_html"] = true
			}
			return fields
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[PreviewDayCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &PreviewDayHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[PreviewDayCommand].
func (h *PreviewDayHandler) Execute(ctx context.Context, msg PreviewDayCommand) error {
	return h.inner.Execute(ctx, msg)
}

// CleanHandler clears generated documents and the build manifest.
type CleanHandler struct {
	inner *commands.Handler[CleanCommand]
}

// NewCleanHandler constructs a handler that cleans generator output.
func NewCleanHandler(service generator.Service, logger interfaces.Logger, gates FeatureGates, opts ...commands.HandlerOption[CleanCommand]) *CleanHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg CleanCommand) error {
		if service == nil || !gates.generatorEnabled() {
			return generator.ErrServiceDisabled
		}
		return service.Clean(ctx)
	}

	handlerOpts := []commands.HandlerOption[CleanCommand]{
		commands.WithLogger[CleanCommand](baseLogger),
		commands.WithOperation[CleanCommand]("generate.clean"),
		commands.WithTelemetry(commands.DefaultTelemetry[CleanCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &CleanHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[CleanCommand].
func (h *CleanHandler) Execute(ctx context.Context, msg CleanCommand) error {
	return h.inner.Execute(ctx, msg)
}

func invokeCallback(cb ResultCallback, envelope ResultEnvelope) {
	if cb == nil {
		return
	}
	cb(envelope)
}

func invokePreview(cb PreviewCallback, envelope PreviewEnvelope) {
	if cb == nil {
		return
	}
	cb(envelope)
}
