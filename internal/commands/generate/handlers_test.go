package generatecmd

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/goliatone/go-questions/internal/generator"
	"github.com/goliatone/go-questions/pkg/interfaces"
)

type fakeGeneratorService struct {
	buildFunc    func(ctx context.Context, opts generator.BuildOptions) (*generator.BuildResult, error)
	buildDayFunc func(ctx context.Context, day int) (*generator.RenderedDocument, error)
	cleanFunc    func(ctx context.Context) error
}

func (f *fakeGeneratorService) Build(ctx context.Context, opts generator.BuildOptions) (*generator.BuildResult, error) {
	if f.buildFunc == nil {
		return &generator.BuildResult{}, nil
	}
	return f.buildFunc(ctx, opts)
}

func (f *fakeGeneratorService) BuildDay(ctx context.Context, day int) (*generator.RenderedDocument, error) {
	if f.buildDayFunc == nil {
		return &generator.RenderedDocument{Day: day}, nil
	}
	return f.buildDayFunc(ctx, day)
}

func (f *fakeGeneratorService) Clean(ctx context.Context) error {
	if f.cleanFunc == nil {
		return nil
	}
	return f.cleanFunc(ctx)
}

func alwaysTrue() bool { return true }

func TestGenerateQuestionsHandlerExecute(t *testing.T) {
	var capturedOpts generator.BuildOptions
	callbackInvoked := false

	svc := &fakeGeneratorService{
		buildFunc: func(ctx context.Context, opts generator.BuildOptions) (*generator.BuildResult, error) {
			capturedOpts = opts
			return &generator.BuildResult{DocumentsBuilt: 15}, nil
		},
	}

	handler := NewGenerateQuestionsHandler(svc, nil, FeatureGates{GeneratorEnabled: alwaysTrue})

	cmd := GenerateQuestionsCommand{
		Days: []int{6, 7, 8},
		ResultCallback: func(env ResultEnvelope) {
			callbackInvoked = true
			if env.Result == nil {
				t.Fatal("expected build result, got nil")
			}
			if env.Result.DocumentsBuilt != 15 {
				t.Fatalf("expected DocumentsBuilt 15, got %d", env.Result.DocumentsBuilt)
			}
			if env.Metadata["operation"] != "build" {
				t.Fatalf("expected operation build, got %v", env.Metadata["operation"])
			}
		},
	}

	if err := handler.Execute(context.Background(), cmd); err != nil {
		t.Fatalf("execute build: %v", err)
	}

	if len(capturedOpts.Days) != 3 {
		t.Fatalf("expected 3 days, got %d", len(capturedOpts.Days))
	}
	if capturedOpts.DryRun {
		t.Fatal("expected DryRun false")
	}
	if !callbackInvoked {
		t.Fatal("expected callback to be invoked")
	}
}

func TestGenerateQuestionsHandlerDryRun(t *testing.T) {
	svc := &fakeGeneratorService{
		buildFunc: func(ctx context.Context, opts generator.BuildOptions) (*generator.BuildResult, error) {
			if !opts.DryRun {
				t.Fatal("expected dry-run option to propagate")
			}
			return &generator.BuildResult{DryRun: true}, nil
		},
	}

	handler := NewGenerateQuestionsHandler(svc, nil, FeatureGates{GeneratorEnabled: alwaysTrue})
	if err := handler.Execute(context.Background(), GenerateQuestionsCommand{DryRun: true}); err != nil {
		t.Fatalf("execute: %v", err)
	}
}

func TestGenerateQuestionsHandlerValidation(t *testing.T) {
	handler := NewGenerateQuestionsHandler(&fakeGeneratorService{}, nil, FeatureGates{GeneratorEnabled: alwaysTrue})

	err := handler.Execute(context.Background(), GenerateQuestionsCommand{Days: []int{-1}})
	if err == nil {
		t.Fatal("expected validation error for negative day")
	}
	if !strings.Contains(err.Error(), "days") {
		t.Fatalf("expected days validation failure, got %v", err)
	}
}

func TestGenerateQuestionsHandlerDisabledGate(t *testing.T) {
	handler := NewGenerateQuestionsHandler(&fakeGeneratorService{}, nil, FeatureGates{})

	err := handler.Execute(context.Background(), GenerateQuestionsCommand{})
	if !errors.Is(err, generator.ErrServiceDisabled) {
		t.Fatalf("expected ErrServiceDisabled, got %v", err)
	}
}

func TestGenerateQuestionsHandlerPropagatesBuildError(t *testing.T) {
	buildErr := &generator.WriteError{Path: "day-8/practice/interview-questions.md", Err: errors.New("disk full")}
	callbackInvoked := false

	svc := &fakeGeneratorService{
		buildFunc: func(ctx context.Context, opts generator.BuildOptions) (*generator.BuildResult, error) {
			return &generator.BuildResult{DocumentsBuilt: 2}, buildErr
		},
	}

	handler := NewGenerateQuestionsHandler(svc, nil, FeatureGates{GeneratorEnabled: alwaysTrue})
	cmd := GenerateQuestionsCommand{
		ResultCallback: func(env ResultEnvelope) {
			callbackInvoked = true
			if env.Result == nil || env.Result.DocumentsBuilt != 2 {
				t.Fatal("expected the partial result to reach the callback")
			}
		},
	}

	err := handler.Execute(context.Background(), cmd)
	if !errors.Is(err, generator.ErrWriteFailed) {
		t.Fatalf("expected ErrWriteFailed, got %v", err)
	}
	if !callbackInvoked {
		t.Fatal("expected callback to run before the error propagated")
	}
}

func TestPreviewDayHandlerExecute(t *testing.T) {
	svc := &fakeGeneratorService{
		buildFunc: func(ctx context.Context, opts generator.BuildOptions) (*generator.BuildResult, error) {
			if !opts.DryRun {
				t.Fatal("expected preview to render via dry-run")
			}
			if len(opts.Days) != 1 || opts.Days[0] != 6 {
				t.Fatalf("expected day 6, got %v", opts.Days)
			}
			return &generator.BuildResult{
				DocumentsBuilt: 1,
				Documents: []generator.RenderedDocument{{
					Day:      6,
					Topic:    "Forms & Controlled Components",
					Markdown: "# Day 6\n",
				}},
			}, nil
		},
	}

	handler := NewPreviewDayHandler(svc, nil, nil, FeatureGates{GeneratorEnabled: alwaysTrue})

	var envelope PreviewEnvelope
	cmd := PreviewDayCommand{
		Day: 6,
		PreviewCallback: func(preview PreviewEnvelope) {
			envelope = preview
		},
	}

	if err := handler.Execute(context.Background(), cmd); err != nil {
		t.Fatalf("execute preview: %v", err)
	}
	if envelope.Document == nil || envelope.Document.Day != 6 {
		t.Fatalf("expected day 6 document, got %+v", envelope.Document)
	}
	if envelope.HTML != nil {
		t.Fatal("expected no HTML without render-html")
	}
}

type fakeMarkdownParser struct {
	html []byte
	err  error
}

func (f *fakeMarkdownParser) Parse([]byte) ([]byte, error) { return f.html, f.err }

func (f *fakeMarkdownParser) ParseWithOptions([]byte, interfaces.ParseOptions) ([]byte, error) {
	return f.html, f.err
}

func TestPreviewDayHandlerRendersHTML(t *testing.T) {
	svc := &fakeGeneratorService{
		buildFunc: func(ctx context.Context, opts generator.BuildOptions) (*generator.BuildResult, error) {
			return &generator.BuildResult{
				Documents: []generator.RenderedDocument{{Day: 6, Markdown: "# Day 6\n"}},
			}, nil
		},
	}

	parser := &fakeMarkdownParser{html: []byte("<h1>Day 6</h1>")}
	handler := NewPreviewDayHandler(svc, parser, nil, FeatureGates{GeneratorEnabled: alwaysTrue})

	var envelope PreviewEnvelope
	cmd := PreviewDayCommand{
		Day:        6,
		RenderHTML: true,
		PreviewCallback: func(preview PreviewEnvelope) {
			envelope = preview
		},
	}

	if err := handler.Execute(context.Background(), cmd); err != nil {
		t.Fatalf("execute preview: %v", err)
	}
	if string(envelope.HTML) != "<h1>Day 6</h1>" {
		t.Fatalf("unexpected HTML %q", envelope.HTML)
	}
}

func TestPreviewDayHandlerValidation(t *testing.T) {
	handler := NewPreviewDayHandler(&fakeGeneratorService{}, nil, nil, FeatureGates{GeneratorEnabled: alwaysTrue})

	if err := handler.Execute(context.Background(), PreviewDayCommand{Day: 0}); err == nil {
		t.Fatal("expected validation error for day 0")
	}
}

func TestCleanHandlerExecute(t *testing.T) {
	cleaned := false
	svc := &fakeGeneratorService{
		cleanFunc: func(ctx context.Context) error {
			cleaned = true
			return nil
		},
	}

	handler := NewCleanHandler(svc, nil, FeatureGates{GeneratorEnabled: alwaysTrue})
	if err := handler.Execute(context.Background(), CleanCommand{}); err != nil {
		t.Fatalf("execute clean: %v", err)
	}
	if !cleaned {
		t.Fatal("expected clean to be invoked")
	}
}

func TestCleanHandlerDisabledGate(t *testing.T) {
	handler := NewCleanHandler(&fakeGeneratorService{}, nil, FeatureGates{GeneratorEnabled: func() bool { return false }})

	if err := handler.Execute(context.Background(), CleanCommand{}); !errors.Is(err, generator.ErrServiceDisabled) {
		t.Fatalf("expected ErrServiceDisabled, got %v", err)
	}
}
