package generator

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/goliatone/go-questions/internal/curriculum"
	"github.com/goliatone/go-questions/internal/history"
	"github.com/goliatone/go-questions/internal/logging"
	"github.com/goliatone/go-questions/pkg/interfaces"
)

// Service describes the question document generator contract.
type Service interface {
	Build(ctx context.Context, opts BuildOptions) (*BuildResult, error)
	BuildDay(ctx context.Context, day int) (*RenderedDocument, error)
	Clean(ctx context.Context) error
}

// Config captures runtime behaviour toggles for the generator.
type Config struct {
	// OutputDir prefixes every destination path. Empty means paths resolve
	// against the store root, i.e. the working directory for the OS store.
	OutputDir string
	// Days overrides the curriculum day range for every build.
	Days []int
	// CreateDirs makes the generator create missing `day-N/practice`
	// parents idempotently before writing. When false a missing parent
	// surfaces as a WriteError and aborts the run.
	CreateDirs bool
	// WriteManifest persists a JSON manifest describing the last build.
	WriteManifest bool
	// FilePattern is the per-day destination layout; see DefaultFilePattern.
	FilePattern string
}

// BuildOptions narrows the scope of a generator run.
type BuildOptions struct {
	Days   []int
	DryRun bool
}

// BuildResult reports aggregated build metadata.
type BuildResult struct {
	DocumentsBuilt int
	Documents      []RenderedDocument
	Diagnostics    []RenderDiagnostic
	Duration       time.Duration
	DryRun         bool
}

// Hooks lets hosts observe generator lifecycle events. A non-nil error from
// any hook aborts the run, matching the abort-on-first-error write semantics.
type Hooks struct {
	BeforeBuild   func(context.Context, BuildOptions) error
	AfterDocument func(context.Context, RenderedDocument) error
	AfterBuild    func(context.Context, BuildOptions, *BuildResult) error
	BeforeClean   func(context.Context, string) error
	AfterClean    func(context.Context, string) error
}

// Dependencies lists the services required by the generator.
type Dependencies struct {
	Curriculum curriculum.Service
	Renderer   interfaces.TemplateRenderer
	Storage    interfaces.FileStore
	History    history.Recorder
	Hooks      Hooks
	Logger     interfaces.Logger
}

// NewService wires a generator implementation with the provided configuration
// and dependencies.
func NewService(cfg Config, deps Dependencies) Service {
	logger := deps.Logger
	if logger == nil {
		logger = logging.NoOp()
	}
	return &service{
		cfg:    cfg,
		deps:   deps,
		logger: logger,
		now:    time.Now,
	}
}

// NewDisabledService returns a Service that fails all operations with
// ErrServiceDisabled.
func NewDisabledService() Service {
	return disabledService{}
}

type service struct {
	cfg    Config
	deps   Dependencies
	logger interfaces.Logger
	now    func() time.Time
}

type disabledService struct{}

func (s *service) Build(ctx context.Context, opts BuildOptions) (*BuildResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.deps.Renderer == nil {
		return nil, errRendererRequired
	}
	if s.deps.Curriculum == nil {
		return nil, errCurriculumRequired
	}
	if !opts.DryRun && s.deps.Storage == nil {
		return nil, errStorageRequired
	}

	start := s.now()
	days := s.resolveDays(opts)

	if err := s.invokeBeforeBuild(ctx, opts); err != nil {
		return nil, err
	}

	result := &BuildResult{
		Documents:   make([]RenderedDocument, 0, len(days)),
		Diagnostics: make([]RenderDiagnostic, 0, len(days)),
		DryRun:      opts.DryRun,
	}

	writer := newArtifactWriter(s.deps.Storage)
	manifest := s.loadManifest(ctx, writer, opts)
	dirCache := map[string]struct{}{}

	// Days are processed strictly in ascending order, one at a time. The
	// first lookup or write failure aborts the remaining days; documents
	// already written stay on disk.
	for _, day := range days {
		select {
		case <-ctx.Done():
			result.Diagnostics = append(result.Diagnostics, RenderDiagnostic{Day: day, Err: ctx.Err()})
			result.Duration = s.now().Sub(start)
			return result, ctx.Err()
		default:
		}

		outcome := s.renderDocument(day)
		result.Diagnostics = append(result.Diagnostics, outcome.diagnostic)
		if outcome.err != nil {
			result.Duration = s.now().Sub(start)
			return result, outcome.err
		}

		doc := outcome.doc
		if !opts.DryRun {
			if err := s.persistDocument(ctx, writer, dirCache, doc); err != nil {
				result.Duration = s.now().Sub(start)
				return result, err
			}
			if manifest != nil {
				manifest.setDocument(manifestDocument{
					Day:        doc.Day,
					Topic:      doc.Topic,
					Slug:       doc.Slug,
					Output:     doc.Output,
					Checksum:   doc.Checksum,
					RenderedAt: s.now().UTC(),
				})
			}
		}

		result.DocumentsBuilt++
		result.Documents = append(result.Documents, doc)
		logging.WithDocumentContext(s.logger, doc.Day, doc.Topic, doc.Output).
			Debug("generator.document.rendered", "dry_run", opts.DryRun)

		if s.deps.Hooks.AfterDocument != nil {
			if err := s.deps.Hooks.AfterDocument(ctx, doc); err != nil {
				result.Duration = s.now().Sub(start)
				return result, err
			}
		}
	}

	if manifest != nil {
		manifest.GeneratedAt = s.now().UTC()
		if err := s.persistManifest(ctx, writer, manifest); err != nil {
			result.Duration = s.now().Sub(start)
			return result, err
		}
	}

	result.Duration = s.now().Sub(start)
	s.recordHistory(ctx, start, result)

	if s.deps.Hooks.AfterBuild != nil {
		if err := s.deps.Hooks.AfterBuild(ctx, opts, result); err != nil {
			return result, err
		}
	}
	return result, nil
}

func (s *service) BuildDay(ctx context.Context, day int) (*RenderedDocument, error) {
	result, err := s.Build(ctx, BuildOptions{Days: []int{day}})
	if err != nil {
		return nil, err
	}
	if len(result.Documents) == 0 {
		return nil, &curriculum.DayNotFoundError{Day: day}
	}
	doc := result.Documents[0]
	return &doc, nil
}

func (s *service) Clean(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.deps.Storage == nil {
		return errStorageRequired
	}

	base := strings.Trim(strings.TrimSpace(s.cfg.OutputDir), "/")
	if s.deps.Hooks.BeforeClean != nil {
		if err := s.deps.Hooks.BeforeClean(ctx, base); err != nil {
			return err
		}
	}

	writer := newArtifactWriter(s.deps.Storage)
	targets := s.cleanTargets(ctx, writer)
	for _, target := range targets {
		if err := writer.Remove(ctx, target); err != nil {
			return fmt.Errorf("generator: remove %s: %w", target, err)
		}
		s.logger.Debug("generator.clean.removed", "path", target)
	}

	if s.deps.Hooks.AfterClean != nil {
		if err := s.deps.Hooks.AfterClean(ctx, base); err != nil {
			return err
		}
	}
	return nil
}

func (s *service) resolveDays(opts BuildOptions) []int {
	days := opts.Days
	if len(days) == 0 {
		days = s.cfg.Days
	}
	if len(days) == 0 && s.deps.Curriculum != nil {
		days = s.deps.Curriculum.Days()
	}

	seen := make(map[int]struct{}, len(days))
	out := make([]int, 0, len(days))
	for _, day := range days {
		if _, ok := seen[day]; ok {
			continue
		}
		seen[day] = struct{}{}
		out = append(out, day)
	}
	sort.Ints(out)
	return out
}

func (s *service) renderDocument(day int) renderOutcome {
	outcome := renderOutcome{diagnostic: RenderDiagnostic{Day: day}}

	topic, err := s.deps.Curriculum.Topic(day)
	if err != nil {
		outcome.err = err
		outcome.diagnostic.Err = err
		return outcome
	}
	outcome.diagnostic.Topic = topic.Title

	rel := documentPath(s.cfg.FilePattern, day)
	full := joinOutputPath(strings.Trim(strings.TrimSpace(s.cfg.OutputDir), "/"), rel)
	outcome.diagnostic.Output = full

	templateCtx := DocumentContext{
		Day:       day,
		Topic:     topic.Title,
		Companies: s.deps.Curriculum.Companies(),
	}

	start := s.now()
	rendered, err := s.deps.Renderer.RenderTemplate(DocumentTemplateName, templateCtx)
	duration := s.now().Sub(start)
	outcome.diagnostic.Duration = duration
	if err != nil {
		wrapped := fmt.Errorf("generator: render document for day %d (%s): %w", day, topic.Title, err)
		outcome.err = wrapped
		outcome.diagnostic.Err = wrapped
		return outcome
	}

	outcome.doc = RenderedDocument{
		Day:      day,
		Topic:    topic.Title,
		Slug:     topic.Slug,
		Output:   full,
		Markdown: rendered,
		Checksum: computeHashFromString(rendered),
		Duration: duration,
	}
	return outcome
}

func (s *service) persistDocument(ctx context.Context, writer artifactWriter, dirCache map[string]struct{}, doc RenderedDocument) error {
	if s.cfg.CreateDirs {
		if err := ensureDir(ctx, writer, dirCache, path.Dir(doc.Output)); err != nil {
			return &WriteError{Path: doc.Output, Err: err}
		}
	}
	req := writeFileRequest{
		Path:        doc.Output,
		Content:     strings.NewReader(doc.Markdown),
		Size:        int64(len(doc.Markdown)),
		Category:    categoryDocument,
		ContentType: "text/markdown; charset=utf-8",
		Checksum:    doc.Checksum,
	}
	if err := writer.WriteFile(ctx, req); err != nil {
		return &WriteError{Path: doc.Output, Err: err}
	}
	return nil
}

func (s *service) invokeBeforeBuild(ctx context.Context, opts BuildOptions) error {
	if s.deps.Hooks.BeforeBuild == nil {
		return nil
	}
	return s.deps.Hooks.BeforeBuild(ctx, opts)
}

func (s *service) manifestTargetPath() string {
	base := strings.Trim(strings.TrimSpace(s.cfg.OutputDir), "/")
	return joinOutputPath(base, manifestFileName)
}

func (s *service) loadManifest(ctx context.Context, writer artifactWriter, opts BuildOptions) *buildManifest {
	if !s.cfg.WriteManifest || opts.DryRun {
		return nil
	}
	data, err := writer.ReadFile(ctx, s.manifestTargetPath())
	if err != nil || len(data) == 0 {
		return newBuildManifest()
	}
	manifest, err := parseManifest(data)
	if err != nil {
		s.logger.Warn("generator.manifest.reset", "error", err)
		return newBuildManifest()
	}
	return manifest
}

func (s *service) persistManifest(ctx context.Context, writer artifactWriter, manifest *buildManifest) error {
	data, err := manifest.marshal()
	if err != nil {
		return err
	}
	if len(data) == 0 {
		return nil
	}
	target := s.manifestTargetPath()
	if s.cfg.CreateDirs {
		if err := ensureDir(ctx, writer, map[string]struct{}{}, path.Dir(target)); err != nil {
			return &WriteError{Path: target, Err: err}
		}
	}
	req := writeFileRequest{
		Path:        target,
		Content:     strings.NewReader(string(data)),
		Size:        int64(len(data)),
		Category:    categoryManifest,
		ContentType: "application/json",
		Checksum:    computeHash(data),
	}
	if err := writer.WriteFile(ctx, req); err != nil {
		return &WriteError{Path: target, Err: err}
	}
	return nil
}

func (s *service) cleanTargets(ctx context.Context, writer artifactWriter) []string {
	manifestPath := s.manifestTargetPath()
	if data, err := writer.ReadFile(ctx, manifestPath); err == nil && len(data) > 0 {
		if manifest, err := parseManifest(data); err == nil {
			return append(manifest.outputs(), manifestPath)
		}
	}

	base := strings.Trim(strings.TrimSpace(s.cfg.OutputDir), "/")
	days := s.resolveDays(BuildOptions{})
	targets := make([]string, 0, len(days)+1)
	for _, day := range days {
		targets = append(targets, joinOutputPath(base, documentPath(s.cfg.FilePattern, day)))
	}
	return append(targets, manifestPath)
}

func (s *service) recordHistory(ctx context.Context, start time.Time, result *BuildResult) {
	if s.deps.History == nil {
		return
	}
	record := history.BuildRecord{
		StartedAt: start.UTC(),
		Duration:  result.Duration,
		Documents: result.DocumentsBuilt,
		DryRun:    result.DryRun,
	}
	if err := s.deps.History.Record(ctx, record); err != nil {
		// History is an audit trail, never a reason to fail a build.
		s.logger.Warn("generator.history.record_failed", "error", err)
	}
}

func computeHash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

func computeHashFromString(content string) string {
	return computeHash([]byte(content))
}

func (disabledService) Build(context.Context, BuildOptions) (*BuildResult, error) {
	return nil, ErrServiceDisabled
}

func (disabledService) BuildDay(context.Context, int) (*RenderedDocument, error) {
	return nil, ErrServiceDisabled
}

func (disabledService) Clean(context.Context) error {
	return ErrServiceDisabled
}
