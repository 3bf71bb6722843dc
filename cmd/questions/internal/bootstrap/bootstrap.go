package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	questions "github.com/goliatone/go-questions"
	"github.com/goliatone/go-questions/internal/commands"
	"github.com/goliatone/go-questions/internal/di"
	"github.com/goliatone/go-questions/internal/generator"
	"github.com/goliatone/go-questions/internal/history"
	"github.com/goliatone/go-questions/pkg/interfaces"
	_ "github.com/mattn/go-sqlite3"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
)

// Options captures configuration for questions CLI bootstraps.
type Options struct {
	// Command names the CLI using the module; it scopes the handler logger.
	Command        string
	ConfigPath     string
	OutputDir      string
	OverridesDir   string
	FilePattern    string
	HistoryDSN     string
	LogProvider    string
	LogLevel       string
	CreateDirs     *bool
	WriteManifest  *bool
	LoggerProvider interfaces.LoggerProvider
	Hooks          generator.Hooks
}

// Module wraps the questions module and the configured generator service/logger.
type Module struct {
	Module    *questions.Module
	Generator questions.GeneratorService
	Markdown  interfaces.MarkdownParser
	Logger    interfaces.Logger

	db *bun.DB
}

// BuildModule constructs a questions module configured for CLI operations.
func BuildModule(opts Options) (*Module, error) {
	cfg := questions.DefaultConfig()
	if path := strings.TrimSpace(opts.ConfigPath); path != "" {
		loaded, err := questions.LoadConfigFile(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if dir := strings.TrimSpace(opts.OutputDir); dir != "" {
		cfg.Generator.OutputDir = dir
	}
	if pattern := strings.TrimSpace(opts.FilePattern); pattern != "" {
		cfg.Generator.FilePattern = pattern
	}
	if opts.CreateDirs != nil {
		cfg.Generator.CreateDirs = *opts.CreateDirs
	}
	if opts.WriteManifest != nil {
		cfg.Generator.WriteManifest = *opts.WriteManifest
	}
	if dir := strings.TrimSpace(opts.OverridesDir); dir != "" {
		cfg.Curriculum.OverridesEnabled = true
		cfg.Curriculum.OverridesDir = dir
	}
	if provider := strings.TrimSpace(opts.LogProvider); provider != "" {
		cfg.Features.Logger = true
		cfg.Logging.Provider = provider
	}
	if level := strings.TrimSpace(opts.LogLevel); level != "" {
		cfg.Logging.Level = level
	}
	if dsn := strings.TrimSpace(opts.HistoryDSN); dsn != "" {
		cfg.History.Enabled = true
		cfg.History.DSN = dsn
		cfg.Features.History = true
	}

	diOpts := []di.Option{
		di.WithGeneratorHooks(opts.Hooks),
	}
	if opts.LoggerProvider != nil {
		diOpts = append(diOpts, di.WithLoggerProvider(opts.LoggerProvider))
	}

	var db *bun.DB
	if cfg.History.Enabled && cfg.Features.History {
		sqldb, err := sql.Open("sqlite3", cfg.History.DSN)
		if err != nil {
			return nil, fmt.Errorf("open history database: %w", err)
		}
		db = bun.NewDB(sqldb, sqlitedialect.New())
		if err := history.EnsureSchema(context.Background(), db); err != nil {
			db.Close()
			return nil, fmt.Errorf("prepare history schema: %w", err)
		}
		diOpts = append(diOpts, di.WithBunDB(db))
	}

	module, err := questions.New(cfg, diOpts...)
	if err != nil {
		if db != nil {
			db.Close()
		}
		return nil, fmt.Errorf("initialise questions module: %w", err)
	}

	logger := commands.CommandLogger(module.LoggerProvider(), opts.Command)

	return &Module{
		Module:    module,
		Generator: module.Generator(),
		Markdown:  module.Markdown(),
		Logger:    logger,
		db:        db,
	}, nil
}

// Close releases resources held by the bootstrap, such as the history database handle.
func (m *Module) Close() error {
	if m == nil || m.db == nil {
		return nil
	}
	return m.db.Close()
}

// SplitDays parses a comma separated day list into a sorted slice of integers.
func SplitDays(value string) ([]int, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	parts := strings.Split(value, ",")
	days := make([]int, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		day, err := strconv.Atoi(trimmed)
		if err != nil {
			return nil, fmt.Errorf("invalid day %q: %w", trimmed, err)
		}
		days = append(days, day)
	}
	return days, nil
}
