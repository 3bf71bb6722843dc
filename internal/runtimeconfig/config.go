package runtimeconfig

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

var ErrGeneratorOutputDirInvalid = errors.New("questions config: generator output directory must be relative")
var ErrGeneratorFilePatternRequired = errors.New("questions config: generator file pattern requires a {day} placeholder")
var ErrCurriculumDirRequired = errors.New("questions config: curriculum directory is required when overrides are enabled")
var ErrHistoryDSNRequired = errors.New("questions config: history DSN is required when history is enabled")
var ErrLoggingProviderRequired = errors.New("questions config: logging provider is required when logging feature is enabled")
var ErrLoggingProviderUnknown = errors.New("questions config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("questions config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("questions config: logging format is invalid")

// Config aggregates feature flags and adapter bindings for the questions
// module. Fields intentionally use simple types so host applications can
// extend them later.
type Config struct {
	Enabled    bool             `yaml:"enabled"`
	Generator  GeneratorConfig  `yaml:"generator"`
	Curriculum CurriculumConfig `yaml:"curriculum"`
	History    HistoryConfig    `yaml:"history"`
	Logging    LoggingConfig    `yaml:"logging"`
	Features   Features         `yaml:"features"`
}

// GeneratorConfig captures behaviour for the document generator.
type GeneratorConfig struct {
	OutputDir     string `yaml:"output_dir"`
	Days          []int  `yaml:"days"`
	CreateDirs    bool   `yaml:"create_dirs"`
	WriteManifest bool   `yaml:"write_manifest"`
	FilePattern   string `yaml:"file_pattern"`
}

// CurriculumConfig captures topic table overrides loaded from disk.
type CurriculumConfig struct {
	OverridesEnabled bool   `yaml:"overrides_enabled"`
	OverridesDir     string `yaml:"overrides_dir"`
	Pattern          string `yaml:"pattern"`
}

// HistoryConfig wires the optional build history ledger.
type HistoryConfig struct {
	Enabled bool   `yaml:"enabled"`
	DSN     string `yaml:"dsn"`
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string   `yaml:"provider"`
	Level     string   `yaml:"level"`
	Format    string   `yaml:"format"`
	AddSource bool     `yaml:"add_source"`
	Focus     []string `yaml:"focus"`
}

// Features toggles module functionality.
type Features struct {
	Generator bool `yaml:"generator"`
	History   bool `yaml:"history"`
	Logger    bool `yaml:"logger"`
}

// DefaultConfig returns opinionated defaults: generate the full built-in day
// range into the working directory, creating parent directories idempotently.
func DefaultConfig() Config {
	return Config{
		Enabled: true,
		Generator: GeneratorConfig{
			OutputDir:     "",
			CreateDirs:    true,
			WriteManifest: true,
			FilePattern:   "day-{day}/practice/interview-questions.md",
		},
		Curriculum: CurriculumConfig{
			Pattern: "*.md",
		},
		History: HistoryConfig{},
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
		},
		Features: Features{
			Generator: true,
		},
	}
}

// LoadFile reads a YAML config file and overlays it on DefaultConfig.
func LoadFile(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("questions config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("questions config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	if strings.HasPrefix(strings.TrimSpace(cfg.Generator.OutputDir), "/") {
		return ErrGeneratorOutputDirInvalid
	}
	if pattern := strings.TrimSpace(cfg.Generator.FilePattern); pattern != "" && !strings.Contains(pattern, "{day}") {
		return ErrGeneratorFilePatternRequired
	}
	if cfg.Curriculum.OverridesEnabled && strings.TrimSpace(cfg.Curriculum.OverridesDir) == "" {
		return ErrCurriculumDirRequired
	}
	if cfg.History.Enabled && strings.TrimSpace(cfg.History.DSN) == "" {
		return ErrHistoryDSNRequired
	}
	if cfg.Features.Logger {
		provider := normalizeProvider(cfg.Logging.Provider)
		if provider == "" {
			return ErrLoggingProviderRequired
		}
		if !isSupportedProvider(provider) {
			return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
		}
		if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
			return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
		}
		if provider == "gologger" {
			if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
				return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
			}
		}
	}
	return nil
}

func normalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "console", "gologger":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
