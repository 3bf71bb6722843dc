package logging

import (
	"context"
	"strings"

	"github.com/goliatone/go-questions/pkg/interfaces"
)

const (
	rootModule       = "questions"
	curriculumModule = "questions.curriculum"
	generatorModule  = "questions.generator"
	historyModule    = "questions.history"
)

const (
	fieldDocumentDay    = "day"
	fieldDocumentTopic  = "topic"
	fieldDocumentOutput = "output"
)

// ModuleLogger returns a module-scoped logger, defaulting to a no-op
// implementation when no provider is supplied. The returned logger attaches
// the module identifier as structured context so downstream entries can be
// filtered predictably.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	if fieldsLogger, ok := logger.(interfaces.FieldsLogger); ok {
		return fieldsLogger.WithFields(map[string]any{
			"module": module,
		})
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// CurriculumLogger returns the logger namespace reserved for curriculum services.
func CurriculumLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, curriculumModule)
}

// GeneratorLogger returns the logger namespace reserved for the document generator.
func GeneratorLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, generatorModule)
}

// HistoryLogger returns the logger namespace reserved for the build history recorder.
func HistoryLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, historyModule)
}

// WithDocumentContext enriches the provided logger with common document fields
// such as day number, topic title, and output path. Empty values are ignored.
func WithDocumentContext(logger interfaces.Logger, day int, topic, output string) interfaces.Logger {
	fields := map[string]any{}
	if day > 0 {
		fields[fieldDocumentDay] = day
	}
	if trimmed := strings.TrimSpace(topic); trimmed != "" {
		fields[fieldDocumentTopic] = trimmed
	}
	if trimmed := strings.TrimSpace(output); trimmed != "" {
		fields[fieldDocumentOutput] = trimmed
	}
	return WithFields(logger, fields)
}

// NoOp returns a logger that drops every log entry. It satisfies the Logger
// contract so services can safely operate when logging is disabled.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
