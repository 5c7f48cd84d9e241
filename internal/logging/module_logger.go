package logging

import (
	"context"
	"strings"

	"github.com/instantish/mack/pkg/interfaces"
)

const (
	rootModule      = "mack"
	transformModule = "mack.transform"
	markdownModule  = "mack.markdown"
)

const (
	fieldNodeKind   = "node_kind"
	fieldBlockCount = "blocks"
)

// ModuleLogger returns a module-scoped logger, defaulting to a no-op
// implementation when no provider is supplied. The module identifier is
// attached as structured context so entries can be filtered predictably.
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

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// TransformLogger returns the logger namespace reserved for the tree-to-blocks
// transformation.
func TransformLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, transformModule)
}

// MarkdownLogger returns the logger namespace reserved for the parsing
// front-end.
func MarkdownLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, markdownModule)
}

// WithConvertContext enriches the provided logger with conversion fields such
// as the dispatched node kind and running block count. Empty values are
// ignored.
func WithConvertContext(logger interfaces.Logger, nodeKind string, blocks int) interfaces.Logger {
	fields := map[string]any{}
	if trimmed := strings.TrimSpace(nodeKind); trimmed != "" {
		fields[fieldNodeKind] = trimmed
	}
	if blocks > 0 {
		fields[fieldBlockCount] = blocks
	}
	return WithFields(logger, fields)
}

// NoOp returns a logger that drops every log entry. It satisfies the Logger
// contract so the converter can operate when logging is disabled.
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
