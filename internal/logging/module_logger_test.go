package logging

import (
	"context"
	"testing"

	"github.com/instantish/mack/pkg/interfaces"
)

type recordingLogger struct {
	fields   []map[string]any
	contexts []context.Context
}

func (r *recordingLogger) Trace(string, ...any) {}
func (r *recordingLogger) Debug(string, ...any) {}
func (r *recordingLogger) Info(string, ...any)  {}
func (r *recordingLogger) Warn(string, ...any)  {}
func (r *recordingLogger) Error(string, ...any) {}
func (r *recordingLogger) Fatal(string, ...any) {}

func (r *recordingLogger) WithFields(fields map[string]any) interfaces.Logger {
	copied := make(map[string]any, len(fields))
	for k, v := range fields {
		copied[k] = v
	}
	r.fields = append(r.fields, copied)
	return r
}

func (r *recordingLogger) WithContext(ctx context.Context) interfaces.Logger {
	r.contexts = append(r.contexts, ctx)
	return r
}

type stubProvider struct {
	requested []string
	logger    interfaces.Logger
}

func (s *stubProvider) GetLogger(name string) interfaces.Logger {
	s.requested = append(s.requested, name)
	return s.logger
}

func TestModuleLoggerFallsBackToNoOp(t *testing.T) {
	logger := ModuleLogger(nil, "mack.test")
	if _, ok := logger.(noopLogger); !ok {
		t.Fatalf("expected noopLogger fallback, got %T", logger)
	}
	// Ensure WithContext/WithFields do not panic.
	logger = logger.WithContext(context.Background())
	logger = WithFields(logger, map[string]any{"foo": "bar"})
	logger.Debug("noop")
}

func TestModuleLoggerUsesProviderAndAnnotatesFields(t *testing.T) {
	rec := &recordingLogger{}
	provider := &stubProvider{logger: rec}

	logger := ModuleLogger(provider, transformModule)

	if len(provider.requested) != 1 || provider.requested[0] != transformModule {
		t.Fatalf("expected module %s, got %v", transformModule, provider.requested)
	}
	if len(rec.fields) != 1 {
		t.Fatalf("expected module fields to be applied once, got %d", len(rec.fields))
	}
	if got, ok := rec.fields[0]["module"]; !ok || got != transformModule {
		t.Fatalf("expected module field %s, got %v", transformModule, rec.fields[0]["module"])
	}

	logger.Info("with provider")
}

func TestModuleLoggerDefaultsToRootModule(t *testing.T) {
	rec := &recordingLogger{}
	provider := &stubProvider{logger: rec}

	_ = ModuleLogger(provider, "")

	if len(provider.requested) != 1 || provider.requested[0] != rootModule {
		t.Fatalf("expected default module %s, got %v", rootModule, provider.requested)
	}
	if rec.fields[0]["module"] != rootModule {
		t.Fatalf("expected module field %s, got %v", rootModule, rec.fields[0]["module"])
	}
}

func TestTransformLoggerRequestsTransformModule(t *testing.T) {
	provider := &stubProvider{logger: &recordingLogger{}}
	_ = TransformLogger(provider)
	if len(provider.requested) == 0 || provider.requested[0] != transformModule {
		t.Fatalf("expected transform module request, got %v", provider.requested)
	}
}

func TestMarkdownLoggerRequestsMarkdownModule(t *testing.T) {
	provider := &stubProvider{logger: &recordingLogger{}}
	_ = MarkdownLogger(provider)
	if len(provider.requested) == 0 || provider.requested[0] != markdownModule {
		t.Fatalf("expected markdown module request, got %v", provider.requested)
	}
}

func TestWithConvertContextSkipsEmptyValues(t *testing.T) {
	rec := &recordingLogger{}

	_ = WithConvertContext(rec, "Paragraph", 2)
	if len(rec.fields) != 1 {
		t.Fatalf("expected fields applied once, got %d", len(rec.fields))
	}
	if rec.fields[0][fieldNodeKind] != "Paragraph" || rec.fields[0][fieldBlockCount] != 2 {
		t.Fatalf("unexpected fields %#v", rec.fields[0])
	}

	rec = &recordingLogger{}
	_ = WithConvertContext(rec, "  ", 0)
	if len(rec.fields) != 0 {
		t.Fatalf("expected empty values to be skipped, got %#v", rec.fields)
	}
}
