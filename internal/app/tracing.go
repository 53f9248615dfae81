package app

import (
	"context"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/agbru/bigcalc/internal/logging"
)

// logSpanProcessor writes every finished span to the debug log.
type logSpanProcessor struct {
	logger logging.Logger
}

var _ sdktrace.SpanProcessor = logSpanProcessor{}

func (logSpanProcessor) OnStart(context.Context, sdktrace.ReadWriteSpan) {}

func (p logSpanProcessor) OnEnd(s sdktrace.ReadOnlySpan) {
	fields := []logging.Field{
		logging.String("span", s.Name()),
		logging.Duration("duration", s.EndTime().Sub(s.StartTime())),
		logging.String("status", s.Status().Code.String()),
	}
	for _, kv := range s.Attributes() {
		fields = append(fields, logging.String(string(kv.Key), kv.Value.Emit()))
	}
	p.logger.Debug("span finished", fields...)
}

func (logSpanProcessor) Shutdown(context.Context) error { return nil }

func (logSpanProcessor) ForceFlush(context.Context) error { return nil }

// newTracerProvider returns a provider that samples every span and logs it
// on completion.
func newTracerProvider(logger logging.Logger) *sdktrace.TracerProvider {
	return sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithSpanProcessor(logSpanProcessor{logger: logger}),
	)
}
