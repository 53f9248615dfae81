package operations

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/agbru/bigcalc/internal/bigint"
	apperrors "github.com/agbru/bigcalc/internal/errors"
	"github.com/agbru/bigcalc/internal/logging"
	"github.com/agbru/bigcalc/internal/metrics"
)

// TracerName is the instrumentation scope of evaluator spans.
const TracerName = "github.com/agbru/bigcalc/internal/operations"

// unknownOp labels metrics for lines that did not resolve to an operation.
const unknownOp = "unknown"

// Result is the outcome of evaluating one expression.
type Result struct {
	// Expr is the trimmed input line.
	Expr string
	// Op is the canonical operation name, empty if the line did not resolve.
	Op string
	// Values holds the numeric results. It is nil when Err is set.
	Values []bigint.Int
	// Verdict holds a textual result, for example "probably prime".
	Verdict string
	// Duration is the wall time spent in Evaluate.
	Duration time.Duration
	// Cached reports that the output came from the memo cache.
	Cached bool
	// Err is a ValidationError, TimeoutError or EvaluationError.
	Err error
}

// Evaluator resolves expression lines against a Registry and runs them.
// It is safe for concurrent use when its Env.Oracle is.
type Evaluator struct {
	registry *Registry
	env      Env
	limit    time.Duration
	cache    *memoCache
	recorder metrics.Recorder
	logger   logging.Logger
	tracer   trace.Tracer
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithEnv sets the operation environment.
func WithEnv(env Env) Option { return func(e *Evaluator) { e.env = env } }

// WithTimeout bounds each evaluation. Zero leaves only the caller's context.
func WithTimeout(d time.Duration) Option { return func(e *Evaluator) { e.limit = d } }

// WithCacheSize sets the memo cache capacity. Zero disables memoization.
func WithCacheSize(n int) Option { return func(e *Evaluator) { e.cache = newMemoCache(n) } }

// WithRecorder sets the metrics recorder.
func WithRecorder(r metrics.Recorder) Option { return func(e *Evaluator) { e.recorder = r } }

// WithLogger sets the logger.
func WithLogger(l logging.Logger) Option { return func(e *Evaluator) { e.logger = l } }

// WithTracerProvider sets the provider evaluator spans are created from.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(e *Evaluator) { e.tracer = tp.Tracer(TracerName) }
}

// DefaultEnv returns an Env with a locked, OS-seeded oracle.
func DefaultEnv() Env {
	return Env{
		Oracle:      bigint.NewOracle(bigint.WithRandom(bigint.Locked(bigint.NewRandom()))),
		Certainty:   20,
		SearchBound: 100_000,
		Attempts:    10_000,
	}
}

// NewEvaluator returns an Evaluator over reg. A nil reg uses
// NewDefaultRegistry.
func NewEvaluator(reg *Registry, opts ...Option) *Evaluator {
	if reg == nil {
		reg = NewDefaultRegistry()
	}
	e := &Evaluator{
		registry: reg,
		env:      DefaultEnv(),
		recorder: metrics.NopRecorder{},
		logger:   logging.Nop(),
		tracer:   otel.Tracer(TracerName),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.env.Oracle == nil {
		e.env.Oracle = DefaultEnv().Oracle
	}
	return e
}

// Registry returns the registry the evaluator resolves against.
func (e *Evaluator) Registry() *Registry { return e.registry }

// Evaluate tokenizes line as "op arg...", runs the operation and returns its
// result. Errors are reported in Result.Err, never panicked.
func (e *Evaluator) Evaluate(ctx context.Context, line string) (res Result) {
	start := time.Now()
	res.Expr = strings.TrimSpace(line)

	ctx, span := e.tracer.Start(ctx, "Evaluate",
		trace.WithAttributes(attribute.String("bigcalc.expr", res.Expr)))
	defer func() {
		res.Duration = time.Since(start)
		label := res.Op
		if label == "" {
			label = unknownOp
		}
		span.SetAttributes(
			attribute.String("bigcalc.op", label),
			attribute.Bool("bigcalc.cached", res.Cached),
		)
		if res.Err != nil {
			span.RecordError(res.Err)
			span.SetStatus(codes.Error, res.Err.Error())
		} else {
			span.SetStatus(codes.Ok, "")
		}
		span.End()

		e.recorder.ObserveEvaluation(label, res.Duration, res.Err)
		if res.Err != nil {
			e.logger.Debug("evaluation failed",
				logging.String("expr", res.Expr),
				logging.Duration("duration", res.Duration),
				logging.Err(res.Err))
			return
		}
		e.logger.Debug("evaluation completed",
			logging.String("op", res.Op),
			logging.Duration("duration", res.Duration),
			logging.Bool("cached", res.Cached))
	}()

	fields := strings.Fields(res.Expr)
	if len(fields) == 0 {
		res.Err = apperrors.ValidationError{Field: "expression", Message: "empty expression"}
		return res
	}
	op, ok := e.registry.Get(strings.ToLower(fields[0]))
	if !ok {
		res.Err = apperrors.ValidationError{Field: fields[0], Message: "unknown operation"}
		return res
	}
	res.Op = op.Name
	args := fields[1:]
	if err := op.CheckArity(len(args)); err != nil {
		res.Err = err
		return res
	}

	key := cacheKey(op, args)
	if op.Pure && e.cache != nil {
		out, hit := e.cache.get(key)
		e.recorder.ObserveCache(op.Name, hit)
		if hit {
			res.Values, res.Verdict, res.Cached = out.Values, out.Verdict, true
			return res
		}
	}

	out, err := e.run(ctx, op, args, start)
	if err != nil {
		res.Err = err
		return res
	}
	if op.Pure && e.cache != nil {
		e.cache.put(key, out)
	}
	res.Values, res.Verdict = out.Values, out.Verdict
	return res
}

type outcome struct {
	out Output
	err error
}

// run executes op on its own goroutine so the caller regains control when
// ctx ends. The engine is not interruptible, so an abandoned goroutine runs
// to completion and its result is discarded.
func (e *Evaluator) run(ctx context.Context, op Operation, args []string, start time.Time) (Output, error) {
	if e.limit > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.limit)
		defer cancel()
	}
	if err := ctx.Err(); err != nil {
		return Output{}, e.contextError(op, err, start)
	}

	done := make(chan outcome, 1)
	go func() {
		out, err := op.Eval(e.env, args)
		done <- outcome{out, err}
	}()

	select {
	case o := <-done:
		if o.err == nil {
			return o.out, nil
		}
		var validationErr apperrors.ValidationError
		if errors.As(o.err, &validationErr) {
			return Output{}, o.err
		}
		return Output{}, apperrors.EvaluationError{Op: op.Name, Cause: o.err}
	case <-ctx.Done():
		return Output{}, e.contextError(op, ctx.Err(), start)
	}
}

func (e *Evaluator) contextError(op Operation, err error, start time.Time) error {
	if errors.Is(err, context.DeadlineExceeded) {
		limit := e.limit
		if limit <= 0 {
			limit = time.Since(start).Round(time.Millisecond)
		}
		return apperrors.TimeoutError{Operation: op.Name, Limit: limit}
	}
	return apperrors.EvaluationError{Op: op.Name, Cause: err}
}

// cacheKey spells numeric arguments in canonical decimal so that "add 0x10 1"
// and "add 16 1" share an entry. Unparseable tokens are kept as typed; they
// fail validation before anything is stored.
func cacheKey(op Operation, args []string) string {
	var sb strings.Builder
	sb.WriteString(op.Name)
	for i, a := range args {
		sb.WriteByte(' ')
		if i >= op.VerbatimArgs {
			if v, err := bigint.Parse(a); err == nil {
				sb.WriteString(v.String())
				continue
			}
		}
		sb.WriteString(a)
	}
	return sb.String()
}
