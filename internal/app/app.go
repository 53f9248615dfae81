package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/agbru/bigcalc/internal/bigint"
	"github.com/agbru/bigcalc/internal/cli"
	"github.com/agbru/bigcalc/internal/config"
	apperrors "github.com/agbru/bigcalc/internal/errors"
	"github.com/agbru/bigcalc/internal/logging"
	"github.com/agbru/bigcalc/internal/metrics"
	"github.com/agbru/bigcalc/internal/operations"
	"github.com/agbru/bigcalc/internal/ui"
)

// Application represents one bigcalc invocation.
type Application struct {
	Config    config.AppConfig
	Registry  *operations.Registry
	ErrWriter io.Writer
	// In is read by the REPL and by "-f -".
	In io.Reader
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithRegistry replaces the default operation registry.
func WithRegistry(r *operations.Registry) AppOption {
	return func(a *Application) { a.Registry = r }
}

// WithInput replaces os.Stdin as the interactive and "-f -" input.
func WithInput(in io.Reader) AppOption {
	return func(a *Application) { a.In = in }
}

// New creates an Application by parsing args, whose first element is the
// program name. It returns flag.ErrHelp when help was requested.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter, In: os.Stdin}
	for _, opt := range opts {
		opt(app)
	}
	if app.Registry == nil {
		app.Registry = operations.NewDefaultRegistry()
	}

	programName := "bigcalc"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}
	app.Config = cfg
	return app, nil
}

// Run executes the configured mode and returns the process exit code.
// SIGINT and SIGTERM cancel ctx for every evaluation in flight.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.Completion != "" {
		return a.runCompletion(out)
	}

	ui.InitTheme(a.Config.Theme, a.Config.NoColor)
	logger := a.newLogger()

	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	var recorder metrics.Recorder = metrics.NopRecorder{}
	if a.Config.MetricsAddr != "" {
		prom := metrics.NewPrometheus(metrics.NewMemoryCollector())
		stop, err := a.startMetricsServer(ctx, prom, logger)
		if err != nil {
			fmt.Fprintf(a.ErrWriter, "Error starting metrics server: %v\n", err)
			return apperrors.ExitErrorConfig
		}
		defer stop()
		recorder = prom
	}

	evalOpts := []operations.Option{
		operations.WithEnv(a.newEnv()),
		operations.WithTimeout(a.Config.Timeout),
		operations.WithCacheSize(a.Config.CacheSize),
		operations.WithRecorder(recorder),
		operations.WithLogger(logger),
	}
	if a.Config.Verbose {
		tp := newTracerProvider(logger)
		defer func() { _ = tp.Shutdown(context.Background()) }()
		evalOpts = append(evalOpts, operations.WithTracerProvider(tp))
	}
	evaluator := operations.NewEvaluator(a.Registry, evalOpts...)

	logger.Debug("configuration resolved", logging.String("settings", a.Config.String()))

	switch {
	case a.Config.Expr != "":
		return a.runBatch(ctx, evaluator, []string{a.Config.Expr}, out)
	case a.Config.File != "":
		return a.runFile(ctx, evaluator, out)
	default:
		return a.runREPL(ctx, evaluator, out)
	}
}

// newEnv builds the operation environment. An explicit seed, zero included,
// makes prime generation reproducible.
func (a *Application) newEnv() operations.Env {
	random := bigint.NewRandom()
	if a.Config.Seeded {
		random = bigint.NewSeededRandom(a.Config.Seed)
	}
	return operations.Env{
		Oracle:      bigint.NewOracle(bigint.WithRandom(bigint.Locked(random))),
		Certainty:   a.Config.Certainty,
		SearchBound: a.Config.SearchBound,
		Attempts:    a.Config.Attempts,
	}
}

// newLogger writes structured logs to ErrWriter. Verbose enables debug
// output; otherwise only warnings and errors are shown.
func (a *Application) newLogger() *logging.ZerologAdapter {
	level := zerolog.WarnLevel
	switch {
	case a.Config.Verbose:
		level = zerolog.DebugLevel
	case a.Config.Quiet:
		level = zerolog.ErrorLevel
	}
	return logging.NewLogger(a.ErrWriter, "bigcalc").WithLevel(level)
}

func (a *Application) startMetricsServer(ctx context.Context, prom *metrics.Prometheus, logger logging.Logger) (func(), error) {
	ln, err := net.Listen("tcp", a.Config.MetricsAddr)
	if err != nil {
		return nil, err
	}
	srv := newMetricsServer(prom.Handler(), logger)
	ctx, cancel := context.WithCancel(ctx)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := srv.Serve(ctx, ln); err != nil {
			logger.Error("metrics server failed", err)
		}
	}()
	return func() {
		cancel()
		wg.Wait()
	}, nil
}

func (a *Application) runCompletion(out io.Writer) int {
	ops := a.Registry.List()
	names := make([]string, len(ops))
	for i, op := range ops {
		names[i] = op.Name
	}
	if err := cli.GenerateCompletion(out, a.Config.Completion, names); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error generating completion: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	return apperrors.ExitSuccess
}

// IsHelpError reports whether err is the result of -h or --help.
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
