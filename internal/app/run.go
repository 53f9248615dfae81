package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/agbru/bigcalc/internal/cli"
	apperrors "github.com/agbru/bigcalc/internal/errors"
	"github.com/agbru/bigcalc/internal/operations"
	"github.com/agbru/bigcalc/internal/orchestration"
)

// maxLineBytes bounds one expression line of a batch file.
const maxLineBytes = 64 << 20

// runFile evaluates every expression of the -f file, or of In for "-".
func (a *Application) runFile(ctx context.Context, evaluator *operations.Evaluator, out io.Writer) int {
	in := a.In
	if a.Config.File != "-" {
		f, err := os.Open(a.Config.File)
		if err != nil {
			fmt.Fprintf(a.ErrWriter, "Error opening batch file: %v\n", err)
			return apperrors.ExitErrorConfig
		}
		defer f.Close()
		in = f
	}

	exprs, err := ReadExpressions(in)
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Error reading batch file: %v\n", err)
		return apperrors.ExitErrorGeneric
	}
	if len(exprs) == 0 {
		fmt.Fprintln(a.ErrWriter, "No expressions to evaluate.")
		return apperrors.ExitSuccess
	}
	if !a.Config.Quiet {
		cli.PrintExecutionConfig(a.Config, len(exprs), out)
	}
	return a.runBatch(ctx, evaluator, exprs, out)
}

// runBatch evaluates exprs, presents the results and writes the output file.
// A single expression gets no progress display and no summary.
func (a *Application) runBatch(ctx context.Context, evaluator *operations.Evaluator, exprs []string, out io.Writer) int {
	var reporter orchestration.ProgressReporter = orchestration.NullProgressReporter{}
	if !a.Config.Quiet && len(exprs) > 1 {
		reporter = cli.CLIProgressReporter{}
	}
	results := orchestration.ExecuteBatch(ctx, evaluator, exprs, a.Config.Workers, reporter, out)

	presenter := cli.CLIResultPresenter{Radix: a.Config.Radix, Full: a.Config.Full, Quiet: a.Config.Quiet}
	var code int
	if a.Config.Quiet {
		code = apperrors.ExitSuccess
		for _, res := range results {
			presenter.PresentResult(res, out)
			if res.Err != nil && code == apperrors.ExitSuccess {
				code = apperrors.ExitCodeFor(res.Err)
			}
		}
	} else {
		code = orchestration.AnalyzeResults(results, presenter, out)
	}

	if a.Config.OutputFile != "" {
		if err := cli.WriteResultsToFile(a.Config.OutputFile, results, a.Config.Radix); err != nil {
			fmt.Fprintf(a.ErrWriter, "Error saving results: %v\n", err)
			return apperrors.ExitErrorGeneric
		}
		if !a.Config.Quiet {
			cli.DisplaySavedNotice(out, a.Config.OutputFile)
		}
	}
	return code
}

func (a *Application) runREPL(ctx context.Context, evaluator *operations.Evaluator, out io.Writer) int {
	repl := cli.NewREPL(evaluator, cli.REPLConfig{
		Radix:   a.Config.Radix,
		Full:    a.Config.Full,
		Timeout: a.Config.Timeout,
		Version: Version,
	})
	repl.SetInput(a.In)
	repl.SetOutput(out)
	repl.Start(ctx)
	if ctx.Err() != nil {
		return apperrors.ExitErrorCanceled
	}
	return apperrors.ExitSuccess
}

// ReadExpressions returns the non-blank lines of r that do not start with
// '#', trimmed.
func ReadExpressions(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	var exprs []string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		exprs = append(exprs, line)
	}
	return exprs, scanner.Err()
}
