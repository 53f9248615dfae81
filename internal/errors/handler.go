package apperrors

import (
	"fmt"
	"io"
	"time"
)

// ColorProvider supplies terminal color codes for error reports.
type ColorProvider interface {
	Yellow() string
	Red() string
	Reset() string
}

// DefaultColorProvider provides no color codes.
type DefaultColorProvider struct{}

func (DefaultColorProvider) Yellow() string { return "" }
func (DefaultColorProvider) Red() string    { return "" }
func (DefaultColorProvider) Reset() string  { return "" }

// HandleEvaluationError prints a status line for err and returns the exit
// code ExitCodeFor assigns to it. colors may be nil.
func HandleEvaluationError(err error, duration time.Duration, out io.Writer, colors ColorProvider) int {
	if err == nil {
		return ExitSuccess
	}
	if colors == nil {
		colors = DefaultColorProvider{}
	}

	msgSuffix := ""
	if duration > 0 {
		msgSuffix = fmt.Sprintf(" after %s%s%s", colors.Yellow(), duration, colors.Reset())
	}

	code := ExitCodeFor(err)
	switch code {
	case ExitErrorTimeout:
		fmt.Fprintf(out, "Status: Failure (Timeout). The execution limit was reached%s.\n", msgSuffix)
	case ExitErrorCanceled:
		fmt.Fprintf(out, "%sStatus: Canceled%s.%s\n", colors.Yellow(), msgSuffix, colors.Reset())
	case ExitErrorConfig:
		fmt.Fprintf(out, "%sStatus: Configuration error:%s %v\n", colors.Red(), colors.Reset(), err)
	case ExitErrorEvaluation:
		fmt.Fprintf(out, "%sStatus: Failure%s%s. %v\n", colors.Red(), colors.Reset(), msgSuffix, err)
	default:
		fmt.Fprintf(out, "Status: Failure. An unexpected error occurred: %v\n", err)
	}
	return code
}
