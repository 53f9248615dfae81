package cli

import (
	"fmt"
	"io"
	"sort"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/agbru/bigcalc/internal/bigint"
	apperrors "github.com/agbru/bigcalc/internal/errors"
	"github.com/agbru/bigcalc/internal/format"
	"github.com/agbru/bigcalc/internal/operations"
	"github.com/agbru/bigcalc/internal/orchestration"
	"github.com/agbru/bigcalc/internal/ui"
)

// CLIProgressReporter implements orchestration.ProgressReporter with a
// spinner and progress bar.
type CLIProgressReporter struct{}

var _ orchestration.ProgressReporter = CLIProgressReporter{}

// DisplayProgress delegates to DisplayProgress.
func (CLIProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan orchestration.ProgressUpdate, total int, out io.Writer) {
	DisplayProgress(wg, progressChan, total, out)
}

// CLIResultPresenter implements orchestration.ResultPresenter for terminal
// output.
type CLIResultPresenter struct {
	// Radix is the radix values are printed in.
	Radix int
	// Full disables truncation of long values.
	Full bool
	// Quiet prints one bare line per result.
	Quiet bool
}

var _ orchestration.ResultPresenter = CLIResultPresenter{}

// PresentResult displays one result. Failed results are shown inline so that
// a batch keeps one entry per expression.
func (p CLIResultPresenter) PresentResult(result operations.Result, out io.Writer) {
	if p.Quiet {
		DisplayQuietResult(out, result, p.radix())
		return
	}
	if result.Err != nil {
		fmt.Fprintf(out, "%s✗ %s%s: %v\n", ui.ColorRed(), result.Expr, ui.ColorReset(), result.Err)
		return
	}

	meta := fmt.Sprintf("%s(%s", ui.ColorDim(), durationLabel(result.Duration))
	if result.Cached {
		meta += ", cached"
	}
	meta += ")" + ui.ColorReset()

	if result.Verdict != "" && len(result.Values) == 0 {
		fmt.Fprintf(out, "%s%s%s: %s%s%s %s\n", ui.ColorCyan(), result.Expr, ui.ColorReset(),
			ui.ColorGreen(), result.Verdict, ui.ColorReset(), meta)
		return
	}

	values := make([]string, len(result.Values))
	for i, v := range result.Values {
		s, err := FormatValue(v, p.radix(), p.Full)
		if err != nil {
			fmt.Fprintf(out, "%s✗ %s%s: %v\n", ui.ColorRed(), result.Expr, ui.ColorReset(), err)
			return
		}
		values[i] = s
	}
	if len(values) == 1 {
		fmt.Fprintf(out, "%s%s%s = %s%s%s %s\n", ui.ColorCyan(), result.Expr, ui.ColorReset(),
			ui.ColorGreen(), values[0], ui.ColorReset(), meta)
		return
	}
	fmt.Fprintf(out, "%s%s%s = %s\n", ui.ColorCyan(), result.Expr, ui.ColorReset(), meta)
	for i, v := range values {
		fmt.Fprintf(out, "  [%d] %s%s%s\n", i, ui.ColorGreen(), v, ui.ColorReset())
	}
}

// PresentSummary displays a per-operation table of a batch: how many
// expressions used the operation, how many failed and the time spent.
// Uses manual padding since the cells carry ANSI color codes.
func (p CLIResultPresenter) PresentSummary(results []operations.Result, out io.Writer) {
	if p.Quiet {
		return
	}
	type row struct {
		op       string
		count    int
		failed   int
		duration time.Duration
	}
	byOp := make(map[string]*row)
	for _, res := range results {
		name := res.Op
		if name == "" {
			name = "(invalid)"
		}
		r, ok := byOp[name]
		if !ok {
			r = &row{op: name}
			byOp[name] = r
		}
		r.count++
		r.duration += res.Duration
		if res.Err != nil {
			r.failed++
		}
	}
	rows := make([]*row, 0, len(byOp))
	for _, r := range byOp {
		rows = append(rows, r)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].op < rows[j].op })

	opWidth, countWidth, durWidth := len("Operation"), len("Count"), len("Duration")
	for _, r := range rows {
		opWidth = max(opWidth, len(r.op))
		countWidth = max(countWidth, len(format.FormatCount(r.count)))
		durWidth = max(durWidth, utf8.RuneCountInString(durationLabel(r.duration)))
	}

	fmt.Fprintf(out, "\n--- Summary ---\n")
	fmt.Fprintf(out, "%sOperation%s%s   %sCount%s%s   %sDuration%s%s   %sStatus%s\n",
		ui.ColorUnderline(), ui.ColorReset(), padRight("", opWidth-len("Operation")),
		ui.ColorUnderline(), ui.ColorReset(), padRight("", countWidth-len("Count")),
		ui.ColorUnderline(), ui.ColorReset(), padRight("", durWidth-len("Duration")),
		ui.ColorUnderline(), ui.ColorReset())
	for _, r := range rows {
		status := fmt.Sprintf("%s✓ ok%s", ui.ColorGreen(), ui.ColorReset())
		if r.failed > 0 {
			status = fmt.Sprintf("%s✗ %d failed%s", ui.ColorRed(), r.failed, ui.ColorReset())
		}
		count := format.FormatCount(r.count)
		dur := durationLabel(r.duration)
		fmt.Fprintf(out, "%s%s%s%s   %s%s   %s%s%s%s   %s\n",
			ui.ColorCyan(), r.op, ui.ColorReset(), padRight("", opWidth-len(r.op)),
			count, padRight("", countWidth-len(count)),
			ui.ColorYellow(), dur, ui.ColorReset(), padRight("", durWidth-utf8.RuneCountInString(dur)),
			status)
	}
}

// HandleError reports err with the theme's colors and returns its exit code.
func (CLIResultPresenter) HandleError(err error, duration time.Duration, out io.Writer) int {
	return apperrors.HandleEvaluationError(err, duration, out, ui.ErrorColors{})
}

func (p CLIResultPresenter) radix() int {
	if p.Radix == 0 {
		return 10
	}
	return p.Radix
}

// FormatValue renders v in radix. Decimal values get thousands separators;
// values longer than TruncationLimit digits are shortened unless full is set.
func FormatValue(v bigint.Int, radix int, full bool) (string, error) {
	s, err := v.Text(radix)
	if err != nil {
		return "", err
	}
	if !full && len(s) > TruncationLimit {
		return format.TruncateDigits(s, TruncationLimit, DisplayEdges), nil
	}
	if radix == 10 {
		return format.FormatNumberString(s), nil
	}
	return s, nil
}

func durationLabel(d time.Duration) string {
	if d <= 0 {
		return "< 1µs"
	}
	return format.FormatExecutionDuration(d)
}

// padRight appends length spaces to s.
func padRight(s string, length int) string {
	if length <= 0 {
		return s
	}
	return s + fmt.Sprintf("%*s", length, "")
}
