package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/agbru/bigcalc/internal/bigint"
	"github.com/agbru/bigcalc/internal/format"
	"github.com/agbru/bigcalc/internal/metrics"
	"github.com/agbru/bigcalc/internal/operations"
	"github.com/agbru/bigcalc/internal/sysmon"
	"github.com/agbru/bigcalc/internal/ui"
)

// REPLConfig holds the settings of an interactive session.
type REPLConfig struct {
	// Radix is the initial output radix.
	Radix int
	// Full disables truncation of long values.
	Full bool
	// Timeout is the per-evaluation limit, shown by the status command.
	Timeout time.Duration
	// Version is shown in the banner.
	Version string
}

// REPL is an interactive calculator session.
type REPL struct {
	config    REPLConfig
	evaluator *operations.Evaluator
	memory    *metrics.MemoryCollector
	system    *sysmon.Sampler
	evaluated int
	in        io.Reader
	out       io.Writer
}

// NewREPL creates a session that evaluates lines with evaluator.
func NewREPL(evaluator *operations.Evaluator, config REPLConfig) *REPL {
	if config.Radix == 0 {
		config.Radix = 10
	}
	return &REPL{
		config:    config,
		evaluator: evaluator,
		memory:    metrics.NewMemoryCollector(),
		system:    sysmon.NewSampler(),
		in:        os.Stdin,
		out:       os.Stdout,
	}
}

// SetInput sets a custom input reader (useful for testing).
func (r *REPL) SetInput(in io.Reader) {
	r.in = in
}

// SetOutput sets a custom output writer (useful for testing).
func (r *REPL) SetOutput(out io.Writer) {
	r.out = out
}

type readResult struct {
	line string
	err  error
}

// Start reads and processes lines until exit, EOF or cancellation of ctx.
// Evaluations run under ctx, so an interrupt also aborts the one in
// progress.
func (r *REPL) Start(ctx context.Context) {
	r.printBanner()
	fmt.Fprintln(r.out)

	lines := make(chan readResult)
	go func() {
		defer close(lines)
		reader := bufio.NewReader(r.in)
		for {
			line, err := reader.ReadString('\n')
			select {
			case lines <- readResult{line, err}:
			case <-ctx.Done():
				return
			}
			if err != nil {
				return
			}
		}
	}()

	for {
		if ctx.Err() != nil {
			fmt.Fprintf(r.out, "\n%sInterrupted.%s\n", ui.ColorYellow(), ui.ColorReset())
			return
		}
		fmt.Fprint(r.out, ui.ColorPrimary()+"bigcalc> "+ui.ColorReset())

		var (
			in readResult
			ok bool
		)
		select {
		case <-ctx.Done():
			fmt.Fprintf(r.out, "\n%sInterrupted.%s\n", ui.ColorYellow(), ui.ColorReset())
			return
		case in, ok = <-lines:
			if !ok {
				return
			}
		}

		if in.err != nil {
			if !errors.Is(in.err, io.EOF) {
				fmt.Fprintf(r.out, "%sRead error: %v%s\n", ui.ColorRed(), in.err, ui.ColorReset())
				return
			}
			// A final line without a newline is still processed.
			if strings.TrimSpace(in.line) == "" {
				fmt.Fprintln(r.out, "\nGoodbye!")
				return
			}
		}

		input := strings.TrimSpace(in.line)
		if input == "" || strings.HasPrefix(input, "#") {
			continue
		}
		if !r.processCommand(ctx, input) {
			return
		}
		if in.err != nil {
			fmt.Fprintln(r.out, "\nGoodbye!")
			return
		}
	}
}

func (r *REPL) printBanner() {
	subtitle := "Arbitrary-precision integer calculator"
	if r.config.Version != "" {
		subtitle += " " + r.config.Version
	}
	fmt.Fprintln(r.out, ui.RenderBanner("bigcalc interactive mode", subtitle,
		"Type an operation such as \"add 1 2\", or help for commands."))
}

func (r *REPL) printHelp() {
	fmt.Fprintf(r.out, "%sAvailable commands:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %s<op> <args...>%s - Evaluate an operation, e.g. gcd 12 18\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %shelp <op>%s      - Show the usage of an operation\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %slist%s           - List available operations\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sradix <n>%s      - Set the output radix (2-36)\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sfull%s           - Toggle truncation of long values\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sstatus%s         - Display the session configuration\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %shelp%s           - Display this help\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sexit%s / %squit%s    - Exit interactive mode\n", ui.ColorYellow(), ui.ColorReset(), ui.ColorYellow(), ui.ColorReset())
}

// processCommand runs one input line. It returns false if the REPL should
// exit.
func (r *REPL) processCommand(ctx context.Context, input string) bool {
	parts := strings.Fields(input)
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "help", "h", "?":
		if len(args) > 0 {
			r.cmdUsage(args[0])
		} else {
			r.printHelp()
		}
	case "list", "ls":
		r.cmdList()
	case "radix":
		r.cmdRadix(args)
	case "full":
		r.config.Full = !r.config.Full
		state := "truncated"
		if r.config.Full {
			state = "full"
		}
		fmt.Fprintf(r.out, "Long values are now displayed %s%s%s.\n", ui.ColorGreen(), state, ui.ColorReset())
	case "status", "st":
		r.cmdStatus()
	case "exit", "quit", "q":
		fmt.Fprintf(r.out, "%sGoodbye!%s\n", ui.ColorGreen(), ui.ColorReset())
		return false
	default:
		r.evaluate(ctx, input)
	}
	return true
}

func (r *REPL) evaluate(ctx context.Context, line string) {
	res := r.evaluator.Evaluate(ctx, line)
	r.evaluated++
	presenter := CLIResultPresenter{Radix: r.config.Radix, Full: r.config.Full}
	presenter.PresentResult(res, r.out)
	if res.Err != nil && res.Op == "" {
		fmt.Fprintf(r.out, "Type %shelp%s to see available commands.\n", ui.ColorYellow(), ui.ColorReset())
	}
}

func (r *REPL) cmdUsage(name string) {
	op, ok := r.evaluator.Registry().Get(name)
	if !ok {
		fmt.Fprintf(r.out, "%sUnknown operation: %s%s\n", ui.ColorRed(), name, ui.ColorReset())
		return
	}
	fmt.Fprintf(r.out, "%s%s%s - %s\n", ui.ColorYellow(), op.Usage, ui.ColorReset(), op.Summary)
	if len(op.Aliases) > 0 {
		fmt.Fprintf(r.out, "  aliases: %s\n", strings.Join(op.Aliases, ", "))
	}
}

func (r *REPL) cmdList() {
	ops := r.evaluator.Registry().List()
	width := 0
	for _, op := range ops {
		width = max(width, len(op.Usage))
	}
	fmt.Fprintf(r.out, "\n%sAvailable operations:%s\n", ui.ColorBold(), ui.ColorReset())
	for _, op := range ops {
		fmt.Fprintf(r.out, "  %s%s%s%s  %s\n", ui.ColorYellow(), op.Usage, ui.ColorReset(),
			padRight("", width-len(op.Usage)), op.Summary)
	}
	fmt.Fprintln(r.out)
}

func (r *REPL) cmdRadix(args []string) {
	if len(args) != 1 {
		fmt.Fprintf(r.out, "%sUsage: radix <n>%s\n", ui.ColorRed(), ui.ColorReset())
		return
	}
	radix, err := strconv.Atoi(args[0])
	if err != nil || radix < bigint.MinRadix || radix > bigint.MaxRadix {
		fmt.Fprintf(r.out, "%sInvalid radix: %s (expected %d-%d)%s\n",
			ui.ColorRed(), args[0], bigint.MinRadix, bigint.MaxRadix, ui.ColorReset())
		return
	}
	r.config.Radix = radix
	fmt.Fprintf(r.out, "Output radix set to %s%d%s.\n", ui.ColorGreen(), radix, ui.ColorReset())
}

func (r *REPL) cmdStatus() {
	mem := r.memory.Snapshot()
	sys := r.system.Sample()
	full := "no"
	if r.config.Full {
		full = "yes"
	}
	fmt.Fprintln(r.out, ui.RenderKeyValues("Session", [][2]string{
		{"Radix", strconv.Itoa(r.config.Radix)},
		{"Full values", full},
		{"Timeout", r.config.Timeout.String()},
		{"Operations", format.FormatCount(len(r.evaluator.Registry().List()))},
		{"Evaluated", format.FormatCount(r.evaluated)},
		{"Heap", format.FormatCount(int(mem.HeapAlloc/1024)) + " KiB"},
		{"GC cycles", format.FormatCount(int(mem.NumGC))},
		{"System CPU", fmt.Sprintf("%.1f%%", sys.CPUPercent)},
		{"System memory", fmt.Sprintf("%.1f%% of %s MiB", sys.MemPercent, format.FormatCount(int(sys.MemTotal>>20)))},
	}))
}
