package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/agbru/bigcalc/internal/config"
	"github.com/agbru/bigcalc/internal/format"
	"github.com/agbru/bigcalc/internal/ui"
)

// PrintExecutionConfig displays the settings of a batch run before it starts.
func PrintExecutionConfig(cfg config.AppConfig, expressions int, out io.Writer) {
	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	fmt.Fprintf(out, "Evaluating %s%s%s expressions with %s%d%s workers and a timeout of %s%s%s each.\n",
		ui.ColorCyan(), format.FormatCount(expressions), ui.ColorReset(),
		ui.ColorCyan(), cfg.Workers, ui.ColorReset(),
		ui.ColorYellow(), cfg.Timeout, ui.ColorReset())
	fmt.Fprintf(out, "Environment: %s%d%s logical processors, Go %s%s%s.\n",
		ui.ColorCyan(), runtime.NumCPU(), ui.ColorReset(), ui.ColorCyan(), runtime.Version(), ui.ColorReset())
	fmt.Fprintf(out, "Primality: %s%d%s rounds, search bound %s%s%s, %s%s%s attempts.\n",
		ui.ColorCyan(), cfg.Certainty, ui.ColorReset(),
		ui.ColorCyan(), format.FormatCount(cfg.SearchBound), ui.ColorReset(),
		ui.ColorCyan(), format.FormatCount(cfg.Attempts), ui.ColorReset())
	fmt.Fprintf(out, "\n--- Starting Execution ---\n")
}
