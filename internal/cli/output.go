package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/agbru/bigcalc/internal/operations"
	"github.com/agbru/bigcalc/internal/ui"
)

// FormatQuietResult renders a result as a single line for scripts: the
// values separated by spaces, the verdict, or "error: " and the message.
// Values are never truncated.
func FormatQuietResult(result operations.Result, radix int) string {
	if result.Err != nil {
		return "error: " + result.Err.Error()
	}
	if len(result.Values) == 0 {
		return result.Verdict
	}
	parts := make([]string, len(result.Values))
	for i, v := range result.Values {
		s, err := v.Text(radix)
		if err != nil {
			return "error: " + err.Error()
		}
		parts[i] = s
	}
	return strings.Join(parts, " ")
}

// DisplayQuietResult writes FormatQuietResult and a newline to out.
func DisplayQuietResult(out io.Writer, result operations.Result, radix int) {
	fmt.Fprintln(out, FormatQuietResult(result, radix))
}

// WriteResultsToFile writes results to path, one "expr = values" line per
// result after a commented header. Missing parent directories are created.
func WriteResultsToFile(path string, results []operations.Result, radix int) (err error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output file: %w", cerr)
		}
	}()

	w := bufio.NewWriter(file)
	var total time.Duration
	for _, r := range results {
		total += r.Duration
	}
	fmt.Fprintf(w, "# bigcalc results\n")
	fmt.Fprintf(w, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(w, "# Radix: %d\n", radix)
	fmt.Fprintf(w, "# Expressions: %d\n", len(results))
	fmt.Fprintf(w, "# Duration: %s\n\n", total)
	for _, r := range results {
		fmt.Fprintf(w, "%s = %s\n", r.Expr, FormatQuietResult(r, radix))
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

// DisplaySavedNotice tells the user where results were written.
func DisplaySavedNotice(out io.Writer, path string) {
	fmt.Fprintf(out, "\n%s✓ Results saved to: %s%s%s\n", ui.ColorGreen(), ui.ColorCyan(), path, ui.ColorReset())
}
