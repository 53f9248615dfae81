package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/agbru/bigcalc/internal/config"
)

// FlagCompletion describes a CLI flag for shell completion generation.
// Every generator reads flagRegistry, so a new flag only needs an entry
// there.
type FlagCompletion struct {
	Long      string   // long flag name without "--"
	Short     string   // short flag without "-"
	Help      string   // description text
	Values    []string // suggested values; nil for booleans or free values
	ValueName string   // label for the value in zsh
	IsFile    bool     // the flag takes a file path
	IsOp      bool     // values are operation names, supplied at generation time
}

var flagRegistry = []FlagCompletion{
	{Long: "help", Short: "h", Help: "Show help message"},
	{Long: "version", Short: "V", Help: "Show version information"},
	{Short: "e", Help: "Evaluate a single expression", IsOp: true, ValueName: "expression"},
	{Short: "f", Help: "Evaluate every expression of a file", IsFile: true, ValueName: "file"},
	{Long: "radix", Help: "Output radix", Values: []string{"2", "8", "10", "16", "36"}, ValueName: "radix"},
	{Long: "full", Help: "Print values without truncation"},
	{Long: "output", Short: "o", Help: "Write results to a file", IsFile: true, ValueName: "file"},
	{Long: "timeout", Help: "Maximum duration of one evaluation", Values: []string{"10s", "1m", "5m", "30m"}, ValueName: "duration"},
	{Long: "workers", Help: "Concurrent evaluations in batch mode", ValueName: "count"},
	{Long: "certainty", Help: "Miller-Rabin rounds", Values: []string{"10", "20", "40", "64"}, ValueName: "rounds"},
	{Long: "search-bound", Help: "Candidates examined by nextprime", ValueName: "count"},
	{Long: "attempts", Help: "Random draws made by randprime", ValueName: "count"},
	{Long: "seed", Help: "Seed for reproducible prime generation", ValueName: "seed"},
	{Long: "cache-size", Help: "Memoized results kept by the evaluator", ValueName: "entries"},
	{Long: "metrics-addr", Help: "Serve Prometheus metrics on this address", ValueName: "address"},
	{Long: "verbose", Short: "v", Help: "Enable debug logging"},
	{Long: "quiet", Short: "q", Help: "Print bare results only"},
	{Long: "no-color", Help: "Disable colored output"},
	{Long: "theme", Help: "Color theme", Values: config.Themes, ValueName: "name"},
	{Long: "completion", Help: "Generate completion script", Values: config.CompletionShells, ValueName: "shell"},
}

// GenerateCompletion writes a completion script for shell to out. ops are
// the operation names offered as the first word of -e.
func GenerateCompletion(out io.Writer, shell string, ops []string) error {
	var script string
	switch shell {
	case "bash":
		script = bashCompletion(ops)
	case "zsh":
		script = zshCompletion(ops)
	case "fish":
		script = fishCompletion(ops)
	case "powershell", "ps":
		script = powerShellCompletion(ops)
	default:
		return fmt.Errorf("unsupported shell: %s (accepted values: %s)", shell, strings.Join(config.CompletionShells, ", "))
	}
	if _, err := fmt.Fprint(out, script); err != nil {
		return fmt.Errorf("completion %s generation failed: %w", shell, err)
	}
	return nil
}

// flagNames returns the spellings of f as typed on the command line.
func flagNames(f FlagCompletion) []string {
	var names []string
	if f.Long != "" {
		names = append(names, "--"+f.Long)
	}
	if f.Short != "" {
		names = append(names, "-"+f.Short)
	}
	return names
}

func bashCompletion(ops []string) string {
	var opts []string
	var cases strings.Builder
	for _, f := range flagRegistry {
		names := flagNames(f)
		opts = append(opts, names...)

		var body string
		switch {
		case f.IsOp:
			body = `COMPREPLY=( $(compgen -W "${operations}" -- "${cur}") )`
		case f.IsFile:
			body = `COMPREPLY=( $(compgen -f -- "${cur}") )`
		case len(f.Values) > 0:
			body = fmt.Sprintf(`COMPREPLY=( $(compgen -W "%s" -- "${cur}") )`, strings.Join(f.Values, " "))
		default:
			continue
		}
		fmt.Fprintf(&cases, "        %s)\n            %s\n            return 0\n            ;;\n", strings.Join(names, "|"), body)
	}

	return fmt.Sprintf(`# Bash completion script for bigcalc
# Add this to your ~/.bashrc or ~/.bash_completion

_bigcalc_completions() {
    local cur prev opts operations
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"

    opts="%s"
    operations="%s"

    case "${prev}" in
%s    esac

    if [[ "${cur}" == -* ]]; then
        COMPREPLY=( $(compgen -W "${opts}" -- "${cur}") )
        return 0
    fi
}

complete -F _bigcalc_completions bigcalc
`, strings.Join(opts, " "), strings.Join(ops, " "), cases.String())
}

func zshCompletion(ops []string) string {
	args := make([]string, 0, len(flagRegistry))
	for _, f := range flagRegistry {
		args = append(args, zshArgEntry(f))
	}
	return fmt.Sprintf(`#compdef bigcalc

# Zsh completion script for bigcalc
# Add this to your ~/.zshrc or place in $fpath

_bigcalc() {
    local -a operations
    operations=(%s)

    _arguments -s \
%s
}

_bigcalc "$@"
`, strings.Join(ops, " "), strings.Join(args, " \\\n"))
}

// zshArgEntry formats f as a zsh _arguments entry.
func zshArgEntry(f FlagCompletion) string {
	var valueSuffix string
	switch {
	case f.IsFile:
		valueSuffix = fmt.Sprintf(":%s:_files", f.ValueName)
	case f.IsOp:
		valueSuffix = fmt.Sprintf(":%s:($operations)", f.ValueName)
	case len(f.Values) > 0:
		valueSuffix = fmt.Sprintf(":%s:(%s)", f.ValueName, strings.Join(f.Values, " "))
	case f.ValueName != "":
		valueSuffix = fmt.Sprintf(":%s:", f.ValueName)
	}

	switch {
	case f.Long != "" && f.Short != "":
		return fmt.Sprintf("        '(-%s --%s)'{-%s,--%s}'[%s]%s'", f.Short, f.Long, f.Short, f.Long, f.Help, valueSuffix)
	case f.Long != "":
		return fmt.Sprintf("        '--%s[%s]%s'", f.Long, f.Help, valueSuffix)
	default:
		return fmt.Sprintf("        '-%s[%s]%s'", f.Short, f.Help, valueSuffix)
	}
}

func fishCompletion(ops []string) string {
	lines := []string{
		"# Fish completion script for bigcalc",
		"# Add this to ~/.config/fish/completions/bigcalc.fish",
		"",
		"# Disable file completion by default",
		"complete -c bigcalc -f",
		"",
	}
	opList := strings.Join(ops, " ")
	for _, f := range flagRegistry {
		parts := []string{"complete -c bigcalc"}
		if f.Short != "" {
			parts = append(parts, "-s "+f.Short)
		}
		if f.Long != "" {
			parts = append(parts, "-l "+f.Long)
		}
		parts = append(parts, fmt.Sprintf("-d '%s'", f.Help))
		switch {
		case f.IsFile:
			parts = append(parts, "-rF")
		case f.IsOp:
			parts = append(parts, fmt.Sprintf("-xa '%s'", opList))
		case len(f.Values) > 0:
			parts = append(parts, fmt.Sprintf("-xa '%s'", strings.Join(f.Values, " ")))
		case f.ValueName != "":
			parts = append(parts, "-x")
		}
		lines = append(lines, strings.Join(parts, " "))
	}
	return strings.Join(lines, "\n") + "\n"
}

func powerShellCompletion(ops []string) string {
	quote := func(values []string) string {
		quoted := make([]string, len(values))
		for i, v := range values {
			quoted[i] = "'" + v + "'"
		}
		return strings.Join(quoted, ", ")
	}

	var options, switches []string
	for _, f := range flagRegistry {
		for _, name := range flagNames(f) {
			options = append(options, fmt.Sprintf("        @{Name = '%s'; Description = '%s' }", name, f.Help))
		}
		var values string
		switch {
		case f.IsOp:
			values = "$bigcalcOperations"
		case len(f.Values) > 0 && !f.IsFile:
			values = "@(" + quote(f.Values) + ")"
		default:
			continue
		}
		for _, name := range flagNames(f) {
			switches = append(switches, fmt.Sprintf(`        '%s' {
            %s | Where-Object { $_ -like "$wordToComplete*" } | ForEach-Object {
                [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)
            }
            return
        }`, name, values))
		}
	}

	return fmt.Sprintf(`# PowerShell completion script for bigcalc
# Add this to your $PROFILE

$bigcalcOperations = @(%s)

Register-ArgumentCompleter -CommandName 'bigcalc' -Native -ScriptBlock {
    param($wordToComplete, $commandAst, $cursorPosition)

    $options = @(
%s
    )

    $elements = $commandAst.CommandElements
    $prevElement = if ($elements.Count -gt 2) { $elements[-2].ToString() } else { '' }

    switch ($prevElement) {
%s
    }

    $options | Where-Object { $_.Name -like "$wordToComplete*" } | ForEach-Object {
        [System.Management.Automation.CompletionResult]::new($_.Name, $_.Name, 'ParameterName', $_.Description)
    }
}
`, quote(ops), strings.Join(options, "\n"), strings.Join(switches, "\n"))
}
