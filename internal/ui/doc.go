// Package ui provides theme and color support for terminal output. It holds
// the ANSI color scheme used by the CLI and the lipgloss styles used for the
// REPL banner and status box.
package ui
