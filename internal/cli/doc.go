// Package cli implements the terminal front end: batch progress display,
// result presentation, result files, shell completion and the interactive
// REPL.
//
// # Naming Conventions
//
//   - Display* functions write formatted output to an [io.Writer].
//   - Format* functions return a formatted string without performing I/O.
//   - Write* functions write data to files on the filesystem.
package cli
