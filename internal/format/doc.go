// Package format holds the display helpers shared by the CLI and the batch
// progress reporter: durations, ETAs, progress bars, grouped numbers and
// truncated values.
package format
