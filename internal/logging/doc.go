// Package logging provides a unified logging interface for the calculator.
// Components log through Logger and typed Fields; the zerolog adapter is the
// production backend and a log.Logger adapter serves tests and embedding.
package logging
