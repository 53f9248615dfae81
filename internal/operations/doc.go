// Package operations maps named operations onto the bigint engine and
// evaluates textual expressions of the form "op arg...".
//
// A Registry holds the operations. An Evaluator resolves a line against the
// registry, runs the operation under the caller's context, memoizes pure
// results, and reports each evaluation to a tracer, a metrics recorder and a
// logger.
package operations
