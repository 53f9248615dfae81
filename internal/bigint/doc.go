// Package bigint implements an arbitrary-precision signed integer.
//
// Values are stored as a sign plus a little-endian magnitude of 16-bit words
// that never carries a most-significant zero word. An Int is immutable: every
// operation returns a new Int and never mutates its receiver or arguments, so
// a single Int may be shared freely between goroutines.
//
// The package covers:
//   - radix conversion (Parse, ParseRadix, Text) for radixes 2 through 36
//   - arithmetic with truncating (DivRem) and Euclidean (Mod) division
//   - bitwise logic with two's-complement semantics for negative values
//   - number theory (Pow, ModPow, GCD, ExtGCD, ModInverse, Sqrt)
//   - Miller-Rabin primality testing through an Oracle that owns its
//     source of randomness
//
// Errors are reported through the sentinel values in errors.go and can be
// matched with errors.Is.
package bigint
