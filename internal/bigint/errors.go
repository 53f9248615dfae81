package bigint

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the package. Wrapped errors carry additional
// context and remain comparable through errors.Is.
var (
	// ErrFormat reports unparseable input or an invalid radix.
	ErrFormat = errors.New("bigint: invalid format")
	// ErrDivideByZero reports a division or remainder by zero.
	ErrDivideByZero = errors.New("bigint: division by zero")
	// ErrInvalidModulus reports a zero or negative modulus.
	ErrInvalidModulus = errors.New("bigint: modulus must be positive")
	// ErrNotInvertible reports a modular inverse request where gcd(a, m) != 1.
	ErrNotInvertible = errors.New("bigint: value is not invertible")
	// ErrSearchExhausted reports that NextProbablePrime hit its search bound.
	ErrSearchExhausted = errors.New("bigint: prime search exhausted")
	// ErrGenerationExhausted reports that ProbablePrime ran out of attempts.
	ErrGenerationExhausted = errors.New("bigint: prime generation exhausted")
	// ErrDomain reports an argument outside the operation's domain, such as a
	// negative exponent or the square root of a negative value.
	ErrDomain = errors.New("bigint: argument out of domain")
)

// FormatError describes why a string could not be converted to an Int.
type FormatError struct {
	// Input is the offending text.
	Input string
	// Radix is the radix in effect when the error was detected, or 0 when the
	// radix itself was not determined yet.
	Radix int
	// Reason explains the failure.
	Reason string
}

// Error returns a formatted description of the failure.
func (e *FormatError) Error() string {
	if e.Radix != 0 {
		return fmt.Sprintf("bigint: cannot parse %q in radix %d: %s", e.Input, e.Radix, e.Reason)
	}
	return fmt.Sprintf("bigint: cannot parse %q: %s", e.Input, e.Reason)
}

// Unwrap returns ErrFormat so callers can match every FormatError with
// errors.Is(err, ErrFormat).
func (e *FormatError) Unwrap() error { return ErrFormat }

func formatError(input string, radix int, reason string) error {
	return &FormatError{Input: input, Radix: radix, Reason: reason}
}

func domainError(format string, a ...any) error {
	return fmt.Errorf("%w: %s", ErrDomain, fmt.Sprintf(format, a...))
}
