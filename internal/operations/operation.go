package operations

import (
	"fmt"

	"github.com/agbru/bigcalc/internal/bigint"
	apperrors "github.com/agbru/bigcalc/internal/errors"
)

// Variadic marks an operation with no upper bound on its argument count.
const Variadic = -1

// Env carries the collaborators and limits available to operations.
type Env struct {
	// Oracle answers primality questions and draws random candidates.
	Oracle *bigint.Oracle
	// Certainty is the default number of Miller-Rabin rounds.
	Certainty int
	// SearchBound is the default candidate cap for nextprime.
	SearchBound int
	// Attempts is the draw cap for randprime.
	Attempts int
}

// Output is the result of one operation. Verdict carries textual answers
// such as a primality verdict or a radix rendering.
type Output struct {
	Values  []bigint.Int
	Verdict string
}

// EvalFunc evaluates an operation over its raw argument tokens.
type EvalFunc func(env Env, args []string) (Output, error)

// Operation describes one named operation.
type Operation struct {
	Name    string
	Aliases []string
	// MinArgs and MaxArgs bound the argument count. MaxArgs may be Variadic.
	MinArgs int
	MaxArgs int
	// Usage is a one-line synopsis such as "modpow X E M".
	Usage string
	// Summary describes the result.
	Summary string
	// Pure operations depend only on their arguments and may be memoized.
	Pure bool
	// VerbatimArgs counts the leading arguments that are not read with
	// bigint.Parse and therefore enter the cache key as typed.
	VerbatimArgs int
	Eval EvalFunc
}

// CheckArity returns a ValidationError when n arguments do not fit op.
func (op Operation) CheckArity(n int) error {
	switch {
	case n < op.MinArgs:
		return apperrors.ValidationError{Field: op.Name, Message: fmt.Sprintf("expects at least %d argument(s), got %d (usage: %s)", op.MinArgs, n, op.Usage)}
	case op.MaxArgs != Variadic && n > op.MaxArgs:
		return apperrors.ValidationError{Field: op.Name, Message: fmt.Sprintf("expects at most %d argument(s), got %d (usage: %s)", op.MaxArgs, n, op.Usage)}
	}
	return nil
}

// parseArgs converts every token with bigint.Parse.
func parseArgs(args []string) ([]bigint.Int, error) {
	out := make([]bigint.Int, len(args))
	for i, a := range args {
		v, err := bigint.Parse(a)
		if err != nil {
			return nil, apperrors.ValidationError{Field: fmt.Sprintf("argument %d", i+1), Message: err.Error()}
		}
		out[i] = v
	}
	return out, nil
}
