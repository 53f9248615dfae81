package operations

import (
	"fmt"
	"math"

	"github.com/agbru/bigcalc/internal/bigint"
)

// MaxBitIndex bounds bit positions and shift counts so a single token cannot
// request an allocation of arbitrary size.
const MaxBitIndex = 1 << 26

func builtins() []Operation {
	return []Operation{
		fold("add", "sum of all arguments", bigint.Int.Add, "plus", "+"),
		binary("sub", "X - Y", lift(bigint.Int.Sub), "minus", "-"),
		fold("mul", "product of all arguments", bigint.Int.Mul, "times", "*"),
		binary("div", "X / Y truncated toward zero", bigint.Int.Div, "/"),
		binary("rem", "X - Y*div(X, Y), sign of X", bigint.Int.Rem, "%"),
		{
			Name: "divrem", Usage: "divrem X Y", Summary: "quotient and remainder",
			MinArgs: 2, MaxArgs: 2, Pure: true,
			Eval: withInts(func(_ Env, v []bigint.Int) (Output, error) {
				q, r, err := v[0].DivRem(v[1])
				if err != nil {
					return Output{}, err
				}
				return Output{Values: []bigint.Int{q, r}}, nil
			}),
		},
		binary("mod", "X mod M in [0, M)", bigint.Int.Mod),
		unary("neg", "-X", lift1(bigint.Int.Neg)),
		unary("abs", "|X|", lift1(bigint.Int.Abs)),
		binary("cmp", "-1, 0 or 1 as X <, =, > Y", func(x, y bigint.Int) (bigint.Int, error) {
			return bigint.NewInt(int64(x.Cmp(y))), nil
		}),
		binary("pow", "X^E for E >= 0", bigint.Int.Pow, "^", "**"),
		{
			Name: "modpow", Usage: "modpow X E M", Summary: "X^E mod M",
			MinArgs: 3, MaxArgs: 3, Pure: true,
			Eval: withInts(func(_ Env, v []bigint.Int) (Output, error) {
				r, err := v[0].ModPow(v[1], v[2])
				return single(r, err)
			}),
			Aliases: []string{"powmod"},
		},
		binary("modinv", "Y such that X*Y = 1 mod M", bigint.Int.ModInverse, "inv"),
		fold("gcd", "greatest common divisor, non-negative", bigint.GCD),
		fold("lcm", "least common multiple, non-negative", bigint.LCM),
		{
			Name: "extgcd", Usage: "extgcd A B", Summary: "X, Y, G with A*X + B*Y = G",
			MinArgs: 2, MaxArgs: 2, Pure: true,
			Eval: withInts(func(_ Env, v []bigint.Int) (Output, error) {
				x, y, g := bigint.ExtGCD(v[0], v[1])
				return Output{Values: []bigint.Int{x, y, g}}, nil
			}),
			Aliases: []string{"egcd"},
		},
		unary("sqrt", "floor of the square root, X >= 0", bigint.Int.Sqrt, "isqrt"),
		fold("and", "two's-complement AND", bigint.Int.And, "&"),
		fold("or", "two's-complement OR", bigint.Int.Or, "|"),
		fold("xor", "two's-complement XOR", bigint.Int.Xor),
		unary("not", "-X - 1", lift1(bigint.Int.Not), "~"),
		binary("andnot", "X AND NOT Y", lift(bigint.Int.AndNot)),
		binary("nand", "NOT (X AND Y)", lift(bigint.Int.Nand)),
		binary("nor", "NOT (X OR Y)", lift(bigint.Int.Nor)),
		bitOp("shl", "X * 2^N", bigint.Int.Shl, "<<"),
		bitOp("shr", "floor(X / 2^N)", bigint.Int.Shr, ">>"),
		bitOp("setbit", "X with bit N set", bigint.Int.SetBit),
		bitOp("clearbit", "X with bit N cleared", bigint.Int.ClearBit),
		bitOp("flipbit", "X with bit N flipped", bigint.Int.FlipBit),
		bitOp("testbit", "1 if bit N of X is set, else 0", func(x bigint.Int, i uint) bigint.Int {
			if x.TestBit(i) {
				return bigint.One()
			}
			return bigint.Zero()
		}),
		unary("bitlen", "bits in |X|", func(x bigint.Int) (bigint.Int, error) {
			return bigint.NewInt(int64(x.BitLen())), nil
		}),
		unary("fact", "X!", bigint.Factorial, "factorial", "!"),
		{
			Name: "isprime", Usage: "isprime N [ROUNDS]", Summary: "Miller-Rabin primality verdict",
			MinArgs: 1, MaxArgs: 2,
			Eval: withInts(func(env Env, v []bigint.Int) (Output, error) {
				rounds := env.Certainty
				if len(v) == 2 {
					var err error
					if rounds, err = smallInt(v[1], "rounds", 1, math.MaxInt32); err != nil {
						return Output{}, err
					}
				}
				if env.Oracle.IsProbablePrime(v[0], rounds) {
					return Output{Verdict: "probably prime"}, nil
				}
				return Output{Verdict: "composite"}, nil
			}),
		},
		{
			Name: "nextprime", Usage: "nextprime N [BOUND]", Summary: "smallest probable prime > N",
			MinArgs: 1, MaxArgs: 2,
			Eval: withInts(func(env Env, v []bigint.Int) (Output, error) {
				bound := env.SearchBound
				if len(v) == 2 {
					var err error
					if bound, err = smallInt(v[1], "search bound", 1, math.MaxInt32); err != nil {
						return Output{}, err
					}
				}
				return single(env.Oracle.NextProbablePrime(v[0], env.Certainty, bound))
			}),
		},
		{
			Name: "randprime", Usage: "randprime BITS", Summary: "random probable prime of exactly BITS bits",
			MinArgs: 1, MaxArgs: 1,
			Eval: withInts(func(env Env, v []bigint.Int) (Output, error) {
				bits, err := smallInt(v[0], "bit length", 2, MaxBitIndex)
				if err != nil {
					return Output{}, err
				}
				return single(env.Oracle.ProbablePrime(bits, env.Certainty, env.Attempts))
			}),
		},
		{
			Name: "conv", Usage: "conv X RADIX", Summary: "X rendered in RADIX (2-36)",
			MinArgs: 2, MaxArgs: 2, Pure: true,
			Eval: withInts(func(_ Env, v []bigint.Int) (Output, error) {
				radix, err := smallInt(v[1], "radix", bigint.MinRadix, bigint.MaxRadix)
				if err != nil {
					return Output{}, err
				}
				s, err := v[0].Text(radix)
				if err != nil {
					return Output{}, err
				}
				return Output{Verdict: s}, nil
			}),
			Aliases: []string{"tobase"},
		},
		{
			Name: "base", Usage: "base DIGITS RADIX", Summary: "DIGITS read in RADIX (2-36)",
			MinArgs: 2, MaxArgs: 2, Pure: true, VerbatimArgs: 1,
			Eval: func(_ Env, args []string) (Output, error) {
				r, err := bigint.Parse(args[1])
				if err != nil {
					return Output{}, err
				}
				radix, err := smallInt(r, "radix", bigint.MinRadix, bigint.MaxRadix)
				if err != nil {
					return Output{}, err
				}
				return single(bigint.ParseRadix(args[0], radix))
			},
			Aliases: []string{"frombase"},
		},
	}
}

// withInts parses every argument before calling f.
func withInts(f func(Env, []bigint.Int) (Output, error)) EvalFunc {
	return func(env Env, args []string) (Output, error) {
		v, err := parseArgs(args)
		if err != nil {
			return Output{}, err
		}
		return f(env, v)
	}
}

func single(v bigint.Int, err error) (Output, error) {
	if err != nil {
		return Output{}, err
	}
	return Output{Values: []bigint.Int{v}}, nil
}

func lift(f func(x, y bigint.Int) bigint.Int) func(x, y bigint.Int) (bigint.Int, error) {
	return func(x, y bigint.Int) (bigint.Int, error) { return f(x, y), nil }
}

func lift1(f func(bigint.Int) bigint.Int) func(bigint.Int) (bigint.Int, error) {
	return func(x bigint.Int) (bigint.Int, error) { return f(x), nil }
}

func unary(name, summary string, f func(bigint.Int) (bigint.Int, error), aliases ...string) Operation {
	return Operation{
		Name: name, Aliases: aliases, Usage: name + " X", Summary: summary,
		MinArgs: 1, MaxArgs: 1, Pure: true,
		Eval: withInts(func(_ Env, v []bigint.Int) (Output, error) {
			return single(f(v[0]))
		}),
	}
}

func binary(name, summary string, f func(x, y bigint.Int) (bigint.Int, error), aliases ...string) Operation {
	return Operation{
		Name: name, Aliases: aliases, Usage: name + " X Y", Summary: summary,
		MinArgs: 2, MaxArgs: 2, Pure: true,
		Eval: withInts(func(_ Env, v []bigint.Int) (Output, error) {
			return single(f(v[0], v[1]))
		}),
	}
}

// fold applies f left to right over two or more arguments.
func fold(name, summary string, f func(x, y bigint.Int) bigint.Int, aliases ...string) Operation {
	return Operation{
		Name: name, Aliases: aliases, Usage: name + " X Y...", Summary: summary,
		MinArgs: 2, MaxArgs: Variadic, Pure: true,
		Eval: withInts(func(_ Env, v []bigint.Int) (Output, error) {
			acc := v[0]
			for _, x := range v[1:] {
				acc = f(acc, x)
			}
			return Output{Values: []bigint.Int{acc}}, nil
		}),
	}
}

func bitOp(name, summary string, f func(x bigint.Int, i uint) bigint.Int, aliases ...string) Operation {
	return Operation{
		Name: name, Aliases: aliases, Usage: name + " X N", Summary: summary,
		MinArgs: 2, MaxArgs: 2, Pure: true,
		Eval: withInts(func(_ Env, v []bigint.Int) (Output, error) {
			i, err := smallInt(v[1], "bit index", 0, MaxBitIndex)
			if err != nil {
				return Output{}, err
			}
			return Output{Values: []bigint.Int{f(v[0], uint(i))}}, nil
		}),
	}
}

// smallInt narrows x to an int in [lo, hi] or reports ErrDomain.
func smallInt(x bigint.Int, what string, lo, hi int) (int, error) {
	if !x.IsInt64() || x.Int64() < int64(lo) || x.Int64() > int64(hi) {
		return 0, fmt.Errorf("%w: %s %s outside [%d, %d]", bigint.ErrDomain, what, x, lo, hi)
	}
	return int(x.Int64()), nil
}
