package bigint

import (
	"fmt"
	"math"
)

// Int is an immutable arbitrary-precision signed integer.
//
// The zero value is the integer 0 and is ready to use. Int values are safe to
// copy and to share between goroutines; no method modifies its receiver.
type Int struct {
	sign int8
	mag  nat
}

// Valuer is implemented by external types that can convert themselves to an
// Int without loss.
type Valuer interface {
	BigInt() Int
}

// Int64Valuer is implemented by external types that expose a native 64-bit
// integer view.
type Int64Valuer interface {
	Int64() int64
}

// Zero returns the integer 0.
func Zero() Int { return Int{} }

// One returns the integer 1.
func One() Int { return Int{sign: 1, mag: nat{1}} }

// NewInt returns an Int holding v.
func NewInt(v int64) Int {
	if v < 0 {
		// -v overflows for MinInt64; the unsigned negation does not.
		return makeInt(true, natFromUint64(uint64(-(v + 1))+1))
	}
	return makeInt(false, natFromUint64(uint64(v)))
}

// NewUint returns an Int holding v.
func NewUint(v uint64) Int {
	return makeInt(false, natFromUint64(v))
}

// MustParse is like Parse but panics on error. It is intended for constants
// in tests and package initialization.
func MustParse(s string) Int {
	x, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return x
}

// From converts v to an Int. It accepts Int and *Int (deep copied), every
// native integer kind, strings in any form accepted by Parse, and external
// types implementing Valuer or Int64Valuer.
func From(v any) (Int, error) {
	switch t := v.(type) {
	case Int:
		return t.clone(), nil
	case *Int:
		if t == nil {
			return Int{}, fmt.Errorf("%w: nil *Int", ErrFormat)
		}
		return t.clone(), nil
	case int:
		return NewInt(int64(t)), nil
	case int8:
		return NewInt(int64(t)), nil
	case int16:
		return NewInt(int64(t)), nil
	case int32:
		return NewInt(int64(t)), nil
	case int64:
		return NewInt(t), nil
	case uint:
		return NewUint(uint64(t)), nil
	case uint8:
		return NewUint(uint64(t)), nil
	case uint16:
		return NewUint(uint64(t)), nil
	case uint32:
		return NewUint(uint64(t)), nil
	case uint64:
		return NewUint(t), nil
	case string:
		return Parse(t)
	case Valuer:
		return t.BigInt().clone(), nil
	case Int64Valuer:
		return NewInt(t.Int64()), nil
	}
	return Int{}, fmt.Errorf("%w: unsupported type %T", ErrFormat, v)
}

func (x Int) clone() Int {
	return Int{sign: x.sign, mag: x.mag.clone()}
}

// Sign returns -1, 0 or +1 depending on the sign of x.
func (x Int) Sign() int { return int(x.sign) }

// IsZero reports whether x == 0.
func (x Int) IsZero() bool { return x.sign == 0 }

// IsNeg reports whether x < 0.
func (x Int) IsNeg() bool { return x.sign < 0 }

// IsOdd reports whether x is odd.
func (x Int) IsOdd() bool { return len(x.mag) > 0 && x.mag[0]&1 == 1 }

// BitLen returns the length of |x| in bits. The bit length of 0 is 0.
func (x Int) BitLen() int { return x.mag.bitLen() }

// Cmp compares x and y and returns -1, 0 or +1.
func (x Int) Cmp(y Int) int {
	switch {
	case x.sign < y.sign:
		return -1
	case x.sign > y.sign:
		return 1
	case x.sign < 0:
		return -x.mag.cmp(y.mag)
	}
	return x.mag.cmp(y.mag)
}

// CmpAbs compares |x| and |y|.
func (x Int) CmpAbs(y Int) int { return x.mag.cmp(y.mag) }

// Equal reports whether x and y hold the same value. Normalization makes a
// termwise comparison sufficient.
func (x Int) Equal(y Int) bool {
	if x.sign != y.sign || len(x.mag) != len(y.mag) {
		return false
	}
	for i := range x.mag {
		if x.mag[i] != y.mag[i] {
			return false
		}
	}
	return true
}

// Abs returns |x|.
func (x Int) Abs() Int { return makeInt(false, x.mag) }

// Neg returns -x.
func (x Int) Neg() Int { return makeInt(x.sign > 0, x.mag) }

// Min returns the smaller of x and y.
func Min(x, y Int) Int {
	if x.Cmp(y) <= 0 {
		return x
	}
	return y
}

// Max returns the larger of x and y.
func Max(x, y Int) Int {
	if x.Cmp(y) >= 0 {
		return x
	}
	return y
}

// IsInt64 reports whether x can be represented as an int64.
func (x Int) IsInt64() bool {
	if x.BitLen() <= 63 {
		return true
	}
	return x.sign < 0 && x.BitLen() == 64 && x.mag.trailingZeroBits() == 63
}

// IsUint64 reports whether x can be represented as a uint64.
func (x Int) IsUint64() bool { return x.sign >= 0 && x.BitLen() <= 64 }

// Int64 returns the low 64 bits of x in two's complement. The result is
// undefined in meaning, but deterministic, when x does not fit.
func (x Int) Int64() int64 {
	v := int64(x.mag.low64())
	if x.sign < 0 {
		v = -v
	}
	return v
}

// Int32 returns the low 32 bits of x in two's complement.
func (x Int) Int32() int32 { return int32(x.Int64()) }

// Uint64 returns the low 64 bits of |x|.
func (x Int) Uint64() uint64 { return x.mag.low64() }

// Float64 returns the nearest float64 to x as accumulated word by word.
// Precision is lost beyond 53 significant bits and very large magnitudes
// become ±Inf.
func (x Int) Float64() float64 {
	var f float64
	for i := len(x.mag) - 1; i >= 0; i-- {
		f = f*wordBase + float64(x.mag[i])
		if math.IsInf(f, 0) {
			break
		}
	}
	if x.sign < 0 {
		f = -f
	}
	return f
}
