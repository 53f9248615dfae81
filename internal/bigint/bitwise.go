package bigint

import (
	"fmt"
	"math"
)

// Bitwise operations treat Ints as infinite two's-complement bit strings,
// the same convention math/big uses. Storage stays sign+magnitude; negative
// operands are projected to two's complement for the duration of one call
// and the projection is discarded afterwards.

// twos returns the bitLength-bit two's-complement projection of x. The
// result has exactly ceil(bitLength/16) words and is not normalized.
// bitLength must exceed x.BitLen() so the sign bit is representable.
func twos(x Int, bitLength int) nat {
	z := make(nat, (bitLength+wordBits-1)/wordBits)
	copy(z, x.mag)
	if x.sign >= 0 {
		return z
	}
	for i := range z {
		z[i] = ^z[i]
	}
	maskTop(z, bitLength)
	return z.addWordInPlace(1)
}

// fromTwos converts a bitLength-bit two's-complement pattern back to an
// Int. z is consumed.
func fromTwos(z nat, bitLength int, neg bool) Int {
	if !neg {
		return makeInt(false, z)
	}
	for i := range z {
		z[i] = ^z[i]
	}
	maskTop(z, bitLength)
	return makeInt(true, z.addWordInPlace(1))
}

// maskTop clears the bits of the top word above bitLength.
func maskTop(z nat, bitLength int) {
	if r := bitLength % wordBits; r != 0 && len(z) > 0 {
		z[len(z)-1] &= word(1)<<r - 1
	}
}

// bitwise applies op word-wise to the two's-complement projections of x and
// y. negative decides the result sign from the operand signs.
func bitwise(x, y Int, op func(a, b word) word, negative func(xNeg, yNeg bool) bool) Int {
	bitLength := max(x.BitLen(), y.BitLen()) + 1
	a, b := twos(x, bitLength), twos(y, bitLength)
	z := make(nat, len(a))
	for i := range z {
		z[i] = op(a[i], b[i])
	}
	maskTop(z, bitLength)
	return fromTwos(z, bitLength, negative(x.sign < 0, y.sign < 0))
}

// And returns x & y. The result is negative only if both operands are.
func (x Int) And(y Int) Int {
	return bitwise(x, y,
		func(a, b word) word { return a & b },
		func(xn, yn bool) bool { return xn && yn })
}

// Or returns x | y. The result is negative if either operand is.
func (x Int) Or(y Int) Int {
	return bitwise(x, y,
		func(a, b word) word { return a | b },
		func(xn, yn bool) bool { return xn || yn })
}

// Xor returns x ^ y. The result is negative if exactly one operand is.
func (x Int) Xor(y Int) Int {
	return bitwise(x, y,
		func(a, b word) word { return a ^ b },
		func(xn, yn bool) bool { return xn != yn })
}

// Not returns ^x, which is -(x+1).
func (x Int) Not() Int { return x.Add(One()).Neg() }

// AndNot returns x &^ y.
func (x Int) AndNot(y Int) Int { return x.And(y.Not()) }

// Nand returns ^(x & y).
func (x Int) Nand(y Int) Int { return x.And(y).Not() }

// Nor returns ^(x | y).
func (x Int) Nor(y Int) Int { return x.Or(y).Not() }

// maxBitIndex is the largest bit position whose word index and allocation
// size fit in an int.
const maxBitIndex = math.MaxInt - wordBits

// checkBitIndex panics for bit positions that cannot be addressed, as
// math/big does for negative ones.
func checkBitIndex(i uint) {
	if i > maxBitIndex {
		panic(fmt.Sprintf("bigint: bit index %d out of range", i))
	}
}

// bitMask returns 1 << i.
func bitMask(i uint) Int {
	checkBitIndex(i)
	var b builder
	b.allocate(int(i) + 1)
	b.mag.setBitInPlace(int(i))
	return b.freeze()
}

// TestBit reports whether bit i of x is set. Negative values are read in
// two's complement, where -|x| == ^(|x|-1).
func (x Int) TestBit(i uint) bool {
	if i > maxBitIndex {
		return x.sign < 0
	}
	if x.sign >= 0 {
		return x.mag.bit(int(i)) == 1
	}
	return x.mag.sub(nat{1}).bit(int(i)) == 0
}

// SetBit returns x with bit i set. SetBit, ClearBit and FlipBit panic
// when i exceeds math.MaxInt-16.
func (x Int) SetBit(i uint) Int {
	checkBitIndex(i)
	if x.sign < 0 {
		return x.Or(bitMask(i))
	}
	b := builder{mag: x.mag.clone()}
	b.allocate(int(i) + 1)
	b.mag.setBitInPlace(int(i))
	return b.freeze()
}

// ClearBit returns x with bit i cleared.
func (x Int) ClearBit(i uint) Int {
	checkBitIndex(i)
	if x.sign < 0 {
		return x.AndNot(bitMask(i))
	}
	if x.mag.bit(int(i)) == 0 {
		return x
	}
	b := builder{mag: x.mag.clone()}
	b.mag[i/wordBits] &^= 1 << (i % wordBits)
	return b.freeze()
}

// FlipBit returns x with bit i inverted.
func (x Int) FlipBit(i uint) Int {
	checkBitIndex(i)
	if x.sign < 0 {
		return x.Xor(bitMask(i))
	}
	b := builder{mag: x.mag.clone()}
	b.allocate(int(i) + 1)
	b.mag[i/wordBits] ^= 1 << (i % wordBits)
	return b.freeze()
}

// Shl returns x << n, that is x * 2^n.
func (x Int) Shl(n uint) Int {
	return makeInt(x.sign < 0, x.mag.shl(n))
}

// Shr returns x >> n as an arithmetic shift: the result is floor(x / 2^n),
// so negative values round toward negative infinity and -1 >> n == -1.
func (x Int) Shr(n uint) Int {
	if x.sign >= 0 {
		return makeInt(false, x.mag.shr(n))
	}
	m := x.mag.sub(nat{1}).shr(n)
	return makeInt(true, m.add(nat{1}))
}
