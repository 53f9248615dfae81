package bigint

import "math/bits"

// word is a single 16-bit digit of a magnitude. Products of two words plus
// two carries fit in a uint32, which keeps every inner loop free of
// double-word arithmetic.
type word = uint16

const (
	wordBits = 16
	wordBase = 1 << wordBits
	wordMask = wordBase - 1
)

// nat is an unsigned magnitude stored little-endian: nat[0] is the least
// significant word. A normalized nat has no most-significant zero word, and
// the empty nat is zero.
//
// Functions in this file never modify their inputs unless the name says
// InPlace; callers rely on that to share magnitudes between immutable Ints.
type nat []word

// norm trims most-significant zero words.
func (z nat) norm() nat {
	i := len(z)
	for i > 0 && z[i-1] == 0 {
		i--
	}
	return z[:i]
}

func (z nat) clone() nat {
	if len(z) == 0 {
		return nil
	}
	c := make(nat, len(z))
	copy(c, z)
	return c
}

// natFromUint64 splits v into words.
func natFromUint64(v uint64) nat {
	var z nat
	for v != 0 {
		z = append(z, word(v&wordMask))
		v >>= wordBits
	}
	return z
}

// low64 returns the least significant 64 bits of x.
func (x nat) low64() uint64 {
	var v uint64
	for i := len(x) - 1; i >= 0; i-- {
		if i < 64/wordBits {
			v = v<<wordBits | uint64(x[i])
		}
	}
	return v
}

// cmp compares two normalized magnitudes, most significant word first.
func (x nat) cmp(y nat) int {
	switch {
	case len(x) < len(y):
		return -1
	case len(x) > len(y):
		return 1
	}
	for i := len(x) - 1; i >= 0; i-- {
		switch {
		case x[i] < y[i]:
			return -1
		case x[i] > y[i]:
			return 1
		}
	}
	return 0
}

func (x nat) bitLen() int {
	if len(x) == 0 {
		return 0
	}
	top := len(x) - 1
	return top*wordBits + bits.Len16(x[top])
}

// trailingZeroBits returns the number of consecutive zero bits starting at
// bit 0. It returns 0 for zero.
func (x nat) trailingZeroBits() int {
	for i, w := range x {
		if w != 0 {
			return i*wordBits + bits.TrailingZeros16(w)
		}
	}
	return 0
}

func (x nat) bit(i int) uint {
	w := i / wordBits
	if i < 0 || w >= len(x) {
		return 0
	}
	return uint(x[w]>>(uint(i)%wordBits)) & 1
}

// setBitInPlace sets bit i of z, which must already be large enough.
func (z nat) setBitInPlace(i int) {
	z[i/wordBits] |= 1 << (uint(i) % wordBits)
}

// add returns x + y.
func (x nat) add(y nat) nat {
	if len(x) < len(y) {
		x, y = y, x
	}
	z := make(nat, len(x)+1)
	var carry uint32
	for i := range x {
		s := uint32(x[i]) + carry
		if i < len(y) {
			s += uint32(y[i])
		}
		z[i] = word(s)
		carry = s >> wordBits
	}
	z[len(x)] = word(carry)
	return z.norm()
}

// sub returns x - y. The caller guarantees x >= y.
func (x nat) sub(y nat) nat {
	z := x.clone()
	return z.subInPlace(y)
}

// subInPlace computes z -= y with borrow and returns the normalized result,
// which aliases z. The caller guarantees z >= y.
func (z nat) subInPlace(y nat) nat {
	var borrow uint32
	for i := range z {
		d := uint32(z[i]) - borrow
		if i < len(y) {
			d -= uint32(y[i])
		} else if borrow == 0 {
			break
		}
		z[i] = word(d)
		borrow = (d >> wordBits) & 1
	}
	return z.norm()
}

// addWordInPlace adds a single word to z, growing it on carry-out.
func (z nat) addWordInPlace(w word) nat {
	carry := uint32(w)
	for i := 0; i < len(z) && carry != 0; i++ {
		s := uint32(z[i]) + carry
		z[i] = word(s)
		carry = s >> wordBits
	}
	if carry != 0 {
		z = append(z, word(carry))
	}
	return z
}

// mul returns x * y using schoolbook multiplication: each word of x
// multiplies a word-shifted row of y that is accumulated into z.
func (x nat) mul(y nat) nat {
	if len(x) == 0 || len(y) == 0 {
		return nil
	}
	z := make(nat, len(x)+len(y))
	for i, xi := range x {
		if xi == 0 {
			continue
		}
		var carry uint32
		for j, yj := range y {
			t := uint32(xi)*uint32(yj) + uint32(z[i+j]) + carry
			z[i+j] = word(t)
			carry = t >> wordBits
		}
		z[i+len(y)] = word(carry)
	}
	return z.norm()
}

// mulWordAdd returns x*m + a.
func (x nat) mulWordAdd(m, a word) nat {
	z := make(nat, len(x)+1)
	carry := uint32(a)
	for i, xi := range x {
		t := uint32(xi)*uint32(m) + carry
		z[i] = word(t)
		carry = t >> wordBits
	}
	z[len(x)] = word(carry)
	return z.norm()
}

// divWord returns x / d and x % d for a single non-zero word d.
func (x nat) divWord(d word) (nat, word) {
	q := make(nat, len(x))
	var r uint32
	for i := len(x) - 1; i >= 0; i-- {
		cur := r<<wordBits | uint32(x[i])
		q[i] = word(cur / uint32(d))
		r = cur % uint32(d)
	}
	return q.norm(), word(r)
}

// shl returns x << n.
func (x nat) shl(n uint) nat {
	if len(x) == 0 {
		return nil
	}
	ws := int(n / wordBits)
	bs := n % wordBits
	z := make(nat, len(x)+ws+1)
	if bs == 0 {
		copy(z[ws:], x)
		return z.norm()
	}
	var carry word
	for i, w := range x {
		z[i+ws] = w<<bs | carry
		carry = w >> (wordBits - bs)
	}
	z[len(x)+ws] = carry
	return z.norm()
}

// shr returns x >> n.
func (x nat) shr(n uint) nat {
	ws := int(n / wordBits)
	if ws >= len(x) {
		return nil
	}
	bs := n % wordBits
	z := make(nat, len(x)-ws)
	if bs == 0 {
		copy(z, x[ws:])
		return z.norm()
	}
	for i := range z {
		w := x[i+ws] >> bs
		if i+ws+1 < len(x) {
			w |= x[i+ws+1] << (wordBits - bs)
		}
		z[i] = w
	}
	return z.norm()
}

// shr1InPlace shifts z right by one bit and returns the normalized result.
func (z nat) shr1InPlace() nat {
	for i := 0; i < len(z); i++ {
		z[i] >>= 1
		if i+1 < len(z) {
			z[i] |= z[i+1] << (wordBits - 1)
		}
	}
	return z.norm()
}

// divmod returns the quotient and remainder of x / y for y != 0.
//
// Multi-word divisors use binary long division: y is shifted left until its
// bit length matches x, then for each bit position from high to low the
// shifted divisor is subtracted from the running remainder whenever it fits,
// setting the matching quotient bit, and the divisor moves right one bit.
func (x nat) divmod(y nat) (q, r nat) {
	if len(y) == 0 {
		panic("bigint: nat division by zero")
	}
	if x.cmp(y) < 0 {
		return nil, x.clone()
	}
	if len(y) == 1 {
		q, rw := x.divWord(y[0])
		if rw == 0 {
			return q, nil
		}
		return q, nat{rw}
	}

	shift := x.bitLen() - y.bitLen()
	r = x.clone()
	d := y.shl(uint(shift))
	q = make(nat, shift/wordBits+1)
	for i := shift; i >= 0; i-- {
		if r.cmp(d) >= 0 {
			r = r.subInPlace(d)
			q.setBitInPlace(i)
		}
		d = d.shr1InPlace()
	}
	return q.norm(), r.norm()
}

// sqrt returns floor(sqrt(x)) using Newton's iteration started from a power
// of two that is known to be at least the root.
func (x nat) sqrt() nat {
	if len(x) == 0 {
		return nil
	}
	z := nat{1}.shl(uint(x.bitLen()+1) / 2)
	for {
		q, _ := x.divmod(z)
		next := z.add(q).shr(1)
		if next.cmp(z) >= 0 {
			return z
		}
		z = next
	}
}
