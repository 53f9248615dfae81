package bigint

import "math/big"

// natFromBytes interprets b as a big-endian unsigned magnitude.
func natFromBytes(b []byte) nat {
	z := make(nat, (len(b)+1)/2)
	for i := 0; i < len(b); i++ {
		shift := uint(i%2) * 8
		z[i/2] |= word(b[len(b)-1-i]) << shift
	}
	return z.norm()
}

// Bytes returns |x| as a big-endian byte slice without leading zeros.
func (x Int) Bytes() []byte {
	n := (x.BitLen() + 7) / 8
	buf := make([]byte, n)
	for i := 0; i < n; i++ {
		w := x.mag[i/2]
		buf[n-1-i] = byte(w >> (uint(i%2) * 8))
	}
	return buf
}

// FromBytes returns the non-negative Int whose big-endian magnitude is b.
func FromBytes(b []byte) Int {
	return makeInt(false, natFromBytes(b))
}

// FromBig converts a math/big integer. A nil pointer is zero.
func FromBig(v *big.Int) Int {
	if v == nil {
		return Int{}
	}
	return makeInt(v.Sign() < 0, natFromBytes(v.Bytes()))
}

// Big returns x as a newly allocated math/big integer.
func (x Int) Big() *big.Int {
	v := new(big.Int).SetBytes(x.Bytes())
	if x.sign < 0 {
		v.Neg(v)
	}
	return v
}
