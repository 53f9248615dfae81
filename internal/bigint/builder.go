package bigint

// builder is the private mutable counterpart of Int. Operations assemble a
// result in a builder, growing or trimming its words as needed, and publish
// it through freeze, which is the only place an Int is constructed from raw
// parts. A builder must own its words; it never wraps a slice that belongs
// to a published Int.
type builder struct {
	neg bool
	mag nat
}

// allocate grows the magnitude so it can hold at least bitLength bits. New
// words are zero.
func (b *builder) allocate(bitLength int) {
	need := (bitLength + wordBits - 1) / wordBits
	if need <= len(b.mag) {
		return
	}
	if need <= cap(b.mag) {
		old := len(b.mag)
		b.mag = b.mag[:need]
		clear(b.mag[old:])
		return
	}
	grown := make(nat, need)
	copy(grown, b.mag)
	b.mag = grown
}

// normalize trims most-significant zero words and clears the sign of an
// empty magnitude.
func (b *builder) normalize() {
	b.mag = b.mag.norm()
	if len(b.mag) == 0 {
		b.mag = nil
		b.neg = false
	}
}

// freeze normalizes the builder and returns the resulting Int. The builder
// must not be used afterwards.
func (b *builder) freeze() Int {
	b.normalize()
	if len(b.mag) == 0 {
		return Int{}
	}
	sign := int8(1)
	if b.neg {
		sign = -1
	}
	return Int{sign: sign, mag: b.mag}
}

// makeInt publishes a magnitude with the given negativity. Nothing may
// mutate mag after the call.
func makeInt(neg bool, mag nat) Int {
	b := builder{neg: neg, mag: mag}
	return b.freeze()
}
