package bigint

// Pow returns x^e for e >= 0 by square-and-multiply, consuming the exponent
// bits from least to most significant. There is no modulus, so the result
// grows without bound. A negative exponent returns ErrDomain.
func (x Int) Pow(e Int) (Int, error) {
	if e.sign < 0 {
		return Int{}, domainError("negative exponent %s", e)
	}
	acc, base := One(), x
	n := e.BitLen()
	for i := 0; i < n; i++ {
		if e.mag.bit(i) == 1 {
			acc = acc.Mul(base)
		}
		if i+1 < n {
			base = base.Mul(base)
		}
	}
	return acc, nil
}

// ModPow returns x^e mod m, reducing with Euclidean mod after every squaring
// and multiplication so intermediate values stay below m^2. It returns
// ErrInvalidModulus for m <= 0 and ErrDomain for e < 0.
func (x Int) ModPow(e, m Int) (Int, error) {
	if m.sign <= 0 {
		return Int{}, ErrInvalidModulus
	}
	if e.sign < 0 {
		return Int{}, domainError("negative exponent %s", e)
	}
	return x.modPow(e, m), nil
}

func (x Int) modPow(e, m Int) Int {
	if m.mag.cmp(nat{1}) == 0 {
		return Int{}
	}
	acc, base := One(), x.mod(m)
	n := e.BitLen()
	for i := 0; i < n; i++ {
		if e.mag.bit(i) == 1 {
			acc = acc.Mul(base).mod(m)
		}
		if i+1 < n {
			base = base.Mul(base).mod(m)
		}
	}
	return acc
}

// GCD returns the greatest common divisor of |x| and |y| using Euclid's
// algorithm. GCD(0, 0) is 0.
func GCD(x, y Int) Int {
	a, b := x.mag, y.mag
	for len(b) != 0 {
		_, r := a.divmod(b)
		a, b = b, r
	}
	return makeInt(false, a)
}

// LCM returns the least common multiple of |x| and |y|, or 0 if either is
// zero.
func LCM(x, y Int) Int {
	if x.sign == 0 || y.sign == 0 {
		return Int{}
	}
	g := GCD(x, y)
	q, _ := x.mag.divmod(g.mag)
	return makeInt(false, q.mul(y.mag))
}

// ExtGCD runs the iterative extended Euclidean algorithm and returns x, y
// and g such that a*x + b*y = g = GCD(a, b).
//
// The coefficient pairs are updated with the truncated quotient of each
// step until the remainder reaches zero.
func ExtGCD(a, b Int) (x, y, g Int) {
	oldR, r := a, b
	oldS, s := One(), Int{}
	oldT, t := Int{}, One()
	for r.sign != 0 {
		qm, rm := oldR.mag.divmod(r.mag)
		q := makeInt(oldR.sign != r.sign, qm)
		oldR, r = r, makeInt(oldR.sign < 0, rm)
		oldS, s = s, oldS.Sub(q.Mul(s))
		oldT, t = t, oldT.Sub(q.Mul(t))
	}
	if oldR.sign < 0 {
		return oldS.Neg(), oldT.Neg(), oldR.Neg()
	}
	return oldS, oldT, oldR
}

// ModInverse returns the y in [0, m) with x*y ≡ 1 (mod m). It returns
// ErrInvalidModulus for m <= 0 and ErrNotInvertible when GCD(x, m) != 1.
func (x Int) ModInverse(m Int) (Int, error) {
	if m.sign <= 0 {
		return Int{}, ErrInvalidModulus
	}
	inv, _, g := ExtGCD(x, m)
	if !g.Equal(One()) {
		return Int{}, ErrNotInvertible
	}
	return inv.mod(m), nil
}

// Sqrt returns floor(sqrt(x)). It returns ErrDomain for negative x.
func (x Int) Sqrt() (Int, error) {
	if x.sign < 0 {
		return Int{}, domainError("square root of negative value %s", x)
	}
	return makeInt(false, x.mag.sqrt()), nil
}

// Factorial returns n! for n >= 0 and ErrDomain otherwise.
func Factorial(n Int) (Int, error) {
	if n.sign < 0 {
		return Int{}, domainError("factorial of negative value %s", n)
	}
	acc := One()
	for i := NewInt(2); i.Cmp(n) <= 0; i = i.Add(One()) {
		acc = acc.Mul(i)
	}
	return acc, nil
}
