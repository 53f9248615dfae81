package bigint

// Add returns x + y.
//
// Operands of equal sign add their magnitudes word by word with carry. For
// differing signs the smaller magnitude is subtracted from the larger with
// borrow and the result takes the sign of the larger operand, collapsing to
// zero on exact cancellation.
func (x Int) Add(y Int) Int {
	switch {
	case x.sign == 0:
		return y
	case y.sign == 0:
		return x
	case x.sign == y.sign:
		return makeInt(x.sign < 0, x.mag.add(y.mag))
	}
	switch x.mag.cmp(y.mag) {
	case 0:
		return Int{}
	case 1:
		return makeInt(x.sign < 0, x.mag.sub(y.mag))
	}
	return makeInt(y.sign < 0, y.mag.sub(x.mag))
}

// Sub returns x - y.
func (x Int) Sub(y Int) Int { return x.Add(y.Neg()) }

// Mul returns x * y.
func (x Int) Mul(y Int) Int {
	if x.sign == 0 || y.sign == 0 {
		return Int{}
	}
	return makeInt(x.sign != y.sign, x.mag.mul(y.mag))
}

// DivRem returns the truncated quotient and remainder of x / y:
// x = q*y + r with |r| < |y|, q rounded toward zero, and r carrying the sign
// of x. It returns ErrDivideByZero when y is zero.
func (x Int) DivRem(y Int) (q, r Int, err error) {
	if y.sign == 0 {
		return Int{}, Int{}, ErrDivideByZero
	}
	if x.mag.cmp(y.mag) < 0 {
		return Int{}, x, nil
	}
	qm, rm := x.mag.divmod(y.mag)
	return makeInt(x.sign != y.sign, qm), makeInt(x.sign < 0, rm), nil
}

// Div returns the quotient of x / y rounded toward zero.
func (x Int) Div(y Int) (Int, error) {
	q, _, err := x.DivRem(y)
	return q, err
}

// Rem returns the remainder of x / y with the sign of x.
func (x Int) Rem(y Int) (Int, error) {
	_, r, err := x.DivRem(y)
	return r, err
}

// Mod returns the Euclidean remainder of x modulo m, which lies in [0, m).
// It returns ErrInvalidModulus when m is zero or negative.
func (x Int) Mod(m Int) (Int, error) {
	if m.sign <= 0 {
		return Int{}, ErrInvalidModulus
	}
	return x.mod(m), nil
}

// mod is Mod without validation, for callers that already know m > 0.
func (x Int) mod(m Int) Int {
	if x.sign >= 0 && x.mag.cmp(m.mag) < 0 {
		return x
	}
	_, rm := x.mag.divmod(m.mag)
	r := makeInt(x.sign < 0, rm)
	if r.sign < 0 {
		r = r.Add(m)
	}
	return r
}
