package bignum

// Cmp compares x and y and returns -1, 0 or 1.
func (x BigInt) Cmp(y BigInt) int {
	xn, yn := x.IsNeg(), y.IsNeg()
	if xn != yn {
		if xn {
			return -1
		}
		return 1
	}
	cmp := compareMagnitude(trimMagnitude(x.mag()), trimMagnitude(y.mag()))
	if xn {
		return -cmp
	}
	return cmp
}

// Equal reports whether x == y.
func (x BigInt) Equal(y BigInt) bool { return x.Cmp(y) == 0 }

// Less reports whether x < y.
func (x BigInt) Less(y BigInt) bool { return x.Cmp(y) < 0 }

// Compare is Cmp as a free function, suitable for slices.SortFunc.
func Compare(a, b BigInt) int { return a.Cmp(b) }

// AddAssign sets z to z+y and returns z.
func (z *BigInt) AddAssign(y BigInt) *BigInt {
	a, b := trimMagnitude(z.mag()), trimMagnitude(y.mag())
	zn, yn := z.IsNeg(), y.IsNeg()
	z.neg = zn
	switch {
	case zn == yn:
		z.chunks = addMagnitude(a, b)
	case compareMagnitude(a, b) >= 0:
		z.chunks = subtractMagnitude(a, b)
	default:
		z.chunks = subtractMagnitude(b, a)
		z.neg = yn
	}
	z.normalize()
	return z
}

// SubAssign sets z to z-y and returns z.
func (z *BigInt) SubAssign(y BigInt) *BigInt {
	a, b := trimMagnitude(z.mag()), trimMagnitude(y.mag())
	zn, yn := z.IsNeg(), y.IsNeg()
	z.neg = zn
	switch {
	case zn != yn:
		z.chunks = addMagnitude(a, b)
	case compareMagnitude(a, b) >= 0:
		z.chunks = subtractMagnitude(a, b)
	default:
		// |z| < |y| with equal signs: the difference takes the opposite sign.
		z.chunks = subtractMagnitude(b, a)
		z.neg = !zn
	}
	z.normalize()
	return z
}

// MulAssign sets z to z*y and returns z.
func (z *BigInt) MulAssign(y BigInt) *BigInt {
	neg := z.IsNeg() != y.IsNeg()
	z.chunks = multiplyMagnitude(trimMagnitude(z.mag()), trimMagnitude(y.mag()))
	z.neg = neg
	z.normalize()
	return z
}

// QuoAssign sets z to the truncated quotient z/y.
// On error z is left unchanged.
func (z *BigInt) QuoAssign(y BigInt) error {
	q, _, err := z.QuoRem(y)
	if err != nil {
		return err
	}
	*z = q
	return nil
}

// RemAssign sets z to the remainder of z/y, which carries the sign of z.
// On error z is left unchanged.
func (z *BigInt) RemAssign(y BigInt) error {
	_, r, err := z.QuoRem(y)
	if err != nil {
		return err
	}
	*z = r
	return nil
}

// Add returns x+y.
func (x BigInt) Add(y BigInt) BigInt {
	z := x
	return *z.AddAssign(y)
}

// Sub returns x-y.
func (x BigInt) Sub(y BigInt) BigInt {
	z := x
	return *z.SubAssign(y)
}

// Mul returns x*y.
func (x BigInt) Mul(y BigInt) BigInt {
	z := x
	return *z.MulAssign(y)
}

// Quo returns the quotient x/y truncated toward zero.
func (x BigInt) Quo(y BigInt) (BigInt, error) {
	q, _, err := x.QuoRem(y)
	return q, err
}

// Rem returns the remainder of x/y. A non-zero remainder has the sign of x.
func (x BigInt) Rem(y BigInt) (BigInt, error) {
	_, r, err := x.QuoRem(y)
	return r, err
}

// QuoRem returns the quotient and remainder of x/y from a single long
// division pass, so that x == q*y + r and |r| < |y|.
func (x BigInt) QuoRem(y BigInt) (q, r BigInt, err error) {
	if y.IsZero() {
		return BigInt{}, BigInt{}, ErrDivisionByZero
	}
	qm, rm := divideMagnitude(trimMagnitude(x.mag()), trimMagnitude(y.mag()))
	q = BigInt{neg: x.IsNeg() != y.IsNeg(), chunks: qm}
	q.normalize()
	r = BigInt{neg: x.IsNeg(), chunks: rm}
	r.normalize()
	return q, r, nil
}
