package bignum

import "fmt"

// MustParse is like [Parse] but panics if the string cannot be parsed.
func MustParse(s string) BigInt {
	v, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}
	return v
}

// MustQuo is like [BigInt.Quo] but panics on division by zero.
func (x BigInt) MustQuo(y BigInt) BigInt {
	q, err := x.Quo(y)
	if err != nil {
		panic(fmt.Sprintf("MustQuo(%v) failed: %v", y, err))
	}
	return q
}

// MustRem is like [BigInt.Rem] but panics on division by zero.
func (x BigInt) MustRem(y BigInt) BigInt {
	r, err := x.Rem(y)
	if err != nil {
		panic(fmt.Sprintf("MustRem(%v) failed: %v", y, err))
	}
	return r
}
