package bignum

import (
	"fmt"
	"math"
)

// Factorial returns n!.
func Factorial(n int) (BigInt, error) {
	if n < 0 {
		return BigInt{}, fmt.Errorf("factorial: %w: %d", ErrNegativeArgument, n)
	}
	result := New(1)
	for i := 2; i <= n; i++ {
		result.MulAssign(New(int64(i)))
	}
	return result, nil
}

// Power returns base**exp by repeated multiplication. 0**0 is 1.
func Power(base, exp BigInt) (BigInt, error) {
	if exp.IsNeg() {
		return BigInt{}, fmt.Errorf("power: %w: exponent %s", ErrNegativeArgument, exp)
	}
	result := New(1)
	for i := New(0); i.Less(exp); i.Inc() {
		result.MulAssign(base)
	}
	return result, nil
}

// Sqrt returns the greatest r with r*r <= n.
func Sqrt(n BigInt) (BigInt, error) {
	if n.IsNeg() {
		return BigInt{}, fmt.Errorf("sqrt: %w: %s", ErrNegativeArgument, n)
	}
	one := New(1)
	if n.Cmp(one) <= 0 {
		return n.Clone(), nil
	}
	two := New(2)
	lo, hi := one, n.Clone()
	root := one
	for lo.Cmp(hi) <= 0 {
		mid, err := lo.Add(hi).Quo(two)
		if err != nil {
			return BigInt{}, err
		}
		if mid.Mul(mid).Cmp(n) <= 0 {
			root = mid
			lo = mid.Add(one)
		} else {
			hi = mid.Sub(one)
		}
	}
	return root, nil
}

// Catalan returns the n-th Catalan number (2n)! / ((n+1)! * n!).
func Catalan(n int) (BigInt, error) {
	if n < 0 {
		return BigInt{}, fmt.Errorf("catalan: %w: %d", ErrNegativeArgument, n)
	}
	if n > math.MaxInt/2 {
		return BigInt{}, fmt.Errorf("catalan: %w: 2*%d", ErrOutOfInt64Range, n)
	}
	num, err := Factorial(2 * n)
	if err != nil {
		return BigInt{}, err
	}
	nf, err := Factorial(n)
	if err != nil {
		return BigInt{}, err
	}
	// (n+1)! = (n+1) * n!
	den := nf.Mul(New(int64(n) + 1)).Mul(nf)
	return num.Quo(den)
}

// Fibonacci returns F(n) with F(0) = 0 and F(1) = 1.
func Fibonacci(n int) (BigInt, error) {
	if n < 0 {
		return BigInt{}, fmt.Errorf("fibonacci: %w: %d", ErrNegativeArgument, n)
	}
	a, b := New(0), New(1)
	for range n {
		a, b = b, a.Add(b)
	}
	return a, nil
}
