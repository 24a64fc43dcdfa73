package calc

import (
	"fmt"

	"fortio.org/safecast"

	"bigcalc/internal/bignum"
)

type operator struct {
	arity int
	help  string
	fn    func(m *Machine, args []bignum.BigInt) ([]bignum.BigInt, error)
}

// Operator describes one operator for help output.
type Operator struct {
	Name  string
	Arity int
	Help  string
}

var operators map[string]operator

func init() {
	operators = map[string]operator{
		"+": {2, "a b -> a+b", binary(func(a, b bignum.BigInt) (bignum.BigInt, error) { return a.Add(b), nil })},
		"-": {2, "a b -> a-b", binary(func(a, b bignum.BigInt) (bignum.BigInt, error) { return a.Sub(b), nil })},
		"*": {2, "a b -> a*b", binary(func(a, b bignum.BigInt) (bignum.BigInt, error) { return a.Mul(b), nil })},
		"/": {2, "a b -> a/b truncated toward zero", binary(bignum.BigInt.Quo)},
		"%": {2, "a b -> remainder with the sign of a", binary(bignum.BigInt.Rem)},
		"^": {2, "a b -> a to the power b", opPower},
		"max": {2, "a b -> larger of a and b", binary(func(a, b bignum.BigInt) (bignum.BigInt, error) {
			if a.Less(b) {
				return b, nil
			}
			return a, nil
		})},
		"min": {2, "a b -> smaller of a and b", binary(func(a, b bignum.BigInt) (bignum.BigInt, error) {
			if b.Less(a) {
				return b, nil
			}
			return a, nil
		})},
		"cmp": {2, "a b -> -1, 0 or 1", binary(func(a, b bignum.BigInt) (bignum.BigInt, error) {
			return bignum.New(int64(a.Cmp(b))), nil
		})},

		"neg":     {1, "a -> -a", unary(func(a bignum.BigInt) (bignum.BigInt, error) { return a.Neg(), nil })},
		"abs":     {1, "a -> |a|", unary(func(a bignum.BigInt) (bignum.BigInt, error) { return a.Abs(), nil })},
		"sqrt":    {1, "a -> floor(sqrt(a))", unary(bignum.Sqrt)},
		"inc":     {1, "a -> a+1", unary(func(a bignum.BigInt) (bignum.BigInt, error) { return *a.Inc(), nil })},
		"dec":     {1, "a -> a-1", unary(func(a bignum.BigInt) (bignum.BigInt, error) { return *a.Dec(), nil })},
		"!":       {1, "n -> n!", indexed(bignum.Factorial)},
		"fib":     {1, "n -> nth Fibonacci number", indexed(bignum.Fibonacci)},
		"catalan": {1, "n -> nth Catalan number", indexed(bignum.Catalan)},

		"dup": {1, "a -> a a", func(_ *Machine, args []bignum.BigInt) ([]bignum.BigInt, error) {
			return []bignum.BigInt{args[0], args[0]}, nil
		}},
		"swap": {2, "a b -> b a", func(_ *Machine, args []bignum.BigInt) ([]bignum.BigInt, error) {
			return []bignum.BigInt{args[1], args[0]}, nil
		}},
		"drop": {1, "a ->", func(*Machine, []bignum.BigInt) ([]bignum.BigInt, error) {
			return nil, nil
		}},
	}
	operators["fact"] = operators["!"]
	operators["pow"] = operators["^"]
}

func binary(f func(a, b bignum.BigInt) (bignum.BigInt, error)) func(*Machine, []bignum.BigInt) ([]bignum.BigInt, error) {
	return func(_ *Machine, args []bignum.BigInt) ([]bignum.BigInt, error) {
		v, err := f(args[0], args[1])
		if err != nil {
			return nil, err
		}
		return []bignum.BigInt{v}, nil
	}
}

func unary(f func(a bignum.BigInt) (bignum.BigInt, error)) func(*Machine, []bignum.BigInt) ([]bignum.BigInt, error) {
	return func(_ *Machine, args []bignum.BigInt) ([]bignum.BigInt, error) {
		v, err := f(args[0])
		if err != nil {
			return nil, err
		}
		return []bignum.BigInt{v}, nil
	}
}

// indexed adapts a sequence function taking a machine-sized index.
func indexed(f func(n int) (bignum.BigInt, error)) func(*Machine, []bignum.BigInt) ([]bignum.BigInt, error) {
	return func(m *Machine, args []bignum.BigInt) ([]bignum.BigInt, error) {
		n, err := m.argument(args[0])
		if err != nil {
			return nil, err
		}
		v, err := f(n)
		if err != nil {
			return nil, err
		}
		return []bignum.BigInt{v}, nil
	}
}

func opPower(m *Machine, args []bignum.BigInt) ([]bignum.BigInt, error) {
	if !args[1].IsNeg() {
		if _, err := m.argument(args[1]); err != nil {
			return nil, err
		}
	}
	v, err := bignum.Power(args[0], args[1])
	if err != nil {
		return nil, err
	}
	return []bignum.BigInt{v}, nil
}

// argument converts x to an int bounded by m.MaxArgument.
func (m *Machine) argument(x bignum.BigInt) (int, error) {
	return Argument(x, m.MaxArgument)
}

// Argument converts x to an int no larger than limit. A limit of 0 or less
// disables the bound. Negative values pass through so the callee reports
// ErrNegativeArgument.
func Argument(x bignum.BigInt, limit int) (int, error) {
	v, err := x.Int64()
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrArgumentTooLarge, x)
	}
	n, err := safecast.Conv[int](v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrArgumentTooLarge, x)
	}
	if limit > 0 && n > limit {
		return 0, fmt.Errorf("%w: %d exceeds %d", ErrArgumentTooLarge, n, limit)
	}
	return n, nil
}
