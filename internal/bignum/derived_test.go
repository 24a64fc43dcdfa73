package bignum_test

import (
	"errors"
	"math"
	"testing"

	"bigcalc/internal/bignum"
)

func TestFactorial(t *testing.T) {
	cases := []struct {
		n    int
		want string
	}{
		{0, "1"}, {1, "1"}, {2, "2"}, {3, "6"}, {4, "24"}, {5, "120"},
		{20, "2432902008176640000"},
		{25, "15511210043330985984000000"},
		{30, "265252859812191058636308480000000"},
	}
	for _, tc := range cases {
		got, err := bignum.Factorial(tc.n)
		if err != nil || got.String() != tc.want {
			t.Errorf("Factorial(%d) = %s, %v; want %s", tc.n, got, err, tc.want)
		}
	}
	if _, err := bignum.Factorial(-1); !errors.Is(err, bignum.ErrNegativeArgument) {
		t.Errorf("Factorial(-1) error = %v", err)
	}
}

func TestPower(t *testing.T) {
	cases := []struct {
		base, exp, want string
	}{
		{"2", "10", "1024"},
		{"2", "0", "1"},
		{"0", "0", "1"},
		{"0", "10", "0"},
		{"-3", "3", "-27"},
		{"-3", "4", "81"},
		{"10", "30", "1000000000000000000000000000000"},
		{"1000000000", "3", "1000000000000000000000000000"},
	}
	for _, tc := range cases {
		got, err := bignum.Power(bignum.MustParse(tc.base), bignum.MustParse(tc.exp))
		if err != nil || got.String() != tc.want {
			t.Errorf("Power(%s, %s) = %s, %v; want %s", tc.base, tc.exp, got, err, tc.want)
		}
	}
	if _, err := bignum.Power(bignum.New(2), bignum.New(-1)); !errors.Is(err, bignum.ErrNegativeArgument) {
		t.Errorf("Power(2, -1) error = %v", err)
	}
}

func TestSqrt(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"0", "0"}, {"1", "1"}, {"4", "2"}, {"9", "3"}, {"16", "4"}, {"25", "5"},
		{"100", "10"}, {"10000", "100"},
		{"2", "1"}, {"3", "1"}, {"10", "3"}, {"26", "5"}, {"101", "10"}, {"9999", "99"},
		{"1000000000000", "1000000"},
		{"1000000000001", "1000000"},
		{"999999999999", "999999"},
		{"152415787532388367504942236884722755800955129", "12345678901234567890123"},
	}
	for _, tc := range cases {
		got, err := bignum.Sqrt(bignum.MustParse(tc.in))
		if err != nil || got.String() != tc.want {
			t.Errorf("Sqrt(%s) = %s, %v; want %s", tc.in, got, err, tc.want)
		}
	}
	for _, s := range []string{"-1", "-100"} {
		if _, err := bignum.Sqrt(bignum.MustParse(s)); !errors.Is(err, bignum.ErrNegativeArgument) {
			t.Errorf("Sqrt(%s) error = %v", s, err)
		}
	}
}

func TestCatalan(t *testing.T) {
	want := []string{"1", "1", "2", "5", "14", "42", "132", "429", "1430", "4862", "16796"}
	for n, w := range want {
		got, err := bignum.Catalan(n)
		if err != nil || got.String() != w {
			t.Errorf("Catalan(%d) = %s, %v; want %s", n, got, err, w)
		}
	}
	got, err := bignum.Catalan(30)
	if err != nil || got.String() != "3814986502092304" {
		t.Errorf("Catalan(30) = %s, %v", got, err)
	}
	if _, err := bignum.Catalan(-1); !errors.Is(err, bignum.ErrNegativeArgument) {
		t.Errorf("Catalan(-1) error = %v", err)
	}
}

func TestCatalanIndexTooLarge(t *testing.T) {
	for _, n := range []int{math.MaxInt/2 + 1, math.MaxInt} {
		_, err := bignum.Catalan(n)
		if !errors.Is(err, bignum.ErrOutOfInt64Range) {
			t.Errorf("Catalan(%d) error = %v, want ErrOutOfInt64Range", n, err)
		}
		if errors.Is(err, bignum.ErrNegativeArgument) {
			t.Errorf("Catalan(%d) reported a negative argument: %v", n, err)
		}
	}
}

func TestFibonacci(t *testing.T) {
	want := []string{"0", "1", "1", "2", "3", "5", "8", "13", "21", "34", "55"}
	for n, w := range want {
		got, err := bignum.Fibonacci(n)
		if err != nil || got.String() != w {
			t.Errorf("Fibonacci(%d) = %s, %v; want %s", n, got, err, w)
		}
	}
	got, err := bignum.Fibonacci(100)
	if err != nil || got.String() != "354224848179261915075" {
		t.Errorf("Fibonacci(100) = %s, %v", got, err)
	}
	if _, err := bignum.Fibonacci(-1); !errors.Is(err, bignum.ErrNegativeArgument) {
		t.Errorf("Fibonacci(-1) error = %v", err)
	}
}
