// Package bignum implements arbitrary-precision signed integers.
//
// A BigInt stores its magnitude as little-endian chunks in base 10^9, which
// makes decimal conversion a matter of formatting each chunk. Arithmetic is
// schoolbook: linear addition and subtraction, quadratic multiplication, and
// long division that finds each quotient chunk by binary search.
//
// BigInt values behave like numbers and are passed by value. Binary
// operations come in two flavours:
//
//	c := a.Add(b)      // returns a new value
//	a.AddAssign(b)     // updates a in place
//
// Division reports ErrDivisionByZero instead of panicking; the Must helpers
// panic for callers that have already ruled it out.
//
// Reader reads whitespace-separated values from a stream with a sticky
// failure flag, for interactive and batch input.
package bignum
