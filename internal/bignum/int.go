package bignum

import (
	"errors"
	"fmt"
	"math/bits"

	"fortio.org/safecast"
)

const (
	// ChunkBase is the radix of a single chunk.
	ChunkBase = 1_000_000_000
	// ChunkDigits is the number of decimal digits held by one chunk.
	ChunkDigits = 9
)

var (
	// ErrEmptyInput indicates an attempt to parse an empty string.
	ErrEmptyInput = errors.New("empty input")
	// ErrInvalidFormat indicates a string that is not an optionally signed run of decimal digits.
	ErrInvalidFormat = errors.New("invalid numeric format")
	// ErrDivisionByZero indicates an attempt to divide by zero.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrNegativeArgument indicates a negative input to factorial, power or square root.
	ErrNegativeArgument = errors.New("negative argument")
	// ErrIndexOutOfRange indicates a chunk index outside [0, Len()).
	ErrIndexOutOfRange = errors.New("chunk index out of range")
	// ErrOutOfInt64Range indicates a value, or a value derived from an
	// argument, that does not fit into a machine integer.
	ErrOutOfInt64Range = errors.New("value out of int64 range")
)

// BigInt represents an arbitrary-precision signed integer.
//
// The zero value is the number 0. Values returned by this package are always
// in canonical form: no superfluous high-order zero chunks and no negative zero.
// Mutating methods install a freshly allocated chunk slice, so a plain Go copy
// of a BigInt is never altered through another copy.
type BigInt struct {
	neg bool
	// chunks are base-10^9 little-endian (chunks[0] is least significant).
	//
	// Canonical zero is neg=false and chunks=[0]. A nil slice reads as zero.
	chunks []uint32
}

// New creates a BigInt from an int64.
func New(v int64) BigInt {
	if v == 0 {
		return BigInt{chunks: []uint32{0}}
	}
	neg := v < 0
	mag := uint64(v) //nolint:gosec // G115: two's complement reinterpretation, negated below.
	if neg {
		mag = -mag
	}
	chunks := make([]uint32, 0, 3)
	for mag > 0 {
		chunks = append(chunks, uint32(mag%ChunkBase)) //nolint:gosec // G115: remainder is below ChunkBase.
		mag /= ChunkBase
	}
	return BigInt{neg: neg, chunks: chunks}
}

// Clone returns a deep copy of x.
func (x BigInt) Clone() BigInt {
	mag := x.mag()
	out := make([]uint32, len(mag))
	copy(out, mag)
	return BigInt{neg: x.neg, chunks: out}
}

// normalize strips high-order zero chunks down to a single chunk and
// clears the sign of zero.
func (z *BigInt) normalize() {
	z.chunks = trimMagnitude(z.chunks)
	if len(z.chunks) == 0 {
		z.chunks = []uint32{0}
	}
	if len(z.chunks) == 1 && z.chunks[0] == 0 {
		z.neg = false
	}
}

// mag returns the magnitude for reading. The result must not be modified.
func (x BigInt) mag() []uint32 {
	if len(x.chunks) == 0 {
		return []uint32{0}
	}
	return x.chunks
}

// Len returns the number of chunks in the magnitude.
func (x BigInt) Len() int { return len(x.mag()) }

// IsNeg reports whether x is strictly negative.
func (x BigInt) IsNeg() bool { return x.neg && !x.IsZero() }

// IsZero reports whether x is zero.
func (x BigInt) IsZero() bool {
	return isZeroMagnitude(x.mag())
}

// Sign returns -1, 0 or 1 depending on the sign of x.
func (x BigInt) Sign() int {
	switch {
	case x.IsZero():
		return 0
	case x.neg:
		return -1
	default:
		return 1
	}
}

// Chunk returns the i-th base-10^9 chunk, 0 being the least significant.
func (x BigInt) Chunk(i int) (uint32, error) {
	mag := x.mag()
	if i < 0 || i >= len(mag) {
		return 0, fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, i, len(mag))
	}
	return mag[i], nil
}

// Abs returns the absolute value of x.
func (x BigInt) Abs() BigInt {
	out := x.Clone()
	out.neg = false
	return out
}

// Neg returns -x.
func (x BigInt) Neg() BigInt {
	out := x.Clone()
	out.neg = !out.neg
	out.normalize()
	return out
}

// Int64 converts x to int64 if it fits.
func (x BigInt) Int64() (int64, error) {
	mag := trimMagnitude(x.mag())
	var u uint64
	for i := len(mag) - 1; i >= 0; i-- {
		hi, lo := bits.Mul64(u, ChunkBase)
		if hi != 0 {
			return 0, fmt.Errorf("%w: %s", ErrOutOfInt64Range, x)
		}
		sum, carry := bits.Add64(lo, uint64(mag[i]), 0)
		if carry != 0 {
			return 0, fmt.Errorf("%w: %s", ErrOutOfInt64Range, x)
		}
		u = sum
	}
	if x.IsNeg() {
		// Negative: allow magnitude up to 2^63.
		if u == 1<<63 {
			return -1 << 63, nil
		}
		v, err := safecast.Conv[int64](u)
		if err != nil {
			return 0, fmt.Errorf("%w: %s", ErrOutOfInt64Range, x)
		}
		return -v, nil
	}
	v, err := safecast.Conv[int64](u)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrOutOfInt64Range, x)
	}
	return v, nil
}

// Inc adds one to z and returns z.
func (z *BigInt) Inc() *BigInt {
	return z.AddAssign(New(1))
}

// PostInc adds one to z and returns the value z held before.
func (z *BigInt) PostInc() BigInt {
	prev := z.Clone()
	z.Inc()
	return prev
}

// Dec subtracts one from z and returns z.
func (z *BigInt) Dec() *BigInt {
	return z.SubAssign(New(1))
}

// PostDec subtracts one from z and returns the value z held before.
func (z *BigInt) PostDec() BigInt {
	prev := z.Clone()
	z.Dec()
	return prev
}
