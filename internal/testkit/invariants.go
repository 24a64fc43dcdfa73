package testkit

import (
	"fmt"
	"strings"

	"fortio.org/safecast"

	"bigcalc/internal/bignum"
)

// CheckBigIntInvariants runs the canonical-form invariants on a value:
// 1) the magnitude has at least one chunk
// 2) every chunk is below the chunk base
// 3) the most significant chunk is non-zero unless the value is the single chunk zero
// 4) the sign agrees with the decimal form and zero prints as "0"
// 5) the decimal form has as many digits as the chunk layout implies
func CheckBigIntInvariants(x bignum.BigInt) error {
	n := x.Len()
	if n < 1 {
		return fmt.Errorf("empty magnitude")
	}
	for i := range n {
		c, err := x.Chunk(i)
		if err != nil {
			return fmt.Errorf("chunk %d: %w", i, err)
		}
		if c >= bignum.ChunkBase {
			return fmt.Errorf("chunk %d out of range: %d", i, c)
		}
	}
	top, err := x.Chunk(n - 1)
	if err != nil {
		return fmt.Errorf("top chunk: %w", err)
	}
	if n > 1 && top == 0 {
		return fmt.Errorf("superfluous high-order zero chunk (len %d)", n)
	}
	text := x.String()
	if (x.Sign() < 0) != strings.HasPrefix(text, "-") {
		return fmt.Errorf("sign %d disagrees with decimal form %q", x.Sign(), text)
	}
	if x.IsZero() && text != "0" {
		return fmt.Errorf("zero prints as %q", text)
	}
	if _, err := x.Chunk(n); err == nil {
		return fmt.Errorf("chunk accessor accepted index %d == len", n)
	}

	s := x.Abs().String()
	topDigits := len(fmt.Sprint(top))
	want, err := safecast.Conv[int]((uint64(n)-1)*bignum.ChunkDigits + uint64(topDigits)) //nolint:gosec // G115: n is positive.
	if err != nil {
		return fmt.Errorf("digit count overflow: %w", err)
	}
	if len(s) != want {
		return fmt.Errorf("decimal form %q has %d digits, want %d", s, len(s), want)
	}
	return nil
}
