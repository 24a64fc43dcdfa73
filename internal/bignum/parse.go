package bignum

import (
	"fmt"
	"unicode"
)

// Parse converts a decimal string with an optional leading '-' into a BigInt.
// High-order zeros are accepted and "-0" yields zero.
func Parse(s string) (BigInt, error) {
	if s == "" {
		return BigInt{}, ErrEmptyInput
	}
	neg := s[0] == '-'
	digits := s
	if neg {
		digits = s[1:]
	}
	if digits == "" {
		return BigInt{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}

	chunks := make([]uint32, 0, (len(digits)+ChunkDigits-1)/ChunkDigits)
	var chunk uint32
	pow := uint32(1)
	for i := len(digits) - 1; i >= 0; i-- {
		ch := digits[i]
		if ch < '0' || ch > '9' {
			return BigInt{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
		}
		chunk += uint32(ch-'0') * pow
		pow *= 10
		if pow == ChunkBase {
			chunks = append(chunks, chunk)
			chunk, pow = 0, 1
		}
	}
	if pow != 1 {
		chunks = append(chunks, chunk)
	}

	z := BigInt{neg: neg, chunks: chunks}
	z.normalize()
	return z, nil
}

// Scan implements fmt.Scanner. Unlike Reader, a malformed token is
// reported as an error.
func (z *BigInt) Scan(state fmt.ScanState, verb rune) error {
	switch verb {
	case 'v', 'd', 's':
	default:
		return fmt.Errorf("bignum: unsupported scan verb %%%c", verb)
	}
	state.SkipSpace()
	tok, err := state.Token(false, func(r rune) bool { return !unicode.IsSpace(r) })
	if err != nil {
		return err
	}
	v, err := Parse(string(tok))
	if err != nil {
		return err
	}
	*z = v
	return nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (z *BigInt) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*z = v
	return nil
}
