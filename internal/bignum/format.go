package bignum

import (
	"fmt"
	"strconv"
	"strings"
)

// String returns the canonical decimal form of x: '-' for negative
// non-zero values, no grouping and no padding of the leading chunk.
func (x BigInt) String() string {
	mag := trimMagnitude(x.mag())

	var sb strings.Builder
	sb.Grow(len(mag)*ChunkDigits + 1)
	if x.IsNeg() {
		sb.WriteByte('-')
	}
	sb.WriteString(strconv.FormatUint(uint64(mag[len(mag)-1]), 10))
	for i := len(mag) - 2; i >= 0; i-- {
		fmt.Fprintf(&sb, "%09d", mag[i])
	}
	return sb.String()
}

// MarshalText implements encoding.TextMarshaler.
func (x BigInt) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// Format implements fmt.Formatter for the verbs 'v', 's' and 'd'.
// The '+' flag forces a sign, '-' left-justifies and '0' pads with zeros
// after the sign.
func (x BigInt) Format(state fmt.State, verb rune) {
	switch verb {
	case 'v', 's', 'd':
	default:
		fmt.Fprintf(state, "%%!%c(bignum.BigInt=%s)", verb, x.String())
		return
	}

	digits := x.Abs().String()
	sign := ""
	switch {
	case x.IsNeg():
		sign = "-"
	case state.Flag('+'):
		sign = "+"
	}

	pad := 0
	if w, ok := state.Width(); ok {
		pad = w - len(sign) - len(digits)
	}

	var sb strings.Builder
	switch {
	case pad <= 0:
		sb.WriteString(sign)
		sb.WriteString(digits)
	case state.Flag('-'):
		sb.WriteString(sign)
		sb.WriteString(digits)
		sb.WriteString(strings.Repeat(" ", pad))
	case state.Flag('0'):
		sb.WriteString(sign)
		sb.WriteString(strings.Repeat("0", pad))
		sb.WriteString(digits)
	default:
		sb.WriteString(strings.Repeat(" ", pad))
		sb.WriteString(sign)
		sb.WriteString(digits)
	}
	// Best-effort write, like fmt's own formatters.
	_, _ = state.Write([]byte(sb.String())) //nolint:errcheck
}
