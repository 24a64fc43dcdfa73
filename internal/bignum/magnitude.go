package bignum

// Magnitude helpers operate on little-endian base-10^9 chunk slices.
// None of them modifies its inputs; every result is a fresh slice.

func trimMagnitude(chunks []uint32) []uint32 {
	n := len(chunks)
	for n > 1 && chunks[n-1] == 0 {
		n--
	}
	return chunks[:n]
}

func isZeroMagnitude(chunks []uint32) bool {
	for _, c := range chunks {
		if c != 0 {
			return false
		}
	}
	return true
}

// compareMagnitude compares two trimmed magnitudes and returns -1, 0 or 1.
// A longer magnitude is larger; equal lengths compare from the most
// significant chunk down.
func compareMagnitude(a, b []uint32) int {
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	for i := len(a) - 1; i >= 0; i-- {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	return 0
}

func addMagnitude(a, b []uint32) []uint32 {
	if len(a) < len(b) {
		a, b = b, a
	}
	out := make([]uint32, len(a), len(a)+1)
	var carry uint32
	for i := range a {
		sum := a[i] + carry
		if i < len(b) {
			sum += b[i]
		}
		if sum >= ChunkBase {
			out[i] = sum - ChunkBase
			carry = 1
		} else {
			out[i] = sum
			carry = 0
		}
	}
	if carry != 0 {
		out = append(out, carry)
	}
	return out
}

// subtractMagnitude returns a-b. The caller guarantees a >= b.
func subtractMagnitude(a, b []uint32) []uint32 {
	out := make([]uint32, len(a))
	var borrow uint32
	for i := range a {
		sub := borrow
		if i < len(b) {
			sub += b[i]
		}
		if a[i] < sub {
			out[i] = a[i] + ChunkBase - sub
			borrow = 1
		} else {
			out[i] = a[i] - sub
			borrow = 0
		}
	}
	return out
}

func multiplyMagnitude(a, b []uint32) []uint32 {
	out := make([]uint32, len(a)+len(b))
	for i := range a {
		ai := uint64(a[i])
		var carry uint64
		for j := range b {
			cur := uint64(out[i+j]) + ai*uint64(b[j]) + carry
			out[i+j] = uint32(cur % ChunkBase) //nolint:gosec // G115: remainder is below ChunkBase.
			carry = cur / ChunkBase
		}
		for k := i + len(b); carry != 0; k++ {
			cur := uint64(out[k]) + carry
			out[k] = uint32(cur % ChunkBase) //nolint:gosec // G115: remainder is below ChunkBase.
			carry = cur / ChunkBase
		}
	}
	return out
}

// divideMagnitude performs long division one dividend chunk at a time,
// from the most significant down. Each quotient chunk is found by binary
// search over [0, ChunkBase). The divisor must be non-zero and trimmed.
func divideMagnitude(a, d []uint32) (q, r []uint32) {
	q = make([]uint32, len(a))
	cur := []uint32{0}
	for i := len(a) - 1; i >= 0; i-- {
		cur = shiftInChunk(cur, a[i])
		x := quotientChunk(d, cur)
		q[i] = x
		if x != 0 {
			cur = trimMagnitude(subtractMagnitude(cur, trimMagnitude(multiplyMagnitude(d, []uint32{x}))))
		}
	}
	return q, cur
}

// shiftInChunk returns cur*ChunkBase + c.
func shiftInChunk(cur []uint32, c uint32) []uint32 {
	if isZeroMagnitude(cur) {
		return []uint32{c}
	}
	out := make([]uint32, len(cur)+1)
	out[0] = c
	copy(out[1:], cur)
	return out
}

// quotientChunk returns the largest x in [0, ChunkBase) with d*x <= cur.
func quotientChunk(d, cur []uint32) uint32 {
	lo, hi := 0, ChunkBase-1
	x := 0
	for lo <= hi {
		mid := lo + (hi-lo)/2
		prod := trimMagnitude(multiplyMagnitude(d, []uint32{uint32(mid)})) //nolint:gosec // G115: mid is below ChunkBase.
		if compareMagnitude(prod, cur) <= 0 {
			x = mid
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}
	return uint32(x) //nolint:gosec // G115: x is below ChunkBase.
}
