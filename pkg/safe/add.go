package safe

import "math"

// AddUint64 returns a+b and false if the sum overflows.
func AddUint64(a, b uint64) (uint64, bool) {
	sum := a + b
	if sum < a {
		return 0, false
	}
	return sum, true
}

// AddUint64Saturating returns a+b clamped to math.MaxUint64.
func AddUint64Saturating(a, b uint64) uint64 {
	sum, ok := AddUint64(a, b)
	if !ok {
		return math.MaxUint64
	}
	return sum
}

// SubUint64Saturating returns a-b clamped to zero.
func SubUint64Saturating(a, b uint64) uint64 {
	if b > a {
		return 0
	}
	return a - b
}
