package widget

// wrap maps any integer onto 0..n-1. n must be positive.
func wrap(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

// clamp keeps i inside 0..n-1.
func clamp(i, n int) int {
	switch {
	case i < 0:
		return 0
	case i >= n:
		return n - 1
	}
	return i
}
