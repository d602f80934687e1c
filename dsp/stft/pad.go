package stft

// padSignal places x at offset half inside a zeroed slice of length total and
// fills the half samples on each side according to mode. Samples past the
// right padding stay zero.
func padSignal(x []float64, half, total int, mode PadMode) []float64 {
	out := make([]float64, total)
	copy(out[half:], x)

	if mode != PadReflect {
		return out
	}

	n := len(x)
	for j := 1; j <= half; j++ {
		out[half-j] = x[reflectIndex(-j, n)]
	}

	right := half + n
	for j := 0; j < half && right+j < total; j++ {
		out[right+j] = x[reflectIndex(n+j, n)]
	}

	return out
}

// reflectIndex maps i onto [0, n) by mirroring about the end samples without
// repeating them, so -1 maps to 1 and n maps to n-2. Signals shorter than the
// padding are reflected repeatedly.
func reflectIndex(i, n int) int {
	if n == 1 {
		return 0
	}

	period := 2 * (n - 1)
	i %= period
	if i < 0 {
		i += period
	}
	if i >= n {
		i = period - i
	}

	return i
}
