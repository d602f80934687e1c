package dynamics

// Gain maps a band energy to a linear gain factor.
//
//	energy <= threshold: 1
//	otherwise:           10 + (ratio-10) * (energy-threshold)/threshold
//
// The result is clamped at 0, which only matters for ratio < 10 where the
// line would otherwise cross zero for large energies.
func Gain(energy, threshold, ratio float64) float64 {
	if energy <= threshold {
		return 1
	}

	g := baseGain + (ratio-baseGain)*((energy-threshold)/threshold)
	if g < 0 {
		return 0
	}

	return g
}

// GainCurve holds one gain per band and frame, indexed [band][frame].
type GainCurve [][]float64

// Max returns the largest gain in the curve, 0 for an empty curve.
func (c GainCurve) Max() float64 {
	peak := 0.0
	for _, row := range c {
		for _, g := range row {
			peak = max(peak, g)
		}
	}
	return peak
}

// Active returns the number of band/frame cells with a gain other than 1.
func (c GainCurve) Active() int {
	n := 0
	for _, row := range c {
		for _, g := range row {
			if g != 1 {
				n++
			}
		}
	}
	return n
}
