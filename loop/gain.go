// SPDX-License-Identifier: EPL-2.0

package loop

// GainRamp remembers the level the previous block ended on, so that the
// next block can ramp from it without a step.
type GainRamp struct {
	previous float32
}

// Previous returns the level committed by the last block.
func (g *GainRamp) Previous() float32 { return g.previous }

// Commit records level as the starting point of the next block.
func (g *GainRamp) Commit(level float32) { g.previous = level }

// Apply scales dst in place by a ramp from start to end.
func (g *GainRamp) Apply(dst []float32, start, end float32) {
	ApplyGainRamp(dst, start, end)
}

// ApplyGainRamp multiplies dst[i] by start + (end-start)*i/(N-1). A single
// sample gets end. The last sample is always scaled by exactly end.
func ApplyGainRamp(dst []float32, start, end float32) {
	n := len(dst)
	switch {
	case n == 0:
		return
	case start == end || n == 1:
		if end == 1 {
			return
		}
		for i := range dst {
			dst[i] *= end
		}
		return
	}

	delta := end - start
	last := float32(n - 1)
	for i := range n - 1 {
		dst[i] *= start + delta*float32(i)/last
	}
	dst[n-1] *= end
}
