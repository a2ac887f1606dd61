// SPDX-License-Identifier: EPL-2.0

package loop

// effectiveRamp is the fade length actually used for a block: at most half
// of it, so the fade-in and fade-out regions never overlap.
func effectiveRamp(rampLength, blockLength int) int {
	if rampLength <= 0 || blockLength <= 0 {
		return 0
	}
	return min(rampLength, blockLength/2)
}

// FadeWeight returns the edge window multiplier for frame index of a block.
// The first R frames rise as i/R and the last R frames fall as
// (blockLength-1-i)/R, where R is rampLength limited to blockLength/2.
// Everything else, including out-of-range indexes, gets 1.
func FadeWeight(index, blockLength, rampLength int) float32 {
	r := effectiveRamp(rampLength, blockLength)
	if r == 0 || index < 0 || index >= blockLength {
		return 1
	}

	w := float32(1)
	if index < r {
		w *= float32(index) / float32(r)
	}
	if tail := blockLength - 1 - index; tail < r {
		w *= float32(tail) / float32(r)
	}
	return w
}

// ApplyFade multiplies dst in place by the edge window. Only the two edge
// regions are touched.
func ApplyFade(dst []float32, rampLength int) {
	n := len(dst)
	r := effectiveRamp(rampLength, n)
	for i := range r {
		w := float32(i) / float32(r)
		dst[i] *= w
		dst[n-1-i] *= w
	}
}
