// SPDX-License-Identifier: EPL-2.0

package loop

import "math/rand/v2"

// Jitter picks where a block is read from. It is owned by a single
// renderer and is not safe for concurrent use.
type Jitter struct {
	rng *rand.Rand
}

// NewJitter draws offsets from src. A nil src gets a randomly seeded PCG.
func NewJitter(src rand.Source) *Jitter {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return &Jitter{rng: rand.New(src)}
}

// ReadPosition returns the first frame to read for a block of blockLength
// frames when the loop cursor is at position.
//
// With fraction 0 it returns position unchanged and does not touch the
// random source. Otherwise an offset is drawn uniformly from
// [0, floor(numFrames*fraction)) and added to position; if the read would
// run past the end of the clip it is wrapped to (read+blockLength) mod
// numFrames. The result is always a valid index into the clip.
func (j *Jitter) ReadPosition(position, numFrames, blockLength int, fraction float32) int {
	if numFrames <= 0 {
		return 0
	}
	if !(fraction > 0) {
		return clampIndex(position, numFrames)
	}

	span := int(float32(numFrames) * min(fraction, 1))
	read := position
	if span > 0 {
		read += j.rng.IntN(span)
	}
	if read+blockLength > numFrames {
		read = (read + blockLength) % numFrames
	}

	return clampIndex(read, numFrames)
}

func clampIndex(i, n int) int {
	return min(max(i, 0), n-1)
}
