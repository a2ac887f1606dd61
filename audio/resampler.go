// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"math"

	"github.com/ik5/sampleloop/utils"
)

// lowPassAlpha is the coefficient of the one-pole filter applied to the
// source before downsampling.
const lowPassAlpha = 0.5

// Resample converts buf to dstRate using cubic interpolation and returns a
// new Buffer. Downsampling runs a simple one-pole low-pass over the source
// first. buf is returned unchanged when the rates already match or the
// buffer is empty.
func Resample(buf *Buffer, dstRate int) (*Buffer, error) {
	if dstRate <= 0 || buf == nil || buf.SampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}
	if buf.SampleRate == dstRate || buf.Frames() == 0 {
		return buf, nil
	}

	srcFrames := buf.Frames()
	// ratio is how many source frames advance per output frame
	ratio := float64(buf.SampleRate) / float64(dstRate)
	dstFrames := max(int(math.Round(float64(srcFrames)/ratio)), 1)

	out := NewBuffer(buf.Channels(), dstFrames, dstRate)
	var filtered []float32
	if ratio > 1 {
		filtered = make([]float32, srcFrames)
	}

	for c, src := range buf.Data {
		src = src[:srcFrames]
		if filtered != nil {
			state := src[0]
			for i, x := range src {
				state = lowPassAlpha*x + (1-lowPassAlpha)*state
				filtered[i] = state
			}
			src = filtered
		}

		dst := out.Data[c]
		last := srcFrames - 1
		for i := range dst {
			pos := float64(i) * ratio
			idx := int(pos)
			if idx > last {
				idx = last
			}
			alpha := float32(pos - float64(idx))

			// duplicate edge frames where neighbours are missing
			y0 := src[max(idx-1, 0)]
			y1 := src[idx]
			y2 := src[min(idx+1, last)]
			y3 := src[min(idx+2, last)]

			dst[i] = utils.CubicInterpolate(y0, y1, y2, y3, alpha)
		}
	}

	return out, nil
}
