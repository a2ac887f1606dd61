// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
	"math"
	"time"
)

// maxEmptyReads bounds consecutive (0, nil) reads before ReadAll gives up.
const maxEmptyReads = 100

// ReadAll drains src into a channel-major Buffer.
//
// When maxDuration is positive, a stream whose duration is greater than or
// equal to maxDuration is rejected with ErrTooLong. Sources implementing
// Framer are rejected before any sample is read; others are rejected as
// soon as the limit is reached while reading.
//
// ReadAll does not close src.
func ReadAll(src Source, maxDuration time.Duration) (*Buffer, error) {
	channels := src.Channels()
	rate := src.SampleRate()
	if channels <= 0 {
		return nil, ErrNoChannels
	}
	if rate <= 0 {
		return nil, ErrInvalidSampleRate
	}

	limit := maxFrames(maxDuration, rate)
	if f, ok := src.(Framer); ok && limit > 0 {
		if n := f.Frames(); n >= limit {
			return nil, fmt.Errorf("%w: %d frames at %d Hz", ErrTooLong, n, rate)
		}
	}

	chunk := src.BufSize()
	if chunk < channels {
		chunk = 4096
	}
	chunk -= chunk % channels
	if chunk == 0 {
		chunk = channels
	}

	tmp := make([]float32, chunk)
	var interleaved []float32
	if f, ok := src.(Framer); ok {
		if n := f.Frames(); n > 0 && n < math.MaxInt32 {
			interleaved = make([]float32, 0, int(n)*channels)
		}
	}

	empty := 0
	for {
		n, err := src.ReadSamples(tmp)
		if n > 0 {
			empty = 0
			interleaved = append(interleaved, tmp[:n]...)
			if limit > 0 && int64(len(interleaved)/channels) >= limit {
				return nil, fmt.Errorf("%w: more than %v at %d Hz", ErrTooLong, maxDuration, rate)
			}
		}

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading samples: %w", err)
		}

		if n == 0 {
			empty++
			if empty >= maxEmptyReads {
				return nil, io.ErrNoProgress
			}
		}
	}

	return Deinterleave(interleaved, channels, rate), nil
}

// maxFrames converts a duration to the smallest frame count that is not
// shorter than it; zero means no limit.
func maxFrames(d time.Duration, rate int) int64 {
	if d <= 0 {
		return 0
	}
	return int64(math.Ceil(d.Seconds() * float64(rate)))
}
