// SPDX-License-Identifier: EPL-2.0

package audio

import "time"

// Buffer holds a fully decoded clip in channel-major layout:
// Data[c][f] is frame f of channel c. A Buffer handed to a player must be
// treated as immutable.
type Buffer struct {
	Data       [][]float32
	SampleRate int
}

// NewBuffer allocates a zeroed buffer.
func NewBuffer(channels, frames, sampleRate int) *Buffer {
	channels = max(channels, 0)
	frames = max(frames, 0)

	data := make([][]float32, channels)
	backing := make([]float32, channels*frames)
	for c := range data {
		data[c] = backing[c*frames : (c+1)*frames : (c+1)*frames]
	}

	return &Buffer{Data: data, SampleRate: sampleRate}
}

// Deinterleave copies interleaved samples into a new Buffer. A trailing
// partial frame is dropped.
func Deinterleave(samples []float32, channels, sampleRate int) *Buffer {
	if channels <= 0 {
		return &Buffer{SampleRate: sampleRate}
	}

	frames := len(samples) / channels
	b := NewBuffer(channels, frames, sampleRate)
	for f := range frames {
		base := f * channels
		for c := range channels {
			b.Data[c][f] = samples[base+c]
		}
	}

	return b
}

// Channels returns the number of channels; zero for a nil buffer.
func (b *Buffer) Channels() int {
	if b == nil {
		return 0
	}
	return len(b.Data)
}

// Frames returns the number of complete frames, i.e. the length of the
// shortest channel.
func (b *Buffer) Frames() int {
	if b == nil || len(b.Data) == 0 {
		return 0
	}

	n := len(b.Data[0])
	for _, ch := range b.Data[1:] {
		n = min(n, len(ch))
	}
	return n
}

// Duration of the clip at its sample rate.
func (b *Buffer) Duration() time.Duration {
	if b == nil || b.SampleRate <= 0 {
		return 0
	}
	return time.Duration(b.Frames()) * time.Second / time.Duration(b.SampleRate)
}
