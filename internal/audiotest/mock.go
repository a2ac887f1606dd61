// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides synthetic audio sources for tests.
package audiotest

import (
	"io"
	"math"
)

// MockSource generates audio from a waveform function.
// It implements the audio.Source interface (without importing it to avoid cycles).
type MockSource struct {
	sampleRate   int
	channels     int
	totalSamples int // Total samples to generate (per channel)
	generated    int // Samples generated so far (per channel)
	bufSize      int
	waveform     func(sample int, channel int) float32

	// Err, when set, is returned by ReadSamples once the waveform is exhausted
	// instead of io.EOF.
	Err error
	// Closed reports whether Close was called.
	Closed bool
}

// NewMockSource creates a new mock audio source.
// totalSamples is the total number of samples per channel to generate.
// waveform is a function that generates sample values given sample index and channel.
func NewMockSource(sampleRate, channels, totalSamples int, waveform func(sample int, channel int) float32) *MockSource {
	return &MockSource{
		sampleRate:   sampleRate,
		channels:     channels,
		totalSamples: totalSamples,
		bufSize:      4096,
		waveform:     waveform,
	}
}

// NewSilentSource creates a mock source that generates silence (all zeros).
func NewSilentSource(sampleRate, channels, totalSamples int) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(int, int) float32 {
		return 0.0
	})
}

// NewSineSource creates a mock source that generates a sine wave.
func NewSineSource(sampleRate, channels, totalSamples int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(sample int, channel int) float32 {
		t := float64(sample) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

// NewConstantSource creates a mock source with constant value.
func NewConstantSource(sampleRate, channels, totalSamples int, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(int, int) float32 {
		return value
	})
}

// NewIndexSource encodes position into every sample: frame f of channel c
// is f + 1000*c. Useful to check which frames were copied where.
func NewIndexSource(sampleRate, channels, totalSamples int) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(sample int, channel int) float32 {
		return float32(sample + 1000*channel)
	})
}

// WithBufSize sets the value reported by BufSize.
func (m *MockSource) WithBufSize(n int) *MockSource {
	m.bufSize = n
	return m
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BufSize() int    { return m.bufSize }

func (m *MockSource) Close() error {
	m.Closed = true
	return nil
}

// Reset resets the generated sample counter to allow re-reading
func (m *MockSource) Reset() {
	m.generated = 0
}

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.generated >= m.totalSamples {
		return 0, m.endErr()
	}

	framesToWrite := min(len(dst)/m.channels, m.totalSamples-m.generated)

	for frame := range framesToWrite {
		sampleIndex := m.generated + frame
		for ch := range m.channels {
			dst[frame*m.channels+ch] = m.waveform(sampleIndex, ch)
		}
	}

	m.generated += framesToWrite
	samplesWritten := framesToWrite * m.channels

	if m.generated >= m.totalSamples {
		return samplesWritten, m.endErr()
	}

	return samplesWritten, nil
}

func (m *MockSource) endErr() error {
	if m.Err != nil {
		return m.Err
	}
	return io.EOF
}

// FramedSource reports a fixed length through Frames, like decoders that
// know their stream length from the container header.
type FramedSource struct {
	*MockSource
	Length int64
}

// Frames returns the advertised length.
func (f *FramedSource) Frames() int64 { return f.Length }
