// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/ik5/sampleloop/audio"
)

// mockOggVorbisReader simulates the oggvorbis.Reader for testing
type mockOggVorbisReader struct {
	sampleRate int
	channels   int
	samples    []float32
	offset     int
	err        error
}

func (m *mockOggVorbisReader) SampleRate() int { return m.sampleRate }
func (m *mockOggVorbisReader) Channels() int   { return m.channels }
func (m *mockOggVorbisReader) Length() int64   { return int64(len(m.samples) / m.channels) }

func (m *mockOggVorbisReader) Read(buf []float32) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	if m.offset >= len(m.samples) {
		return 0, io.EOF
	}

	n := copy(buf, m.samples[m.offset:])
	m.offset += n
	return n, nil
}

func newTestSource(m *mockOggVorbisReader) *source {
	return &source{dec: m, sampleRate: m.sampleRate, channels: m.channels}
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	for _, data := range [][]byte{[]byte("This is not Ogg Vorbis data"), {}} {
		if _, err := (Decoder{}).Decode(bytes.NewReader(data)); err == nil {
			t.Errorf("Decode(%q) error = nil, want error", data)
		}
	}
}

func TestSource_Metadata(t *testing.T) {
	t.Parallel()

	src := newTestSource(&mockOggVorbisReader{sampleRate: 44100, channels: 3, samples: make([]float32, 300)})

	if src.SampleRate() != 44100 || src.Channels() != 3 {
		t.Errorf("metadata = %d Hz %d ch", src.SampleRate(), src.Channels())
	}
	if src.Frames() != 100 {
		t.Errorf("Frames() = %d, want 100", src.Frames())
	}
	if src.BufSize()%3 != 0 {
		t.Errorf("BufSize() = %d, not a whole number of frames", src.BufSize())
	}
}

func TestSource_ReadSamples_WholeFrames(t *testing.T) {
	t.Parallel()

	src := newTestSource(&mockOggVorbisReader{
		sampleRate: 44100,
		channels:   2,
		samples:    []float32{0.1, -0.1, 0.2, -0.2, 0.3, -0.3},
	})

	// 5 slots only fit 2 stereo frames
	dst := make([]float32, 5)
	n, err := src.ReadSamples(dst)
	if err != nil || n != 4 {
		t.Fatalf("ReadSamples() = (%d, %v), want (4, nil)", n, err)
	}
	if dst[2] != 0.2 || dst[3] != -0.2 {
		t.Errorf("dst = %v", dst)
	}

	if n, err := src.ReadSamples(make([]float32, 1)); n != 0 || err != nil {
		t.Errorf("ReadSamples(1 slot) = (%d, %v), want (0, nil)", n, err)
	}
}

func TestSource_ReadAll(t *testing.T) {
	t.Parallel()

	samples := make([]float32, 2000)
	for i := range samples {
		samples[i] = float32(i%2) - 0.5
	}
	src := newTestSource(&mockOggVorbisReader{sampleRate: 22050, channels: 2, samples: samples})

	buf, err := audio.ReadAll(src, 0)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if buf.Frames() != 1000 || buf.Data[0][999] != -0.5 || buf.Data[1][0] != 0.5 {
		t.Errorf("ReadAll() = %d frames, L=%v R=%v", buf.Frames(), buf.Data[0][999], buf.Data[1][0])
	}
}

func TestSource_ReadSamples_Error(t *testing.T) {
	t.Parallel()

	src := newTestSource(&mockOggVorbisReader{sampleRate: 44100, channels: 1, err: io.ErrUnexpectedEOF})

	if _, err := src.ReadSamples(make([]float32, 4)); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("ReadSamples() error = %v, want io.ErrUnexpectedEOF", err)
	}
}
