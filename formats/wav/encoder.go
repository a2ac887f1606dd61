// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/sampleloop/utils"
)

// Encoder writes interleaved float32 blocks as an integer PCM WAV file.
// The RIFF sizes are patched on Close, so the destination must be seekable.
type Encoder struct {
	enc      *gowav.Encoder
	buf      *goaudio.IntBuffer
	channels int
	bitDepth int
}

// NewEncoder starts a WAV stream on w. bitDepth must be 16, 24 or 32.
func NewEncoder(w io.WriteSeeker, sampleRate, channels, bitDepth int) (*Encoder, error) {
	switch bitDepth {
	case 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}
	if channels < 1 || sampleRate <= 0 {
		return nil, ErrUnsupportedWavLayout
	}

	return &Encoder{
		enc: gowav.NewEncoder(w, sampleRate, bitDepth, channels, formatPCM),
		buf: &goaudio.IntBuffer{
			Format:         &goaudio.Format{NumChannels: channels, SampleRate: sampleRate},
			SourceBitDepth: bitDepth,
		},
		channels: channels,
		bitDepth: bitDepth,
	}, nil
}

// WriteFloat32 converts and appends interleaved samples. len(samples) must
// be a multiple of the channel count.
func (e *Encoder) WriteFloat32(samples []float32) error {
	if len(samples)%e.channels != 0 {
		return fmt.Errorf("%w: %d samples for %d channels", ErrUnsupportedWavLayout, len(samples), e.channels)
	}

	if cap(e.buf.Data) < len(samples) {
		e.buf.Data = make([]int, len(samples))
	}
	e.buf.Data = e.buf.Data[:len(samples)]

	for i, x := range samples {
		e.buf.Data[i] = utils.Float32ToPCM(x, e.bitDepth)
	}

	if err := e.enc.Write(e.buf); err != nil {
		return fmt.Errorf("writing wav samples: %w", err)
	}
	return nil
}

// Close finalizes the headers. It does not close the underlying writer.
func (e *Encoder) Close() error {
	if err := e.enc.Close(); err != nil {
		return fmt.Errorf("closing wav encoder: %w", err)
	}
	return nil
}
