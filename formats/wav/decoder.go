// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	gowav "github.com/go-audio/wav"

	"github.com/ik5/sampleloop/audio"
	"github.com/ik5/sampleloop/internal/pcm"
)

const formatPCM = 1

// Decoder reads integer PCM WAV files (16, 24 or 32 bit, any channel count).
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, err := pcm.ReadSeeker(r)
	if err != nil {
		return nil, fmt.Errorf("reading wav data: %w", err)
	}

	dec := gowav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}
	dec.ReadInfo()

	if dec.WavAudioFormat != formatPCM {
		return nil, ErrOnlyPCMSupported
	}

	bitDepth := int(dec.BitDepth)
	switch bitDepth {
	case 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}

	format := dec.Format()
	if format == nil || format.NumChannels < 1 {
		return nil, ErrUnsupportedWavLayout
	}

	if err := dec.FwdToPCM(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedWavChunks, err)
	}

	frameSize := format.NumChannels * bitDepth / 8
	frames := int64(dec.PCMSize / frameSize)

	return pcm.NewSource(dec, format.SampleRate, format.NumChannels, bitDepth, frames), nil
}
