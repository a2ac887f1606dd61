// SPDX-License-Identifier: EPL-2.0

package sampleloop

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/ik5/sampleloop/formats/wav"
	"github.com/ik5/sampleloop/loop"
)

// BounceConfig describes an offline render.
type BounceConfig struct {
	SampleRate  int
	Channels    int
	BitDepth    int           // 16, 24 or 32; 0 means 16
	BlockFrames int           // frames per Render call; 0 means 512
	Duration    time.Duration // total length written
}

// Bounce drives r the way an audio device would and writes the result to w
// as a PCM WAV file. It is the offline counterpart of internal/device and
// produces the exact samples a device would have played.
func Bounce(w io.WriteSeeker, r Renderer, cfg BounceConfig) (err error) {
	if cfg.BitDepth == 0 {
		cfg.BitDepth = 16
	}
	if cfg.BlockFrames <= 0 {
		cfg.BlockFrames = 512
	}
	if cfg.SampleRate <= 0 || cfg.Channels <= 0 {
		return fmt.Errorf("bounce: invalid layout %d Hz, %d channels", cfg.SampleRate, cfg.Channels)
	}

	enc, err := wav.NewEncoder(w, cfg.SampleRate, cfg.Channels, cfg.BitDepth)
	if err != nil {
		return fmt.Errorf("bounce: %w", err)
	}
	defer func() {
		err = errors.Join(err, enc.Close())
	}()

	total := int(cfg.Duration * time.Duration(cfg.SampleRate) / time.Second)
	block := loop.NewBlock(cfg.Channels, cfg.BlockFrames)
	interleaved := make([]float32, cfg.Channels*cfg.BlockFrames)

	for written := 0; written < total; {
		n := min(cfg.BlockFrames, total-written)
		block.Frames = n
		r.Render(block)

		out := interleaved[:n*cfg.Channels]
		for f := range n {
			for c, ch := range block.Channels {
				out[f*cfg.Channels+c] = ch[f]
			}
		}
		if err := enc.WriteFloat32(out); err != nil {
			return fmt.Errorf("bounce: %w", err)
		}

		written += n
	}

	return nil
}
