// SPDX-License-Identifier: EPL-2.0

// Package device plays a renderer on the default audio output.
package device

import (
	"encoding/binary"
	"math"
	"sync/atomic"

	"github.com/ik5/sampleloop/loop"
)

const bytesPerSample = 4

// Renderer fills a block of device output.
type Renderer interface {
	Render(b loop.Block)
}

type attached struct {
	r Renderer
}

// Reader turns a Renderer into the interleaved float32 little-endian byte
// stream an output device pulls. The renderer can be swapped at any time
// without locking the read path.
type Reader struct {
	renderer atomic.Pointer[attached]
	channels int
	block    loop.Block
}

// NewReader returns a reader producing channels interleaved channels. It
// renders at most maxFrames frames per Render call.
func NewReader(channels, maxFrames int) *Reader {
	channels = max(channels, 1)
	return &Reader{
		channels: channels,
		block:    loop.NewBlock(channels, max(maxFrames, 1)),
	}
}

// Attach makes r the renderer for subsequent reads. nil detaches and the
// reader outputs silence.
func (rd *Reader) Attach(r Renderer) {
	if r == nil {
		rd.renderer.Store(nil)
		return
	}
	rd.renderer.Store(&attached{r: r})
}

// Read fills p with whole frames. It never returns an error.
func (rd *Reader) Read(p []byte) (int, error) {
	frameSize := rd.channels * bytesPerSample
	frames := len(p) / frameSize
	n := frames * frameSize

	a := rd.renderer.Load()
	if a == nil {
		clear(p[:n])
		return n, nil
	}

	maxFrames := len(rd.block.Channels[0])
	out := p
	for frames > 0 {
		seg := min(frames, maxFrames)
		rd.block.Frames = seg
		a.r.Render(rd.block)

		for f := range seg {
			for _, ch := range rd.block.Channels {
				binary.LittleEndian.PutUint32(out, math.Float32bits(ch[f]))
				out = out[bytesPerSample:]
			}
		}
		frames -= seg
	}

	return n, nil
}
