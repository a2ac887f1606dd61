// SPDX-License-Identifier: EPL-2.0

package sampleloop

import "github.com/ik5/sampleloop/loop"

// Renderer is anything that can fill a block, such as a Looper or a Mixer.
type Renderer interface {
	Render(b loop.Block)
}

// Mixer sums several renderers into one output. All scratch memory is
// allocated by NewMixer, so Render stays allocation-free. The sum is not
// limited; keep the levels low enough for the channels not to clip.
type Mixer struct {
	sources []Renderer
	scratch [][]float32
	frames  int
}

// NewMixer returns a mixer for blocks of up to channels channels. Requests
// longer than frames are rendered in several passes.
func NewMixer(channels, frames int, sources ...Renderer) *Mixer {
	channels = max(channels, 1)
	frames = max(frames, 1)

	backing := make([]float32, channels*frames)
	scratch := make([][]float32, channels)
	for c := range scratch {
		scratch[c] = backing[c*frames : (c+1)*frames : (c+1)*frames]
	}

	return &Mixer{
		sources: sources,
		scratch: scratch,
		frames:  frames,
	}
}

// Render writes the sum of all sources into b. Output channels beyond the
// mixer's channel count are silenced.
func (m *Mixer) Render(b loop.Block) {
	off, n := b.Extent()
	if n == 0 {
		return
	}

	chans := min(len(b.Channels), len(m.scratch))
	for _, ch := range b.Channels[chans:] {
		clear(ch[off : off+n])
	}
	if len(m.sources) == 0 {
		for _, ch := range b.Channels[:chans] {
			clear(ch[off : off+n])
		}
		return
	}

	for done := 0; done < n; {
		seg := min(n-done, m.frames)
		start := off + done

		m.sources[0].Render(loop.Block{Channels: b.Channels[:chans], Offset: start, Frames: seg})
		for _, src := range m.sources[1:] {
			src.Render(loop.Block{Channels: m.scratch[:chans], Frames: seg})
			for c := range chans {
				dst := b.Channels[c][start : start+seg]
				for i, v := range m.scratch[c][:seg] {
					dst[i] += v
				}
			}
		}

		done += seg
	}
}
