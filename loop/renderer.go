// SPDX-License-Identifier: EPL-2.0

package loop

import "math/rand/v2"

// Renderer plays the clip held by a Store. Render must only be called from
// one goroutine (the device callback); Store and Params may be updated
// concurrently from any other.
type Renderer struct {
	store  *Store
	params *Params
	jitter *Jitter
	gain   GainRamp

	current  *published
	position int
	lastRead int
}

// RendererOption configures a Renderer.
type RendererOption func(*Renderer)

// WithRandSource sets the source used for jitter offsets. Tests use it to
// get reproducible read positions.
func WithRandSource(src rand.Source) RendererOption {
	return func(r *Renderer) {
		r.jitter = NewJitter(src)
	}
}

// WithSeed seeds the jitter source with a PCG built from seed.
func WithSeed(seed uint64) RendererOption {
	return WithRandSource(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NewRenderer returns a renderer reading from store and params.
func NewRenderer(store *Store, params *Params, opts ...RendererOption) *Renderer {
	r := &Renderer{
		store:  store,
		params: params,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.jitter == nil {
		r.jitter = NewJitter(nil)
	}

	return r
}

// Render fills the block with the next part of the loop.
func (r *Renderer) Render(b Block) {
	snap := r.store.snapshot()
	if snap != r.current {
		r.current = snap
		r.position = 0
	}

	if snap == nil || snap.buf.Frames() == 0 || snap.buf.Channels() == 0 {
		b.silence()
		return
	}

	off, n := b.Extent()
	if n == 0 {
		return
	}

	buf := snap.buf
	numFrames := buf.Frames()
	inChannels := len(buf.Data)
	p := r.params.Snapshot()

	if r.position < 0 || r.position >= numFrames {
		r.position = 0
	}
	if r.position+n >= numFrames {
		r.position = 0
	}

	read := r.jitter.ReadPosition(r.position, numFrames, n, p.RandomFraction)
	r.lastRead = read

	start := r.gain.Previous()
	for c, ch := range b.Channels {
		dst := ch[off : off+n]
		copyLooped(dst, buf.Data[c%inChannels][:numFrames], read)
		r.gain.Apply(dst, start, p.Level)
		ApplyFade(dst, p.RampLength)
	}

	r.position = (r.position + n) % numFrames
	r.gain.Commit(p.Level)
}

// Position is the loop cursor: the frame the next block starts from before
// jitter. Only meaningful on the render goroutine.
func (r *Renderer) Position() int { return r.position }

// LastReadPosition is the frame the last rendered block was read from.
func (r *Renderer) LastReadPosition() int { return r.lastRead }

// copyLooped fills dst from src starting at from, continuing at the start
// of src whenever its end is reached. src must not be empty and from must
// index into it.
func copyLooped(dst, src []float32, from int) {
	for len(dst) > 0 {
		n := copy(dst, src[from:])
		dst = dst[n:]
		from = 0
	}
}
