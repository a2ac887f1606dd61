// SPDX-License-Identifier: EPL-2.0

package loop

import (
	"math"
	"sync/atomic"
)

// MaxRampLength is the largest accepted edge fade length, in frames.
const MaxRampLength = 256

// Params are the knobs written by the control path and read once per block
// by the renderer. Floats are stored as their IEEE bits in atomic words so
// neither side ever observes a torn value. The zero value is level 0, no
// jitter, no fade.
type Params struct {
	level    atomic.Uint32
	fraction atomic.Uint32
	ramp     atomic.Int32
}

// Snapshot is a consistent-per-field copy of Params for one block.
type Snapshot struct {
	Level          float32
	RandomFraction float32
	RampLength     int
}

// SetLevel sets the output level, clamped to [0, 1].
func (p *Params) SetLevel(v float32) {
	p.level.Store(math.Float32bits(clampUnit(v)))
}

// SetRandomFraction sets the jitter range as a fraction of the clip length,
// clamped to [0, 1]. 0 disables jitter.
func (p *Params) SetRandomFraction(v float32) {
	p.fraction.Store(math.Float32bits(clampUnit(v)))
}

// SetRampLength sets the edge fade length in frames, clamped to
// [0, MaxRampLength]. 0 disables the fade.
func (p *Params) SetRampLength(frames int) {
	p.ramp.Store(int32(min(max(frames, 0), MaxRampLength)))
}

func (p *Params) Level() float32 {
	return math.Float32frombits(p.level.Load())
}

func (p *Params) RandomFraction() float32 {
	return math.Float32frombits(p.fraction.Load())
}

func (p *Params) RampLength() int {
	return int(p.ramp.Load())
}

// Snapshot reads all parameters.
func (p *Params) Snapshot() Snapshot {
	return Snapshot{
		Level:          p.Level(),
		RandomFraction: p.RandomFraction(),
		RampLength:     p.RampLength(),
	}
}

// clampUnit maps v into [0, 1]; NaN becomes 0.
func clampUnit(v float32) float32 {
	switch {
	case !(v > 0):
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
