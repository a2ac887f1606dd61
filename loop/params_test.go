// SPDX-License-Identifier: EPL-2.0

package loop

import (
	"math"
	"sync"
	"testing"
)

func TestParams_Clamping(t *testing.T) {
	t.Parallel()

	nan := float32(math.NaN())
	inf := float32(math.Inf(1))

	tests := []struct {
		name string
		in   float32
		want float32
	}{
		{"zero", 0, 0},
		{"mid", 0.25, 0.25},
		{"one", 1, 1},
		{"negative", -0.5, 0},
		{"above", 3, 1},
		{"nan", nan, 0},
		{"inf", inf, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var p Params
			p.SetLevel(tt.in)
			p.SetRandomFraction(tt.in)
			if got := p.Level(); got != tt.want {
				t.Errorf("Level() = %v, want %v", got, tt.want)
			}
			if got := p.RandomFraction(); got != tt.want {
				t.Errorf("RandomFraction() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParams_RampLength(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want int
	}{
		{0, 0},
		{-10, 0},
		{64, 64},
		{MaxRampLength, MaxRampLength},
		{MaxRampLength + 1, MaxRampLength},
		{1 << 40, MaxRampLength},
	}

	for _, tt := range tests {
		var p Params
		p.SetRampLength(tt.in)
		if got := p.RampLength(); got != tt.want {
			t.Errorf("SetRampLength(%d): RampLength() = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestParams_Snapshot(t *testing.T) {
	t.Parallel()

	var p Params
	if s := p.Snapshot(); s != (Snapshot{}) {
		t.Errorf("zero Params snapshot = %+v, want zero", s)
	}

	p.SetLevel(0.5)
	p.SetRandomFraction(0.1)
	p.SetRampLength(32)

	want := Snapshot{Level: 0.5, RandomFraction: 0.1, RampLength: 32}
	if s := p.Snapshot(); s != want {
		t.Errorf("Snapshot() = %+v, want %+v", s, want)
	}
}

func TestParams_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	var p Params
	var wg sync.WaitGroup

	wg.Go(func() {
		for i := range 1000 {
			p.SetLevel(float32(i%2) * 0.75)
			p.SetRandomFraction(float32(i%3) / 4)
			p.SetRampLength(i % 300)
		}
	})

	for range 1000 {
		s := p.Snapshot()
		if s.Level != 0 && s.Level != 0.75 {
			t.Fatalf("torn level %v", s.Level)
		}
		if s.RandomFraction < 0 || s.RandomFraction > 0.5 {
			t.Fatalf("unexpected fraction %v", s.RandomFraction)
		}
		if s.RampLength < 0 || s.RampLength > MaxRampLength {
			t.Fatalf("unexpected ramp %d", s.RampLength)
		}
	}

	wg.Wait()
}
