// SPDX-License-Identifier: EPL-2.0

package loop

import (
	"slices"
	"testing"
)

func TestFadeWeight_Edges(t *testing.T) {
	t.Parallel()

	const n, r = 64, 8

	tests := []struct {
		index int
		want  float32
	}{
		{0, 0},
		{1, 1.0 / r},
		{r - 1, float32(r-1) / r},
		{r, 1},
		{n / 2, 1},
		{n - r - 1, 1},
		{n - r, float32(r-1) / r},
		{n - 2, 1.0 / r},
		{n - 1, 0},
		{-1, 1},
		{n, 1},
	}

	for _, tt := range tests {
		if got := FadeWeight(tt.index, n, r); got != tt.want {
			t.Errorf("FadeWeight(%d, %d, %d) = %v, want %v", tt.index, n, r, got, tt.want)
		}
	}
}

func TestFadeWeight_ClampPolicy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		n, r        int
		index       int
		want        float32
		description string
	}{
		{"disabled", 16, 0, 0, 1, "zero ramp"},
		{"negative ramp", 16, -4, 0, 1, "negative ramp"},
		{"empty block", 0, 8, 0, 1, "no frames"},
		{"ramp equals half", 8, 4, 3, 0.75, "fade-in only"},
		{"ramp above half", 8, 100, 3, 0.75, "clamped to 4"},
		{"ramp above half tail", 8, 100, 4, 0.75, "clamped to 4"},
		{"odd block middle", 9, 100, 4, 1, "clamped to 4, middle untouched"},
		{"single frame", 1, 8, 0, 1, "clamped to 0"},
		{"two frames", 2, 8, 0, 0, "clamped to 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FadeWeight(tt.index, tt.n, tt.r); got != tt.want {
				t.Errorf("%s: FadeWeight(%d, %d, %d) = %v, want %v", tt.description, tt.index, tt.n, tt.r, got, tt.want)
			}
		})
	}
}

func TestApplyFade_MatchesWeight(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 2, 5, 16, 63, 512} {
		for _, r := range []int{0, 1, 3, 8, 256} {
			dst := make([]float32, n)
			for i := range dst {
				dst[i] = 1
			}
			ApplyFade(dst, r)

			for i, got := range dst {
				if want := FadeWeight(i, n, r); got != want {
					t.Fatalf("n=%d r=%d: dst[%d] = %v, want %v", n, r, i, got, want)
				}
			}
		}
	}
}

func TestApplyFade_Multiplies(t *testing.T) {
	t.Parallel()

	dst := []float32{4, 4, -2, -2, 4, 4}
	ApplyFade(dst, 2)

	want := []float32{0, 2, -2, -2, 2, 0}
	if !slices.Equal(dst, want) {
		t.Errorf("ApplyFade = %v, want %v", dst, want)
	}
}
