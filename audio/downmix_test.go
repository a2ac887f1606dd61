// SPDX-License-Identifier: EPL-2.0

package audio

import "testing"

func TestDownmix(t *testing.T) {
	t.Parallel()

	stereo := &Buffer{Data: [][]float32{{1, 0.5, -1}, {0, 0.5, 1}}, SampleRate: 8000}
	mono := Downmix(stereo)

	want := []float32{0.5, 0.5, 0}
	if mono.Channels() != 1 || mono.SampleRate != 8000 {
		t.Fatalf("Downmix() = %d ch %d Hz, want 1 ch 8000 Hz", mono.Channels(), mono.SampleRate)
	}
	for i, w := range want {
		if mono.Data[0][i] != w {
			t.Errorf("mono[%d] = %v, want %v", i, mono.Data[0][i], w)
		}
	}
}

func TestDownmix_Quad(t *testing.T) {
	t.Parallel()

	quad := &Buffer{Data: [][]float32{{1}, {1}, {0}, {0}}, SampleRate: 8000}
	if got := Downmix(quad).Data[0][0]; got != 0.5 {
		t.Errorf("quad downmix = %v, want 0.5", got)
	}
}

func TestDownmix_MonoPassThrough(t *testing.T) {
	t.Parallel()

	mono := NewBuffer(1, 4, 8000)
	if Downmix(mono) != mono {
		t.Error("Downmix() of mono buffer should return the input")
	}
}
