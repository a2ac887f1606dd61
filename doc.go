// SPDX-License-Identifier: EPL-2.0

// Package sampleloop plays a short audio clip as a continuous loop.
//
// A Looper decodes a clip (WAV, AIFF, MP3 or Ogg Vorbis), keeps it in memory
// and renders it block by block into whatever buffers the audio device
// hands over. While it plays, the control side can change:
//
//   - the level, ramped over one block so changes never click;
//   - the random fraction, which starts every block at a random offset
//     within that fraction of the clip;
//   - the ramp length, a short fade in and out at the edges of every block
//     that hides the seams jitter creates.
//
// # Quick Start
//
//	l := sampleloop.New(sampleloop.WithTargetRate(48000))
//	if err := l.Load("drums.wav"); err != nil {
//	    return err
//	}
//	l.SetLevel(0.8)
//
//	block := loop.NewBlock(2, 512)
//	for {
//	    l.Render(block) // from the device callback
//	    ...
//	}
//
// Clips are limited to DefaultMaxDuration unless WithMaxDuration says
// otherwise. A load that fails for any reason leaves the current clip
// playing.
//
// # Several Clips
//
// A Mixer sums several loopers into the same block, for example a main
// loop and a shorter second one with its own level:
//
//	main := sampleloop.New()
//	fill := sampleloop.New(sampleloop.WithMaxDuration(2 * time.Second))
//	m := sampleloop.NewMixer(2, 512, main, fill)
//
// # Offline Rendering
//
// Bounce drives any Renderer exactly like a device would and writes the
// result as a WAV file, which is handy for tests and for listening to a
// parameter set without a sound card.
//
// The render path lives in the loop subpackage; decoders are in formats/*.
package sampleloop
