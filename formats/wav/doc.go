// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio file decoding and encoding.
//
// It uses github.com/go-audio/wav for chunk parsing, so files with extra
// chunks (LIST, INFO, ...) before the data chunk are handled.
//
// # Supported Formats
//
//   - Integer PCM, 16, 24 and 32 bit
//   - Any channel count and sample rate
//
// IEEE float and 8-bit (unsigned) files are rejected.
//
// # Decoding WAV Files
//
//	file, _ := os.Open("loop.wav")
//	source, err := wav.Decoder{}.Decode(file)
//	if errors.Is(err, wav.ErrNotWavFile) {
//	    // not a RIFF/WAVE file
//	}
//
// The returned source knows its length, so audio.ReadAll can reject
// clips that are too long before decoding them.
//
// # Writing WAV Files
//
// Encoder writes interleaved float32 blocks, for example rendered loop
// output:
//
//	f, _ := os.Create("bounce.wav")
//	enc, _ := wav.NewEncoder(f, 48000, 2, 16)
//	_ = enc.WriteFloat32(block)
//	_ = enc.Close()
//
// The destination must be an io.WriteSeeker because the header sizes are
// written once the stream is closed.
package wav
