// SPDX-License-Identifier: EPL-2.0

// Package audio provides the decoding side of sampleloop: streaming
// sources, the decoder registry and the in-memory clip representation.
//
// # Source Interface
//
// Decoders produce a Source, a stream of interleaved float32 samples:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// Sources that know their length from the container header also implement
// Framer, which lets ReadAll reject overlong files without decoding them.
//
// # Buffers
//
// A looping player needs random access, so sources are drained into a
// Buffer, a channel-major copy of the whole clip:
//
//	buf, err := audio.ReadAll(src, 5*time.Second)
//	if errors.Is(err, audio.ErrTooLong) {
//	    // clip is 5 seconds or longer
//	}
//	left := buf.Data[0]
//
// A Buffer that has been handed to a player is never modified in place;
// Resample and Downmix return new buffers.
//
// # Format Registry
//
// The registry maps format names and file extensions to decoders:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{}, "wav", "wave")
//	decoder, format, ok := registry.ForPath("loops/kick.wav")
//
// # Sample Format
//
// Samples are float32 in the range [-1.0, 1.0]; 0.0 is silence.
package audio
