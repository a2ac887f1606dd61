// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF (Audio Interchange File Format) decoding.
//
// This package uses github.com/go-audio/aiff to decode AIFF files.
//
// # Supported Formats
//
//   - Uncompressed AIFF, 8, 16, 24 and 32 bit
//   - Any channel count and sample rate
//
// # Decoding AIFF Files
//
//	file, _ := os.Open("pad.aif")
//	source, err := aiff.Decoder{}.Decode(file)
//	if err == aiff.ErrNotAiffFile {
//	    fmt.Println("Not an AIFF file")
//	}
//
// The frame count from the COMM chunk is exposed through audio.Framer.
//
// # AIFF vs. WAV
//
// AIFF is similar to WAV but:
//   - Uses big-endian byte order (WAV uses little-endian)
//   - Stores sample rate as 80-bit float (WAV uses 32-bit int)
package aiff
