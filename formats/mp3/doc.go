// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio file decoding.
//
// This package uses github.com/hajimehoshi/go-mp3 to decode MP3 files.
//
//	file, _ := os.Open("loop.mp3")
//	source, err := mp3.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
// # Output Format
//
//   - Sample format: float32 in range [-1.0, 1.0]
//   - Channels: always 2 (go-mp3 duplicates mono streams)
//   - Sample rate: depends on the file
//
// Use audio.Downmix on the decoded buffer to get mono.
//
// # Length
//
// When the input is an io.Seeker, go-mp3 scans the frames up front and the
// source reports its length through audio.Framer. Otherwise the length is
// unknown until the stream has been read.
package mp3
