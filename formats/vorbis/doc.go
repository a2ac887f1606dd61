// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis audio file decoding.
//
// This package uses github.com/jfreymuth/oggvorbis to decode Ogg Vorbis files.
//
//	file, _ := os.Open("texture.ogg")
//	source, err := vorbis.Decoder{}.Decode(file)
//
// Samples are returned as interleaved float32 in the decoder's native
// channel order. For seekable inputs the stream length is known up front
// and reported through audio.Framer.
package vorbis
