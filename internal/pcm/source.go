// SPDX-License-Identifier: EPL-2.0

// Package pcm adapts go-audio integer PCM decoders to audio.Source.
package pcm

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"

	"github.com/ik5/sampleloop/utils"
)

// Reader is the part of the go-audio wav and aiff decoders used by Source.
type Reader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Source streams normalized float32 samples out of a Reader.
type Source struct {
	dec        Reader
	sampleRate int
	channels   int
	bitDepth   int
	frames     int64
	intBuf     *goaudio.IntBuffer
}

// NewSource wraps dec. frames is the stream length per channel, or 0 when
// unknown.
func NewSource(dec Reader, sampleRate, channels, bitDepth int, frames int64) *Source {
	return &Source{
		dec:        dec,
		sampleRate: sampleRate,
		channels:   channels,
		bitDepth:   bitDepth,
		frames:     frames,
	}
}

func (s *Source) SampleRate() int { return s.sampleRate }
func (s *Source) Channels() int   { return s.channels }
func (s *Source) Close() error    { return nil }
func (s *Source) Frames() int64   { return s.frames }

func (s *Source) BufSize() int {
	if s.intBuf != nil {
		return cap(s.intBuf.Data)
	}
	return 4096
}

func (s *Source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if s.intBuf == nil || cap(s.intBuf.Data) < len(dst) {
		s.intBuf = &goaudio.IntBuffer{
			Data:           make([]int, len(dst)),
			Format:         s.dec.Format(),
			SourceBitDepth: s.bitDepth,
		}
	} else {
		s.intBuf.Data = s.intBuf.Data[:len(dst)]
	}

	n, err := s.dec.PCMBuffer(s.intBuf)
	if n == 0 {
		if err != nil && !errors.Is(err, io.EOF) {
			return 0, fmt.Errorf("reading pcm: %w", err)
		}
		return 0, io.EOF
	}

	for i, v := range s.intBuf.Data[:n] {
		dst[i] = utils.PCMToFloat32(v, s.bitDepth)
	}

	// A short read without an error means the data is exhausted.
	if n < len(dst) && err == nil {
		return n, io.EOF
	}

	return n, err
}

// ReadSeeker returns r itself when it can seek, otherwise an in-memory copy.
// go-audio needs to seek between chunks.
func ReadSeeker(r io.Reader) (io.ReadSeeker, error) {
	if rs, ok := r.(io.ReadSeeker); ok {
		return rs, nil
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("buffering input: %w", err)
	}
	return bytes.NewReader(data), nil
}
