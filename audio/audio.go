// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

type Source interface {
	// SampleRate of the PCM stream in Hz.
	SampleRate() int
	// Channels count (e.g., 1=mono, 2=stereo).
	Channels() int
	// ReadSamples fills dst with interleaved float32 samples in [-1,1].
	// Returns number of float32 values written (not frames). When n == 0 with err == io.EOF, the stream is finished.
	ReadSamples(dst []float32) (n int, err error)

	// BufSize is the preferred read size in samples.
	BufSize() int

	// Close releases any resources.
	Close() error
}

// Framer is implemented by sources that know their length up front.
// Frames returns the number of frames per channel, or a value <= 0 when
// the length is unknown.
type Framer interface {
	Frames() int64
}

// Decoder constructs a Source from an input reader.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}

// Registry for decoders by format key (e.g., "wav", "mp3", "ogg vorbis"),
// with an optional file extension index.
type Registry struct {
	mtx    sync.RWMutex
	codecs map[string]Decoder
	exts   map[string]string
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Decoder),
		exts:   make(map[string]string),
	}
}

// Register stores d under format. Each extension ("wav" or ".wav",
// case-insensitive) is mapped to format for ForPath.
func (r *Registry) Register(format string, d Decoder, exts ...string) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[format] = d
	for _, ext := range exts {
		r.exts[normalizeExt(ext)] = format
	}
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	d, ok := r.codecs[format]
	return d, ok
}

// ForPath resolves the decoder for a file path by its extension.
func (r *Registry) ForPath(path string) (Decoder, string, bool) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	format, ok := r.exts[normalizeExt(filepath.Ext(path))]
	if !ok {
		return nil, "", false
	}
	d, ok := r.codecs[format]
	return d, format, ok
}

// Formats lists the registered format keys in sorted order.
func (r *Registry) Formats() []string {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	out := make([]string, 0, len(r.codecs))
	for f := range r.codecs {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

func normalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
