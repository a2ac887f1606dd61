// SPDX-License-Identifier: EPL-2.0

package sampleloop

import (
	"github.com/ik5/sampleloop/audio"
	"github.com/ik5/sampleloop/formats/aiff"
	"github.com/ik5/sampleloop/formats/mp3"
	"github.com/ik5/sampleloop/formats/vorbis"
	"github.com/ik5/sampleloop/formats/wav"
)

// Format keys of the built-in decoders, usable with Looper.LoadReader.
const (
	FormatWAV    = "wav"
	FormatAIFF   = "aiff"
	FormatMP3    = "mp3"
	FormatVorbis = "ogg vorbis"
)

// DefaultRegistry returns a registry with every built-in decoder and the
// usual file extensions for each.
func DefaultRegistry() *audio.Registry {
	r := audio.NewRegistry()
	r.Register(FormatWAV, wav.Decoder{}, "wav", "wave")
	r.Register(FormatAIFF, aiff.Decoder{}, "aiff", "aif")
	r.Register(FormatMP3, mp3.Decoder{}, "mp3")
	r.Register(FormatVorbis, vorbis.Decoder{}, "ogg", "oga")
	return r
}
