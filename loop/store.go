// SPDX-License-Identifier: EPL-2.0

package loop

import (
	"sync/atomic"

	"github.com/ik5/sampleloop/audio"
)

// published wraps every Load so that each publish has a distinct identity,
// even when the same buffer is loaded twice. The renderer rewinds when it
// sees a new one.
type published struct {
	buf *audio.Buffer
}

// Store holds the clip being looped. Buffers are swapped whole and never
// modified after Load. The zero value is an empty store.
type Store struct {
	cur atomic.Pointer[published]
}

// Load publishes buf and makes the renderer restart from frame 0.
// A nil buffer or one without frames or channels is rejected with
// ErrEmptyBuffer and the current clip is kept.
func (s *Store) Load(buf *audio.Buffer) error {
	if buf.Frames() == 0 || buf.Channels() == 0 {
		return ErrEmptyBuffer
	}

	s.cur.Store(&published{buf: buf})
	return nil
}

// Clear publishes an empty buffer; the renderer outputs silence.
func (s *Store) Clear() {
	s.cur.Store(&published{buf: &audio.Buffer{}})
}

// Current returns the published buffer, or nil if nothing was ever loaded.
func (s *Store) Current() *audio.Buffer {
	if p := s.cur.Load(); p != nil {
		return p.buf
	}
	return nil
}

func (s *Store) snapshot() *published {
	return s.cur.Load()
}
