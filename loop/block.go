// SPDX-License-Identifier: EPL-2.0

package loop

// Block is one device request: Frames samples are to be written into every
// channel slice, starting at Offset.
type Block struct {
	Channels [][]float32
	Offset   int
	Frames   int
}

// NewBlock allocates a block with channels channels of frames samples each.
func NewBlock(channels, frames int) Block {
	channels = max(channels, 0)
	frames = max(frames, 0)

	data := make([]float32, channels*frames)
	chans := make([][]float32, channels)
	for c := range chans {
		chans[c] = data[c*frames : (c+1)*frames : (c+1)*frames]
	}
	return Block{Channels: chans, Frames: frames}
}

// Extent clamps the request to what every channel can hold. It returns the
// start offset and the number of frames that can be written.
func (b Block) Extent() (int, int) {
	off := max(b.Offset, 0)
	n := max(b.Frames, 0)
	for _, ch := range b.Channels {
		n = min(n, max(len(ch)-off, 0))
	}
	return off, n
}

// silence zeroes the writable extent of every channel.
func (b Block) silence() {
	off, n := b.Extent()
	if n == 0 {
		return
	}
	for _, ch := range b.Channels {
		clear(ch[off : off+n])
	}
}
