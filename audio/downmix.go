// SPDX-License-Identifier: EPL-2.0

package audio

// Downmix averages all channels of buf into a new mono Buffer. Buffers with
// fewer than two channels are returned as is.
func Downmix(buf *Buffer) *Buffer {
	channels := buf.Channels()
	if channels < 2 {
		return buf
	}

	frames := buf.Frames()
	out := NewBuffer(1, frames, buf.SampleRate)
	dst := out.Data[0]

	switch channels {
	case 2: // Stereo (most common)
		l, r := buf.Data[0], buf.Data[1]
		for f := range frames {
			dst[f] = (l[f] + r[f]) * 0.5
		}
	default:
		inv := float32(1.0) / float32(channels)
		for f := range frames {
			var sum float32
			for _, ch := range buf.Data {
				sum += ch[f]
			}
			dst[f] = sum * inv
		}
	}

	return out
}
