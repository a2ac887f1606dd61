// SPDX-License-Identifier: EPL-2.0

package utils

// FullScale returns the magnitude of the most negative value of a signed
// PCM integer of the given bit depth (e.g. 32768 for 16-bit).
// Unknown depths are treated as 16-bit.
func FullScale(bitDepth int) float32 {
	switch bitDepth {
	case 8:
		return 128.0
	case 16:
		return 32768.0
	case 24:
		return 8388608.0
	case 32:
		return 2147483648.0
	default:
		return 32768.0
	}
}

// PCMToFloat32 converts a signed integer PCM sample to float32 in [-1, 1).
func PCMToFloat32(v int, bitDepth int) float32 {
	return float32(v) / FullScale(bitDepth)
}

// Float32ToPCM converts x to a signed integer PCM sample of the given bit
// depth. Values outside [-1, 1] are clamped.
func Float32ToPCM(x float32, bitDepth int) int {
	scale := FullScale(bitDepth)
	if x >= 1 {
		return int(scale) - 1
	}
	if x <= -1 {
		return -int(scale)
	}
	if x >= 0 {
		return int(x * (scale - 1))
	}
	return int(x * scale)
}

// Float32ToInt16 converts x to 16-bit PCM, clamping to [-1, 1].
func Float32ToInt16(x float32) int16 {
	return int16(Float32ToPCM(x, 16))
}
