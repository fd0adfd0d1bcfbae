// SPDX-License-Identifier: EPL-2.0

package dsp

// Float32ToInt16 scales x from [-1, 1] to 16-bit PCM, clamping out of range
// input and rounding to the nearest step.
func Float32ToInt16(x float32) int16 {
	x = clamp(x)

	v := x * 32767
	if v >= 0 {
		return int16(v + 0.5)
	}

	return int16(v - 0.5)
}

// Int16ToFloat32 is the inverse of Float32ToInt16. MaxInt16 maps to 1 and
// MinInt16 clamps to -1.
func Int16ToFloat32(v int16) float32 {
	return clamp(float32(v) / 32767)
}

// IntToFloat32 normalizes a signed integer sample of the given bit depth.
// Unknown depths are treated as 16-bit.
func IntToFloat32(v int, bitDepth int) float32 {
	return clamp(float32(v) / FullScale(bitDepth))
}

// FullScale is the largest positive sample value for a bit depth.
func FullScale(bitDepth int) float32 {
	switch bitDepth {
	case 8:
		return 127
	case 24:
		return 8388607
	case 32:
		return 2147483647
	default:
		return 32767
	}
}

func clamp(x float32) float32 {
	if x > 1 {
		return 1
	}
	if x < -1 {
		return -1
	}

	return x
}
