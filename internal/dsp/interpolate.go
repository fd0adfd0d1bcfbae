// SPDX-License-Identifier: EPL-2.0

package dsp

// CubicInterpolate evaluates a Catmull-Rom spline through y0..y3 at x,
// the fractional position between y1 (x=0) and y2 (x=1).
func CubicInterpolate(y0, y1, y2, y3, x float32) float32 {
	a0 := -0.5*y0 + 1.5*y1 - 1.5*y2 + 0.5*y3
	a1 := y0 - 2.5*y1 + 2*y2 - 0.5*y3
	a2 := -0.5*y0 + 0.5*y2

	return ((a0*x+a1)*x+a2)*x + y1
}

// LowPass runs one step of a one-pole low-pass filter over a frame, in place.
// state holds the previous output per channel and is updated.
func LowPass(frame, state []float32, alpha float32) {
	for c := range frame {
		frame[c] = alpha*frame[c] + (1-alpha)*state[c]
		state[c] = frame[c]
	}
}
