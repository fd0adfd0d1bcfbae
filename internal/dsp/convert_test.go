// SPDX-License-Identifier: EPL-2.0

package dsp

import (
	"math"
	"testing"
)

func TestFloat32ToInt16(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input float32
		want  int16
	}{
		{name: "zero", input: 0, want: 0},
		{name: "max positive", input: 1, want: math.MaxInt16},
		{name: "max negative", input: -1, want: -math.MaxInt16},
		{name: "half positive", input: 0.5, want: 16384},
		{name: "half negative", input: -0.5, want: -16384},
		{name: "small positive", input: 0.001, want: 33},
		{name: "small negative", input: -0.001, want: -33},
		{name: "clamp over max", input: 1.5, want: math.MaxInt16},
		{name: "clamp under min", input: -1.5, want: -math.MaxInt16},
		{name: "clamp way over max", input: 100, want: math.MaxInt16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Float32ToInt16(tt.input); got != tt.want {
				t.Errorf("Float32ToInt16(%v) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestInt16ToFloat32_FullRange(t *testing.T) {
	t.Parallel()

	if got := Int16ToFloat32(math.MaxInt16); got != 1 {
		t.Errorf("Int16ToFloat32(MaxInt16) = %v, want 1", got)
	}

	if got := Int16ToFloat32(math.MinInt16); got != -1 {
		t.Errorf("Int16ToFloat32(MinInt16) = %v, want -1", got)
	}

	if got := Int16ToFloat32(0); got != 0 {
		t.Errorf("Int16ToFloat32(0) = %v, want 0", got)
	}
}

// Round tripping through float32 must not lose a step.
func TestInt16RoundTrip(t *testing.T) {
	t.Parallel()

	for v := -math.MaxInt16; v <= math.MaxInt16; v += 7 {
		got := Float32ToInt16(Int16ToFloat32(int16(v)))
		if int(got) != v {
			t.Fatalf("round trip of %d gave %d", v, got)
		}
	}
}

func TestIntToFloat32_BitDepths(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		value    int
		bitDepth int
		want     float32
	}{
		{name: "16-bit full scale", value: 32767, bitDepth: 16, want: 1},
		{name: "24-bit full scale", value: 8388607, bitDepth: 24, want: 1},
		{name: "24-bit negative clamps", value: -8388608, bitDepth: 24, want: -1},
		{name: "8-bit full scale", value: 127, bitDepth: 8, want: 1},
		{name: "unknown depth uses 16-bit", value: 32767, bitDepth: 12, want: 1},
		{name: "zero", value: 0, bitDepth: 32, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := IntToFloat32(tt.value, tt.bitDepth)
			if math.Abs(float64(got-tt.want)) > 1e-6 {
				t.Errorf("IntToFloat32(%d, %d) = %v, want %v", tt.value, tt.bitDepth, got, tt.want)
			}
		})
	}
}

func TestFloat32ToInt16_Monotonic(t *testing.T) {
	t.Parallel()

	prev := Float32ToInt16(-1)
	for f := -0.99; f <= 1.0; f += 0.01 {
		curr := Float32ToInt16(float32(f))
		if curr < prev {
			t.Errorf("Float32ToInt16 not monotonic: f=%v gives %d, previous was %d", f, curr, prev)
		}
		prev = curr
	}
}

func TestFloat32ToInt16_ZeroAllocs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping allocation test in short mode")
	}

	allocs := testing.AllocsPerRun(1000, func() {
		_ = Float32ToInt16(0.5)
	})

	if allocs > 0 {
		t.Errorf("Float32ToInt16 allocated %v times, want 0", allocs)
	}
}

func BenchmarkFloat32ToInt16(b *testing.B) {
	floatSamples := make([]float32, 16000)
	int16Samples := make([]int16, 16000)

	for i := range floatSamples {
		floatSamples[i] = float32(math.Sin(float64(i) * 0.1))
	}

	b.ResetTimer()
	b.ReportAllocs()

	for range b.N {
		for j := range floatSamples {
			int16Samples[j] = Float32ToInt16(floatSamples[j])
		}
	}
}
