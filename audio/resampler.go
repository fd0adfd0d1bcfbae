// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ik5/voxprep/internal/dsp"
)

// Resampler streams from src to a target sample rate using cubic
// interpolation. Works on interleaved samples and preserves channel count.
// When downsampling, source frames go through a one-pole low-pass first.
// Equal source and target rates pass samples through untouched.
type Resampler struct {
	src      Source
	dstRate  int
	step     float64 // source frames advanced per output frame
	channels int

	// window holds frames t-1, t0, t+1, t+2 around the output position.
	// real marks which of them came from the source; the rest repeat the
	// last source frame.
	window [4][]float32
	real   [4]bool
	pos    float64 // fractional offset between window[1] and window[2]

	frame   []float32
	primed  bool
	drained bool
	done    bool

	filter []float32
	alpha  float32

	// err is set when src and dstRate cannot be resampled at all and is
	// returned from every read.
	err error
}

// NewResampler wraps src. A non-positive rate on either side, or a source
// without channels, makes every ReadSamples fail with ErrInvalidRate or
// ErrInvalidChannels.
func NewResampler(src Source, dstRate int) *Resampler {
	channels := src.Channels()

	r := &Resampler{
		src:      src,
		dstRate:  dstRate,
		channels: channels,
	}

	switch {
	case channels < 1:
		r.err = fmt.Errorf("resampler: %w: %d", ErrInvalidChannels, channels)
		return r
	case src.SampleRate() <= 0 || dstRate <= 0:
		r.err = fmt.Errorf("resampler: %w: %d Hz to %d Hz", ErrInvalidRate, src.SampleRate(), dstRate)
		return r
	}

	r.step = float64(src.SampleRate()) / float64(dstRate)
	r.frame = make([]float32, channels)

	if r.step > 1 {
		r.alpha = float32(1 / r.step)
		r.filter = make([]float32, channels)
	}

	for i := range r.window {
		r.window[i] = make([]float32, channels)
	}

	return r
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("resampler: %w", err)
	}

	return nil
}

func (r *Resampler) passthrough() bool {
	return r.src.SampleRate() == r.dstRate
}

// readFrame reads exactly one frame into r.frame. It reports false once the
// source is exhausted; a trailing partial frame is dropped.
func (r *Resampler) readFrame() (bool, error) {
	if r.drained {
		return false, nil
	}

	got := 0
	for got < r.channels {
		n, err := r.src.ReadSamples(r.frame[got:])
		got += n

		if err == io.EOF {
			r.drained = true
			break
		}
		if err != nil {
			return false, fmt.Errorf("resampler: %w", err)
		}
		if n == 0 {
			return false, io.ErrNoProgress
		}
	}

	return got == r.channels, nil
}

// fill loads slot i from the source, or repeats slot i-1 when drained.
func (r *Resampler) fill(i int) error {
	ok, err := r.readFrame()
	if err != nil {
		return err
	}

	if ok {
		if r.filter != nil {
			dsp.LowPass(r.frame, r.filter, r.alpha)
		}
		copy(r.window[i], r.frame)
	} else {
		copy(r.window[i], r.window[i-1])
	}
	r.real[i] = ok

	return nil
}

func (r *Resampler) prime() error {
	r.primed = true

	ok, err := r.readFrame()
	if err != nil {
		return err
	}
	if !ok {
		r.done = true
		return nil
	}

	copy(r.window[1], r.frame)
	// Seed the filter with the first frame to avoid a fade-in.
	if r.filter != nil {
		copy(r.filter, r.frame)
	}

	copy(r.window[0], r.window[1])
	r.real[0], r.real[1] = false, true

	if err := r.fill(2); err != nil {
		return err
	}

	return r.fill(3)
}

func (r *Resampler) advance() error {
	r.window[0], r.window[1], r.window[2], r.window[3] = r.window[1], r.window[2], r.window[3], r.window[0]
	r.real[0], r.real[1], r.real[2] = r.real[1], r.real[2], r.real[3]

	return r.fill(3)
}

// ReadSamples produces samples at the target rate. len(dst) must be a
// multiple of the channel count.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if r.err != nil {
		return 0, r.err
	}
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if r.passthrough() {
		return r.src.ReadSamples(dst)
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	written := 0
	for !r.done && written < len(dst) {
		for r.pos >= 1 {
			r.pos--
			if err := r.advance(); err != nil {
				return written, err
			}
		}

		if !r.real[1] {
			r.done = true
			break
		}

		alpha := float32(r.pos)
		for c := range r.channels {
			dst[written+c] = dsp.CubicInterpolate(
				r.window[0][c], r.window[1][c], r.window[2][c], r.window[3][c], alpha)
		}

		written += r.channels
		r.pos += r.step
	}

	if r.done {
		return written, io.EOF
	}

	return written, nil
}
