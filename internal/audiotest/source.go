// SPDX-License-Identifier: EPL-2.0

// Package audiotest holds test helpers shared across packages: synthetic
// sources and an in-memory WAV builder.
package audiotest

import (
	"io"
	"math"
)

// Source generates frames from a waveform function. It satisfies
// audio.Source without importing it.
type Source struct {
	Rate   int
	Chans  int
	Frames int // total frames to generate
	Wave   func(frame, channel int) float32

	// Err, when set, is returned once Frames have been produced instead of io.EOF.
	Err error

	pos    int
	Closed bool
}

func NewSine(rate, channels, frames int, freq float64) *Source {
	return &Source{
		Rate:   rate,
		Chans:  channels,
		Frames: frames,
		Wave: func(frame, _ int) float32 {
			return float32(math.Sin(2 * math.Pi * freq * float64(frame) / float64(rate)))
		},
	}
}

func NewConstant(rate, channels, frames int, value float32) *Source {
	return &Source{
		Rate:   rate,
		Chans:  channels,
		Frames: frames,
		Wave:   func(int, int) float32 { return value },
	}
}

// NewRamp produces frame/frames on every channel, offset by channel index.
func NewRamp(rate, channels, frames int) *Source {
	return &Source{
		Rate:   rate,
		Chans:  channels,
		Frames: frames,
		Wave: func(frame, channel int) float32 {
			return float32(frame)/float32(frames) + float32(channel)*0.01
		},
	}
}

func (s *Source) SampleRate() int { return s.Rate }
func (s *Source) Channels() int   { return s.Chans }
func (s *Source) BufSize() int    { return 4096 }

func (s *Source) Close() error {
	s.Closed = true
	return nil
}

func (s *Source) ReadSamples(dst []float32) (int, error) {
	if s.pos >= s.Frames {
		if s.Err != nil {
			return 0, s.Err
		}
		return 0, io.EOF
	}

	frames := min(len(dst)/s.Chans, s.Frames-s.pos)
	for f := range frames {
		for c := range s.Chans {
			dst[f*s.Chans+c] = s.Wave(s.pos+f, c)
		}
	}
	s.pos += frames

	if s.pos >= s.Frames && s.Err == nil {
		return frames * s.Chans, io.EOF
	}

	return frames * s.Chans, nil
}

// Stalled always reports no data and no error.
type Stalled struct {
	Rate  int
	Chans int
}

func (s Stalled) SampleRate() int                    { return s.Rate }
func (s Stalled) Channels() int                      { return s.Chans }
func (s Stalled) BufSize() int                       { return 0 }
func (s Stalled) Close() error                       { return nil }
func (s Stalled) ReadSamples([]float32) (int, error) { return 0, nil }
