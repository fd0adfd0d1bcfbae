// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ik5/voxprep/internal/dsp"
)

// Int16LESource reads interleaved little-endian 16-bit samples from a byte
// stream, as produced by go-mp3.
type Int16LESource struct {
	r          io.Reader
	sampleRate int
	channels   int
	buf        []byte
}

func NewInt16LESource(r io.Reader, sampleRate, channels int) *Int16LESource {
	return &Int16LESource{
		r:          r,
		sampleRate: sampleRate,
		channels:   channels,
		buf:        make([]byte, 8192),
	}
}

func (s *Int16LESource) SampleRate() int { return s.sampleRate }
func (s *Int16LESource) Channels() int   { return s.channels }
func (s *Int16LESource) BufSize() int    { return cap(s.buf) / 2 }
func (s *Int16LESource) Close() error    { return nil }

func (s *Int16LESource) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	need := len(dst) * 2
	if cap(s.buf) < need {
		s.buf = make([]byte, need)
	}
	s.buf = s.buf[:need]

	// A trailing odd byte at the end of the stream is dropped.
	n, err := io.ReadFull(s.r, s.buf)

	samples := n / 2
	for i := range samples {
		v := int16(binary.LittleEndian.Uint16(s.buf[2*i:]))
		dst[i] = dsp.Int16ToFloat32(v)
	}

	switch {
	case err == io.EOF || err == io.ErrUnexpectedEOF:
		return samples, io.EOF
	case err != nil:
		return samples, fmt.Errorf("pcm: %w", err)
	}

	return samples, nil
}
