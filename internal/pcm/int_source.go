// SPDX-License-Identifier: EPL-2.0

// Package pcm adapts integer PCM readers from the decoding libraries to
// float32 sources.
package pcm

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"

	"github.com/ik5/voxprep/internal/dsp"
)

// BufferReader is the reading half shared by go-audio's wav and aiff decoders.
type BufferReader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// IntSource reads go-audio IntBuffers and normalizes them by bit depth.
type IntSource struct {
	dec        BufferReader
	sampleRate int
	channels   int
	bitDepth   int
	buf        *goaudio.IntBuffer
	closer     io.Closer
	remaining  int // samples left when limited, -1 otherwise
	eof        bool
}

func NewIntSource(dec BufferReader, sampleRate, channels, bitDepth int) *IntSource {
	return &IntSource{
		dec:        dec,
		sampleRate: sampleRate,
		channels:   channels,
		bitDepth:   bitDepth,
		remaining:  -1,
	}
}

// WithLimit stops the source after total samples, whatever follows them in
// the underlying stream.
func (s *IntSource) WithLimit(total int) *IntSource {
	s.remaining = total
	return s
}

// WithCloser makes Close release c as well.
func (s *IntSource) WithCloser(c io.Closer) *IntSource {
	s.closer = c
	return s
}

func (s *IntSource) SampleRate() int { return s.sampleRate }
func (s *IntSource) Channels() int   { return s.channels }

func (s *IntSource) BufSize() int {
	if s.buf != nil {
		return cap(s.buf.Data)
	}
	return 4096
}

func (s *IntSource) Close() error {
	if s.closer == nil {
		return nil
	}
	if err := s.closer.Close(); err != nil {
		return fmt.Errorf("pcm: %w", err)
	}

	return nil
}

func (s *IntSource) ReadSamples(dst []float32) (int, error) {
	if s.eof || s.remaining == 0 {
		return 0, io.EOF
	}
	if len(dst) == 0 {
		return 0, nil
	}
	if s.remaining > 0 && len(dst) > s.remaining {
		dst = dst[:s.remaining]
	}

	if s.buf == nil || cap(s.buf.Data) < len(dst) {
		s.buf = &goaudio.IntBuffer{
			Data:           make([]int, len(dst)),
			Format:         s.dec.Format(),
			SourceBitDepth: s.bitDepth,
		}
	}
	s.buf.Data = s.buf.Data[:len(dst)]

	n, err := s.dec.PCMBuffer(s.buf)
	for i := range n {
		dst[i] = dsp.IntToFloat32(s.buf.Data[i], s.bitDepth)
	}
	if s.remaining > 0 {
		s.remaining -= n
		if s.remaining == 0 && err == nil {
			s.eof = true
			return n, io.EOF
		}
	}

	switch {
	case err == io.EOF || err == io.ErrUnexpectedEOF:
		s.eof = true
		return n, io.EOF
	case err != nil:
		return n, fmt.Errorf("pcm: %w", err)
	case n < len(dst):
		// go-audio reports the end of the data chunk as a short read.
		s.eof = true
		return n, io.EOF
	}

	return n, nil
}
