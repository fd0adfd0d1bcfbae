// SPDX-License-Identifier: EPL-2.0

package voxprep

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ik5/voxprep/audio"
	"github.com/ik5/voxprep/formats/aiff"
	"github.com/ik5/voxprep/formats/mp3"
	"github.com/ik5/voxprep/formats/vorbis"
	"github.com/ik5/voxprep/formats/wav"
	"github.com/ik5/voxprep/internal/dsp"
)

// DefaultBufferSize is used when neither the caller nor the source picks one.
const DefaultBufferSize = 4096

// ErrInvalidRate is returned when a target sample rate is not positive.
var ErrInvalidRate = audio.ErrInvalidRate

// NewRegistry returns a registry holding every decoder this module ships.
func NewRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("wave", wav.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("oga", vorbis.Decoder{})

	return reg
}

// Open decodes the file at path, picking the decoder by extension. Closing
// the returned source closes the file.
func Open(path string) (audio.Source, error) {
	dec, err := NewRegistry().ForPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening audio: %w", err)
	}

	src, err := dec.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	return &fileSource{Source: src, file: f}, nil
}

type fileSource struct {
	audio.Source
	file *os.File
}

func (s *fileSource) Close() error {
	return errors.Join(s.Source.Close(), s.file.Close())
}

// ReadWAVSamples reads a WAV file that must already be in the speech shape
// (audio.SpeechSpec) and returns its samples normalized to [-1, 1].
func ReadWAVSamples(path string) ([]float32, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening wav: %w", err)
	}
	defer f.Close()

	info, err := wav.ReadInfo(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if err := audio.SpeechSpec.Match(info.Spec()); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	pcm16, _, err := wav.ReadPCM16(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	samples := make([]float32, len(pcm16))
	for i, v := range pcm16 {
		samples[i] = dsp.Int16ToFloat32(v)
	}

	return samples, nil
}
