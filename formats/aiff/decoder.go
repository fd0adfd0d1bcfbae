// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes 16, 24 and 32-bit AIFF files with github.com/go-audio/aiff.
package aiff

import (
	"fmt"
	"io"

	"github.com/go-audio/aiff"

	"github.com/ik5/voxprep/audio"
	"github.com/ik5/voxprep/internal/memfile"
	"github.com/ik5/voxprep/internal/pcm"
)

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, err := memfile.Seekable(r)
	if err != nil {
		return nil, fmt.Errorf("aiff: %w", err)
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}
	dec.ReadInfo()

	format := dec.Format()
	if format == nil || format.NumChannels == 0 {
		return nil, ErrUnsupportedAiffLayout
	}

	bitDepth := int(dec.BitDepth)
	switch bitDepth {
	case 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: %d-bit", ErrUnsupportedBitDepth, bitDepth)
	}

	return pcm.NewIntSource(dec, format.SampleRate, format.NumChannels, bitDepth), nil
}
