// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	"github.com/ik5/voxprep/audio"
	"github.com/ik5/voxprep/internal/memfile"
	"github.com/ik5/voxprep/internal/pcm"
)

type Decoder struct{}

// Decode reads integer PCM WAV data. Inputs that cannot seek are buffered
// in memory first.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, err := memfile.Seekable(r)
	if err != nil {
		return nil, fmt.Errorf("wav: %w", err)
	}

	dec, info, err := open(rs)
	if err != nil {
		return nil, err
	}

	if err := supported(info); err != nil {
		return nil, err
	}

	src := pcm.NewIntSource(dec, info.SampleRate, info.Channels, info.BitDepth).
		WithLimit(info.Frames * info.Channels)

	return src, nil
}

func supported(info Info) error {
	if info.Encoding() != audio.EncodingInt {
		return fmt.Errorf("%w: format tag %#04x", ErrUnsupportedEncoding, info.AudioFormat)
	}

	switch info.BitDepth {
	case 16, 24, 32:
		return nil
	default:
		return fmt.Errorf("%w: %d-bit", ErrUnsupportedEncoding, info.BitDepth)
	}
}
