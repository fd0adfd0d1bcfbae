// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MPEG-1/2 Layer III audio with github.com/hajimehoshi/go-mp3.
// go-mp3 always produces interleaved stereo 16-bit PCM, so every source is
// two channels regardless of the file.
package mp3

import (
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/voxprep/audio"
	"github.com/ik5/voxprep/internal/pcm"
)

const channels = 2

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("mp3: %w", err)
	}

	return pcm.NewInt16LESource(dec, dec.SampleRate(), channels), nil
}
