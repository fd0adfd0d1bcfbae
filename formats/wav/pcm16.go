// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"

	"github.com/ik5/voxprep/audio"
)

// ReadPCM16 reads every sample of a 16-bit integer PCM file, interleaved.
func ReadPCM16(rs io.ReadSeeker) ([]int16, Info, error) {
	dec, info, err := open(rs)
	if err != nil {
		return nil, Info{}, err
	}

	if info.Encoding() != audio.EncodingInt || info.BitDepth != 16 {
		return nil, info, fmt.Errorf("%w: want 16-bit integer PCM, found %d-bit %s",
			ErrUnsupportedEncoding, info.BitDepth, info.Encoding())
	}

	total := info.Frames * info.Channels
	out := make([]int16, 0, total)
	buf := &goaudio.IntBuffer{
		Data:           make([]int, min(total, 8192)),
		Format:         dec.Format(),
		SourceBitDepth: 16,
	}

	for len(out) < total {
		buf.Data = buf.Data[:min(cap(buf.Data), total-len(out))]

		n, err := dec.PCMBuffer(buf)
		for _, v := range buf.Data[:n] {
			out = append(out, int16(v))
		}

		if err == io.EOF || err == io.ErrUnexpectedEOF || (err == nil && n == 0) {
			break
		}
		if err != nil {
			return nil, info, fmt.Errorf("wav: reading samples: %w", err)
		}
	}

	return out, info, nil
}
