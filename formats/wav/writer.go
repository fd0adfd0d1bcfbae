// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/voxprep/internal/memfile"
)

// WriteWAV16 writes a mono 16-bit PCM WAV at sampleRate. The encoder seeks
// back to patch chunk sizes once all samples are written.
func WriteWAV16(w io.WriteSeeker, sampleRate int, samples []int16) error {
	enc := gowav.NewEncoder(w, sampleRate, 16, 1, FormatPCM)

	data := make([]int, len(samples))
	for i, s := range samples {
		data[i] = int(s)
	}

	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: 16,
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("wav: writing samples: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("wav: finalizing: %w", err)
	}

	return nil
}

// EncodeWAV16 is WriteWAV16 into memory.
func EncodeWAV16(sampleRate int, samples []int16) ([]byte, error) {
	f := memfile.New(make([]byte, 0, 44+2*len(samples)))
	if err := WriteWAV16(f, sampleRate, samples); err != nil {
		return nil, err
	}

	return f.Bytes(), nil
}
