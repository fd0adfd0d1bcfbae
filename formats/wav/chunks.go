// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/riff"
)

// Chunk is a top level RIFF chunk.
type Chunk struct {
	ID     string
	Size   int
	Offset int64 // position of the chunk payload
}

// Chunks lists the top level chunks of a RIFF/WAVE stream in file order.
func Chunks(rs io.ReadSeeker) ([]Chunk, error) {
	if err := checkSignature(rs); err != nil {
		return nil, err
	}

	parser := riff.New(rs)
	if err := parser.ParseHeaders(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedWavLayout, err)
	}

	var chunks []Chunk
	for {
		ch, err := parser.NextChunk()
		if errors.Is(err, io.EOF) {
			return chunks, nil
		}
		if err != nil {
			return chunks, fmt.Errorf("%w: %w", ErrUnsupportedWavChunks, err)
		}

		pos, err := rs.Seek(0, io.SeekCurrent)
		if err != nil {
			return chunks, fmt.Errorf("wav: %w", err)
		}

		// riff rounds odd sizes up, which wraps an unset 0xFFFFFFFF to 0.
		size, _, err := payloadSize(rs)
		if err != nil {
			return chunks, err
		}

		chunks = append(chunks, Chunk{ID: string(ch.ID[:]), Size: int(size), Offset: pos})

		// Payloads are word aligned.
		skip := size + size%2
		if _, err := rs.Seek(pos+skip, io.SeekStart); err != nil {
			return chunks, fmt.Errorf("wav: %w", err)
		}
	}
}
