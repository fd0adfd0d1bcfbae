// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/go-audio/riff"
)

// subtypeGUIDTail is shared by every KSDATAFORMAT_SUBTYPE GUID; the first
// two bytes hold the plain format tag.
var subtypeGUIDTail = []byte{0x00, 0x00, 0x00, 0x00, 0x10, 0x00, 0x80, 0x00, 0x00, 0xAA, 0x00, 0x38, 0x9B, 0x71}

// extensibleFmt is the fmt chunk of a WAVE_FORMAT_EXTENSIBLE file.
type extensibleFmt struct {
	Base        [16]byte
	ExtSize     uint16
	ValidBits   uint16
	ChannelMask uint32
	SubFormat   [16]byte
}

// extensibleSize is the smallest fmt chunk that carries a SubFormat GUID.
const extensibleSize = 40

// subFormat reads the format tag out of the SubFormat GUID of the fmt chunk.
// rs must be positioned at the RIFF header. A GUID outside the
// KSDATAFORMAT_SUBTYPE family yields 0.
func subFormat(rs io.ReadSeeker) (int, error) {
	parser := riff.New(rs)
	if err := parser.ParseHeaders(); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrUnsupportedWavLayout, err)
	}

	for {
		ch, err := parser.NextChunk()
		if errors.Is(err, io.EOF) {
			return 0, ErrUnsupportedWavLayout
		}
		if err != nil {
			return 0, fmt.Errorf("%w: %w", ErrUnsupportedWavLayout, err)
		}

		if ch.ID != riff.FmtID {
			if _, err := rs.Seek(int64(ch.Size), io.SeekCurrent); err != nil {
				return 0, fmt.Errorf("wav: %w", err)
			}
			continue
		}

		if ch.Size < extensibleSize {
			return 0, fmt.Errorf("%w: extensible fmt chunk is %d bytes", ErrUnsupportedWavLayout, ch.Size)
		}

		var ext extensibleFmt
		if err := ch.ReadLE(&ext); err != nil {
			return 0, fmt.Errorf("%w: %w", ErrUnsupportedWavLayout, err)
		}

		if !bytes.Equal(ext.SubFormat[2:], subtypeGUIDTail) {
			return 0, nil
		}

		return int(ext.SubFormat[0]) | int(ext.SubFormat[1])<<8, nil
	}
}

// payloadSize returns the size of the chunk whose payload starts at the
// current position of rs, and leaves rs there. A size left unset by a
// streaming writer (0xFFFFFFFF) or running past the end of the stream is
// cut to the bytes actually present, and clipped reports it.
func payloadSize(rs io.ReadSeeker) (size int64, clipped bool, err error) {
	pos, err := rs.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, false, fmt.Errorf("wav: %w", err)
	}

	end, err := rs.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, false, fmt.Errorf("wav: %w", err)
	}

	if _, err := rs.Seek(pos-8, io.SeekStart); err != nil {
		return 0, false, fmt.Errorf("wav: %w", err)
	}

	_, declared, err := riff.New(rs).IDnSize()
	if err != nil {
		return 0, false, fmt.Errorf("%w: %w", ErrUnsupportedWavChunks, err)
	}

	if _, err := rs.Seek(pos, io.SeekStart); err != nil {
		return 0, false, fmt.Errorf("wav: %w", err)
	}

	remaining := max(end-pos, 0)
	if declared == math.MaxUint32 || int64(declared) > remaining {
		return remaining, true, nil
	}

	return int64(declared), false, nil
}
