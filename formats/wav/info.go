// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"fmt"
	"io"
	"time"

	gowav "github.com/go-audio/wav"

	"github.com/ik5/voxprep/audio"
)

// WAVE format tags found in the fmt chunk.
const (
	FormatPCM        = 0x0001
	FormatIEEEFloat  = 0x0003
	FormatExtensible = 0xFFFE
)

// Info is the header of a WAV file.
type Info struct {
	Channels    int
	SampleRate  int
	BitDepth    int
	AudioFormat int
	SubFormat   int // format tag inside the extensible GUID, 0 otherwise
	Frames      int
	Duration    time.Duration
}

// SampleWidth is the number of bytes per sample.
func (i Info) SampleWidth() int {
	return (i.BitDepth + 7) / 8
}

func (i Info) Encoding() audio.Encoding {
	switch i.AudioFormat {
	case FormatPCM:
		return audio.EncodingInt
	case FormatIEEEFloat:
		return audio.EncodingFloat
	case FormatExtensible:
		return Info{AudioFormat: i.SubFormat}.Encoding()
	default:
		return audio.EncodingUnknown
	}
}

func (i Info) Spec() audio.Spec {
	return audio.Spec{
		Channels:   i.Channels,
		SampleRate: i.SampleRate,
		BitDepth:   i.BitDepth,
		Encoding:   i.Encoding(),
	}
}

func (i Info) String() string {
	return fmt.Sprintf("%s, %d frames (%s)", i.Spec(), i.Frames, i.Duration)
}

// ReadInfo parses the WAV header from rs and leaves it positioned at the
// start of the sample data. A data chunk whose size was never filled in, or
// that claims more bytes than the stream holds, is taken to run to the end
// of the stream.
func ReadInfo(rs io.ReadSeeker) (Info, error) {
	_, info, err := open(rs)
	return info, err
}

// open validates the RIFF/WAVE signature and forwards a go-audio decoder to
// the data chunk.
func open(rs io.ReadSeeker) (*gowav.Decoder, Info, error) {
	start, err := rs.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, Info{}, fmt.Errorf("wav: %w", err)
	}

	if err := checkSignature(rs); err != nil {
		return nil, Info{}, err
	}

	dec := gowav.NewDecoder(rs)
	dec.ReadInfo()
	if err := dec.Err(); err != nil {
		return nil, Info{}, fmt.Errorf("%w: %w", ErrUnsupportedWavLayout, err)
	}
	if dec.NumChans == 0 || dec.SampleRate == 0 || dec.BitDepth == 0 {
		return nil, Info{}, ErrUnsupportedWavLayout
	}

	info := Info{
		Channels:    int(dec.NumChans),
		SampleRate:  int(dec.SampleRate),
		BitDepth:    int(dec.BitDepth),
		AudioFormat: int(dec.WavAudioFormat),
	}

	// go-audio drops the fmt bytes past the first 16, GUID included.
	if info.AudioFormat == FormatExtensible {
		if info.SubFormat, err = rereadSubFormat(rs, start); err != nil {
			return nil, Info{}, err
		}
	}

	if err := dec.FwdToPCM(); err != nil {
		return nil, Info{}, fmt.Errorf("%w: %w", ErrUnsupportedWavChunks, err)
	}
	if dec.PCMChunk == nil {
		return nil, Info{}, ErrUnsupportedWavChunks
	}

	size, clipped, err := payloadSize(rs)
	if err != nil {
		return nil, Info{}, err
	}
	if clipped {
		dec.PCMSize = int(size)
		dec.PCMChunk.Size = int(size)
		dec.PCMChunk.R = io.LimitReader(rs, size)
	}

	if blockAlign := info.Channels * info.SampleWidth(); blockAlign > 0 {
		info.Frames = dec.PCMSize / blockAlign
	}
	info.Duration = time.Duration(info.Frames) * time.Second / time.Duration(info.SampleRate)

	return dec, info, nil
}

// rereadSubFormat parses the fmt chunk again from start and restores the
// current position afterwards.
func rereadSubFormat(rs io.ReadSeeker, start int64) (int, error) {
	pos, err := rs.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, fmt.Errorf("wav: %w", err)
	}

	if _, err := rs.Seek(start, io.SeekStart); err != nil {
		return 0, fmt.Errorf("wav: %w", err)
	}

	sub, err := subFormat(rs)
	if err != nil {
		return 0, err
	}

	if _, err := rs.Seek(pos, io.SeekStart); err != nil {
		return 0, fmt.Errorf("wav: %w", err)
	}

	return sub, nil
}

func checkSignature(rs io.ReadSeeker) error {
	start, err := rs.Seek(0, io.SeekCurrent)
	if err != nil {
		return fmt.Errorf("wav: %w", err)
	}

	header := make([]byte, 12)
	if _, err := io.ReadFull(rs, header); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return ErrNotWavFile
		}
		return fmt.Errorf("wav: %w", err)
	}

	if !bytes.Equal(header[:4], []byte("RIFF")) || !bytes.Equal(header[8:12], []byte("WAVE")) {
		return ErrNotWavFile
	}

	if _, err := rs.Seek(start, io.SeekStart); err != nil {
		return fmt.Errorf("wav: %w", err)
	}

	return nil
}
