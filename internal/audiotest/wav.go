// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"bytes"
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"testing"
)

// Header describes the fmt chunk of a generated WAV file.
type Header struct {
	Format     uint16 // 1 = PCM, 3 = IEEE float, 0xFFFE = extensible
	Channels   uint16
	SampleRate uint32
	BitDepth   uint16

	// SubFormat is the format tag carried in the extensible GUID. Only
	// written when Format is 0xFFFE.
	SubFormat uint16
}

// subtypeGUIDTail follows the two tag bytes in every KSDATAFORMAT_SUBTYPE GUID.
var subtypeGUIDTail = []byte{0x00, 0x00, 0x00, 0x00, 0x10, 0x00, 0x80, 0x00, 0x00, 0xAA, 0x00, 0x38, 0x9B, 0x71}

// PCM16 is a 16-bit integer PCM header.
func PCM16(rate, channels int) Header {
	return Header{Format: 1, Channels: uint16(channels), SampleRate: uint32(rate), BitDepth: 16}
}

// Extensible is a WAVE_FORMAT_EXTENSIBLE header whose GUID carries subFormat.
func Extensible(rate, channels, bitDepth int, subFormat uint16) Header {
	return Header{
		Format:     0xFFFE,
		Channels:   uint16(channels),
		SampleRate: uint32(rate),
		BitDepth:   uint16(bitDepth),
		SubFormat:  subFormat,
	}
}

// Chunk is an extra RIFF chunk written between fmt and data.
type Chunk struct {
	ID   string
	Data []byte
}

// WAV builds a RIFF/WAVE file with the given header and raw data bytes.
// Extra chunks are placed before the data chunk; their data should have
// an even length.
func WAV(h Header, data []byte, extra ...Chunk) []byte {
	body := new(bytes.Buffer)
	body.WriteString("WAVE")

	fmtChunk := new(bytes.Buffer)
	blockAlign := h.Channels * ((h.BitDepth + 7) / 8)
	binary.Write(fmtChunk, binary.LittleEndian, h.Format)
	binary.Write(fmtChunk, binary.LittleEndian, h.Channels)
	binary.Write(fmtChunk, binary.LittleEndian, h.SampleRate)
	binary.Write(fmtChunk, binary.LittleEndian, h.SampleRate*uint32(blockAlign))
	binary.Write(fmtChunk, binary.LittleEndian, blockAlign)
	binary.Write(fmtChunk, binary.LittleEndian, h.BitDepth)
	if h.Format == 0xFFFE {
		// cbSize, valid bits per sample, channel mask, then the GUID.
		binary.Write(fmtChunk, binary.LittleEndian, uint16(22))
		binary.Write(fmtChunk, binary.LittleEndian, h.BitDepth)
		binary.Write(fmtChunk, binary.LittleEndian, uint32(0))
		binary.Write(fmtChunk, binary.LittleEndian, h.SubFormat)
		fmtChunk.Write(subtypeGUIDTail)
	}
	writeChunk(body, "fmt ", fmtChunk.Bytes())

	for _, c := range extra {
		writeChunk(body, c.ID, c.Data)
	}
	writeChunk(body, "data", data)

	out := new(bytes.Buffer)
	out.WriteString("RIFF")
	binary.Write(out, binary.LittleEndian, uint32(body.Len()))
	out.Write(body.Bytes())

	return out.Bytes()
}

// Int16Data encodes samples as little-endian 16-bit PCM.
func Int16Data(samples ...int16) []byte {
	buf := new(bytes.Buffer)
	binary.Write(buf, binary.LittleEndian, samples)

	return buf.Bytes()
}

// Float32Data encodes samples as little-endian IEEE 754 floats.
func Float32Data(samples ...float32) []byte {
	buf := make([]byte, 4*len(samples))
	for i, v := range samples {
		binary.LittleEndian.PutUint32(buf[4*i:], math.Float32bits(v))
	}

	return buf
}

// SetDataSize overwrites the declared size of the data chunk, and of the
// RIFF container when size is 0xFFFFFFFF, the way streaming writers leave
// them. wav is modified in place and returned.
func SetDataSize(wav []byte, size uint32) []byte {
	if size == math.MaxUint32 {
		binary.LittleEndian.PutUint32(wav[4:8], size)
	}

	for pos := 12; pos+8 <= len(wav); {
		n := int(binary.LittleEndian.Uint32(wav[pos+4 : pos+8]))
		if string(wav[pos:pos+4]) == "data" {
			binary.LittleEndian.PutUint32(wav[pos+4:pos+8], size)
			break
		}
		pos += 8 + n + n%2
	}

	return wav
}

// WriteFile stores data under dir/name and returns the full path.
func WriteFile(tb testing.TB, dir, name string, data []byte) string {
	tb.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		tb.Fatalf("creating %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		tb.Fatalf("writing %s: %v", path, err)
	}

	return path
}

func writeChunk(buf *bytes.Buffer, id string, data []byte) {
	buf.WriteString(id)
	binary.Write(buf, binary.LittleEndian, uint32(len(data)))
	buf.Write(data)
}
