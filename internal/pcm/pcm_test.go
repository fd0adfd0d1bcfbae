// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"math"
	"testing"

	goaudio "github.com/go-audio/audio"
)

// fakeBufferReader mimics go-audio decoders: the end of data is a short read
// with a nil error.
type fakeBufferReader struct {
	samples []int
	offset  int
	err     error
}

func (f *fakeBufferReader) Format() *goaudio.Format {
	return &goaudio.Format{SampleRate: 16000, NumChannels: 1}
}

func (f *fakeBufferReader) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	if f.err != nil {
		return 0, f.err
	}

	n := copy(buf.Data, f.samples[f.offset:])
	f.offset += n

	return n, nil
}

type closeCounter struct{ calls int }

func (c *closeCounter) Close() error {
	c.calls++
	return nil
}

func TestIntSource_ReadsUntilShortRead(t *testing.T) {
	t.Parallel()

	dec := &fakeBufferReader{samples: []int{32767, -32768, 0, 16384, 1}}
	src := NewIntSource(dec, 16000, 1, 16)

	buf := make([]float32, 3)

	n, err := src.ReadSamples(buf)
	if err != nil || n != 3 {
		t.Fatalf("first ReadSamples() = %d, %v; want 3, nil", n, err)
	}
	if buf[0] != 1 || buf[1] != -1 || buf[2] != 0 {
		t.Errorf("first ReadSamples() values = %v, want [1 -1 0]", buf)
	}

	n, err = src.ReadSamples(buf)
	if err != io.EOF || n != 2 {
		t.Fatalf("second ReadSamples() = %d, %v; want 2, io.EOF", n, err)
	}

	n, err = src.ReadSamples(buf)
	if err != io.EOF || n != 0 {
		t.Errorf("ReadSamples() after end = %d, %v; want 0, io.EOF", n, err)
	}
}

func TestIntSource_BitDepthNormalization(t *testing.T) {
	t.Parallel()

	tests := []struct {
		bitDepth int
		sample   int
	}{
		{16, 32767},
		{24, 8388607},
		{32, 2147483647},
	}

	for _, tt := range tests {
		dec := &fakeBufferReader{samples: []int{tt.sample}}
		src := NewIntSource(dec, 16000, 1, tt.bitDepth)

		buf := make([]float32, 1)
		if _, err := src.ReadSamples(buf); err != nil && err != io.EOF {
			t.Fatalf("%d-bit ReadSamples() error = %v", tt.bitDepth, err)
		}
		if math.Abs(float64(buf[0]-1)) > 1e-6 {
			t.Errorf("%d-bit full scale = %v, want 1", tt.bitDepth, buf[0])
		}
	}
}

func TestIntSource_Error(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	src := NewIntSource(&fakeBufferReader{err: boom}, 16000, 1, 16)

	_, err := src.ReadSamples(make([]float32, 4))
	if !errors.Is(err, boom) {
		t.Errorf("ReadSamples() error = %v, want wrapped boom", err)
	}
}

func TestIntSource_Close(t *testing.T) {
	t.Parallel()

	closer := &closeCounter{}
	src := NewIntSource(&fakeBufferReader{}, 16000, 1, 16).WithCloser(closer)

	if err := src.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if closer.calls != 1 {
		t.Errorf("closer called %d times, want 1", closer.calls)
	}

	if err := NewIntSource(&fakeBufferReader{}, 16000, 1, 16).Close(); err != nil {
		t.Errorf("Close() without closer error = %v", err)
	}
}

func TestInt16LESource(t *testing.T) {
	t.Parallel()

	raw := new(bytes.Buffer)
	binary.Write(raw, binary.LittleEndian, []int16{math.MaxInt16, math.MinInt16, 0})
	raw.WriteByte(0x7f) // dangling byte

	src := NewInt16LESource(raw, 44100, 1)

	buf := make([]float32, 8)
	n, err := src.ReadSamples(buf)
	if err != io.EOF {
		t.Fatalf("ReadSamples() error = %v, want io.EOF", err)
	}
	if n != 3 {
		t.Fatalf("ReadSamples() n = %d, want 3", n)
	}

	want := []float32{1, -1, 0}
	for i, w := range want {
		if buf[i] != w {
			t.Errorf("sample %d = %v, want %v", i, buf[i], w)
		}
	}
}

func TestInt16LESource_Chunked(t *testing.T) {
	t.Parallel()

	samples := make([]int16, 1000)
	raw := new(bytes.Buffer)
	binary.Write(raw, binary.LittleEndian, samples)

	src := NewInt16LESource(raw, 22050, 2)
	if src.SampleRate() != 22050 || src.Channels() != 2 {
		t.Fatalf("metadata = %d Hz %d ch, want 22050 Hz 2 ch", src.SampleRate(), src.Channels())
	}

	total := 0
	buf := make([]float32, 128)
	for {
		n, err := src.ReadSamples(buf)
		total += n
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}

	if total != len(samples) {
		t.Errorf("read %d samples, want %d", total, len(samples))
	}
}

func TestIntSource_WithLimit(t *testing.T) {
	t.Parallel()

	dec := &fakeBufferReader{samples: []int{1, 2, 3, 4, 5, 6}}
	src := NewIntSource(dec, 16000, 1, 16).WithLimit(4)

	buf := make([]float32, 3)
	total := 0
	for {
		n, err := src.ReadSamples(buf)
		total += n
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}

	if total != 4 {
		t.Errorf("read %d samples, want 4", total)
	}
}
