// SPDX-License-Identifier: EPL-2.0

// Package memfile provides an in-memory io.ReadWriteSeeker. The go-audio
// decoders and encoders need seekable streams; this lets them work on
// pipes and byte slices.
package memfile

import (
	"errors"
	"fmt"
	"io"
)

var ErrNegativeOffset = errors.New("memfile: negative position")

type File struct {
	data   []byte
	offset int64
}

func New(data []byte) *File {
	return &File{data: data}
}

// Seekable returns r itself when it can seek, otherwise reads it fully
// into memory.
func Seekable(r io.Reader) (io.ReadSeeker, error) {
	if rs, ok := r.(io.ReadSeeker); ok {
		return rs, nil
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("memfile: buffering input: %w", err)
	}

	return New(data), nil
}

func (f *File) Bytes() []byte { return f.data }

func (f *File) Read(p []byte) (int, error) {
	if f.offset >= int64(len(f.data)) {
		return 0, io.EOF
	}

	n := copy(p, f.data[f.offset:])
	f.offset += int64(n)

	return n, nil
}

func (f *File) Write(p []byte) (int, error) {
	end := f.offset + int64(len(p))
	if end > int64(len(f.data)) {
		if end > int64(cap(f.data)) {
			grown := make([]byte, end, max(end, 2*int64(cap(f.data))))
			copy(grown, f.data)
			f.data = grown
		} else {
			f.data = f.data[:end]
		}
	}

	copy(f.data[f.offset:], p)
	f.offset = end

	return len(p), nil
}

func (f *File) Seek(offset int64, whence int) (int64, error) {
	var pos int64
	switch whence {
	case io.SeekStart:
		pos = offset
	case io.SeekCurrent:
		pos = f.offset + offset
	case io.SeekEnd:
		pos = int64(len(f.data)) + offset
	default:
		return 0, fmt.Errorf("memfile: invalid whence: %d", whence)
	}

	if pos < 0 {
		return 0, ErrNegativeOffset
	}

	f.offset = pos

	return pos, nil
}
