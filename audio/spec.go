// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
)

// Encoding describes how samples are stored in a PCM stream.
type Encoding int

const (
	// EncodingUnknown matches any encoding when used in an expected Spec.
	EncodingUnknown Encoding = iota
	EncodingInt
	EncodingFloat
)

func (e Encoding) String() string {
	switch e {
	case EncodingInt:
		return "int"
	case EncodingFloat:
		return "float"
	default:
		return "unknown"
	}
}

// Spec is the shape of a PCM stream: channel layout, rate and sample size.
type Spec struct {
	Channels   int
	SampleRate int
	BitDepth   int
	Encoding   Encoding
}

// SpeechSpec is the input shape transcription engines accept:
// 16 kHz, 16-bit integer PCM, mono.
var SpeechSpec = Spec{
	Channels:   1,
	SampleRate: 16000,
	BitDepth:   16,
	Encoding:   EncodingInt,
}

// SampleWidth is the number of bytes used to store one sample.
func (s Spec) SampleWidth() int {
	return (s.BitDepth + 7) / 8
}

func (s Spec) String() string {
	return fmt.Sprintf("%d ch, %d Hz, %d-bit %s", s.Channels, s.SampleRate, s.BitDepth, s.Encoding)
}

// Match compares got against s and reports every field that differs.
// Zero fields in s are not compared. The returned error joins one
// *MismatchError per field.
func (s Spec) Match(got Spec) error {
	var errs []error

	if s.Channels != 0 && s.Channels != got.Channels {
		errs = append(errs, &MismatchError{Field: "channels", Want: s.Channels, Got: got.Channels})
	}

	if s.SampleRate != 0 && s.SampleRate != got.SampleRate {
		errs = append(errs, &MismatchError{Field: "sample rate", Want: s.SampleRate, Got: got.SampleRate})
	}

	if s.BitDepth != 0 && s.SampleWidth() != got.SampleWidth() {
		errs = append(errs, &MismatchError{Field: "sample width", Want: s.SampleWidth(), Got: got.SampleWidth()})
	}

	if s.Encoding != EncodingUnknown && s.Encoding != got.Encoding {
		errs = append(errs, &MismatchError{Field: "sample format", Want: s.Encoding, Got: got.Encoding})
	}

	return errors.Join(errs...)
}

// MismatchError reports a single field whose actual value differs from
// the expected one.
type MismatchError struct {
	Field string
	Want  any
	Got   any
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%s: expected %v, found %v", e.Field, e.Want, e.Got)
}

func (e *MismatchError) Is(target error) bool {
	return target == ErrFormatMismatch
}
