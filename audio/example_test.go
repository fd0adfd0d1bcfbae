// SPDX-License-Identifier: EPL-2.0

package audio_test

import (
	"errors"
	"fmt"

	"github.com/ik5/voxprep/audio"
)

func ExampleSpec_Match() {
	got := audio.Spec{Channels: 2, SampleRate: 16000, BitDepth: 16, Encoding: audio.EncodingInt}

	err := audio.SpeechSpec.Match(got)
	fmt.Println(err)
	fmt.Println(errors.Is(err, audio.ErrFormatMismatch))

	// Output:
	// channels: expected 1, found 2
	// true
}

func ExampleRegistry_ForPath() {
	registry := audio.NewRegistry()

	_, err := registry.ForPath("speech.flac")
	fmt.Println(errors.Is(err, audio.ErrUnknownFormat))

	// Output:
	// true
}
