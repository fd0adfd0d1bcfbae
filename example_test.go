// SPDX-License-Identifier: EPL-2.0

package voxprep_test

import (
	"bytes"
	"fmt"

	"github.com/ik5/voxprep"
	"github.com/ik5/voxprep/formats/wav"
)

func Example() {
	// Two seconds of mono silence at 8 kHz.
	data, _ := wav.EncodeWAV16(8000, make([]int16, 16000))

	src, err := wav.Decoder{}.Decode(bytes.NewReader(data))
	if err != nil {
		fmt.Println(err)
		return
	}

	samples, err := voxprep.PrepareSpeech(src, 4096)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("%d samples at 16000 Hz\n", len(samples))
	// Output: 32000 samples at 16000 Hz
}
