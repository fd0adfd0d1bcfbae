// SPDX-License-Identifier: EPL-2.0

package voxprep

import (
	"fmt"
	"io"

	"github.com/ik5/voxprep/audio"
	"github.com/ik5/voxprep/internal/dsp"
)

// PrepareSpeech converts src to the speech shape (16 kHz mono) and collects
// every sample. bufferSize is the size of each read through the pipeline.
func PrepareSpeech(src audio.Source, bufferSize int) ([]float32, error) {
	var out []float32

	err := pipeline(src, audio.SpeechSpec.SampleRate, bufferSize, func(buf []float32) {
		out = append(out, buf...)
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// ResampleToMono16 resamples src to targetRate, downmixes it to mono and
// collects the result as 16-bit PCM. It returns the samples and their rate.
//
// Example:
//
//	src, _ := wav.Decoder{}.Decode(file)
//	pcm16, rate, err := voxprep.ResampleToMono16(src, 8000, 4096)
//	if err != nil {
//	    return err
//	}
//	err = wav.WriteWAV16(out, rate, pcm16)
func ResampleToMono16(src audio.Source, targetRate int, bufferSize int) ([]int16, int, error) {
	// Start with room for about two seconds and let append grow it.
	pcm16 := make([]int16, 0, targetRate*2)

	err := pipeline(src, targetRate, bufferSize, func(buf []float32) {
		for _, x := range buf {
			pcm16 = append(pcm16, dsp.Float32ToInt16(x))
		}
	})
	if err != nil {
		return nil, targetRate, err
	}

	return pcm16, targetRate, nil
}

// pipeline streams src through resample -> mono and hands each chunk to emit.
func pipeline(src audio.Source, targetRate, bufferSize int, emit func([]float32)) error {
	if bufferSize <= 0 {
		bufferSize = src.BufSize()
	}
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}

	mono := audio.NewMonoMixer(audio.NewResampler(src, targetRate))
	buf := make([]float32, bufferSize)

	for {
		n, err := mono.ReadSamples(buf)
		if n > 0 {
			emit(buf[:n])
		}

		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("preparing audio: %w", err)
		}
	}
}
