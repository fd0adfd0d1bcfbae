// SPDX-License-Identifier: EPL-2.0

// Package voxprep prepares audio for speech transcription engines, which
// accept one shape only: 16 kHz, 16-bit integer PCM, mono.
//
// # Reading Speech Files
//
// ReadWAVSamples is strict. It rejects any file that is not already in the
// speech shape and reports every mismatching field:
//
//	samples, err := voxprep.ReadWAVSamples("samples/dots.wav")
//	// samples are float32 in [-1, 1]; MaxInt16 maps to exactly 1.0
//
// # Converting Other Audio
//
// Anything the registry can decode (WAV, AIFF, MP3, Ogg Vorbis) can be
// converted instead:
//
//	src, err := voxprep.Open("interview.mp3")
//	defer src.Close()
//	samples, err := voxprep.PrepareSpeech(src, 4096)
//
// ResampleToMono16 does the same for an arbitrary target rate and returns
// 16-bit PCM ready for wav.WriteWAV16.
//
// # Fixtures
//
// The fixture package checks samples checked into a project, such as
// samples/dots.wav, against the speech shape.
package voxprep
