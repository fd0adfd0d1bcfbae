// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes WAV files on top of github.com/go-audio/wav.
//
// # Inspecting Headers
//
// ReadInfo parses the RIFF header, the fmt chunk and the data chunk size
// without reading samples:
//
//	f, _ := os.Open("samples/dots.wav")
//	info, err := wav.ReadInfo(f)
//	// info.Channels, info.SampleRate, info.SampleWidth()
//
// Chunks placed before the data chunk (LIST, fact, bext, ...) are skipped.
// Chunks lists every top level chunk when the layout itself matters.
//
// # Decoding
//
// Decoder implements audio.Decoder for 16, 24 and 32-bit integer PCM:
//
//	src, err := wav.Decoder{}.Decode(f)
//	buf := make([]float32, 4096)
//	n, err := src.ReadSamples(buf)
//
// ReadPCM16 returns the raw samples of a 16-bit file instead.
//
// # Writing
//
// WriteWAV16 writes a mono 16-bit file. go-audio patches the chunk sizes
// after the samples are written, so the destination must be seekable;
// EncodeWAV16 writes to memory instead.
//
// # Errors
//
//   - ErrNotWavFile: no RIFF/WAVE signature
//   - ErrUnsupportedWavLayout: the fmt chunk is missing or unreadable
//   - ErrUnsupportedWavChunks: no data chunk
//   - ErrUnsupportedEncoding: float, 8-bit or otherwise unsupported samples
package wav
