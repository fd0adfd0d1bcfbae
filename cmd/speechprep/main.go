// SPDX-License-Identifier: EPL-2.0

// Command speechprep converts a wav, aiff, mp3 or ogg file into a mono
// 16-bit WAV file ready for transcription.
//
//	speechprep [-rate 16000] [-buffer 4096] <input> <output.wav>
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ik5/voxprep"
	"github.com/ik5/voxprep/formats/wav"
	"github.com/ik5/voxprep/internal/config"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("speechprep: ")

	if err := config.LoadDotEnv(); err != nil {
		log.Println("Note: No .env file found, using system environment variables")
	}

	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatal(err)
	}

	rate := flag.Int("rate", cfg.SampleRate, "output sample rate in Hz")
	bufferSize := flag.Int("buffer", cfg.BufferSize, "samples per read")
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "usage: speechprep [flags] <input.{wav|aiff|mp3|ogg}> <output.wav>")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}

	n, err := convert(flag.Arg(0), flag.Arg(1), *rate, *bufferSize)
	if err != nil {
		log.Fatal(err)
	}

	log.Printf("wrote %s: %d samples at %d Hz", flag.Arg(1), n, *rate)
}

// convert decodes inPath, resamples it to a mono stream at rate and writes
// it to outPath as 16-bit PCM. It returns the number of samples written.
func convert(inPath, outPath string, rate, bufferSize int) (int, error) {
	src, err := voxprep.Open(inPath)
	if err != nil {
		return 0, err
	}
	defer src.Close()

	pcm16, rate, err := voxprep.ResampleToMono16(src, rate, bufferSize)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", inPath, err)
	}

	out, err := os.Create(outPath)
	if err != nil {
		return 0, err
	}

	if err := wav.WriteWAV16(out, rate, pcm16); err != nil {
		out.Close()
		return 0, fmt.Errorf("writing %s: %w", outPath, err)
	}

	if err := out.Close(); err != nil {
		return 0, err
	}

	return len(pcm16), nil
}
