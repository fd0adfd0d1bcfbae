// SPDX-License-Identifier: EPL-2.0

// Command wavcheck verifies that WAV files hold integer PCM with the
// expected channel count, sample rate and sample width. With no arguments
// it checks the project's samples/dots.wav.
//
//	wavcheck [-root dir] [-channels 1] [-rate 16000] [-width 2] [-chunks] [file.wav ...]
//
// It exits with status 1 when any file is missing or does not match.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/ik5/voxprep/audio"
	"github.com/ik5/voxprep/fixture"
	"github.com/ik5/voxprep/formats/wav"
	"github.com/ik5/voxprep/internal/config"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("wavcheck: ")

	if err := config.LoadDotEnv(); err != nil {
		log.Println("Note: No .env file found, using system environment variables")
	}

	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatal(err)
	}

	root := flag.String("root", "", "project root (default: nearest directory holding go.mod)")
	channels := flag.Int("channels", cfg.Channels, "expected channel count, 0 to skip")
	rate := flag.Int("rate", cfg.SampleRate, "expected sample rate in Hz, 0 to skip")
	width := flag.Int("width", (cfg.BitDepth+7)/8, "expected sample width in bytes, 0 to skip")
	chunks := flag.Bool("chunks", false, "list the RIFF chunks of each file")
	flag.Parse()

	cfg.Channels, cfg.SampleRate, cfg.BitDepth = *channels, *rate, *width*8
	want := cfg.Spec()

	files := flag.Args()
	if len(files) == 0 {
		path, err := defaultSample(*root, cfg.SamplesDir)
		if err != nil {
			log.Fatal(err)
		}
		files = []string{path}
	}

	failed := 0
	for _, path := range files {
		if !check(os.Stdout, path, want, *chunks) {
			failed++
		}
	}

	if failed > 0 {
		log.Printf("%d of %d files failed", failed, len(files))
		os.Exit(1)
	}
}

// defaultSample picks dots.wav under -root, then under VOXPREP_SAMPLES_DIR,
// then under the project root found from the working directory.
func defaultSample(root, samplesDir string) (string, error) {
	switch {
	case root != "":
		return fixture.Path(root, fixture.DotsWAV), nil
	case samplesDir != "":
		return filepath.Join(samplesDir, fixture.DotsWAV), nil
	}

	root, err := fixture.ProjectRoot(".")
	if err != nil {
		return "", err
	}

	return fixture.Path(root, fixture.DotsWAV), nil
}

// check prints one result line for path and reports whether it passed.
func check(w io.Writer, path string, want audio.Spec, listChunks bool) bool {
	info, err := fixture.Check(path, want)
	if err != nil {
		fmt.Fprintf(w, "FAIL %s\n", path)
		log.Println(err)
		return false
	}

	fmt.Fprintf(w, "ok   %s  %s\n", path, info)

	if listChunks {
		if err := printChunks(w, path); err != nil {
			log.Println(err)
			return false
		}
	}

	return true
}

func printChunks(w io.Writer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	list, err := wav.Chunks(f)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	for _, c := range list {
		fmt.Fprintf(w, "     %s %8d bytes at %d\n", c.ID, c.Size, c.Offset)
	}

	return nil
}
