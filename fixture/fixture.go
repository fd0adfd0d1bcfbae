// SPDX-License-Identifier: EPL-2.0

// Package fixture locates the audio samples checked into a project and
// verifies their format.
//
// Samples live under <project root>/samples, where the project root is the
// nearest directory holding go.mod:
//
//	root, _ := fixture.ProjectRoot(".")
//	info, err := fixture.Check(fixture.Path(root, fixture.DotsWAV), audio.SpeechSpec)
//
// A missing sample is reported as ErrMissing with the path it was expected
// at. A sample in the wrong format is reported field by field with
// audio.MismatchError.
package fixture

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ik5/voxprep/audio"
	"github.com/ik5/voxprep/formats/wav"
)

const (
	// SamplesDir is the directory, relative to the project root, holding samples.
	SamplesDir = "samples"

	// DotsWAV is the speech sample every transcription test runs against.
	DotsWAV = "dots.wav"
)

// ProjectRoot walks up from start to the first directory holding go.mod.
func ProjectRoot(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("fixture: %w", err)
	}

	for {
		if st, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil && !st.IsDir() {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%w (started at %s)", ErrNoProjectRoot, start)
		}
		dir = parent
	}
}

// Path is where the sample called name lives under root.
func Path(root, name string) string {
	return filepath.Join(root, SamplesDir, name)
}

// Check verifies the WAV file at path against want and returns its header.
// Zero fields of want are not compared.
func Check(path string, want audio.Spec) (wav.Info, error) {
	st, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return wav.Info{}, fmt.Errorf("%w: expected %s to be present", ErrMissing, path)
	case err != nil:
		return wav.Info{}, fmt.Errorf("fixture: %w", err)
	case !st.Mode().IsRegular():
		return wav.Info{}, fmt.Errorf("%w: %s", ErrNotAFile, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return wav.Info{}, fmt.Errorf("fixture: %w", err)
	}
	defer f.Close()

	info, err := wav.ReadInfo(f)
	if err != nil {
		return wav.Info{}, fmt.Errorf("fixture %s: %w", path, err)
	}

	if err := want.Match(info.Spec()); err != nil {
		return info, fmt.Errorf("fixture %s: %w", path, err)
	}

	return info, nil
}

// CheckSample is Check for the sample called name under root.
func CheckSample(root, name string, want audio.Spec) (wav.Info, error) {
	return Check(Path(root, name), want)
}

// Expectation is the format check applied to checked-in samples: mono,
// 16 kHz, two bytes per sample of integer PCM.
var Expectation = audio.SpeechSpec
