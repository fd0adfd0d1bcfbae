// SPDX-License-Identifier: EPL-2.0

// Package config reads command settings from a .env file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/ik5/voxprep/audio"
)

const (
	EnvSamplesDir = "VOXPREP_SAMPLES_DIR"
	EnvSampleRate = "VOXPREP_SAMPLE_RATE"
	EnvChannels   = "VOXPREP_CHANNELS"
	EnvBitDepth   = "VOXPREP_BIT_DEPTH"
	EnvBufferSize = "VOXPREP_BUFFER_SIZE"
)

var ErrInvalidValue = errors.New("invalid configuration value")

// Config holds the settings shared by the commands. Flags override it.
type Config struct {
	SamplesDir string // empty means <project root>/samples
	SampleRate int
	Channels   int
	BitDepth   int
	BufferSize int
}

// Default returns the speech shape with a 4096 sample buffer.
func Default() Config {
	return Config{
		SampleRate: audio.SpeechSpec.SampleRate,
		Channels:   audio.SpeechSpec.Channels,
		BitDepth:   audio.SpeechSpec.BitDepth,
		BufferSize: 4096,
	}
}

// LoadDotEnv loads the given .env files (".env" when none are named) into
// the process environment. Variables already set are kept.
func LoadDotEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil {
		return fmt.Errorf("loading env file: %w", err)
	}

	return nil
}

// FromEnv starts from Default and applies every VOXPREP_* variable that is
// set. All invalid values are reported together.
func FromEnv() (Config, error) {
	cfg := Default()

	if dir := os.Getenv(EnvSamplesDir); dir != "" {
		cfg.SamplesDir = dir
	}

	errs := []error{
		positiveInt(EnvSampleRate, &cfg.SampleRate),
		positiveInt(EnvChannels, &cfg.Channels),
		positiveInt(EnvBitDepth, &cfg.BitDepth),
		positiveInt(EnvBufferSize, &cfg.BufferSize),
	}

	if err := errors.Join(errs...); err != nil {
		return Default(), err
	}

	return cfg, nil
}

func positiveInt(key string, dst *int) error {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return fmt.Errorf("%w: %s=%q must be a positive integer", ErrInvalidValue, key, raw)
	}

	*dst = v

	return nil
}

// Spec is the integer PCM shape described by the configuration.
func (c Config) Spec() audio.Spec {
	return audio.Spec{
		Channels:   c.Channels,
		SampleRate: c.SampleRate,
		BitDepth:   c.BitDepth,
		Encoding:   audio.EncodingInt,
	}
}
