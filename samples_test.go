// SPDX-License-Identifier: EPL-2.0

package voxprep

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/voxprep/fixture"
)

func TestSamplesDotsWAVMetadata(t *testing.T) {
	t.Parallel()

	root, err := fixture.ProjectRoot(".")
	require.NoError(t, err, "locating project root")

	info, err := fixture.CheckSample(root, fixture.DotsWAV, fixture.Expectation)
	require.NoError(t, err, "Expected samples/dots.wav to be present and valid")

	assert.Equal(t, 1, info.Channels, "channels")
	assert.Equal(t, 16000, info.SampleRate, "frame rate")
	assert.Equal(t, 2, info.SampleWidth(), "sample width")
}

func TestSamplesDotsWAVReadable(t *testing.T) {
	t.Parallel()

	root, err := fixture.ProjectRoot(".")
	require.NoError(t, err)

	samples, err := ReadWAVSamples(fixture.Path(root, fixture.DotsWAV))
	require.NoError(t, err)
	require.NotEmpty(t, samples)

	var peak float32
	for _, v := range samples {
		peak = max(peak, v, -v)
	}
	assert.Greater(t, peak, float32(0), "samples/dots.wav is silent")
	assert.LessOrEqual(t, peak, float32(1))
}
