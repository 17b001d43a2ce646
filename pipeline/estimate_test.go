/*
Copyright 2026 The HLC Authors
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package pipeline

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nimbusdata/hlc"
)

func TestEstimateHighlyCompressibleInputReportsGoodRatio(t *testing.T) {
	source := bytes.Repeat([]byte{0}, 1<<20)

	ratio, err := Estimate(source, hlc.Config{ChunkSize: hlc.MinChunkSize})
	require.NoError(t, err)
	assert.Greater(t, ratio, 1.0)
}

func TestEstimateIncompressibleInputReportsLowRatio(t *testing.T) {
	source := randomInput(1<<18, 23)

	ratio, err := Estimate(source, hlc.Config{ChunkSize: hlc.MinChunkSize})
	require.NoError(t, err)
	assert.Less(t, ratio, 1.2)
}

func TestEstimateEmptyInput(t *testing.T) {
	ratio, err := Estimate(nil, hlc.Config{})
	require.NoError(t, err)
	assert.Equal(t, 0.0, ratio)
}

func TestEstimateSamplesLargeInputs(t *testing.T) {
	// More chunks than maxEstimateSamples: should still complete and
	// return a sane ratio without analyzing every single chunk.
	source := randomInput(hlc.MinChunkSize*100, 29)

	ratio, err := Estimate(source, hlc.Config{ChunkSize: hlc.MinChunkSize})
	require.NoError(t, err)
	assert.Greater(t, ratio, 0.0)
}

func TestSampleIndicesWithinBounds(t *testing.T) {
	idx := sampleIndices(1000, 32)
	assert.Len(t, idx, 32)

	for _, i := range idx {
		assert.GreaterOrEqual(t, i, 0)
		assert.Less(t, i, 1000)
	}

	small := sampleIndices(5, 32)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, small)
}
