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
	"github.com/nimbusdata/hlc"
	"github.com/nimbusdata/hlc/analyzer"
	"github.com/nimbusdata/hlc/internal/stats"
	"github.com/nimbusdata/hlc/transform"
)

// maxEstimateSamples bounds how many chunks Estimate actually analyzes for
// large inputs: an evenly-spaced sample stands in for an exhaustive scan of
// every chunk once the chunk count grows past this bound.
const maxEstimateSamples = 32

// Estimate reports an approximate compression ratio for source without
// running the entropy coder: it applies the same gated transform selection
// the real pipeline uses, then approximates each transformed chunk's coded
// size from its order-0 Shannon entropy. For inputs with more chunks than
// maxEstimateSamples, only an evenly-spaced sample is analyzed.
func Estimate(source []byte, cfg hlc.Config) (float64, error) {
	cfg, err := cfg.Normalize()
	if err != nil {
		return 0, err
	}

	chunks := splitChunks(source, cfg.ChunkSize)
	if len(chunks) == 0 {
		return 0, nil
	}

	var sumOriginal, sumEstimated float64

	for _, idx := range sampleIndices(len(chunks), maxEstimateSamples) {
		data := chunks[idx]
		if len(data) == 0 {
			continue
		}

		current := applyGatedTransforms(data, cfg.Mode)

		s := stats.Compute(current)
		estBits := s.Entropy0 * float64(len(current))
		estBytes := estBits / 8

		if estBytes < 1 {
			estBytes = 1
		}

		sumOriginal += float64(len(data))
		sumEstimated += estBytes
	}

	if sumEstimated == 0 {
		return 0, nil
	}

	return sumOriginal / sumEstimated, nil
}

// applyGatedTransforms runs the same analyzer-then-gate sequence the real
// chunk pipeline uses (package chunk), but stops before the entropy stage:
// Estimate only needs an approximation of the post-transform byte stream.
func applyGatedTransforms(data []byte, mode hlc.Mode) []byte {
	decision := analyzer.Analyze(data, mode)
	selected := map[string]bool{
		"RLE":        decision.UseRLE,
		"DELTA":      decision.UseDelta,
		"DICTIONARY": decision.UseDictionary,
	}

	current := data

	for _, name := range transform.CanonicalOrder {
		if !selected[name] {
			continue
		}

		t := transform.New(name)
		buf := make([]byte, t.MaxEncodedLen(len(current)))

		_, written, err := t.Forward(current, buf)
		if err != nil {
			continue
		}

		candidate := buf[:written]

		accept := len(candidate) < len(current)
		if name == "DELTA" {
			accept = len(candidate) <= len(current)
		}

		if accept {
			current = candidate
		}
	}

	return current
}

// sampleIndices returns up to max evenly-spaced indices in [0,n). When
// n <= max, every index is returned.
func sampleIndices(n, max int) []int {
	if n <= max {
		idx := make([]int, n)
		for i := range idx {
			idx[i] = i
		}

		return idx
	}

	idx := make([]int, max)
	for i := 0; i < max; i++ {
		idx[i] = (i * n) / max
	}

	return idx
}
