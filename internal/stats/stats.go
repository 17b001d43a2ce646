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

// Package stats computes the single-pass, per-chunk statistics the analyzer
// bases its transform decisions on.
package stats

import (
	"math"

	"github.com/cespare/xxhash/v2"
)

// Chunk holds every statistic the analyzer needs, each computed in a single
// linear pass over the chunk bytes.
type Chunk struct {
	Size              int
	ZeroFraction      float64 // z
	ZeroRuns          int     // r: count of maximal runs of zero bytes
	Entropy0          float64 // H0, Shannon entropy of the byte histogram, bits
	EntropyDelta      float64 // H_delta, entropy of the byte-wise delta sequence, bits
	SequentialNeighbr float64 // s: fraction of |b[i]-b[i-1]| <= 2
	RepeatingPattern  bool    // p: some 4-byte window recurs later (sampled)
}

// Compute derives Chunk statistics from raw chunk bytes. The empty chunk
// returns the zero Chunk{}.
func Compute(data []byte) Chunk {
	n := len(data)

	if n == 0 {
		return Chunk{}
	}

	histo0 := [256]int{}
	computeHistogram(data, histo0[:])

	zeros := histo0[0]
	c := Chunk{
		Size:         n,
		ZeroFraction: float64(zeros) / float64(n),
		ZeroRuns:     countZeroRuns(data),
		Entropy0:     entropyBits(histo0[:], n),
	}

	if n > 1 {
		histoD := [256]int{}
		seq := 0

		prev := data[0]
		for i := 1; i < n; i++ {
			d := data[i] - prev
			histoD[d]++

			diff := int(data[i]) - int(prev)
			if diff < 0 {
				diff = -diff
			}

			if diff <= 2 {
				seq++
			}

			prev = data[i]
		}

		c.EntropyDelta = entropyBits(histoD[:], n-1)
		c.SequentialNeighbr = float64(seq) / float64(n-1)
	}

	c.RepeatingPattern = sampleRepeatingPattern(data)

	return c
}

// computeHistogram counts byte frequencies. Unrolled by 16 bytes per
// iteration, matching kanzi-go's ComputeHistogram loop shape.
func computeHistogram(block []byte, freqs []int) {
	end16 := len(block) &^ 15

	for i := 0; i < end16; i += 16 {
		d := block[i : i+16]

		for _, b := range d {
			freqs[b]++
		}
	}

	for i := end16; i < len(block); i++ {
		freqs[block[i]]++
	}
}

// entropyBits computes the order-0 Shannon entropy, in bits, of a histogram
// covering n samples.
func entropyBits(freqs []int, n int) float64 {
	if n == 0 {
		return 0
	}

	h := 0.0
	total := float64(n)

	for _, f := range freqs {
		if f == 0 {
			continue
		}

		p := float64(f) / total
		h -= p * math.Log2(p)
	}

	return h
}

// countZeroRuns counts maximal runs of the zero byte.
func countZeroRuns(data []byte) int {
	runs := 0
	inRun := false

	for _, b := range data {
		if b == 0 {
			if !inRun {
				runs++
				inRun = true
			}
		} else {
			inRun = false
		}
	}

	return runs
}

const (
	patternSampleStride = 7    // prime stride so sampled windows don't alias chunk boundaries
	patternSampleMax     = 4096 // cap the sample set size for very large chunks
)

// sampleRepeatingPattern samples 4-byte windows at a fixed stride and reports
// whether any sampled window's hash recurs among previously sampled windows.
// This is a bounded approximation of "does any 4-byte window recur later" —
// exhaustive all-pairs comparison would be quadratic in chunk size.
func sampleRepeatingPattern(data []byte) bool {
	if len(data) < 8 {
		return false
	}

	seen := make(map[uint64]struct{}, patternSampleMax)
	count := 0

	for i := 0; i+4 <= len(data); i += patternSampleStride {
		h := xxhash.Sum64(data[i : i+4])

		if _, ok := seen[h]; ok {
			return true
		}

		seen[h] = struct{}{}
		count++

		if count >= patternSampleMax {
			break
		}
	}

	return false
}
