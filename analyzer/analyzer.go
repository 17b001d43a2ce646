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

// Package analyzer turns a chunk's single-pass statistics (internal/stats)
// into a decision of which transforms to try.
//
// The decision here is advisory only — the chunk processor (package chunk)
// re-validates every individual transform's actual output size before
// keeping it, so a wrong guess here costs a wasted transform attempt, never
// correctness. This mirrors kanzi-go's BlockCompressor "skipBlocks"
// heuristic (app/BlockCompressor.go), which also looks at a cheap entropy
// estimate before committing to a transform rather than trusting the
// estimate to be final.
package analyzer

import (
	"github.com/nimbusdata/hlc"
	"github.com/nimbusdata/hlc/internal/stats"
)

// Decision is the triple of booleans the analyzer outputs.
type Decision struct {
	UseRLE        bool
	UseDelta      bool
	UseDictionary bool
}

// Analyze computes chunk statistics and applies the transform-selection
// decision rules. An empty chunk yields Decision{} (all false).
func Analyze(data []byte, mode hlc.Mode) Decision {
	if len(data) == 0 {
		return Decision{}
	}

	s := stats.Compute(data)
	return decide(s, mode)
}

func decide(s stats.Chunk, mode hlc.Mode) Decision {
	var d Decision

	n := s.Size

	d.UseRLE = s.ZeroFraction > 0.30 || float64(s.ZeroRuns) > float64(n)/20.0
	d.UseDelta = s.EntropyDelta < 0.80*s.Entropy0

	if mode == hlc.Max {
		if !d.UseDelta && s.SequentialNeighbr > 1.0/3.0 {
			d.UseDelta = true
		}

		if s.RepeatingPattern {
			d.UseDictionary = true
		}
	}

	return d
}
