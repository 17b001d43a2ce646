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

package stats

import (
	"bytes"
	"testing"
)

func TestComputeEmpty(t *testing.T) {
	c := Compute(nil)

	if c != (Chunk{}) {
		t.Errorf("expected zero Chunk for empty input, got %+v", c)
	}
}

func TestComputeZeroFraction(t *testing.T) {
	data := append(bytes.Repeat([]byte{0}, 90), bytes.Repeat([]byte{1}, 10)...)
	c := Compute(data)

	if c.Size != 100 {
		t.Errorf("expected Size 100, got %d", c.Size)
	}

	if c.ZeroFraction < 0.89 || c.ZeroFraction > 0.91 {
		t.Errorf("expected ZeroFraction ~0.90, got %f", c.ZeroFraction)
	}
}

func TestComputeZeroRunsCountsMaximalRuns(t *testing.T) {
	data := []byte{0, 0, 0, 1, 0, 0, 1, 1, 0}
	c := Compute(data)

	if c.ZeroRuns != 3 {
		t.Errorf("expected 3 maximal zero runs, got %d", c.ZeroRuns)
	}
}

func TestComputeConstantDataHasZeroEntropy(t *testing.T) {
	data := bytes.Repeat([]byte{42}, 256)
	c := Compute(data)

	if c.Entropy0 != 0 {
		t.Errorf("expected zero entropy for constant input, got %f", c.Entropy0)
	}
}

func TestComputeUniformDataHasMaxEntropy(t *testing.T) {
	data := make([]byte, 256)
	for i := range data {
		data[i] = byte(i)
	}

	c := Compute(data)

	// Exactly one of each byte value: order-0 entropy is exactly 8 bits.
	if c.Entropy0 < 7.99 || c.Entropy0 > 8.01 {
		t.Errorf("expected ~8 bits of entropy for a uniform byte histogram, got %f", c.Entropy0)
	}
}

func TestComputeSequentialDataHasHighNeighborFraction(t *testing.T) {
	data := make([]byte, 200)
	for i := range data {
		data[i] = byte(i % 250)
	}

	c := Compute(data)

	if c.SequentialNeighbr < 0.9 {
		t.Errorf("expected a high sequential-neighbor fraction for a ramp, got %f", c.SequentialNeighbr)
	}
}

func TestComputeDetectsRepeatingPattern(t *testing.T) {
	data := bytes.Repeat([]byte("abcd"), 64)
	c := Compute(data)

	if !c.RepeatingPattern {
		t.Error("expected RepeatingPattern to be true for highly repetitive input")
	}
}

func TestComputeSingleByteChunk(t *testing.T) {
	c := Compute([]byte{5})

	if c.Size != 1 {
		t.Errorf("expected Size 1, got %d", c.Size)
	}

	if c.EntropyDelta != 0 {
		t.Errorf("expected zero delta entropy for a single-byte chunk, got %f", c.EntropyDelta)
	}
}
