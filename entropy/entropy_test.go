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

package entropy

import (
	"bytes"
	"math/rand"
	"testing"
)

func TestCodecRoundTrip(t *testing.T) {
	c := NewCodec(5)
	defer c.Close()

	rng := rand.New(rand.NewSource(7))
	src := make([]byte, 65536)

	for i := range src {
		src[i] = byte(rng.Intn(12))
	}

	encoded, err := c.Encode(src)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	if len(encoded) >= len(src) {
		t.Fatalf("expected skewed input to compress: got %d from %d", len(encoded), len(src))
	}

	decoded, err := c.Decode(encoded)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if !bytes.Equal(decoded, src) {
		t.Fatal("round trip mismatch")
	}
}

func TestCodecEmptyInput(t *testing.T) {
	c := NewCodec(5)
	defer c.Close()

	encoded, err := c.Encode(nil)
	if err != nil {
		t.Fatalf("Encode(nil) failed: %v", err)
	}

	if len(encoded) != 0 {
		t.Fatalf("expected empty output for empty input, got %d bytes", len(encoded))
	}

	decoded, err := c.Decode(encoded)
	if err != nil {
		t.Fatalf("Decode(empty) failed: %v", err)
	}

	if len(decoded) != 0 {
		t.Fatalf("expected empty output decoding empty input, got %d bytes", len(decoded))
	}
}

func TestCodecReusableAcrossCalls(t *testing.T) {
	c := NewCodec(3)
	defer c.Close()

	for i := 0; i < 5; i++ {
		src := bytes.Repeat([]byte{byte(i)}, 4096)

		encoded, err := c.Encode(src)
		if err != nil {
			t.Fatalf("iteration %d: Encode failed: %v", i, err)
		}

		decoded, err := c.Decode(encoded)
		if err != nil {
			t.Fatalf("iteration %d: Decode failed: %v", i, err)
		}

		if !bytes.Equal(decoded, src) {
			t.Fatalf("iteration %d: round trip mismatch", i)
		}
	}
}

func TestLevelToZstdClampsOutOfRange(t *testing.T) {
	if got := levelToZstd(0); got != levelToZstd(1) {
		t.Errorf("expected level 0 to clamp like level 1, got %v vs %v", got, levelToZstd(1))
	}

	if got := levelToZstd(999); got == 0 {
		t.Errorf("expected a valid zstd level for an out-of-range input, got %v", got)
	}
}
