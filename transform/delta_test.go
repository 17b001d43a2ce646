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

package transform

import (
	"bytes"
	"math/rand"
	"testing"
)

func TestDeltaRoundTrip(t *testing.T) {
	cases := [][]byte{
		{},
		{42},
		{10, 10, 10, 10},
		{0, 255, 0, 255},
		{1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
	}

	for i, c := range cases {
		got := roundTrip(t, Delta{}, c)
		if !bytes.Equal(got, c) {
			t.Errorf("case %d: round trip mismatch: got %v want %v", i, got, c)
		}
	}
}

func TestDeltaIsSizePreserving(t *testing.T) {
	src := make([]byte, 777)
	dst := make([]byte, Delta{}.MaxEncodedLen(len(src)))

	_, written, err := Delta{}.Forward(src, dst)
	if err != nil {
		t.Fatalf("Forward failed: %v", err)
	}

	if int(written) != len(src) {
		t.Fatalf("expected Delta to preserve size: got %d want %d", written, len(src))
	}
}

func TestDeltaRandomRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(2))

	for trial := 0; trial < 20; trial++ {
		n := rng.Intn(4096)
		src := make([]byte, n)
		rng.Read(src)

		got := roundTrip(t, Delta{}, src)
		if !bytes.Equal(got, src) {
			t.Fatalf("trial %d: round trip mismatch for length %d", trial, n)
		}
	}
}
