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

// Package transform implements the reversible byte-level pre-transforms
// available to a chunk: RLE (zero-run), Delta (byte-wise) and Dictionary
// (LZ-style).
//
// Every Transform is a pure function over byte slices: Forward(encode) and
// Inverse(decode) satisfy decode(encode(x)) == x, and transforms carry no
// state across chunks. This mirrors kanzi-go's ByteTransform shape
// (transform/RLT.go) but simplified to the exact wire conventions each
// transform here uses.
package transform

// Transform is a reversible byte-stream pre-transform.
type Transform interface {
	// Forward encodes src into dst, returning the number of bytes consumed
	// from src and written to dst.
	Forward(src, dst []byte) (read uint, written uint, err error)

	// Inverse decodes src into dst, returning the number of bytes consumed
	// from src and written to dst. dst must have capacity for at least
	// originalSize bytes: the chunk processor only keeps a forward output
	// that shrinks or preserves size, so no intermediate inverse result can
	// exceed the chunk's recorded original size.
	Inverse(src, dst []byte) (read uint, written uint, err error)

	// MaxEncodedLen returns a safe upper bound on Forward's output size for
	// a given input size, for buffer sizing.
	MaxEncodedLen(srcLen int) int
}

// CanonicalOrder is the fixed forward application order. Inverses must be
// applied in exactly the reverse order.
var CanonicalOrder = []string{"RLE", "DELTA", "DICTIONARY"}

// New constructs the named transform. Panics on an unknown name since the
// set is fixed and closed over CanonicalOrder.
func New(name string) Transform {
	switch name {
	case "RLE":
		return &RLE{}
	case "DELTA":
		return &Delta{}
	case "DICTIONARY":
		return &Dictionary{}
	default:
		panic("transform: unknown name " + name)
	}
}
