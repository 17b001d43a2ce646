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

// Package chunk implements the per-chunk pipeline: analyze, apply
// RLE→Delta→Dictionary with per-stage "only if smaller" gating, run the
// entropy stage with the same gating, and fall back to a verbatim STORED
// copy whenever a stage doesn't pay for itself.
//
// Grounded on kanzi-go's io/CompressedStream.go encodingTask.encode /
// decodingTask.decode: the single "mode" byte there, with its copy-block
// fallback bit, is the direct ancestor of this package's STORED flag.
// kanzi-go folds the accept/reject decision into that one byte without
// re-validating each stage independently; this package makes every stage's
// gate an explicit, separately testable step instead.
package chunk

import (
	"github.com/nimbusdata/hlc"
	"github.com/nimbusdata/hlc/analyzer"
	"github.com/nimbusdata/hlc/checksum"
	"github.com/nimbusdata/hlc/entropy"
	"github.com/nimbusdata/hlc/transform"
)

// Record is a compressed chunk as produced by the chunk processor.
type Record struct {
	ID           int
	Flags        hlc.PipelineFlags
	Checksum     uint64
	OriginalSize uint32
	Payload      []byte
}

var flagBit = map[string]hlc.PipelineFlags{
	"RLE":        hlc.RLE,
	"DELTA":      hlc.DELTA,
	"DICTIONARY": hlc.DICTIONARY,
}

// Processor runs the chunk pipeline for one worker. It owns its own entropy
// codec instance so it can be used concurrently, one Processor per worker.
type Processor struct {
	cfg   hlc.Config
	codec *entropy.Codec
}

// NewProcessor builds a Processor for the given (already-normalized) config.
func NewProcessor(cfg hlc.Config) *Processor {
	return &Processor{cfg: cfg, codec: entropy.NewCodec(cfg.EntropyLevel)}
}

// Close releases the processor's entropy codec resources.
func (p *Processor) Close() { p.codec.Close() }

// Compress runs the full encode pipeline for one raw chunk.
func (p *Processor) Compress(id int, data []byte) (Record, error) {
	sum, err := checksum.Compute(p.cfg.Checksum, data)
	if err != nil {
		return Record{}, err
	}

	if len(data) == 0 {
		return Record{ID: id, Flags: hlc.STORED, Checksum: sum, OriginalSize: 0, Payload: []byte{}}, nil
	}

	decision := analyzer.Analyze(data, p.cfg.Mode)
	selected := map[string]bool{
		"RLE":        decision.UseRLE,
		"DELTA":      decision.UseDelta,
		"DICTIONARY": decision.UseDictionary,
	}

	current := data
	var flags hlc.PipelineFlags

	for _, name := range transform.CanonicalOrder {
		if !selected[name] {
			continue
		}

		t := transform.New(name)
		buf := make([]byte, t.MaxEncodedLen(len(current)))

		_, written, ferr := t.Forward(current, buf)
		if ferr != nil {
			continue // stage failed to help; drop it and move on
		}

		candidate := buf[:written]

		// Delta is size-preserving; "<=" lets it through on the expectation
		// it pays off downstream. Every other stage must strictly shrink.
		accept := len(candidate) < len(current)
		if name == "DELTA" {
			accept = len(candidate) <= len(current)
		}

		if accept {
			current = candidate
			flags |= flagBit[name]
		}
	}

	if flags == 0 || len(current) > len(data) {
		// No transform was kept, or the buffer somehow grew: snap back to
		// a verbatim copy and skip the entropy stage entirely.
		return Record{ID: id, Flags: hlc.STORED, Checksum: sum, OriginalSize: uint32(len(data)), Payload: data}, nil
	}

	encoded, eerr := p.codec.Encode(current)
	if eerr == nil && len(encoded) < len(current) {
		current = encoded
		flags |= hlc.ENTROPY
	} else {
		// Entropy stage failed or didn't shrink: revert all the way to STORED.
		flags = hlc.STORED
		current = data
	}

	// Final gate: payload_size <= original_size holds unconditionally.
	if len(current) >= len(data) {
		flags = hlc.STORED
		current = data
	}

	return Record{ID: id, Flags: flags, Checksum: sum, OriginalSize: uint32(len(data)), Payload: current}, nil
}

// Decompress inverts Compress for one record.
func (p *Processor) Decompress(rec Record) ([]byte, error) {
	var current []byte

	if rec.Flags.Has(hlc.STORED) {
		current = rec.Payload
	} else {
		current = rec.Payload

		if rec.Flags.Has(hlc.ENTROPY) {
			decoded, err := p.codec.Decode(current)
			if err != nil {
				return nil, hlc.NewError(hlc.DecompressionErrorKind, "entropy decode", err)
			}

			current = decoded
		}

		for i := len(transform.CanonicalOrder) - 1; i >= 0; i-- {
			name := transform.CanonicalOrder[i]
			bit := flagBit[name]

			if !rec.Flags.Has(bit) {
				continue
			}

			t := transform.New(name)
			dst := make([]byte, rec.OriginalSize)

			_, written, err := t.Inverse(current, dst)
			if err != nil {
				return nil, hlc.NewError(hlc.DecompressionErrorKind, name+" inverse", err)
			}

			current = dst[:written]
		}
	}

	if uint32(len(current)) != rec.OriginalSize {
		return nil, hlc.NewError(hlc.DecompressionErrorKind, "decoded length mismatch", nil)
	}

	sum, err := checksum.Compute(p.cfg.Checksum, current)
	if err != nil {
		return nil, err
	}

	if sum != rec.Checksum {
		return nil, hlc.NewError(hlc.ChecksumMismatch, "chunk checksum mismatch", nil)
	}

	return current, nil
}
