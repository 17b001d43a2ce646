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

// Package entropy wraps a general-purpose entropy coder behind a black-box
// contract: encode(bytes, level) is deterministic for a given
// implementation, decode recovers the exact input, the coder is self-framing
// (no external length needed on decode) and handles empty input.
//
// Grounded on FairForge-vaultaire's internal/crypto/compression.go
// ZstdCompressor: a sync.Once-guarded encoder/decoder pair driven through
// EncodeAll/DecodeAll, which is the right shape for one-shot per-chunk
// framing rather than a streaming io.Writer wrapper.
package entropy

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"

	"github.com/nimbusdata/hlc"
)

// Codec is a one-shot zstd encoder/decoder pair for a fixed level.
type Codec struct {
	level int

	encOnce sync.Once
	enc     *zstd.Encoder
	encErr  error

	decOnce sync.Once
	dec     *zstd.Decoder
	decErr  error
}

// NewCodec builds a Codec for the given entropy level; any int is accepted
// and mapped onto a zstd encoder level by levelToZstd.
func NewCodec(level int) *Codec {
	return &Codec{level: level}
}

func (c *Codec) encoder() (*zstd.Encoder, error) {
	c.encOnce.Do(func() {
		c.enc, c.encErr = zstd.NewWriter(nil, zstd.WithEncoderLevel(levelToZstd(c.level)))
	})

	return c.enc, c.encErr
}

func (c *Codec) decoder() (*zstd.Decoder, error) {
	c.decOnce.Do(func() {
		c.dec, c.decErr = zstd.NewReader(nil)
	})

	return c.dec, c.decErr
}

// levelToZstd maps HLC's entropy_level knob onto zstd's coarse encoder
// levels (fastest..best), clamping out-of-range values instead of failing —
// entropy_level is a free-form tuning integer, not a bounded enum.
func levelToZstd(level int) zstd.EncoderLevel {
	switch {
	case level <= 1:
		return zstd.SpeedFastest
	case level <= 5:
		return zstd.SpeedDefault
	case level <= 12:
		return zstd.SpeedBetterCompression
	default:
		return zstd.SpeedBestCompression
	}
}

// Encode compresses data. Empty input returns empty output.
func (c *Codec) Encode(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return []byte{}, nil
	}

	enc, err := c.encoder()
	if err != nil {
		return nil, hlc.NewError(hlc.CompressionError, "create zstd encoder", err)
	}

	return enc.EncodeAll(data, make([]byte, 0, len(data))), nil
}

// Decode decompresses data previously produced by Encode. Empty input
// returns empty output.
func (c *Codec) Decode(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return []byte{}, nil
	}

	dec, err := c.decoder()
	if err != nil {
		return nil, hlc.NewError(hlc.DecompressionErrorKind, "create zstd decoder", err)
	}

	out, err := dec.DecodeAll(data, nil)
	if err != nil {
		return nil, hlc.NewError(hlc.DecompressionErrorKind, "zstd decode", err)
	}

	return out, nil
}

// Close releases the codec's background resources. Safe to call more than
// once.
func (c *Codec) Close() {
	if c.enc != nil {
		_ = c.enc.Close()
	}

	if c.dec != nil {
		c.dec.Close()
	}
}

// LevelDescription renders a human-readable summary, used by the CLI.
func LevelDescription(level int) string {
	return fmt.Sprintf("level %d (zstd %v)", level, levelToZstd(level))
}
