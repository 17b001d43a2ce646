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
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nimbusdata/hlc"
)

func randomInput(n int, seed int64) []byte {
	rng := rand.New(rand.NewSource(seed))
	b := make([]byte, n)
	rng.Read(b)
	return b
}

func TestCompressDecompressRoundTrip(t *testing.T) {
	source := bytes.Repeat([]byte("the quick brown fox jumps over the lazy dog\n"), 10000)

	cfg := hlc.Config{Mode: hlc.Balanced, ChunkSize: hlc.MinChunkSize, Threads: 4}

	var compressed bytes.Buffer
	stats, err := Compress(source, &compressed, cfg)
	require.NoError(t, err)
	assert.Equal(t, uint64(len(source)), stats.OriginalSize)
	assert.Greater(t, stats.ChunkCount, 1)
	// Balanced mode selects no transform for plain text, so every chunk is
	// STORED verbatim and the entropy stage is skipped.
	assert.Equal(t, stats.OriginalSize, stats.CompressedSize)

	var decoded bytes.Buffer
	require.NoError(t, Decompress(compressed.Bytes(), &decoded, 4))
	assert.Equal(t, source, decoded.Bytes())
}

func TestCompressDecompressEmptyInput(t *testing.T) {
	var compressed bytes.Buffer
	stats, err := Compress(nil, &compressed, hlc.Config{})
	require.NoError(t, err)
	assert.Equal(t, 0, stats.ChunkCount)

	var decoded bytes.Buffer
	require.NoError(t, Decompress(compressed.Bytes(), &decoded, 1))
	assert.Empty(t, decoded.Bytes())
}

func TestCompressDecompressSingleByteThreadsGreaterThanChunks(t *testing.T) {
	source := []byte("x")

	var compressed bytes.Buffer
	_, err := Compress(source, &compressed, hlc.Config{Threads: 16, ChunkSize: hlc.MinChunkSize})
	require.NoError(t, err)

	var decoded bytes.Buffer
	require.NoError(t, Decompress(compressed.Bytes(), &decoded, 16))
	assert.Equal(t, source, decoded.Bytes())
}

func TestCompressRejectsInvalidConfig(t *testing.T) {
	_, err := Compress([]byte("x"), &bytes.Buffer{}, hlc.Config{ChunkSize: 1})
	require.Error(t, err)
}

func TestDecompressRejectsCorruptedContainer(t *testing.T) {
	err := Decompress([]byte("not a valid container at all"), &bytes.Buffer{}, 1)
	require.Error(t, err)
}

func TestDecompressRejectsTruncatedRecords(t *testing.T) {
	source := randomInput(8192, 99)

	var compressed bytes.Buffer
	_, err := Compress(source, &compressed, hlc.Config{ChunkSize: hlc.MinChunkSize, Threads: 2})
	require.NoError(t, err)

	truncated := compressed.Bytes()[:compressed.Len()-1]

	err = Decompress(truncated, &bytes.Buffer{}, 2)
	require.Error(t, err)
}

func TestDecompressLimitRejectsOversizedOutput(t *testing.T) {
	source := randomInput(1 << 16, 5)

	var compressed bytes.Buffer
	_, err := Compress(source, &compressed, hlc.Config{ChunkSize: hlc.MinChunkSize, Threads: 2})
	require.NoError(t, err)

	err = DecompressLimit(compressed.Bytes(), &bytes.Buffer{}, 2, 1024)
	require.Error(t, err)
}

func TestCompressListenersReceiveEveryChunk(t *testing.T) {
	source := randomInput(1<<18, 17)

	cfg := hlc.Config{ChunkSize: hlc.MinChunkSize, Threads: 4}

	var mu sync.Mutex
	var seen []int

	l := listenerFunc(func(evt hlc.ProgressEvent) {
		if evt.Kind != hlc.EvtChunkDone {
			return
		}

		mu.Lock()
		seen = append(seen, evt.ChunkID)
		mu.Unlock()
	})

	var compressed bytes.Buffer
	stats, err := Compress(source, &compressed, cfg, l)
	require.NoError(t, err)

	assert.Len(t, seen, stats.ChunkCount)
}

type listenerFunc func(hlc.ProgressEvent)

func (f listenerFunc) ProcessEvent(evt hlc.ProgressEvent) { f(evt) }
