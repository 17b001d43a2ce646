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

// Package pipeline implements the parallel driver and top-level operations:
// Compress, Decompress, Info, Validate and Estimate.
//
// Grounded on kanzi-go's io/CompressedStream.go processBlock: blocks
// (here, chunks) are assigned to a fixed number of workers, processed
// concurrently, and their results collected back into source order before
// being written out. kanzi-go hand-rolls this with a sync.WaitGroup and
// an atomically-updated "last completed id" token; this package generalizes
// it to an explicit pull-based work queue (true work-stealing: idle workers
// pull the next unclaimed chunk index rather than owning a fixed static
// range) plus golang.org/x/sync/errgroup for first-error propagation: a
// single worker error aborts the whole operation.
package pipeline

import (
	"bytes"
	"context"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/nimbusdata/hlc"
	"github.com/nimbusdata/hlc/chunk"
	"github.com/nimbusdata/hlc/container"
)

// notify delivers evt to every listener. Per the Listener contract
// (package hlc), ProcessEvent must not block, so this is a plain
// synchronous fan-out rather than a buffered channel.
func notify(listeners []hlc.Listener, evt hlc.ProgressEvent) {
	for _, l := range listeners {
		l.ProcessEvent(evt)
	}
}

// runPool processes n units of work with cfg.Threads workers pulling from a
// shared index channel, each worker owning its own *chunk.Processor. work
// must write its result at results[idx] and must be safe to call
// concurrently with other indices. Returns the first error encountered, if
// any; on error, indices already queued but not yet claimed are abandoned.
func runPool(cfg hlc.Config, n int, work func(proc *chunk.Processor, idx int) error) error {
	if n == 0 {
		return nil
	}

	threads := cfg.Threads
	if threads > n {
		threads = n
	}

	idxCh := make(chan int)

	g, ctx := errgroup.WithContext(context.Background())

	g.Go(func() error {
		defer close(idxCh)

		for i := 0; i < n; i++ {
			select {
			case idxCh <- i:
			case <-ctx.Done():
				return nil
			}
		}

		return nil
	})

	for w := 0; w < threads; w++ {
		g.Go(func() error {
			proc := chunk.NewProcessor(cfg)
			defer proc.Close()

			for idx := range idxCh {
				if ctx.Err() != nil {
					return nil
				}

				if err := work(proc, idx); err != nil {
					return err
				}
			}

			return nil
		})
	}

	return g.Wait()
}

// Compress splits source into fixed-size chunks, runs the chunk pipeline
// over a worker pool, and writes a complete HLC1 container to sink.
// Listeners, if given, receive an EvtChunkStart/EvtChunkDone pair per chunk;
// per the Listener contract they must not block.
func Compress(source []byte, sink io.Writer, cfg hlc.Config, listeners ...hlc.Listener) (hlc.Stats, error) {
	cfg, err := cfg.Normalize()
	if err != nil {
		return hlc.Stats{}, err
	}

	chunks := splitChunks(source, cfg.ChunkSize)
	n := len(chunks)
	records := make([]chunk.Record, n)

	err = runPool(cfg, n, func(proc *chunk.Processor, idx int) error {
		notify(listeners, hlc.ProgressEvent{Kind: hlc.EvtChunkStart, ChunkID: idx, OriginalSize: len(chunks[idx])})

		rec, err := proc.Compress(idx, chunks[idx])
		if err != nil {
			return err
		}

		records[idx] = rec
		notify(listeners, hlc.ProgressEvent{Kind: hlc.EvtChunkDone, ChunkID: idx, OriginalSize: len(chunks[idx]), CompressedSize: len(rec.Payload), Flags: rec.Flags})
		return nil
	})

	if err != nil {
		return hlc.Stats{}, err
	}

	stats := hlc.Stats{
		OriginalSize: uint64(len(source)),
		ChunkCount:   n,
		FlagCounts:   map[hlc.PipelineFlags]int{},
	}

	for _, rec := range records {
		stats.CompressedSize += uint64(len(rec.Payload))
		stats.FlagCounts[rec.Flags]++
	}

	hdr := container.Header{
		Version:             container.Version,
		ChecksumType:        cfg.Checksum,
		ChunkCount:          uint32(n),
		TotalOriginalSize:   stats.OriginalSize,
		TotalCompressedSize: stats.CompressedSize,
	}

	if err := container.WriteHeader(sink, hdr); err != nil {
		return hlc.Stats{}, err
	}

	for _, rec := range records {
		if err := container.WriteRecord(sink, rec); err != nil {
			return hlc.Stats{}, err
		}
	}

	return stats, nil
}

// Decompress parses source as an HLC1 container and writes the decoded
// bytes to sink, using threads workers. It never trusts the header's
// declared total_original_size to size an unbounded output buffer: use
// DecompressLimit to cap cumulative original size while reading records.
func Decompress(source []byte, sink io.Writer, threads int, listeners ...hlc.Listener) error {
	return decompress(source, sink, threads, 0, listeners)
}

// DecompressLimit is Decompress with a cap on cumulative original_size: if
// the running sum of per-chunk original_size exceeds limit while parsing
// records, it fails fast instead of continuing to read. A limit of 0 means
// unbounded.
func DecompressLimit(source []byte, sink io.Writer, threads int, limit uint64, listeners ...hlc.Listener) error {
	return decompress(source, sink, threads, limit, listeners)
}

func decompress(source []byte, sink io.Writer, threads int, limit uint64, listeners []hlc.Listener) error {
	if threads <= 0 {
		threads = 1
	}

	r := bytes.NewReader(source)

	hdr, err := container.ReadHeader(r)
	if err != nil {
		return err
	}

	records, err := readRecords(r, int(hdr.ChunkCount), limit)
	if err != nil {
		return err
	}

	cfg := hlc.Config{Checksum: hdr.ChecksumType, Threads: threads, Mode: hlc.Balanced, ChunkSize: hlc.DefaultChunkSize, EntropyLevel: hlc.DefaultEntropyLevelBalanced}

	decoded := make([][]byte, len(records))

	err = runPool(cfg, len(records), func(proc *chunk.Processor, idx int) error {
		notify(listeners, hlc.ProgressEvent{Kind: hlc.EvtChunkStart, ChunkID: idx, CompressedSize: len(records[idx].Payload)})

		out, err := proc.Decompress(records[idx])
		if err != nil {
			return err
		}

		decoded[idx] = out
		notify(listeners, hlc.ProgressEvent{Kind: hlc.EvtChunkDone, ChunkID: idx, OriginalSize: len(out), CompressedSize: len(records[idx].Payload), Flags: records[idx].Flags})
		return nil
	})

	if err != nil {
		return err
	}

	for _, b := range decoded {
		if _, err := sink.Write(b); err != nil {
			return hlc.NewError(hlc.Io, "write sink", err)
		}
	}

	return nil
}

// readRecords reads exactly expectedCount records positionally from r,
// assigning ids 0..expectedCount-1. It fails with InvalidFormat if the
// stream holds a different number of records than the header declares, and
// with Io on a short read inside a record.
func readRecords(r *bytes.Reader, expectedCount int, limit uint64) ([]chunk.Record, error) {
	records := make([]chunk.Record, 0, expectedCount)
	var cumOriginal uint64

	for i := 0; i < expectedCount; i++ {
		rec, err := container.ReadRecord(r, i)
		if err == io.EOF {
			return nil, hlc.InvalidFormat("truncated container: fewer chunk records than chunk_count")
		}

		if err != nil {
			return nil, err
		}

		cumOriginal += uint64(rec.OriginalSize)

		if limit > 0 && cumOriginal > limit {
			return nil, hlc.NewError(hlc.Io, "cumulative original size exceeds caller-supplied limit", nil)
		}

		records = append(records, rec)
	}

	// A well-formed container has no trailing bytes after the declared
	// number of records.
	if r.Len() != 0 {
		return nil, hlc.InvalidFormat("trailing bytes after last chunk record")
	}

	return records, nil
}
