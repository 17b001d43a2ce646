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

package main

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/nimbusdata/hlc/pipeline"
)

// runBenchmark round-trips the input through Compress then Decompress,
// entirely in memory, and reports throughput and ratio. It is a
// collaborator command, not part of the core engine.
func runBenchmark(args argMap) int {
	inputName, ok := args[_ARG_INPUT]
	if !ok || len(inputName) == 0 {
		fmt.Println("Missing required --input=<file>")
		return _ERR_INVALID_PARAM
	}

	cfg, code := buildConfig(args)
	if code != 0 {
		return code
	}

	source, err := os.ReadFile(inputName)
	if err != nil {
		fmt.Printf("Failed to open input '%s': %v\n", inputName, err)
		return _ERR_OPEN_INPUT
	}

	fmt.Println(_APP_HEADER)
	fmt.Printf("Input:      %s (%d bytes)\n", inputName, len(source))
	fmt.Printf("Mode:       %s\n", cfg.Mode)
	fmt.Printf("Chunk size: %d\n", cfg.ChunkSize)
	fmt.Printf("Jobs:       %d\n", cfg.Threads)

	var compressed bytes.Buffer

	t0 := time.Now()
	stats, err := pipeline.Compress(source, &compressed, cfg)
	compressElapsed := time.Since(t0)

	if err != nil {
		fmt.Printf("Compression failed: %v\n", err)
		return _ERR_PROCESSING
	}

	var decoded bytes.Buffer

	t1 := time.Now()
	err = pipeline.Decompress(compressed.Bytes(), &decoded, cfg.Threads)
	decompressElapsed := time.Since(t1)

	if err != nil {
		fmt.Printf("Decompression failed: %v\n", err)
		return _ERR_PROCESSING
	}

	if !bytes.Equal(decoded.Bytes(), source) {
		fmt.Println("Round-trip mismatch: decompressed output does not match input")
		return _ERR_VALIDATION
	}

	compressMBps := throughputMBps(len(source), compressElapsed)
	decompressMBps := throughputMBps(len(source), decompressElapsed)

	fmt.Printf("Compress:   %v (%.2f MB/s)\n", compressElapsed, compressMBps)
	fmt.Printf("Decompress: %v (%.2f MB/s)\n", decompressElapsed, decompressMBps)
	fmt.Printf("Ratio:      %.3f\n", stats.Ratio())

	return 0
}

func throughputMBps(n int, d time.Duration) float64 {
	if d <= 0 {
		return 0
	}

	return (float64(n) / (1024 * 1024)) / d.Seconds()
}
