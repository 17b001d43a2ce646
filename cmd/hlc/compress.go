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
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/nimbusdata/hlc"
	"github.com/nimbusdata/hlc/pipeline"
)

func runCompress(args argMap) int {
	inputName, ok := args[_ARG_INPUT]
	if !ok || len(inputName) == 0 {
		fmt.Println("Missing required --input=<file>")
		return _ERR_INVALID_PARAM
	}

	outputName, ok := args[_ARG_OUTPUT]
	if !ok || len(outputName) == 0 {
		fmt.Println("Missing required --output=<file>")
		return _ERR_INVALID_PARAM
	}

	force := args.has(_ARG_FORCE)
	verbose := args.has(_ARG_VERBOSE)

	if !force {
		if _, err := os.Stat(outputName); err == nil {
			fmt.Printf("File '%s' exists and the 'force' option was not provided.\n", outputName)
			return _ERR_OUTPUT_EXISTS
		}
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

	out, err := os.Create(outputName)
	if err != nil {
		fmt.Printf("Failed to create output '%s': %v\n", outputName, err)
		return _ERR_CREATE_OUTPUT
	}
	defer out.Close()

	if verbose {
		fmt.Println(_APP_HEADER)
		fmt.Printf("Input:        %s\n", inputName)
		fmt.Printf("Output:       %s\n", outputName)
		fmt.Printf("Mode:         %s\n", cfg.Mode)
		fmt.Printf("Chunk size:   %d\n", cfg.ChunkSize)
		fmt.Printf("Jobs:         %d\n", cfg.Threads)
	}

	var listeners []hlc.Listener
	if verbose {
		listeners = append(listeners, newProgressPrinter(os.Stdout))
	}

	stats, err := pipeline.Compress(source, out, cfg, listeners...)
	if err != nil {
		fmt.Printf("Compression failed: %v\n", err)
		return _ERR_PROCESSING
	}

	if verbose {
		fmt.Printf("Chunks:       %d\n", stats.ChunkCount)
		fmt.Printf("Original:     %d\n", stats.OriginalSize)
		fmt.Printf("Compressed:   %d\n", stats.CompressedSize)
		fmt.Printf("Ratio:        %.3f\n", stats.Ratio())
	}

	return 0
}

// buildConfig parses the shared compress/estimate/benchmark flags into an
// hlc.Config, defaulting anything unset to hlc.DefaultConfig's values, except
// that the worker count defaults to runtime.NumCPU() and --mode=max defaults
// the entropy level to hlc.DefaultEntropyLevelMax.
func buildConfig(args argMap) (hlc.Config, int) {
	cfg := hlc.DefaultConfig()

	if v, ok := args[_ARG_MODE]; ok {
		switch strings.ToLower(v) {
		case "balanced":
			cfg.Mode = hlc.Balanced
		case "max":
			cfg.Mode = hlc.Max
			cfg.EntropyLevel = hlc.DefaultEntropyLevelMax
		default:
			fmt.Printf("Invalid mode provided on command line: %s\n", v)
			return hlc.Config{}, _ERR_INVALID_PARAM
		}
	}

	if v, ok := args[_ARG_CHECKSUM]; ok {
		switch strings.ToLower(v) {
		case "crc32":
			cfg.Checksum = hlc.CRC32
		case "sha256":
			cfg.Checksum = hlc.SHA256
		default:
			fmt.Printf("Invalid checksum type provided on command line: %s\n", v)
			return hlc.Config{}, _ERR_INVALID_PARAM
		}
	}

	if v, ok := args[_ARG_BLOCK]; ok {
		n, err := strconv.Atoi(v)
		if err != nil || n < hlc.MinChunkSize {
			fmt.Printf("Invalid block size provided on command line: %s\n", v)
			return hlc.Config{}, _ERR_INVALID_PARAM
		}

		cfg.ChunkSize = n
	}

	if v, ok := args[_ARG_JOBS]; ok {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			fmt.Printf("Invalid jobs value provided on command line: %s\n", v)
			return hlc.Config{}, _ERR_INVALID_PARAM
		}

		cfg.Threads = n
	} else {
		cfg.Threads = runtime.NumCPU()
	}

	if v, ok := args[_ARG_LEVEL]; ok {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			fmt.Printf("Invalid entropy level provided on command line: %s\n", v)
			return hlc.Config{}, _ERR_INVALID_PARAM
		}

		cfg.EntropyLevel = n
	}

	normalized, err := cfg.Normalize()
	if err != nil {
		fmt.Printf("Invalid configuration: %v\n", err)
		return hlc.Config{}, _ERR_INVALID_PARAM
	}

	return normalized, 0
}
