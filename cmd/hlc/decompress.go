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

	"github.com/nimbusdata/hlc"
	"github.com/nimbusdata/hlc/pipeline"
)

func runDecompress(args argMap) int {
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

	threads := runtime.NumCPU()

	if v, ok := args[_ARG_JOBS]; ok {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			fmt.Printf("Invalid jobs value provided on command line: %s\n", v)
			return _ERR_INVALID_PARAM
		}

		threads = n
	}

	source, err := os.ReadFile(inputName)
	if err != nil {
		fmt.Printf("Failed to open input '%s': %v\n", inputName, err)
		return _ERR_OPEN_INPUT
	}

	// A failed decompress leaves the sink in an unspecified state; write to
	// a temporary and rename on success rather than truncating the caller's
	// requested output file in place.
	tmpName := outputName + ".hlc.tmp"

	out, err := os.Create(tmpName)
	if err != nil {
		fmt.Printf("Failed to create output '%s': %v\n", outputName, err)
		return _ERR_CREATE_OUTPUT
	}

	if verbose {
		fmt.Println(_APP_HEADER)
		fmt.Printf("Input:  %s\n", inputName)
		fmt.Printf("Output: %s\n", outputName)
		fmt.Printf("Jobs:   %d\n", threads)
	}

	var listeners []hlc.Listener
	if verbose {
		listeners = append(listeners, newProgressPrinter(os.Stdout))
	}

	err = pipeline.Decompress(source, out, threads, listeners...)
	out.Close()

	if err != nil {
		os.Remove(tmpName)
		fmt.Printf("Decompression failed: %v\n", err)
		return _ERR_PROCESSING
	}

	if err := os.Rename(tmpName, outputName); err != nil {
		fmt.Printf("Failed to finalize output '%s': %v\n", outputName, err)
		return _ERR_CREATE_OUTPUT
	}

	return 0
}
