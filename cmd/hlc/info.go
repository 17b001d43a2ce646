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

	"github.com/nimbusdata/hlc"
	"github.com/nimbusdata/hlc/pipeline"
)

func runInfo(args argMap) int {
	inputName, ok := args[_ARG_INPUT]
	if !ok || len(inputName) == 0 {
		fmt.Println("Missing required --input=<file>")
		return _ERR_INVALID_PARAM
	}

	source, err := os.ReadFile(inputName)
	if err != nil {
		fmt.Printf("Failed to open input '%s': %v\n", inputName, err)
		return _ERR_OPEN_INPUT
	}

	info, err := pipeline.Info(source)
	if err != nil {
		fmt.Printf("Failed to read container: %v\n", err)
		return _ERR_PROCESSING
	}

	fmt.Printf("Version:            %d\n", info.Version)
	fmt.Printf("Checksum:           %s\n", info.Checksum)
	fmt.Printf("Chunks:             %d\n", info.ChunkCount)
	fmt.Printf("Original size:      %d\n", info.OriginalSize)
	fmt.Printf("Compressed size:    %d\n", info.CompressedSize)

	if info.CompressedSize > 0 {
		fmt.Printf("Ratio:              %.3f\n", float64(info.OriginalSize)/float64(info.CompressedSize))
	}

	fmt.Println("Flag distribution:")

	for _, f := range []hlc.PipelineFlags{hlc.STORED, hlc.ENTROPY | hlc.RLE, hlc.ENTROPY | hlc.DELTA, hlc.ENTROPY | hlc.DICTIONARY} {
		if n, present := info.FlagCounts[f]; present {
			fmt.Printf("  %-24s %d\n", f, n)
		}
	}

	for flags, n := range info.FlagCounts {
		if flags == hlc.STORED || flags == hlc.ENTROPY|hlc.RLE || flags == hlc.ENTROPY|hlc.DELTA || flags == hlc.ENTROPY|hlc.DICTIONARY {
			continue
		}

		fmt.Printf("  %-24s %d\n", flags, n)
	}

	return 0
}
