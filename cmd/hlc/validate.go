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

	"github.com/nimbusdata/hlc/pipeline"
)

func runValidate(args argMap) int {
	inputName, ok := args[_ARG_INPUT]
	if !ok || len(inputName) == 0 {
		fmt.Println("Missing required --input=<file>")
		return _ERR_INVALID_PARAM
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

	ok2, err := pipeline.Validate(source, threads)
	if err != nil {
		fmt.Printf("Not a valid HLC1 container: %v\n", err)
		return _ERR_PROCESSING
	}

	if !ok2 {
		fmt.Println("INVALID: checksum mismatch or corrupted chunk data")
		return _ERR_VALIDATION
	}

	fmt.Println("OK")
	return 0
}
