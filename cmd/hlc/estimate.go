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

	"github.com/nimbusdata/hlc/pipeline"
)

func runEstimate(args argMap) int {
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

	ratio, err := pipeline.Estimate(source, cfg)
	if err != nil {
		fmt.Printf("Estimate failed: %v\n", err)
		return _ERR_PROCESSING
	}

	fmt.Printf("Estimated ratio: %.3f\n", ratio)
	return 0
}
