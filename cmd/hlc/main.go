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
)

const (
	_APP_HEADER = "hlc 1.0 - chunk-adaptive compression"

	_ARG_INPUT    = "--input="
	_ARG_OUTPUT   = "--output="
	_ARG_BLOCK    = "--block="
	_ARG_JOBS     = "--jobs="
	_ARG_LEVEL    = "--level="
	_ARG_MODE     = "--mode="
	_ARG_CHECKSUM = "--checksum="
	_ARG_FORCE    = "--force"
	_ARG_VERBOSE  = "--verbose"

	// Exit codes, one per CLI failure class.
	_ERR_INVALID_PARAM = 1
	_ERR_OPEN_INPUT    = 2
	_ERR_CREATE_OUTPUT = 3
	_ERR_OUTPUT_EXISTS = 4
	_ERR_PROCESSING    = 5
	_ERR_VALIDATION    = 6
	_ERR_UNKNOWN       = 7
)

func main() {
	runtime.GOMAXPROCS(runtime.NumCPU())

	if len(os.Args) < 2 {
		printHelp()
		os.Exit(0)
	}

	cmd := os.Args[1]
	args := parseArgs(os.Args[2:])

	var code int

	switch cmd {
	case "compress":
		code = runCompress(args)
	case "decompress":
		code = runDecompress(args)
	case "info":
		code = runInfo(args)
	case "validate":
		code = runValidate(args)
	case "estimate":
		code = runEstimate(args)
	case "benchmark":
		code = runBenchmark(args)
	case "--help", "-h", "help":
		printHelp()
		code = 0
	default:
		fmt.Printf("Unknown command: %s\n", cmd)
		printHelp()
		code = _ERR_INVALID_PARAM
	}

	os.Exit(code)
}

func printHelp() {
	fmt.Println(_APP_HEADER)
	fmt.Println()
	fmt.Println("Usage: hlc <command> [options]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  compress    --input=<f> --output=<f> [--block=N] [--jobs=N] [--level=N] [--mode=balanced|max] [--checksum=crc32|sha256] [--force] [--verbose]")
	fmt.Println("  decompress  --input=<f> --output=<f> [--jobs=N] [--force] [--verbose]")
	fmt.Println("  info        --input=<f>")
	fmt.Println("  validate    --input=<f> [--jobs=N]")
	fmt.Println("  estimate    --input=<f> [--block=N] [--mode=balanced|max]")
	fmt.Println("  benchmark   --input=<f> [--block=N] [--jobs=N] [--mode=balanced|max]")
}

// argMap is the hand-rolled --key=value / --flag command-line representation
// this CLI passes between parseArgs and each subcommand runner.
type argMap map[string]string

func parseArgs(args []string) argMap {
	m := make(argMap)

	prefixed := []string{_ARG_INPUT, _ARG_OUTPUT, _ARG_BLOCK, _ARG_JOBS, _ARG_LEVEL, _ARG_MODE, _ARG_CHECKSUM}

	for _, arg := range args {
		matched := false

		for _, p := range prefixed {
			if len(arg) > len(p) && arg[:len(p)] == p {
				m[p] = arg[len(p):]
				matched = true
				break
			}
		}

		if matched {
			continue
		}

		if arg == _ARG_FORCE {
			m[_ARG_FORCE] = "true"
			continue
		}

		if arg == _ARG_VERBOSE {
			m[_ARG_VERBOSE] = "true"
			continue
		}
	}

	return m
}

func (m argMap) has(key string) bool { _, ok := m[key]; return ok }
