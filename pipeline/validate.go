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
	"errors"
	"io"

	"github.com/nimbusdata/hlc"
)

// Validate fully decompresses source, discarding the output, and reports
// whether every chunk's checksum and decoded length check out. A checksum
// mismatch or a decode failure caused by corrupted payload bytes is reported
// as (false, nil) — these are properties of the input being validated, not
// failures of Validate itself. A malformed container (bad magic/version,
// truncated header/records) is a genuine error and is returned as such,
// since Validate cannot meaningfully judge chunk-level integrity without
// first being able to parse the container at all.
func Validate(source []byte, threads int) (bool, error) {
	err := decompress(source, io.Discard, threads, 0, nil)
	if err == nil {
		return true, nil
	}

	var herr *hlc.Error
	if errors.As(err, &herr) {
		switch herr.Kind {
		case hlc.ChecksumMismatch, hlc.DecompressionErrorKind:
			return false, nil
		}
	}

	return false, err
}
