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

// Package checksum computes the 64-bit integrity tag stored in each
// compressed-chunk record. CRC32 is widened to 64 bits; SHA-256 is
// truncated to its low 64 bits — a stronger error-detection code than
// CRC32, not a cryptographic collision check.
package checksum

import (
	"crypto/sha256"
	"encoding/binary"
	"hash/crc32"

	"github.com/nimbusdata/hlc"
)

// Compute returns the 64-bit checksum of data under the given algorithm.
func Compute(t hlc.ChecksumType, data []byte) (uint64, error) {
	switch t {
	case hlc.CRC32:
		return uint64(crc32.ChecksumIEEE(data)), nil
	case hlc.SHA256:
		sum := sha256.Sum256(data)
		return binary.BigEndian.Uint64(sum[len(sum)-8:]), nil
	default:
		return 0, hlc.InvalidFormat("checksum")
	}
}
