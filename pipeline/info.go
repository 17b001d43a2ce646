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
	"bytes"
	"io"

	"github.com/nimbusdata/hlc"
	"github.com/nimbusdata/hlc/container"
)

// Info parses an HLC1 container's header and record headers only — it never
// runs an inverse transform or an entropy decode — and reports a summary of
// the container's contents.
func Info(source []byte) (hlc.Info, error) {
	r := bytes.NewReader(source)

	hdr, err := container.ReadHeader(r)
	if err != nil {
		return hlc.Info{}, err
	}

	flagCounts := map[hlc.PipelineFlags]int{}
	var totalOriginal, totalCompressed uint64

	for i := 0; i < int(hdr.ChunkCount); i++ {
		rec, err := container.ReadRecord(r, i)
		if err == io.EOF {
			return hlc.Info{}, hlc.InvalidFormat("truncated container: fewer chunk records than chunk_count")
		}

		if err != nil {
			return hlc.Info{}, err
		}

		flagCounts[rec.Flags]++
		totalOriginal += uint64(rec.OriginalSize)
		totalCompressed += uint64(len(rec.Payload))
	}

	return hlc.Info{
		Version:        hdr.Version,
		Checksum:       hdr.ChecksumType,
		ChunkCount:     int(hdr.ChunkCount),
		OriginalSize:   totalOriginal,
		CompressedSize: totalCompressed,
		FlagCounts:     flagCounts,
	}, nil
}
