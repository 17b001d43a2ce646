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

// Package container implements the HLC1 wire format: a 30-byte global
// header followed by a sequence of compressed-chunk records in ascending id
// order, all little-endian.
//
// Grounded on kanzi-go's io/CompressedStream.go writeHeader/readHeader —
// fields written/read in a fixed order, with a checksum computed over the
// header fields and explicit magic/version rejection — translated from
// kanzi's bit-level OutputBitStream/InputBitStream framing to a plain
// byte-oriented, little-endian encoding/binary framing, since this format
// is specified at the byte level rather than the bit level.
package container

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/nimbusdata/hlc"
	"github.com/nimbusdata/hlc/chunk"
)

const (
	Magic        = "HLC1"
	Version      = 1
	HeaderSize   = 30
	recordHeader = 1 + 4 + 4 + 8 // flags + original_size + compressed_size + checksum
)

// Header is the fixed 30-byte global header.
type Header struct {
	Version             uint8
	ChecksumType        hlc.ChecksumType
	ChunkCount          uint32
	TotalOriginalSize   uint64
	TotalCompressedSize uint64
}

// WriteHeader serializes h to w.
func WriteHeader(w io.Writer, h Header) error {
	var buf [HeaderSize]byte
	copy(buf[0:4], Magic)
	buf[4] = h.Version
	buf[5] = byte(h.ChecksumType)
	binary.LittleEndian.PutUint32(buf[6:10], h.ChunkCount)
	binary.LittleEndian.PutUint64(buf[10:18], h.TotalOriginalSize)
	binary.LittleEndian.PutUint64(buf[18:26], h.TotalCompressedSize)
	binary.LittleEndian.PutUint32(buf[26:30], 0)

	if _, err := w.Write(buf[:]); err != nil {
		return hlc.NewError(hlc.Io, "write header", err)
	}

	return nil
}

// ReadHeader parses and validates the global header from r.
func ReadHeader(r io.Reader) (Header, error) {
	var buf [HeaderSize]byte

	if _, err := io.ReadFull(r, buf[:]); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return Header{}, hlc.NewError(hlc.Io, "short read in header", err)
		}

		return Header{}, hlc.NewError(hlc.Io, "read header", err)
	}

	if !bytes.Equal(buf[0:4], []byte(Magic)) {
		return Header{}, hlc.InvalidFormat("magic")
	}

	if buf[4] != Version {
		return Header{}, hlc.InvalidFormat("version")
	}

	ct := hlc.ChecksumType(buf[5])

	if ct != hlc.CRC32 && ct != hlc.SHA256 {
		return Header{}, hlc.InvalidFormat("checksum")
	}

	return Header{
		Version:             buf[4],
		ChecksumType:        ct,
		ChunkCount:          binary.LittleEndian.Uint32(buf[6:10]),
		TotalOriginalSize:   binary.LittleEndian.Uint64(buf[10:18]),
		TotalCompressedSize: binary.LittleEndian.Uint64(buf[18:26]),
	}, nil
}

// WriteRecord serializes one compressed-chunk record to w. The record's id
// is not written — it is implied by position.
func WriteRecord(w io.Writer, rec chunk.Record) error {
	hdr := make([]byte, recordHeader)
	hdr[0] = byte(rec.Flags)
	binary.LittleEndian.PutUint32(hdr[1:5], rec.OriginalSize)
	binary.LittleEndian.PutUint32(hdr[5:9], uint32(len(rec.Payload)))
	binary.LittleEndian.PutUint64(hdr[9:17], rec.Checksum)

	if _, err := w.Write(hdr); err != nil {
		return hlc.NewError(hlc.Io, "write record header", err)
	}

	if _, err := w.Write(rec.Payload); err != nil {
		return hlc.NewError(hlc.Io, "write record payload", err)
	}

	return nil
}

// ReadRecord parses one compressed-chunk record from r, assigning it id.
// r must report remaining bytes via Len (e.g. *bytes.Reader) so an
// out-of-range compressed_size can be rejected without a short read.
func ReadRecord(r *bytes.Reader, id int) (chunk.Record, error) {
	hdr := make([]byte, recordHeader)

	n, err := io.ReadFull(r, hdr)
	if err != nil {
		if n == 0 && err == io.EOF {
			return chunk.Record{}, io.EOF
		}

		return chunk.Record{}, hlc.NewError(hlc.Io, "short read in record header", err)
	}

	flags := hlc.PipelineFlags(hdr[0])
	originalSize := binary.LittleEndian.Uint32(hdr[1:5])
	compressedSize := binary.LittleEndian.Uint32(hdr[5:9])
	cksum := binary.LittleEndian.Uint64(hdr[9:17])

	if int64(compressedSize) > int64(r.Len()) {
		return chunk.Record{}, hlc.InvalidFormat("compressed_size exceeds remaining input")
	}

	payload := make([]byte, compressedSize)

	if _, err := io.ReadFull(r, payload); err != nil {
		return chunk.Record{}, hlc.NewError(hlc.Io, "short read in record payload", err)
	}

	return chunk.Record{
		ID:           id,
		Flags:        flags,
		Checksum:     cksum,
		OriginalSize: originalSize,
		Payload:      payload,
	}, nil
}
