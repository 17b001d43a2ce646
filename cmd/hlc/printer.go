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
	"io"
	"sync"

	"github.com/nimbusdata/hlc"
)

// progressPrinter is an hlc.Listener that prints one line per completed
// chunk. Mirrors kanzi-go's InfoPrinter: a Listener implementation kept
// entirely outside the core engine, serializing its own output since chunks
// complete concurrently across worker goroutines.
type progressPrinter struct {
	writer io.Writer
	lock   sync.Mutex
}

func newProgressPrinter(w io.Writer) *progressPrinter {
	return &progressPrinter{writer: w}
}

func (p *progressPrinter) ProcessEvent(evt hlc.ProgressEvent) {
	if evt.Kind != hlc.EvtChunkDone {
		return
	}

	p.lock.Lock()
	defer p.lock.Unlock()

	fmt.Fprintf(p.writer, "chunk %-6d %8d -> %8d  %s\n", evt.ChunkID, evt.OriginalSize, evt.CompressedSize, evt.Flags)
}
