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

// splitChunks splits data into fixed-size, dense, id-ordered chunks. The
// last chunk may be shorter than chunkSize. Empty input yields zero chunks.
func splitChunks(data []byte, chunkSize int) [][]byte {
	if len(data) == 0 {
		return nil
	}

	n := (len(data) + chunkSize - 1) / chunkSize
	chunks := make([][]byte, n)

	for i := 0; i < n; i++ {
		start := i * chunkSize
		end := start + chunkSize

		if end > len(data) {
			end = len(data)
		}

		chunks[i] = data[start:end]
	}

	return chunks
}
