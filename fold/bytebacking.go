/*
Copyright 2011-2026 Frederic Langlet
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

package fold

import bvans "github.com/ciminilorenzo/bvans"

// ByteWriter stores one tail chunk per byte. Since radix never exceeds 8,
// every chunk fits in a byte with room to spare; this trades a few wasted
// bits per chunk for an allocation-light, branch-free decode path. The
// container records which backing produced each folded-bits buffer, so a
// reader rebuilds the matching Buffer type.
type ByteWriter struct {
	groups []byte
}

// NewByteWriter returns an empty ByteWriter ready to accept Append calls.
func NewByteWriter() *ByteWriter {
	return &ByteWriter{groups: make([]byte, 0, 64)}
}

// Append implements Writer.
func (w *ByteWriter) Append(group uint64, width int) {
	w.groups = append(w.groups, byte(group))
}

// Pos implements Writer.
func (w *ByteWriter) Pos() int { return len(w.groups) }

// Buffer implements Writer.
func (w *ByteWriter) Buffer() Buffer {
	return &ByteBuffer{groups: w.groups}
}

// ByteBuffer is the read-only view produced by ByteWriter.Buffer.
type ByteBuffer struct {
	groups []byte
}

// NewByteBuffer wraps raw bytes (as persisted by a container) back into a
// readable ByteBuffer.
func NewByteBuffer(data []byte) *ByteBuffer { return &ByteBuffer{groups: data} }

// Len implements Buffer: the cursor starts at the chunk count.
func (b *ByteBuffer) Len() int { return len(b.groups) }

// Bytes implements Buffer.
func (b *ByteBuffer) Bytes() []byte { return b.groups }

// PopTail implements Buffer. pos is a chunk index (not a bit offset); width
// is ignored beyond validating the buffer is not exhausted, since each
// stored chunk is exactly one radix-wide group by construction.
func (b *ByteBuffer) PopTail(pos *int, width int) uint64 {
	if *pos <= 0 {
		panic(bvans.NewCorruptedStreamError("folded-bits underflow: no more tail chunks to pop"))
	}

	*pos--
	return uint64(b.groups[*pos])
}
