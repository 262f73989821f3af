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

import (
	"bytes"

	"github.com/icza/bitio"
	"github.com/pkg/errors"

	bvans "github.com/ciminilorenzo/bvans"
)

// BitioWriter densely bit-packs tail chunks using github.com/icza/bitio,
// trading ByteWriter's simplicity for roughly radix/8 the on-disk size of
// the folded-bits side stream. Grounded on mewkiz/flac, which routes all of
// its bitstream I/O (including its own "unary"/Rice side channel) through
// icza/bitio rather than hand-rolling a bit writer.
type BitioWriter struct {
	buf   *bytes.Buffer
	bw    *bitio.Writer
	nbits int
}

// NewBitioWriter returns an empty BitioWriter ready to accept Append calls.
func NewBitioWriter() *BitioWriter {
	buf := new(bytes.Buffer)
	return &BitioWriter{buf: buf, bw: bitio.NewWriter(buf)}
}

// Append implements Writer by writing the low `width` bits of group,
// most-significant-bit first, via bitio.Writer.WriteBits.
func (w *BitioWriter) Append(group uint64, width int) {
	if err := w.bw.WriteBits(group, uint8(width)); err != nil {
		panic(errors.Wrap(err, "bvans/fold: bitio append failed"))
	}

	w.nbits += width
}

// Pos implements Writer.
func (w *BitioWriter) Pos() int { return w.nbits }

// Buffer implements Writer: flushes any partial final byte (zero-padded on
// the low end, since writes are MSB-first) and returns an immutable,
// bit-addressable view.
func (w *BitioWriter) Buffer() Buffer {
	if err := w.bw.Close(); err != nil {
		panic(errors.Wrap(err, "bvans/fold: bitio flush failed"))
	}

	return &BitioBuffer{data: w.buf.Bytes(), bitLen: w.nbits}
}

// BitioBuffer is the read-only view produced by BitioWriter.Buffer. Reads
// are hand-rolled bit extraction rather than a second bitio.Reader, because
// bitio only streams forward while decoding here must walk the tail
// backwards from an arbitrary, caller-owned cursor; icza/bitio exposes no
// reverse-read API, so this is the justified exception to "use the library",
// confined to the read side only (see DESIGN.md).
type BitioBuffer struct {
	data   []byte
	bitLen int
}

// NewBitioBuffer wraps raw, densely-packed bytes (as persisted by a
// container) back into a readable BitioBuffer. bitLen is the exact bit
// count written, needed because the last byte may be zero-padded.
func NewBitioBuffer(data []byte, bitLen int) *BitioBuffer {
	return &BitioBuffer{data: data, bitLen: bitLen}
}

// Len implements Buffer: the cursor starts at the total bit length.
func (b *BitioBuffer) Len() int { return b.bitLen }

// Bytes implements Buffer.
func (b *BitioBuffer) Bytes() []byte { return b.data }

// PopTail implements Buffer, reading `width` bits ending at *pos (exclusive)
// in the same MSB-first bit order bitio.Writer.WriteBits uses.
func (b *BitioBuffer) PopTail(pos *int, width int) uint64 {
	if *pos < width {
		panic(bvans.NewCorruptedStreamError("folded-bits underflow: need %d bits, have %d", width, *pos))
	}

	start := *pos - width
	var v uint64

	for i := 0; i < width; i++ {
		bitIndex := start + i
		byteIdx := bitIndex / 8
		bitInByte := 7 - uint(bitIndex%8)
		bit := (b.data[byteIdx] >> bitInByte) & 1
		v = (v << 1) | uint64(bit)
	}

	*pos = start
	return v
}
