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

// Writer accumulates folded tail chunks during encoding. Append pushes the
// low `width` bits of group, in the order the encoder peels them. Two
// implementations exist: ByteWriter (one chunk per byte, simple and fast to
// decode) and BitioWriter (densely bit-packed via icza/bitio, more compact
// on disk). Both satisfy this same capability interface, so the codec's hot
// path calls Append/PopTail once per tail chunk (never for a symbol below
// the folding threshold) regardless of backing -
// see design note in spec.md §9 on "polymorphism over folded-bits backing".
type Writer interface {
	// Append pushes the low `width` bits of group onto the tail stream.
	Append(group uint64, width int)

	// Pos returns the writer's current position, in the same units Buffer's
	// cursor will use (byte count for ByteWriter, bit count for BitioWriter).
	// A Phase recorded mid-encode stores this so a random-access decoder can
	// seed its own cursor without replaying everything before it.
	Pos() int

	// Buffer finalizes the writer and returns a read-only, position-indexed
	// view suitable for decoding. Buffer may be called only once encoding is
	// complete for this writer's lifetime.
	Buffer() Buffer
}

// Buffer is the read side of a folded-bits stream: an immutable sequence of
// appended chunks that a decoder walks backwards via an external cursor,
// exactly mirroring the reference decoder's last_unfolded_pos field - the
// cursor lives in the decoder, not in the buffer, so many decoders can share
// one Buffer concurrently as long as each owns its own *pos.
type Buffer interface {
	// Len returns the cursor's starting position (the position immediately
	// after the last chunk appended).
	Len() int

	// PopTail reads the `width`-bit chunk ending at *pos, moves *pos back by
	// one chunk (one byte for ByteBuffer, width bits for BitioBuffer), and
	// returns the bits read.
	PopTail(pos *int, width int) uint64

	// Bytes returns the backing's raw storage, for container serialization.
	// Its layout is backing-specific (one byte per chunk for ByteBuffer,
	// densely packed for BitioBuffer) and must be paired with Len() and the
	// same backing's constructor to be read back correctly.
	Bytes() []byte
}
