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

// Package fold implements symbol folding: reducing an unbounded raw symbol
// (up to 2^48-1) to a small, bounded folded symbol plus a side stream of
// "tail bits", parameterised by a fidelity F and a radix R. The folded-bits
// side stream is abstracted behind the Writer/Buffer interfaces so the codec
// can be parameterised over its backing, the way kanzi's entropy package is
// parameterised over its EntropyEncoder/EntropyDecoder implementations.
package fold

import bvans "github.com/ciminilorenzo/bvans"

// Threshold returns T = 2^(F+R-1), the smallest raw symbol that must be
// folded; symbols below T are singletons and pass through unchanged.
func Threshold(fidelity, radix int) uint64 {
	return uint64(1) << uint(fidelity+radix-1)
}

// Offset returns Δ = 2^(F-1) * (2^R - 1), the per-bucket spacing used to
// keep folded symbols produced with different tail-chunk counts disjoint.
func Offset(fidelity, radix int) uint64 {
	return (uint64(1) << uint(fidelity-1)) * ((uint64(1) << uint(radix)) - 1)
}

// CheckParameters validates a (fidelity, radix) pair against the wire-format
// bounds from spec §3.
func CheckParameters(fidelity, radix int) error {
	if fidelity < bvans.MinFidelity || fidelity > bvans.MaxFidelity {
		return bvans.NewParameterError("fidelity %d outside [%d,%d]", fidelity, bvans.MinFidelity, bvans.MaxFidelity)
	}

	if radix < bvans.MinRadix || radix > bvans.MaxRadix {
		return bvans.NewParameterError("radix %d outside [%d,%d]", radix, bvans.MinRadix, bvans.MaxRadix)
	}

	return nil
}

// Fold reduces raw to a folded symbol x, appending any tail bits (low bits
// first, one R-bit chunk at a time, peeled from the bottom of raw) to w. It
// also returns the quasi-folded word the decoder needs to invert the
// folding without knowing raw's original bit length.
//
// Algorithm (spec §4.1): a raw value below Threshold(fidelity, radix) is its
// own symbol and peels nothing, even when it has more than fidelity bits.
// Otherwise, while raw has more than fidelity significant bits, peel its
// lowest R bits off into a tail chunk and shift right by R; the
// bucket count (number of chunks peeled) offsets the remaining top bits so
// that symbols needing a different number of chunks occupy disjoint ranges
// of the folded alphabet.
func Fold(raw uint64, fidelity, radix int, w Writer) (symbol uint64, quasiFolded uint64) {
	threshold := Threshold(fidelity, radix)

	if raw < threshold {
		return raw, packQuasiFolded(raw, 0)
	}

	top := raw
	chunks := 0
	mask := (uint64(1) << uint(radix)) - 1
	ceiling := uint64(1) << uint(fidelity)

	for top >= ceiling {
		w.Append(top&mask, radix)
		top >>= uint(radix)
		chunks++
	}

	symbol = top + Offset(fidelity, radix)*uint64(chunks)
	quasiFolded = packQuasiFolded(top, chunks*radix)
	return symbol, quasiFolded
}

// Unfold inverts Fold given the quasi-folded word the model stored for the
// decoded symbol, popping tail chunks from the tail of b (LIFO, matching the
// order the encoder appended them) and reassembling the original raw value.
func Unfold(quasiFolded uint64, radix int, b Buffer, pos *int) uint64 {
	top, tailBits := unpackQuasiFolded(quasiFolded)

	if tailBits == 0 {
		return top
	}

	chunks := tailBits / radix
	s := top

	for i := 0; i < chunks; i++ {
		group := b.PopTail(pos, radix)
		s = (s << uint(radix)) | group
	}

	return s
}

// packQuasiFolded packs the folded top bits and the total tail-bit count
// (always a multiple of radix) into one word: (top << 8) | tailBits. Eight
// bits are ample for tailBits: for a raw symbol of at most 48 bits it is
// radix * ceil((48 - fidelity) / radix), which never exceeds 54.
func packQuasiFolded(top uint64, tailBits int) uint64 {
	return (top << 8) | uint64(uint8(tailBits))
}

func unpackQuasiFolded(quasiFolded uint64) (top uint64, tailBits int) {
	return quasiFolded >> 8, int(quasiFolded & 0xFF)
}
