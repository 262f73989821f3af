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

package model

import (
	"math"
	"math/bits"
)

// EncoderModelEntry holds everything the streaming encoder needs to push one
// folded symbol through a single rANS state transition: its quantized
// frequency and cumulative frequency within the component's frame, the
// renormalization threshold, the divisor used for the division by freq the
// transition requires, and the quasi-folded word the decoder-side table
// needs to invert folding without re-deriving it.
//
// Fields mirror entropy.ANSRangeCodec's encSymbol, generalized from kanzi's
// fixed 16-bit logRange/32-bit state pair to this codec's per-component
// log2Frame and 64-bit state.
type EncoderModelEntry struct {
	Freq        uint64
	CumulFreq   uint64
	Upperbound  uint64
	FastDivisor fastDivisor
	QuasiFolded uint64
}

// NewEncoderModelEntry builds the entry for one folded symbol given its
// quantized frequency, its cumulative frequency (the sum of every lower
// symbol's frequency within the frame), the component's frame size, and the
// quasi-folded word Fold produced for it.
//
// Upperbound generalizes encSymbol.reset's xMax = ((ANS_TOP>>logRange)<<16)*freq:
// substituting this codec's state lower bound for kanzi's ANS_TOP and its
// 32-bit renormalization chunk for kanzi's 16-bit one. When freq covers the
// whole frame that product is 2^64, so it saturates at math.MaxUint64.
func NewEncoderModelEntry(freq, cumulFreq uint64, log2Frame int, quasiFolded uint64) EncoderModelEntry {
	stateLowerBound := uint64(1) << 32 // bvans.StateLowerBound; avoided to dodge an import cycle
	upperbound := ((stateLowerBound >> uint(log2Frame)) << 32) * freq

	if freq == uint64(1)<<uint(log2Frame) {
		upperbound = math.MaxUint64
	}

	return EncoderModelEntry{
		Freq:        freq,
		CumulFreq:   cumulFreq,
		Upperbound:  upperbound,
		FastDivisor: newFastDivisor(freq),
		QuasiFolded: quasiFolded,
	}
}

// Divide returns state/e.Freq, computed through the entry's fastDivisor
// (a bits.Div64 hardware division).
func (e EncoderModelEntry) Divide(state uint64) uint64 {
	return e.FastDivisor.divide(state, e.Freq)
}

// DecoderModelEntry is the flat, slot-indexed counterpart: row `cumulFreq +
// k` for k in [0, freq) all point back to the same symbol, mirroring the
// Rust decoder's single Vec<DecoderModelEntry> indexed by (state & (M-1))
// and generalizing kanzi's symbol-frequency binary search (decSymbol +
// this.f2s) into one direct table lookup, which the small per-component
// frame sizes here make affordable.
type DecoderModelEntry struct {
	Symbol      uint64
	Freq        uint64
	CumulFreq   uint64
	QuasiFolded uint64
}

// fastDivisor computes state/freq for the encoder's hot rANS transition.
//
// An earlier version of this type tried to widen kanzi's 32-bit encSymbol
// reciprocal (Alverson, "Integer Division using reciprocals", as used by
// entropy.ANSRangeCodec's encSymbol.reset) into a 64-bit shift-and-multiply
// reciprocal sized directly off bits.Len64(freq-1). That shortcut is only
// correct for a divisor-dependent subset of states: getting a magic constant
// that holds for every state in range requires the full Granlund/Montgomery
// round-up-or-add-back case split, which is easy to get subtly wrong without
// a way to exercise it against hardware division. bits.Div64 already lowers
// to a single hardware DIV on every platform the Go toolchain targets, so it
// is used directly here instead of a hand-rolled reciprocal.
type fastDivisor struct{}

// newFastDivisor used to precompute a reciprocal sized off freq, a value
// bounded by the component's frame size (at most 1<<28, see
// bvans.MaxLog2Frame) and therefore always >= 1. There is nothing left to
// precompute now that divide defers straight to bits.Div64, but the
// constructor is kept so call sites don't need to know that.
func newFastDivisor(freq uint64) fastDivisor {
	return fastDivisor{}
}

// divide returns state/freq.
func (d fastDivisor) divide(state, freq uint64) uint64 {
	if freq <= 1 {
		return state
	}

	quo, _ := bits.Div64(0, state, freq)
	return quo
}
