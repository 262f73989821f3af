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

// Package bvans defines the top level constants and interfaces shared by the
// folded, streaming rANS codec used to recompress BV-format web graphs.
//
// The implementation of the pipeline lives in the sub-packages: fold (symbol
// folding), model (per-component frequency tables), builder (two-pass model
// construction), ans (the streaming encoder/decoder state machine), bvgraph
// (the component enumeration and the external graph-iterator contract) and
// container (prelude/phases serialization).
package bvans

const (
	// MaxRawSymbol is the largest raw symbol this codec can fold: 2^48 - 1.
	MaxRawSymbol = uint64(1)<<48 - 1

	// MinFidelity and MaxFidelity bound the per-component fidelity parameter F.
	MinFidelity = 1
	MaxFidelity = 11

	// MinRadix and MaxRadix bound the per-component radix parameter R.
	MinRadix = 1
	MaxRadix = 8

	// DefaultRadix is the default radix value. No code in this module reads
	// it: the parameter search always scores every radix in
	// [MinRadix, MaxRadix].
	DefaultRadix = 8

	// RenormalizationMargin (K) and its log2 are fixed constants that no code
	// in this module reads: the encoder state starts at exactly
	// StateLowerBound.
	RenormalizationMargin    = 16
	Log2RenormalizationMargin = 4

	// NormalizationChunkBits is the width, in bits, of one renormalization
	// word pushed to / pulled from the normalized_bits stream.
	NormalizationChunkBits = 32

	// StateLowerBound (L = 2^32) is the lower bound of the half-open interval
	// the encoder/decoder state must always occupy.
	StateLowerBound = uint64(1) << NormalizationChunkBits

	// MaxLog2Frame is the largest allowed log2 of a per-component frame size M.
	MaxLog2Frame = 28
)
