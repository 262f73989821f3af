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

// Package model implements the per-component frequency-quantized frame: the
// encoder table (EncoderModelEntry per folded symbol) and the decoder table
// (DecoderModelEntry per frame slot), generalizing kanzi's fixed 256-symbol
// entropy.ANSRangeCodec/entropy.EntropyUtils machinery to the small, dense,
// per-component folded alphabets this codec needs.
package model

import (
	"math"

	"golang.org/x/exp/slices"

	bvans "github.com/ciminilorenzo/bvans"
)

// ScaleFrequencies rescales raw symbol counts (total n across m = len(freqs)
// distinct folded symbols) onto a new common denominator newM, giving
// priority to low-probability symbols the way spec.md §4.2 prescribes: a
// frozen ratio (computed once, as newM/n) is blended with a
// decaying ratio (recomputed every step as frequency mass is spent),
// weighted by how far through the ascending-frequency walk the symbol sits.
// This mirrors the original streaming_rans crate's scale_freqs exactly
// (resolved from original_source/src/utils/data_utils.rs, since spec.md's
// prose formula collapses ambiguously to a flat ratio if read too literally
// - see DESIGN.md open-question log).
//
// Returns bvans.FrameTooSmallError if the running remainder goes negative:
// newM cannot host every symbol with frequency >= 1.
func ScaleFrequencies(freqs []int, n, m, newM int, component string, log2Frame int) ([]int, error) {
	approx := make([]int, len(freqs))
	copy(approx, freqs)

	sortedIndices := ascendingByFrequency(freqs)
	ratio := float64(newM) / float64(n)
	curM, curNewM := n, newM

	for index, symIndex := range sortedIndices {
		symFreq := freqs[symIndex]
		secondRatio := float64(curNewM) / float64(curM)
		scale := float64(m-index)*ratio/float64(m) + float64(index)*secondRatio/float64(m)
		approxFreq := int(math.Floor(0.5 + scale*float64(symFreq)))

		if approxFreq < 1 {
			approxFreq = 1
		}

		approx[symIndex] = approxFreq
		curNewM -= approxFreq
		curM -= symFreq

		if curNewM < 0 {
			return nil, &bvans.FrameTooSmallError{Component: component, Log2Frame: log2Frame}
		}
	}

	distributeRemainder(approx, newM)
	return approx, nil
}

// ascendingByFrequency returns the indices of non-zero entries in freqs,
// sorted by ascending raw frequency (ties broken by index, for determinism).
func ascendingByFrequency(freqs []int) []int {
	indices := make([]int, 0, len(freqs))

	for i, f := range freqs {
		if f > 0 {
			indices = append(indices, i)
		}
	}

	slices.SortFunc(indices, func(a, b int) bool {
		if freqs[a] != freqs[b] {
			return freqs[a] < freqs[b]
		}

		return a < b
	})

	return indices
}

// distributeRemainder spreads M - sum(freqs) across the largest frequencies,
// one unit at a time in round-robin over the symbols sorted by descending
// frequency, until the frame sums exactly to target.
func distributeRemainder(freqs []int, target int) {
	sum := 0

	for _, f := range freqs {
		sum += f
	}

	remainder := target - sum

	if remainder <= 0 {
		return
	}

	order := make([]int, 0, len(freqs))

	for i, f := range freqs {
		if f > 0 {
			order = append(order, i)
		}
	}

	slices.SortFunc(order, func(a, b int) bool { return freqs[b] < freqs[a] })

	for i := 0; remainder > 0; i = (i + 1) % len(order) {
		freqs[order[i]]++
		remainder--
	}
}
