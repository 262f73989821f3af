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

// Package builder performs the two-pass model construction pass over a
// sequence of component values before any entropy coding happens: pass 1
// picks a cheap, provisional (fidelity, radix) per component; pass 2
// refines it against the quantized model pass 1 would have produced. Both
// passes share the same histogram-collection machinery, generalizing
// kanzi's internal.ComputeHistogram (a flat 256-bucket byte histogram) to
// nine independent, sparse, unbounded-alphabet histograms.
package builder

import (
	"golang.org/x/exp/slices"

	"github.com/ciminilorenzo/bvans/bvgraph"
)

// Histogram is a sparse raw-symbol frequency table for one component. Raw
// symbols (node gaps, block lengths, residuals...) range up to 2^48-1, so a
// flat array is out of the question; kanzi's ComputeHistogram can afford a
// dense []int[256] because its alphabet is bytes, ours cannot.
type Histogram struct {
	counts map[uint64]int
	total  int
}

// NewHistogram returns an empty Histogram.
func NewHistogram() *Histogram {
	return &Histogram{counts: make(map[uint64]int)}
}

// Push records one occurrence of value.
func (h *Histogram) Push(value uint64) {
	h.counts[value]++
	h.total++
}

// Total returns the number of values pushed.
func (h *Histogram) Total() int { return h.total }

// Distinct returns the number of distinct values pushed.
func (h *Histogram) Distinct() int { return len(h.counts) }

// Symbols returns the distinct raw values observed, sorted ascending - the
// order callers should assign folded-symbol indices in, so that repeated
// builds from the same histogram are deterministic.
func (h *Histogram) Symbols() []uint64 {
	symbols := make([]uint64, 0, len(h.counts))

	for v := range h.counts {
		symbols = append(symbols, v)
	}

	slices.Sort(symbols)
	return symbols
}

// Count returns how many times value was pushed.
func (h *Histogram) Count(value uint64) int { return h.counts[value] }

// Each calls fn once per distinct value, in no particular order.
func (h *Histogram) Each(fn func(value uint64, count int)) {
	for v, c := range h.counts {
		fn(v, c)
	}
}

// GraphHistograms holds one Histogram per bvgraph component.
type GraphHistograms [bvgraph.NumComponents]*Histogram

// NewGraphHistograms returns nine freshly initialized, empty histograms.
func NewGraphHistograms() *GraphHistograms {
	var h GraphHistograms

	for i := range h {
		h[i] = NewHistogram()
	}

	return &h
}
