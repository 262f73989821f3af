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

package builder

import (
	"github.com/ciminilorenzo/bvans/bvgraph"
	"github.com/ciminilorenzo/bvans/fold"
	"github.com/ciminilorenzo/bvans/model"
)

// BuildComponentModel folds every raw value seen in h with the given
// (fidelity, radix), tallies the resulting folded-symbol frequencies,
// searches for a frame size, quantizes and assembles the final
// model.ComponentModel.
//
// The frequency (and quasi-folded) slices are indexed directly by folded
// symbol value - not by an arbitrary compacted position - because
// model.Build later hands that same index straight to pass 3's encoder as
// the symbol looked up per node, exactly the way entropy.ANSRangeCodec
// indexes this.symbols by byte value rather than by a remapped rank.
func BuildComponentModel(h *Histogram, params Parameters, component string) (*model.ComponentModel, error) {
	var freqs []int
	var quasiFolded []uint64

	grow := func(symbol uint64) {
		if int(symbol) < len(freqs) {
			return
		}

		grownFreqs := make([]int, symbol+1)
		copy(grownFreqs, freqs)
		freqs = grownFreqs

		grownQuasi := make([]uint64, symbol+1)
		copy(grownQuasi, quasiFolded)
		quasiFolded = grownQuasi
	}

	h.Each(func(value uint64, count int) {
		w := fold.NewByteWriter()
		symbol, qf := fold.Fold(value, params.Fidelity, params.Radix, w)
		grow(symbol)
		freqs[symbol] += count
		quasiFolded[symbol] = qf
	})

	log2Frame, scaled, err := model.SearchFrame(freqs, component)
	if err != nil {
		return nil, err
	}

	return model.Build(scaled, quasiFolded, log2Frame, component)
}

// GraphModels holds the assembled model for every component, ready to drive
// pass 3's ans.GraphEncoder.
type GraphModels [bvgraph.NumComponents]*model.ComponentModel

// BuildGraphModels runs the two-pass search (a cheap Log2MockEstimator pass
// followed by an EntropyMockEstimator refinement) over every component's
// histogram and assembles the final per-component models.
func BuildGraphModels(histograms *GraphHistograms) (*GraphModels, *GraphParameters, error) {
	pass1 := SearchGraphParameters(histograms, func(int) CostEstimator { return Log2MockEstimator{} })

	var params GraphParameters
	var models GraphModels

	for i := range histograms {
		component := bvgraph.Component(i).String()
		params[i] = SearchParametersNear(histograms[i], pass1[i], EntropyMockEstimator{Component: component})

		m, err := BuildComponentModel(histograms[i], params[i], component)
		if err != nil {
			return nil, nil, err
		}

		models[i] = m
	}

	return &models, &params, nil
}
