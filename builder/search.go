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
	bvans "github.com/ciminilorenzo/bvans"
	"github.com/ciminilorenzo/bvans/bvgraph"
)

// Parameters is the (fidelity, radix) pair chosen for one component.
type Parameters struct {
	Fidelity int
	Radix    int
	Cost     float64
}

// SearchParameters grid-searches fidelity in [bvans.MinFidelity,
// bvans.MaxFidelity] and radix in [bvans.MinRadix, bvans.MaxRadix], scoring
// every combination with estimator and keeping the cheapest. Ties keep the
// first pair visited: the smaller fidelity, then (at equal fidelity) the
// smaller radix.
func SearchParameters(h *Histogram, estimator CostEstimator) Parameters {
	best := Parameters{Fidelity: bvans.MinFidelity, Radix: bvans.MinRadix, Cost: -1}

	for fidelity := bvans.MinFidelity; fidelity <= bvans.MaxFidelity; fidelity++ {
		for radix := bvans.MinRadix; radix <= bvans.MaxRadix; radix++ {
			cost := estimator.Estimate(h, fidelity, radix)

			if best.Cost < 0 || cost < best.Cost {
				best = Parameters{Fidelity: fidelity, Radix: radix, Cost: cost}
			}
		}
	}

	return best
}

// SearchParametersNear refines a pass-1 candidate by re-scoring it and its
// immediate neighbors (fidelity ± 1, radix ± 1) with a more expensive
// estimator, rather than re-running the full grid. Pass 1's job is only to
// land close; pass 2 pays the accurate cost function over a small
// neighborhood instead of the whole (fidelity, radix) product.
func SearchParametersNear(h *Histogram, candidate Parameters, estimator CostEstimator) Parameters {
	best := candidate
	best.Cost = estimator.Estimate(h, candidate.Fidelity, candidate.Radix)

	for df := -1; df <= 1; df++ {
		fidelity := candidate.Fidelity + df

		if fidelity < bvans.MinFidelity || fidelity > bvans.MaxFidelity {
			continue
		}

		for dr := -1; dr <= 1; dr++ {
			radix := candidate.Radix + dr

			if radix < bvans.MinRadix || radix > bvans.MaxRadix {
				continue
			}

			if df == 0 && dr == 0 {
				continue
			}

			cost := estimator.Estimate(h, fidelity, radix)

			if cost < best.Cost {
				best = Parameters{Fidelity: fidelity, Radix: radix, Cost: cost}
			}
		}
	}

	return best
}

// GraphParameters holds the chosen (fidelity, radix) pair for every
// component.
type GraphParameters [bvgraph.NumComponents]Parameters

// SearchGraphParameters runs SearchParameters independently over every
// component's histogram, with the estimator estimatorFor returns for that
// component. BuildGraphModels' pass 1 calls this with a Log2MockEstimator;
// its pass 2 does not, refining pass 1's result per component with
// SearchParametersNear and an EntropyMockEstimator instead.
func SearchGraphParameters(histograms *GraphHistograms, estimatorFor func(component int) CostEstimator) *GraphParameters {
	var params GraphParameters

	for i := range histograms {
		params[i] = SearchParameters(histograms[i], estimatorFor(i))
	}

	return &params
}
