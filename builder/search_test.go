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
	"testing"

	bvans "github.com/ciminilorenzo/bvans"
)

func skewedHistogram() *Histogram {
	h := NewHistogram()

	for i := 0; i < 1000; i++ {
		h.Push(uint64(i % 3))
	}

	for i := 0; i < 5; i++ {
		h.Push(uint64(1_000_000 + i))
	}

	return h
}

func TestSearchParametersStaysWithinBounds(t *testing.T) {
	h := skewedHistogram()
	best := SearchParameters(h, Log2MockEstimator{})

	if best.Fidelity < bvans.MinFidelity || best.Fidelity > bvans.MaxFidelity {
		t.Fatalf("chosen fidelity %d outside bounds", best.Fidelity)
	}

	if best.Radix < bvans.MinRadix || best.Radix > bvans.MaxRadix {
		t.Fatalf("chosen radix %d outside bounds", best.Radix)
	}
}

func TestSearchParametersNearNeverWorseThanCandidate(t *testing.T) {
	h := skewedHistogram()
	estimator := EntropyMockEstimator{Component: "test"}

	candidate := Parameters{Fidelity: 6, Radix: 4}
	refined := SearchParametersNear(h, candidate, estimator)

	candidateCost := estimator.Estimate(h, candidate.Fidelity, candidate.Radix)

	if refined.Cost > candidateCost {
		t.Fatalf("refined cost %f worse than candidate cost %f", refined.Cost, candidateCost)
	}
}

func TestSearchGraphParametersCoversEveryComponent(t *testing.T) {
	histograms := NewGraphHistograms()

	for _, h := range histograms {
		h.Push(1)
		h.Push(2)
		h.Push(2)
	}

	params := SearchGraphParameters(histograms, func(int) CostEstimator { return Log2MockEstimator{} })

	for i, p := range params {
		if p.Fidelity < bvans.MinFidelity || p.Fidelity > bvans.MaxFidelity {
			t.Fatalf("component %d: fidelity %d outside bounds", i, p.Fidelity)
		}
	}
}
