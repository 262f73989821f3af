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
	"github.com/ciminilorenzo/bvans/fold"
	"github.com/ciminilorenzo/bvans/internal"
	"github.com/ciminilorenzo/bvans/model"
)

// CostEstimator scores a (fidelity, radix) pair against a raw-value
// histogram, lower being cheaper. Two implementations exist for the two
// passes BuildGraphModels runs: Log2MockEstimator (cheap, used to shortlist a
// candidate in pass 1) and EntropyMockEstimator (expensive but accurate,
// used to confirm/refine that candidate in pass 2) - the same "cheap filter,
// expensive confirm" shape kanzi's EntropyCodecFactory uses when comparing
// candidate entropy coders by a quick size estimate before committing.
type CostEstimator interface {
	Estimate(h *Histogram, fidelity, radix int) float64
}

// Log2MockEstimator approximates the bit cost of folding every value in a
// histogram with the given (fidelity, radix) as: fidelity bits for the
// folded symbol itself (pretending the folded alphabet is uniform, which it
// is not - hence "mock"), plus radix bits per tail chunk peeled off values
// at or above the folding threshold.
type Log2MockEstimator struct{}

// Estimate implements CostEstimator.
func (Log2MockEstimator) Estimate(h *Histogram, fidelity, radix int) float64 {
	threshold := fold.Threshold(fidelity, radix)
	ceiling := uint64(1) << uint(fidelity)
	total := 0.0

	h.Each(func(value uint64, count int) {
		if value < threshold {
			total += float64(fidelity) * float64(count)
			return
		}

		top := value
		chunks := 0

		for top >= ceiling {
			top >>= uint(radix)
			chunks++
		}

		total += float64(fidelity+chunks*radix) * float64(count)
	})

	return total
}

// EntropyMockEstimator scores (fidelity, radix) by actually folding the
// histogram into a folded-symbol distribution, quantizing it the way the
// real encoder will, and summing the quantized model's self-information
// (internal.SelfEntropy, ported from the reference encoder's self_entropy)
// with the incompressible tail-bit cost. This is the pass-2 refinement: it
// sees the same rounding loss the real frame will pay, which the pass-1
// log2 mock cannot.
type EntropyMockEstimator struct {
	Component string
}

// Estimate implements CostEstimator.
func (e EntropyMockEstimator) Estimate(h *Histogram, fidelity, radix int) float64 {
	foldedIndex := make(map[uint64]int)
	var foldedFreqs []int
	tailBitsTotal := 0

	h.Each(func(value uint64, count int) {
		w := fold.NewByteWriter()
		folded, _ := fold.Fold(value, fidelity, radix, w)

		idx, ok := foldedIndex[folded]
		if !ok {
			idx = len(foldedFreqs)
			foldedIndex[folded] = idx
			foldedFreqs = append(foldedFreqs, 0)
		}

		foldedFreqs[idx] += count
		tailBitsTotal += w.Buffer().(*fold.ByteBuffer).Len() * radix * count
	})

	_, scaled, err := model.SearchFrame(foldedFreqs, e.Component)

	if err != nil {
		return math64Max
	}

	frameTotal := 0
	for _, f := range scaled {
		frameTotal += f
	}

	return internal.SelfEntropy(scaled, float64(frameTotal)) + float64(tailBitsTotal)
}

const math64Max = float64(1 << 62)
