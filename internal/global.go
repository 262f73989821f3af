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

// Package internal holds small numeric helpers (bit lengths, logarithms and
// entropy sums). It plays the same role as kanzi-go's internal.Global; of
// its functions, only SelfEntropy is currently called, by the builder's
// entropy-mock cost estimator.
package internal

import (
	"math"
	"math/bits"
)

// BitLen returns the number of bits needed to represent x, i.e. floor(log2(x))+1
// for x > 0, and 0 for x == 0.
func BitLen(x uint64) int {
	return bits.Len64(x)
}

// Log2Floor returns floor(log2(x)) for x >= 1.
func Log2Floor(x uint64) int {
	return bits.Len64(x) - 1
}

// Log2Ceil returns ceil(log2(x)) for x >= 1.
func Log2Ceil(x uint64) int {
	if x <= 1 {
		return 0
	}
	return bits.Len64(x-1)
}

// Entropy computes the order-0 Shannon entropy (in bits/symbol) of the
// distribution implied by freqs over totalFreq observations, skipping
// zero-frequency symbols. Mirrors the `entropy` helper in the reference
// implementation's cost-estimation utilities.
func Entropy(freqs []int, totalFreq float64) float64 {
	if totalFreq <= 0 {
		return 0
	}

	e := 0.0

	for _, f := range freqs {
		if f == 0 {
			continue
		}

		pr := float64(f) / totalFreq
		e -= pr * log2(pr)
	}

	return e
}

// SelfEntropy returns the total number of bits needed to encode a stream
// whose symbol counts are freqs against a quantized frame of size m: for
// each symbol, freq * log2(m/freq). This is exactly the "entropy mock" cost
// model of the two-pass parameter search when freqs is the quantized table.
func SelfEntropy(freqs []int, m float64) float64 {
	total := 0.0

	for _, f := range freqs {
		if f == 0 {
			continue
		}

		total += float64(f) * log2(m/float64(f))
	}

	return total
}

// CrossEntropy returns -sum(p(x) * log2(q(x))) for two distributions sharing
// the same alphabet, p taken from freqs over m and q from otherFreqs over
// otherM.
func CrossEntropy(freqs []int, m float64, otherFreqs []int, otherM float64) float64 {
	total := 0.0

	for i, f := range freqs {
		if f == 0 {
			continue
		}

		p := float64(f) / m
		q := float64(otherFreqs[i]) / otherM
		total -= p * log2(q)
	}

	return total
}

func log2(x float64) float64 {
	// Routed through one helper, mirroring kanzi's own habit of centralizing
	// log2 (internal.Log2/Log2ScaledBy1024) instead of scattering math.Log2
	// calls across callers.
	return math.Log2(x)
}
