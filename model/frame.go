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
	"math/bits"

	bvans "github.com/ciminilorenzo/bvans"
)

// SearchFrame finds the smallest frame size (as log2) for which the raw
// histogram can be quantized without any symbol dropping below frequency 1,
// starting from the smallest power of two that can hold one slot per
// distinct symbol and doubling until ScaleFrequencies succeeds or
// bvans.MaxLog2Frame is exceeded.
//
// Returns the chosen log2Frame together with the scaled frequency vector, so
// callers never quantize twice.
func SearchFrame(freqs []int, component string) (log2Frame int, scaled []int, err error) {
	n, distinct := 0, 0

	for _, f := range freqs {
		n += f

		if f > 0 {
			distinct++
		}
	}

	if distinct == 0 {
		return 0, freqs, nil
	}

	log2Frame = bits.Len(uint(distinct - 1))
	if log2Frame == 0 {
		log2Frame = 1
	}

	for ; log2Frame <= bvans.MaxLog2Frame; log2Frame++ {
		m := uint64(1) << uint(log2Frame)
		scaled, err = ScaleFrequencies(freqs, n, distinct, int(m), component, log2Frame)

		if err == nil {
			return log2Frame, scaled, nil
		}
	}

	return 0, nil, err
}
