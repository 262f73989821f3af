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

import "testing"

func TestHistogramCountsAndTotals(t *testing.T) {
	h := NewHistogram()
	values := []uint64{1, 1, 1, 2, 2, 3}

	for _, v := range values {
		h.Push(v)
	}

	if h.Total() != len(values) {
		t.Fatalf("Total() = %d, want %d", h.Total(), len(values))
	}

	if h.Distinct() != 3 {
		t.Fatalf("Distinct() = %d, want 3", h.Distinct())
	}

	if h.Count(1) != 3 || h.Count(2) != 2 || h.Count(3) != 1 {
		t.Fatalf("counts wrong: 1->%d 2->%d 3->%d", h.Count(1), h.Count(2), h.Count(3))
	}

	if h.Count(99) != 0 {
		t.Fatalf("Count of unseen value = %d, want 0", h.Count(99))
	}
}

func TestHistogramSymbolsSortedAscending(t *testing.T) {
	h := NewHistogram()

	for _, v := range []uint64{50, 1, 200, 3, 3} {
		h.Push(v)
	}

	symbols := h.Symbols()
	want := []uint64{1, 3, 50, 200}

	if len(symbols) != len(want) {
		t.Fatalf("Symbols() = %v, want %v", symbols, want)
	}

	for i := range want {
		if symbols[i] != want[i] {
			t.Fatalf("Symbols() = %v, want %v", symbols, want)
		}
	}
}

func TestHistogramEachVisitsEveryDistinctValue(t *testing.T) {
	h := NewHistogram()

	for _, v := range []uint64{1, 1, 2, 3, 3, 3} {
		h.Push(v)
	}

	seen := make(map[uint64]int)
	h.Each(func(value uint64, count int) {
		seen[value] = count
	})

	want := map[uint64]int{1: 2, 2: 1, 3: 3}

	for v, c := range want {
		if seen[v] != c {
			t.Fatalf("Each reported count %d for value %d, want %d", seen[v], v, c)
		}
	}
}

func TestNewGraphHistogramsAllInitialized(t *testing.T) {
	h := NewGraphHistograms()

	for i, hist := range h {
		if hist == nil {
			t.Fatalf("histogram %d is nil", i)
		}

		if hist.Total() != 0 {
			t.Fatalf("histogram %d not empty on construction", i)
		}
	}
}
