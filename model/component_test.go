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

import "testing"

func TestBuildEncoderDecoderTablesAgree(t *testing.T) {
	freqs := []int{1, 1, 1, 2, 2, 2, 3, 3, 4, 5} // sums to 24, 10 distinct symbols: frame is 1<<4 = 16 after scaling
	log2Frame, scaled, err := SearchFrame(freqs, "test")
	if err != nil {
		t.Fatalf("SearchFrame failed: %v", err)
	}

	quasiFolded := make([]uint64, len(scaled))

	for i := range quasiFolded {
		quasiFolded[i] = uint64(i) << 8
	}

	m, err := Build(scaled, quasiFolded, log2Frame, "test")
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	for sym, f := range scaled {
		if f == 0 {
			continue
		}

		entry := m.EncoderEntry(uint64(sym))

		for k := uint64(0); k < entry.Freq; k++ {
			slot := entry.CumulFreq + k
			dec := m.DecoderEntry(slot)

			if dec.Symbol != uint64(sym) {
				t.Fatalf("slot %d: decoder table points to symbol %d, want %d", slot, dec.Symbol, sym)
			}

			if dec.Freq != entry.Freq || dec.CumulFreq != entry.CumulFreq {
				t.Fatalf("slot %d: decoder entry (%d,%d) disagrees with encoder entry (%d,%d)",
					slot, dec.Freq, dec.CumulFreq, entry.Freq, entry.CumulFreq)
			}
		}
	}
}

func TestBuildRejectsFrequenciesNotSummingToFrame(t *testing.T) {
	freqs := []int{1, 2, 3} // sums to 6, not a power of two consistent with log2Frame=3 (frame=8)
	_, err := Build(freqs, nil, 3, "broken")

	if err == nil {
		t.Fatal("expected an error when quantized frequencies don't sum to the frame size")
	}
}

func TestEveryFrameSlotIsCoveredExactlyOnce(t *testing.T) {
	freqs := []int{4, 4, 8, 16} // sums to 32 = 1<<5
	m, err := Build(freqs, nil, 5, "covered")
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	seen := make([]bool, m.Frame)

	for sym, entry := range m.Encoder {
		for k := uint64(0); k < entry.Freq; k++ {
			slot := entry.CumulFreq + k

			if seen[slot] {
				t.Fatalf("frame slot %d covered more than once", slot)
			}

			seen[slot] = true

			if got := m.DecoderEntry(slot).Symbol; got != uint64(sym) {
				t.Fatalf("frame slot %d: decoder symbol %d, want %d", slot, got, sym)
			}
		}
	}

	for slot, ok := range seen {
		if !ok {
			t.Fatalf("frame slot %d never covered", slot)
		}
	}
}
