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

package fold

import (
	"testing"

	bvans "github.com/ciminilorenzo/bvans"
)

func TestFoldUnfoldRoundTripByteBacking(t *testing.T) {
	values := []uint64{
		0, 1, 2, 63, 255, 1024, 1 << 20, 1 << 30, bvans.MaxRawSymbol, bvans.MaxRawSymbol - 1,
	}

	for fidelity := bvans.MinFidelity; fidelity <= bvans.MaxFidelity; fidelity++ {
		for radix := bvans.MinRadix; radix <= bvans.MaxRadix; radix++ {
			for _, raw := range values {
				w := NewByteWriter()
				symbol, quasiFolded := Fold(raw, fidelity, radix, w)
				buf := w.Buffer()
				pos := buf.Len()

				got := Unfold(quasiFolded, radix, buf, &pos)

				if got != raw {
					t.Fatalf("fidelity=%d radix=%d raw=%d: unfold got %d (symbol %d)", fidelity, radix, raw, got, symbol)
				}

				if pos != 0 {
					t.Fatalf("fidelity=%d radix=%d raw=%d: cursor left at %d, want 0", fidelity, radix, raw, pos)
				}
			}
		}
	}
}

func TestFoldUnfoldRoundTripBitioBacking(t *testing.T) {
	values := []uint64{0, 1, 300, 1 << 16, 1 << 40, bvans.MaxRawSymbol}

	for fidelity := bvans.MinFidelity; fidelity <= bvans.MaxFidelity; fidelity += 3 {
		for radix := bvans.MinRadix; radix <= bvans.MaxRadix; radix += 3 {
			for _, raw := range values {
				w := NewBitioWriter()
				_, quasiFolded := Fold(raw, fidelity, radix, w)
				buf := w.Buffer()
				pos := buf.Len()

				got := Unfold(quasiFolded, radix, buf, &pos)

				if got != raw {
					t.Fatalf("fidelity=%d radix=%d raw=%d: unfold got %d", fidelity, radix, raw, got)
				}
			}
		}
	}
}

func TestFoldSingletonsPassThroughUnchanged(t *testing.T) {
	fidelity, radix := 8, 4
	threshold := Threshold(fidelity, radix)

	w := NewByteWriter()
	symbol, quasiFolded := Fold(threshold-1, fidelity, radix, w)

	if symbol != threshold-1 {
		t.Fatalf("singleton folded to %d, want unchanged %d", symbol, threshold-1)
	}

	if w.Pos() != 0 {
		t.Fatalf("singleton fold appended %d tail chunks, want 0", w.Pos())
	}

	top, tailBits := unpackQuasiFolded(quasiFolded)

	if top != threshold-1 || tailBits != 0 {
		t.Fatalf("singleton quasi-folded word = (%d,%d), want (%d,0)", top, tailBits, threshold-1)
	}
}

func TestFoldSequenceOfValuesSharedBuffer(t *testing.T) {
	// A single fold.Writer accumulates tail chunks across many symbols the
	// way GraphEncoder drives it over a node's worth of component values; the
	// decoder must invert them in exactly reverse order.
	fidelity, radix := 6, 3
	raws := []uint64{5, 9999, 1, 1 << 20, 42, bvans.MaxRawSymbol}

	w := NewByteWriter()
	quasiFolded := make([]uint64, len(raws))

	for i, raw := range raws {
		_, qf := Fold(raw, fidelity, radix, w)
		quasiFolded[i] = qf
	}

	buf := w.Buffer()
	pos := buf.Len()

	for i := len(raws) - 1; i >= 0; i-- {
		got := Unfold(quasiFolded[i], radix, buf, &pos)

		if got != raws[i] {
			t.Fatalf("symbol %d: unfold got %d, want %d", i, got, raws[i])
		}
	}

	if pos != 0 {
		t.Fatalf("cursor left at %d after popping every symbol, want 0", pos)
	}
}

func TestCheckParametersBounds(t *testing.T) {
	if err := CheckParameters(bvans.MinFidelity, bvans.MinRadix); err != nil {
		t.Fatalf("minimum bounds rejected: %v", err)
	}

	if err := CheckParameters(bvans.MaxFidelity, bvans.MaxRadix); err != nil {
		t.Fatalf("maximum bounds rejected: %v", err)
	}

	if err := CheckParameters(bvans.MinFidelity-1, bvans.MinRadix); err == nil {
		t.Fatal("fidelity below minimum accepted")
	}

	if err := CheckParameters(bvans.MinFidelity, bvans.MaxRadix+1); err == nil {
		t.Fatal("radix above maximum accepted")
	}
}

func TestByteBufferPopTailUnderflowPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on tail underflow")
		}
	}()

	buf := NewByteBuffer(nil)
	pos := 0
	buf.PopTail(&pos, 1)
}
