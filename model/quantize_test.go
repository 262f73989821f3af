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
	"testing"

	bvans "github.com/ciminilorenzo/bvans"
)

func TestScaleFrequenciesSumsExactlyToFrame(t *testing.T) {
	freqs := []int{1, 1, 1, 2, 2, 2, 3, 3, 4, 5}
	n := 0

	for _, f := range freqs {
		n += f
	}

	newM := 1 << 8

	scaled, err := ScaleFrequencies(freqs, n, len(freqs), newM, "test", 8)
	if err != nil {
		t.Fatalf("ScaleFrequencies failed: %v", err)
	}

	sum := 0

	for i, f := range scaled {
		if f < 1 {
			t.Fatalf("scaled[%d] = %d, want >= 1", i, f)
		}

		sum += f
	}

	if sum != newM {
		t.Fatalf("scaled frequencies sum to %d, want %d", sum, newM)
	}
}

func TestScaleFrequenciesZipfLikeDistribution(t *testing.T) {
	freqs := make([]int, 64)

	for i := range freqs {
		freqs[i] = 100000 / (i + 1)
	}

	n := 0

	for _, f := range freqs {
		n += f
	}

	newM := 1 << 12

	scaled, err := ScaleFrequencies(freqs, n, len(freqs), newM, "zipf", 12)
	if err != nil {
		t.Fatalf("ScaleFrequencies failed: %v", err)
	}

	sum := 0

	for _, f := range scaled {
		if f < 1 {
			t.Fatal("a symbol dropped below frequency 1")
		}

		sum += f
	}

	if sum != newM {
		t.Fatalf("scaled frequencies sum to %d, want %d", sum, newM)
	}
}

func TestScaleFrequenciesTooSmallFrame(t *testing.T) {
	freqs := make([]int, 300)

	for i := range freqs {
		freqs[i] = 1
	}

	n := len(freqs)

	_, err := ScaleFrequencies(freqs, n, len(freqs), 1<<8, "toosmall", 8)
	if err == nil {
		t.Fatal("expected FrameTooSmallError when newM cannot host every distinct symbol")
	}

	if _, ok := err.(*bvans.FrameTooSmallError); !ok {
		t.Fatalf("expected *bvans.FrameTooSmallError, got %T: %v", err, err)
	}
}

func TestSearchFrameProducesConsistentFrame(t *testing.T) {
	freqs := []int{1, 1, 1, 2, 2, 2, 3, 3, 4, 5}

	log2Frame, scaled, err := SearchFrame(freqs, "test")
	if err != nil {
		t.Fatalf("SearchFrame failed: %v", err)
	}

	frame := 1 << log2Frame
	sum := 0

	for _, f := range scaled {
		sum += f
	}

	if sum != frame {
		t.Fatalf("SearchFrame's scaled frequencies sum to %d, want 1<<%d = %d", sum, log2Frame, frame)
	}
}

func TestSearchFrameEmptyHistogram(t *testing.T) {
	log2Frame, scaled, err := SearchFrame(nil, "empty")
	if err != nil {
		t.Fatalf("SearchFrame on empty histogram failed: %v", err)
	}

	if log2Frame != 0 || len(scaled) != 0 {
		t.Fatalf("SearchFrame on empty histogram = (%d, %v), want (0, [])", log2Frame, scaled)
	}
}
