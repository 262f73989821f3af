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

func TestFastDivisorMatchesHardwareDivision(t *testing.T) {
	freqs := []uint64{1, 2, 3, 5, 7, 16, 255, 1 << 20, 1 << 27}
	states := []uint64{0, 1, 1023, 1 << 32, (1 << 32) + 7, 1<<40 - 1}

	for _, freq := range freqs {
		d := newFastDivisor(freq)

		for _, state := range states {
			got := d.divide(state, freq)
			want := state / freq

			if got != want {
				t.Fatalf("freq=%d state=%d: divide got %d, want %d", freq, state, got, want)
			}
		}
	}
}

func TestEncoderModelEntryDivideMatchesFastDivisor(t *testing.T) {
	entry := NewEncoderModelEntry(7, 100, 10, 0)

	for _, state := range []uint64{1, 1000, 1 << 32, (1 << 40) + 3} {
		if got, want := entry.Divide(state), state/7; got != want {
			t.Fatalf("Divide(%d) = %d, want %d", state, got, want)
		}
	}
}
