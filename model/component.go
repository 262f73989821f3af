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

import bvans "github.com/ciminilorenzo/bvans"

// ComponentModel is the fully built frame for one bvgraph component: an
// encoder table indexed by folded symbol and a decoder table indexed by
// frame slot, both derived from the same quantized frequency vector so that
// encoding and decoding agree on every cumulative boundary.
//
// This replaces kanzi's per-chunk, alphabet-fixed-at-256 symbols/f2s pair
// (entropy.ANSRangeCodec) with tables sized to each component's own small,
// dense folded alphabet and built once per stream rather than per chunk.
type ComponentModel struct {
	Log2Frame int
	Frame     uint64
	Encoder   []EncoderModelEntry
	Decoder   []DecoderModelEntry
}

// Build assembles a ComponentModel from a quantized frequency vector (one
// entry per folded symbol, already summing exactly to 1<<log2Frame - see
// ScaleFrequencies) and the matching quasi-folded words Fold produced.
//
// The decoder table is a flat []DecoderModelEntry of length Frame: slot
// cumulFreq+k for k in [0,freq) all identify the same symbol, turning
// decode's state-to-symbol step into one slice index instead of kanzi's
// binary search over frequency buckets (decSymbol + f2s).
func Build(freqs []int, quasiFolded []uint64, log2Frame int, component string) (*ComponentModel, error) {
	if len(freqs) == 0 {
		// A component an external writer never once emitted a value for (no
		// node in the graph has, say, a residual) has no symbols to frame at
		// all; EncoderEntry/DecoderEntry are simply never called for it.
		return &ComponentModel{Log2Frame: 0, Frame: 0}, nil
	}

	frame := uint64(1) << uint(log2Frame)
	encoder := make([]EncoderModelEntry, len(freqs))
	decoder := make([]DecoderModelEntry, frame)
	cumul := uint64(0)

	for sym, f := range freqs {
		if f == 0 {
			continue
		}

		freq := uint64(f)
		var qf uint64

		if quasiFolded != nil {
			qf = quasiFolded[sym]
		}

		encoder[sym] = NewEncoderModelEntry(freq, cumul, log2Frame, qf)

		for k := uint64(0); k < freq; k++ {
			decoder[cumul+k] = DecoderModelEntry{
				Symbol:      uint64(sym),
				Freq:        freq,
				CumulFreq:   cumul,
				QuasiFolded: qf,
			}
		}

		cumul += freq
	}

	if cumul != frame {
		return nil, bvans.NewCorruptedStreamError(
			"component %s: quantized frequencies sum to %d, want frame %d", component, cumul, frame)
	}

	return &ComponentModel{Log2Frame: log2Frame, Frame: frame, Encoder: encoder, Decoder: decoder}, nil
}

// EncoderEntry returns the encoder-side entry for a folded symbol.
func (m *ComponentModel) EncoderEntry(symbol uint64) EncoderModelEntry {
	return m.Encoder[symbol]
}

// DecoderEntry returns the decoder-side entry owning the given frame slot,
// i.e. state & (Frame-1).
func (m *ComponentModel) DecoderEntry(slot uint64) DecoderModelEntry {
	return m.Decoder[slot]
}
