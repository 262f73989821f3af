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

// Package ans implements the streaming rANS state machine: a single 64-bit
// encoder/decoder state, renormalized through a normalized_bits word stream,
// driving nine independent per-component frames built by package builder.
// It generalizes entropy.ANSRangeCodec's 4-way-interleaved, 256-symbol
// machinery down to one state shared across an arbitrary number of small
// per-component alphabets, and adds the phase bookkeeping that the
// reference format needs for random access.
package ans

import "github.com/ciminilorenzo/bvans/bvgraph"

// Phase is a checkpoint recorded after a node finishes encoding: the triple
// (state, folded cursor per component, normalized cursor) a decoder needs to
// resume decoding from that exact point without replaying anything before
// it. It is the random-access unit this format offers in place of BV's
// seekable bit offsets.
//
// FoldedCursors carries one cursor per component rather than the single
// cursor the original single-stream coder recorded, because this port gives
// each component its own fold.Writer/Buffer (see ans.GraphEncoder) instead
// of interleaving every component's tail bits into one shared stream.
type Phase struct {
	State            uint64
	NormalizedCursor int
	FoldedCursors    [bvgraph.NumComponents]int
}
