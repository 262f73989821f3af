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

package ans

import (
	bvans "github.com/ciminilorenzo/bvans"
	"github.com/ciminilorenzo/bvans/builder"
	"github.com/ciminilorenzo/bvans/bvgraph"
	"github.com/ciminilorenzo/bvans/fold"
)

// GraphDecoder implements bvgraph.ComponentReader, inverting exactly the
// transition ans.GraphEncoder.encodeSymbol performs: D(x) = (freq *
// (state>>log2Frame)) + slot - cumulFreq, where slot = state & (frame-1)
// identifies the owning symbol via one table lookup
// (model.ComponentModel.DecoderEntry) instead of kanzi's frequency binary
// search (decSymbol/f2s in entropy.ANSRangeCodec).
//
// Every GraphDecoder is seeded from a Phase and is self-contained: it never
// reaches past the normalized-bits and folded-bits it was given a cursor
// into. A decoder seeded from Phase K, driven through exactly the component
// reads one BV graph node performs, recovers that node's values in their
// original forward order - the LIFO mirror of GraphEncoder buffering that
// node's writes and flushing them in reverse. This holds both for random
// access to node K and for a sequential walk, which builds a new decoder
// from each node's phase in turn - this port always
// constructs one self-contained decoder per node rather than chaining a
// single continuous state across every node, sidestepping the original's
// single shared-state sequential decoder that multi_model_ans/decoder.rs
// does not document in this port's retrieved excerpt (see DESIGN.md).
type GraphDecoder struct {
	models *builder.GraphModels
	params *builder.GraphParameters

	normalizedBits   []uint32
	normalizedCursor int

	foldBuffers [bvgraph.NumComponents]fold.Buffer
	foldCursors [bvgraph.NumComponents]int

	state uint64
}

// NewGraphDecoder seeds a decoder from a recorded Phase, ready to replay
// exactly the symbols encoded up to that checkpoint.
func NewGraphDecoder(
	models *builder.GraphModels,
	params *builder.GraphParameters,
	normalizedBits []uint32,
	foldBuffers [bvgraph.NumComponents]fold.Buffer,
	phase Phase,
) *GraphDecoder {
	d := &GraphDecoder{
		models:           models,
		params:           params,
		normalizedBits:   normalizedBits,
		normalizedCursor: phase.NormalizedCursor,
		foldBuffers:      foldBuffers,
		state:            phase.State,
	}

	d.foldCursors = phase.FoldedCursors
	return d
}

// decodeSymbol inverts one rANS transition for the given component and
// unfolds the result back to its raw value.
func (d *GraphDecoder) decodeSymbol(component bvgraph.Component) (uint64, error) {
	m := d.models[component]
	p := d.params[component]

	mask := m.Frame - 1
	slot := d.state & mask
	entry := m.DecoderEntry(slot)

	d.state = entry.Freq*(d.state>>uint(m.Log2Frame)) + slot - entry.CumulFreq

	if d.state < bvans.StateLowerBound {
		if d.normalizedCursor <= 0 {
			return 0, bvans.NewCorruptedStreamError("component %s: normalized bit stream exhausted", component)
		}

		d.normalizedCursor--
		word := d.normalizedBits[d.normalizedCursor]
		d.state = (d.state << bvans.NormalizationChunkBits) | uint64(word)
	}

	raw := fold.Unfold(entry.QuasiFolded, p.Radix, d.foldBuffers[component], &d.foldCursors[component])
	return raw, nil
}

// ReadOutdegree implements bvgraph.ComponentReader.
func (d *GraphDecoder) ReadOutdegree() (uint64, error) { return d.decodeSymbol(bvgraph.Outdegree) }

// ReadReferenceOffset implements bvgraph.ComponentReader.
func (d *GraphDecoder) ReadReferenceOffset() (uint64, error) {
	return d.decodeSymbol(bvgraph.ReferenceOffset)
}

// ReadBlockCount implements bvgraph.ComponentReader.
func (d *GraphDecoder) ReadBlockCount() (uint64, error) { return d.decodeSymbol(bvgraph.BlockCount) }

// ReadBlocks implements bvgraph.ComponentReader.
func (d *GraphDecoder) ReadBlocks() (uint64, error) { return d.decodeSymbol(bvgraph.Blocks) }

// ReadIntervalCount implements bvgraph.ComponentReader.
func (d *GraphDecoder) ReadIntervalCount() (uint64, error) {
	return d.decodeSymbol(bvgraph.IntervalCount)
}

// ReadIntervalStart implements bvgraph.ComponentReader.
func (d *GraphDecoder) ReadIntervalStart() (uint64, error) {
	return d.decodeSymbol(bvgraph.IntervalStart)
}

// ReadIntervalLen implements bvgraph.ComponentReader.
func (d *GraphDecoder) ReadIntervalLen() (uint64, error) { return d.decodeSymbol(bvgraph.IntervalLen) }

// ReadFirstResidual implements bvgraph.ComponentReader.
func (d *GraphDecoder) ReadFirstResidual() (uint64, error) {
	return d.decodeSymbol(bvgraph.FirstResidual)
}

// ReadResidual implements bvgraph.ComponentReader.
func (d *GraphDecoder) ReadResidual() (uint64, error) { return d.decodeSymbol(bvgraph.Residual) }
