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

// GraphEncoder implements bvgraph.ComponentWriter for pass 3: the actual
// entropy-coding pass, run once the per-component models are fixed by
// package builder. It buffers every component value for the node currently
// being written and only pushes them through the rANS state transition once
// the next node's Outdegree arrives (or Flush is called for the last node),
// because rANS is inherently LIFO: values must be fed to encodeSymbol in
// the reverse of the order a forward-reading decoder needs to recover them.
//
// The buffering and reversal scheme is ported field-for-field from
// BVGraphWriter (original_source/src/bvgraph/writer.rs): residual
// components are flushed in reverse-component, reverse-occurrence order;
// interval (start, len) pairs are flushed as interleaved pairs from last to
// first; the leading components (Outdegree..IntervalCount) are flushed in
// reverse-component, reverse-occurrence order. Flush, called once at the
// very end for the last node, uses this same three-group order (see
// DESIGN.md): GraphDecoder reads every node's intervals interleaved
// regardless of position, so the last node's flush has to match every
// earlier node's or a last node with more than one interval would decode
// against the wrong model.
type GraphEncoder struct {
	models *builder.GraphModels
	params *builder.GraphParameters

	state          uint64
	normalizedBits []uint32
	foldWriters    [bvgraph.NumComponents]fold.Writer

	data    [bvgraph.NumComponents][]uint64
	started bool
	phases  []Phase
}

// NewGraphEncoder builds an encoder over the supplied per-component models
// and parameters. newFoldWriter is called once per component to build its
// tail-bits backing (fold.NewByteWriter or fold.NewBitioWriter).
func NewGraphEncoder(models *builder.GraphModels, params *builder.GraphParameters, newFoldWriter func() fold.Writer) *GraphEncoder {
	e := &GraphEncoder{
		models: models,
		params: params,
		state:  bvans.StateLowerBound,
	}

	for c := range e.foldWriters {
		e.foldWriters[c] = newFoldWriter()
	}

	return e
}

// encodeSymbol pushes one raw component value through the rANS state
// transition, folding it first if it exceeds the component's threshold.
// Ported from FoldedStreamANSCoder::encode_symbol (original_source/src/ans/encoder.rs),
// generalized from a single shared model to one ComponentModel per component
// and from a 32-bit split state to a flat 64-bit one.
func (e *GraphEncoder) encodeSymbol(raw uint64, component bvgraph.Component) {
	p := e.params[component]
	symbol, _ := fold.Fold(raw, p.Fidelity, p.Radix, e.foldWriters[component])

	m := e.models[component]
	entry := m.EncoderEntry(symbol)

	if e.state >= entry.Upperbound {
		e.normalizedBits = append(e.normalizedBits, uint32(e.state&0xFFFFFFFF))
		e.state >>= bvans.NormalizationChunkBits
	}

	block := entry.Divide(e.state)
	e.state = (block << uint(m.Log2Frame)) + entry.CumulFreq + (e.state - block*entry.Freq)
}

// currentPhase snapshots the encoder's position right now.
func (e *GraphEncoder) currentPhase() Phase {
	phase := Phase{State: e.state, NormalizedCursor: len(e.normalizedBits)}

	for c := range e.foldWriters {
		phase.FoldedCursors[c] = e.foldWriters[c].Pos()
	}

	return phase
}

// drainReversed replays the buffered values of components first..last
// through encodeSymbol in reverse: components from last down to first, and
// each component's values from the most recent back to the oldest. The
// interval (start, len) pairs are drained separately by drainIntervalPairs;
// WriteOutdegree's node-boundary flush and the final Flush call both helpers
// the same way.
func (e *GraphEncoder) drainReversed(first, last bvgraph.Component) {
	for c := last; c >= first; c-- {
		symbols := e.data[c]

		for i := len(symbols) - 1; i >= 0; i-- {
			e.encodeSymbol(symbols[i], c)
		}
	}
}

func (e *GraphEncoder) drainIntervalPairs() {
	starts := e.data[bvgraph.IntervalStart]
	lens := e.data[bvgraph.IntervalLen]

	for i := len(starts) - 1; i >= 0; i-- {
		e.encodeSymbol(lens[i], bvgraph.IntervalLen)
		e.encodeSymbol(starts[i], bvgraph.IntervalStart)
	}
}

func (e *GraphEncoder) clearData() {
	for c := range e.data {
		e.data[c] = e.data[c][:0]
	}
}

func (e *GraphEncoder) push(c bvgraph.Component, value uint64) error {
	e.data[c] = append(e.data[c], value)
	return nil
}

// WriteOutdegree implements bvgraph.ComponentWriter. On every call after the
// first, it flushes the previous node's buffers (residuals, then interval
// pairs, then the leading group, all in reverse) before starting the new
// node.
func (e *GraphEncoder) WriteOutdegree(value uint64) error {
	if e.started {
		e.drainReversed(bvgraph.FirstResidual, bvgraph.Residual)
		e.drainIntervalPairs()
		e.drainReversed(bvgraph.Outdegree, bvgraph.IntervalCount)
		e.phases = append(e.phases, e.currentPhase())
	}

	e.started = true
	e.clearData()
	return e.push(bvgraph.Outdegree, value)
}

// WriteReferenceOffset implements bvgraph.ComponentWriter.
func (e *GraphEncoder) WriteReferenceOffset(value uint64) error {
	return e.push(bvgraph.ReferenceOffset, value)
}

// WriteBlockCount implements bvgraph.ComponentWriter.
func (e *GraphEncoder) WriteBlockCount(value uint64) error {
	return e.push(bvgraph.BlockCount, value)
}

// WriteBlocks implements bvgraph.ComponentWriter.
func (e *GraphEncoder) WriteBlocks(value uint64) error {
	return e.push(bvgraph.Blocks, value)
}

// WriteIntervalCount implements bvgraph.ComponentWriter.
func (e *GraphEncoder) WriteIntervalCount(value uint64) error {
	return e.push(bvgraph.IntervalCount, value)
}

// WriteIntervalStart implements bvgraph.ComponentWriter.
func (e *GraphEncoder) WriteIntervalStart(value uint64) error {
	return e.push(bvgraph.IntervalStart, value)
}

// WriteIntervalLen implements bvgraph.ComponentWriter.
func (e *GraphEncoder) WriteIntervalLen(value uint64) error {
	return e.push(bvgraph.IntervalLen, value)
}

// WriteFirstResidual implements bvgraph.ComponentWriter.
func (e *GraphEncoder) WriteFirstResidual(value uint64) error {
	return e.push(bvgraph.FirstResidual, value)
}

// WriteResidual implements bvgraph.ComponentWriter.
func (e *GraphEncoder) WriteResidual(value uint64) error {
	return e.push(bvgraph.Residual, value)
}

// Flush implements bvgraph.ComponentWriter: dumps the last node's buffers
// using the same three-group scheme WriteOutdegree uses for every earlier
// node boundary (residuals, then interleaved interval pairs, then the
// leading Outdegree..IntervalCount group, all reversed), then records the
// final phase. A flat single-pass reverse would group interval components
// as all-Len-then-all-Start instead of interleaved (Start[i], Len[i])
// pairs, which the decoder - reading every node's intervals interleaved,
// last node included - would misread as soon as a node had more than one
// interval.
func (e *GraphEncoder) Flush() error {
	e.drainReversed(bvgraph.FirstResidual, bvgraph.Residual)
	e.drainIntervalPairs()
	e.drainReversed(bvgraph.Outdegree, bvgraph.IntervalCount)
	e.phases = append(e.phases, e.currentPhase())
	return nil
}

// State exposes the final encoder state, for serialization into the
// container's Prelude.
func (e *GraphEncoder) State() uint64 { return e.state }

// NormalizedBits exposes the accumulated renormalization words.
func (e *GraphEncoder) NormalizedBits() []uint32 { return e.normalizedBits }

// FoldedBuffers finalizes and returns every component's tail-bits buffer.
func (e *GraphEncoder) FoldedBuffers() [bvgraph.NumComponents]fold.Buffer {
	var buffers [bvgraph.NumComponents]fold.Buffer

	for c := range e.foldWriters {
		buffers[c] = e.foldWriters[c].Buffer()
	}

	return buffers
}

// Phases exposes the per-node checkpoints recorded during encoding.
func (e *GraphEncoder) Phases() []Phase { return e.phases }
