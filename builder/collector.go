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

import "github.com/ciminilorenzo/bvans/bvgraph"

// PhaseCollectingWriter implements bvgraph.ComponentWriter by doing nothing
// but counting: every Write call pushes its value into the matching
// component's Histogram. This is how both model-construction passes observe
// the graph without paying for entropy coding - one sweep of a single
// collector over the full node sequence fills the histograms, and
// BuildGraphModels runs both passes' (fidelity, radix) searches on them
// before pass 3 ever runs
// ans.GraphEncoder, the ComponentWriter that actually emits bits.
type PhaseCollectingWriter struct {
	Histograms *GraphHistograms
}

// NewPhaseCollectingWriter returns a writer backed by fresh, empty
// histograms for every component.
func NewPhaseCollectingWriter() *PhaseCollectingWriter {
	return &PhaseCollectingWriter{Histograms: NewGraphHistograms()}
}

func (w *PhaseCollectingWriter) push(c bvgraph.Component, value uint64) error {
	w.Histograms[c].Push(value)
	return nil
}

// WriteOutdegree implements bvgraph.ComponentWriter.
func (w *PhaseCollectingWriter) WriteOutdegree(value uint64) error {
	return w.push(bvgraph.Outdegree, value)
}

// WriteReferenceOffset implements bvgraph.ComponentWriter.
func (w *PhaseCollectingWriter) WriteReferenceOffset(value uint64) error {
	return w.push(bvgraph.ReferenceOffset, value)
}

// WriteBlockCount implements bvgraph.ComponentWriter.
func (w *PhaseCollectingWriter) WriteBlockCount(value uint64) error {
	return w.push(bvgraph.BlockCount, value)
}

// WriteBlocks implements bvgraph.ComponentWriter.
func (w *PhaseCollectingWriter) WriteBlocks(value uint64) error {
	return w.push(bvgraph.Blocks, value)
}

// WriteIntervalCount implements bvgraph.ComponentWriter.
func (w *PhaseCollectingWriter) WriteIntervalCount(value uint64) error {
	return w.push(bvgraph.IntervalCount, value)
}

// WriteIntervalStart implements bvgraph.ComponentWriter.
func (w *PhaseCollectingWriter) WriteIntervalStart(value uint64) error {
	return w.push(bvgraph.IntervalStart, value)
}

// WriteIntervalLen implements bvgraph.ComponentWriter.
func (w *PhaseCollectingWriter) WriteIntervalLen(value uint64) error {
	return w.push(bvgraph.IntervalLen, value)
}

// WriteFirstResidual implements bvgraph.ComponentWriter.
func (w *PhaseCollectingWriter) WriteFirstResidual(value uint64) error {
	return w.push(bvgraph.FirstResidual, value)
}

// WriteResidual implements bvgraph.ComponentWriter.
func (w *PhaseCollectingWriter) WriteResidual(value uint64) error {
	return w.push(bvgraph.Residual, value)
}

// Flush implements bvgraph.ComponentWriter; collecting histograms needs no
// end-of-stream action.
func (w *PhaseCollectingWriter) Flush() error { return nil }
