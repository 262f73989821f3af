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

// NodeShape records, for one node, how many times each variable-length
// component repeats - the structural information a real BVGraph keeps in
// its own offsets/properties files, which this module's bvgraph.Component*
// interfaces deliberately do not carry (see package bvgraph's doc comment:
// the graph iterator is out of scope). A caller replaying a decode - this
// module's own cmd/seqaccessbvtest included - needs a NodeShape per node to
// know how many ReadBlocks/ReadIntervalStart/ReadIntervalLen/ReadResidual
// calls to issue; without it ComponentReader has no way to signal "this
// component's repetition is done".
type NodeShape struct {
	Outdegree uint64

	// HasBlockGroup records whether the ReferenceOffset/BlockCount/Blocks
	// group was written at all for this node, independent of BlockCount's
	// value - BlockCount itself may legitimately be zero while the group
	// was still emitted (a reference with no copy blocks), so a reader
	// cannot infer presence from BlockCount alone.
	HasBlockGroup bool
	BlockCount    uint64

	IntervalCount uint64
	ResidualCount uint64
}

// ShapeRecorder wraps another bvgraph.ComponentWriter, forwarding every call
// unchanged while recording one NodeShape per node. It is meant to be
// composed with PhaseCollectingWriter during the histogram-collection pass,
// so a single sweep over a node sequence yields both the frequency tables
// model construction needs and the shape table a decode replay needs -
// rather than re-walking the source graph a second time just to count.
type ShapeRecorder struct {
	inner bvgraph.ComponentWriter

	Shapes []NodeShape

	cur     NodeShape
	started bool
}

// NewShapeRecorder wraps inner, recording shapes as calls pass through.
func NewShapeRecorder(inner bvgraph.ComponentWriter) *ShapeRecorder {
	return &ShapeRecorder{inner: inner}
}

func (s *ShapeRecorder) WriteOutdegree(value uint64) error {
	if s.started {
		s.Shapes = append(s.Shapes, s.cur)
	}

	s.started = true
	s.cur = NodeShape{Outdegree: value}
	return s.inner.WriteOutdegree(value)
}

func (s *ShapeRecorder) WriteReferenceOffset(value uint64) error {
	s.cur.HasBlockGroup = true
	return s.inner.WriteReferenceOffset(value)
}

func (s *ShapeRecorder) WriteBlockCount(value uint64) error {
	s.cur.BlockCount = value
	return s.inner.WriteBlockCount(value)
}

func (s *ShapeRecorder) WriteBlocks(value uint64) error {
	return s.inner.WriteBlocks(value)
}

func (s *ShapeRecorder) WriteIntervalCount(value uint64) error {
	s.cur.IntervalCount = value
	return s.inner.WriteIntervalCount(value)
}

func (s *ShapeRecorder) WriteIntervalStart(value uint64) error {
	return s.inner.WriteIntervalStart(value)
}

func (s *ShapeRecorder) WriteIntervalLen(value uint64) error {
	return s.inner.WriteIntervalLen(value)
}

func (s *ShapeRecorder) WriteFirstResidual(value uint64) error {
	s.cur.ResidualCount = 1
	return s.inner.WriteFirstResidual(value)
}

func (s *ShapeRecorder) WriteResidual(value uint64) error {
	s.cur.ResidualCount++
	return s.inner.WriteResidual(value)
}

// Flush implements bvgraph.ComponentWriter, recording the last node's shape
// before delegating.
func (s *ShapeRecorder) Flush() error {
	if s.started {
		s.Shapes = append(s.Shapes, s.cur)
	}

	return s.inner.Flush()
}

var _ bvgraph.ComponentWriter = (*ShapeRecorder)(nil)
