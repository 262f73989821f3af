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

import "testing"

func TestShapeRecorderTracksOneShapePerNode(t *testing.T) {
	rec := NewShapeRecorder(NewPhaseCollectingWriter())

	// Node 0: outdegree 3, a reference group with zero copy blocks, one
	// interval, two residuals.
	mustWrite(t, rec.WriteOutdegree(3))
	mustWrite(t, rec.WriteReferenceOffset(1))
	mustWrite(t, rec.WriteBlockCount(0))
	mustWrite(t, rec.WriteIntervalCount(1))
	mustWrite(t, rec.WriteIntervalStart(10))
	mustWrite(t, rec.WriteIntervalLen(2))
	mustWrite(t, rec.WriteFirstResidual(5))
	mustWrite(t, rec.WriteResidual(6))

	// Node 1: outdegree 0, nothing else written.
	mustWrite(t, rec.WriteOutdegree(0))

	mustWrite(t, rec.Flush())

	if len(rec.Shapes) != 2 {
		t.Fatalf("recorded %d shapes, want 2", len(rec.Shapes))
	}

	node0 := rec.Shapes[0]

	if node0.Outdegree != 3 {
		t.Fatalf("node 0 outdegree = %d, want 3", node0.Outdegree)
	}

	if !node0.HasBlockGroup {
		t.Fatal("node 0: HasBlockGroup false despite WriteReferenceOffset having been called")
	}

	if node0.BlockCount != 0 {
		t.Fatalf("node 0 block count = %d, want 0 (a reference with no copy blocks)", node0.BlockCount)
	}

	if node0.IntervalCount != 1 {
		t.Fatalf("node 0 interval count = %d, want 1", node0.IntervalCount)
	}

	if node0.ResidualCount != 2 {
		t.Fatalf("node 0 residual count = %d, want 2", node0.ResidualCount)
	}

	node1 := rec.Shapes[1]

	if node1.Outdegree != 0 {
		t.Fatalf("node 1 outdegree = %d, want 0", node1.Outdegree)
	}

	if node1.HasBlockGroup {
		t.Fatal("node 1: HasBlockGroup true despite no ReferenceOffset written")
	}
}

func mustWrite(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
