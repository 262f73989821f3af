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

package main

import (
	"math/rand"

	"github.com/ciminilorenzo/bvans/bvgraph"
)

// node is one synthesized BV-coded node: the real BV iterator this format
// would normally sit behind is out of scope for this module (see package
// bvgraph's doc comment), so bvcomp exercises the three-pass pipeline
// against a deterministic, seeded stand-in instead of a real .graph file.
type node struct {
	outdegree uint64

	hasBlockGroup   bool
	referenceOffset uint64
	blockCount      uint64
	blocks          []uint64

	intervalCount uint64
	intervalStart []uint64
	intervalLen   []uint64

	hasResidual   bool
	firstResidual uint64
	residual      []uint64
}

// generateTestGraph produces n nodes whose gap and residual values follow a
// Zipf-like skew, the shape BV-compressed web graphs are known for: most
// adjacency gaps are small, with a long tail of large jumps. window and
// maxRef bound how far a node may reference a predecessor, mirroring the
// --window/--max-ref knobs a real BV iterator would expose.
func generateTestGraph(n int, seed int64, window, minInterval, maxRef int) []node {
	rnd := rand.New(rand.NewSource(seed))
	zipf := rand.NewZipf(rnd, 1.2, 1, 1<<20)

	nodes := make([]node, n)

	for i := range nodes {
		outdeg := zipf.Uint64() % 32
		nd := node{outdegree: outdeg}

		if outdeg > 0 {
			if window > 0 && i > 0 && rnd.Intn(4) == 0 {
				nd.hasBlockGroup = true
				nd.referenceOffset = uint64(rnd.Intn(min(window, i)) + 1)
				if int(nd.referenceOffset) > maxRef && maxRef > 0 {
					nd.referenceOffset = uint64(maxRef)
				}

				nd.blockCount = uint64(rnd.Intn(3))
				nd.blocks = make([]uint64, nd.blockCount)

				for b := range nd.blocks {
					nd.blocks[b] = zipf.Uint64() % 16
				}
			}

			residualBudget := int(outdeg)

			if minInterval > 0 && residualBudget > minInterval && rnd.Intn(3) == 0 {
				nd.intervalCount = 1
				nd.intervalStart = []uint64{zipf.Uint64()}
				nd.intervalLen = []uint64{uint64(minInterval)}
				residualBudget -= minInterval
			}

			if residualBudget > 0 {
				nd.hasResidual = true
				nd.firstResidual = zipf.Uint64()
				nd.residual = make([]uint64, residualBudget-1)

				for r := range nd.residual {
					nd.residual[r] = zipf.Uint64() % (1 << 16)
				}
			}
		}

		nodes[i] = nd
	}

	return nodes
}

// drive replays nodes through w in the fixed component order ComponentWriter
// documents, the role a real BV graph iterator plays in production.
func drive(nodes []node, w bvgraph.ComponentWriter) error {
	for _, nd := range nodes {
		if err := w.WriteOutdegree(nd.outdegree); err != nil {
			return err
		}

		if nd.outdegree == 0 {
			continue
		}

		if nd.hasBlockGroup {
			if err := w.WriteReferenceOffset(nd.referenceOffset); err != nil {
				return err
			}

			if err := w.WriteBlockCount(nd.blockCount); err != nil {
				return err
			}

			for _, b := range nd.blocks {
				if err := w.WriteBlocks(b); err != nil {
					return err
				}
			}
		}

		if err := w.WriteIntervalCount(nd.intervalCount); err != nil {
			return err
		}

		for i := range nd.intervalStart {
			if err := w.WriteIntervalStart(nd.intervalStart[i]); err != nil {
				return err
			}

			if err := w.WriteIntervalLen(nd.intervalLen[i]); err != nil {
				return err
			}
		}

		if nd.hasResidual {
			if err := w.WriteFirstResidual(nd.firstResidual); err != nil {
				return err
			}

			for _, r := range nd.residual {
				if err := w.WriteResidual(r); err != nil {
					return err
				}
			}
		}
	}

	return w.Flush()
}
