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

// seqaccessbvtest performs a timed full sequential decode of a container
// written by bvcomp, constructing one ans.GraphDecoder per node phase and
// replaying exactly the reads that node's recorded builder.NodeShape says
// it needs - the same role kanzi's BlockDecompressor plays as a throughput
// smoke test against BlockCompressor's output.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/ciminilorenzo/bvans/ans"
	"github.com/ciminilorenzo/bvans/builder"
	"github.com/ciminilorenzo/bvans/container"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "usage: seqaccessbvtest <basename>")
		return 1
	}

	path := args[0] + ".ans"

	mapped, err := container.OpenMappedPrelude(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, "seqaccessbvtest:", err)
		return 2
	}

	defer mapped.Close()

	if err := sequentialDecode(mapped.Prelude); err != nil {
		fmt.Fprintln(os.Stderr, "seqaccessbvtest:", err)
		return 2
	}

	return 0
}

func sequentialDecode(p *container.Prelude) error {
	models, err := p.Models()
	if err != nil {
		return err
	}

	params := p.Params()
	buffers := p.FoldedBuffers()

	if len(p.Phases) != len(p.Shapes) {
		return fmt.Errorf("seqaccessbvtest: %d phases but %d shapes", len(p.Phases), len(p.Shapes))
	}

	start := time.Now()

	for i, phase := range p.Phases {
		// Every node's decoder shares the same read-only models and
		// folded-bits buffers; only the cursor (carried inside Phase) is
		// per-node, so one Buffer set serves every node's decoder here.
		dec := ans.NewGraphDecoder(models, params, p.NormalizedBits, buffers, phase)
		shape := p.Shapes[i]

		if err := readNode(dec, shape); err != nil {
			return fmt.Errorf("seqaccessbvtest: node %d: %w", i, err)
		}
	}

	elapsed := time.Since(start)
	nodesPerSec := float64(len(p.Phases)) / elapsed.Seconds()

	fmt.Printf("decoded %d nodes in %s (%.0f nodes/sec)\n", len(p.Phases), elapsed, nodesPerSec)
	return nil
}

func readNode(dec *ans.GraphDecoder, shape builder.NodeShape) error {
	if _, err := dec.ReadOutdegree(); err != nil {
		return err
	}

	if shape.Outdegree == 0 {
		return nil
	}

	if shape.HasBlockGroup {
		if _, err := dec.ReadReferenceOffset(); err != nil {
			return err
		}

		if _, err := dec.ReadBlockCount(); err != nil {
			return err
		}

		for b := uint64(0); b < shape.BlockCount; b++ {
			if _, err := dec.ReadBlocks(); err != nil {
				return err
			}
		}
	}

	if _, err := dec.ReadIntervalCount(); err != nil {
		return err
	}

	for k := uint64(0); k < shape.IntervalCount; k++ {
		if _, err := dec.ReadIntervalStart(); err != nil {
			return err
		}

		if _, err := dec.ReadIntervalLen(); err != nil {
			return err
		}
	}

	if shape.ResidualCount > 0 {
		if _, err := dec.ReadFirstResidual(); err != nil {
			return err
		}

		for r := uint64(1); r < shape.ResidualCount; r++ {
			if _, err := dec.ReadResidual(); err != nil {
				return err
			}
		}
	}

	return nil
}
