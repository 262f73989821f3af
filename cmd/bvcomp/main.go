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

// bvcomp is a reference driver for the three-pass model-build-and-encode
// pipeline, mirroring kanzi's app.Kanzi flag-parsing style
// (--flag=value, positional input/output basenames). Since the real BV
// graph iterator is out of this module's scope (see package bvgraph), it
// runs the pipeline against a deterministic synthetic test graph instead of
// a real .graph/.offsets pair.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ciminilorenzo/bvans/ans"
	"github.com/ciminilorenzo/bvans/builder"
	"github.com/ciminilorenzo/bvans/container"
	"github.com/ciminilorenzo/bvans/fold"
)

const appHeader = "bvcomp (c) 2026 - streaming ANS recompressor for BV graphs"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fmt.Println(appHeader)

	cfg := defaultConfig()
	var inBase, outBase string
	var positional []string

	for _, arg := range args {
		switch {
		case strings.HasPrefix(arg, "--config="):
			cfg.ConfigPath = strings.TrimPrefix(arg, "--config=")
		case strings.HasPrefix(arg, "--window="):
			cfg.Window = mustAtoi(arg, "--window=")
		case strings.HasPrefix(arg, "--min-interval="):
			cfg.MinInterval = mustAtoi(arg, "--min-interval=")
		case strings.HasPrefix(arg, "--max-ref="):
			cfg.MaxRef = mustAtoi(arg, "--max-ref=")
		case strings.HasPrefix(arg, "--nodes="):
			cfg.Nodes = mustAtoi(arg, "--nodes=")
		case arg == "--bitio":
			cfg.Bitio = true
		case arg == "--compress":
			cfg.Compress = true
		case strings.HasPrefix(arg, "--"):
			fmt.Fprintf(os.Stderr, "bvcomp: unknown flag %s\n", arg)
			return 1
		default:
			positional = append(positional, arg)
		}
	}

	if cfg.ConfigPath != "" {
		if err := loadConfigFile(&cfg, cfg.ConfigPath); err != nil {
			fmt.Fprintln(os.Stderr, "bvcomp:", err)
			return 2
		}
	}

	if len(positional) != 2 {
		fmt.Fprintln(os.Stderr, "usage: bvcomp <in-basename> <out-basename> [--window=N] [--min-interval=N] [--max-ref=N] [--config=file.yaml]")
		return 1
	}

	inBase, outBase = positional[0], positional[1]

	if err := compress(inBase, outBase, cfg); err != nil {
		fmt.Fprintln(os.Stderr, "bvcomp:", err)
		return 2
	}

	return 0
}

func mustAtoi(arg, prefix string) int {
	v, err := strconv.Atoi(strings.TrimPrefix(arg, prefix))
	if err != nil {
		fmt.Fprintf(os.Stderr, "bvcomp: invalid value in %s\n", arg)
		os.Exit(1)
	}

	return v
}

func compress(inBase, outBase string, cfg config) error {
	fmt.Printf("generating %d-node test graph from basename %q (window=%d, min-interval=%d, max-ref=%d)\n",
		cfg.Nodes, inBase, cfg.Window, cfg.MinInterval, cfg.MaxRef)

	nodes := generateTestGraph(cfg.Nodes, cfg.Seed, cfg.Window, cfg.MinInterval, cfg.MaxRef)

	// Pass 1 + shape recording: one sweep builds the per-component
	// histograms and records, per node, how many repeated reads a decode
	// replay will need to issue.
	collector := builder.NewPhaseCollectingWriter()
	recorder := builder.NewShapeRecorder(collector)

	if err := drive(nodes, recorder); err != nil {
		return err
	}

	// Pass 2: search (fidelity, radix) per component, cheap grid first,
	// entropy-cost refinement second, then build the quantized models.
	models, params, err := builder.BuildGraphModels(collector.Histograms)
	if err != nil {
		return err
	}

	newFoldWriter := func() fold.Writer { return fold.NewByteWriter() }
	backing := container.BackingByte

	if cfg.Bitio {
		newFoldWriter = func() fold.Writer { return fold.NewBitioWriter() }
		backing = container.BackingBitio
	}

	// Pass 3: the real entropy-coding pass, replaying the identical node
	// sequence through the rANS encoder this time.
	encoder := ans.NewGraphEncoder(models, params, newFoldWriter)

	if err := drive(nodes, encoder); err != nil {
		return err
	}

	prelude := container.NewPrelude(uint64(len(nodes)), models, params, encoder, recorder.Shapes, backing)

	outPath := outBase + ".ans"
	f, err := os.Create(outPath)
	if err != nil {
		return err
	}

	defer f.Close()

	if cfg.Compress {
		err = container.WriteCompressed(prelude, f)
	} else {
		err = prelude.Write(f)
	}

	if err != nil {
		return err
	}

	info, err := f.Stat()
	if err == nil {
		fmt.Printf("wrote %s (%d bytes, %d nodes)\n", outPath, info.Size(), len(nodes))
	}

	return nil
}
