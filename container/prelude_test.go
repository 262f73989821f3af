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

package container

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/ciminilorenzo/bvans/ans"
	"github.com/ciminilorenzo/bvans/builder"
	"github.com/ciminilorenzo/bvans/fold"
)

// buildTestPrelude drives a small synthetic node sequence through the full
// three-pass pipeline (the same shape cmd/bvcomp's compress does) and
// returns the resulting Prelude plus the outdegree sequence used to build
// it, so callers can verify decode round-trips after a serialize/
// deserialize cycle.
func buildTestPrelude(t *testing.T) (*Prelude, []uint64) {
	t.Helper()

	outdegrees := []uint64{0, 3, 1, 10, 0, 7, 2, 1 << 18}

	collector := builder.NewPhaseCollectingWriter()
	recorder := builder.NewShapeRecorder(collector)

	for _, v := range outdegrees {
		if err := recorder.WriteOutdegree(v); err != nil {
			t.Fatalf("WriteOutdegree failed: %v", err)
		}

		if err := recorder.WriteIntervalCount(0); err != nil {
			t.Fatalf("WriteIntervalCount failed: %v", err)
		}
	}

	if err := recorder.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}

	models, params, err := builder.BuildGraphModels(collector.Histograms)
	if err != nil {
		t.Fatalf("BuildGraphModels failed: %v", err)
	}

	encoder := ans.NewGraphEncoder(models, params, func() fold.Writer { return fold.NewByteWriter() })

	for _, v := range outdegrees {
		if err := encoder.WriteOutdegree(v); err != nil {
			t.Fatalf("WriteOutdegree failed: %v", err)
		}

		if err := encoder.WriteIntervalCount(0); err != nil {
			t.Fatalf("WriteIntervalCount failed: %v", err)
		}
	}

	if err := encoder.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}

	p := NewPrelude(uint64(len(outdegrees)), models, params, encoder, recorder.Shapes, BackingByte)
	return p, outdegrees
}

func decodeOutdegrees(t *testing.T, p *Prelude, n int) []uint64 {
	t.Helper()

	models, err := p.Models()
	if err != nil {
		t.Fatalf("Models failed: %v", err)
	}

	params := p.Params()
	buffers := p.FoldedBuffers()

	got := make([]uint64, n)

	for i := 0; i < n; i++ {
		dec := ans.NewGraphDecoder(models, params, p.NormalizedBits, buffers, p.Phases[i])

		v, err := dec.ReadOutdegree()
		if err != nil {
			t.Fatalf("node %d: ReadOutdegree failed: %v", i, err)
		}

		if _, err := dec.ReadIntervalCount(); err != nil {
			t.Fatalf("node %d: ReadIntervalCount failed: %v", i, err)
		}

		got[i] = v
	}

	return got
}

func TestPreludeWriteReadRoundTrip(t *testing.T) {
	p, outdegrees := buildTestPrelude(t)

	var buf bytes.Buffer

	if err := p.Write(&buf); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	got, err := ReadPrelude(&buf)
	if err != nil {
		t.Fatalf("ReadPrelude failed: %v", err)
	}

	if got.BuildID != p.BuildID {
		t.Fatal("BuildID not preserved across round trip")
	}

	if got.SequenceLength != p.SequenceLength {
		t.Fatalf("SequenceLength = %d, want %d", got.SequenceLength, p.SequenceLength)
	}

	if len(got.Phases) != len(outdegrees) || len(got.Shapes) != len(outdegrees) {
		t.Fatalf("got %d phases / %d shapes, want %d", len(got.Phases), len(got.Shapes), len(outdegrees))
	}

	decoded := decodeOutdegrees(t, got, len(outdegrees))

	if !reflect.DeepEqual(decoded, outdegrees) {
		t.Fatalf("decoded outdegrees %v, want %v", decoded, outdegrees)
	}
}

func TestPreludeDigestDetectsCorruption(t *testing.T) {
	p, _ := buildTestPrelude(t)

	var buf bytes.Buffer

	if err := p.Write(&buf); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	raw := buf.Bytes()

	// Flip a byte inside the BuildID field (right after the 4-byte magic and
	// 2-byte version, see Write/ReadPrelude). digestPayload keys its siphash
	// by BuildID, so corrupting it changes the key ReadPrelude recomputes the
	// digest with, which will not match the digest Write stored under the
	// original key - unlike a byte inside, say, the component frequency
	// tables, which digestPayload never covers at all.
	const buildIDOffset = 4 + 2
	raw[buildIDOffset] ^= 0xFF

	if _, err := ReadPrelude(bytes.NewReader(raw)); err == nil {
		t.Fatal("expected digest mismatch after corrupting the build id, got nil error")
	}
}

func TestPreludeRejectsWrongMagic(t *testing.T) {
	_, err := ReadPrelude(bytes.NewReader([]byte{0, 0, 0, 0, 0, 0}))

	if err == nil {
		t.Fatal("expected an error reading a non-container stream")
	}
}

func TestWriteCompressedReadCompressedRoundTrip(t *testing.T) {
	p, outdegrees := buildTestPrelude(t)

	var buf bytes.Buffer

	if err := WriteCompressed(p, &buf); err != nil {
		t.Fatalf("WriteCompressed failed: %v", err)
	}

	got, err := ReadCompressed(&buf)
	if err != nil {
		t.Fatalf("ReadCompressed failed: %v", err)
	}

	decoded := decodeOutdegrees(t, got, len(outdegrees))

	if !reflect.DeepEqual(decoded, outdegrees) {
		t.Fatalf("decoded outdegrees %v, want %v", decoded, outdegrees)
	}
}

func TestOpenMappedPreludeRoundTrip(t *testing.T) {
	p, outdegrees := buildTestPrelude(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "test.ans")

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("os.Create failed: %v", err)
	}

	if err := p.Write(f); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	if err := f.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	mapped, err := OpenMappedPrelude(path)
	if err != nil {
		t.Fatalf("OpenMappedPrelude failed: %v", err)
	}

	defer mapped.Close()

	decoded := decodeOutdegrees(t, mapped.Prelude, len(outdegrees))

	if !reflect.DeepEqual(decoded, outdegrees) {
		t.Fatalf("decoded outdegrees %v, want %v", decoded, outdegrees)
	}
}
