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
	"encoding/binary"
	"io"

	"github.com/pkg/errors"

	"github.com/ciminilorenzo/bvans/ans"
	"github.com/ciminilorenzo/bvans/builder"
	"github.com/ciminilorenzo/bvans/bvgraph"
)

// The helpers in this file implement the container's wire layout by hand,
// the way kanzi's bitstream package writes every field explicitly rather
// than delegating to a generic serialization library - there being no such
// library among this module's retrieved dependencies to delegate to (see
// DESIGN.md).

func writeUint64(w io.Writer, v uint64) error {
	if err := binary.Write(w, binary.LittleEndian, v); err != nil {
		return errors.Wrap(err, "bvans/container: write uint64")
	}

	return nil
}

func readUint64(r io.Reader) (uint64, error) {
	var v uint64

	if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
		return 0, errors.Wrap(err, "bvans/container: read uint64")
	}

	return v, nil
}

func writeInt32(w io.Writer, v int) error {
	return writeUint64(w, uint64(uint32(v)))
}

func readInt(r io.Reader) (int, error) {
	v, err := readUint64(r)
	return int(v), err
}

func writeBytes(w io.Writer, data []byte) error {
	if err := writeUint64(w, uint64(len(data))); err != nil {
		return err
	}

	_, err := w.Write(data)
	if err != nil {
		return errors.Wrap(err, "bvans/container: write bytes")
	}

	return nil
}

func readBytes(r io.Reader) ([]byte, error) {
	n, err := readUint64(r)
	if err != nil {
		return nil, err
	}

	data := make([]byte, n)
	if _, err := io.ReadFull(r, data); err != nil {
		return nil, errors.Wrap(err, "bvans/container: read bytes")
	}

	return data, nil
}

func writeUint32Slice(w io.Writer, vs []uint32) error {
	if err := writeUint64(w, uint64(len(vs))); err != nil {
		return err
	}

	for _, v := range vs {
		if err := binary.Write(w, binary.LittleEndian, v); err != nil {
			return errors.Wrap(err, "bvans/container: write uint32")
		}
	}

	return nil
}

func readUint32Slice(r io.Reader) ([]uint32, error) {
	n, err := readUint64(r)
	if err != nil {
		return nil, err
	}

	vs := make([]uint32, n)

	for i := range vs {
		if err := binary.Read(r, binary.LittleEndian, &vs[i]); err != nil {
			return nil, errors.Wrap(err, "bvans/container: read uint32")
		}
	}

	return vs, nil
}

func writeUint64Slice(w io.Writer, vs []uint64) error {
	if err := writeUint64(w, uint64(len(vs))); err != nil {
		return err
	}

	for _, v := range vs {
		if err := writeUint64(w, v); err != nil {
			return err
		}
	}

	return nil
}

func readUint64Slice(r io.Reader) ([]uint64, error) {
	n, err := readUint64(r)
	if err != nil {
		return nil, err
	}

	vs := make([]uint64, n)

	for i := range vs {
		v, err := readUint64(r)
		if err != nil {
			return nil, err
		}

		vs[i] = v
	}

	return vs, nil
}

func writeComponent(w io.Writer, sc *SerializedComponent) error {
	if err := writeInt32(w, sc.Fidelity); err != nil {
		return err
	}

	if err := writeInt32(w, sc.Radix); err != nil {
		return err
	}

	if err := writeInt32(w, sc.Log2Frame); err != nil {
		return err
	}

	if err := writeUint32Slice(w, sc.Freqs); err != nil {
		return err
	}

	return writeUint64Slice(w, sc.QuasiFolded)
}

func readComponent(r io.Reader) (*SerializedComponent, error) {
	sc := &SerializedComponent{}
	var err error

	if sc.Fidelity, err = readInt(r); err != nil {
		return nil, err
	}

	if sc.Radix, err = readInt(r); err != nil {
		return nil, err
	}

	if sc.Log2Frame, err = readInt(r); err != nil {
		return nil, err
	}

	if sc.Freqs, err = readUint32Slice(r); err != nil {
		return nil, err
	}

	if sc.QuasiFolded, err = readUint64Slice(r); err != nil {
		return nil, err
	}

	return sc, nil
}

func writeFolded(w io.Writer, fp *FoldedPayload) error {
	if err := writeUint64(w, uint64(fp.Backing)); err != nil {
		return err
	}

	if err := writeInt32(w, fp.BitLen); err != nil {
		return err
	}

	return writeBytes(w, fp.Data)
}

func readFolded(r io.Reader) (*FoldedPayload, error) {
	fp := &FoldedPayload{}

	kind, err := readUint64(r)
	if err != nil {
		return nil, err
	}

	fp.Backing = backingKind(kind)

	if fp.BitLen, err = readInt(r); err != nil {
		return nil, err
	}

	if fp.Data, err = readBytes(r); err != nil {
		return nil, err
	}

	return fp, nil
}

func writeShape(w io.Writer, shape builder.NodeShape) error {
	if err := writeUint64(w, shape.Outdegree); err != nil {
		return err
	}

	hasBlockGroup := uint64(0)
	if shape.HasBlockGroup {
		hasBlockGroup = 1
	}

	if err := writeUint64(w, hasBlockGroup); err != nil {
		return err
	}

	if err := writeUint64(w, shape.BlockCount); err != nil {
		return err
	}

	if err := writeUint64(w, shape.IntervalCount); err != nil {
		return err
	}

	return writeUint64(w, shape.ResidualCount)
}

func readShape(r io.Reader) (builder.NodeShape, error) {
	var shape builder.NodeShape
	var err error

	if shape.Outdegree, err = readUint64(r); err != nil {
		return shape, err
	}

	hasBlockGroup, err := readUint64(r)
	if err != nil {
		return shape, err
	}

	shape.HasBlockGroup = hasBlockGroup != 0

	if shape.BlockCount, err = readUint64(r); err != nil {
		return shape, err
	}

	if shape.IntervalCount, err = readUint64(r); err != nil {
		return shape, err
	}

	if shape.ResidualCount, err = readUint64(r); err != nil {
		return shape, err
	}

	return shape, nil
}

func writePhase(w io.Writer, phase ans.Phase) error {
	if err := writeUint64(w, phase.State); err != nil {
		return err
	}

	if err := writeInt32(w, phase.NormalizedCursor); err != nil {
		return err
	}

	for c := 0; c < bvgraph.NumComponents; c++ {
		if err := writeInt32(w, phase.FoldedCursors[c]); err != nil {
			return err
		}
	}

	return nil
}

func readPhase(r io.Reader) (ans.Phase, error) {
	var phase ans.Phase
	var err error

	if phase.State, err = readUint64(r); err != nil {
		return phase, err
	}

	if phase.NormalizedCursor, err = readInt(r); err != nil {
		return phase, err
	}

	for c := 0; c < bvgraph.NumComponents; c++ {
		if phase.FoldedCursors[c], err = readInt(r); err != nil {
			return phase, err
		}
	}

	return phase, nil
}
