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
	"bufio"
	"encoding/binary"
	"io"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	bvans "github.com/ciminilorenzo/bvans"
	"github.com/ciminilorenzo/bvans/ans"
	"github.com/ciminilorenzo/bvans/builder"
	"github.com/ciminilorenzo/bvans/bvgraph"
	"github.com/ciminilorenzo/bvans/fold"
	"github.com/ciminilorenzo/bvans/model"
)

// backingKind tags which fold.Writer implementation produced a component's
// folded-bits buffer, so Read knows which fold.Buffer constructor to call.
type backingKind uint8

// BackingByte and BackingBitio select which fold.Writer implementation
// NewPrelude should record each component's folded-bits buffer as having
// been produced by; ReadPrelude uses the same tag to pick the matching
// fold.Buffer constructor.
const (
	BackingByte backingKind = iota
	BackingBitio
)

// SerializedComponent is everything one component's model needs to survive
// a round trip: the (fidelity, radix) pair that produced it, the frame size,
// and the quantized frequency/quasi-folded vectors model.Build needs to
// reassemble a model.ComponentModel.
type SerializedComponent struct {
	Fidelity    int
	Radix       int
	Log2Frame   int
	Freqs       []uint32
	QuasiFolded []uint64
}

// FoldedPayload is one component's serialized tail-bits buffer.
type FoldedPayload struct {
	Backing backingKind
	BitLen  int
	Data    []byte
}

// Prelude is the complete, self-describing artifact one call to
// GraphEncoder produces: the per-component models, the final encoder state,
// the renormalization word stream, every component's folded-bits buffer,
// and the phase checkpoints a reader needs for sequential or random-access
// decoding.
type Prelude struct {
	BuildID        uuid.UUID
	SequenceLength uint64
	Components     [bvgraph.NumComponents]SerializedComponent
	State          uint64
	NormalizedBits []uint32
	Folded         [bvgraph.NumComponents]FoldedPayload
	Phases         []ans.Phase
	Shapes         []builder.NodeShape
}

// NewPrelude assembles a Prelude from a finished GraphEncoder and the
// models/parameters that drove it.
func NewPrelude(sequenceLength uint64, models *builder.GraphModels, params *builder.GraphParameters, e *ans.GraphEncoder, shapes []builder.NodeShape, backing backingKind) *Prelude {
	p := &Prelude{
		BuildID:        NewBuildID(),
		SequenceLength: sequenceLength,
		State:          e.State(),
		NormalizedBits: e.NormalizedBits(),
		Phases:         e.Phases(),
		Shapes:         shapes,
	}

	buffers := e.FoldedBuffers()

	for c := 0; c < bvgraph.NumComponents; c++ {
		m := models[c]
		p.Components[c] = SerializedComponent{
			Fidelity:    params[c].Fidelity,
			Radix:       params[c].Radix,
			Log2Frame:   m.Log2Frame,
			Freqs:       freqsOf(m),
			QuasiFolded: quasiFoldedOf(m),
		}

		p.Folded[c] = FoldedPayload{
			Backing: backing,
			BitLen:  buffers[c].Len(),
			Data:    buffers[c].Bytes(),
		}
	}

	return p
}

func freqsOf(m *model.ComponentModel) []uint32 {
	freqs := make([]uint32, len(m.Encoder))

	for i, e := range m.Encoder {
		freqs[i] = uint32(e.Freq)
	}

	return freqs
}

func quasiFoldedOf(m *model.ComponentModel) []uint64 {
	quasi := make([]uint64, len(m.Encoder))

	for i, e := range m.Encoder {
		quasi[i] = e.QuasiFolded
	}

	return quasi
}

// Models rebuilds the nine model.ComponentModel instances this prelude
// describes, ready to feed a sequential or random-access ans.GraphDecoder.
func (p *Prelude) Models() (*builder.GraphModels, error) {
	var models builder.GraphModels

	for c, sc := range p.Components {
		freqs := make([]int, len(sc.Freqs))

		for i, f := range sc.Freqs {
			freqs[i] = int(f)
		}

		m, err := model.Build(freqs, sc.QuasiFolded, sc.Log2Frame, bvgraph.Component(c).String())
		if err != nil {
			return nil, err
		}

		models[c] = m
	}

	return &models, nil
}

// Params rebuilds the (fidelity, radix) pair for every component. Cost is
// left zero: it only ever mattered to pass 2's search, not to decoding.
func (p *Prelude) Params() *builder.GraphParameters {
	var params builder.GraphParameters

	for c, sc := range p.Components {
		params[c] = builder.Parameters{Fidelity: sc.Fidelity, Radix: sc.Radix}
	}

	return &params
}

// FoldedBuffers rebuilds the nine fold.Buffer instances this prelude holds.
func (p *Prelude) FoldedBuffers() [bvgraph.NumComponents]fold.Buffer {
	var buffers [bvgraph.NumComponents]fold.Buffer

	for c, fp := range p.Folded {
		switch fp.Backing {
		case BackingBitio:
			buffers[c] = fold.NewBitioBuffer(fp.Data, fp.BitLen)
		default:
			buffers[c] = fold.NewByteBuffer(fp.Data)
		}
	}

	return buffers
}

// Write serializes the prelude to w, trailing it with a siphash digest keyed
// on BuildID so Read can detect truncation.
func (p *Prelude) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)

	if err := binary.Write(bw, binary.LittleEndian, MagicNumber); err != nil {
		return errors.Wrap(err, "bvans/container: write magic")
	}

	if err := binary.Write(bw, binary.LittleEndian, FormatVersion); err != nil {
		return errors.Wrap(err, "bvans/container: write version")
	}

	if _, err := bw.Write(p.BuildID[:]); err != nil {
		return errors.Wrap(err, "bvans/container: write build id")
	}

	if err := writeUint64(bw, p.SequenceLength); err != nil {
		return err
	}

	for c := range p.Components {
		if err := writeComponent(bw, &p.Components[c]); err != nil {
			return errors.Wrapf(err, "bvans/container: write component %d", c)
		}
	}

	if err := writeUint64(bw, p.State); err != nil {
		return err
	}

	if err := writeUint32Slice(bw, p.NormalizedBits); err != nil {
		return errors.Wrap(err, "bvans/container: write normalized bits")
	}

	for c := range p.Folded {
		if err := writeFolded(bw, &p.Folded[c]); err != nil {
			return errors.Wrapf(err, "bvans/container: write folded payload %d", c)
		}
	}

	if err := writeUint64(bw, uint64(len(p.Phases))); err != nil {
		return err
	}

	for _, phase := range p.Phases {
		if err := writePhase(bw, phase); err != nil {
			return errors.Wrap(err, "bvans/container: write phase")
		}
	}

	if err := writeUint64(bw, uint64(len(p.Shapes))); err != nil {
		return err
	}

	for _, shape := range p.Shapes {
		if err := writeShape(bw, shape); err != nil {
			return errors.Wrap(err, "bvans/container: write shape")
		}
	}

	if err := writeUint64(bw, p.digestPayload()); err != nil {
		return errors.Wrap(err, "bvans/container: write digest")
	}

	return bw.Flush()
}

// digestPayload computes the siphash digest over the fields that uniquely
// identify this prelude's payload: the folded-bits buffers and the final
// state, keyed by BuildID. It deliberately excludes the phase list so that a
// reader opening the file purely for random access (never touching
// Phases) can still verify the payload it actually reads.
func (p *Prelude) digestPayload() uint64 {
	var buf []byte

	for _, fp := range p.Folded {
		buf = append(buf, fp.Data...)
	}

	var stateBytes [8]byte
	binary.LittleEndian.PutUint64(stateBytes[:], p.State)
	buf = append(buf, stateBytes[:]...)

	return Digest(p.BuildID, buf)
}

// ReadPrelude deserializes a Prelude previously written by Write.
func ReadPrelude(r io.Reader) (*Prelude, error) {
	br := bufio.NewReader(r)

	var magic uint32
	if err := binary.Read(br, binary.LittleEndian, &magic); err != nil {
		return nil, errors.Wrap(err, "bvans/container: read magic")
	}

	if magic != MagicNumber {
		return nil, bvans.NewCorruptedStreamError("not a bvans container (magic %08x)", magic)
	}

	var version uint16
	if err := binary.Read(br, binary.LittleEndian, &version); err != nil {
		return nil, errors.Wrap(err, "bvans/container: read version")
	}

	if version != FormatVersion {
		return nil, bvans.NewCorruptedStreamError("unsupported container version %d", version)
	}

	p := &Prelude{}

	if _, err := io.ReadFull(br, p.BuildID[:]); err != nil {
		return nil, errors.Wrap(err, "bvans/container: read build id")
	}

	seqLen, err := readUint64(br)
	if err != nil {
		return nil, err
	}

	p.SequenceLength = seqLen

	for c := range p.Components {
		sc, err := readComponent(br)
		if err != nil {
			return nil, errors.Wrapf(err, "bvans/container: read component %d", c)
		}

		p.Components[c] = *sc
	}

	state, err := readUint64(br)
	if err != nil {
		return nil, err
	}

	p.State = state

	normalizedBits, err := readUint32Slice(br)
	if err != nil {
		return nil, errors.Wrap(err, "bvans/container: read normalized bits")
	}

	p.NormalizedBits = normalizedBits

	for c := range p.Folded {
		fp, err := readFolded(br)
		if err != nil {
			return nil, errors.Wrapf(err, "bvans/container: read folded payload %d", c)
		}

		p.Folded[c] = *fp
	}

	numPhases, err := readUint64(br)
	if err != nil {
		return nil, err
	}

	p.Phases = make([]ans.Phase, numPhases)

	for i := range p.Phases {
		phase, err := readPhase(br)
		if err != nil {
			return nil, errors.Wrap(err, "bvans/container: read phase")
		}

		p.Phases[i] = phase
	}

	numShapes, err := readUint64(br)
	if err != nil {
		return nil, err
	}

	p.Shapes = make([]builder.NodeShape, numShapes)

	for i := range p.Shapes {
		shape, err := readShape(br)
		if err != nil {
			return nil, errors.Wrap(err, "bvans/container: read shape")
		}

		p.Shapes[i] = shape
	}

	digest, err := readUint64(br)
	if err != nil {
		return nil, errors.Wrap(err, "bvans/container: read digest")
	}

	if digest != p.digestPayload() {
		return nil, bvans.NewCorruptedStreamError("digest mismatch: container payload truncated or corrupted")
	}

	return p, nil
}
