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
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
)

// envelopeMagic prefixes a zstd-wrapped container, distinguishing it from a
// bare Prelude.Write stream; ReadCompressed checks it and rejects a bare
// stream.
const envelopeMagic uint32 = 0x627a7374 // "bzst"

// WriteCompressed wraps p.Write's output in a zstd frame. The prelude's own
// models already drive every symbol to near its entropy floor, so this
// buys back only what's left on the table: the redundancy across per-
// component frequency tables and phase checkpoints, which repeat similar
// small integers far more than the already-coded payload does.
func WriteCompressed(p *Prelude, w io.Writer) error {
	var raw bytes.Buffer

	if err := p.Write(&raw); err != nil {
		return err
	}

	if err := writeUint32BE(w, envelopeMagic); err != nil {
		return err
	}

	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	if err != nil {
		return errors.Wrap(err, "bvans/container: new zstd encoder")
	}

	if _, err := enc.Write(raw.Bytes()); err != nil {
		enc.Close()
		return errors.Wrap(err, "bvans/container: zstd write")
	}

	if err := enc.Close(); err != nil {
		return errors.Wrap(err, "bvans/container: zstd close")
	}

	return nil
}

// ReadCompressed reverses WriteCompressed.
func ReadCompressed(r io.Reader) (*Prelude, error) {
	magic, err := readUint32BE(r)
	if err != nil {
		return nil, err
	}

	if magic != envelopeMagic {
		return nil, errors.New("bvans/container: not a zstd-wrapped container")
	}

	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "bvans/container: new zstd decoder")
	}

	defer dec.Close()

	return ReadPrelude(dec.IOReadCloser())
}

func writeUint32BE(w io.Writer, v uint32) error {
	var b [4]byte
	b[0] = byte(v >> 24)
	b[1] = byte(v >> 16)
	b[2] = byte(v >> 8)
	b[3] = byte(v)

	_, err := w.Write(b[:])
	if err != nil {
		return errors.Wrap(err, "bvans/container: write envelope magic")
	}

	return nil
}

func readUint32BE(r io.Reader) (uint32, error) {
	var b [4]byte

	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, errors.Wrap(err, "bvans/container: read envelope magic")
	}

	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3]), nil
}
