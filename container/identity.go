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

// Package container implements the on-disk reference format this codec's
// Prelude and Phases serialize to: a build identifier, an integrity digest,
// the per-component models, the encoder's final state and renormalization
// words, every component's folded-bits buffer, and the per-node phase
// checkpoints. None of this is dictated by the entropy coder itself - kanzi
// never needed a container because its format is a plain byte stream - so
// this package is grounded on the rest of the retrieval pack instead: the
// google/uuid build stamp and dchest/siphash digest mewkiz/flac's metadata
// blocks analogize to, and golang.org/x/sys for the mmap-backed random
// access reader.
package container

import (
	"encoding/binary"

	"github.com/dchest/siphash"
	"github.com/google/uuid"
)

// MagicNumber identifies a bvans container on disk, analogous to kanzi's own
// stream magic check in internal/Magic.go, narrowed to this one format.
const MagicNumber uint32 = 0x62764e53 // "bvNS"

// FormatVersion is bumped whenever the on-disk layout changes incompatibly.
const FormatVersion uint16 = 1

// NewBuildID returns a fresh build identifier to stamp a container with,
// letting a reader confirm it is opening the file it thinks it is rather
// than a same-named but unrelated one.
func NewBuildID() uuid.UUID {
	return uuid.New()
}

// digestKey derives a 128-bit siphash key from the build id, so the
// integrity digest is bound to this specific container instance rather than
// using one fixed key for every file this codec ever produces.
func digestKey(id uuid.UUID) (k0, k1 uint64) {
	b := id[:]
	return binary.LittleEndian.Uint64(b[0:8]), binary.LittleEndian.Uint64(b[8:16])
}

// Digest computes the siphash-2-4 integrity digest of payload, keyed by the
// container's build id. It is not a cryptographic authentication tag - it
// exists to catch truncation and bit flips, not tampering.
func Digest(id uuid.UUID, payload []byte) uint64 {
	k0, k1 := digestKey(id)
	return siphash.Hash(k0, k1, payload)
}
