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

import "testing"

func TestDigestDeterministicForSameKeyAndPayload(t *testing.T) {
	id := NewBuildID()
	payload := []byte("folded-bits-buffer-contents")

	a := Digest(id, payload)
	b := Digest(id, payload)

	if a != b {
		t.Fatalf("Digest not deterministic: %d != %d", a, b)
	}
}

func TestDigestDiffersAcrossBuildIDs(t *testing.T) {
	payload := []byte("folded-bits-buffer-contents")

	a := Digest(NewBuildID(), payload)
	b := Digest(NewBuildID(), payload)

	if a == b {
		t.Fatal("two distinct build IDs produced the same digest for the same payload (collision or key not mixed in)")
	}
}

func TestDigestSensitiveToPayload(t *testing.T) {
	id := NewBuildID()

	a := Digest(id, []byte("payload-one"))
	b := Digest(id, []byte("payload-two"))

	if a == b {
		t.Fatal("different payloads under the same key produced the same digest")
	}
}

func TestNewBuildIDProducesDistinctValues(t *testing.T) {
	if NewBuildID() == NewBuildID() {
		t.Fatal("NewBuildID returned the same UUID twice")
	}
}
