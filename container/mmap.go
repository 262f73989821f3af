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
	bvans "github.com/ciminilorenzo/bvans"
)

func bvansEmptyFileError(path string) error {
	return bvans.NewCorruptedStreamError("bvans container %q is empty", path)
}

// MappedPrelude is a Prelude opened from disk via openMapped, which hands
// back either a real mmap (unix) or a plain read (other platforms). Parsing
// goes through ReadPrelude, which reads that backing memory via its own
// bufio.Reader. Close releases the mapping; the embedded Prelude remains valid afterward
// since ReadPrelude copies every field out of the backing memory.
type MappedPrelude struct {
	*Prelude
	file *mappedFile
}

// OpenMappedPrelude maps path read-only and parses the Prelude it contains,
// the way a random-access BVGraph reader opens its offsets file once and
// then seeks freely without re-reading it node by node.
func OpenMappedPrelude(path string) (*MappedPrelude, error) {
	file, err := openMapped(path)
	if err != nil {
		return nil, err
	}

	p, err := ReadPrelude(file.reader())
	if err != nil {
		file.Close()
		return nil, err
	}

	return &MappedPrelude{Prelude: p, file: file}, nil
}

// Close releases the underlying mapping or buffer.
func (m *MappedPrelude) Close() error {
	return m.file.Close()
}
