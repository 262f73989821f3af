//go:build !unix

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

	"github.com/pkg/errors"
)

// mappedFile on non-unix platforms falls back to an ordinary in-memory read:
// there is no portable mmap in golang.org/x/sys outside the unix build tag,
// and this codec targets the same server/CLI deployment surface as kanzi-go
// itself, so a full read is an acceptable, honestly-named fallback rather
// than a fabricated cross-platform mmap shim.
type mappedFile struct {
	data []byte
}

func openMapped(path string) (*mappedFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "bvans/container: read for mapped prelude")
	}

	if len(data) == 0 {
		return nil, bvansEmptyFileError(path)
	}

	return &mappedFile{data: data}, nil
}

func (m *mappedFile) reader() *bytes.Reader {
	return bytes.NewReader(m.data)
}

func (m *mappedFile) Close() error { return nil }
