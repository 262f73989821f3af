//go:build unix

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
	"golang.org/x/sys/unix"
)

// mappedFile backs a MappedPrelude by a read-only mmap of the whole file,
// letting the kernel page the folded-bits buffers and phase table in on
// demand instead of this process copying them through a read() buffer -
// the natural fit for a random-access reader that may only ever touch a
// handful of a multi-gigabyte graph's phases.
type mappedFile struct {
	data []byte
	f    *os.File
}

func openMapped(path string) (*mappedFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "bvans/container: open for mmap")
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, errors.Wrap(err, "bvans/container: stat for mmap")
	}

	if info.Size() == 0 {
		f.Close()
		return nil, bvansEmptyFileError(path)
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(info.Size()), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		f.Close()
		return nil, errors.Wrap(err, "bvans/container: mmap")
	}

	return &mappedFile{data: data, f: f}, nil
}

func (m *mappedFile) reader() *bytes.Reader {
	return bytes.NewReader(m.data)
}

func (m *mappedFile) Close() error {
	err := unix.Munmap(m.data)
	if cerr := m.f.Close(); err == nil {
		err = cerr
	}

	if err != nil {
		return errors.Wrap(err, "bvans/container: unmap/close")
	}

	return nil
}
