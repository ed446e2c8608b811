// SPDX-License-Identifier: EPL-2.0

// Package fixturetest provides test doubles for the fixture generator.
package fixturetest

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"
)

// FakeFS is an in-memory target.FS. Directories and files live in maps keyed
// by cleaned path. Errors can be injected per operation.
type FakeFS struct {
	mtx   sync.Mutex
	dirs  map[string]bool
	files map[string][]byte

	// MkdirErr, when set, is returned by every MkdirAll call.
	MkdirErr error
	// WriteErr, when non-nil, is consulted before each write; a non-nil
	// result fails that write.
	WriteErr func(name string, writes int) error

	writes int
}

func NewFakeFS() *FakeFS {
	return &FakeFS{
		dirs:  make(map[string]bool),
		files: make(map[string][]byte),
	}
}

// FailAfter returns a WriteErr hook that lets n writes succeed and fails the rest with err.
func FailAfter(n int, err error) func(string, int) error {
	return func(_ string, writes int) error {
		if writes >= n {
			return err
		}
		return nil
	}
}

func (f *FakeFS) Stat(name string) (os.FileInfo, error) {
	f.mtx.Lock()
	defer f.mtx.Unlock()

	name = filepath.Clean(name)
	if f.dirs[name] {
		return fakeInfo{name: filepath.Base(name), dir: true}, nil
	}
	if data, ok := f.files[name]; ok {
		return fakeInfo{name: filepath.Base(name), size: int64(len(data))}, nil
	}

	return nil, &fs.PathError{Op: "stat", Path: name, Err: fs.ErrNotExist}
}

func (f *FakeFS) MkdirAll(path string, _ os.FileMode) error {
	f.mtx.Lock()
	defer f.mtx.Unlock()

	if f.MkdirErr != nil {
		return f.MkdirErr
	}

	for p := filepath.Clean(path); ; p = filepath.Dir(p) {
		if _, isFile := f.files[p]; isFile {
			return &fs.PathError{Op: "mkdir", Path: p, Err: fs.ErrExist}
		}
		f.dirs[p] = true
		if parent := filepath.Dir(p); parent == p {
			break
		}
	}

	return nil
}

func (f *FakeFS) WriteFile(name string, data []byte, _ os.FileMode) error {
	f.mtx.Lock()
	defer f.mtx.Unlock()

	name = filepath.Clean(name)
	if f.WriteErr != nil {
		if err := f.WriteErr(name, f.writes); err != nil {
			return err
		}
	}
	if !f.dirs[filepath.Dir(name)] {
		return &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}

	f.files[name] = append([]byte(nil), data...)
	f.writes++

	return nil
}

// AddFile places a file directly, bypassing injection hooks.
func (f *FakeFS) AddFile(name string, data []byte) {
	f.mtx.Lock()
	defer f.mtx.Unlock()

	f.files[filepath.Clean(name)] = data
}

// File returns the content written at name.
func (f *FakeFS) File(name string) ([]byte, bool) {
	f.mtx.Lock()
	defer f.mtx.Unlock()

	data, ok := f.files[filepath.Clean(name)]
	return data, ok
}

// Files lists written file paths in sorted order.
func (f *FakeFS) Files() []string {
	f.mtx.Lock()
	defer f.mtx.Unlock()

	names := make([]string, 0, len(f.files))
	for name := range f.files {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Writes is the number of successful WriteFile calls.
func (f *FakeFS) Writes() int {
	f.mtx.Lock()
	defer f.mtx.Unlock()

	return f.writes
}

type fakeInfo struct {
	name string
	size int64
	dir  bool
}

func (i fakeInfo) Name() string       { return i.name }
func (i fakeInfo) Size() int64        { return i.size }
func (i fakeInfo) ModTime() time.Time { return time.Time{} }
func (i fakeInfo) IsDir() bool        { return i.dir }
func (i fakeInfo) Sys() any           { return nil }

func (i fakeInfo) Mode() fs.FileMode {
	if i.dir {
		return fs.ModeDir | 0o755
	}
	return 0o644
}
