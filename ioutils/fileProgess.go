/*
 *  MIT License
 *
 *  Copyright (c) 2020 Nicolas JUHEL
 *
 *  Permission is hereby granted, free of charge, to any person obtaining a copy
 *  of this software and associated documentation files (the "Software"), to deal
 *  in the Software without restriction, including without limitation the rights
 *  to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 *  copies of the Software, and to permit persons to whom the Software is
 *  furnished to do so, subject to the following conditions:
 *
 *  The above copyright notice and this permission notice shall be included in all
 *  copies or substantial portions of the Software.
 *
 *  THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 *  IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 *  FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 *  AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 *  LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 *  OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 *  SOFTWARE.
 *
 */

package ioutils

import (
	"os"
	"path/filepath"

	"github.com/nabbar/zipper/zerr"
)

// FileProgress wraps an *os.File opened for extraction output. It is a
// write-only narrowing of the teacher's broader read/write/seek handle,
// trimmed to the surface archive/zip/sink.go's fileSink actually drives: a
// plain write path plus a byte-increment hook the extraction pipeline wires
// to its own Progress.BytesDone counter (extract.go), so bytes committed to
// disk and bytes reported to the caller's progress callback are the same
// number, not two independently-maintained counters.
type FileProgress interface {
	Write(p []byte) (int, error)
	Close() error

	// SetIncrement installs a callback invoked with the byte count of every
	// successful Write. A nil increment disables the hook.
	SetIncrement(increment func(size int64))

	FilePath() string
	FileStat() (os.FileInfo, zerr.Error)
}

// NewFileProgressPathMode opens path with the given mode/perm and wraps it
// as a FileProgress, ready for SetIncrement to be attached before the first
// Write.
func NewFileProgressPathMode(path string, mode int, perm os.FileMode) (FileProgress, zerr.Error) {
	//nolint #nosec
	/* #nosec */
	f, err := os.OpenFile(path, mode, perm)
	if err != nil {
		return nil, ErrorIOFileOpen.ErrorParent(err)
	}

	return &fileProgress{fs: f}, nil
}

type fileProgress struct {
	fs *os.File
	fc func(size int64)
}

func (f *fileProgress) SetIncrement(increment func(size int64)) {
	if f != nil {
		f.fc = increment
	}
}

func (f *fileProgress) FilePath() string {
	if f == nil || f.fs == nil {
		return ""
	}

	return filepath.Clean(f.fs.Name())
}

func (f *fileProgress) FileStat() (os.FileInfo, zerr.Error) {
	if f == nil || f.fs == nil {
		return nil, ErrorNilPointer.Error(nil)
	}

	i, e := f.fs.Stat()
	return i, ErrorIOFileStat.Iferror(e)
}

func (f *fileProgress) Write(p []byte) (int, error) {
	if f == nil || f.fs == nil {
		return 0, ErrorNilPointer.Error(nil)
	}

	n, err := f.fs.Write(p)
	if err == nil && f.fc != nil && n > 0 {
		f.fc(int64(n))
	}

	return n, err
}

func (f *fileProgress) Close() error {
	if f == nil || f.fs == nil {
		return nil
	}

	err := f.fs.Close()
	f.fs = nil
	f.fc = nil

	return err
}
