/*
 * MIT License
 *
 * Copyright (c) 2020 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

package zip

import (
	"io"
	"os"
)

// Store is the capability set shared by the three backing-store variants:
// size-probe, read-at, append and finalize/publish. The buffer and stream
// stores leave the caller's backing object untouched until Finalize; the
// file store writes straight to the caller's file as data is appended.
type Store interface {
	io.ReaderAt
	io.Writer

	Size() (int64, error)
	Finalize() error
}

// fileStore wraps a platform file handle. Both random read (for the reader)
// and append-only write (for the writer) go straight to the *os.File; on
// 64-bit hosts the large-file API is used unconditionally by the stdlib
// implementation underneath.
type fileStore struct {
	f *os.File
}

// NewFileStore wraps an already-open file as a Store.
func NewFileStore(f *os.File) Store {
	return &fileStore{f: f}
}

func (s *fileStore) ReadAt(p []byte, off int64) (int, error) {
	return s.f.ReadAt(p, off)
}

func (s *fileStore) Write(p []byte) (int, error) {
	return s.f.Write(p)
}

func (s *fileStore) Size() (int64, error) {
	i, err := s.f.Stat()
	if err != nil {
		return 0, err
	}
	return i.Size(), nil
}

func (s *fileStore) Finalize() error {
	return s.f.Sync()
}

// bufferStore owns a growable contiguous byte region. On writer close, its
// final bytes are copied into the caller-provided vector; on reader open,
// the caller's bytes are copied in up front.
type bufferStore struct {
	buf    []byte
	out    *[]byte
	cursor int64
}

// NewBufferStore creates a Store over an in-memory byte vector. initial is
// copied in (read side); on Finalize the accumulated bytes are copied into
// *out (write side). Either may be nil depending on direction of use.
func NewBufferStore(initial []byte, out *[]byte) Store {
	buf := make([]byte, len(initial))
	copy(buf, initial)
	return &bufferStore{buf: buf, out: out}
}

func (s *bufferStore) ReadAt(p []byte, off int64) (int, error) {
	if off >= int64(len(s.buf)) {
		return 0, io.EOF
	}

	n := copy(p, s.buf[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

func (s *bufferStore) Write(p []byte) (int, error) {
	s.buf = append(s.buf, p...)
	s.cursor += int64(len(p))
	return len(p), nil
}

func (s *bufferStore) Size() (int64, error) {
	return int64(len(s.buf)), nil
}

func (s *bufferStore) Finalize() error {
	if s.out == nil {
		return ErrorStoreWrite.ErrorParent(nil)
	}

	dst := make([]byte, len(s.buf))
	copy(dst, s.buf)
	*s.out = dst

	return nil
}

// streamStore wraps a caller-supplied seekable byte sink/source. On
// construction it seeks to the start and reads the entire current content
// into an internal owned buffer; on Finalize the buffer is written back from
// the start of the sink, which is truncated to that length when it supports
// Truncate.
type streamStore struct {
	bufferStore
	rw io.ReadWriteSeeker
}

// NewStreamStore adapts rw, reading its full current contents into an
// internal buffer up front.
func NewStreamStore(rw io.ReadWriteSeeker) (Store, error) {
	if _, err := rw.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	buf, err := io.ReadAll(rw)
	if err != nil {
		return nil, err
	}

	return &streamStore{
		bufferStore: bufferStore{buf: buf},
		rw:          rw,
	}, nil
}

func (s *streamStore) Finalize() error {
	if _, err := s.rw.Seek(0, io.SeekStart); err != nil {
		return err
	}

	if _, err := s.rw.Write(s.buf); err != nil {
		return err
	}

	if t, ok := s.rw.(interface{ Truncate(int64) error }); ok {
		if err := t.Truncate(int64(len(s.buf))); err != nil {
			return err
		}
	}

	_, err := s.rw.Seek(0, io.SeekStart)
	return err
}
