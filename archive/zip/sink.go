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
	"bytes"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/nabbar/zipper/ioutils"
	"github.com/nabbar/zipper/zerr"
)

// sink is the common target surface for the extraction pipeline: a file on
// disk, a caller-supplied writable stream, or an in-memory byte vector.
type sink interface {
	io.Writer
	finish(mtime time.Time) error

	// setProgress installs a callback invoked with the byte count of every
	// successful Write, letting the extraction pipeline report progress from
	// a single source of truth — bytes actually accepted by the sink —
	// instead of duplicating a counter next to the read loop. A nil bump
	// disables the hook.
	setProgress(bump func(n int64))
}

// fileSink resolves output-path, mkdir -p's the parent, and opens the file
// for binary write through ioutils.FileProgress, failing fast with
// ErrExtract when that errors (notably when a directory already occupies
// the name).
type fileSink struct {
	f    ioutils.FileProgress
	path string
}

func newFileSink(outputPath string, overwrite Overwrite, perm os.FileMode) (sink, zerr.Error) {
	if err := ioutils.PathCheckCreate(false, filepath.Dir(outputPath), 0644, 0755); err != nil {
		return nil, ErrorDirCreate.ErrorParent(err)
	}

	if inf, statErr := os.Stat(outputPath); statErr == nil {
		if inf.IsDir() {
			return nil, ErrExtract.ErrorParent(ErrorDestinationIsDir.Error(nil))
		}
		if overwrite == DoNotOverwrite {
			return nil, ErrSecurity.Error(nil)
		}
		if rmErr := os.Remove(outputPath); rmErr != nil {
			return nil, ErrorDestinationRemove.ErrorParent(rmErr)
		}
	}

	f, err := ioutils.NewFileProgressPathMode(outputPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return nil, ErrExtract.ErrorParent(err)
	}

	return &fileSink{f: f, path: outputPath}, nil
}

func (s *fileSink) Write(p []byte) (int, error) {
	return s.f.Write(p)
}

func (s *fileSink) setProgress(bump func(n int64)) {
	s.f.SetIncrement(bump)
}

func (s *fileSink) finish(mtime time.Time) error {
	if err := s.f.Close(); err != nil {
		return err
	}
	return os.Chtimes(s.path, mtime, mtime)
}

// streamSink wraps a caller-supplied io.Writer. No filesystem interaction;
// stream-write errors yield ErrInternal at the call site.
type streamSink struct {
	w    io.Writer
	bump func(n int64)
}

func newStreamSink(w io.Writer) sink {
	return &streamSink{w: w}
}

func (s *streamSink) Write(p []byte) (int, error) {
	n, err := s.w.Write(p)
	if err == nil && n > 0 && s.bump != nil {
		s.bump(int64(n))
	}
	return n, err
}

func (s *streamSink) setProgress(bump func(n int64)) {
	s.bump = bump
}

func (s *streamSink) finish(time.Time) error {
	if f, ok := s.w.(interface{ Sync() error }); ok {
		return f.Sync()
	}
	return nil
}

// bufferSink reserves uncompressed-size up front and stream-decodes into
// the vector.
type bufferSink struct {
	buf  *bytes.Buffer
	out  *[]byte
	bump func(n int64)
}

func newBufferSink(uncompressedSize uint64, out *[]byte) sink {
	b := bytes.NewBuffer(make([]byte, 0, uncompressedSize))
	return &bufferSink{buf: b, out: out}
}

func (s *bufferSink) Write(p []byte) (int, error) {
	n, err := s.buf.Write(p)
	if err == nil && n > 0 && s.bump != nil {
		s.bump(int64(n))
	}
	return n, err
}

func (s *bufferSink) setProgress(bump func(n int64)) {
	s.bump = bump
}

func (s *bufferSink) finish(time.Time) error {
	if s.out != nil {
		*s.out = s.buf.Bytes()
	}
	return nil
}
