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
	"archive/zip"
	"io"
	"os"
	"path/filepath"

	zpath "github.com/nabbar/zipper/archive/path"
)

// ExtractOptions parameterizes ExtractAll / ExtractEntry.
type ExtractOptions struct {
	Glob        string
	Destination string
	AltNames    map[string]string
	Overwrite   Overwrite
	Progress    ProgressFunc
}

func (u *Unzipper) destOrDot(dest string) string {
	if dest == "" {
		return "."
	}
	return dest
}

// ExtractAll walks every (optionally glob-matched) entry once, resolving
// each output path through archive/path (normalization, alt-name remap,
// Zip-Slip check, overwrite policy) and streaming it into a file sink.
// Per-entry failures are recorded and the walk continues; the call returns
// false if any entry failed.
func (u *Unzipper) ExtractAll(opts ExtractOptions) bool {
	u.err = nil

	if !u.requireOpen() {
		return false
	}

	var entries []EntryInfo
	if opts.Glob == "" {
		entries = u.Entries()
	} else {
		entries = u.EntriesMatching(opts.Glob)
	}

	p := newProgress(len(entries), u.sumSizes(entries))
	emit(opts.Progress, p)

	started(p)
	emit(opts.Progress, p)

	dest := u.destOrDot(opts.Destination)
	anyFailed := false
	u.log.Debugf("unzipper: extracting %d entries into %q", len(entries), dest)

	for _, e := range entries {
		out := e.Name
		if opts.AltNames != nil {
			if alt, ok := opts.AltNames[e.Name]; ok {
				out = alt
			}
		}

		advancing(p, e.Name)
		emit(opts.Progress, p)

		if !u.extractOneToFile(e.Name, dest, out, opts.Overwrite, p, opts.Progress) {
			anyFailed = true
		}

		p.FilesDone++
		emit(opts.Progress, p)
	}

	finished(p, !anyFailed)
	emit(opts.Progress, p)

	if anyFailed {
		if u.err == nil {
			u.setErr(ErrExtract.Error(nil))
		}
		return false
	}

	return true
}

// ExtractEntry mirrors ExtractAll for a single named entry, without the
// walk: locate, resolve, sink.
func (u *Unzipper) ExtractEntry(name string, opts ExtractOptions) bool {
	u.err = nil

	if !u.requireOpen() {
		return false
	}

	e, ok := u.Locate(name)
	if !ok {
		return false
	}

	out := name
	if opts.AltNames != nil {
		if alt, found := opts.AltNames[name]; found {
			out = alt
		}
	}

	p := newProgress(1, int64(e.UncompressedSize))
	emit(opts.Progress, p)
	advancing(p, name)
	emit(opts.Progress, p)

	dest := u.destOrDot(opts.Destination)

	if !u.extractOneToFile(name, dest, out, opts.Overwrite, p, opts.Progress) {
		finished(p, false)
		emit(opts.Progress, p)
		return false
	}

	p.FilesDone = 1
	finished(p, true)
	emit(opts.Progress, p)

	return true
}

// ExtractToWriter streams a single entry's decoded content into w, with no
// filesystem interaction.
func (u *Unzipper) ExtractToWriter(name string, w io.Writer) bool {
	u.err = nil

	if !u.requireOpen() {
		return false
	}

	f := u.file(name)
	if f == nil {
		u.setErr(ErrBadEntry.Error(nil))
		return false
	}

	ok := u.decodeInto(f, newStreamSink(w))
	if !ok && u.err != nil && u.err.IsCode(ErrExtract) {
		u.setErr(ErrInternal.ErrorParent(u.err))
	}
	return ok
}

// ExtractToBuffer decodes a single entry's full content into memory.
func (u *Unzipper) ExtractToBuffer(name string) ([]byte, bool) {
	u.err = nil

	if !u.requireOpen() {
		return nil, false
	}

	f := u.file(name)
	if f == nil {
		u.setErr(ErrBadEntry.Error(nil))
		return nil, false
	}

	var out []byte
	ok := u.decodeInto(f, newBufferSink(f.UncompressedSize64, &out))
	return out, ok
}

func (u *Unzipper) sumSizes(entries []EntryInfo) int64 {
	var sum int64
	for _, e := range entries {
		sum += int64(e.UncompressedSize)
	}
	return sum
}

func (u *Unzipper) extractOneToFile(entryName, dest, altName string, overwrite Overwrite, p *Progress, cb ProgressFunc) bool {
	f := u.file(entryName)
	if f == nil {
		u.setErr(ErrBadEntry.Error(nil))
		return false
	}

	if v := zpath.ValidateEntryName(entryName); v != zpath.Valid {
		if v != zpath.ControlCharacters {
			u.setErr(ErrSecurity.Error(nil))
			return false
		}
		u.log.Warnf("entry %q contains control characters", entryName)
	}

	ok, resolved := zpath.ZipSlipCheck(dest, altName)
	if !ok {
		u.setErr(ErrSecurity.Error(nil))
		return false
	}

	outputPath := zpath.ToNative(zpath.Normalize(resolved))

	if zpath.IsDirEntry(entryName) {
		if err := os.MkdirAll(outputPath, 0755); err != nil {
			u.setErr(ErrorDirCreate.ErrorParent(err))
			return false
		}
		return true
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		u.setErr(ErrorDirCreate.ErrorParent(err))
		return false
	}

	sk, sinkErr := newFileSink(outputPath, overwrite, f.Mode())
	if sinkErr != nil {
		u.setErr(sinkErr)
		return false
	}

	if !u.decodeIntoWithProgress(f, sk, p, cb) {
		return false
	}

	if err := sk.finish(f.Modified); err != nil {
		u.setErr(ErrExtract.ErrorParent(err))
		return false
	}

	return true
}

// decodeInto performs the common streaming decode: open-current-file
// (possibly with password; a wrong password surfaces as a CRC mismatch once
// decoded, reported as ErrOpening), read in scratch-buffer-sized chunks,
// write to sink, close.
func (u *Unzipper) decodeInto(f *zip.File, sk sink) bool {
	ok := u.decodeIntoWithProgress(f, sk, nil, nil)
	if ok {
		_ = sk.finish(f.Modified)
	}
	return ok
}

func (u *Unzipper) decodeIntoWithProgress(f *zip.File, sk sink, p *Progress, cb ProgressFunc) bool {
	if u.password != "" {
		return u.decodeEncrypted(f, sk, p, cb)
	}

	r, err := f.Open()
	if err != nil {
		u.setErr(ErrorZipFileOpen.ErrorParent(err))
		return false
	}
	defer func() { _ = r.Close() }()

	if p != nil {
		sk.setProgress(func(n int64) {
			p.BytesDone += n
			emit(cb, p)
		})
	}

	buf := make([]byte, u.bufSize)
	for {
		n, rerr := r.Read(buf)
		if n > 0 {
			if _, werr := sk.Write(buf[:n]); werr != nil {
				u.setErr(ErrExtract.ErrorParent(werr))
				return false
			}
		}
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			u.setErr(ErrorIOCopy.ErrorParent(rerr))
			return false
		}
	}

	return true
}

func (u *Unzipper) decodeEncrypted(f *zip.File, sk sink, p *Progress, cb ProgressFunc) bool {
	salt, noncePrefix, crc, found := decodeCryptoExtra(f.Extra)
	if !found {
		u.setErr(ErrOpening.Error(nil))
		return false
	}

	ec, err := openEntryCrypto(u.password, salt, [noncePrefixSize]byte(noncePrefix[:noncePrefixSize]))
	if err != nil {
		u.setErr(ErrOpening.ErrorParent(err))
		return false
	}

	r, err := f.Open()
	if err != nil {
		u.setErr(ErrorZipFileOpen.ErrorParent(err))
		return false
	}
	defer func() { _ = r.Close() }()

	cipherText, err := io.ReadAll(r)
	if err != nil {
		u.setErr(ErrorIOCopy.ErrorParent(err))
		return false
	}

	plain, err := ec.coder.Decode(cipherText)
	if err != nil || !verifyCRC(plain, crc) {
		u.setErr(ErrOpening.Error(nil))
		return false
	}

	if p != nil {
		sk.setProgress(func(n int64) {
			p.BytesDone += n
			emit(cb, p)
		})
	}

	if _, err = sk.Write(plain); err != nil {
		u.setErr(ErrExtract.ErrorParent(err))
		return false
	}

	return true
}
