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
	"time"

	zpath "github.com/nabbar/zipper/archive/path"
	"github.com/nabbar/zipper/zerr"
	"github.com/nabbar/zipper/zlog"
)

// ReaderOption configures an Unzipper at construction time.
type ReaderOption func(*Unzipper)

// WithReaderBufferSize overrides the default 32KiB read scratch buffer.
func WithReaderBufferSize(n int) ReaderOption {
	return func(u *Unzipper) {
		if n > 0 {
			u.bufSize = n
		}
	}
}

// WithReaderStdlibCodec falls back to compress/flate instead of the default
// klauspost/compress/flate.
func WithReaderStdlibCodec() ReaderOption {
	return func(u *Unzipper) {
		u.codec = codecStdlib
	}
}

// WithReaderLogger attaches a logger; every lifecycle boundary and the
// control-character-in-entry-name extraction path emit through it.
func WithReaderLogger(l zlog.Logger) ReaderOption {
	return func(u *Unzipper) {
		if l != nil {
			u.log = l
		}
	}
}

// WithReaderPassword supplies the password used to decrypt entries written
// with WithPassword.
func WithReaderPassword(password string) ReaderOption {
	return func(u *Unzipper) {
		u.password = password
	}
}

// Unzipper is the archive reader handle: constructed, Open, operated on,
// Close. Reopen after Close restores the same backing store.
type Unzipper struct {
	store   Store
	zr      *zip.Reader
	open    bool
	bufSize int
	codec   codec
	log     zlog.Logger

	password string
	err      zerr.Error
}

// NewUnzipper is the fallible constructor.
func NewUnzipper(store Store, opts ...ReaderOption) (*Unzipper, error) {
	if store == nil {
		return nil, ErrorParamEmpty.Error(nil)
	}

	u := &Unzipper{
		store:   store,
		bufSize: 32 * 1024,
		codec:   codecKlauspost,
		log:     zlog.Noop,
	}

	for _, o := range opts {
		o(u)
	}

	return u, nil
}

// Open parses the central directory.
func (u *Unzipper) Open() bool {
	u.err = nil

	if u == nil || u.store == nil {
		u.setErr(ErrorParamEmpty.Error(nil))
		return false
	}

	size, err := u.store.Size()
	if err != nil {
		u.setErr(ErrorStoreStat.ErrorParent(err))
		return false
	}

	zr, err := zip.NewReader(u.store, size)
	if err != nil {
		u.setErr(ErrorZipOpen.ErrorParent(err))
		return false
	}

	registerDecompressor(zr, u.codec)
	u.zr = zr
	u.open = true
	u.log.Debugf("unzipper: opened")

	return true
}

// Close releases the reader. Idempotent.
func (u *Unzipper) Close() bool {
	if u == nil {
		return false
	}

	u.err = nil
	u.open = false
	u.zr = nil
	u.log.Debugf("unzipper: closed")

	return true
}

// Reopen restores the handle on the same backing store.
func (u *Unzipper) Reopen() bool {
	return u.Open()
}

// Error returns the sticky error set by the last failing operation.
func (u *Unzipper) Error() zerr.Error {
	if u == nil {
		return nil
	}
	return u.err
}

func (u *Unzipper) setErr(e zerr.Error) {
	u.err = e
}

func (u *Unzipper) requireOpen() bool {
	if u == nil || !u.open {
		u.setErr(ErrNotOpen.Error(nil))
		return false
	}
	return true
}

// dosDate packs a time.Time into the classic MS-DOS date/time uint32 (date
// in the high 16 bits, time in the low 16), the representation the entry's
// DOSDate field carries.
func dosDate(t time.Time) uint32 {
	d := uint16(t.Day()&0x1F) | uint16(int(t.Month())&0xF)<<5 | uint16((t.Year()-1980)&0x7F)<<9
	tm := uint16(t.Second()/2&0x1F) | uint16(t.Minute()&0x3F)<<5 | uint16(t.Hour()&0x1F)<<11
	return uint32(d)<<16 | uint32(tm)
}

func fileToEntryInfo(f *zip.File) EntryInfo {
	t := f.Modified

	return EntryInfo{
		Name:             f.Name,
		CompressedSize:   f.CompressedSize64,
		UncompressedSize: f.UncompressedSize64,
		DOSDate:          dosDate(t),
		Year:             t.Year(),
		Month:            int(t.Month()),
		Day:              t.Day(),
		Hour:             t.Hour(),
		Minute:           t.Minute(),
		Second:           t.Second(),
	}
}

// Entries enumerates every entry in the central directory, in order. Any
// per-entry decode error would have already surfaced from Open, since the
// stdlib archive/zip parses the whole central directory up front; this
// call cannot itself fail once Open succeeded.
func (u *Unzipper) Entries() []EntryInfo {
	if !u.requireOpen() {
		return nil
	}

	out := make([]EntryInfo, 0, len(u.zr.File))
	for _, f := range u.zr.File {
		out = append(out, fileToEntryInfo(f))
	}

	return out
}

// EntriesMatching applies a glob (see archive/path.GlobToRegex) against
// every entry name and retains matches.
func (u *Unzipper) EntriesMatching(pattern string) []EntryInfo {
	if !u.requireOpen() {
		return nil
	}

	re, err := zpath.GlobToRegex(pattern)
	if err != nil {
		u.setErr(ErrorParamEmpty.ErrorParent(err))
		return nil
	}

	out := make([]EntryInfo, 0)
	for _, f := range u.zr.File {
		if re.MatchString(f.Name) {
			out = append(out, fileToEntryInfo(f))
		}
	}

	return out
}

// Locate finds a single entry by exact name.
func (u *Unzipper) Locate(name string) (EntryInfo, bool) {
	if !u.requireOpen() {
		return EntryInfo{}, false
	}

	for _, f := range u.zr.File {
		if f.Name == name {
			return fileToEntryInfo(f), true
		}
	}

	u.setErr(ErrBadEntry.Error(nil))
	return EntryInfo{}, false
}

// TotalUncompressedSize sums UncompressedSize over every entry (or, when
// pattern is non-empty, over the glob-matched subset) — the total-bytes
// figure extract-all seeds its Progress with.
func (u *Unzipper) TotalUncompressedSize(pattern string) int64 {
	var entries []EntryInfo
	if pattern == "" {
		entries = u.Entries()
	} else {
		entries = u.EntriesMatching(pattern)
	}

	var sum int64
	for _, e := range entries {
		sum += int64(e.UncompressedSize)
	}

	return sum
}

func (u *Unzipper) file(name string) *zip.File {
	for _, f := range u.zr.File {
		if f.Name == name {
			return f
		}
	}
	return nil
}
