/*
 * MIT License
 *
 * Copyright (c) 2022 Nicolas JUHEL
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
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	zpath "github.com/nabbar/zipper/archive/path"
	"github.com/nabbar/zipper/ioutils"
	"github.com/nabbar/zipper/zerr"
	"github.com/nabbar/zipper/zlog"
)

// cryptoExtraID is the local-extra-field tag this engine stores its salt and
// nonce prefix under. It is a private-use ID (outside the range assigned by
// the official ZIP appnote) since our encrypted entries only need to
// round-trip with this package, not with third-party tools.
const cryptoExtraID = 0x9901

// WriterOption configures a Zipper at construction time.
type WriterOption func(*Zipper)

// WithWriterBufferSize overrides the default 64KiB write scratch buffer.
func WithWriterBufferSize(n int) WriterOption {
	return func(z *Zipper) {
		if n > 0 {
			z.bufSize = n
		}
	}
}

// WithStdlibCodec falls back to compress/flate instead of the default
// klauspost/compress/flate.
func WithStdlibCodec() WriterOption {
	return func(z *Zipper) {
		z.codec = codecStdlib
	}
}

// WithLogger attaches a logger; every lifecycle boundary emits a debug line.
func WithLogger(l zlog.Logger) WriterOption {
	return func(z *Zipper) {
		if l != nil {
			z.log = l
		}
	}
}

// WithPassword enables password-based entry encryption for every
// subsequent Add call on this handle.
func WithPassword(password string) WriterOption {
	return func(z *Zipper) {
		z.password = password
	}
}

// Zipper is the archive writer handle: constructed, Open, operated on,
// Close. Reopen after Close restores the same backing store.
type Zipper struct {
	store   Store
	zw      *zip.Writer
	open    bool
	bufSize int
	codec   codec
	log     zlog.Logger

	password string
	level    Level
	err      zerr.Error
}

// NewZipper is the fallible constructor: store is the backing store this
// handle writes into (see NewFileStore/NewBufferStore/NewStreamStore).
func NewZipper(store Store, opts ...WriterOption) (*Zipper, error) {
	if store == nil {
		return nil, ErrorParamEmpty.Error(nil)
	}

	z := &Zipper{
		store:   store,
		bufSize: 64 * 1024,
		codec:   codecKlauspost,
		log:     zlog.Noop,
		level:   Better,
	}

	for _, o := range opts {
		o(z)
	}

	return z, nil
}

// Open starts a new central directory on the backing store.
func (z *Zipper) Open() bool {
	z.err = nil

	if z == nil || z.store == nil {
		z.setErr(ErrorParamEmpty.Error(nil))
		return false
	}

	z.zw = zip.NewWriter(z.store)
	registerCompressor(z.zw, z.codec, &z.level)
	z.open = true
	z.log.Debugf("zipper: opened")

	return true
}

// Close flushes the central directory and finalizes the backing store.
// Idempotent: calling Close twice is a no-op success.
func (z *Zipper) Close() bool {
	if z == nil {
		return false
	}

	if !z.open {
		return true
	}

	z.err = nil

	if err := z.zw.Close(); err != nil {
		z.setErr(ErrorZipCreate.ErrorParent(err))
		return false
	}

	if err := z.store.Finalize(); err != nil {
		z.setErr(ErrorStoreWrite.ErrorParent(err))
		return false
	}

	z.open = false
	z.log.Debugf("zipper: closed")

	return true
}

// Reopen repeats Open on the same backing store. The new writer's output
// follows whatever the store already holds, and the central directory it
// writes on Close lists only the entries added since Reopen; entries written
// before the previous Close are not listed in it. No overwrite/append mode
// is offered.
func (z *Zipper) Reopen() bool {
	return z.Open()
}

// Error returns the sticky error set by the last failing operation, cleared
// at the start of each top-level call.
func (z *Zipper) Error() zerr.Error {
	if z == nil {
		return nil
	}
	return z.err
}

func (z *Zipper) setErr(e zerr.Error) {
	z.err = e
}

func (z *Zipper) requireOpen() bool {
	if z == nil || !z.open {
		z.setErr(ErrNotOpen.Error(nil))
		return false
	}
	return true
}

// Add streams source into the archive under nameInArchive, honoring flags
// and an optional explicit timestamp. This is the single-entry primitive
// both AddPath and the directory walker build on.
func (z *Zipper) Add(source io.Reader, nameInArchive string, flags AddFlags, timestamp *time.Time) bool {
	z.err = nil

	if !z.requireOpen() {
		return false
	}

	if nameInArchive == "" {
		z.setErr(ErrNoEntry.Error(nil))
		return false
	}

	canonical := zpath.Normalize(nameInArchive)
	if strings.HasPrefix(canonical, "..") {
		z.setErr(ErrSecurity.Error(nil))
		return false
	}

	name := zpath.ToArchive(canonical)

	ts := time.Now()
	if timestamp != nil {
		ts = *timestamp
	}

	h := &zip.FileHeader{
		Name:     name,
		Method:   zip.Deflate,
		Modified: ts,
	}

	z.level = flags.Level
	if flags.Level == Store {
		h.Method = zip.Store
	}

	z.log.Debugf("zipper: adding %q", name)

	if z.password != "" {
		return z.addEncrypted(source, h)
	}

	w, err := z.zw.CreateHeader(h)
	if err != nil {
		z.setErr(ErrorZipAddFile.ErrorParent(err))
		return false
	}

	buf := make([]byte, z.bufSize)
	if _, err = io.CopyBuffer(w, source, buf); err != nil {
		z.setErr(ErrorIOCopy.ErrorParent(err))
		return false
	}

	return true
}

// AddBytes is the convenience overload over Add for an in-memory source: no
// filesystem round-trip, the data is wrapped in a closeable reader so Add's
// source contract stays uniform across AddPath and AddBytes.
func (z *Zipper) AddBytes(data []byte, nameInArchive string, flags AddFlags, timestamp *time.Time) bool {
	rc := ioutils.NewBufferReadCloser(bytes.NewBuffer(data))
	defer func() { _ = rc.Close() }()

	return z.Add(rc, nameInArchive, flags, timestamp)
}

// addEncrypted buffers the plaintext once (to avoid the AEAD nonce-reuse
// that a chunked Seal-per-write would cause), precomputes its CRC-32,
// derives a fresh per-entry coder, and writes the ciphertext as a single
// Store-method entry with the salt/nonce prefix carried in the local extra
// field.
func (z *Zipper) addEncrypted(source io.Reader, h *zip.FileHeader) bool {
	plain, err := io.ReadAll(source)
	if err != nil {
		z.setErr(ErrorIOCopy.ErrorParent(err))
		return false
	}

	crc := crc32.ChecksumIEEE(plain)

	ec, err := newEntryCrypto(z.password)
	if err != nil {
		z.setErr(ErrorCryptoKeyDerive.ErrorParent(err))
		return false
	}

	cipherText := ec.coder.Encode(plain)

	h.Method = zip.Store
	h.Extra = encodeCryptoExtra(ec.salt, ec.nonce, crc)

	w, err := z.zw.CreateHeader(h)
	if err != nil {
		z.setErr(ErrorZipAddFile.ErrorParent(err))
		return false
	}

	if _, err = w.Write(cipherText); err != nil {
		z.setErr(ErrorIOCopy.ErrorParent(err))
		return false
	}

	return true
}

func encodeCryptoExtra(salt [saltSize]byte, nonce [12]byte, crc uint32) []byte {
	buf := &bytes.Buffer{}

	body := make([]byte, 0, saltSize+noncePrefixSize+4)
	body = append(body, salt[:]...)
	body = append(body, nonce[:noncePrefixSize]...)

	crcBytes := make([]byte, 4)
	binary.LittleEndian.PutUint32(crcBytes, crc)
	body = append(body, crcBytes...)

	_ = binary.Write(buf, binary.LittleEndian, uint16(cryptoExtraID))
	_ = binary.Write(buf, binary.LittleEndian, uint16(len(body)))
	buf.Write(body)

	return buf.Bytes()
}

func decodeCryptoExtra(extra []byte) (salt [saltSize]byte, nonce [12]byte, crc uint32, ok bool) {
	r := bytes.NewReader(extra)

	for r.Len() >= 4 {
		var id, size uint16
		_ = binary.Read(r, binary.LittleEndian, &id)
		_ = binary.Read(r, binary.LittleEndian, &size)

		body := make([]byte, size)
		if _, err := io.ReadFull(r, body); err != nil {
			return salt, nonce, 0, false
		}

		if id == cryptoExtraID && len(body) >= saltSize+noncePrefixSize+4 {
			copy(salt[:], body[:saltSize])
			copy(nonce[:noncePrefixSize], body[saltSize:saltSize+noncePrefixSize])
			crc = binary.LittleEndian.Uint32(body[saltSize+noncePrefixSize:])
			return salt, nonce, crc, true
		}
	}

	return salt, nonce, 0, false
}

// AddPath is the convenience overload over Add for a file or directory on
// disk. A directory is enumerated recursively when flags.SaveHierarchy is
// set, top-level files only otherwise; the in-archive name is the walked
// path as given ('/'-separated, so absolute when sourcePath is absolute)
// with SaveHierarchy, the basename without it. Errors on individual
// files do not abort the batch — the worst error is surfaced at the end.
func (z *Zipper) AddPath(sourcePath string, flags AddFlags) bool {
	z.err = nil

	if !z.requireOpen() {
		return false
	}

	info, statErr := os.Stat(sourcePath)
	if statErr != nil {
		z.setErr(ErrorStoreStat.ErrorParent(statErr))
		return false
	}

	var worst zerr.Error
	added := 0

	walk := func(file string, inf os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if inf.IsDir() {
			return nil
		}

		name := filepath.ToSlash(file)
		if !flags.SaveHierarchy {
			name = filepath.Base(file)
		}

		f, openErr := os.Open(file)
		if openErr != nil {
			worst = ErrorStoreOpen.ErrorParent(openErr)
			return nil
		}
		defer func() { _ = f.Close() }()

		mod := inf.ModTime()
		if !z.Add(f, name, flags, &mod) {
			worst = z.err
			return nil
		}

		added++
		return nil
	}

	if info.IsDir() {
		if flags.SaveHierarchy {
			_ = filepath.Walk(sourcePath, walk)
		} else {
			entries, readErr := os.ReadDir(sourcePath)
			if readErr != nil {
				z.setErr(ErrorStoreStat.ErrorParent(readErr))
				return false
			}
			for _, e := range entries {
				if e.IsDir() {
					continue
				}
				full := filepath.Join(sourcePath, e.Name())
				inf, _ := e.Info()
				_ = walk(full, inf, nil)
			}
		}
	} else {
		_ = walk(sourcePath, info, nil)
	}

	if added == 0 {
		if worst != nil {
			z.setErr(worst)
		} else {
			z.setErr(ErrorZipCreate.ErrorParent(nil))
		}
		return false
	}

	if worst != nil {
		z.setErr(worst)
	}

	return true
}
