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
	"fmt"

	"github.com/nabbar/zipper/zerr"
)

// ErrOpening, ErrInternal, ... map 1:1 onto the taxonomy a Zipper/Unzipper
// handle reports through Error(). They are aliases of the zerr codes this
// package is built on, kept local so callers only import this package.
const (
	ErrOpening  = zerr.OpeningError
	ErrInternal = zerr.InternalError
	ErrBadEntry = zerr.BadEntry
	ErrNoEntry  = zerr.NoEntry
	ErrSecurity = zerr.SecurityError
	ErrExtract  = zerr.ExtractError
	ErrNotOpen  = zerr.NotOpen
)

const (
	// ErrorParamEmpty and below extend the taxonomy with archive/zip's own
	// namespace, for diagnostics finer than the public seven codes.
	ErrorParamEmpty zerr.CodeError = iota + zerr.MinPkgArchiveZip
	ErrorStoreOpen
	ErrorStoreRead
	ErrorStoreWrite
	ErrorStoreSeek
	ErrorStoreStat
	ErrorIOCopy
	ErrorZipOpen
	ErrorZipCreate
	ErrorZipAddFile
	ErrorZipFileOpen
	ErrorZipFileClose
	ErrorDirCreate
	ErrorDestinationStat
	ErrorDestinationIsDir
	ErrorDestinationIsNotDir
	ErrorDestinationRemove
	ErrorCryptoKeyDerive
	ErrorCryptoBadPassword
	ErrorNotOpen
)

func init() {
	if zerr.ExistInMapMessage(zerr.MinPkgArchiveZip) {
		panic(fmt.Errorf("error code collision in archive/zip"))
	}
	zerr.RegisterIdFctMessage(zerr.MinPkgArchiveZip, getMessage)
}

func getMessage(code zerr.CodeError) string {
	switch code {
	case ErrorParamEmpty:
		return "given parameters is empty"
	case ErrorStoreOpen:
		return "cannot open the backing store"
	case ErrorStoreRead:
		return "error reading from the backing store"
	case ErrorStoreWrite:
		return "error writing to the backing store"
	case ErrorStoreSeek:
		return "cannot seek the backing store"
	case ErrorStoreStat:
		return "cannot stat the backing store"
	case ErrorIOCopy:
		return "io copy occurs error"
	case ErrorZipOpen:
		return "cannot open zip archive"
	case ErrorZipCreate:
		return "cannot create zip archive"
	case ErrorZipAddFile:
		return "cannot add file to zip archive"
	case ErrorZipFileOpen:
		return "cannot open entry in zip archive"
	case ErrorZipFileClose:
		return "cannot close entry in zip archive"
	case ErrorDirCreate:
		return "make directory occurs error"
	case ErrorDestinationStat:
		return "cannot stat destination"
	case ErrorDestinationIsDir:
		return "cannot create destination over an existing directory"
	case ErrorDestinationIsNotDir:
		return "cannot create destination directory over an existing non-directory"
	case ErrorDestinationRemove:
		return "cannot remove destination"
	case ErrorCryptoKeyDerive:
		return "cannot derive encryption key from password"
	case ErrorCryptoBadPassword:
		return "bad password"
	case ErrorNotOpen:
		return "archive handle is not open"
	}

	return zerr.NullMessage
}
