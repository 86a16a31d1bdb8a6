/*
 * MIT License
 *
 * Copyright (c) 2025 Nicolas JUHEL
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
 *
 */

package ioutils

import (
	"os"
	"path/filepath"

	"github.com/nabbar/zipper/zerr"
)

// PathCheckCreate ensures a file or directory exists at path with the given
// permissions, creating missing parent directories along the way. It is the
// provisioning step archive/zip/sink.go's fileSink runs against
// filepath.Dir(outputPath) before opening the destination for write, so an
// extraction into a fresh tree never fails on a missing intermediate
// directory.
//
// isFile selects the expected kind at path: true for a plain file, false for
// a directory. A path that already exists as the other kind is rejected
// without being touched (ErrorPathIsDir / ErrorPathIsFile) — extraction
// relies on this to refuse overwriting a directory with a file or vice
// versa instead of silently replacing one with the other.
func PathCheckCreate(isFile bool, path string, permFile os.FileMode, permDir os.FileMode) zerr.Error {
	inf, statErr := os.Stat(path)

	switch {
	case statErr == nil && inf.IsDir():
		if isFile {
			return ErrorPathIsDir.Error(nil)
		}
		if inf.Mode().Perm() != permDir.Perm() {
			_ = os.Chmod(path, permDir)
		}
		return nil

	case statErr == nil:
		if !isFile {
			return ErrorPathIsFile.Error(nil)
		}
		if inf.Mode().Perm() != permFile.Perm() {
			_ = os.Chmod(path, permFile)
		}
		return nil

	case !os.IsNotExist(statErr):
		return ErrorIOFileStat.ErrorParent(statErr)
	}

	if !isFile {
		return ErrorIOFileOpen.Iferror(os.MkdirAll(path, permDir))
	}

	if e := PathCheckCreate(false, filepath.Dir(path), permFile, permDir); e != nil {
		return e
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, permFile)
	if err != nil {
		return ErrorIOFileOpen.ErrorParent(err)
	}

	return ErrorIOFileClose.Iferror(f.Close())
}
