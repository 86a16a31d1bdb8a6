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
	"compress/flate"
	"io"

	kflate "github.com/klauspost/compress/flate"
)

// codec picks which DEFLATE implementation a Zipper/Unzipper registers on
// its underlying *zip.Writer/*zip.Reader. klauspost/compress/flate is the
// default: a faster, drop-in replacement for compress/flate through the
// same RegisterCompressor/RegisterDecompressor seam.
type codec int

const (
	codecKlauspost codec = iota
	codecStdlib
)

func levelToFlate(l Level) int {
	switch l {
	case Store:
		return flate.NoCompression
	case Faster:
		return flate.BestSpeed
	case Medium:
		return flate.DefaultCompression
	case Better:
		return flate.BestCompression
	default:
		return flate.DefaultCompression
	}
}

// registerCompressor wires *zip.Writer's single Deflate slot to read the
// level through a pointer rather than capturing it by value: archive/zip
// only ever registers one compressor function per method, but AddFlags.Level
// can change on every Add call, so the function reads whatever *level holds
// at the moment CreateHeader invokes it.
func registerCompressor(w *zip.Writer, c codec, level *Level) {
	w.RegisterCompressor(zip.Deflate, func(out io.Writer) (io.WriteCloser, error) {
		lvl := levelToFlate(*level)
		if c == codecStdlib {
			return flate.NewWriter(out, lvl)
		}
		return kflate.NewWriter(out, lvl)
	})
}

func registerDecompressor(r *zip.Reader, c codec) {
	r.RegisterDecompressor(zip.Deflate, func(in io.Reader) io.ReadCloser {
		if c == codecStdlib {
			return flate.NewReader(in)
		}
		return kflate.NewReader(in)
	})
}
