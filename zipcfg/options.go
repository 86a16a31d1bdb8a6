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

// Package zipcfg is the typed wiring point between an external CLI
// front-end (argument parsing, password prompting, exit-code mapping — all
// out of scope for this module) and the archive engine. It carries no
// flag-parsing code of its own.
package zipcfg

// Options is what a front-end fills in from parsed flags before handing
// control to the archive engine.
type Options struct {
	Password           string
	Overwrite          bool
	Recursive          bool
	MaxUncompressedGiB uint64
}

// CheckMaxUncompressed implements the "-m" guard: it reports whether sum
// (bytes) stays within the configured ceiling. A zero ceiling means
// unbounded.
func CheckMaxUncompressed(sum int64, opts Options) bool {
	if opts.MaxUncompressedGiB == 0 {
		return true
	}

	limit := int64(opts.MaxUncompressedGiB) << 30
	return sum <= limit
}
