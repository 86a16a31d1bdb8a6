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

// Package zerr implements the sticky, code-tagged error model shared by every
// package in this module. It mirrors the registry pattern of a hierarchical
// code taxonomy plus a per-code message function, trimmed down to one shared
// set of base codes plus one code namespace per package (see modules.go).
package zerr

import "sort"

// CodeError is the taxonomy this module reports through the public API. The
// values below are the module-wide error classes, lined up with the archive
// engine's documented error kinds. Packages extend the taxonomy with
// finer-grained codes in their own namespaces (see modules.go), and a
// Zipper/Unzipper handle reports those codes too.
type CodeError uint16

const (
	UnknownError CodeError = iota
	OpeningError
	InternalError
	BadEntry
	NoEntry
	SecurityError
	ExtractError
	NotOpen
)

// NullMessage is returned by a message function that has no entry for a code.
const NullMessage = "unknown error"

var messages = map[CodeError]string{
	UnknownError:  NullMessage,
	OpeningError:  "error while opening the archive backing store",
	InternalError: "internal error",
	BadEntry:      "entry not found or cannot be decoded",
	NoEntry:       "empty entry name",
	SecurityError: "security check failed",
	ExtractError:  "error while extracting an entry",
	NotOpen:       "archive handle is not open",
}

type msgFct func(code CodeError) string

var registry = make(map[CodeError]msgFct)

// RegisterIdFctMessage registers a message function starting at minCode. A
// caller package uses this to extend the taxonomy with its own namespace of
// codes without colliding with another package's range.
func RegisterIdFctMessage(minCode CodeError, fct msgFct) {
	registry[minCode] = fct
}

// ExistInMapMessage reports whether a message function is already registered
// for the given starting code, letting a package's init() detect a collision.
func ExistInMapMessage(minCode CodeError) bool {
	_, ok := registry[minCode]
	return ok
}

// registeredBases returns every registered namespace base, sorted ascending.
func registeredBases() []CodeError {
	keys := make([]CodeError, 0, len(registry))
	for base := range registry {
		keys = append(keys, base)
	}

	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	return keys
}

// nearestBase returns the largest registered base that is <= code, so a code
// always resolves through the namespace it was actually minted from instead
// of whichever namespace map iteration happens to visit first. Package bases
// are disjoint (MinPkgArchiveZip, MinPkgIOUtils, ...), so the largest base not
// exceeding code is unambiguous.
func nearestBase(code CodeError) (CodeError, bool) {
	var (
		res   CodeError
		found bool
	)

	for _, base := range registeredBases() {
		if base <= code {
			res = base
			found = true
		}
	}

	return res, found
}

func getMessage(code CodeError) string {
	if m, ok := messages[code]; ok {
		return m
	}

	if base, ok := nearestBase(code); ok {
		if m := registry[base](code); m != "" {
			return m
		}
	}

	return NullMessage
}
