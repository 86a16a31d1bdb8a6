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

// Package path implements the portable path model shared by the archive
// writer, reader and extraction pipeline: cross-platform normalization,
// canonicalization against a destination root, entry-name validation, and
// Zip-Slip detection.
package path

import (
	"os"
	"regexp"
	"strings"
)

// Validity is the classification of an archive entry name.
type Validity int

const (
	Valid Validity = iota
	EmptyEntry
	ControlCharacters
	ZipSlip
	AbsolutePath
)

func (v Validity) String() string {
	switch v {
	case Valid:
		return "valid"
	case EmptyEntry:
		return "empty entry"
	case ControlCharacters:
		return "control characters"
	case ZipSlip:
		return "zip slip"
	case AbsolutePath:
		return "absolute path"
	default:
		return "unknown"
	}
}

var winDrive = regexp.MustCompile(`^[A-Za-z]:[/\\]`)

// Normalize implements spec §4.1's normalization algorithm: separators are
// unified to '/', '.' segments are dropped, '..' segments pop the previous
// segment (or are dropped/kept per the absolute/relative rule), and the
// result is rejoined with the preferred separator ('\' for a detected
// Windows drive root, '/' otherwise).
func Normalize(p string) string {
	if p == "" {
		return "."
	}

	isWinDrive := winDrive.MatchString(p)
	isPosixAbs := strings.HasPrefix(p, "/") && !isWinDrive
	absolute := isWinDrive || isPosixAbs

	var drive string
	rest := p
	if isWinDrive {
		drive = p[:2]
		rest = p[2:]
	}

	rest = strings.ReplaceAll(rest, `\`, "/")
	parts := strings.Split(rest, "/")

	stack := make([]string, 0, len(parts))
	for _, seg := range parts {
		switch seg {
		case "", ".":
			continue
		case "..":
			if len(stack) > 0 && stack[len(stack)-1] != ".." {
				stack = stack[:len(stack)-1]
			} else if !absolute {
				stack = append(stack, "..")
			}
			// absolute + empty stack: drop the ".." (cannot escape root)
		default:
			stack = append(stack, seg)
		}
	}

	sep := "/"
	if isWinDrive {
		sep = `\`
	}

	joined := strings.Join(stack, sep)

	switch {
	case drive != "":
		return drive + sep + joined
	case isPosixAbs:
		return sep + joined
	case joined == "":
		return "."
	default:
		return joined
	}
}

// Canonicalize turns destination D into the absolute, separator-terminated
// base path used as the Zip-Slip root: normalize(cwd+D) if D is relative,
// else normalize(D), with a trailing preferred separator appended.
func Canonicalize(dest string) string {
	sep := "/"
	if winDrive.MatchString(dest) {
		sep = `\`
	}

	abs := dest
	if !strings.HasPrefix(dest, "/") && !winDrive.MatchString(dest) {
		if cwd, err := os.Getwd(); err == nil {
			abs = cwd + sep + dest
		}
	}

	n := Normalize(abs)
	if !strings.HasSuffix(n, sep) {
		n += sep
	}

	return n
}

// ZipSlipCheck computes F = Canonicalize(dest + "/" + entryName) and asserts
// F starts with Canonicalize(dest). It returns false (and the offending
// path) on any deviation.
func ZipSlipCheck(dest, entryName string) (ok bool, resolved string) {
	base := Canonicalize(dest)
	full := Canonicalize(dest + "/" + entryName)
	return strings.HasPrefix(full, base), full
}

// ValidateEntryName classifies name per spec §4.1. A name is Valid iff it is
// non-empty, contains no raw control bytes outside of valid UTF-8 multi-byte
// sequences, does not begin with "..", and is not rooted. Rooted and
// ".."-prefixed names are classified before control bytes are looked for, so
// ControlCharacters is only returned when it is the name's sole defect.
func ValidateEntryName(name string) Validity {
	if name == "" {
		return EmptyEntry
	}

	if strings.HasPrefix(name, "/") || winDrive.MatchString(name) || strings.HasPrefix(name, `\\`) {
		return AbsolutePath
	}

	if strings.HasPrefix(name, "..") {
		return ZipSlip
	}

	for i := 0; i < len(name); i++ {
		if name[i] <= 0x1F {
			// 0x00-0x1F are control bytes; UTF-8 continuation bytes are
			// 0b10xxxxxx (>= 0x80) so they never collide with this range.
			return ControlCharacters
		}
	}

	return Valid
}

// IsDirEntry reports whether name denotes a directory entry per the
// trailing-slash convention (canonical '/' separator, archive-facing names
// only).
func IsDirEntry(name string) bool {
	return strings.HasSuffix(name, "/")
}

// ToNative converts an archive-facing ('/'-separated) name to the host's
// native separator, for filesystem-facing use.
func ToNative(name string) string {
	if os.PathSeparator == '/' {
		return name
	}
	return strings.ReplaceAll(name, "/", string(os.PathSeparator))
}

// ToArchive converts a filesystem-facing path to the archive's canonical
// '/'-separated form.
func ToArchive(p string) string {
	return strings.ReplaceAll(p, `\`, "/")
}
