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

// Package zip implements the archive I/O engine: a unified read/write path
// over three backing stores, ZIP64 handling, DEFLATE framing, password
// encrypted entries and CRC-32 precomputation, plus the extraction pipeline
// built on top of it.
package zip

import "fmt"

// Level is the compression level an entry is written with.
type Level int

const (
	Store  Level = 0
	Faster Level = 1
	Medium Level = 5
	Better Level = 9
)

// AddFlags controls how AddPath enumerates and names entries.
type AddFlags struct {
	Level         Level
	SaveHierarchy bool
}

// Overwrite is the extraction collision policy.
type Overwrite int

const (
	DoNotOverwrite Overwrite = iota
	DoOverwrite
)

// EntryInfo describes one archive entry as seen by the reader.
type EntryInfo struct {
	Name             string
	CompressedSize   uint64
	UncompressedSize uint64
	DOSDate          uint32

	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
	Second int
}

// Valid reports whether the entry carries a non-empty name, per spec.
func (e EntryInfo) Valid() bool {
	return e.Name != ""
}

// String renders the entry's broken-down time as "YYYY-MM-DD HH:MM:SS".
func (e EntryInfo) String() string {
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d", e.Year, e.Month, e.Day, e.Hour, e.Minute, e.Second)
}

// Status is the lifecycle state of a Progress report.
type Status int

const (
	Idle Status = iota
	InProgress
	OK
	KO
)

// Progress is mutated in place by the engine and passed by pointer to the
// caller's callback; the callback must not retain the pointer.
type Progress struct {
	TotalFiles int
	FilesDone  int
	TotalBytes int64
	BytesDone  int64
	Current    string
	Status     Status
}

// ProgressFunc is the synchronous progress callback contract: it must not
// re-enter the handle that invoked it.
type ProgressFunc func(p *Progress)
