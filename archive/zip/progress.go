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

// emit invokes cb synchronously with p, the one contract extract.go relies
// on for every progress-reporting call site. cb must not
// re-enter the handle that invoked it and must not retain p past the call.
func emit(cb ProgressFunc, p *Progress) {
	if cb != nil {
		cb(p)
	}
}

// newProgress seeds a fresh, Idle report for totalFiles entries summing to
// totalBytes, the shape extract-all and extract-entry both start from.
func newProgress(totalFiles int, totalBytes int64) *Progress {
	return &Progress{TotalFiles: totalFiles, TotalBytes: totalBytes, Status: Idle}
}

// started flips a report to InProgress with no current entry, the "totals
// known" event emitted once before the per-entry walk begins.
func started(p *Progress) {
	p.Status = InProgress
	p.Current = ""
}

// advancing marks the report InProgress for the given entry, emitted just
// before that entry's sink is invoked.
func advancing(p *Progress, current string) {
	p.Status = InProgress
	p.Current = current
}

// finished sets the terminal status: OK if every entry succeeded, KO
// otherwise.
func finished(p *Progress, ok bool) {
	if ok {
		p.Status = OK
	} else {
		p.Status = KO
	}
}
