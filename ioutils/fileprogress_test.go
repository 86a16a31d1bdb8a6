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

package ioutils_test

import (
	"os"
	"path/filepath"

	. "github.com/nabbar/zipper/ioutils"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("FileProgress", func() {
	var (
		tempDir  string
		filePath string
	)

	BeforeEach(func() {
		var err error
		tempDir, err = os.MkdirTemp("", "ioutils_test_*")
		Expect(err).ToNot(HaveOccurred())
		filePath = filepath.Join(tempDir, "out.bin")
	})

	AfterEach(func() {
		if tempDir != "" {
			_ = os.RemoveAll(tempDir)
		}
	})

	It("opens, writes and closes a file", func() {
		fp, err := NewFileProgressPathMode(filePath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
		Expect(err).To(BeNil())

		n, werr := fp.Write([]byte("hello"))
		Expect(werr).ToNot(HaveOccurred())
		Expect(n).To(Equal(5))

		Expect(fp.Close()).ToNot(HaveOccurred())

		content, rerr := os.ReadFile(filePath)
		Expect(rerr).ToNot(HaveOccurred())
		Expect(string(content)).To(Equal("hello"))
	})

	It("reports the path it was opened with", func() {
		fp, err := NewFileProgressPathMode(filePath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
		Expect(err).To(BeNil())
		defer func() { _ = fp.Close() }()

		Expect(fp.FilePath()).To(Equal(filepath.Clean(filePath)))
	})

	It("reports file stats through FileStat", func() {
		fp, err := NewFileProgressPathMode(filePath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
		Expect(err).To(BeNil())

		_, werr := fp.Write([]byte("12345678"))
		Expect(werr).ToNot(HaveOccurred())
		Expect(fp.Close()).ToNot(HaveOccurred())

		fp, err = NewFileProgressPathMode(filePath, os.O_RDONLY, 0644)
		Expect(err).To(BeNil())
		defer func() { _ = fp.Close() }()

		inf, serr := fp.FileStat()
		Expect(serr).To(BeNil())
		Expect(inf.Size()).To(Equal(int64(8)))
	})

	It("invokes the increment callback with the written byte count", func() {
		fp, err := NewFileProgressPathMode(filePath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
		Expect(err).To(BeNil())
		defer func() { _ = fp.Close() }()

		var total int64
		fp.SetIncrement(func(size int64) {
			total += size
		})

		_, werr := fp.Write([]byte("abc"))
		Expect(werr).ToNot(HaveOccurred())
		_, werr = fp.Write([]byte("de"))
		Expect(werr).ToNot(HaveOccurred())

		Expect(total).To(Equal(int64(5)))
	})

	It("stops invoking the callback once it is cleared", func() {
		fp, err := NewFileProgressPathMode(filePath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
		Expect(err).To(BeNil())
		defer func() { _ = fp.Close() }()

		var calls int
		fp.SetIncrement(func(int64) { calls++ })
		_, _ = fp.Write([]byte("a"))
		fp.SetIncrement(nil)
		_, _ = fp.Write([]byte("b"))

		Expect(calls).To(Equal(1))
	})

	It("is safe to close twice", func() {
		fp, err := NewFileProgressPathMode(filePath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
		Expect(err).To(BeNil())

		Expect(fp.Close()).ToNot(HaveOccurred())
		Expect(fp.Close()).ToNot(HaveOccurred())
	})

	It("errors when the target path cannot be opened", func() {
		_, err := NewFileProgressPathMode(filepath.Join(tempDir, "missing-dir", "out.bin"), os.O_WRONLY|os.O_CREATE, 0644)
		Expect(err).ToNot(BeNil())
		Expect(err.Code()).To(Equal(ErrorIOFileOpen))
	})
})
