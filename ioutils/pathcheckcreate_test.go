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

var _ = Describe("PathCheckCreate", func() {
	var tempDir string

	BeforeEach(func() {
		var err error
		tempDir, err = os.MkdirTemp("", "ioutils_test_*")
		Expect(err).ToNot(HaveOccurred())
	})

	AfterEach(func() {
		if tempDir != "" {
			_ = os.RemoveAll(tempDir)
		}
	})

	Context("creating a file", func() {
		It("creates a new file with the given permissions", func() {
			filePath := filepath.Join(tempDir, "test.txt")
			Expect(PathCheckCreate(true, filePath, 0644, 0755)).To(BeNil())
			Expect(filePath).To(BeAnExistingFile())

			info, err := os.Stat(filePath)
			Expect(err).ToNot(HaveOccurred())
			Expect(info.IsDir()).To(BeFalse())
		})

		It("creates missing parent directories", func() {
			filePath := filepath.Join(tempDir, "a", "b", "c", "test.txt")
			Expect(PathCheckCreate(true, filePath, 0644, 0755)).To(BeNil())
			Expect(filePath).To(BeAnExistingFile())
			Expect(filepath.Dir(filePath)).To(BeADirectory())
		})

		It("leaves an existing file untouched when permissions already match", func() {
			filePath := filepath.Join(tempDir, "same.txt")
			Expect(PathCheckCreate(true, filePath, 0644, 0755)).To(BeNil())
			Expect(PathCheckCreate(true, filePath, 0644, 0755)).To(BeNil())
			Expect(filePath).To(BeAnExistingFile())
		})

		It("updates permissions on an existing file that differs", func() {
			filePath := filepath.Join(tempDir, "chmod.txt")
			Expect(PathCheckCreate(true, filePath, 0600, 0755)).To(BeNil())
			Expect(PathCheckCreate(true, filePath, 0644, 0755)).To(BeNil())

			info, err := os.Stat(filePath)
			Expect(err).ToNot(HaveOccurred())
			Expect(info.Mode().Perm()).To(Equal(os.FileMode(0644)))
		})

		It("refuses to treat an existing directory as a file", func() {
			dirPath := filepath.Join(tempDir, "adir")
			Expect(os.Mkdir(dirPath, 0755)).To(Succeed())

			err := PathCheckCreate(true, dirPath, 0644, 0755)
			Expect(err).ToNot(BeNil())
			Expect(err.Code()).To(Equal(ErrorPathIsDir))
		})
	})

	Context("creating a directory", func() {
		It("creates a new directory", func() {
			dirPath := filepath.Join(tempDir, "newdir")
			Expect(PathCheckCreate(false, dirPath, 0644, 0755)).To(BeNil())
			Expect(dirPath).To(BeADirectory())
		})

		It("creates deeply nested directories", func() {
			dirPath := filepath.Join(tempDir, "a", "b", "c", "d")
			Expect(PathCheckCreate(false, dirPath, 0644, 0755)).To(BeNil())
			Expect(dirPath).To(BeADirectory())
		})

		It("is a no-op on an existing directory", func() {
			dirPath := filepath.Join(tempDir, "existing")
			Expect(os.Mkdir(dirPath, 0755)).To(Succeed())
			Expect(PathCheckCreate(false, dirPath, 0644, 0755)).To(BeNil())
			Expect(dirPath).To(BeADirectory())
		})

		It("refuses to treat an existing file as a directory", func() {
			filePath := filepath.Join(tempDir, "afile")
			Expect(os.WriteFile(filePath, []byte("x"), 0644)).To(Succeed())

			err := PathCheckCreate(false, filePath, 0644, 0755)
			Expect(err).ToNot(BeNil())
			Expect(err.Code()).To(Equal(ErrorPathIsFile))
		})
	})
})
