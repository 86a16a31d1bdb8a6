package zip_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"time"

	archzip "github.com/nabbar/zipper/archive/zip"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Zipper", func() {
	var out []byte

	newZipper := func(opts ...archzip.WriterOption) *archzip.Zipper {
		out = nil
		st := archzip.NewBufferStore(nil, &out)
		z, err := archzip.NewZipper(st, opts...)
		Expect(err).ToNot(HaveOccurred())
		Expect(z.Open()).To(BeTrue())
		return z
	}

	It("round-trips a plain entry through Add and the stdlib reader", func() {
		z := newZipper()
		ts := time.Date(2024, time.March, 4, 5, 6, 7, 0, time.UTC)
		Expect(z.Add(strings.NewReader("hello zip"), "dir/hello.txt", archzip.AddFlags{Level: archzip.Better}, &ts)).To(BeTrue())
		Expect(z.Close()).To(BeTrue())

		ust, err := archzip.NewUnzipper(archzip.NewBufferStore(out, nil))
		Expect(err).ToNot(HaveOccurred())
		Expect(ust.Open()).To(BeTrue())

		entries := ust.Entries()
		Expect(entries).To(HaveLen(1))
		Expect(entries[0].Name).To(Equal("dir/hello.txt"))

		buf, ok := ust.ExtractToBuffer("dir/hello.txt")
		Expect(ok).To(BeTrue())
		Expect(string(buf)).To(Equal("hello zip"))
	})

	It("rejects a name that normalizes to an escape of the archive root", func() {
		z := newZipper()
		Expect(z.Add(strings.NewReader("x"), "../../etc/passwd", archzip.AddFlags{}, nil)).To(BeFalse())
		Expect(z.Error()).ToNot(BeNil())
	})

	It("is idempotent on Close", func() {
		z := newZipper()
		Expect(z.Add(strings.NewReader("x"), "a.txt", archzip.AddFlags{}, nil)).To(BeTrue())
		Expect(z.Close()).To(BeTrue())
		Expect(z.Close()).To(BeTrue())
	})

	It("round-trips an in-memory AddBytes entry", func() {
		z := newZipper()
		Expect(z.AddBytes([]byte("from memory"), "mem.bin", archzip.AddFlags{}, nil)).To(BeTrue())
		Expect(z.Close()).To(BeTrue())

		ust, err := archzip.NewUnzipper(archzip.NewBufferStore(out, nil))
		Expect(err).ToNot(HaveOccurred())
		Expect(ust.Open()).To(BeTrue())

		buf, ok := ust.ExtractToBuffer("mem.bin")
		Expect(ok).To(BeTrue())
		Expect(string(buf)).To(Equal("from memory"))
	})

	It("round-trips a password-protected entry and rejects a wrong password on read", func() {
		z := newZipper(archzip.WithPassword("s3cr3t"))
		Expect(z.Add(strings.NewReader("classified"), "secret.txt", archzip.AddFlags{}, nil)).To(BeTrue())
		Expect(z.Close()).To(BeTrue())

		good, err := archzip.NewUnzipper(archzip.NewBufferStore(out, nil), archzip.WithReaderPassword("s3cr3t"))
		Expect(err).ToNot(HaveOccurred())
		Expect(good.Open()).To(BeTrue())

		buf, ok := good.ExtractToBuffer("secret.txt")
		Expect(ok).To(BeTrue())
		Expect(string(buf)).To(Equal("classified"))

		bad, err := archzip.NewUnzipper(archzip.NewBufferStore(out, nil), archzip.WithReaderPassword("wrong"))
		Expect(err).ToNot(HaveOccurred())
		Expect(bad.Open()).To(BeTrue())

		_, ok = bad.ExtractToBuffer("secret.txt")
		Expect(ok).To(BeFalse())
		Expect(bad.Error()).ToNot(BeNil())
	})

	It("writes and sizes a 10000-byte entry via the stdlib codec option", func() {
		z := newZipper(archzip.WithStdlibCodec())
		Expect(z.Add(bytes.NewReader(bytes.Repeat([]byte("x"), 10000)), "big.bin", archzip.AddFlags{Level: archzip.Medium}, nil)).To(BeTrue())
		Expect(z.Close()).To(BeTrue())

		ust, err := archzip.NewUnzipper(archzip.NewBufferStore(out, nil), archzip.WithReaderStdlibCodec())
		Expect(err).ToNot(HaveOccurred())
		Expect(ust.Open()).To(BeTrue())
		Expect(ust.TotalUncompressedSize("")).To(Equal(int64(10000)))
	})

	It("preserves the full source path via AddPath with SaveHierarchy", func() {
		root := GinkgoT().TempDir()
		dir := filepath.Join(root, "data", "somefolder")
		Expect(os.MkdirAll(dir, 0755)).To(Succeed())
		Expect(os.WriteFile(filepath.Join(dir, "test.txt"), []byte("hi"), 0644)).To(Succeed())

		z := newZipper()
		Expect(z.AddPath(dir, archzip.AddFlags{SaveHierarchy: true})).To(BeTrue())
		Expect(z.Close()).To(BeTrue())

		ust, err := archzip.NewUnzipper(archzip.NewBufferStore(out, nil))
		Expect(err).ToNot(HaveOccurred())
		Expect(ust.Open()).To(BeTrue())

		entries := ust.Entries()
		Expect(entries).To(HaveLen(1))
		Expect(entries[0].Name).To(Equal(filepath.ToSlash(filepath.Join(dir, "test.txt"))))
		Expect(entries[0].Name).ToNot(Equal("somefolder/test.txt"))
	})

	It("flattens AddPath entries to their basename without SaveHierarchy", func() {
		root := GinkgoT().TempDir()
		dir := filepath.Join(root, "data", "somefolder")
		Expect(os.MkdirAll(dir, 0755)).To(Succeed())
		Expect(os.WriteFile(filepath.Join(dir, "test.txt"), []byte("hi"), 0644)).To(Succeed())

		z := newZipper()
		Expect(z.AddPath(dir, archzip.AddFlags{})).To(BeTrue())
		Expect(z.Close()).To(BeTrue())

		ust, err := archzip.NewUnzipper(archzip.NewBufferStore(out, nil))
		Expect(err).ToNot(HaveOccurred())
		Expect(ust.Open()).To(BeTrue())

		entries := ust.Entries()
		Expect(entries).To(HaveLen(1))
		Expect(entries[0].Name).To(Equal("test.txt"))
	})
})
