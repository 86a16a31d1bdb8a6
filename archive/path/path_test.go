package path_test

import (
	zpath "github.com/nabbar/zipper/archive/path"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Normalize", func() {
	It("collapses dot segments", func() {
		Expect(zpath.Normalize("foo/./bar")).To(Equal("foo/bar"))
	})

	It("collapses a relative .. by popping the previous segment", func() {
		Expect(zpath.Normalize("foo/../Test1")).To(Equal("Test1"))
	})

	It("keeps a leading .. on a relative path", func() {
		Expect(zpath.Normalize("../foo")).To(Equal("../foo"))
	})

	It("drops a .. that would escape an absolute root", func() {
		Expect(zpath.Normalize("/../foo")).To(Equal("/foo"))
	})

	It("converts backslashes to the archive separator", func() {
		Expect(zpath.Normalize(`a\b\c`)).To(Equal("a/b/c"))
	})

	It("maps empty input to a dot", func() {
		Expect(zpath.Normalize("")).To(Equal("."))
	})
})

var _ = Describe("ValidateEntryName", func() {
	It("flags empty names", func() {
		Expect(zpath.ValidateEntryName("")).To(Equal(zpath.EmptyEntry))
	})

	It("flags control characters", func() {
		Expect(zpath.ValidateEntryName("foo\x01bar")).To(Equal(zpath.ControlCharacters))
	})

	It("flags rooted paths", func() {
		Expect(zpath.ValidateEntryName("/etc/passwd")).To(Equal(zpath.AbsolutePath))
	})

	It("flags leading ..", func() {
		Expect(zpath.ValidateEntryName("../escape")).To(Equal(zpath.ZipSlip))
	})

	It("accepts a normal relative name", func() {
		Expect(zpath.ValidateEntryName("dir/file.txt")).To(Equal(zpath.Valid))
	})
})

var _ = Describe("ZipSlipCheck", func() {
	It("accepts an entry nested under the destination", func() {
		ok, _ := zpath.ZipSlipCheck("/tmp/out", "dir/file.txt")
		Expect(ok).To(BeTrue())
	})

	It("rejects an entry that escapes the destination", func() {
		ok, _ := zpath.ZipSlipCheck("/tmp/out", "../../etc/passwd")
		Expect(ok).To(BeFalse())
	})
})

var _ = Describe("GlobToRegex", func() {
	It("matches everything for an empty pattern", func() {
		ok, err := zpath.Match("", "anything/at/all.txt")
		Expect(err).ToNot(HaveOccurred())
		Expect(ok).To(BeTrue())
	})

	It("maps * to a run of any characters", func() {
		ok, err := zpath.Match("*.txt", "dir/file.txt")
		Expect(err).ToNot(HaveOccurred())
		Expect(ok).To(BeTrue())
	})

	It("escapes regex metacharacters literally", func() {
		ok, err := zpath.Match("a.b", "aXb")
		Expect(err).ToNot(HaveOccurred())
		Expect(ok).To(BeFalse())

		ok, err = zpath.Match("a.b", "a.b")
		Expect(err).ToNot(HaveOccurred())
		Expect(ok).To(BeTrue())
	})
})
