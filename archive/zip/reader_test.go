package zip_test

import (
	"strings"
	"time"

	archzip "github.com/nabbar/zipper/archive/zip"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Unzipper", func() {
	buildArchive := func() []byte {
		var out []byte
		st := archzip.NewBufferStore(nil, &out)
		z, err := archzip.NewZipper(st)
		Expect(err).ToNot(HaveOccurred())
		Expect(z.Open()).To(BeTrue())

		ts := time.Date(2023, time.June, 15, 12, 30, 0, 0, time.UTC)
		Expect(z.Add(strings.NewReader("alpha"), "notes/alpha.txt", archzip.AddFlags{}, &ts)).To(BeTrue())
		Expect(z.Add(strings.NewReader("beta"), "notes/beta.txt", archzip.AddFlags{}, &ts)).To(BeTrue())
		Expect(z.Add(strings.NewReader("gamma"), "readme.md", archzip.AddFlags{}, &ts)).To(BeTrue())
		Expect(z.Close()).To(BeTrue())

		return out
	}

	It("enumerates every entry with a broken-down timestamp", func() {
		ust, err := archzip.NewUnzipper(archzip.NewBufferStore(buildArchive(), nil))
		Expect(err).ToNot(HaveOccurred())
		Expect(ust.Open()).To(BeTrue())

		entries := ust.Entries()
		Expect(entries).To(HaveLen(3))

		info, ok := ust.Locate("notes/alpha.txt")
		Expect(ok).To(BeTrue())
		Expect(info.Valid()).To(BeTrue())
		Expect(info.String()).To(Equal("2023-06-15 12:30:00"))
	})

	It("filters entries by glob", func() {
		ust, err := archzip.NewUnzipper(archzip.NewBufferStore(buildArchive(), nil))
		Expect(err).ToNot(HaveOccurred())
		Expect(ust.Open()).To(BeTrue())

		matches := ust.EntriesMatching("notes/*")
		Expect(matches).To(HaveLen(2))
	})

	It("sums uncompressed size across entries, optionally glob-scoped", func() {
		ust, err := archzip.NewUnzipper(archzip.NewBufferStore(buildArchive(), nil))
		Expect(err).ToNot(HaveOccurred())
		Expect(ust.Open()).To(BeTrue())

		Expect(ust.TotalUncompressedSize("")).To(Equal(int64(len("alpha") + len("beta") + len("gamma"))))
		Expect(ust.TotalUncompressedSize("notes/*")).To(Equal(int64(len("alpha") + len("beta"))))
	})

	It("reports ErrNotOpen-backed failures before Open is called", func() {
		ust, err := archzip.NewUnzipper(archzip.NewBufferStore(buildArchive(), nil))
		Expect(err).ToNot(HaveOccurred())

		Expect(ust.Entries()).To(BeNil())
		Expect(ust.Error()).ToNot(BeNil())
	})

	It("fails Locate for a name that isn't in the archive", func() {
		ust, err := archzip.NewUnzipper(archzip.NewBufferStore(buildArchive(), nil))
		Expect(err).ToNot(HaveOccurred())
		Expect(ust.Open()).To(BeTrue())

		_, ok := ust.Locate("missing.txt")
		Expect(ok).To(BeFalse())
		Expect(ust.Error()).ToNot(BeNil())
	})
})
