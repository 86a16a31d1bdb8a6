package zipcfg_test

import (
	"os"

	"github.com/nabbar/zipper/zipcfg"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("CheckMaxUncompressed", func() {
	It("allows anything when no ceiling is set", func() {
		Expect(zipcfg.CheckMaxUncompressed(1<<40, zipcfg.Options{})).To(BeTrue())
	})

	It("rejects a sum over the configured ceiling", func() {
		opts := zipcfg.Options{MaxUncompressedGiB: 1}
		Expect(zipcfg.CheckMaxUncompressed(1<<30, opts)).To(BeTrue())
		Expect(zipcfg.CheckMaxUncompressed(1<<30+1, opts)).To(BeFalse())
	})
})

var _ = Describe("TempDir", func() {
	It("honors TMPDIR when set", func() {
		old, had := os.LookupEnv("TMPDIR")
		defer func() {
			if had {
				_ = os.Setenv("TMPDIR", old)
			} else {
				_ = os.Unsetenv("TMPDIR")
			}
		}()

		_ = os.Setenv("TMPDIR", "/custom/tmp")
		Expect(zipcfg.TempDir()).To(Equal("/custom/tmp"))
	})
})
