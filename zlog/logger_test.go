package zlog_test

import (
	"bytes"

	"github.com/nabbar/zipper/zlog"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Logger", func() {
	It("Noop never writes anywhere", func() {
		Expect(func() { zlog.Noop.Debugf("x %d", 1) }).ToNot(Panic())
	})

	It("New writes formatted lines to the given writer", func() {
		buf := &bytes.Buffer{}
		l := zlog.New(buf)
		Expect(l.SetLevel("debug")).To(Succeed())
		l.Debugf("hello %s", "world")
		Expect(buf.String()).To(ContainSubstring("hello world"))
	})
})
