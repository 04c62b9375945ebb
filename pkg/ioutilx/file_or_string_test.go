package ioutilx_test

import (
	"os"
	"path/filepath"

	. "github.com/PartTimeHarmacist/ServerStatusBot/pkg/ioutilx"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("FileOrString", func() {
	var dir string

	BeforeEach(func() {
		var err error
		dir, err = os.MkdirTemp("", "ioutilx")
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		Expect(os.RemoveAll(dir)).To(Succeed())
	})

	It("returns a non-path value literally", func() {
		data, err := FileOrString("sekrit-token").Bytes()
		Expect(err).NotTo(HaveOccurred())
		Expect(data).To(Equal([]byte("sekrit-token")))
	})

	It("expands escaped newlines in literal values", func() {
		data, err := FileOrString(`line1\nline2`).Bytes()
		Expect(err).NotTo(HaveOccurred())
		Expect(data).To(Equal([]byte("line1\nline2")))
	})

	It("reads the contents of an existing file", func() {
		path := filepath.Join(dir, "token")
		Expect(os.WriteFile(path, []byte("sekrit-token\n"), 0600)).To(Succeed())

		data, err := FileOrString(path).Bytes()
		Expect(err).NotTo(HaveOccurred())
		Expect(data).To(Equal([]byte("sekrit-token\n")))
	})

	It("refuses a directory", func() {
		_, err := FileOrString(dir).Bytes()
		Expect(err).To(MatchError(ContainSubstring("is a directory")))
	})
})
