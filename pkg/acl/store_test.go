package acl_test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"

	statusbot "github.com/PartTimeHarmacist/ServerStatusBot"
	"github.com/PartTimeHarmacist/ServerStatusBot/logx/logxfakes"
	. "github.com/PartTimeHarmacist/ServerStatusBot/pkg/acl"
	"github.com/PartTimeHarmacist/ServerStatusBot/pkg/ioutilx/ioutilxfakes"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Store", func() {
	var (
		dir  string
		path string

		logger *logxfakes.FakeLogger

		subject *Store
	)

	BeforeEach(func() {
		var err error
		dir, err = os.MkdirTemp("", "acl-store")
		Expect(err).NotTo(HaveOccurred())
		path = filepath.Join(dir, "permissions.json")

		logger = new(logxfakes.FakeLogger)
		logger.WithNameReturns(logger)
		logger.WithDataReturns(logger)

		subject = NewStore(path)
	})

	AfterEach(func() {
		Expect(os.RemoveAll(dir)).To(Succeed())
	})

	Describe("#Load", func() {
		It("creates an empty placeholder and reports the file missing", func() {
			_, err := subject.Load(logger)
			Expect(err).To(MatchError(statusbot.ErrPermissionsMissing))

			info, statErr := os.Stat(path)
			Expect(statErr).NotTo(HaveOccurred())
			Expect(info.Size()).To(BeZero())
		})

		It("parses a zero-byte file as the default document", func() {
			Expect(os.WriteFile(path, nil, 0644)).To(Succeed())

			doc, err := subject.Load(logger)
			Expect(err).NotTo(HaveOccurred())
			Expect(doc.Admins).To(BeEmpty())
			Expect(doc.Servers).To(BeEmpty())
		})

		It("reports malformed content as unreadable", func() {
			Expect(os.WriteFile(path, []byte("{not json"), 0644)).To(Succeed())

			_, err := subject.Load(logger)

			var unreadable statusbot.ErrUnreadable
			Expect(errors.As(err, &unreadable)).To(BeTrue())
		})
	})

	Describe("#Bootstrap", func() {
		It("publishes the default document when the file is missing", func() {
			Expect(subject.Bootstrap(logger)).To(Succeed())

			doc := subject.Document()
			Expect(doc.Admins).To(BeEmpty())
			Expect(doc.Servers).To(BeEmpty())
		})

		It("publishes the persisted document when the file exists", func() {
			seed := NewStore(path)
			Expect(seed.Grant(logger, "vanilla", "start", "user-a")).To(Succeed())

			Expect(subject.Bootstrap(logger)).To(Succeed())

			Expect(subject.Document().AuthorizedServers("user-a", "start")).To(Equal([]string{"vanilla"}))
		})

		It("refuses to run when the file cannot be parsed", func() {
			Expect(os.WriteFile(path, []byte("{not json"), 0644)).To(Succeed())

			err := subject.Bootstrap(logger)

			var unreadable statusbot.ErrUnreadable
			Expect(errors.As(err, &unreadable)).To(BeTrue())
		})

		It("refuses to run when the path cannot be read at all", func() {
			Expect(os.Mkdir(path, 0755)).To(Succeed())

			Expect(subject.Bootstrap(logger)).To(HaveOccurred())
		})

		It("proceeds with the default document when the file is permission-denied", func() {
			reader := new(ioutilxfakes.FakeFileReader)
			reader.ReadFileReturns(nil, &fs.PathError{
				Op:   "open",
				Path: path,
				Err:  syscall.EACCES,
			})
			subject = NewStore(path, WithFileReader(reader))

			Expect(subject.Bootstrap(logger)).To(Succeed())

			doc := subject.Document()
			Expect(doc.Admins).To(BeEmpty())
			Expect(doc.Servers).To(BeEmpty())
		})

		It("still classifies a wrapped permission error as recoverable", func() {
			reader := new(ioutilxfakes.FakeFileReader)
			reader.ReadFileReturns(nil, &fs.PathError{
				Op:   "open",
				Path: path,
				Err:  syscall.EACCES,
			})
			subject = NewStore(path, WithFileReader(reader))

			_, err := subject.Load(logger)

			Expect(errors.Is(err, fs.ErrPermission)).To(BeTrue())
		})
	})

	Describe("#Grant", func() {
		It("persists before returning, so a fresh store sees the change", func() {
			Expect(subject.Grant(logger, "vanilla", "start", "user-a")).To(Succeed())

			fresh := NewStore(path)
			Expect(fresh.Bootstrap(logger)).To(Succeed())

			Expect(fresh.Document().AuthorizedServers("user-a", "start")).To(Equal([]string{"vanilla"}))
		})

		It("publishes a new snapshot without touching the old one", func() {
			before := subject.Document()

			Expect(subject.Grant(logger, "vanilla", "start", "user-a")).To(Succeed())

			Expect(before.Servers).To(BeEmpty())
			Expect(subject.Document().AuthorizedServers("user-a", "start")).To(Equal([]string{"vanilla"}))
		})

		It("fails when the backing file cannot be replaced", func() {
			Expect(os.RemoveAll(dir)).To(Succeed())

			Expect(subject.Grant(logger, "vanilla", "start", "user-a")).To(HaveOccurred())
			Expect(subject.Document().Servers).To(BeEmpty())
		})
	})

	Describe("#Revoke", func() {
		It("removes a granted identity and persists the result", func() {
			Expect(subject.Grant(logger, "vanilla", "start", "user-a")).To(Succeed())
			Expect(subject.Revoke(logger, "vanilla", "start", "user-a")).To(Succeed())

			fresh := NewStore(path)
			Expect(fresh.Bootstrap(logger)).To(Succeed())

			Expect(fresh.Document().AuthorizedServers("user-a", "start")).To(BeEmpty())
			entry, ok := fresh.Document().Entry("vanilla")
			Expect(ok).To(BeTrue())
			Expect(entry.Actions).To(HaveKeyWithValue("start", []string{}))
		})

		It("revoking an absent grant leaves the file content unchanged", func() {
			Expect(subject.Revoke(logger, "vanilla", "start", "user-a")).To(Succeed())
			first, err := os.ReadFile(path)
			Expect(err).NotTo(HaveOccurred())

			Expect(subject.Revoke(logger, "vanilla", "start", "user-a")).To(Succeed())
			second, err := os.ReadFile(path)
			Expect(err).NotTo(HaveOccurred())

			Expect(second).To(Equal(first))
		})
	})
})
