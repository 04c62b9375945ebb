package audit_test

import (
	"bytes"
	"os"
	"path/filepath"
	"time"

	"code.cloudfoundry.org/clock/fakeclock"

	statusbot "github.com/PartTimeHarmacist/ServerStatusBot"
	. "github.com/PartTimeHarmacist/ServerStatusBot/pkg/audit"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("FileLogger", func() {
	var (
		buf       *bytes.Buffer
		fakeClock *fakeclock.FakeClock

		subject *FileLogger
	)

	BeforeEach(func() {
		buf = new(bytes.Buffer)
		fakeClock = fakeclock.NewFakeClock(time.Date(2024, time.March, 7, 12, 30, 45, 123456000, time.UTC))

		subject = NewFileLogger(buf, WithClock(fakeClock))
	})

	Describe("#Record", func() {
		It("writes one tab-separated line per entry", func() {
			subject.Record(Entry{
				Kind:    KindInfo,
				Command: "status",
				Message: "Status command received from channel general by gamer#1234 (id: 42)",
			})

			Expect(buf.String()).To(Equal(
				"[2024-03-07 12:30:45.123456]\t[INFO]\tStatus command received from channel general by gamer#1234 (id: 42)\n"))
		})

		It("renders denials with every refused target on a single line", func() {
			subject.Record(Entry{
				Kind:    KindForbidden,
				Command: "start",
				Requester: statusbot.Identity{
					ID:      "42",
					Display: "gamer#1234",
				},
				Channel: "general",
				Targets: []string{"vanilla", "modded"},
			})

			Expect(buf.String()).To(Equal(
				"[2024-03-07 12:30:45.123456]\t[FORBIDDEN]\tFunction start was called by user gamer#1234 (id: 42) in channel general for server(s): [vanilla, modded], but user is not authorized.\n"))
		})

		It("stamps each line with the clock at record time", func() {
			subject.Record(Entry{Kind: KindWarning, Message: "first"})
			fakeClock.Increment(2 * time.Second)
			subject.Record(Entry{Kind: KindError, Message: "second"})

			Expect(buf.String()).To(Equal(
				"[2024-03-07 12:30:45.123456]\t[WARNING]\tfirst\n" +
					"[2024-03-07 12:30:47.123456]\t[ERROR]\tsecond\n"))
		})
	})

	Describe("#OpenFileLogger", func() {
		var dir string

		BeforeEach(func() {
			var err error
			dir, err = os.MkdirTemp("", "audit")
			Expect(err).NotTo(HaveOccurred())
		})

		AfterEach(func() {
			Expect(os.RemoveAll(dir)).To(Succeed())
		})

		It("appends to an existing log instead of truncating it", func() {
			path := filepath.Join(dir, "latest.log")
			Expect(os.WriteFile(path, []byte("existing line\n"), 0644)).To(Succeed())

			logger, err := OpenFileLogger(path, WithClock(fakeClock))
			Expect(err).NotTo(HaveOccurred())

			logger.Record(Entry{Kind: KindInfo, Message: "new line"})
			Expect(logger.Close()).To(Succeed())

			content, err := os.ReadFile(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(content)).To(Equal(
				"existing line\n[2024-03-07 12:30:45.123456]\t[INFO]\tnew line\n"))
		})
	})
})
