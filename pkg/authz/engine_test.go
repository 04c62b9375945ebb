package authz_test

import (
	"context"
	"errors"

	"github.com/PartTimeHarmacist/ServerStatusBot/logx/logxfakes"
	"github.com/PartTimeHarmacist/ServerStatusBot/pkg/acl"
	. "github.com/PartTimeHarmacist/ServerStatusBot/pkg/authz"
	"github.com/PartTimeHarmacist/ServerStatusBot/pkg/authz/authzfakes"
	"github.com/PartTimeHarmacist/ServerStatusBot/pkg/workload/workloadfakes"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Engine", func() {
	var (
		doc          *acl.Document
		fakeProvider *authzfakes.FakeDocumentProvider
		fakeBackend  *workloadfakes.FakeBackend
		fakeLogger   *logxfakes.FakeLogger

		subject *Engine
	)

	BeforeEach(func() {
		doc = acl.NewDocument()
		doc.Admins = []string{"admin-id"}
		doc.EnsureEntry("vanilla").Grant("start", "user-a")
		doc.EnsureEntry("modded").Grant("start", "user-b")

		fakeProvider = new(authzfakes.FakeDocumentProvider)
		fakeProvider.DocumentReturns(doc)

		fakeBackend = new(workloadfakes.FakeBackend)
		fakeBackend.ListAllReturns([]string{"vanilla", "modded", "unlisted"}, nil)

		fakeLogger = new(logxfakes.FakeLogger)
		fakeLogger.WithNameReturns(fakeLogger)
		fakeLogger.WithDataReturns(fakeLogger)

		subject = NewEngine(fakeProvider, fakeBackend)
	})

	Describe("#Snapshot", func() {
		It("pins the document for the life of the view", func() {
			view := subject.Snapshot()

			replacement := acl.NewDocument()
			fakeProvider.DocumentReturns(replacement)

			Expect(view.Document()).To(BeIdenticalTo(doc))
		})
	})

	Describe("View", func() {
		var view *View

		BeforeEach(func() {
			view = subject.Snapshot()
		})

		Describe("#AuthorizedTargets", func() {
			It("gives admins the full backend universe, entries or not", func() {
				targets, err := view.AuthorizedTargets(context.Background(), fakeLogger, "admin-id", "start")
				Expect(err).NotTo(HaveOccurred())
				Expect(targets).To(Equal([]string{"vanilla", "modded", "unlisted"}))
			})

			It("gives everyone else exactly the servers listing them under the action", func() {
				targets, err := view.AuthorizedTargets(context.Background(), fakeLogger, "user-a", "start")
				Expect(err).NotTo(HaveOccurred())
				Expect(targets).To(Equal([]string{"vanilla"}))

				Expect(fakeBackend.ListAllCallCount()).To(BeZero())
			})

			It("returns nothing for an action the identity holds nowhere", func() {
				targets, err := view.AuthorizedTargets(context.Background(), fakeLogger, "user-a", "kill")
				Expect(err).NotTo(HaveOccurred())
				Expect(targets).To(BeEmpty())
			})

			It("lists the backend universe at most once per view", func() {
				for i := 0; i < 5; i++ {
					_, err := view.AuthorizedTargets(context.Background(), fakeLogger, "admin-id", "start")
					Expect(err).NotTo(HaveOccurred())
				}

				Expect(fakeBackend.ListAllCallCount()).To(Equal(1))
			})

			It("propagates backend list failures", func() {
				listErr := errors.New("daemon unreachable")
				fakeBackend.ListAllReturns(nil, listErr)

				_, err := view.AuthorizedTargets(context.Background(), fakeLogger, "admin-id", "start")
				Expect(err).To(MatchError(listErr))
			})
		})

		Describe("#IsAuthorized", func() {
			It("admits an admin for a target with no document entry", func() {
				ok, err := view.IsAuthorized(context.Background(), fakeLogger, "admin-id", "start", "unlisted")
				Expect(err).NotTo(HaveOccurred())
				Expect(ok).To(BeTrue())
			})

			It("rejects a non-admin for a target that does not list them", func() {
				ok, err := view.IsAuthorized(context.Background(), fakeLogger, "user-a", "start", "modded")
				Expect(err).NotTo(HaveOccurred())
				Expect(ok).To(BeFalse())
			})

			It("rejects an admin for a target outside the backend universe", func() {
				ok, err := view.IsAuthorized(context.Background(), fakeLogger, "admin-id", "start", "ghost")
				Expect(err).NotTo(HaveOccurred())
				Expect(ok).To(BeFalse())
			})
		})

		Describe("#ResolveTargets", func() {
			It("passes a non-empty request through unchanged and unmarked", func() {
				resolution, err := view.ResolveTargets(context.Background(), fakeLogger, "user-a", "start", []string{"modded", "vanilla"})
				Expect(err).NotTo(HaveOccurred())
				Expect(resolution.Targets).To(Equal([]string{"modded", "vanilla"}))
				Expect(resolution.Autofilled).To(BeFalse())
			})

			It("autofills an empty request from the authorized set", func() {
				resolution, err := view.ResolveTargets(context.Background(), fakeLogger, "user-a", "start", nil)
				Expect(err).NotTo(HaveOccurred())
				Expect(resolution.Targets).To(Equal([]string{"vanilla"}))
				Expect(resolution.Autofilled).To(BeTrue())
			})

			It("autofills admins from the backend universe", func() {
				resolution, err := view.ResolveTargets(context.Background(), fakeLogger, "admin-id", "start", nil)
				Expect(err).NotTo(HaveOccurred())
				Expect(resolution.Targets).To(Equal([]string{"vanilla", "modded", "unlisted"}))
				Expect(resolution.Autofilled).To(BeTrue())
			})

			It("fails when the admin universe cannot be listed", func() {
				fakeBackend.ListAllReturns(nil, errors.New("daemon unreachable"))

				_, err := view.ResolveTargets(context.Background(), fakeLogger, "admin-id", "start", nil)
				Expect(err).To(HaveOccurred())
			})
		})
	})
})
