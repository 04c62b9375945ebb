package acl_test

import (
	"encoding/json"

	. "github.com/PartTimeHarmacist/ServerStatusBot/pkg/acl"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Document", func() {
	var subject *Document

	BeforeEach(func() {
		subject = NewDocument()
	})

	Describe("#IsAdmin", func() {
		It("reports only listed identities as admins", func() {
			subject.Admins = []string{"user-a", "user-b"}

			Expect(subject.IsAdmin("user-a")).To(BeTrue())
			Expect(subject.IsAdmin("user-b")).To(BeTrue())
			Expect(subject.IsAdmin("user-c")).To(BeFalse())
		})
	})

	Describe("#EnsureEntry", func() {
		It("creates an entry with every default action key empty", func() {
			entry := subject.EnsureEntry("vanilla")

			Expect(entry.Name).To(Equal("vanilla"))
			Expect(entry.Actions).To(HaveLen(len(DefaultActions)))
			for _, action := range DefaultActions {
				Expect(entry.Actions).To(HaveKeyWithValue(action, []string{}))
			}
		})

		It("returns the existing entry on later calls", func() {
			entry := subject.EnsureEntry("vanilla")
			entry.Grant("start", "user-a")

			again := subject.EnsureEntry("vanilla")

			Expect(again).To(BeIdenticalTo(entry))
			Expect(subject.Servers).To(HaveLen(1))
		})
	})

	Describe("#AuthorizedServers", func() {
		It("returns the servers naming the identity under the action, in document order", func() {
			subject.EnsureEntry("vanilla").Grant("start", "user-a")
			subject.EnsureEntry("modded").Grant("start", "user-b")
			subject.EnsureEntry("creative").Grant("start", "user-a")

			Expect(subject.AuthorizedServers("user-a", "start")).To(Equal([]string{"vanilla", "creative"}))
		})

		It("treats a missing action key as an empty set", func() {
			entry := subject.EnsureEntry("vanilla")
			delete(entry.Actions, "start")

			Expect(subject.AuthorizedServers("user-a", "start")).To(BeEmpty())
			Expect(entry.Authorized("user-a", "start")).To(BeFalse())
		})
	})

	Describe("#Grant", func() {
		It("is idempotent", func() {
			entry := subject.EnsureEntry("vanilla")

			entry.Grant("start", "user-a")
			entry.Grant("start", "user-a")

			Expect(entry.Actions["start"]).To(Equal([]string{"user-a"}))
		})

		It("creates unknown action keys on demand", func() {
			entry := subject.EnsureEntry("vanilla")

			entry.Grant("decommission", "user-a")

			Expect(entry.Actions["decommission"]).To(Equal([]string{"user-a"}))
		})
	})

	Describe("#Revoke", func() {
		It("removes the identity and keeps the emptied key", func() {
			entry := subject.EnsureEntry("vanilla")
			entry.Grant("start", "user-a")

			entry.Revoke("start", "user-a")

			Expect(entry.Actions).To(HaveKeyWithValue("start", []string{}))
		})

		It("materializes an absent action key", func() {
			entry := subject.EnsureEntry("vanilla")

			entry.Revoke("decommission", "user-a")

			Expect(entry.Actions).To(HaveKeyWithValue("decommission", []string{}))
		})

		It("is a no-op for an identity that is not present", func() {
			entry := subject.EnsureEntry("vanilla")
			entry.Grant("start", "user-a")

			entry.Revoke("start", "user-b")

			Expect(entry.Actions["start"]).To(Equal([]string{"user-a"}))
		})
	})

	Describe("#Clone", func() {
		It("produces an independent copy", func() {
			subject.Admins = []string{"user-a"}
			subject.EnsureEntry("vanilla").Grant("start", "user-b")

			clone := subject.Clone()
			clone.Admins = append(clone.Admins, "user-c")
			clone.EnsureEntry("vanilla").Grant("start", "user-d")
			clone.EnsureEntry("modded")

			Expect(subject.Admins).To(Equal([]string{"user-a"}))
			Expect(subject.Servers).To(HaveLen(1))
			Expect(subject.Servers[0].Actions["start"]).To(Equal([]string{"user-b"}))
		})
	})

	Describe("serialization", func() {
		It("nests admins under users and flattens server entries", func() {
			subject.Admins = []string{"user-a"}
			entry := subject.EnsureEntry("vanilla")
			entry.Grant("start", "user-b")

			data, err := Serialize(subject)
			Expect(err).NotTo(HaveOccurred())

			var raw map[string]json.RawMessage
			Expect(json.Unmarshal(data, &raw)).To(Succeed())
			Expect(raw).To(HaveKey("servers"))
			Expect(raw).To(HaveKey("users"))

			var users map[string][]string
			Expect(json.Unmarshal(raw["users"], &users)).To(Succeed())
			Expect(users).To(HaveKeyWithValue("admins", []string{"user-a"}))

			var servers []map[string]json.RawMessage
			Expect(json.Unmarshal(raw["servers"], &servers)).To(Succeed())
			Expect(servers).To(HaveLen(1))
			Expect(servers[0]).To(HaveKey("name"))
			Expect(servers[0]).To(HaveKey("start"))
		})

		It("round-trips through the wire shape", func() {
			subject.Admins = []string{"user-a"}
			entry := subject.EnsureEntry("vanilla")
			entry.Grant("start", "user-b")
			entry.Grant("decommission", "user-b")

			data, err := Serialize(subject)
			Expect(err).NotTo(HaveOccurred())

			parsed := NewDocument()
			Expect(json.Unmarshal(data, parsed)).To(Succeed())

			Expect(parsed.Admins).To(Equal([]string{"user-a"}))
			reloaded, ok := parsed.Entry("vanilla")
			Expect(ok).To(BeTrue())
			Expect(reloaded.Actions).To(Equal(entry.Actions))
		})

		It("is byte-stable for identical content", func() {
			subject.Admins = []string{"user-a"}
			entry := subject.EnsureEntry("vanilla")
			entry.Grant("start", "user-b")
			entry.Grant("kill", "user-b")

			first, err := Serialize(subject)
			Expect(err).NotTo(HaveOccurred())

			for i := 0; i < 10; i++ {
				again, err := Serialize(subject)
				Expect(err).NotTo(HaveOccurred())
				Expect(again).To(Equal(first))
			}
		})

		It("preserves action keys it does not recognize", func() {
			raw := []byte(`{
    "servers": [
        {
            "decommission": ["user-a"],
            "name": "vanilla"
        }
    ],
    "users": {
        "admins": []
    }
}`)

			parsed := NewDocument()
			Expect(json.Unmarshal(raw, parsed)).To(Succeed())

			entry, ok := parsed.Entry("vanilla")
			Expect(ok).To(BeTrue())
			Expect(entry.Authorized("user-a", "decommission")).To(BeTrue())

			data, err := Serialize(parsed)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(data)).To(ContainSubstring(`"decommission"`))
		})
	})
})
