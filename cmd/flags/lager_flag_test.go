package flags_test

import (
	goflags "github.com/jessevdk/go-flags"

	"github.com/PartTimeHarmacist/ServerStatusBot/cmd/flags"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("LagerFlag", func() {
	type options struct {
		Logger flags.LagerFlag
	}

	parse := func(args ...string) (*options, error) {
		opts := &options{}
		parser := goflags.NewParser(opts, goflags.None)
		parser.NamespaceDelimiter = "-"
		_, err := parser.ParseArgs(args)
		return opts, err
	}

	It("defaults to info", func() {
		opts, err := parse()
		Expect(err).NotTo(HaveOccurred())
		Expect(opts.Logger.LogLevel).To(Equal(flags.LogLevelInfo))
	})

	It("accepts each supported level", func() {
		for _, level := range []flags.LogLevel{flags.LogLevelDebug, flags.LogLevelInfo, flags.LogLevelError} {
			opts, err := parse("--log-level=" + string(level))
			Expect(err).NotTo(HaveOccurred())
			Expect(opts.Logger.LogLevel).To(Equal(level))

			logger := opts.Logger.Logger("flags-test")
			Expect(logger).NotTo(BeNil())
		}
	})

	It("rejects levels outside the choice set", func() {
		_, err := parse("--log-level=fatal")
		Expect(err).To(HaveOccurred())
	})
})
