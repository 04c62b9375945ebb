package acl

import "github.com/PartTimeHarmacist/ServerStatusBot/pkg/ioutilx"

type Option func(*options)

// WithFileReader swaps the read seam, letting tests inject the exact
// filesystem failure whose kind drives the recovery policy.
func WithFileReader(reader ioutilx.FileReader) Option {
	return func(o *options) {
		o.reader = reader
	}
}

type options struct {
	reader ioutilx.FileReader
}

func defaultOptions() *options {
	return &options{
		reader: ioutilx.InjectableIOReader{},
	}
}
