package audit

import "code.cloudfoundry.org/clock"

type Option func(*options)

func WithClock(c clock.Clock) Option {
	return func(o *options) {
		o.clock = c
	}
}

type options struct {
	clock clock.Clock
}

func defaultOptions() *options {
	return &options{
		clock: clock.NewClock(),
	}
}
