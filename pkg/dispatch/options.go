package dispatch

import (
	"time"

	"code.cloudfoundry.org/clock"

	"github.com/PartTimeHarmacist/ServerStatusBot/pkg/metrics"
)

// DefaultCallTimeout bounds one backend call for one target. A timed
// out call yields the not-found outcome for that target but is logged
// as a timeout.
const DefaultCallTimeout = 30 * time.Second

type Option func(*options)

func WithClock(c clock.Clock) Option {
	return func(o *options) {
		o.clock = c
	}
}

func WithStatter(s metrics.Statter) Option {
	return func(o *options) {
		o.statter = s
	}
}

func WithCallTimeout(timeout time.Duration) Option {
	return func(o *options) {
		o.callTimeout = timeout
	}
}

type options struct {
	clock       clock.Clock
	statter     metrics.Statter
	callTimeout time.Duration
}

func defaultOptions() *options {
	return &options{
		clock:       clock.NewClock(),
		statter:     metrics.NoopStatter{},
		callTimeout: DefaultCallTimeout,
	}
}
