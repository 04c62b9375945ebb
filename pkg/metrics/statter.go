package metrics

import "time"

//go:generate counterfeiter . Statter

type Statter interface {
	Inc(metric string, value int64)
	TimingDuration(metric string, value time.Duration)
}

// NoopStatter stands in when no statsd endpoint is configured.
type NoopStatter struct{}

func (NoopStatter) Inc(string, int64)                    {}
func (NoopStatter) TimingDuration(string, time.Duration) {}
