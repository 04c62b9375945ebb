package discord

const DefaultCommandPrefix = "$"

type options struct {
	prefix string
}

func defaultOptions() *options {
	return &options{
		prefix: DefaultCommandPrefix,
	}
}

type Option func(*options)

func WithCommandPrefix(prefix string) Option {
	return func(o *options) {
		o.prefix = prefix
	}
}
