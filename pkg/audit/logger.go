package audit

import (
	statusbot "github.com/PartTimeHarmacist/ServerStatusBot"
)

// Kind is the severity class of an audit entry.
type Kind string

const (
	KindInfo      Kind = "INFO"
	KindWarning   Kind = "WARNING"
	KindError     Kind = "ERROR"
	KindForbidden Kind = "FORBIDDEN"
)

// Entry is one audited event. A FORBIDDEN entry names every denied
// target of the command in a single entry, never one entry per target.
type Entry struct {
	Kind      Kind
	Command   string
	Requester statusbot.Identity
	Channel   string
	Targets   []string
	Message   string
}

//go:generate counterfeiter . Logger

// Logger records audit entries in an append-only sink.
type Logger interface {
	Record(entry Entry)
}
