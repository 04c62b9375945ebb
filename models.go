package statusbot

import "time"

// Identity is a requester as reported by the front end. ID is the
// stable platform identifier used in ACL entries; Display is only for
// humans reading logs and replies.
type Identity struct {
	ID      string
	Display string
}

// Invocation is one parsed command delivered by the front end.
type Invocation struct {
	ID        string
	Requester Identity
	Command   string
	Targets   []string
	Args      []string
	Channel   string
	Private   bool

	// MentionID is the platform-resolved identity of a user referenced
	// in the message body, when the platform supports mentions. It is
	// preferred over a raw identity argument.
	MentionID string
}

// ReplyField is one (name, outcome) pair in an aggregate reply.
type ReplyField struct {
	Name   string
	Value  string
	Inline bool
}

// Reply is the structured result of one invocation. Fields carry
// per-target outcomes, Text carries free-form output, and Direct is an
// acknowledgment delivered privately to the requester, distinct from
// the public reply channel.
type Reply struct {
	Title  string
	Fields []ReplyField
	Text   string
	Direct string

	// RedactAfter asks the front end to remove the public invocation
	// message after this delay. Zero means leave it alone.
	RedactAfter time.Duration
}

// Empty reports whether the reply carries nothing to deliver.
func (r Reply) Empty() bool {
	return r.Title == "" && len(r.Fields) == 0 && r.Text == "" && r.Direct == ""
}
