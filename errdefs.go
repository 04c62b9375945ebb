package statusbot

import "fmt"

type ErrNotFound struct {
	model string
}

func NewErrNotFound(model string) ErrNotFound {
	return ErrNotFound{
		model: model,
	}
}

func (err ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found", err.model)
}

// ErrUnreadable wraps the underlying I/O failure so callers can decide
// whether it is recoverable (permission denied) or fatal.
type ErrUnreadable struct {
	subject string
	err     error
}

func NewErrUnreadable(subject string, err error) ErrUnreadable {
	return ErrUnreadable{
		subject: subject,
		err:     err,
	}
}

func (err ErrUnreadable) Error() string {
	return fmt.Sprintf("%s unreadable: %s", err.subject, err.err)
}

func (err ErrUnreadable) Unwrap() error {
	return err.err
}
