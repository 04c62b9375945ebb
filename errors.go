package statusbot

import "errors"

var (
	ErrPermissionsMissing = errors.New("statusbot: permissions file does not exist")
	ErrUnknownCommand     = errors.New("statusbot: unknown command")

	ErrTargetNotFound = NewErrNotFound("target")
)
