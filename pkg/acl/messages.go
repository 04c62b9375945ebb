package acl

const (
	starting = "starting"
	finished = "finished"

	createdPlaceholder = "created-empty-permissions-placeholder"

	failedToCreatePlaceholder    = "failed-to-create-permissions-placeholder"
	failedToReadPermissions      = "failed-to-read-permissions-file"
	failedToSerializePermissions = "failed-to-serialize-permissions"
	failedToWritePermissions     = "failed-to-write-permissions-file"
)
