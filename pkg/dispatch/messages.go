package dispatch

const (
	starting = "starting"
	finished = "finished"

	commandDisabled = "command-disabled"

	failedToAuthorize            = "failed-to-authorize"
	failedToRunBackendCall       = "failed-to-run-backend-call"
	backendCallTimedOut          = "backend-call-timed-out"
	failedToPersistPermissions   = "failed-to-persist-permissions"
	failedToSerializePermissions = "failed-to-serialize-permissions"
)
