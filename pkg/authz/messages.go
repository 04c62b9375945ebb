package authz

const (
	failedToListTargets = "failed-to-list-backend-targets"
)
