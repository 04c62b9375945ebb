package main

const (
	starting = "starting"
	finished = "finished"

	missingToken            = "missing-token"
	failedToReadToken       = "failed-to-read-token"
	failedToConnectToStatsD = "failed-to-connect-to-statsd"
	failedToOpenAuditLog    = "failed-to-open-audit-log"
	failedToLoadPermissions = "failed-to-load-permissions"
	failedToCreateBackend   = "failed-to-create-workload-backend"
	failedToCreateFrontEnd  = "failed-to-create-front-end"
)
