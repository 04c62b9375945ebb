package discord

const (
	connected                 = "connected"
	guildJoined               = "guild-joined"
	unknownCommand            = "unknown-command"
	failedToConnect           = "failed-to-connect"
	failedToRoute             = "failed-to-route-command"
	failedToSendReply         = "failed-to-send-reply"
	failedToOpenDirectChannel = "failed-to-open-direct-channel"
	failedToRedactMessage     = "failed-to-redact-message"
)
