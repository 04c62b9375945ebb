package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"code.cloudfoundry.org/clock"
	"github.com/cactus/go-statsd-client/statsd"
	flags "github.com/jessevdk/go-flags"

	cmdflags "github.com/PartTimeHarmacist/ServerStatusBot/cmd/flags"
	"github.com/PartTimeHarmacist/ServerStatusBot/logx"
	"github.com/PartTimeHarmacist/ServerStatusBot/pkg/acl"
	"github.com/PartTimeHarmacist/ServerStatusBot/pkg/audit"
	"github.com/PartTimeHarmacist/ServerStatusBot/pkg/authz"
	"github.com/PartTimeHarmacist/ServerStatusBot/pkg/dispatch"
	"github.com/PartTimeHarmacist/ServerStatusBot/pkg/frontend/discord"
	"github.com/PartTimeHarmacist/ServerStatusBot/pkg/ioutilx"
	"github.com/PartTimeHarmacist/ServerStatusBot/pkg/metrics"
	"github.com/PartTimeHarmacist/ServerStatusBot/pkg/metrics/statsdx"
	"github.com/PartTimeHarmacist/ServerStatusBot/pkg/workload/docker"
)

const tokenEnvVar = "DISCORD_TOKEN_CARINAE_SERVER_BOT"

type options struct {
	Logger cmdflags.LagerFlag

	StatsD statsDOptions `group:"StatsD" namespace:"statsd"`

	PermissionsFile string        `long:"permissions-file" description:"File path of the permissions document" default:"permissions.json"`
	AuditLog        string        `long:"audit-log" description:"File path of the security event log" default:"latest.log"`
	CommandPrefix   string        `long:"command-prefix" description:"Prefix that marks a message as a command" default:"$"`
	CallTimeout     time.Duration `long:"call-timeout" description:"Time after which a workload call is abandoned" default:"30s"`
}

type statsDOptions struct {
	Hostname string `long:"hostname" description:"Hostname used to connect to StatsD server"`
	Port     int    `long:"port" description:"Port used to connect to StatsD server" default:"8125"`
}

func main() {
	parserOpts := &options{}
	parser := flags.NewParser(parserOpts, flags.Default)
	parser.NamespaceDelimiter = "-"

	_, err := parser.Parse()
	if err != nil {
		os.Exit(1)
	}

	logger := parserOpts.Logger.Logger("statusbot")

	logger.Debug(starting)
	defer logger.Debug(finished)

	// The env var may hold either the token itself or the path of a
	// file holding it.
	rawToken := os.Getenv(tokenEnvVar)
	if rawToken == "" {
		logger.Error(missingToken, nil, logx.Data{Key: "env-var", Value: tokenEnvVar})
		os.Exit(1)
	}
	tokenBytes, err := ioutilx.FileOrString(rawToken).Bytes()
	if err != nil {
		logger.Error(failedToReadToken, err)
		os.Exit(1)
	}
	token := strings.TrimSpace(string(tokenBytes))

	var statter metrics.Statter = metrics.NoopStatter{}
	if parserOpts.StatsD.Hostname != "" {
		statsDAddr := net.JoinHostPort(parserOpts.StatsD.Hostname, strconv.Itoa(parserOpts.StatsD.Port))
		statsDClient, err := statsd.NewBufferedClient(statsDAddr, "", 0, 0)
		if err != nil {
			logger.Error(failedToConnectToStatsD, err, logx.Data{Key: "addr", Value: statsDAddr})
			os.Exit(1)
		}
		defer statsDClient.Close()

		statter = statsdx.NewStatter(logger.WithName("statsd"), statsDClient)
	}

	auditLogger, err := audit.OpenFileLogger(parserOpts.AuditLog)
	if err != nil {
		logger.Error(failedToOpenAuditLog, err, logx.Data{Key: "path", Value: parserOpts.AuditLog})
		os.Exit(1)
	}
	defer auditLogger.Close()

	store := acl.NewStore(parserOpts.PermissionsFile)
	if err := store.Bootstrap(logger.WithName("permissions")); err != nil {
		logger.Error(failedToLoadPermissions, err, logx.Data{Key: "path", Value: parserOpts.PermissionsFile})
		os.Exit(1)
	}

	backend, err := docker.NewEnvBackend()
	if err != nil {
		logger.Error(failedToCreateBackend, err)
		os.Exit(1)
	}

	engine := authz.NewEngine(store, backend)
	router := dispatch.NewRouter(logger, auditLogger, store, engine, backend,
		dispatch.WithStatter(statter),
		dispatch.WithClock(clock.NewClock()),
		dispatch.WithCallTimeout(parserOpts.CallTimeout),
	)

	frontEnd, err := discord.NewFrontEnd(logger, router, token,
		discord.WithCommandPrefix(parserOpts.CommandPrefix),
	)
	if err != nil {
		logger.Error(failedToCreateFrontEnd, err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := frontEnd.Run(ctx); err != nil {
		os.Exit(1)
	}
}
