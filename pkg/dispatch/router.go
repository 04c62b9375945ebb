package dispatch

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"code.cloudfoundry.org/clock"

	statusbot "github.com/PartTimeHarmacist/ServerStatusBot"
	"github.com/PartTimeHarmacist/ServerStatusBot/logx"
	"github.com/PartTimeHarmacist/ServerStatusBot/pkg/acl"
	"github.com/PartTimeHarmacist/ServerStatusBot/pkg/audit"
	"github.com/PartTimeHarmacist/ServerStatusBot/pkg/authz"
	"github.com/PartTimeHarmacist/ServerStatusBot/pkg/metrics"
	"github.com/PartTimeHarmacist/ServerStatusBot/pkg/workload"
)

const (
	CommandStatus      = "status"
	CommandStart       = "start"
	CommandRestart     = "restart"
	CommandKill        = "kill"
	CommandGetLogs     = "get_logs"
	CommandCmd         = "cmd"
	CommandBackup      = "backup"
	CommandRestore     = "restore"
	CommandListBackups = "list_backups"
	CommandPermissions = "permissions"
	CommandDumpPerms   = "dump_perms"
	CommandBotUptime   = "bot_uptime"
)

// notFoundOutcome is the single outcome shown for nonexistent targets,
// denied targets, and timed-out backend calls. Denials are deliberately
// indistinguishable from nonexistence so unauthorized callers learn
// nothing about which targets exist.
const notFoundOutcome = "Not Found/Invalid Name"

const defaultLogLines = 10

const (
	uptimeCommand    = "uptime"
	worldSizeCommand = "du -h world/level.dat"
	logTailCommand   = "tail -n3 logs/latest.log"
)

const permissionsUsage = "Usage: permissions <grant|revoke> <user> <server> <action>"

const noServersAvailable = "No servers available."

const redactDelay = 5 * time.Second

const (
	metricCommandPrefix = "statusbot.commands."
	metricDenials       = "statusbot.denials"
	metricDuration      = "statusbot.commands.duration"
)

// disabledCommands are recognized command names that intentionally do
// nothing yet. They never produce "unknown command", which keeps the
// command namespace forward compatible.
var disabledCommands = map[string]struct{}{
	CommandCmd:         {},
	CommandBackup:      {},
	CommandRestore:     {},
	CommandListBackups: {},
}

// Router maps parsed invocations to backend actions, applying
// authorization per target and folding per-target outcomes into one
// reply.
type Router struct {
	logger  logx.Logger
	audit   audit.Logger
	store   *acl.Store
	engine  *authz.Engine
	backend workload.Backend
	statter metrics.Statter

	clock       clock.Clock
	callTimeout time.Duration
	started     time.Time
}

func NewRouter(
	logger logx.Logger,
	auditLogger audit.Logger,
	store *acl.Store,
	engine *authz.Engine,
	backend workload.Backend,
	opts ...Option,
) *Router {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	return &Router{
		logger:      logger,
		audit:       auditLogger,
		store:       store,
		engine:      engine,
		backend:     backend,
		statter:     o.statter,
		clock:       o.clock,
		callTimeout: o.callTimeout,
		started:     o.clock.Now(),
	}
}

// Route dispatches one invocation and returns its reply. Unknown
// command names yield statusbot.ErrUnknownCommand; recognized but
// disabled commands yield an empty reply. One target's failure never
// aborts processing of its siblings.
func (r *Router) Route(ctx context.Context, inv statusbot.Invocation) (statusbot.Reply, error) {
	logger := r.logger.WithName("route").WithData(
		logx.Data{Key: "invocation", Value: inv.ID},
		logx.Data{Key: "command", Value: inv.Command},
		logx.Data{Key: "requester", Value: inv.Requester.ID},
		logx.Data{Key: "channel", Value: inv.Channel},
	)
	logger.Debug(starting)
	defer logger.Debug(finished)

	if _, ok := disabledCommands[inv.Command]; ok {
		logger.Debug(commandDisabled)
		return statusbot.Reply{}, nil
	}

	handler, ok := r.handlerFor(inv.Command)
	if !ok {
		return statusbot.Reply{}, statusbot.ErrUnknownCommand
	}

	r.statter.Inc(metricCommandPrefix+inv.Command, 1)
	start := r.clock.Now()
	defer func() {
		r.statter.TimingDuration(metricDuration, r.clock.Since(start))
	}()

	if message := receiptMessage(inv); message != "" {
		r.audit.Record(audit.Entry{
			Kind:      audit.KindInfo,
			Command:   inv.Command,
			Requester: inv.Requester,
			Channel:   inv.Channel,
			Targets:   inv.Targets,
			Message:   message,
		})
	}

	view := r.engine.Snapshot()
	return handler(ctx, logger, view, inv)
}

// receiptMessage is the audit line recorded when a command arrives.
// The permissions and dump_perms commands log their outcome instead of
// a receipt.
func receiptMessage(inv statusbot.Invocation) string {
	targets := strings.Join(inv.Targets, ",")
	switch inv.Command {
	case CommandStatus:
		return fmt.Sprintf("Status command received from channel %s by %s (id: %s)",
			inv.Channel, inv.Requester.Display, inv.Requester.ID)
	case CommandStart:
		return fmt.Sprintf("Executing the start command for %s from %s", targets, inv.Channel)
	case CommandRestart:
		return fmt.Sprintf("Executing restart command for %s from %s, initiated by %s",
			targets, inv.Channel, inv.Requester.Display)
	case CommandKill:
		return fmt.Sprintf("Executing the kill command for %s from %s", targets, inv.Channel)
	case CommandGetLogs:
		return fmt.Sprintf("Log retrieval command executed for server %s by %s (id: %s)",
			targets, inv.Requester.Display, inv.Requester.ID)
	case CommandBotUptime:
		return fmt.Sprintf("Uptime requested for %s", inv.Channel)
	default:
		return ""
	}
}

type handler func(ctx context.Context, logger logx.Logger, view *authz.View, inv statusbot.Invocation) (statusbot.Reply, error)

func (r *Router) handlerFor(command string) (handler, bool) {
	switch command {
	case CommandStatus:
		return r.status, true
	case CommandStart:
		return r.start, true
	case CommandRestart:
		return r.restart, true
	case CommandKill:
		return r.kill, true
	case CommandGetLogs:
		return r.getLogs, true
	case CommandPermissions:
		return r.permissions, true
	case CommandDumpPerms:
		return r.dumpPerms, true
	case CommandBotUptime:
		return r.botUptime, true
	default:
		return nil, false
	}
}

// targetOp runs one backend operation against one workload and returns
// the outcome string shown for that target.
type targetOp func(ctx context.Context, handle workload.Handle) (string, error)

func (r *Router) status(ctx context.Context, logger logx.Logger, view *authz.View, inv statusbot.Invocation) (statusbot.Reply, error) {
	resolution, err := view.ResolveTargets(ctx, logger, inv.Requester.ID, inv.Command, inv.Targets)
	if err != nil {
		return statusbot.Reply{}, err
	}

	if len(resolution.Targets) == 1 {
		return r.detailedStatus(ctx, logger, view, inv, resolution)
	}

	return r.dispatchResolved(ctx, logger, view, inv, resolution, "Server Statuses",
		func(ctx context.Context, handle workload.Handle) (string, error) {
			status, err := handle.Status(ctx)
			if err != nil {
				return "", err
			}
			return titleCase(status), nil
		})
}

// detailedStatus is the single-target status report: several fields for
// one workload instead of one field per workload. The asymmetry is a
// reply-rendering policy, not an authorization one.
func (r *Router) detailedStatus(ctx context.Context, logger logx.Logger, view *authz.View, inv statusbot.Invocation, resolution authz.Resolution) (statusbot.Reply, error) {
	target := resolution.Targets[0]
	reply := statusbot.Reply{Title: fmt.Sprintf("%s Detailed Status Report", target)}

	authorized, denied := r.authorize(ctx, logger, view, inv, resolution, target)
	if denied {
		r.recordDenials(inv, []string{target})
	}
	if !authorized {
		reply.Fields = append(reply.Fields, statusbot.ReplyField{Name: target, Value: notFoundOutcome, Inline: true})
		return reply, nil
	}

	callCtx, cancel := context.WithTimeout(ctx, r.callTimeout)
	defer cancel()

	handle, err := r.backend.Get(callCtx, target)
	if err != nil {
		reply.Fields = append(reply.Fields, statusbot.ReplyField{
			Name:   target,
			Value:  r.failureOutcome(logger, target, err),
			Inline: true,
		})
		return reply, nil
	}

	status, err := handle.Status(callCtx)
	if err != nil {
		reply.Fields = append(reply.Fields, statusbot.ReplyField{
			Name:   target,
			Value:  r.failureOutcome(logger, target, err),
			Inline: true,
		})
		return reply, nil
	}

	reply.Fields = append(reply.Fields, statusbot.ReplyField{Name: "Status", Value: titleCase(status), Inline: true})

	if status == workload.StatusRunning {
		reply.Fields = append(reply.Fields, r.execFields(callCtx, logger, handle, target)...)
	}
	return reply, nil
}

func (r *Router) execFields(ctx context.Context, logger logx.Logger, handle workload.Handle, target string) []statusbot.ReplyField {
	var fields []statusbot.ReplyField

	probes := []struct {
		name    string
		command string
		inline  bool
	}{
		{"Server Uptime", uptimeCommand, true},
		{"World Size (Minecraft)", worldSizeCommand, true},
		{"Log Tail", logTailCommand, false},
	}

	for _, probe := range probes {
		out, err := handle.Exec(ctx, probe.command)
		if err != nil {
			logger.Error(failedToRunBackendCall, err,
				logx.Data{Key: "target", Value: target},
				logx.Data{Key: "exec", Value: probe.command},
			)
			continue
		}
		fields = append(fields, statusbot.ReplyField{Name: probe.name, Value: string(out), Inline: probe.inline})
	}
	return fields
}

func (r *Router) start(ctx context.Context, logger logx.Logger, view *authz.View, inv statusbot.Invocation) (statusbot.Reply, error) {
	return r.dispatchTargets(ctx, logger, view, inv, "Start Results",
		func(ctx context.Context, handle workload.Handle) (string, error) {
			if err := handle.Start(ctx); err != nil {
				return "", err
			}
			status, err := handle.Status(ctx)
			if err != nil {
				return "", err
			}
			return status, nil
		})
}

func (r *Router) restart(ctx context.Context, logger logx.Logger, view *authz.View, inv statusbot.Invocation) (statusbot.Reply, error) {
	return r.dispatchTargets(ctx, logger, view, inv, "Restart Results",
		func(ctx context.Context, handle workload.Handle) (string, error) {
			if err := handle.Restart(ctx); err != nil {
				return "", err
			}
			return "Restart Sent", nil
		})
}

func (r *Router) kill(ctx context.Context, logger logx.Logger, view *authz.View, inv statusbot.Invocation) (statusbot.Reply, error) {
	return r.dispatchTargets(ctx, logger, view, inv, "SIGKILL Results",
		func(ctx context.Context, handle workload.Handle) (string, error) {
			if err := handle.Kill(ctx); err != nil {
				return "", err
			}
			status, err := handle.Status(ctx)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("SIGKILL Sent - status is %s", status), nil
		})
}

func (r *Router) dispatchTargets(ctx context.Context, logger logx.Logger, view *authz.View, inv statusbot.Invocation, title string, op targetOp) (statusbot.Reply, error) {
	resolution, err := view.ResolveTargets(ctx, logger, inv.Requester.ID, inv.Command, inv.Targets)
	if err != nil {
		return statusbot.Reply{}, err
	}
	return r.dispatchResolved(ctx, logger, view, inv, resolution, title, op)
}

func (r *Router) dispatchResolved(ctx context.Context, logger logx.Logger, view *authz.View, inv statusbot.Invocation, resolution authz.Resolution, title string, op targetOp) (statusbot.Reply, error) {
	// An autofill that found nothing would otherwise render an empty
	// report.
	if len(resolution.Targets) == 0 {
		return statusbot.Reply{Text: noServersAvailable}, nil
	}

	reply := statusbot.Reply{Title: title}

	var denied []string
	for _, target := range resolution.Targets {
		outcome, wasDenied := r.runTarget(ctx, logger, view, inv, resolution, target, op)
		if wasDenied {
			denied = append(denied, target)
		}
		reply.Fields = append(reply.Fields, statusbot.ReplyField{Name: target, Value: outcome, Inline: true})
	}

	if len(denied) > 0 {
		r.recordDenials(inv, denied)
	}
	return reply, nil
}

func (r *Router) runTarget(ctx context.Context, logger logx.Logger, view *authz.View, inv statusbot.Invocation, resolution authz.Resolution, target string, op targetOp) (outcome string, denied bool) {
	authorized, wasDenied := r.authorize(ctx, logger, view, inv, resolution, target)
	if !authorized {
		return notFoundOutcome, wasDenied
	}

	callCtx, cancel := context.WithTimeout(ctx, r.callTimeout)
	defer cancel()

	handle, err := r.backend.Get(callCtx, target)
	if err != nil {
		return r.failureOutcome(logger, target, err), false
	}

	result, err := op(callCtx, handle)
	if err != nil {
		return r.failureOutcome(logger, target, err), false
	}
	return result, false
}

// authorize checks one target against the command's snapshot.
// Autofilled targets were drawn from the authorized set and are never
// re-checked, so they cannot produce a denial.
func (r *Router) authorize(ctx context.Context, logger logx.Logger, view *authz.View, inv statusbot.Invocation, resolution authz.Resolution, target string) (authorized, denied bool) {
	if resolution.Autofilled {
		return true, false
	}

	ok, err := view.IsAuthorized(ctx, logger, inv.Requester.ID, inv.Command, target)
	if err != nil {
		logger.Error(failedToAuthorize, err, logx.Data{Key: "target", Value: target})
		return false, false
	}
	if !ok {
		return false, true
	}
	return true, false
}

func (r *Router) failureOutcome(logger logx.Logger, target string, err error) string {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		logger.Error(backendCallTimedOut, err, logx.Data{Key: "target", Value: target})
	case errors.Is(err, statusbot.ErrTargetNotFound):
	default:
		logger.Error(failedToRunBackendCall, err, logx.Data{Key: "target", Value: target})
	}
	return notFoundOutcome
}

func (r *Router) getLogs(ctx context.Context, logger logx.Logger, view *authz.View, inv statusbot.Invocation) (statusbot.Reply, error) {
	if len(inv.Targets) == 0 {
		return statusbot.Reply{Text: "Usage: get_logs <server> [lines]"}, nil
	}
	target := inv.Targets[0]

	lines := defaultLogLines
	if len(inv.Args) > 0 {
		parsed, err := strconv.Atoi(inv.Args[0])
		if err == nil {
			lines = parsed
		} else {
			// Malformed counts are recovered, never rejected.
			r.audit.Record(audit.Entry{
				Kind:      audit.KindWarning,
				Command:   inv.Command,
				Requester: inv.Requester,
				Channel:   inv.Channel,
				Targets:   []string{target},
				Message: fmt.Sprintf("Line count %q is not a number, defaulting to %d.",
					inv.Args[0], defaultLogLines),
			})
		}
	}

	resolution := authz.Resolution{Targets: []string{target}}
	authorized, denied := r.authorize(ctx, logger, view, inv, resolution, target)
	if denied {
		r.recordDenials(inv, []string{target})
	}
	if !authorized {
		return statusbot.Reply{Text: fmt.Sprintf("%s %s", target, notFoundOutcome)}, nil
	}

	callCtx, cancel := context.WithTimeout(ctx, r.callTimeout)
	defer cancel()

	handle, err := r.backend.Get(callCtx, target)
	if err != nil {
		return statusbot.Reply{Text: fmt.Sprintf("%s %s", target, r.failureOutcome(logger, target, err))}, nil
	}

	out, err := handle.Exec(callCtx, fmt.Sprintf("tail -n%d logs/latest.log", lines))
	if err != nil {
		return statusbot.Reply{Text: fmt.Sprintf("%s %s", target, r.failureOutcome(logger, target, err))}, nil
	}
	return statusbot.Reply{Text: string(out)}, nil
}

func (r *Router) permissions(ctx context.Context, logger logx.Logger, view *authz.View, inv statusbot.Invocation) (statusbot.Reply, error) {
	if !view.IsAdmin(inv.Requester.ID) {
		r.recordDenials(inv, []string{"PERMISSIONS_FILE"})
		return statusbot.Reply{}, nil
	}

	if len(inv.Args) < 4 {
		return statusbot.Reply{Text: permissionsUsage}, nil
	}
	verb, user, target, action := inv.Args[0], inv.Args[1], inv.Args[2], inv.Args[3]

	// Prefer the platform-resolved mention; the raw argument is a
	// fallback for platforms without mention resolution.
	identity := user
	if inv.MentionID != "" {
		identity = inv.MentionID
	}

	var err error
	switch verb {
	case "grant":
		err = r.store.Grant(logger, target, action, identity)
	case "revoke":
		err = r.store.Revoke(logger, target, action, identity)
	default:
		return statusbot.Reply{Text: permissionsUsage}, nil
	}
	if err != nil {
		logger.Error(failedToPersistPermissions, err)
		r.audit.Record(audit.Entry{
			Kind:      audit.KindError,
			Command:   inv.Command,
			Requester: inv.Requester,
			Channel:   inv.Channel,
			Targets:   []string{target},
			Message:   fmt.Sprintf("Failed to persist permissions change: %s", err),
		})
		return statusbot.Reply{}, err
	}

	message := fmt.Sprintf("%s %s permissions to %s for server %s at the request of admin %s (id: %s)",
		titleCase(verb), action, user, target, inv.Requester.Display, inv.Requester.ID)

	r.audit.Record(audit.Entry{
		Kind:      audit.KindInfo,
		Command:   inv.Command,
		Requester: inv.Requester,
		Channel:   inv.Channel,
		Targets:   []string{target},
		Message:   message + " executed successfully.",
	})

	reply := statusbot.Reply{
		Direct: fmt.Sprintf("Requested permissions change has been processed:\n%s", message),
	}
	if !inv.Private {
		reply.RedactAfter = redactDelay
	}
	return reply, nil
}

func (r *Router) dumpPerms(ctx context.Context, logger logx.Logger, view *authz.View, inv statusbot.Invocation) (statusbot.Reply, error) {
	if !view.IsAdmin(inv.Requester.ID) {
		r.recordDenials(inv, []string{"DEBUG_FUNCTION"})
		return statusbot.Reply{}, nil
	}

	data, err := acl.Serialize(view.Document())
	if err != nil {
		logger.Error(failedToSerializePermissions, err)
		return statusbot.Reply{}, err
	}

	r.audit.Record(audit.Entry{
		Kind:      audit.KindInfo,
		Command:   inv.Command,
		Requester: inv.Requester,
		Channel:   inv.Channel,
		Message: fmt.Sprintf("Dumped permissions to chat per request from admin %s (id: %s)",
			inv.Requester.Display, inv.Requester.ID),
	})
	return statusbot.Reply{Text: string(data)}, nil
}

func (r *Router) botUptime(ctx context.Context, logger logx.Logger, view *authz.View, inv statusbot.Invocation) (statusbot.Reply, error) {
	return statusbot.Reply{
		Text: fmt.Sprintf("Bot has been up for %s", r.clock.Since(r.started)),
	}, nil
}

func (r *Router) recordDenials(inv statusbot.Invocation, targets []string) {
	r.audit.Record(audit.Entry{
		Kind:      audit.KindForbidden,
		Command:   inv.Command,
		Requester: inv.Requester,
		Channel:   inv.Channel,
		Targets:   targets,
	})
	r.statter.Inc(metricDenials, 1)
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
