package authz

import (
	"context"

	"github.com/PartTimeHarmacist/ServerStatusBot/logx"
	"github.com/PartTimeHarmacist/ServerStatusBot/pkg/acl"
	"github.com/PartTimeHarmacist/ServerStatusBot/pkg/workload"
)

//go:generate counterfeiter . DocumentProvider

// DocumentProvider yields the current permission document snapshot.
type DocumentProvider interface {
	Document() *acl.Document
}

// Engine answers authorization questions against the permission
// document and the workload backend's target universe.
type Engine struct {
	provider DocumentProvider
	backend  workload.Backend
}

func NewEngine(provider DocumentProvider, backend workload.Backend) *Engine {
	return &Engine{
		provider: provider,
		backend:  backend,
	}
}

// Snapshot captures the current document for the duration of one
// command. Every check for that command must go through the same View,
// so autofilled targets are never re-checked against a newer document.
func (e *Engine) Snapshot() *View {
	return &View{
		doc:     e.provider.Document(),
		backend: e.backend,
	}
}

// View is one command's consistent read of the permission state. It
// also memoizes the backend universe, so a command performs at most one
// list call no matter how many targets it checks.
type View struct {
	doc     *acl.Document
	backend workload.Backend

	universe       []string
	universeLoaded bool
}

// Document exposes the captured snapshot, for commands that report the
// permission state itself.
func (v *View) Document() *acl.Document {
	return v.doc
}

func (v *View) IsAdmin(identity string) bool {
	return v.doc.IsAdmin(identity)
}

// AuthorizedTargets returns every target identity may act on with
// action. Admins get the backend's full universe, including targets
// that have no entry in the document yet; everyone else gets exactly
// the servers whose entry lists them under the action key.
func (v *View) AuthorizedTargets(ctx context.Context, logger logx.Logger, identity, action string) ([]string, error) {
	if v.doc.IsAdmin(identity) {
		return v.targetUniverse(ctx, logger)
	}
	return v.doc.AuthorizedServers(identity, action), nil
}

func (v *View) IsAuthorized(ctx context.Context, logger logx.Logger, identity, action, target string) (bool, error) {
	targets, err := v.AuthorizedTargets(ctx, logger, identity, action)
	if err != nil {
		return false, err
	}

	for _, candidate := range targets {
		if candidate == target {
			return true, nil
		}
	}
	return false, nil
}

// Resolution carries one command's working target set and whether it
// was autofilled from the authorized set. Autofilled targets are
// authorized by construction and must not be re-checked.
type Resolution struct {
	Targets    []string
	Autofilled bool
}

// ResolveTargets expands an empty requested list to everything identity
// is authorized for. A non-empty list passes through unchanged, in
// order; the caller authorizes each entry during dispatch.
func (v *View) ResolveTargets(ctx context.Context, logger logx.Logger, identity, action string, requested []string) (Resolution, error) {
	if len(requested) > 0 {
		return Resolution{Targets: requested}, nil
	}

	targets, err := v.AuthorizedTargets(ctx, logger, identity, action)
	if err != nil {
		return Resolution{}, err
	}
	return Resolution{Targets: targets, Autofilled: true}, nil
}

func (v *View) targetUniverse(ctx context.Context, logger logx.Logger) ([]string, error) {
	if v.universeLoaded {
		return v.universe, nil
	}

	targets, err := v.backend.ListAll(ctx)
	if err != nil {
		logger.Error(failedToListTargets, err)
		return nil, err
	}

	v.universe = targets
	v.universeLoaded = true
	return v.universe, nil
}
