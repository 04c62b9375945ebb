package workload

import "context"

// StatusRunning is the backend status string for a live workload.
const StatusRunning = "running"

//go:generate counterfeiter . Backend

// Backend is the container runtime managing the workloads that commands
// act on. It is assumed synchronous; callers bound each call with a
// context deadline.
type Backend interface {
	// ListAll returns the names of every workload the backend knows
	// about, running or not.
	ListAll(ctx context.Context) ([]string, error)

	// Get returns a handle for the named workload, or
	// statusbot.ErrTargetNotFound when the backend has no such
	// workload.
	Get(ctx context.Context, name string) (Handle, error)
}

//go:generate counterfeiter . Handle

// Handle exposes lifecycle operations on a single workload.
type Handle interface {
	Name() string
	Status(ctx context.Context) (string, error)
	Start(ctx context.Context) error
	Restart(ctx context.Context) error
	Kill(ctx context.Context) error
	Exec(ctx context.Context, command string) ([]byte, error)
}
