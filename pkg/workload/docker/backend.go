// Package docker manages workloads as docker containers, one container
// per target, addressed by container name.
package docker

import (
	"bytes"
	"context"
	"strings"

	cerrdefs "github.com/containerd/errdefs"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/client"
	"github.com/docker/docker/pkg/stdcopy"

	statusbot "github.com/PartTimeHarmacist/ServerStatusBot"
	"github.com/PartTimeHarmacist/ServerStatusBot/pkg/workload"
)

type Backend struct {
	client client.APIClient
}

func NewBackend(cli client.APIClient) *Backend {
	return &Backend{
		client: cli,
	}
}

// NewEnvBackend builds a backend from the environment (DOCKER_HOST and
// friends), negotiating the API version with the daemon.
func NewEnvBackend() (*Backend, error) {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return nil, err
	}
	return NewBackend(cli), nil
}

func (b *Backend) ListAll(ctx context.Context) ([]string, error) {
	containers, err := b.client.ContainerList(ctx, container.ListOptions{All: true})
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(containers))
	for _, c := range containers {
		if len(c.Names) == 0 {
			continue
		}
		names = append(names, strings.TrimPrefix(c.Names[0], "/"))
	}
	return names, nil
}

func (b *Backend) Get(ctx context.Context, name string) (workload.Handle, error) {
	if _, err := b.client.ContainerInspect(ctx, name); err != nil {
		return nil, wrapErr(err)
	}

	return &handle{
		client: b.client,
		name:   name,
	}, nil
}

type handle struct {
	client client.APIClient
	name   string
}

func (h *handle) Name() string {
	return h.name
}

func (h *handle) Status(ctx context.Context) (string, error) {
	info, err := h.client.ContainerInspect(ctx, h.name)
	if err != nil {
		return "", wrapErr(err)
	}
	return info.State.Status, nil
}

func (h *handle) Start(ctx context.Context) error {
	return wrapErr(h.client.ContainerStart(ctx, h.name, container.StartOptions{}))
}

func (h *handle) Restart(ctx context.Context) error {
	return wrapErr(h.client.ContainerRestart(ctx, h.name, container.StopOptions{}))
}

func (h *handle) Kill(ctx context.Context) error {
	return wrapErr(h.client.ContainerKill(ctx, h.name, "SIGKILL"))
}

func (h *handle) Exec(ctx context.Context, command string) ([]byte, error) {
	exec, err := h.client.ContainerExecCreate(ctx, h.name, container.ExecOptions{
		Cmd:          strings.Fields(command),
		AttachStdout: true,
		AttachStderr: true,
	})
	if err != nil {
		return nil, wrapErr(err)
	}

	resp, err := h.client.ContainerExecAttach(ctx, exec.ID, container.ExecAttachOptions{})
	if err != nil {
		return nil, wrapErr(err)
	}
	defer resp.Close()

	// Exec output is multiplexed; fold stdout and stderr together the
	// way a terminal would show them.
	var out bytes.Buffer
	if _, err := stdcopy.StdCopy(&out, &out, resp.Reader); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func wrapErr(err error) error {
	if err == nil {
		return nil
	}
	if cerrdefs.IsNotFound(err) {
		return statusbot.ErrTargetNotFound
	}
	return err
}
