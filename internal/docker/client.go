// Package docker wraps the Docker client with dbup-specific operations.
package docker

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/filters"
	"github.com/docker/docker/client"
)

// Client wraps the Docker client.
type Client struct {
	cli *client.Client
}

// NewClient creates a new Docker client from the environment.
func NewClient() (*Client, error) {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return nil, fmt.Errorf("creating docker client: %w", err)
	}
	return &Client{cli: cli}, nil
}

// Close releases Docker client resources.
func (c *Client) Close() error {
	return c.cli.Close()
}

// Ping verifies the Docker daemon is accessible.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.cli.Ping(ctx)
	if err != nil {
		return fmt.Errorf("docker daemon not accessible: %w", err)
	}
	return nil
}

// RunningNames returns the names of all currently running containers.
// Names are reported without the leading slash the API prepends.
func (c *Client) RunningNames(ctx context.Context) ([]string, error) {
	containers, err := c.cli.ContainerList(ctx, container.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("listing containers: %w", err)
	}

	var names []string
	for _, ctr := range containers {
		for _, n := range ctr.Names {
			names = append(names, strings.TrimPrefix(n, "/"))
		}
	}
	return names, nil
}

// Info describes a container launched by dbup.
type Info struct {
	ID      string            `json:"id"`
	Name    string            `json:"name"`
	Kind    string            `json:"kind"`
	Image   string            `json:"image"`
	State   string            `json:"state"`
	Status  string            `json:"status"`
	Created time.Time         `json:"created"`
	Ports   []string          `json:"ports,omitempty"`
	Labels  map[string]string `json:"-"`
}

// ListByLabel returns all containers (running or not) carrying the given
// label, newest first. The label's value is reported as Info.Kind.
func (c *Client) ListByLabel(ctx context.Context, label string) ([]Info, error) {
	containers, err := c.cli.ContainerList(ctx, container.ListOptions{
		All:     true,
		Filters: filters.NewArgs(filters.Arg("label", label)),
	})
	if err != nil {
		return nil, fmt.Errorf("listing containers: %w", err)
	}

	result := make([]Info, 0, len(containers))
	for _, ctr := range containers {
		name := ""
		if len(ctr.Names) > 0 {
			name = strings.TrimPrefix(ctr.Names[0], "/")
		}
		var ports []string
		for _, p := range ctr.Ports {
			if p.PublicPort == 0 {
				continue
			}
			ports = append(ports, fmt.Sprintf("%d->%d/%s", p.PublicPort, p.PrivatePort, p.Type))
		}
		result = append(result, Info{
			ID:      shortID(ctr.ID),
			Name:    name,
			Kind:    ctr.Labels[label],
			Image:   ctr.Image,
			State:   ctr.State,
			Status:  ctr.Status,
			Created: time.Unix(ctr.Created, 0),
			Ports:   ports,
			Labels:  ctr.Labels,
		})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Created.After(result[j].Created)
	})
	return result, nil
}

// Stop stops a container by name or ID.
func (c *Client) Stop(ctx context.Context, nameOrID string) error {
	if err := c.cli.ContainerStop(ctx, nameOrID, container.StopOptions{}); err != nil {
		return fmt.Errorf("stopping container %s: %w", nameOrID, err)
	}
	return nil
}

// Remove removes a container by name or ID.
func (c *Client) Remove(ctx context.Context, nameOrID string) error {
	if err := c.cli.ContainerRemove(ctx, nameOrID, container.RemoveOptions{
		Force: true,
	}); err != nil {
		return fmt.Errorf("removing container %s: %w", nameOrID, err)
	}
	return nil
}

// Logs returns the log stream of a container. The stream is multiplexed
// (stdout and stderr interleaved); decode it with stdcopy.
func (c *Client) Logs(ctx context.Context, nameOrID string, follow bool, tail string) (io.ReadCloser, error) {
	rc, err := c.cli.ContainerLogs(ctx, nameOrID, container.LogsOptions{
		ShowStdout: true,
		ShowStderr: true,
		Follow:     follow,
		Tail:       tail,
	})
	if err != nil {
		return nil, fmt.Errorf("reading container logs: %w", err)
	}
	return rc, nil
}

func shortID(id string) string {
	if len(id) > 12 {
		return id[:12]
	}
	return id
}
