// Package launch composes and executes container run commands.
package launch

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/dockhand/dbup/internal/log"
	"github.com/dockhand/dbup/internal/name"
)

// Label marks containers launched by dbup. Its value is the database kind
// (e.g. "postgres", "mysql").
const Label = "dbup.database"

// Spec describes a single database container launch.
type Spec struct {
	// Kind identifies the database flavor and becomes the label value.
	Kind string
	// Name is the container name. Must already be collision-free; see UniqueName.
	Name string
	// Image is the container image, always the final argument of the run command.
	Image string
	// Env holds KEY=VALUE settings passed with -e flags.
	Env []string
	// HostPort and ContainerPort form the -p publish mapping.
	HostPort      int
	ContainerPort int
	// Extra holds passthrough arguments, inserted verbatim after the
	// composed flags and before the image.
	Extra []string
}

// Args returns the argv handed to the container engine, excluding the engine
// binary itself. Layout: run -d --name <name> -e ... -p ... -l ...
// [passthrough...] <image>.
func (s Spec) Args() []string {
	args := []string{"run", "-d", "--name", s.Name}
	for _, e := range s.Env {
		args = append(args, "-e", e)
	}
	if s.HostPort > 0 && s.ContainerPort > 0 {
		args = append(args, "-p", fmt.Sprintf("%d:%d", s.HostPort, s.ContainerPort))
	}
	args = append(args, "-l", Label+"="+s.Kind)
	args = append(args, s.Extra...)
	return append(args, s.Image)
}

// Runner executes composed run commands with a container engine binary.
type Runner struct {
	// Engine is the engine binary, e.g. "docker" or "podman".
	Engine string
	// Stdout and Stderr default to the process's own streams.
	Stdout io.Writer
	Stderr io.Writer
}

// CommandLine renders the full command for display (dry runs, debug logs).
func (r *Runner) CommandLine(s Spec) string {
	return r.Engine + " " + strings.Join(s.Args(), " ")
}

// Run executes the composed command and blocks until the engine returns.
// The engine's output goes straight to the configured streams; the launched
// container's fate past a successful `run -d` is not tracked.
func (r *Runner) Run(ctx context.Context, s Spec) error {
	stdout := r.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := r.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	log.Debug("launching container", "engine", r.Engine, "args", s.Args())

	cmd := exec.CommandContext(ctx, r.Engine, s.Args()...)
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("running %s: %w", r.Engine, err)
	}
	return nil
}

// Lister reports the names of currently running containers.
type Lister interface {
	RunningNames(ctx context.Context) ([]string, error)
}

// UniqueName resolves a collision-free container name against the currently
// running containers. An empty requested name yields a generated one.
//
// Best effort: if the lister is unavailable or fails, the failure is logged
// and the requested (or generated) name is used unchecked.
func UniqueName(ctx context.Context, l Lister, requested string) string {
	generated := requested == ""
	candidate := requested
	if generated {
		candidate = name.Generate()
	}

	if l == nil {
		return candidate
	}
	running, err := l.RunningNames(ctx)
	if err != nil {
		log.Warn("could not list running containers, using name unchecked", "name", candidate, "error", err)
		return candidate
	}

	taken := make(map[string]bool, len(running))
	for _, n := range running {
		taken[n] = true
	}

	if !taken[candidate] {
		return candidate
	}

	if generated {
		// Re-roll generated names wholesale; the word lists have plenty of room.
		for taken[candidate] {
			candidate = name.Generate()
		}
		return candidate
	}

	// Keep a user-supplied name recognizable, tagging it with a hex suffix.
	renamed := name.Unique(candidate, taken)
	log.Warn("container name already in use, renamed", "requested", candidate, "name", renamed)
	return renamed
}
