package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dockhand/dbup/internal/dbready"
	"github.com/dockhand/dbup/internal/docker"
	"github.com/dockhand/dbup/internal/launch"
	"github.com/dockhand/dbup/internal/log"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// launchParams carries everything launchDatabase needs to compose, execute,
// and optionally wait on a database container launch.
type launchParams struct {
	kind          string
	name          string
	image         string
	env           []string
	hostPort      int
	containerPort int
	extra         []string
	engine        string

	displayURL  string
	wait        bool
	waitTimeout time.Duration
	waitDriver  string
	waitDSN     string
}

// launchDatabase is the shared back half of the pg and mysql commands:
// resolve a unique name, compose the run command, execute it, report.
func launchDatabase(ctx context.Context, p launchParams) error {
	// The collision check is best effort. Without a reachable daemon the
	// launch still proceeds and the engine reports its own errors.
	var lister launch.Lister
	if cli, err := docker.NewClient(); err != nil {
		log.Warn("docker client unavailable, skipping name collision check", "error", err)
	} else {
		defer cli.Close()
		if err := cli.Ping(ctx); err != nil {
			log.Warn("docker daemon unreachable, skipping name collision check", "error", err)
		} else {
			lister = cli
		}
	}

	spec := launch.Spec{
		Kind:          p.kind,
		Name:          launch.UniqueName(ctx, lister, p.name),
		Image:         p.image,
		Env:           p.env,
		HostPort:      p.hostPort,
		ContainerPort: p.containerPort,
		Extra:         p.extra,
	}
	runner := &launch.Runner{Engine: p.engine}

	if dryRun {
		fmt.Println(runner.CommandLine(spec))
		return nil
	}

	if err := runner.Run(ctx, spec); err != nil {
		return err
	}

	fmt.Printf("Started %s container %q\n", p.kind, spec.Name)
	fmt.Printf("  %s\n", p.displayURL)

	if p.wait {
		fmt.Printf("Waiting for %s to accept connections...\n", p.kind)
		if err := dbready.Wait(ctx, p.waitDriver, p.waitDSN, p.waitTimeout); err != nil {
			// The container keeps running; it may still come up later.
			return err
		}
		fmt.Println("Ready.")
	}
	return nil
}

// applyFlag overwrites dst when the flag was set to a non-empty value.
func applyFlag(dst *string, flagVal string) {
	if flagVal != "" {
		*dst = flagVal
	}
}

// resolvePassword resolves the password flag value. Empty means the
// configured default; "-" prompts on a TTY or reads a line from stdin.
func resolvePassword(flagVal, configured string) (string, error) {
	switch flagVal {
	case "":
		return configured, nil
	case "-":
		if isatty.IsTerminal(os.Stdin.Fd()) {
			fmt.Fprint(os.Stderr, "Password: ")
			b, err := term.ReadPassword(int(os.Stdin.Fd()))
			fmt.Fprintln(os.Stderr)
			if err != nil {
				return "", fmt.Errorf("reading password: %w", err)
			}
			return string(b), nil
		}
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && line == "" {
			return "", fmt.Errorf("reading password from stdin: %w", err)
		}
		return strings.TrimRight(line, "\r\n"), nil
	default:
		return flagVal, nil
	}
}

// resolveTarget picks the container a teardown/read command operates on.
// With an explicit name it must match a dbup container; without one the most
// recently created dbup container wins.
func resolveTarget(ctx context.Context, cli *docker.Client, arg string) (docker.Info, error) {
	infos, err := cli.ListByLabel(ctx, launch.Label)
	if err != nil {
		return docker.Info{}, err
	}
	if arg != "" {
		for _, info := range infos {
			if info.Name == arg || info.ID == arg {
				return info, nil
			}
		}
		return docker.Info{}, fmt.Errorf("no dbup container named %q", arg)
	}
	if len(infos) == 0 {
		return docker.Info{}, fmt.Errorf("no dbup containers found")
	}
	// ListByLabel returns newest first.
	return infos[0], nil
}

// formatAge formats a creation time as a human-readable "X ago" string.
func formatAge(t time.Time) string {
	d := time.Since(t)

	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		mins := int(d.Minutes())
		if mins == 1 {
			return "1 minute ago"
		}
		return fmt.Sprintf("%d minutes ago", mins)
	case d < 24*time.Hour:
		hours := int(d.Hours())
		if hours == 1 {
			return "1 hour ago"
		}
		return fmt.Sprintf("%d hours ago", hours)
	case d < 7*24*time.Hour:
		days := int(d.Hours() / 24)
		if days == 1 {
			return "1 day ago"
		}
		return fmt.Sprintf("%d days ago", days)
	default:
		return t.Format("Jan 2, 2006")
	}
}
