package cli

import (
	"os"

	"github.com/dockhand/dbup/internal/docker"
	"github.com/docker/docker/pkg/stdcopy"
	"github.com/spf13/cobra"
)

var (
	logsFollow bool
	logsTail   string
)

var logsCmd = &cobra.Command{
	Use:   "logs [name]",
	Short: "View logs from a dbup database container",
	Long: `View logs from a dbup-launched container by name or ID.
If no argument is specified, shows logs from the most recent container.

Examples:
  dbup logs                # Logs from most recent container
  dbup logs orders-db      # Logs from a specific container
  dbup logs -f             # Follow logs (like tail -f)
  dbup logs -n 50          # Show last 50 lines`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLogs,
}

func init() {
	rootCmd.AddCommand(logsCmd)
	logsCmd.Flags().BoolVarP(&logsFollow, "follow", "f", false, "follow log output")
	logsCmd.Flags().StringVarP(&logsTail, "tail", "n", "all", "number of lines to show from the end")
}

func runLogs(cmd *cobra.Command, args []string) error {
	cli, err := docker.NewClient()
	if err != nil {
		return err
	}
	defer cli.Close()

	arg := ""
	if len(args) > 0 {
		arg = args[0]
	}

	ctx := cmd.Context()
	target, err := resolveTarget(ctx, cli, arg)
	if err != nil {
		return err
	}

	rc, err := cli.Logs(ctx, target.ID, logsFollow, logsTail)
	if err != nil {
		return err
	}
	defer rc.Close()

	// Detached launches have no TTY, so the stream is multiplexed.
	_, err = stdcopy.StdCopy(os.Stdout, os.Stderr, rc)
	return err
}
