package cli

import (
	"fmt"

	"github.com/dockhand/dbup/internal/docker"
	"github.com/spf13/cobra"
)

var stopRemove bool

var stopCmd = &cobra.Command{
	Use:   "stop [name]",
	Short: "Stop a dbup database container",
	Long: `Stop a dbup-launched container by name or ID.

If no argument is provided, stops the most recently launched container.`,
	Args: cobra.MaximumNArgs(1),
	RunE: stopContainer,
}

func init() {
	rootCmd.AddCommand(stopCmd)
	stopCmd.Flags().BoolVar(&stopRemove, "rm", false, "remove the container after stopping it")
}

func stopContainer(cmd *cobra.Command, args []string) error {
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

	if dryRun {
		action := "stop"
		if stopRemove {
			action = "stop and remove"
		}
		fmt.Printf("Dry run - would %s container %q\n", action, target.Name)
		return nil
	}

	if err := cli.Stop(ctx, target.ID); err != nil {
		return err
	}
	fmt.Printf("Container %q stopped\n", target.Name)

	if stopRemove {
		if err := cli.Remove(ctx, target.ID); err != nil {
			return err
		}
		fmt.Printf("Container %q removed\n", target.Name)
	}
	return nil
}
