package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/dockhand/dbup/internal/docker"
	"github.com/dockhand/dbup/internal/launch"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List dbup database containers",
	Long:  `Show all containers launched by dbup, running or stopped.`,
	RunE:  listContainers,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func listContainers(cmd *cobra.Command, args []string) error {
	cli, err := docker.NewClient()
	if err != nil {
		return err
	}
	defer cli.Close()

	infos, err := cli.ListByLabel(cmd.Context(), launch.Label)
	if err != nil {
		return err
	}

	if jsonOut {
		return json.NewEncoder(os.Stdout).Encode(infos)
	}

	if len(infos) == 0 {
		fmt.Println("No dbup containers found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tKIND\tIMAGE\tSTATE\tAGE\tPORTS")
	for _, info := range infos {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			info.Name,
			info.Kind,
			info.Image,
			info.State,
			formatAge(info.Created),
			strings.Join(info.Ports, ", "),
		)
	}
	return w.Flush()
}
