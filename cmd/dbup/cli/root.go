// Package cli implements the dbup command-line interface using Cobra.
// It provides commands for launching throwaway database containers and a
// few conveniences for finding and tearing them down again.
package cli

import (
	"os"

	"github.com/dockhand/dbup/internal/log"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	dryRun  bool
	jsonOut bool
)

var rootCmd = &cobra.Command{
	Use:   "dbup",
	Short: "dbup - throwaway database containers",
	Long: `dbup launches throwaway database containers with one command.

It picks a unique container name, fills in sensible defaults for image,
user, password, and database, and hands the composed run command to your
container engine. Anything dbup doesn't recognize is passed through to the
engine untouched.

Core promise: dbup pg just works - a Postgres you can connect to, no flags
required.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.Init(log.Options{
			Verbose:    verbose,
			JSONFormat: jsonOut,
		})
	},
}

// Execute runs the root command. Arguments the launch commands don't
// recognize are shunted behind -- first, so they pass through to the
// engine instead of failing flag parsing.
func Execute() error {
	rootCmd.SetArgs(rewriteArgs(os.Args[1:]))
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "print the composed command without executing it")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "output in JSON format")
}
