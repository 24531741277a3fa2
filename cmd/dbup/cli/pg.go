package cli

import (
	"time"

	"github.com/dockhand/dbup/internal/config"
	"github.com/dockhand/dbup/internal/dbready"
	"github.com/spf13/cobra"
)

const pgContainerPort = 5432

var (
	pgName        string
	pgImage       string
	pgUser        string
	pgPassword    string
	pgDBName      string
	pgPort        int
	pgWait        bool
	pgWaitTimeout time.Duration
)

var pgCmd = &cobra.Command{
	Use:   "pg [engine-args...]",
	Short: "Launch a Postgres container",
	Long: `Launch a detached Postgres container with a unique name.

If the requested name is already held by a running container, a fresh name
is derived from it. Defaults come from ~/.dbup/config.yaml, a .env file in
the working directory, and DBUP_PG_* environment variables, in that order
of precedence below the flags.

Anything dbup doesn't recognize - flags included - is passed to the
engine's run command unchanged, placed before the image. Use -- to force
passthrough of arguments dbup would otherwise claim.

Examples:
  # A Postgres with generated name, default credentials, port 5432
  dbup pg

  # Custom name and database, prompt for the password
  dbup pg -n orders-db -b orders -s -

  # Publish on a different host port and wait until connectable
  dbup pg -p 5433 --wait

  # Pass extra flags through to the engine
  dbup pg --memory 512m --shm-size 256m`,
	Args: cobra.ArbitraryArgs,
	RunE: runPG,
}

func init() {
	rootCmd.AddCommand(pgCmd)
	pgCmd.Flags().StringVarP(&pgName, "name", "n", "", "container name (default: generated)")
	pgCmd.Flags().StringVarP(&pgImage, "image", "i", "", "postgres image")
	pgCmd.Flags().StringVarP(&pgUser, "user", "u", "", "superuser name")
	pgCmd.Flags().StringVarP(&pgPassword, "password", "s", "", "superuser password ('-' to prompt)")
	pgCmd.Flags().StringVarP(&pgDBName, "dbname", "b", "", "database to create (default: same as user)")
	pgCmd.Flags().IntVarP(&pgPort, "port", "p", 0, "host port to publish 5432 on")
	pgCmd.Flags().BoolVar(&pgWait, "wait", false, "block until the database accepts connections")
	pgCmd.Flags().DurationVar(&pgWaitTimeout, "wait-timeout", 30*time.Second, "readiness deadline for --wait")
}

func runPG(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	db := cfg.PG
	applyFlag(&db.Image, pgImage)
	applyFlag(&db.User, pgUser)
	applyFlag(&db.DBName, pgDBName)
	if pgPort > 0 {
		db.Port = pgPort
	}
	if db.DBName == "" {
		db.DBName = db.User
	}

	password, err := resolvePassword(pgPassword, db.Password)
	if err != nil {
		return err
	}

	env := []string{
		"POSTGRES_USER=" + db.User,
		"POSTGRES_PASSWORD=" + password,
		"POSTGRES_DB=" + db.DBName,
	}

	return launchDatabase(cmd.Context(), launchParams{
		kind:          "postgres",
		name:          pgName,
		image:         db.Image,
		env:           env,
		hostPort:      db.Port,
		containerPort: pgContainerPort,
		extra:         args,
		engine:        cfg.Engine,
		displayURL:    dbready.PostgresURL(db.User, password, db.DBName, db.Port),
		wait:          pgWait,
		waitTimeout:   pgWaitTimeout,
		waitDriver:    "pgx",
		waitDSN:       dbready.PostgresURL(db.User, password, db.DBName, db.Port),
	})
}
