package cli

import (
	"time"

	"github.com/dockhand/dbup/internal/config"
	"github.com/dockhand/dbup/internal/dbready"
	"github.com/spf13/cobra"
)

const mysqlContainerPort = 3306

var (
	mysqlName        string
	mysqlImage       string
	mysqlUser        string
	mysqlPassword    string
	mysqlDBName      string
	mysqlPort        int
	mysqlWait        bool
	mysqlWaitTimeout time.Duration
)

var mysqlCmd = &cobra.Command{
	Use:   "mysql [engine-args...]",
	Short: "Launch a MySQL container",
	Long: `Launch a detached MySQL container with a unique name.

Works like dbup pg with MySQL defaults: image mysql:8.0, user root, host
port 3306. Defaults come from ~/.dbup/config.yaml and DBUP_MYSQL_*
environment variables.

Examples:
  # A MySQL with generated name and root password from config
  dbup mysql

  # Create an application database and user
  dbup mysql -u app -b appdb -s -

  # MySQL needs a while to initialize; --wait blocks until it's connectable
  dbup mysql --wait`,
	Args: cobra.ArbitraryArgs,
	RunE: runMySQL,
}

func init() {
	rootCmd.AddCommand(mysqlCmd)
	mysqlCmd.Flags().StringVarP(&mysqlName, "name", "n", "", "container name (default: generated)")
	mysqlCmd.Flags().StringVarP(&mysqlImage, "image", "i", "", "mysql image")
	mysqlCmd.Flags().StringVarP(&mysqlUser, "user", "u", "", "database user")
	mysqlCmd.Flags().StringVarP(&mysqlPassword, "password", "s", "", "database password ('-' to prompt)")
	mysqlCmd.Flags().StringVarP(&mysqlDBName, "dbname", "b", "", "database to create")
	mysqlCmd.Flags().IntVarP(&mysqlPort, "port", "p", 0, "host port to publish 3306 on")
	mysqlCmd.Flags().BoolVar(&mysqlWait, "wait", false, "block until the database accepts connections")
	mysqlCmd.Flags().DurationVar(&mysqlWaitTimeout, "wait-timeout", 60*time.Second, "readiness deadline for --wait")
}

func runMySQL(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	db := cfg.MySQL
	applyFlag(&db.Image, mysqlImage)
	applyFlag(&db.User, mysqlUser)
	applyFlag(&db.DBName, mysqlDBName)
	if mysqlPort > 0 {
		db.Port = mysqlPort
	}

	password, err := resolvePassword(mysqlPassword, db.Password)
	if err != nil {
		return err
	}

	// The root password is always required by the image; non-root users get
	// their own credentials on top.
	env := []string{"MYSQL_ROOT_PASSWORD=" + password}
	if db.User != "root" {
		env = append(env, "MYSQL_USER="+db.User, "MYSQL_PASSWORD="+password)
	}
	if db.DBName != "" {
		env = append(env, "MYSQL_DATABASE="+db.DBName)
	}

	return launchDatabase(cmd.Context(), launchParams{
		kind:          "mysql",
		name:          mysqlName,
		image:         db.Image,
		env:           env,
		hostPort:      db.Port,
		containerPort: mysqlContainerPort,
		extra:         args,
		engine:        cfg.Engine,
		displayURL:    dbready.MySQLURL(db.User, password, db.DBName, db.Port),
		wait:          mysqlWait,
		waitTimeout:   mysqlWaitTimeout,
		waitDriver:    "mysql",
		waitDSN:       dbready.MySQLDSN(db.User, password, db.DBName, db.Port),
	})
}
