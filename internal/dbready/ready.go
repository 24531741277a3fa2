// Package dbready waits for a freshly launched database to accept
// connections.
package dbready

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"time"

	"github.com/sethvargo/go-retry"

	// Database drivers for readiness pings.
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
)

const pollInterval = 250 * time.Millisecond

// Wait blocks until the database behind driver/dsn answers a ping or the
// timeout elapses. The database typically needs a few seconds of
// initialization after `run -d` returns, so failures are retried with
// fibonacci backoff.
func Wait(ctx context.Context, driver, dsn string, timeout time.Duration) error {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return fmt.Errorf("opening %s connection: %w", driver, err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	b := retry.WithMaxDuration(timeout, retry.NewFibonacci(pollInterval))
	err = retry.Do(ctx, b, func(ctx context.Context) error {
		if err := db.PingContext(ctx); err != nil {
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("database not ready after %s: %w", timeout, err)
	}
	return nil
}

// PostgresURL returns a postgres:// connection URL for a database published
// on localhost. The same string works as a pgx DSN and as a psql argument.
func PostgresURL(user, password, dbname string, port int) string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(user, password),
		Host:     fmt.Sprintf("localhost:%d", port),
		Path:     "/" + dbname,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

// MySQLDSN returns a go-sql-driver DSN for a database published on localhost.
func MySQLDSN(user, password, dbname string, port int) string {
	return fmt.Sprintf("%s:%s@tcp(localhost:%d)/%s", user, password, port, dbname)
}

// MySQLURL returns a mysql:// URL for display purposes.
func MySQLURL(user, password, dbname string, port int) string {
	u := url.URL{
		Scheme: "mysql",
		User:   url.UserPassword(user, password),
		Host:   fmt.Sprintf("localhost:%d", port),
		Path:   "/" + dbname,
	}
	return u.String()
}
