// Package dbcheck verifies MySQL connectivity before wp-config.php is touched.
package dbcheck

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
)

// Checker verifies that a database server accepts the given credentials.
type Checker interface {
	Check(ctx context.Context, host, user, password string) error
}

// MySQL is a Checker backed by the MySQL driver.
type MySQL struct {
	// Timeout bounds the dial and the ping. Zero means DefaultTimeout.
	Timeout time.Duration
}

// DefaultTimeout is used when MySQL.Timeout is zero.
const DefaultTimeout = 10 * time.Second

// Check opens a connection with the given credentials and pings the server.
// No database is selected; only connectivity and authentication are tested.
func (c *MySQL) Check(ctx context.Context, host, user, password string) error {
	timeout := c.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	db, err := sql.Open("mysql", dsn(host, user, password, timeout))
	if err != nil {
		return fmt.Errorf("opening database connection: %w", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("database connection failed: %w", err)
	}
	return nil
}

// dsn builds a driver DSN for the host forms wp-config.php allows:
// "hostname", "hostname:port", and a unix socket path.
func dsn(host, user, password string, timeout time.Duration) string {
	cfg := mysql.NewConfig()
	cfg.User = user
	cfg.Passwd = password
	cfg.Timeout = timeout

	switch {
	case host == "":
		cfg.Net = "tcp"
		cfg.Addr = "localhost"
	case strings.HasPrefix(host, "/"):
		cfg.Net = "unix"
		cfg.Addr = host
	default:
		cfg.Net = "tcp"
		cfg.Addr = host
	}

	return cfg.FormatDSN()
}

// Compile-time check that MySQL implements Checker.
var _ Checker = (*MySQL)(nil)
