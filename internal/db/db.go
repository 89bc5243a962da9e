// Package db opens short-lived gorm connections for schema introspection.
package db

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"

	"github.com/example/crudgen/internal/models"
)

// Driver kinds accepted in configuration.
const (
	DriverPostgres     = "postgres"
	DriverPgsql        = "pgsql"
	DriverMySQL        = "mysql"
	DriverMariaDB      = "mariadb"
	DriverSQLite       = "sqlite"
	DriverSQLite3      = "sqlite3"
	DriverSQLitePureGo = "sqlite-purego"
)

// pingTimeout bounds the reachability check when ctx carries no deadline.
const pingTimeout = 10 * time.Second

type dialectorFactory func(dsn string) gorm.Dialector

// dialectors maps a driver kind onto the gorm dialector compiled into the binary.
var dialectors = map[string]dialectorFactory{
	DriverPostgres:     postgres.Open,
	DriverPgsql:        postgres.Open,
	DriverMySQL:        mysql.Open,
	DriverMariaDB:      mysql.Open,
	DriverSQLite:       sqlite.Open,
	DriverSQLite3:      sqlite.Open,
	DriverSQLitePureGo: openPureGoSQLite,
}

// openPureGoSQLite uses the cgo-free driver registered by modernc.org/sqlite.
func openPureGoSQLite(dsn string) gorm.Dialector {
	return sqlite.New(sqlite.Config{DriverName: "sqlite", DSN: dsn})
}

// SupportedDrivers returns the sorted driver kinds that can be introspected.
func SupportedDrivers() []string {
	drivers := make([]string, 0, len(dialectors))
	for d := range dialectors {
		drivers = append(drivers, d)
	}
	sort.Strings(drivers)
	return drivers
}

// IsSQLite reports whether driver is one of the sqlite kinds.
func IsSQLite(driver string) bool {
	switch strings.ToLower(driver) {
	case DriverSQLite, DriverSQLite3, DriverSQLitePureGo:
		return true
	}
	return false
}

// DSN builds the connection string for conn. Sqlite files are opened read-only.
func DSN(conn models.ConnectionParams) (string, error) {
	switch strings.ToLower(conn.Driver) {
	case DriverPostgres, DriverPgsql:
		sslmode := conn.SSLMode
		if sslmode == "" {
			sslmode = "disable"
		}
		port := conn.Port
		if port == 0 {
			port = 5432
		}
		return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			pgValue(conn.Host), port, pgValue(conn.User), pgValue(conn.Password), pgValue(conn.Database), pgValue(sslmode)), nil
	case DriverMySQL, DriverMariaDB:
		port := conn.Port
		if port == 0 {
			port = 3306
		}
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			conn.User, conn.Password, conn.Host, port, conn.Database), nil
	case DriverSQLite, DriverSQLite3, DriverSQLitePureGo:
		return fmt.Sprintf("file:%s?mode=ro", conn.Database), nil
	default:
		return "", fmt.Errorf("%w: driver %q", models.ErrIntrospectionUnavailable, conn.Driver)
	}
}

// pgValue quotes a keyword/value DSN value when it is empty or holds
// characters the keyword parser treats specially.
func pgValue(v string) string {
	if v != "" && !strings.ContainsAny(v, " \t\n'\\") {
		return v
	}
	return "'" + pgEscaper.Replace(v) + "'"
}

var pgEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

// Open connects to the data store described by conn and verifies it answers.
// Callers must Close the returned handle.
func Open(ctx context.Context, conn models.ConnectionParams) (*gorm.DB, error) {
	factory, ok := dialectors[strings.ToLower(conn.Driver)]
	if !ok {
		return nil, fmt.Errorf("%w: driver %q", models.ErrIntrospectionUnavailable, conn.Driver)
	}

	dsn, err := DSN(conn)
	if err != nil {
		return nil, err
	}

	gdb, err := gorm.Open(factory(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrConnection, err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrConnection, err)
	}
	sqlDB.SetMaxOpenConns(1)

	pingCtx := ctx
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		pingCtx, cancel = context.WithTimeout(ctx, pingTimeout)
		defer cancel()
	}
	if err := sqlDB.PingContext(pingCtx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("%w: %w", models.ErrConnection, err)
	}

	return gdb.WithContext(ctx), nil
}

// Close closes the connection pool behind gdb.
func Close(gdb *gorm.DB) error {
	sqlDB, err := gdb.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
