package sqlsource

import (
	"fmt"
	"net/url"
	"path/filepath"

	"gowrangle/internal/config"

	"github.com/go-sql-driver/mysql"
)

// DSN builds the driver connection string for one database of the
// configured server
func DSN(cfg config.DatabaseConfig, database string) (string, error) {
	switch cfg.Driver {
	case config.DriverMySQL:
		mc := mysql.NewConfig()
		mc.User = cfg.User
		mc.Passwd = cfg.Password
		mc.Net = "tcp"
		mc.Addr = fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
		mc.DBName = database
		return mc.FormatDSN(), nil

	case config.DriverPostgres:
		u := url.URL{
			Scheme:   "postgres",
			User:     url.UserPassword(cfg.User, cfg.Password),
			Host:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
			Path:     "/" + database,
			RawQuery: url.Values{"sslmode": {cfg.SSLMode}}.Encode(),
		}
		return u.String(), nil

	case config.DriverSQLite:
		// DB_HOST is the directory holding one <database>.db file per source
		return filepath.Join(cfg.Host, database+".db"), nil
	}
	return "", fmt.Errorf("unsupported driver %q", cfg.Driver)
}
