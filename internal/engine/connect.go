package engine

import (
	"database/sql"
	"fmt"
	"net/url"
	"strings"

	// Vertica driver, registered as "vertica".
	_ "github.com/vertica/vertica-sql-go"

	"github.com/afard/VerticaPy/internal/config"
)

// BuildDSN renders a ConnectionConfig as a vertica:// connection string.
func BuildDSN(cfg *config.ConnectionConfig) string {
	u := url.URL{
		Scheme: "vertica",
		User:   url.UserPassword(cfg.User, cfg.Password),
		Host:   fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Path:   "/" + cfg.Database,
	}

	q := url.Values{}
	if cfg.SSL {
		q.Set("tlsmode", "server")
	} else {
		q.Set("tlsmode", "none")
	}
	if cfg.SessionLabel != "" {
		q.Set("client_label", cfg.SessionLabel)
	}
	if cfg.UsePreparedStatements {
		q.Set("use_prepared_statements", "1")
	}
	if cfg.ConnectionLoadBalance {
		q.Set("connection_load_balance", "1")
	}
	if len(cfg.BackupServerNodes) > 0 {
		q.Set("backup_server_node", strings.Join(cfg.BackupServerNodes, ","))
	}
	if cfg.KerberosServiceName != "" {
		q.Set("krbservicename", cfg.KerberosServiceName)
	}
	if cfg.KerberosHostName != "" {
		q.Set("krbhostname", cfg.KerberosHostName)
	}
	u.RawQuery = q.Encode()
	return u.String()
}

// Connect opens a database handle for the given connection configuration.
func Connect(cfg *config.ConnectionConfig) (*sql.DB, error) {
	db, err := sql.Open("vertica", BuildDSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("open vertica connection: %w", err)
	}
	return db, nil
}
