// Package config handles connection configuration: typed DSN parsing from
// INI files with optional environment indirection for credentials.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/ini.v1"

	"github.com/afard/VerticaPy/internal/domain"
)

// autoConnectionSection is reserved for the saved auto-connection and is
// hidden from connection listings.
const autoConnectionSection = "VERTICAPY_AUTO_CONNECTION"

// EnvMode controls how a missing environment variable is treated when the
// DSN's env flag redirects credential values through the environment.
type EnvMode int

const (
	// EnvStrict fails the whole read when a referenced variable is unset.
	EnvStrict EnvMode = iota
	// EnvLenient skips the field and keeps its default.
	EnvLenient
)

// ConnectionConfig is the typed result of parsing one DSN section. Every
// recognized key maps to a field; unrecognized keys are preserved in Extra.
type ConnectionConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string

	SessionLabel      string
	ConnectionTimeout int

	SSL                   bool
	Autocommit            bool
	UsePreparedStatements bool
	ConnectionLoadBalance bool
	DisableCopyLocal      bool

	BackupServerNodes []string

	KerberosServiceName string
	KerberosHostName    string

	Extra map[string]string
}

// DefaultDSNPath returns the DSN file location: the VERTICAPY_CONNECTIONS
// environment variable when set, otherwise ~/.vpy/connections.ini.
func DefaultDSNPath() string {
	if p := os.Getenv("VERTICAPY_CONNECTIONS"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".vpy", "connections.ini")
}

// AvailableConnections lists the DSN sections defined in the file, hiding
// the reserved auto-connection section.
func AvailableConnections(path string) ([]string, error) {
	file, err := ini.Load(path)
	if err != nil {
		return nil, domain.ErrParameter("read DSN file %s: %v", path, err)
	}
	var out []string
	for _, name := range file.SectionStrings() {
		if name == ini.DefaultSection || name == autoConnectionSection {
			continue
		}
		out = append(out, name)
	}
	return out, nil
}

// ReadDSN parses one section of the DSN file into a ConnectionConfig.
//
// When the section sets the env flag, credential values (uid/user and
// pwd/password) name environment variables instead of carrying the value
// directly; an unset variable is an error in EnvStrict mode and skipped in
// EnvLenient mode.
func ReadDSN(section, path string, mode EnvMode) (*ConnectionConfig, error) {
	file, err := ini.Load(path)
	if err != nil {
		return nil, domain.ErrParameter("read DSN file %s: %v", path, err)
	}
	sec, err := file.GetSection(section)
	if err != nil {
		return nil, domain.ErrParameter("the DSN section %q does not exist", section)
	}

	cfg := &ConnectionConfig{
		Port:         5433,
		User:         "dbadmin",
		SessionLabel: "verticapy-go-" + uuid.NewString(),
		Extra:        map[string]string{},
	}

	env := false
	for _, key := range sec.Keys() {
		if strings.HasPrefix(strings.ToLower(key.Name()), "env") {
			env = truthy(key.String())
			break
		}
	}

	for _, key := range sec.Keys() {
		name := strings.ToLower(key.Name())
		value := key.String()

		switch {
		case strings.HasPrefix(name, "env"):
			// Mode flag, handled above.

		case name == "uid" || name == "user":
			v, ok, err := resolveCredential(name, value, env, mode)
			if err != nil {
				return nil, err
			}
			if ok {
				cfg.User = v
			}

		case name == "pwd" || name == "password":
			v, ok, err := resolveCredential(name, value, env, mode)
			if err != nil {
				return nil, err
			}
			if ok {
				cfg.Password = v
			}

		case name == "servername" || name == "server" || name == "host":
			cfg.Host = value

		case name == "database" || name == "dbname" || name == "db":
			cfg.Database = value

		case name == "port":
			n, err := strconv.Atoi(value)
			if err != nil {
				return nil, domain.ErrParameter("section %q: port %q is not numeric", section, value)
			}
			cfg.Port = n

		case name == "connection_timeout":
			n, err := strconv.Atoi(value)
			if err != nil {
				return nil, domain.ErrParameter("section %q: connection_timeout %q is not numeric", section, value)
			}
			cfg.ConnectionTimeout = n

		case name == "ssl":
			cfg.SSL = truthy(value)
		case name == "autocommit":
			cfg.Autocommit = truthy(value)
		case name == "use_prepared_statements":
			cfg.UsePreparedStatements = truthy(value)
		case name == "connection_load_balance":
			cfg.ConnectionLoadBalance = truthy(value)
		case name == "disable_copy_local":
			cfg.DisableCopyLocal = truthy(value)

		case name == "backup_server_node":
			for _, node := range strings.Split(value, ",") {
				if node = strings.TrimSpace(node); node != "" {
					cfg.BackupServerNodes = append(cfg.BackupServerNodes, node)
				}
			}

		case name == "kerberosservicename":
			cfg.KerberosServiceName = value
		case name == "kerberoshostname":
			cfg.KerberosHostName = value

		case name == "session_label":
			cfg.SessionLabel = value

		case strings.HasPrefix(name, "vp_test_"):
			cfg.Extra[name[len("vp_test_"):]] = value

		default:
			cfg.Extra[name] = value
		}
	}

	return cfg, nil
}

// resolveCredential applies env indirection to a credential value. ok is
// false when the field should keep its default.
func resolveCredential(name, value string, env bool, mode EnvMode) (string, bool, error) {
	if !env {
		return value, true, nil
	}
	if v, found := os.LookupEnv(value); found {
		return v, true, nil
	}
	if mode == EnvStrict {
		return "", false, domain.ErrParameter(
			"the %s environment variable %q does not exist and the env option is set", name, value)
	}
	return "", false, nil
}

func truthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "true", "t", "yes", "y", "1":
		return true
	}
	return false
}
