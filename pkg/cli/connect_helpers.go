package cli

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/term"

	"github.com/afard/VerticaPy/internal/config"
	"github.com/afard/VerticaPy/internal/engine"
	"github.com/afard/VerticaPy/internal/vdataframe"
)

// resolveConnection reads the DSN section selected by the root flags and
// prompts for a password when none resolved and stdin is a terminal.
func resolveConnection(opts *rootOptions) (*config.ConnectionConfig, error) {
	path := opts.dsn
	if path == "" {
		path = config.DefaultDSNPath()
	}
	if opts.section == "" {
		return nil, fmt.Errorf("no DSN section selected (use --section, VPY_SECTION, or a profile)")
	}
	mode := config.EnvStrict
	if opts.lenientEnv {
		mode = config.EnvLenient
	}
	cfg, err := config.ReadDSN(opts.section, path, mode)
	if err != nil {
		return nil, err
	}
	if cfg.Password == "" && term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintf(os.Stderr, "Password for %s@%s: ", cfg.User, cfg.Host)
		raw, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return nil, fmt.Errorf("read password: %w", err)
		}
		cfg.Password = string(raw)
	}
	return cfg, nil
}

// openExecutor connects to the engine selected by the root flags.
func openExecutor(opts *rootOptions) (*engine.VerticaExecAdapter, *sql.DB, error) {
	cfg, err := resolveConnection(opts)
	if err != nil {
		return nil, nil, err
	}
	db, err := engine.Connect(cfg)
	if err != nil {
		return nil, nil, err
	}
	return engine.NewVerticaExecAdapter(db, slog.Default()), db, nil
}

// openTable connects and loads the named relation.
func openTable(ctx context.Context, opts *rootOptions, relation string) (*vdataframe.Table, *sql.DB, error) {
	exec, db, err := openExecutor(opts)
	if err != nil {
		return nil, nil, err
	}
	t, err := vdataframe.FromRelation(ctx, exec, relation)
	if err != nil {
		db.Close() //nolint:errcheck
		return nil, nil, err
	}
	return t, db, nil
}
