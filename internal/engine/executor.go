// Package engine adapts a database/sql connection to the Executor port
// consumed by the translation layer.
package engine

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/afard/VerticaPy/internal/domain"
)

// Compile-time check.
var _ domain.Executor = (*VerticaExecAdapter)(nil)

// VerticaExecAdapter wraps a *sql.DB to implement domain.Executor. The
// engine version is fetched once and cached; everything else is a direct
// pass-through of opaque SQL text.
type VerticaExecAdapter struct {
	db      *sql.DB
	logger  *slog.Logger
	version *domain.Version
}

// NewVerticaExecAdapter creates an adapter over db. logger may be nil.
func NewVerticaExecAdapter(db *sql.DB, logger *slog.Logger) *VerticaExecAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &VerticaExecAdapter{db: db, logger: logger}
}

// Query runs sql and discards any rows.
func (a *VerticaExecAdapter) Query(ctx context.Context, query string) error {
	a.logger.DebugContext(ctx, "engine probe", "sql", query)
	rows, err := a.db.QueryContext(ctx, query)
	if err != nil {
		return err
	}
	defer rows.Close() //nolint:errcheck
	for rows.Next() {
	}
	return rows.Err()
}

// QueryScalar runs sql and returns the first column of the first row as
// text. An empty result yields an empty string.
func (a *VerticaExecAdapter) QueryScalar(ctx context.Context, query string) (string, error) {
	a.logger.DebugContext(ctx, "engine scalar probe", "sql", query)
	var value sql.NullString
	err := a.db.QueryRowContext(ctx, query).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return value.String, nil
}

// Describe returns the column names and engine type strings of relation
// using a zero-row probe.
func (a *VerticaExecAdapter) Describe(ctx context.Context, relation string) ([]domain.ColumnMeta, error) {
	rows, err := a.db.QueryContext(ctx, fmt.Sprintf("SELECT * FROM %s LIMIT 0", relation))
	if err != nil {
		return nil, fmt.Errorf("describe %s: %w", relation, err)
	}
	defer rows.Close() //nolint:errcheck

	types, err := rows.ColumnTypes()
	if err != nil {
		return nil, fmt.Errorf("describe %s: %w", relation, err)
	}
	metas := make([]domain.ColumnMeta, len(types))
	for i, ct := range types {
		metas[i] = domain.ColumnMeta{Name: ct.Name(), Type: ct.DatabaseTypeName()}
	}
	return metas, rows.Err()
}

// Version reports the engine version triple, cached after the first fetch.
func (a *VerticaExecAdapter) Version(ctx context.Context) (domain.Version, error) {
	if a.version != nil {
		return *a.version, nil
	}
	raw, err := a.QueryScalar(ctx, "SELECT version()")
	if err != nil {
		return domain.Version{}, fmt.Errorf("engine version: %w", err)
	}
	v, err := ParseVersion(raw)
	if err != nil {
		return domain.Version{}, err
	}
	a.version = &v
	return v, nil
}
