package engine

import (
	"context"
	"fmt"
	"strings"

	"github.com/afard/VerticaPy/internal/domain"
)

// IsVMapColumn probes whether the stored values of column within expr are
// flex VMaps, using MAPVERSION on a single non-null value. A column whose
// chain already declares vmap never needs this probe.
func IsVMapColumn(ctx context.Context, exec domain.Executor, column, expr string) (bool, error) {
	query := fmt.Sprintf(
		"SELECT (MAPVERSION(%s) <> -1) FROM %s WHERE %s IS NOT NULL LIMIT 1",
		column, expr, column)
	val, err := exec.QueryScalar(ctx, query)
	if err != nil {
		return false, fmt.Errorf("vmap probe on %s: %w", column, err)
	}
	switch strings.ToLower(strings.TrimSpace(val)) {
	case "true", "t", "1":
		return true, nil
	}
	return false, nil
}
