package vdataframe

import (
	"context"
	"strings"

	"github.com/afard/VerticaPy/internal/domain"
	"github.com/afard/VerticaPy/internal/sqltypes"
)

// FromRelation builds a Table over the named remote relation. Column names
// and native types come from a metadata probe; each column starts with an
// identity chain entry carrying the engine's native type and its category.
// Nothing engine-side is mutated.
func FromRelation(ctx context.Context, exec domain.Executor, relation string) (*Table, error) {
	metas, err := exec.Describe(ctx, relation)
	if err != nil {
		return nil, err
	}
	if len(metas) == 0 {
		return nil, domain.ErrParameter("relation %q has no columns", relation)
	}
	t := &Table{
		relation: relation,
		exec:     exec,
		byName:   make(map[string]*Column, len(metas)),
	}
	for _, m := range metas {
		ctype := strings.ToLower(strings.TrimSpace(m.Type))
		entry := domain.TransformEntry{
			Template: "{}",
			Type:     ctype,
			Category: sqltypes.ToCategory(ctype),
		}
		if err := t.addColumn(m.Name, entry); err != nil {
			return nil, err
		}
	}
	return t, nil
}
