package vdataframe

import (
	"fmt"
	"strings"

	"github.com/afard/VerticaPy/internal/domain"
	"github.com/afard/VerticaPy/internal/sqltypes"
)

// viewAlias names the derived table produced by CurrentSQL.
const viewAlias = `"vpy_view"`

// Table owns an ordered set of uniquely named Columns over one remote
// relation and materializes the query representing all pending
// transformations. All engine access goes through the Executor port; the
// table itself never mutates engine state.
type Table struct {
	relation string
	exec     domain.Executor
	columns  []*Column
	byName   map[string]*Column
	history  []string
	viewSQL  string
}

// Relation returns the name of the remote relation the table was built from.
func (t *Table) Relation() string { return t.relation }

// Columns returns the ordered column names.
func (t *Table) Columns() []string {
	names := make([]string, len(t.columns))
	for i, c := range t.columns {
		names[i] = c.alias
	}
	return names
}

// Column looks up a column by name, case-insensitively.
func (t *Table) Column(name string) (*Column, bool) {
	c, ok := t.byName[strings.ToLower(strings.TrimSpace(name))]
	return c, ok
}

// Category returns the semantic category of the named column, or
// CategoryUndefined when the column does not exist. It never fails.
func (t *Table) Category(name string) domain.Category {
	if c, ok := t.Column(name); ok {
		return c.Category()
	}
	return domain.CategoryUndefined
}

// DeclaredType returns the declared engine type of the named column, or the
// empty string when the column does not exist. It never fails.
func (t *Table) DeclaredType(name string) string {
	if c, ok := t.Column(name); ok {
		return c.Type()
	}
	return ""
}

// CurrentSQL returns the relation expression representing every pending
// transformation: the bare relation when no column has been rewritten, or a
// derived table projecting each column's rendered chain. The result is
// cached until the next chain append.
func (t *Table) CurrentSQL() string {
	if t.viewSQL != "" {
		return t.viewSQL
	}
	transformed := false
	for _, c := range t.columns {
		if len(c.transf) > 1 {
			transformed = true
			break
		}
	}
	if !transformed {
		t.viewSQL = t.relation
		return t.viewSQL
	}
	projections := make([]string, len(t.columns))
	for i, c := range t.columns {
		projections[i] = fmt.Sprintf("%s AS %s", c.Expression(), sqltypes.QuoteIdent(c.alias))
	}
	t.viewSQL = fmt.Sprintf("(SELECT %s FROM %s) %s",
		strings.Join(projections, ", "), t.relation, viewAlias)
	return t.viewSQL
}

// History returns the log of committed transformations.
func (t *Table) History() []string {
	out := make([]string, len(t.history))
	copy(out, t.history)
	return out
}

func (t *Table) addHistory(format string, args ...interface{}) {
	t.history = append(t.history, fmt.Sprintf(format, args...))
}

func (t *Table) invalidate() { t.viewSQL = "" }

func (t *Table) addColumn(name string, first domain.TransformEntry) error {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return domain.ErrParameter("empty column name in relation %s", t.relation)
	}
	if _, exists := t.byName[key]; exists {
		return domain.ErrParameter("duplicate column %q in relation %s", name, t.relation)
	}
	c := &Column{
		alias:  strings.TrimSpace(name),
		parent: t,
		transf: []domain.TransformEntry{first},
	}
	t.columns = append(t.columns, c)
	t.byName[key] = c
	return nil
}
