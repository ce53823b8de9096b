// Package vdataframe implements the lazy dataframe abstraction: tables whose
// columns carry append-only chains of SQL transformations, compiled into a
// single projection against the remote engine on demand.
package vdataframe

import (
	"strings"

	"github.com/afard/VerticaPy/internal/domain"
	"github.com/afard/VerticaPy/internal/sqltypes"
)

// Column is one column of a Table. It owns the transformation chain; the
// parent pointer is a non-owning back-reference used for query generation.
// The chain is never empty after construction and only ever appended to.
type Column struct {
	alias  string
	parent *Table
	transf []domain.TransformEntry
}

// Name returns the column alias.
func (c *Column) Name() string { return c.alias }

// Type returns the declared engine type of the chain's last entry,
// lower-cased.
func (c *Column) Type() string {
	return strings.ToLower(c.transf[len(c.transf)-1].Type)
}

// Category returns the semantic category of the chain's last entry.
func (c *Column) Category() domain.Category {
	return c.transf[len(c.transf)-1].Category
}

// Chain returns a copy of the transformation chain.
func (c *Column) Chain() []domain.TransformEntry {
	out := make([]domain.TransformEntry, len(c.transf))
	copy(out, c.transf)
	return out
}

// Render folds the chain over base, substituting each entry's template
// around the previous result, and returns the final SQL expression.
func (c *Column) Render(base string) string {
	expr := base
	for _, e := range c.transf {
		expr = strings.ReplaceAll(e.Template, "{}", expr)
	}
	return expr
}

// Expression returns the column's current SQL expression over its quoted
// identifier, as used in any query projecting it.
func (c *Column) Expression() string {
	return c.Render(sqltypes.QuoteIdent(c.alias))
}

// append commits one chain entry. Validation happens before the call; the
// append itself is unconditional. The owning table's cached view SQL is
// invalidated.
func (c *Column) append(e domain.TransformEntry) {
	c.transf = append(c.transf, e)
	c.parent.invalidate()
}

// IsNumeric reports whether the column category is int or float.
func (c *Column) IsNumeric() bool {
	cat := c.Category()
	return cat == domain.CategoryInt || cat == domain.CategoryFloat
}

// IsBool reports whether the declared type is boolean.
func (c *Column) IsBool() bool {
	return strings.HasPrefix(c.Type(), "bool")
}

// IsDate reports whether the column category is date.
func (c *Column) IsDate() bool { return c.Category() == domain.CategoryDate }

// IsVMap reports whether the column category is vmap.
func (c *Column) IsVMap() bool { return c.Category() == domain.CategoryVMap }

// IsArray reports whether the declared type is an array.
func (c *Column) IsArray() bool {
	return strings.HasPrefix(c.Type(), "array")
}
