package vdataframe

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/afard/VerticaPy/internal/domain"
	"github.com/afard/VerticaPy/internal/sqltypes"
	"github.com/afard/VerticaPy/internal/tablesample"
)

// Minimum engine versions for version-gated casts.
var (
	minArrayVersion  = domain.Version{Major: 10}
	minToJSONVersion = domain.Version{Major: 10, Minor: 1}
)

// AsType converts the column to the requested type by appending one entry to
// its transformation chain. The conversion is compiled to a SQL expression,
// optionally parameterized by a single format-inference probe, then checked
// with a bounded validation probe before anything is committed. On failure
// the chain is left exactly as it was.
//
// Recognized compound forms: "vmap(h1,h2,...)" supplies header names for
// delimited-map extraction. Returns the owning table for chaining.
func (c *Column) AsType(ctx context.Context, spec string) (*Table, error) {
	requested := sqltypes.ToSQLType(spec)
	entry, err := c.resolve(ctx, requested)
	if err != nil {
		return nil, err
	}

	ident := sqltypes.QuoteIdent(c.alias)
	probe := sqltypes.CleanQuery(fmt.Sprintf(
		`SELECT /*+LABEL('vpy.astype')*/ %s AS %s FROM %s WHERE %s IS NOT NULL LIMIT 20`,
		strings.ReplaceAll(entry.Template, "{}", ident), ident, c.parent.CurrentSQL(), ident))
	if err := c.parent.exec.Query(ctx, probe); err != nil {
		return nil, domain.ErrConversion(c.alias, requested, err)
	}

	c.append(entry)
	c.parent.addHistory("[AsType]: column %s converted to %s", c.alias, entry.Type)
	return c.parent, nil
}

// resolve dispatches on (target family, current category) and builds the
// chain entry for the requested type, issuing at most one format-inference
// probe. Requested and declared types are kept distinct: the entry records
// the type the expression actually produces.
func (c *Column) resolve(ctx context.Context, requested string) (domain.TransformEntry, error) {
	switch {
	case (requested == "array" || strings.HasPrefix(requested, "vmap")) &&
		c.Category() == domain.CategoryText:
		return c.resolveCollection(ctx, requested)

	case sqltypes.IsCharFamily(requested) && c.Category() == domain.CategoryVMap:
		return domain.TransformEntry{
			Template: sqltypes.CleanQuery(fmt.Sprintf(
				"MAPTOSTRING({} USING PARAMETERS canonical_json=false)::%s", requested)),
			Type:     requested,
			Category: sqltypes.ToCategory(requested),
		}, nil

	case requested == "json":
		// The declared type is varchar regardless of the requested label.
		template := "MAPTOSTRING({} USING PARAMETERS canonical_json=true)"
		if c.Category() != domain.CategoryVMap {
			if err := c.requireVersion(ctx, minToJSONVersion); err != nil {
				return domain.TransformEntry{}, err
			}
			template = "TO_JSON({})"
		}
		return domain.TransformEntry{
			Template: template,
			Type:     "varchar",
			Category: domain.CategoryText,
		}, nil

	default:
		return domain.TransformEntry{
			Template: "{}::" + requested,
			Type:     requested,
			Category: sqltypes.ToCategory(requested),
		}, nil
	}
}

// resolveCollection builds the map/array extraction entry for a text column.
// It fetches the longest stored value and infers the separator, the bracket
// characters, and JSON-ness from that single sample.
func (c *Column) resolveCollection(ctx context.Context, requested string) (domain.TransformEntry, error) {
	if requested == "array" {
		if err := c.requireVersion(ctx, minArrayVersion); err != nil {
			return domain.TransformEntry{}, err
		}
	}

	ident := sqltypes.QuoteIdent(c.alias)
	sample, err := c.parent.exec.QueryScalar(ctx, sqltypes.CleanQuery(fmt.Sprintf(
		`SELECT %s FROM %s ORDER BY LENGTH(%s) DESC LIMIT 1`,
		ident, c.parent.CurrentSQL(), ident)))
	if err != nil {
		return domain.TransformEntry{}, domain.ErrConversion(c.alias, requested, err)
	}
	sample = strings.TrimSpace(sample)
	sep := sqltypes.GuessSeparator(sample)

	if strings.HasPrefix(requested, "vmap") {
		var template string
		if sqltypes.IsJSONObject(sample) {
			template = "MAPJSONEXTRACTOR({} USING PARAMETERS flatten_maps=false)"
		} else {
			headers := ""
			if h, ok := sqltypes.VMapHeaders(requested); ok {
				headers = fmt.Sprintf(", header_names='%s'", h)
			}
			template = fmt.Sprintf(
				"MAPDELIMITEDEXTRACTOR({} USING PARAMETERS delimiter='%s'%s)", sep, headers)
		}
		return domain.TransformEntry{
			Template: template,
			Type:     "vmap",
			Category: domain.CategoryVMap,
		}, nil
	}

	nullElement := ""
	if sqltypes.HasEmptyElements(sample, sep) {
		nullElement = ", collection_null_element=''"
	}
	brackets := ""
	if open, closing, ok := sqltypes.CollectionBrackets(sample); ok {
		brackets = fmt.Sprintf(", collection_open='%s', collection_close='%s'", open, closing)
	}
	return domain.TransformEntry{
		Template: fmt.Sprintf(
			"STRING_TO_ARRAY({} USING PARAMETERS collection_delimiter='%s'%s%s)",
			sep, brackets, nullElement),
		Type:     "array",
		Category: sqltypes.ToCategory("array"),
	}, nil
}

func (c *Column) requireVersion(ctx context.Context, min domain.Version) error {
	v, err := c.parent.exec.Version(ctx)
	if err != nil {
		return err
	}
	if !v.AtLeast(min) {
		return &domain.VersionError{Required: min, Actual: v}
	}
	return nil
}

// AsType converts one named column. See Column.AsType.
func (t *Table) AsType(ctx context.Context, column, spec string) (*Table, error) {
	c, ok := t.Column(column)
	if !ok {
		return nil, domain.ErrParameter("column %q does not exist in %s", column, t.relation)
	}
	return c.AsType(ctx, spec)
}

// AsTypes converts several columns in one call. Columns are processed in
// name order; the first failure stops the walk with the columns converted so
// far committed.
func (t *Table) AsTypes(ctx context.Context, types map[string]string) (*Table, error) {
	names := make([]string, 0, len(types))
	for name := range types {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if _, err := t.AsType(ctx, name, types[name]); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// BoolToInt converts every boolean column to integer.
func (t *Table) BoolToInt(ctx context.Context) (*Table, error) {
	for _, c := range t.columns {
		if !c.IsBool() {
			continue
		}
		if _, err := c.AsType(ctx, "int"); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// CategoricalColumns returns the columns usable as categories: integer
// columns are included when their approximate distinct count stays under
// maxCardinality, float columns never, all other columns always.
func (t *Table) CategoricalColumns(ctx context.Context, maxCardinality int) ([]string, error) {
	var out []string
	for _, c := range t.columns {
		isCat := true
		switch {
		case c.Category() == domain.CategoryInt && !c.IsBool():
			val, err := t.exec.QueryScalar(ctx, sqltypes.CleanQuery(fmt.Sprintf(
				`SELECT /*+LABEL('vpy.catcol')*/ (APPROXIMATE_COUNT_DISTINCT(%s) < %d) FROM %s`,
				sqltypes.QuoteIdent(c.alias), maxCardinality, t.CurrentSQL())))
			if err != nil {
				return nil, err
			}
			isCat = parseBool(val)
		case c.Category() == domain.CategoryFloat:
			isCat = false
		}
		if isCat {
			out = append(out, c.alias)
		}
	}
	return out, nil
}

// DateColumns returns the names of all date-category columns.
func (t *Table) DateColumns() []string {
	var out []string
	for _, c := range t.columns {
		if c.IsDate() {
			out = append(out, c.alias)
		}
	}
	return out
}

// NumericColumns returns the names of all numeric columns, minus any listed
// in exclude.
func (t *Table) NumericColumns(exclude ...string) []string {
	skip := make(map[string]bool, len(exclude))
	for _, name := range exclude {
		skip[strings.ToLower(strings.TrimSpace(name))] = true
	}
	var out []string
	for _, c := range t.columns {
		if c.IsNumeric() && !skip[strings.ToLower(c.alias)] {
			out = append(out, c.alias)
		}
	}
	return out
}

// DTypes returns the declared type of every column as a TableSample.
func (t *Table) DTypes() *tablesample.TableSample {
	ts := tablesample.New("column", "dtype")
	for _, c := range t.columns {
		ts.Append(c.alias, c.Type())
	}
	return ts
}

func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "t", "yes", "y", "1":
		return true
	}
	return false
}
