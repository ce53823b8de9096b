package vdataframe_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/afard/VerticaPy/internal/domain"
)

func TestRenderFoldsChain(t *testing.T) {
	exec := &fakeExecutor{
		metas:   []domain.ColumnMeta{{Name: "age", Type: "varchar"}},
		scalars: []string{"10|20|30"},
	}
	table := loadTable(t, exec)

	_, err := table.AsType(ctx, "age", "vmap")
	require.NoError(t, err)
	_, err = table.AsType(ctx, "age", "varchar")
	require.NoError(t, err)

	col, _ := table.Column("age")
	expr := col.Expression()
	// Each template wraps the previous result, innermost first.
	assert.Contains(t, expr, `MAPDELIMITEDEXTRACTOR("age"`)
	assert.Contains(t, expr, "MAPTOSTRING(MAPDELIMITEDEXTRACTOR")
}

func TestCurrentSQL(t *testing.T) {
	exec := &fakeExecutor{metas: []domain.ColumnMeta{
		{Name: "a", Type: "int"},
		{Name: "b", Type: "varchar"},
	}}
	table := loadTable(t, exec)

	// Without transformations the view is the bare relation.
	assert.Equal(t, "public.sales", table.CurrentSQL())

	_, err := table.AsType(ctx, "b", "int")
	require.NoError(t, err)

	view := table.CurrentSQL()
	assert.Contains(t, view, `SELECT "a" AS "a", "b"::int AS "b" FROM public.sales`)
	assert.Contains(t, view, `"vpy_view"`)
	// The view is cached between appends.
	assert.Equal(t, view, table.CurrentSQL())
}

func TestPredicates(t *testing.T) {
	exec := &fakeExecutor{metas: []domain.ColumnMeta{
		{Name: "n", Type: "int"},
		{Name: "f", Type: "float"},
		{Name: "ok", Type: "boolean"},
		{Name: "d", Type: "timestamptz"},
		{Name: "s", Type: "varchar"},
		{Name: "arr", Type: "array[int8]"},
	}}
	table := loadTable(t, exec)

	col := func(name string) interface {
		IsNumeric() bool
		IsBool() bool
		IsDate() bool
		IsVMap() bool
		IsArray() bool
	} {
		c, ok := table.Column(name)
		require.True(t, ok)
		return c
	}

	assert.True(t, col("n").IsNumeric())
	assert.True(t, col("f").IsNumeric())
	assert.True(t, col("ok").IsBool())
	assert.True(t, col("ok").IsNumeric()) // booleans classify as int
	assert.True(t, col("d").IsDate())
	assert.True(t, col("arr").IsArray())
	assert.False(t, col("s").IsNumeric())
	assert.False(t, col("s").IsVMap())
	assert.False(t, col("n").IsDate())
}

func TestColumnLookupIsCaseInsensitive(t *testing.T) {
	exec := &fakeExecutor{metas: []domain.ColumnMeta{{Name: "Age", Type: "int"}}}
	table := loadTable(t, exec)

	c, ok := table.Column("AGE")
	require.True(t, ok)
	assert.Equal(t, "Age", c.Name())
}
