package vdataframe_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/afard/VerticaPy/internal/domain"
	"github.com/afard/VerticaPy/internal/vdataframe"
)

func TestFromRelation(t *testing.T) {
	exec := &fakeExecutor{metas: []domain.ColumnMeta{
		{Name: "id", Type: "INT"},
		{Name: "name", Type: "VARCHAR(80)"},
	}}
	table, err := vdataframe.FromRelation(ctx, exec, "public.people")
	require.NoError(t, err)

	assert.Equal(t, "public.people", table.Relation())
	assert.Equal(t, []string{"id", "name"}, table.Columns())
	assert.Equal(t, domain.CategoryInt, table.Category("id"))
	assert.Equal(t, domain.CategoryText, table.Category("name"))

	// Every chain starts with exactly one identity entry.
	col, _ := table.Column("id")
	require.Len(t, col.Chain(), 1)
	assert.Equal(t, "{}", col.Chain()[0].Template)
}

func TestFromRelationRejectsEmptyRelation(t *testing.T) {
	table, err := vdataframe.FromRelation(ctx, &fakeExecutor{}, "public.empty")
	require.Error(t, err)
	assert.Nil(t, table)
}

func TestFromRelationRejectsDuplicateColumns(t *testing.T) {
	exec := &fakeExecutor{metas: []domain.ColumnMeta{
		{Name: "id", Type: "int"},
		{Name: "ID", Type: "int"},
	}}
	_, err := vdataframe.FromRelation(ctx, exec, "public.people")
	var perr *domain.ParameterError
	require.ErrorAs(t, err, &perr)
}
