package tablesample_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/afard/VerticaPy/internal/tablesample"
)

func TestTableSample(t *testing.T) {
	ts := tablesample.New("column", "dtype")
	ts.Append("age", "int")
	ts.Append("name") // short rows are padded

	require.Equal(t, 2, ts.Len())
	assert.Equal(t, []string{"column", "dtype"}, ts.Columns())
	assert.Equal(t, []string{"age", "int"}, ts.Rows()[0])
	assert.Equal(t, []string{"name", ""}, ts.Rows()[1])
}

func TestRender(t *testing.T) {
	ts := tablesample.New("column", "dtype")
	ts.Append("age", "int")

	var buf bytes.Buffer
	ts.Render(&buf)
	out := buf.String()
	assert.Contains(t, out, "age")
	assert.Contains(t, out, "int")
	assert.NotEmpty(t, out)
}
