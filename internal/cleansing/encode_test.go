package cleansing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cleansecli/internal/dataset"
)

func TestEncodeCategorical(t *testing.T) {
	table := dataset.NewTable([]string{"a", "b"})
	require.NoError(t, table.Append(dataset.Row{dataset.Number(1), dataset.Text("x")}))
	require.NoError(t, table.Append(dataset.Row{dataset.Number(2), dataset.Text("y")}))
	require.NoError(t, table.Append(dataset.Row{dataset.Number(0), dataset.Text("z")}))

	out := EncodeCategorical(table, discardLogger())

	// Reference category x (lexicographically smallest) is omitted.
	assert.Equal(t, []string{"a", "b_y", "b_z"}, out.Columns())
	require.Equal(t, 3, out.RowCount())

	assert.True(t, out.Cell(0, "b_y").Equal(dataset.Number(0)))
	assert.True(t, out.Cell(0, "b_z").Equal(dataset.Number(0)))
	assert.True(t, out.Cell(1, "b_y").Equal(dataset.Number(1)))
	assert.True(t, out.Cell(1, "b_z").Equal(dataset.Number(0)))
	assert.True(t, out.Cell(2, "b_y").Equal(dataset.Number(0)))
	assert.True(t, out.Cell(2, "b_z").Equal(dataset.Number(1)))
}

func TestEncodeCategoricalSingleCategory(t *testing.T) {
	table := dataset.NewTable([]string{"a", "b"})
	require.NoError(t, table.Append(dataset.Row{dataset.Number(1), dataset.Text("only")}))
	require.NoError(t, table.Append(dataset.Row{dataset.Number(2), dataset.Text("only")}))

	out := EncodeCategorical(table, discardLogger())

	assert.Equal(t, []string{"a"}, out.Columns(), "single-category column yields zero indicators")
	assert.Equal(t, 2, out.RowCount())
}

func TestEncodeCategoricalNumericPassthrough(t *testing.T) {
	table := dataset.NewTable([]string{"a", "b"})
	require.NoError(t, table.Append(dataset.Row{dataset.Number(1), dataset.Number(10)}))
	require.NoError(t, table.Append(dataset.Row{dataset.Number(2), dataset.Number(20)}))

	out := EncodeCategorical(table, discardLogger())

	assert.Equal(t, []string{"a", "b"}, out.Columns())
	assert.True(t, out.Cell(1, "b").Equal(dataset.Number(20)))
}

func TestEncodeCategoricalMixedColumnIsCategorical(t *testing.T) {
	// One non-numeric cell makes the whole column categorical.
	table := dataset.NewTable([]string{"a"})
	require.NoError(t, table.Append(dataset.Row{dataset.Number(1)}))
	require.NoError(t, table.Append(dataset.Row{dataset.Text("oops")}))

	out := EncodeCategorical(table, discardLogger())
	assert.Equal(t, []string{"a_oops"}, out.Columns(), "categories sort as strings, 1 is the reference")
}

func TestEncodeCategoricalDeterministic(t *testing.T) {
	table := dataset.NewTable([]string{"b"})
	for _, v := range []string{"z", "y", "x", "z", "y"} {
		require.NoError(t, table.Append(dataset.Row{dataset.Text(v)}))
	}

	first := EncodeCategorical(table, discardLogger())
	second := EncodeCategorical(table, discardLogger())

	assert.Equal(t, first.Columns(), second.Columns())
	for i, row := range first.Rows() {
		for j, cell := range row {
			assert.True(t, cell.Equal(second.Rows()[i][j]))
		}
	}
}
