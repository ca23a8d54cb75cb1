package cleansing

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cleansecli/internal/dataset"
	cerrors "cleansecli/internal/errors"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func tableWithMissing(t *testing.T) *dataset.Table {
	t.Helper()
	table := dataset.NewTable([]string{"a", "b"})
	require.NoError(t, table.Append(dataset.Row{dataset.Number(1), dataset.Text("x")}))
	require.NoError(t, table.Append(dataset.Row{dataset.Missing, dataset.Text("y")}))
	require.NoError(t, table.Append(dataset.Row{dataset.Number(3), dataset.Missing}))
	require.NoError(t, table.Append(dataset.Row{dataset.Number(4), dataset.Text("z")}))
	return table
}

func TestHandleMissingDrop(t *testing.T) {
	table := tableWithMissing(t)

	out, err := HandleMissing(table, StrategyDrop, nil, discardLogger())
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, out.Columns(), "column set unchanged")
	require.Equal(t, 2, out.RowCount())
	assert.True(t, out.Cell(0, "a").Equal(dataset.Number(1)))
	assert.True(t, out.Cell(1, "a").Equal(dataset.Number(4)), "survivors keep original order")
	for _, row := range out.Rows() {
		for _, cell := range row {
			assert.False(t, cell.IsMissing())
		}
	}
	assert.Equal(t, 4, table.RowCount(), "input table is not mutated")
}

func TestHandleMissingFill(t *testing.T) {
	table := tableWithMissing(t)
	fill := "0"

	out, err := HandleMissing(table, StrategyFill, &fill, discardLogger())
	require.NoError(t, err)

	assert.Equal(t, 4, out.RowCount(), "shape is preserved")
	assert.True(t, out.Cell(1, "a").Equal(dataset.Number(0)), "numeric-looking literal becomes a number")
	assert.True(t, out.Cell(2, "b").Equal(dataset.Number(0)), "literal is applied verbatim to every column")
}

func TestHandleMissingFillTextLiteral(t *testing.T) {
	table := tableWithMissing(t)
	fill := "unknown"

	out, err := HandleMissing(table, StrategyFill, &fill, discardLogger())
	require.NoError(t, err)
	assert.True(t, out.Cell(1, "a").Equal(dataset.Text("unknown")))
}

func TestHandleMissingFillWithoutValue(t *testing.T) {
	_, err := HandleMissing(tableWithMissing(t), StrategyFill, nil, discardLogger())

	require.Error(t, err)
	assert.Equal(t, cerrors.CodeConfig, cerrors.CodeOf(err))
}

func TestHandleMissingInvalidStrategy(t *testing.T) {
	_, err := HandleMissing(tableWithMissing(t), Strategy("interpolate"), nil, discardLogger())

	require.Error(t, err)
	assert.Equal(t, cerrors.CodeConfig, cerrors.CodeOf(err))
}
