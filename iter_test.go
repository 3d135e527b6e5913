package tablego

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRowsIterator(t *testing.T) {
	dt, err := NewFromSeq(slices.Values([]float64{1, 2, 3, 4, 5, 6}), 2, RowMajor)
	require.NoError(t, err)

	var got [][]float64
	for i, row := range dt.Rows() {
		vals, err := row.Values()
		require.NoError(t, err)
		assert.Equal(t, len(got), i)
		got = append(got, vals)
	}
	assert.Equal(t, [][]float64{{1, 2}, {3, 4}, {5, 6}}, got)
}

func TestColumnsIterator(t *testing.T) {
	dt, err := NewFromSeq(slices.Values([]float64{1, 2, 3, 4, 5, 6}), 2, RowMajor)
	require.NoError(t, err)

	var got [][]float64
	for _, col := range dt.Columns() {
		vals, err := col.Values()
		require.NoError(t, err)
		got = append(got, vals)
	}
	assert.Equal(t, [][]float64{{1, 3, 5}, {2, 4, 6}}, got)
}

func TestIteratorsRestartable(t *testing.T) {
	dt, err := NewWithShape(3, 2, 0.0)
	require.NoError(t, err)

	rows := dt.Rows()
	for range 2 {
		n := 0
		for range rows {
			n++
		}
		assert.Equal(t, 3, n)
	}
}

func TestRowCursor(t *testing.T) {
	dt, err := NewFromSeq(slices.Values([]float64{1, 2, 3, 4}), 2, RowMajor)
	require.NoError(t, err)

	c := dt.RowCursor()
	assert.Equal(t, -1, c.Pos())

	require.True(t, c.Next())
	assert.Equal(t, 0, c.Pos())
	require.True(t, c.Next())
	assert.Equal(t, 1, c.Pos())
	assert.False(t, c.Next())
	assert.Equal(t, 1, c.Pos())

	view, err := c.View()
	require.NoError(t, err)
	vals, err := view.Values()
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 4}, vals)
}

func TestRowCursorSeek(t *testing.T) {
	dt, err := NewWithShape(3, 2, 0.0)
	require.NoError(t, err)

	c := dt.RowCursor()
	require.NoError(t, c.Seek(2))
	assert.Equal(t, 2, c.Pos())

	err = c.Seek(5)
	var oor *ErrIndexOutOfRange
	require.ErrorAs(t, err, &oor)
	assert.Equal(t, 2, c.Pos())
}

func TestRowCursorCompare(t *testing.T) {
	dt, err := NewWithShape(3, 2, 0.0)
	require.NoError(t, err)

	a := dt.RowCursor()
	b := dt.RowCursor()
	require.NoError(t, a.Seek(0))
	require.NoError(t, b.Seek(2))

	cmp, err := a.Compare(b)
	require.NoError(t, err)
	assert.Equal(t, -1, cmp)

	cmp, err = b.Compare(a)
	require.NoError(t, err)
	assert.Equal(t, 1, cmp)

	require.NoError(t, b.Seek(0))
	cmp, err = a.Compare(b)
	require.NoError(t, err)
	assert.Equal(t, 0, cmp)
}

func TestRowCursorCompareDifferentTables(t *testing.T) {
	a, err := NewWithShape(2, 2, 0.0)
	require.NoError(t, err)
	b, err := NewWithShape(2, 2, 0.0)
	require.NoError(t, err)

	_, err = a.RowCursor().Compare(b.RowCursor())
	assert.ErrorIs(t, err, ErrIncompatibleCursors)

	_, err = a.RowCursor().Compare(nil)
	assert.ErrorIs(t, err, ErrIncompatibleCursors)
}

func TestColumnCursor(t *testing.T) {
	dt, err := NewFromSeq(slices.Values([]float64{1, 2, 3, 4}), 2, RowMajor)
	require.NoError(t, err)

	c := dt.ColumnCursor()
	require.True(t, c.Next())
	require.True(t, c.Next())
	assert.False(t, c.Next())

	view, err := c.View()
	require.NoError(t, err)
	vals, err := view.Values()
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 4}, vals)

	other, err := NewWithShape(2, 2, 0.0)
	require.NoError(t, err)
	_, err = c.Compare(other.ColumnCursor())
	assert.ErrorIs(t, err, ErrIncompatibleCursors)
}

func TestCursorOnEmptyTable(t *testing.T) {
	dt := New[float64]()
	c := dt.RowCursor()
	assert.False(t, c.Next())
	assert.Error(t, c.Seek(0))
}
