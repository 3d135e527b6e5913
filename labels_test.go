package tablego

import (
	"maps"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLabeledTable(t *testing.T) *Table[float64] {
	t.Helper()
	dt, err := NewWithShape(2, 3, 0.0)
	require.NoError(t, err)
	return dt
}

func TestSetColumnLabel(t *testing.T) {
	dt := newLabeledTable(t)

	require.NoError(t, dt.SetColumnLabel(0, "time"))
	require.NoError(t, dt.SetColumnLabel(1, "force"))

	idx, err := dt.ColumnIndex("force")
	require.NoError(t, err)
	assert.Equal(t, 1, idx)

	label, err := dt.ColumnLabel(0)
	require.NoError(t, err)
	assert.Equal(t, "time", label)

	assert.Equal(t, 2, dt.NumColumnLabels())
}

func TestSetColumnLabelConflicts(t *testing.T) {
	dt := newLabeledTable(t)
	require.NoError(t, dt.SetColumnLabel(0, "time"))

	// Same label on another column.
	err := dt.SetColumnLabel(1, "time")
	var conflict *ErrLabelConflict
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "time", conflict.Label)
	assert.Equal(t, 1, conflict.Index)

	// Second label on an already labeled column.
	err = dt.SetColumnLabel(0, "other")
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, 0, conflict.Index)

	// Nonexistent column.
	err = dt.SetColumnLabel(9, "x")
	var oor *ErrIndexOutOfRange
	assert.ErrorAs(t, err, &oor)

	// Failures left the registry alone.
	assert.Equal(t, 1, dt.NumColumnLabels())
}

func TestSetColumnLabelsFailFast(t *testing.T) {
	dt := newLabeledTable(t)

	err := dt.SetColumnLabels(maps.All(map[string]int{"time": 9}))
	var oor *ErrIndexOutOfRange
	require.ErrorAs(t, err, &oor)
	assert.Equal(t, 0, dt.NumColumnLabels())

	require.NoError(t, dt.SetColumnLabels(maps.All(map[string]int{
		"time":  0,
		"force": 1,
	})))
	assert.Equal(t, 2, dt.NumColumnLabels())
}

func TestColumnLabelMissing(t *testing.T) {
	dt := newLabeledTable(t)

	_, err := dt.ColumnLabel(0)
	var missing *ErrLabelMissing
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, 0, missing.Index)

	_, err = dt.ColumnIndex("time")
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "time", missing.Label)
	assert.Equal(t, -1, missing.Index)
}

func TestColumnHasLabel(t *testing.T) {
	dt := newLabeledTable(t)
	require.NoError(t, dt.SetColumnLabel(1, "force"))

	has, err := dt.ColumnHasLabel(1)
	require.NoError(t, err)
	assert.True(t, has)

	has, err = dt.ColumnHasLabel(0)
	require.NoError(t, err)
	assert.False(t, has)

	_, err = dt.ColumnHasLabel(9)
	assert.Error(t, err)

	assert.True(t, dt.HasColumnLabel("force"))
	assert.False(t, dt.HasColumnLabel("time"))
}

func TestRenameColumnLabel(t *testing.T) {
	dt := newLabeledTable(t)
	require.NoError(t, dt.SetColumnLabel(0, "time"))
	require.NoError(t, dt.SetColumnLabel(1, "force"))

	require.NoError(t, dt.RenameColumnLabel("time", "t"))
	idx, err := dt.ColumnIndex("t")
	require.NoError(t, err)
	assert.Equal(t, 0, idx)
	assert.False(t, dt.HasColumnLabel("time"))

	// New label already in use.
	err = dt.RenameColumnLabel("t", "force")
	var conflict *ErrLabelConflict
	assert.ErrorAs(t, err, &conflict)

	// Old label absent.
	err = dt.RenameColumnLabel("time", "x")
	var missing *ErrLabelMissing
	assert.ErrorAs(t, err, &missing)
}

func TestRenameColumnLabelAt(t *testing.T) {
	dt := newLabeledTable(t)
	require.NoError(t, dt.SetColumnLabel(0, "time"))

	require.NoError(t, dt.RenameColumnLabelAt(0, "t"))
	label, err := dt.ColumnLabel(0)
	require.NoError(t, err)
	assert.Equal(t, "t", label)

	// Unlabeled column.
	err = dt.RenameColumnLabelAt(1, "x")
	var missing *ErrLabelMissing
	assert.ErrorAs(t, err, &missing)
}

func TestRenameColumnLabelsFailFast(t *testing.T) {
	dt := newLabeledTable(t)
	require.NoError(t, dt.SetColumnLabel(0, "time"))

	err := dt.RenameColumnLabels(maps.All(map[string]string{"t": "missing"}))
	var missing *ErrLabelMissing
	require.ErrorAs(t, err, &missing)
	assert.True(t, dt.HasColumnLabel("time"))

	require.NoError(t, dt.RenameColumnLabels(maps.All(map[string]string{"t": "time"})))
	assert.True(t, dt.HasColumnLabel("t"))
}

func TestRemoveColumnLabel(t *testing.T) {
	dt := newLabeledTable(t)
	require.NoError(t, dt.SetColumnLabel(0, "time"))

	assert.True(t, dt.RemoveColumnLabel("time"))
	assert.False(t, dt.RemoveColumnLabel("time"))
	assert.Equal(t, 0, dt.NumColumnLabels())
}

func TestRemoveColumnLabelAt(t *testing.T) {
	dt := newLabeledTable(t)
	require.NoError(t, dt.SetColumnLabel(1, "force"))

	removed, err := dt.RemoveColumnLabelAt(1)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = dt.RemoveColumnLabelAt(1)
	require.NoError(t, err)
	assert.False(t, removed)

	_, err = dt.RemoveColumnLabelAt(9)
	assert.Error(t, err)
}

func TestClearColumnLabels(t *testing.T) {
	dt := newLabeledTable(t)
	require.NoError(t, dt.SetColumnLabel(0, "time"))
	require.NoError(t, dt.SetColumnLabel(1, "force"))

	dt.ClearColumnLabels()
	assert.Equal(t, 0, dt.NumColumnLabels())
	assert.False(t, dt.IsEmpty())
}

func TestColumnLabelsIterator(t *testing.T) {
	dt := newLabeledTable(t)
	require.NoError(t, dt.SetColumnLabel(0, "time"))
	require.NoError(t, dt.SetColumnLabel(2, "force"))

	got := maps.Collect(dt.ColumnLabels())
	assert.Equal(t, map[string]int{"time": 0, "force": 2}, got)
}

func TestLabelsSurviveRowGrowth(t *testing.T) {
	dt := New[float64]()
	require.NoError(t, dt.AppendRow([]float64{1, 2}))
	require.NoError(t, dt.SetColumnLabel(0, "a"))

	require.NoError(t, dt.AppendRow([]float64{3, 4}))
	require.NoError(t, dt.ResizeRetaining(5, 2))

	idx, err := dt.ColumnIndex("a")
	require.NoError(t, err)
	assert.Equal(t, 0, idx)
}
