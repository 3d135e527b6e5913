package arrowconv

import (
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/tablego"
)

func newLabeledTable(t *testing.T) *tablego.Table[float64] {
	t.Helper()
	dt := tablego.New[float64]()
	require.NoError(t, dt.AppendRow([]float64{1, 2}))
	require.NoError(t, dt.AppendRow([]float64{3, 4}))
	require.NoError(t, dt.SetColumnLabel(0, "x"))
	require.NoError(t, dt.SetColumnLabel(1, "y"))
	return dt
}

func TestToRecord(t *testing.T) {
	dt := newLabeledTable(t)

	rec, err := ToRecord(dt)
	require.NoError(t, err)
	defer rec.Release()

	assert.Equal(t, int64(2), rec.NumRows())
	assert.Equal(t, int64(2), rec.NumCols())
	assert.Equal(t, "x", rec.Schema().Field(0).Name)
	assert.Equal(t, "y", rec.Schema().Field(1).Name)
	assert.True(t, arrow.TypeEqual(arrow.PrimitiveTypes.Float64, rec.Schema().Field(0).Type))
}

func TestToRecordUnlabeledColumns(t *testing.T) {
	dt := tablego.New[float64]()
	require.NoError(t, dt.AppendRow([]float64{1, 2}))

	rec, err := ToRecord(dt)
	require.NoError(t, err)
	defer rec.Release()

	assert.Equal(t, "c0", rec.Schema().Field(0).Name)
	assert.Equal(t, "c1", rec.Schema().Field(1).Name)
}

func TestToRecordUnsupportedElementType(t *testing.T) {
	dt := tablego.New[complex128]()
	_, err := ToRecord(dt)
	assert.ErrorIs(t, err, ErrUnsupportedElementType)
}

func TestRoundTrip(t *testing.T) {
	dt := newLabeledTable(t)

	rec, err := ToRecord(dt)
	require.NoError(t, err)
	defer rec.Release()

	back, err := FromRecord[float64](rec)
	require.NoError(t, err)

	rows, cols := back.Dims()
	assert.Equal(t, 2, rows)
	assert.Equal(t, 2, cols)

	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			want, err := dt.At(r, c)
			require.NoError(t, err)
			got, err := back.At(r, c)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
	}

	idx, err := back.ColumnIndex("y")
	require.NoError(t, err)
	assert.Equal(t, 1, idx)
}

func TestFromRecordFieldTypeMismatch(t *testing.T) {
	dt := newLabeledTable(t)

	rec, err := ToRecord(dt)
	require.NoError(t, err)
	defer rec.Release()

	_, err = FromRecord[int64](rec)
	var fieldErr *ErrFieldType
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "x", fieldErr.Field)
}

func TestStringRoundTrip(t *testing.T) {
	dt := tablego.New[string]()
	require.NoError(t, dt.AppendRow([]string{"a", "b"}))
	require.NoError(t, dt.AppendRow([]string{"c", "d"}))

	rec, err := ToRecord(dt)
	require.NoError(t, err)
	defer rec.Release()

	back, err := FromRecord[string](rec)
	require.NoError(t, err)

	v, err := back.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, "c", v)
}

func newStampedTable(t *testing.T) *tablego.TimeSeriesTable[float64] {
	t.Helper()
	ts := tablego.NewTimeSeries[float64]()
	require.NoError(t, ts.AppendRowWithTimestamp(1.0, []float64{1, 2}))
	require.NoError(t, ts.AppendRowWithTimestamp(2.0, []float64{3, 4}))
	require.NoError(t, ts.AppendRowWithTimestamp(4.0, []float64{5, 6}))
	require.NoError(t, ts.SetColumnLabel(0, "x"))
	require.NoError(t, ts.SetColumnLabel(1, "y"))
	return ts
}

func TestToTimeRecord(t *testing.T) {
	ts := newStampedTable(t)

	rec, err := ToTimeRecord(ts)
	require.NoError(t, err)
	defer rec.Release()

	assert.Equal(t, int64(3), rec.NumRows())
	assert.Equal(t, int64(3), rec.NumCols())
	assert.Equal(t, TimeField, rec.Schema().Field(0).Name)
	assert.Equal(t, "x", rec.Schema().Field(1).Name)
	assert.Equal(t, "y", rec.Schema().Field(2).Name)
}

func TestToTimeRecordStale(t *testing.T) {
	ts := newStampedTable(t)
	require.NoError(t, ts.AppendRow([]float64{7, 8}))

	_, err := ToTimeRecord(ts)
	assert.ErrorIs(t, err, tablego.ErrTimestampsStale)
}

func TestTimeRoundTrip(t *testing.T) {
	ts := newStampedTable(t)

	rec, err := ToTimeRecord(ts)
	require.NoError(t, err)
	defer rec.Release()

	back, err := FromTimeRecord[float64](rec)
	require.NoError(t, err)

	assert.Equal(t, 3, back.NumRows())
	assert.Equal(t, 2, back.NumColumns())
	assert.Equal(t, tablego.TimestampsSynced, back.TimestampState())

	stamp, err := back.Timestamp(2)
	require.NoError(t, err)
	assert.Equal(t, 4.0, stamp)

	v, err := back.AtLabel(1, "y")
	require.NoError(t, err)
	assert.Equal(t, 4.0, v)
}

func TestFromTimeRecordMissingTimeField(t *testing.T) {
	dt := newLabeledTable(t)

	rec, err := ToRecord(dt)
	require.NoError(t, err)
	defer rec.Release()

	_, err = FromTimeRecord[float64](rec)
	var fieldErr *ErrFieldType
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, TimeField, fieldErr.Field)
}
