package arrowconv

import (
	"errors"
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/hupe1980/tablego"
)

// TimeField is the name of the timestamp field emitted by ToTimeRecord
// and consumed by FromTimeRecord.
const TimeField = "time"

// ErrUnsupportedElementType is returned when the table element type has
// no Arrow mapping. Supported element types: float64, float32, int64,
// string.
var ErrUnsupportedElementType = errors.New("arrowconv: unsupported element type")

// ErrFieldType indicates a record field whose Arrow type does not match
// the requested table element type.
type ErrFieldType struct {
	Field string
	Want  string
	Got   string
}

func (e *ErrFieldType) Error() string {
	return fmt.Sprintf("arrowconv: field %q is %s, not %s", e.Field, e.Got, e.Want)
}

// dataType maps the element type to its Arrow type.
func dataType[T any]() (arrow.DataType, error) {
	var zero T
	switch any(zero).(type) {
	case float64:
		return arrow.PrimitiveTypes.Float64, nil
	case float32:
		return arrow.PrimitiveTypes.Float32, nil
	case int64:
		return arrow.PrimitiveTypes.Int64, nil
	case string:
		return arrow.BinaryTypes.String, nil
	default:
		return nil, ErrUnsupportedElementType
	}
}

// fieldName returns the schema field name for a column: its label when it
// has one, a positional fallback otherwise.
func fieldName[T any](dt *tablego.Table[T], col int) string {
	if name, err := dt.ColumnLabel(col); err == nil {
		return name
	}
	return fmt.Sprintf("c%d", col)
}

func buildColumn[T any](mem memory.Allocator, typ arrow.DataType, values []T) arrow.Array {
	bldr := array.NewBuilder(mem, typ)
	defer bldr.Release()

	switch b := bldr.(type) {
	case *array.Float64Builder:
		for _, v := range values {
			b.Append(any(v).(float64))
		}
	case *array.Float32Builder:
		for _, v := range values {
			b.Append(any(v).(float32))
		}
	case *array.Int64Builder:
		for _, v := range values {
			b.Append(any(v).(int64))
		}
	case *array.StringBuilder:
		for _, v := range values {
			b.Append(any(v).(string))
		}
	}
	return bldr.NewArray()
}

// ToRecord converts a table to an Arrow record. Column labels become
// schema field names; unlabeled columns get positional names ("c0",
// "c1", ...). The record copies the data and shares no memory with the
// table. The caller owns the record and must Release it.
func ToRecord[T any](dt *tablego.Table[T]) (arrow.Record, error) {
	typ, err := dataType[T]()
	if err != nil {
		return nil, err
	}

	mem := memory.NewGoAllocator()
	rows, cols := dt.Dims()

	fields := make([]arrow.Field, cols)
	arrays := make([]arrow.Array, cols)
	defer func() {
		for _, a := range arrays {
			if a != nil {
				a.Release()
			}
		}
	}()

	for c := 0; c < cols; c++ {
		view, err := dt.Column(c)
		if err != nil {
			return nil, err
		}
		values, err := view.Values()
		if err != nil {
			return nil, err
		}
		fields[c] = arrow.Field{Name: fieldName(dt, c), Type: typ}
		arrays[c] = buildColumn(mem, typ, values)
	}

	schema := arrow.NewSchema(fields, nil)
	return array.NewRecord(schema, arrays, int64(rows)), nil
}

// ToTimeRecord converts a time-series table to an Arrow record whose
// first field, named TimeField, holds the timestamp column as float64.
// The timestamp column must be synchronized
// (tablego.ErrTimestampsStale otherwise).
func ToTimeRecord[T any](ts *tablego.TimeSeriesTable[T]) (arrow.Record, error) {
	if ts.TimestampState() != tablego.TimestampsSynced && ts.NumRows() > 0 {
		return nil, tablego.ErrTimestampsStale
	}

	rec, err := ToRecord(&ts.Table)
	if err != nil {
		return nil, err
	}
	defer rec.Release()

	mem := memory.NewGoAllocator()
	tb := array.NewFloat64Builder(mem)
	defer tb.Release()
	for _, t := range ts.Timestamps() {
		tb.Append(t)
	}
	timeArr := tb.NewArray()
	defer timeArr.Release()

	fields := make([]arrow.Field, 0, rec.Schema().NumFields()+1)
	fields = append(fields, arrow.Field{Name: TimeField, Type: arrow.PrimitiveTypes.Float64})
	fields = append(fields, rec.Schema().Fields()...)

	arrays := make([]arrow.Array, 0, len(fields))
	arrays = append(arrays, timeArr)
	for i := 0; i < int(rec.NumCols()); i++ {
		arrays = append(arrays, rec.Column(i))
	}

	return array.NewRecord(arrow.NewSchema(fields, nil), arrays, rec.NumRows()), nil
}

func columnValue[T any](col arrow.Array, row int) (T, error) {
	var v any
	switch c := col.(type) {
	case *array.Float64:
		v = c.Value(row)
	case *array.Float32:
		v = c.Value(row)
	case *array.Int64:
		v = c.Value(row)
	case *array.String:
		v = c.Value(row)
	default:
		var zero T
		return zero, ErrUnsupportedElementType
	}
	out, ok := v.(T)
	if !ok {
		var zero T
		return zero, ErrUnsupportedElementType
	}
	return out, nil
}

// FromRecord converts an Arrow record to a table. Every field must have
// the Arrow type of the element type T (ErrFieldType otherwise), and
// field names become column labels; duplicate names fail with the label
// uniqueness error.
func FromRecord[T any](rec arrow.Record) (*tablego.Table[T], error) {
	typ, err := dataType[T]()
	if err != nil {
		return nil, err
	}

	rows := int(rec.NumRows())
	cols := int(rec.NumCols())

	for c := 0; c < cols; c++ {
		f := rec.Schema().Field(c)
		if !arrow.TypeEqual(f.Type, typ) {
			return nil, &ErrFieldType{Field: f.Name, Want: typ.String(), Got: f.Type.String()}
		}
	}

	var zero T
	dt, err := tablego.NewWithShape(rows, cols, zero)
	if err != nil {
		return nil, err
	}
	for c := 0; c < cols; c++ {
		col := rec.Column(c)
		for r := 0; r < rows; r++ {
			v, err := columnValue[T](col, r)
			if err != nil {
				return nil, err
			}
			if err := dt.Set(r, c, v); err != nil {
				return nil, err
			}
		}
		if err := dt.SetColumnLabel(c, rec.Schema().Field(c).Name); err != nil {
			return nil, err
		}
	}
	return dt, nil
}

// FromTimeRecord converts an Arrow record produced by ToTimeRecord back
// into a time-series table: the field named TimeField supplies the
// timestamps, the remaining fields the data columns.
func FromTimeRecord[T any](rec arrow.Record) (*tablego.TimeSeriesTable[T], error) {
	timeIdx := -1
	for c := 0; c < int(rec.NumCols()); c++ {
		if rec.Schema().Field(c).Name == TimeField {
			timeIdx = c
			break
		}
	}
	if timeIdx < 0 {
		return nil, &ErrFieldType{Field: TimeField, Want: arrow.PrimitiveTypes.Float64.String(), Got: "absent"}
	}
	timeCol, ok := rec.Column(timeIdx).(*array.Float64)
	if !ok {
		return nil, &ErrFieldType{
			Field: TimeField,
			Want:  arrow.PrimitiveTypes.Float64.String(),
			Got:   rec.Schema().Field(timeIdx).Type.String(),
		}
	}

	typ, err := dataType[T]()
	if err != nil {
		return nil, err
	}

	rows := int(rec.NumRows())
	ts := tablego.NewTimeSeries[T]()

	dataCols := make([]int, 0, int(rec.NumCols())-1)
	for c := 0; c < int(rec.NumCols()); c++ {
		if c == timeIdx {
			continue
		}
		f := rec.Schema().Field(c)
		if !arrow.TypeEqual(f.Type, typ) {
			return nil, &ErrFieldType{Field: f.Name, Want: typ.String(), Got: f.Type.String()}
		}
		dataCols = append(dataCols, c)
	}
	if len(dataCols) == 0 {
		return nil, tablego.ErrEmptyInput
	}

	row := make([]T, len(dataCols))
	for r := 0; r < rows; r++ {
		for i, c := range dataCols {
			v, err := columnValue[T](rec.Column(c), r)
			if err != nil {
				return nil, err
			}
			row[i] = v
		}
		if err := ts.AppendRowWithTimestamp(timeCol.Value(r), row); err != nil {
			return nil, err
		}
	}
	for i, c := range dataCols {
		if err := ts.SetColumnLabel(i, rec.Schema().Field(c).Name); err != nil {
			return nil, err
		}
	}
	return ts, nil
}
