package tablego

import (
	"iter"

	"github.com/hupe1980/tablego/matrix"
	"github.com/hupe1980/tablego/metadata"
)

// Major selects the axis along which a flat value sequence is chunked
// when bulk-populating a table.
type Major int

const (
	// RowMajor consumes the sequence one row at a time.
	RowMajor Major = iota
	// ColumnMajor consumes the sequence one column at a time.
	ColumnMajor
)

func (m Major) String() string {
	switch m {
	case RowMajor:
		return "row-major"
	case ColumnMajor:
		return "column-major"
	default:
		return "unknown"
	}
}

// Table is an in-memory container for tabular data: a dense matrix of
// entries of type T, optional unique per-column string labels, and a
// heterogeneous metadata store.
//
// All columns have an index starting at 0; not every column needs a
// label. Metadata has an independent lifecycle from the data: ClearData
// leaves it untouched.
//
// A Table exclusively owns its storage, labels and metadata. It is not
// safe for concurrent mutation; concurrent reads are safe only while no
// mutation is interleaved.
type Table[T any] struct {
	data   *matrix.Dense[T]
	labels labelRegistry
	meta   metadata.Store
	opts   options[T]
}

// New returns an empty (0x0) table.
func New[T any](optFns ...Option[T]) *Table[T] {
	o := defaultOptions[T]()
	for _, fn := range optFns {
		fn(&o)
	}
	return &Table[T]{data: matrix.NewEmpty[T](), opts: o}
}

// NewWithShape returns a rows x cols table with every entry set to fill.
func NewWithShape[T any](rows, cols int, fill T, optFns ...Option[T]) (*Table[T], error) {
	dt := New(optFns...)
	d, err := matrix.New(rows, cols, fill)
	if err != nil {
		return nil, translateError(err)
	}
	dt.data = d
	return dt, nil
}

// NewFromSeq bulk-populates a table from a flat value sequence consumed
// along the given major axis, majorLen entries per chunk. The open
// dimension grows one unit at a time as the sequence runs.
//
// Fails ErrEmptyInput when the sequence produces no elements or majorLen
// is zero; a partially filled final chunk fails ErrInsufficientElements
// unless AllowMissing is passed, in which case the remaining cells hold
// the missing sentinel.
func NewFromSeq[T any](seq iter.Seq[T], majorLen int, major Major, optFns ...AppendOption) (*Table[T], error) {
	dt := New[T]()
	if majorLen <= 0 {
		return nil, ErrEmptyInput
	}
	optFns = append(optFns, func(o *appendOptions) { o.orthogonal = majorLen })
	switch major {
	case ColumnMajor:
		if err := dt.AppendColumns(seq, optFns...); err != nil {
			return nil, err
		}
	default:
		if err := dt.AppendRows(seq, optFns...); err != nil {
			return nil, err
		}
	}
	return dt, nil
}

// NumRows returns the number of rows.
func (dt *Table[T]) NumRows() int { return dt.data.Rows() }

// NumColumns returns the number of columns.
func (dt *Table[T]) NumColumns() int { return dt.data.Cols() }

// Dims returns the table shape.
func (dt *Table[T]) Dims() (rows, cols int) { return dt.data.Rows(), dt.data.Cols() }

// IsEmpty reports whether the table holds no entries.
func (dt *Table[T]) IsEmpty() bool { return dt.data.IsEmpty() }

// HasRow reports whether a row with the given index exists.
func (dt *Table[T]) HasRow(index int) bool {
	return index >= 0 && index < dt.data.Rows()
}

// HasColumn reports whether a column with the given index exists.
func (dt *Table[T]) HasColumn(index int) bool {
	return index >= 0 && index < dt.data.Cols()
}

func (dt *Table[T]) checkRow(index int) error {
	if !dt.HasRow(index) {
		return &ErrIndexOutOfRange{Axis: "row", Index: index, Size: dt.data.Rows()}
	}
	return nil
}

func (dt *Table[T]) checkColumn(index int) error {
	if !dt.HasColumn(index) {
		return &ErrIndexOutOfRange{Axis: "column", Index: index, Size: dt.data.Cols()}
	}
	return nil
}

// At returns the entry at (row, col).
func (dt *Table[T]) At(row, col int) (T, error) {
	var zero T
	v, err := dt.data.At(row, col)
	if err != nil {
		return zero, translateError(err)
	}
	return v, nil
}

// AtLabel returns the entry at the given row of the labeled column.
func (dt *Table[T]) AtLabel(row int, label string) (T, error) {
	col, err := dt.ColumnIndex(label)
	if err != nil {
		var zero T
		return zero, err
	}
	return dt.At(row, col)
}

// Set stores v at (row, col).
func (dt *Table[T]) Set(row, col int, v T) error {
	return translateError(dt.data.Set(row, col, v))
}

// SetAtLabel stores v at the given row of the labeled column.
func (dt *Table[T]) SetAtLabel(row int, label string, v T) error {
	col, err := dt.ColumnIndex(label)
	if err != nil {
		return err
	}
	return dt.Set(row, col, v)
}

// Row returns a non-owning view of the row at index. The view is
// invalidated by any structural mutation of the table.
func (dt *Table[T]) Row(index int) (matrix.RowView[T], error) {
	v, err := dt.data.RowView(index)
	if err != nil {
		return matrix.RowView[T]{}, translateError(err)
	}
	return v, nil
}

// Column returns a non-owning view of the column at index.
func (dt *Table[T]) Column(index int) (matrix.ColumnView[T], error) {
	v, err := dt.data.ColView(index)
	if err != nil {
		return matrix.ColumnView[T]{}, translateError(err)
	}
	return v, nil
}

// ColumnByLabel returns a non-owning view of the labeled column.
func (dt *Table[T]) ColumnByLabel(label string) (matrix.ColumnView[T], error) {
	col, err := dt.ColumnIndex(label)
	if err != nil {
		return matrix.ColumnView[T]{}, err
	}
	return dt.Column(col)
}

// Block returns a non-owning view of the rows x cols sub-region whose
// top-left entry is (row, col).
func (dt *Table[T]) Block(row, col, rows, cols int) (matrix.View[T], error) {
	v, err := dt.data.View(row, col, rows, cols)
	if err != nil {
		return matrix.View[T]{}, translateError(err)
	}
	return v, nil
}

// AsMatrix returns a deep copy of the underlying matrix.
func (dt *Table[T]) AsMatrix() *matrix.Dense[T] {
	return dt.data.Clone()
}

// Metadata returns the table's metadata store.
func (dt *Table[T]) Metadata() *metadata.Store { return &dt.meta }

// MissingValue returns the sentinel stored in cells left unset by an
// append with AllowMissing.
func (dt *Table[T]) MissingValue() T { return dt.opts.missing }

// ResizeRetaining resizes the table to rows x cols, retaining as much of
// the old data as fits. Entries outside the new bounds are dropped, and
// labels of dropped columns are removed. New entries hold the zero value.
//
// Zero dimensions are rejected with ErrEmptyInput; use ClearData to empty
// a table.
func (dt *Table[T]) ResizeRetaining(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return ErrEmptyInput
	}
	fromRows, fromCols := dt.Dims()
	if cols < fromCols {
		dt.labels.dropFrom(cols)
	}
	if err := translateError(dt.data.ResizeRetaining(rows, cols)); err != nil {
		return err
	}
	dt.opts.logger.LogResize(fromRows, fromCols, rows, cols)
	return nil
}

// ClearData resets the table to 0x0 and clears the column labels.
// Metadata is untouched.
func (dt *Table[T]) ClearData() {
	dt.data.Clear()
	dt.labels.clear()
}

// Clone returns a deep copy of the table: matrix and labels are copied
// outright, metadata values through their cloning contract (see
// metadata.Cloner).
func (dt *Table[T]) Clone() *Table[T] {
	return &Table[T]{
		data:   dt.data.Clone(),
		labels: dt.labels.clone(),
		meta:   dt.meta.Clone(),
		opts:   dt.opts,
	}
}
