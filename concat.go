package tablego

// ConcatenateRows appends the rows of other to this table. Only data is
// appended: labels and metadata of other are not merged, and existing
// columns keep their labels.
//
// The column counts must match (ErrShapeMismatch). Concatenating a table
// with itself fails ErrSelfConcatenation; identity is what matters, a
// distinct table holding equal data is fine.
func (dt *Table[T]) ConcatenateRows(other *Table[T]) error {
	if other == nil {
		return ErrEmptyInput
	}
	if dt == other || dt.data == other.data {
		return ErrSelfConcatenation
	}
	rows, cols := dt.Dims()
	if cols != other.NumColumns() {
		return &ErrShapeMismatch{Axis: "column", Expected: cols, Actual: other.NumColumns()}
	}
	added := other.NumRows()
	if added == 0 {
		return nil
	}
	if err := translateError(dt.data.ResizeRetaining(rows+added, cols)); err != nil {
		return err
	}
	if err := translateError(dt.data.CopyFrom(rows, 0, other.data)); err != nil {
		return err
	}
	dt.opts.logger.LogConcat("row", added)
	return nil
}

// ConcatenateColumns appends the columns of other to this table. Only
// data is appended: labels and metadata of other are not merged.
//
// The row counts must match (ErrShapeMismatch), and self-concatenation
// fails ErrSelfConcatenation.
func (dt *Table[T]) ConcatenateColumns(other *Table[T]) error {
	if other == nil {
		return ErrEmptyInput
	}
	if dt == other || dt.data == other.data {
		return ErrSelfConcatenation
	}
	rows, cols := dt.Dims()
	if rows != other.NumRows() {
		return &ErrShapeMismatch{Axis: "row", Expected: rows, Actual: other.NumRows()}
	}
	added := other.NumColumns()
	if added == 0 {
		return nil
	}
	if err := translateError(dt.data.ResizeRetaining(rows, cols+added)); err != nil {
		return err
	}
	if err := translateError(dt.data.CopyFrom(0, cols, other.data)); err != nil {
		return err
	}
	dt.opts.logger.LogConcat("column", added)
	return nil
}

// ConcatRows returns a new table holding the rows of a followed by the
// rows of b. The result carries a's labels and metadata.
func ConcatRows[T any](a, b *Table[T]) (*Table[T], error) {
	out := a.Clone()
	if err := out.ConcatenateRows(b); err != nil {
		return nil, err
	}
	return out, nil
}

// ConcatColumns returns a new table holding the columns of a followed by
// the columns of b. The result carries a's labels and metadata.
func ConcatColumns[T any](a, b *Table[T]) (*Table[T], error) {
	out := a.Clone()
	if err := out.ConcatenateColumns(b); err != nil {
		return nil, err
	}
	return out, nil
}
