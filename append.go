package tablego

import (
	"iter"

	"github.com/hupe1980/tablego/matrix"
)

// AppendRow appends a row of exactly NumColumns entries. On an empty
// table the input defines the column count.
//
// Fails ErrEmptyInput on a zero-length input and ErrShapeMismatch when
// the length disagrees with the existing column count.
func (dt *Table[T]) AppendRow(vals []T) error {
	if len(vals) == 0 {
		return ErrEmptyInput
	}
	rows, cols := dt.Dims()
	if cols > 0 && len(vals) != cols {
		return &ErrShapeMismatch{Axis: "column", Expected: cols, Actual: len(vals)}
	}
	if err := translateError(dt.data.ResizeRetaining(rows+1, len(vals))); err != nil {
		return err
	}
	for c, v := range vals {
		if err := dt.data.Set(rows, c, v); err != nil {
			return translateError(err)
		}
	}
	return nil
}

// AppendColumn appends a column of exactly NumRows entries. On an empty
// table the input defines the row count.
//
// Fails ErrEmptyInput on a zero-length input and ErrShapeMismatch when
// the length disagrees with the existing row count.
func (dt *Table[T]) AppendColumn(vals []T) error {
	if len(vals) == 0 {
		return ErrEmptyInput
	}
	rows, cols := dt.Dims()
	if rows > 0 && len(vals) != rows {
		return &ErrShapeMismatch{Axis: "row", Expected: rows, Actual: len(vals)}
	}
	if err := translateError(dt.data.ResizeRetaining(len(vals), cols+1)); err != nil {
		return err
	}
	for r, v := range vals {
		if err := dt.data.Set(r, cols, v); err != nil {
			return translateError(err)
		}
	}
	return nil
}

// AppendRowSeq appends one row from a sequence of unknown length.
//
// On an empty table the sequence populates the first row: a starting
// capacity (WithCapacityHint, default 2) is allocated and doubled to the
// next power of two whenever the sequence outgrows it, then trimmed to
// the exact number of values consumed once the sequence ends.
//
// On a non-empty table the row length is fixed by the column count: extra
// values fail ErrExcessElements and a short sequence fails
// ErrInsufficientElements unless AllowMissing is passed, in which case the
// remaining cells hold the missing sentinel.
func (dt *Table[T]) AppendRowSeq(seq iter.Seq[T], optFns ...AppendOption) error {
	o := newAppendOptions(optFns)
	next, stop := iter.Pull(seq)
	defer stop()

	v, ok := next()
	if !ok {
		return ErrEmptyInput
	}

	rows, cols := dt.Dims()
	if rows == 0 || cols == 0 {
		return dt.populateOpen(v, next, o, matrix.AxisColumn)
	}

	if err := translateError(dt.data.ResizeRetaining(rows+1, cols)); err != nil {
		return err
	}
	col := 0
	for {
		if col == cols {
			return &ErrExcessElements{Expected: cols}
		}
		if err := dt.data.Set(rows, col, v); err != nil {
			return translateError(err)
		}
		col++
		if v, ok = next(); !ok {
			break
		}
	}
	return dt.padTail(rows, col, cols, o, matrix.AxisColumn)
}

// AppendColumnSeq appends one column from a sequence of unknown length.
// The empty-table and non-empty-table behavior mirrors AppendRowSeq with
// the axes swapped.
func (dt *Table[T]) AppendColumnSeq(seq iter.Seq[T], optFns ...AppendOption) error {
	o := newAppendOptions(optFns)
	next, stop := iter.Pull(seq)
	defer stop()

	v, ok := next()
	if !ok {
		return ErrEmptyInput
	}

	rows, cols := dt.Dims()
	if rows == 0 || cols == 0 {
		return dt.populateOpen(v, next, o, matrix.AxisRow)
	}

	if err := translateError(dt.data.ResizeRetaining(rows, cols+1)); err != nil {
		return err
	}
	row := 0
	for {
		if row == rows {
			return &ErrExcessElements{Expected: rows}
		}
		if err := dt.data.Set(row, cols, v); err != nil {
			return translateError(err)
		}
		row++
		if v, ok = next(); !ok {
			break
		}
	}
	return dt.padTail(cols, row, rows, o, matrix.AxisRow)
}

// populateOpen fills the first row (open = AxisColumn) or column
// (open = AxisRow) of an empty table, doubling the open dimension as the
// sequence runs and trimming unused capacity at the end.
func (dt *Table[T]) populateOpen(first T, next func() (T, bool), o appendOptions, open matrix.Axis) error {
	if o.capacityHint <= 0 {
		return ErrEmptyInput
	}

	capacity := o.capacityHint
	resize := func(n int) error {
		if open == matrix.AxisColumn {
			return translateError(dt.data.ResizeRetaining(1, n))
		}
		return translateError(dt.data.ResizeRetaining(n, 1))
	}
	set := func(i int, v T) error {
		if open == matrix.AxisColumn {
			return translateError(dt.data.Set(0, i, v))
		}
		return translateError(dt.data.Set(i, 0, v))
	}

	if err := resize(capacity); err != nil {
		return err
	}
	i, v, ok := 0, first, true
	for {
		if err := set(i, v); err != nil {
			return err
		}
		i++
		if v, ok = next(); !ok {
			break
		}
		if i == capacity {
			grown := matrix.GrowCap(capacity)
			if err := resize(grown); err != nil {
				return err
			}
			dt.opts.logger.LogGrow(string(open), capacity, grown)
			capacity = grown
		}
	}
	if i != capacity {
		if err := resize(i); err != nil {
			return err
		}
		dt.opts.logger.LogTrim(string(open), capacity, i)
	}
	return nil
}

// padTail finishes a fixed-length sequence append that consumed got of
// want cells in the trailing row/column at index last along the given
// axis.
func (dt *Table[T]) padTail(last, got, want int, o appendOptions, open matrix.Axis) error {
	if got == want {
		return nil
	}
	if !o.allowMissing {
		return &ErrInsufficientElements{Expected: want, Actual: got}
	}
	for i := got; i < want; i++ {
		var err error
		if open == matrix.AxisColumn {
			err = dt.data.Set(last, i, dt.opts.missing)
		} else {
			err = dt.data.Set(i, last, dt.opts.missing)
		}
		if err != nil {
			return translateError(err)
		}
	}
	return nil
}

// AppendRows appends whole rows from a flat sequence consumed row-major.
//
// On an empty table WithColumns must fix the column count
// (ErrEmptyInput otherwise). With WithCount(n) the sequence must produce
// exactly n x NumColumns elements: too few fails ErrInsufficientElements,
// too many fails ErrExcessElements. Without a count the table grows one
// row at a time; a partially filled last row fails
// ErrInsufficientElements unless AllowMissing pads it with the missing
// sentinel.
//
// Rows filled before a failure stay applied; there is no rollback.
func (dt *Table[T]) AppendRows(seq iter.Seq[T], optFns ...AppendOption) error {
	o := newAppendOptions(optFns)
	next, stop := iter.Pull(seq)
	defer stop()

	v, ok := next()
	if !ok {
		return ErrEmptyInput
	}

	rows, cols := dt.Dims()
	if rows == 0 || cols == 0 {
		if o.orthogonal <= 0 {
			return ErrEmptyInput
		}
		rows, cols = 0, o.orthogonal
	}

	if o.hasCount {
		if o.count <= 0 {
			return ErrEmptyInput
		}
		expected := o.count * cols
		if err := translateError(dt.data.ResizeRetaining(rows+o.count, cols)); err != nil {
			return err
		}
		n := 0
		for {
			if n == expected {
				return &ErrExcessElements{Expected: expected}
			}
			if err := dt.data.Set(rows+n/cols, n%cols, v); err != nil {
				return translateError(err)
			}
			n++
			if v, ok = next(); !ok {
				break
			}
		}
		if n != expected {
			return &ErrInsufficientElements{Expected: expected, Actual: n}
		}
		return nil
	}

	r, c := rows, 0
	if err := translateError(dt.data.ResizeRetaining(r+1, cols)); err != nil {
		return err
	}
	for {
		if err := dt.data.Set(r, c, v); err != nil {
			return translateError(err)
		}
		c++
		if v, ok = next(); !ok {
			break
		}
		if c == cols {
			c = 0
			r++
			if err := translateError(dt.data.ResizeRetaining(r+1, cols)); err != nil {
				return err
			}
		}
	}
	return dt.padTail(r, c, cols, o, matrix.AxisColumn)
}

// AppendColumns appends whole columns from a flat sequence consumed
// column-major. The empty-table rule uses WithRows, and WithCount fixes
// the number of new columns; otherwise the behavior mirrors AppendRows
// with the axes swapped.
func (dt *Table[T]) AppendColumns(seq iter.Seq[T], optFns ...AppendOption) error {
	o := newAppendOptions(optFns)
	next, stop := iter.Pull(seq)
	defer stop()

	v, ok := next()
	if !ok {
		return ErrEmptyInput
	}

	rows, cols := dt.Dims()
	if rows == 0 || cols == 0 {
		if o.orthogonal <= 0 {
			return ErrEmptyInput
		}
		rows, cols = o.orthogonal, 0
	}

	if o.hasCount {
		if o.count <= 0 {
			return ErrEmptyInput
		}
		expected := o.count * rows
		if err := translateError(dt.data.ResizeRetaining(rows, cols+o.count)); err != nil {
			return err
		}
		n := 0
		for {
			if n == expected {
				return &ErrExcessElements{Expected: expected}
			}
			if err := dt.data.Set(n%rows, cols+n/rows, v); err != nil {
				return translateError(err)
			}
			n++
			if v, ok = next(); !ok {
				break
			}
		}
		if n != expected {
			return &ErrInsufficientElements{Expected: expected, Actual: n}
		}
		return nil
	}

	r, c := 0, cols
	if err := translateError(dt.data.ResizeRetaining(rows, c+1)); err != nil {
		return err
	}
	for {
		if err := dt.data.Set(r, c, v); err != nil {
			return translateError(err)
		}
		r++
		if v, ok = next(); !ok {
			break
		}
		if r == rows {
			r = 0
			c++
			if err := translateError(dt.data.ResizeRetaining(rows, c+1)); err != nil {
				return err
			}
		}
	}
	return dt.padTail(c, r, rows, o, matrix.AxisRow)
}
