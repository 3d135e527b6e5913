package tablego

import (
	"cmp"
	"iter"

	"github.com/hupe1980/tablego/matrix"
)

// Rows returns a restartable iterator over (index, row view) pairs in
// row order. Views are created per step, so each carries the storage
// generation current at that step.
func (dt *Table[T]) Rows() iter.Seq2[int, matrix.RowView[T]] {
	return func(yield func(int, matrix.RowView[T]) bool) {
		for r := 0; r < dt.NumRows(); r++ {
			v, err := dt.Row(r)
			if err != nil {
				return
			}
			if !yield(r, v) {
				return
			}
		}
	}
}

// Columns returns a restartable iterator over (index, column view) pairs
// in column order.
func (dt *Table[T]) Columns() iter.Seq2[int, matrix.ColumnView[T]] {
	return func(yield func(int, matrix.ColumnView[T]) bool) {
		for c := 0; c < dt.NumColumns(); c++ {
			v, err := dt.Column(c)
			if err != nil {
				return
			}
			if !yield(c, v) {
				return
			}
		}
	}
}

// RowCursor is a position cursor over the rows of a single table. A fresh
// cursor sits before the first row; Next advances it.
type RowCursor[T any] struct {
	dt  *Table[T]
	pos int
}

// RowCursor returns a cursor positioned before the first row.
func (dt *Table[T]) RowCursor() *RowCursor[T] {
	return &RowCursor[T]{dt: dt, pos: -1}
}

// Next advances the cursor and reports whether a row is available.
func (c *RowCursor[T]) Next() bool {
	if c.pos+1 >= c.dt.NumRows() {
		return false
	}
	c.pos++
	return true
}

// Pos returns the current row index, or -1 before the first Next.
func (c *RowCursor[T]) Pos() int { return c.pos }

// Seek positions the cursor at the given row index.
func (c *RowCursor[T]) Seek(pos int) error {
	if err := c.dt.checkRow(pos); err != nil {
		return err
	}
	c.pos = pos
	return nil
}

// View returns a view of the row under the cursor.
func (c *RowCursor[T]) View() (matrix.RowView[T], error) {
	return c.dt.Row(c.pos)
}

// Compare orders two cursor positions over the same table. Comparing
// cursors of different table instances fails ErrIncompatibleCursors.
func (c *RowCursor[T]) Compare(other *RowCursor[T]) (int, error) {
	if other == nil || c.dt != other.dt {
		return 0, ErrIncompatibleCursors
	}
	return cmp.Compare(c.pos, other.pos), nil
}

// ColumnCursor is a position cursor over the columns of a single table.
type ColumnCursor[T any] struct {
	dt  *Table[T]
	pos int
}

// ColumnCursor returns a cursor positioned before the first column.
func (dt *Table[T]) ColumnCursor() *ColumnCursor[T] {
	return &ColumnCursor[T]{dt: dt, pos: -1}
}

// Next advances the cursor and reports whether a column is available.
func (c *ColumnCursor[T]) Next() bool {
	if c.pos+1 >= c.dt.NumColumns() {
		return false
	}
	c.pos++
	return true
}

// Pos returns the current column index, or -1 before the first Next.
func (c *ColumnCursor[T]) Pos() int { return c.pos }

// Seek positions the cursor at the given column index.
func (c *ColumnCursor[T]) Seek(pos int) error {
	if err := c.dt.checkColumn(pos); err != nil {
		return err
	}
	c.pos = pos
	return nil
}

// View returns a view of the column under the cursor.
func (c *ColumnCursor[T]) View() (matrix.ColumnView[T], error) {
	return c.dt.Column(c.pos)
}

// Compare orders two cursor positions over the same table. Comparing
// cursors of different table instances fails ErrIncompatibleCursors.
func (c *ColumnCursor[T]) Compare(other *ColumnCursor[T]) (int, error) {
	if other == nil || c.dt != other.dt {
		return 0, ErrIncompatibleCursors
	}
	return cmp.Compare(c.pos, other.pos), nil
}
