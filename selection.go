package tablego

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/tablego/matrix"
)

// RowSet is a set of row indexes, backed by a compressed bitmap. It is a
// selection over a table's rows, not a view: mutating the table does not
// change the set, and indexes beyond the current row count are simply
// skipped during traversal.
type RowSet struct {
	bm *roaring.Bitmap
}

// NewRowSet returns a set holding the given row indexes. Negative
// indexes are ignored.
func NewRowSet(indexes ...int) *RowSet {
	rs := &RowSet{bm: roaring.New()}
	for _, i := range indexes {
		rs.Add(i)
	}
	return rs
}

// Add inserts a row index. Negative indexes are ignored.
func (rs *RowSet) Add(index int) {
	if index < 0 {
		return
	}
	rs.bm.Add(uint32(index))
}

// Contains reports whether the set holds index.
func (rs *RowSet) Contains(index int) bool {
	return index >= 0 && rs.bm.Contains(uint32(index))
}

// Len returns the number of indexes in the set.
func (rs *RowSet) Len() int {
	return int(rs.bm.GetCardinality())
}

// Union returns a new set holding the indexes of both sets.
func (rs *RowSet) Union(other *RowSet) *RowSet {
	return &RowSet{bm: roaring.Or(rs.bm, other.bm)}
}

// Intersect returns a new set holding the indexes common to both sets.
func (rs *RowSet) Intersect(other *RowSet) *RowSet {
	return &RowSet{bm: roaring.And(rs.bm, other.bm)}
}

// Indexes returns a restartable iterator over the indexes in ascending
// order.
func (rs *RowSet) Indexes() iter.Seq[int] {
	return func(yield func(int) bool) {
		it := rs.bm.Iterator()
		for it.HasNext() {
			if !yield(int(it.Next())) {
				return
			}
		}
	}
}

// SelectRows returns the set of row indexes for which pred returns true.
// The predicate receives the row index and a view of the row.
func (dt *Table[T]) SelectRows(pred func(index int, row matrix.RowView[T]) bool) *RowSet {
	rs := NewRowSet()
	for i, row := range dt.Rows() {
		if pred(i, row) {
			rs.Add(i)
		}
	}
	return rs
}

// SelectedRows returns a restartable iterator over the rows whose
// indexes are in rs, in ascending index order. Indexes beyond the current
// row count are skipped.
func (dt *Table[T]) SelectedRows(rs *RowSet) iter.Seq2[int, matrix.RowView[T]] {
	return func(yield func(int, matrix.RowView[T]) bool) {
		for i := range rs.Indexes() {
			if i >= dt.NumRows() {
				return
			}
			row, err := dt.Row(i)
			if err != nil {
				return
			}
			if !yield(i, row) {
				return
			}
		}
	}
}
