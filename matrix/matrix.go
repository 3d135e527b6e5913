package matrix

import "math/bits"

// Axis identifies a matrix dimension in errors and views.
type Axis string

const (
	// AxisRow is the row dimension.
	AxisRow Axis = "row"
	// AxisColumn is the column dimension.
	AxisColumn Axis = "column"
)

// Dense is a dense, row-major matrix of elements of type T.
//
// A Dense exclusively owns its buffer. Structural changes (resize, clear)
// bump an internal generation counter; views issued before such a change
// fail with ErrStaleView on their next access instead of silently reading
// relocated memory.
//
// Dense is not safe for concurrent mutation.
type Dense[T any] struct {
	rows, cols int
	data       []T
	gen        uint64
}

// New returns a rows x cols matrix with every entry set to fill.
// Both dimensions may be zero.
func New[T any](rows, cols int, fill T) (*Dense[T], error) {
	if rows < 0 || cols < 0 {
		return nil, &ErrInvalidShape{Rows: rows, Cols: cols}
	}
	d := &Dense[T]{rows: rows, cols: cols, data: make([]T, rows*cols)}
	d.Fill(fill)
	return d, nil
}

// NewEmpty returns a 0x0 matrix.
func NewEmpty[T any]() *Dense[T] {
	return &Dense[T]{}
}

// Rows returns the number of rows.
func (d *Dense[T]) Rows() int { return d.rows }

// Cols returns the number of columns.
func (d *Dense[T]) Cols() int { return d.cols }

// Len returns the total number of entries.
func (d *Dense[T]) Len() int { return d.rows * d.cols }

// IsEmpty reports whether the matrix holds no entries.
func (d *Dense[T]) IsEmpty() bool { return d.rows == 0 || d.cols == 0 }

// Generation returns the current structural generation. It increases on
// every resize or clear. Views record the generation they were created at.
func (d *Dense[T]) Generation() uint64 { return d.gen }

func (d *Dense[T]) index(r, c int) int { return r*d.cols + c }

func (d *Dense[T]) checkRow(r int) error {
	if r < 0 || r >= d.rows {
		return &ErrOutOfRange{Axis: AxisRow, Index: r, Size: d.rows}
	}
	return nil
}

func (d *Dense[T]) checkCol(c int) error {
	if c < 0 || c >= d.cols {
		return &ErrOutOfRange{Axis: AxisColumn, Index: c, Size: d.cols}
	}
	return nil
}

func (d *Dense[T]) checkGen(gen uint64) error {
	if gen != d.gen {
		return &ErrStaleView{Have: gen, Want: d.gen}
	}
	return nil
}

// At returns the entry at (r, c).
func (d *Dense[T]) At(r, c int) (T, error) {
	var zero T
	if err := d.checkRow(r); err != nil {
		return zero, err
	}
	if err := d.checkCol(c); err != nil {
		return zero, err
	}
	return d.data[d.index(r, c)], nil
}

// Set stores v at (r, c).
func (d *Dense[T]) Set(r, c int, v T) error {
	if err := d.checkRow(r); err != nil {
		return err
	}
	if err := d.checkCol(c); err != nil {
		return err
	}
	d.data[d.index(r, c)] = v
	return nil
}

// Fill sets every entry to v. The generation is unchanged: element writes
// do not invalidate views.
func (d *Dense[T]) Fill(v T) {
	for i := range d.data {
		d.data[i] = v
	}
}

// RowView returns a non-owning view of row r.
func (d *Dense[T]) RowView(r int) (RowView[T], error) {
	if err := d.checkRow(r); err != nil {
		return RowView[T]{}, err
	}
	return RowView[T]{d: d, row: r, gen: d.gen}, nil
}

// ColView returns a non-owning view of column c.
func (d *Dense[T]) ColView(c int) (ColumnView[T], error) {
	if err := d.checkCol(c); err != nil {
		return ColumnView[T]{}, err
	}
	return ColumnView[T]{d: d, col: c, gen: d.gen}, nil
}

// View returns a non-owning view of the rows x cols block whose top-left
// entry is (r0, c0).
func (d *Dense[T]) View(r0, c0, rows, cols int) (View[T], error) {
	if rows <= 0 || cols <= 0 {
		return View[T]{}, &ErrInvalidShape{Rows: rows, Cols: cols}
	}
	if err := d.checkRow(r0); err != nil {
		return View[T]{}, err
	}
	if err := d.checkRow(r0 + rows - 1); err != nil {
		return View[T]{}, err
	}
	if err := d.checkCol(c0); err != nil {
		return View[T]{}, err
	}
	if err := d.checkCol(c0 + cols - 1); err != nil {
		return View[T]{}, err
	}
	return View[T]{d: d, r0: r0, c0: c0, rows: rows, cols: cols, gen: d.gen}, nil
}

// ResizeRetaining reallocates the matrix to rows x cols, copying the
// overlapping region and dropping entries outside the new bounds. New
// entries are zero values. All outstanding views are invalidated.
func (d *Dense[T]) ResizeRetaining(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return &ErrInvalidShape{Rows: rows, Cols: cols}
	}
	if rows == d.rows && cols == d.cols {
		return nil
	}
	data := make([]T, rows*cols)
	copyRows := min(rows, d.rows)
	copyCols := min(cols, d.cols)
	for r := 0; r < copyRows; r++ {
		copy(data[r*cols:r*cols+copyCols], d.data[r*d.cols:r*d.cols+copyCols])
	}
	d.rows, d.cols, d.data = rows, cols, data
	d.gen++
	return nil
}

// Clear resets the matrix to 0x0, releasing the buffer and invalidating
// all outstanding views.
func (d *Dense[T]) Clear() {
	d.rows, d.cols, d.data = 0, 0, nil
	d.gen++
}

// Clone returns a deep copy. The clone starts at generation zero and shares
// no memory with the original.
func (d *Dense[T]) Clone() *Dense[T] {
	c := &Dense[T]{rows: d.rows, cols: d.cols}
	if len(d.data) > 0 {
		c.data = make([]T, len(d.data))
		copy(c.data, d.data)
	}
	return c
}

// CopyFrom overwrites the rows x cols block of d whose top-left entry is
// (r0, c0) with the contents of src. The block must lie within d and match
// the dimensions of src.
func (d *Dense[T]) CopyFrom(r0, c0 int, src *Dense[T]) error {
	v, err := d.View(r0, c0, src.rows, src.cols)
	if err != nil {
		return err
	}
	for r := 0; r < src.rows; r++ {
		if err := v.copyRow(r, src.data[r*src.cols:(r+1)*src.cols]); err != nil {
			return err
		}
	}
	return nil
}

// NextPow2 returns the smallest power of two >= n. NextPow2(0) is 1.
func NextPow2(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}

// GrowCap returns the next capacity step for amortized growth: a power of
// two is doubled, anything else is rounded up to the next power of two.
func GrowCap(n int) int {
	if n <= 0 {
		return 1
	}
	if n&(n-1) == 0 {
		return n << 1
	}
	return NextPow2(n)
}
