package matrix

// RowView is a non-owning view of a single matrix row.
//
// The view records the storage generation it was created at; any structural
// mutation of the underlying matrix invalidates it and subsequent accesses
// return ErrStaleView.
type RowView[T any] struct {
	d   *Dense[T]
	row int
	gen uint64
}

// Len returns the number of entries in the row.
func (v RowView[T]) Len() int { return v.d.cols }

// Index returns the row index this view refers to.
func (v RowView[T]) Index() int { return v.row }

// At returns the entry at column i.
func (v RowView[T]) At(i int) (T, error) {
	var zero T
	if err := v.d.checkGen(v.gen); err != nil {
		return zero, err
	}
	if err := v.d.checkCol(i); err != nil {
		return zero, err
	}
	return v.d.data[v.d.index(v.row, i)], nil
}

// Set stores val at column i.
func (v RowView[T]) Set(i int, val T) error {
	if err := v.d.checkGen(v.gen); err != nil {
		return err
	}
	if err := v.d.checkCol(i); err != nil {
		return err
	}
	v.d.data[v.d.index(v.row, i)] = val
	return nil
}

// Slice returns the row as a zero-copy slice of the underlying buffer.
// Rows are contiguous in row-major storage. The slice aliases the matrix;
// it must not be retained across structural mutations.
func (v RowView[T]) Slice() ([]T, error) {
	if err := v.d.checkGen(v.gen); err != nil {
		return nil, err
	}
	start := v.d.index(v.row, 0)
	return v.d.data[start : start+v.d.cols : start+v.d.cols], nil
}

// Values returns a copy of the row.
func (v RowView[T]) Values() ([]T, error) {
	s, err := v.Slice()
	if err != nil {
		return nil, err
	}
	out := make([]T, len(s))
	copy(out, s)
	return out, nil
}

// ColumnView is a non-owning view of a single matrix column.
// Column entries are strided in row-major storage, so there is no
// zero-copy slice accessor; use Values for a copy.
type ColumnView[T any] struct {
	d   *Dense[T]
	col int
	gen uint64
}

// Len returns the number of entries in the column.
func (v ColumnView[T]) Len() int { return v.d.rows }

// Index returns the column index this view refers to.
func (v ColumnView[T]) Index() int { return v.col }

// At returns the entry at row i.
func (v ColumnView[T]) At(i int) (T, error) {
	var zero T
	if err := v.d.checkGen(v.gen); err != nil {
		return zero, err
	}
	if err := v.d.checkRow(i); err != nil {
		return zero, err
	}
	return v.d.data[v.d.index(i, v.col)], nil
}

// Set stores val at row i.
func (v ColumnView[T]) Set(i int, val T) error {
	if err := v.d.checkGen(v.gen); err != nil {
		return err
	}
	if err := v.d.checkRow(i); err != nil {
		return err
	}
	v.d.data[v.d.index(i, v.col)] = val
	return nil
}

// Values returns a copy of the column.
func (v ColumnView[T]) Values() ([]T, error) {
	if err := v.d.checkGen(v.gen); err != nil {
		return nil, err
	}
	out := make([]T, v.d.rows)
	for r := 0; r < v.d.rows; r++ {
		out[r] = v.d.data[v.d.index(r, v.col)]
	}
	return out, nil
}

// View is a non-owning view of a rectangular sub-region of a matrix.
type View[T any] struct {
	d          *Dense[T]
	r0, c0     int
	rows, cols int
	gen        uint64
}

// Dims returns the view dimensions.
func (v View[T]) Dims() (rows, cols int) { return v.rows, v.cols }

func (v View[T]) check(r, c int) error {
	if err := v.d.checkGen(v.gen); err != nil {
		return err
	}
	if r < 0 || r >= v.rows {
		return &ErrOutOfRange{Axis: AxisRow, Index: r, Size: v.rows}
	}
	if c < 0 || c >= v.cols {
		return &ErrOutOfRange{Axis: AxisColumn, Index: c, Size: v.cols}
	}
	return nil
}

// At returns the entry at (r, c) relative to the view origin.
func (v View[T]) At(r, c int) (T, error) {
	var zero T
	if err := v.check(r, c); err != nil {
		return zero, err
	}
	return v.d.data[v.d.index(v.r0+r, v.c0+c)], nil
}

// Set stores val at (r, c) relative to the view origin.
func (v View[T]) Set(r, c int, val T) error {
	if err := v.check(r, c); err != nil {
		return err
	}
	v.d.data[v.d.index(v.r0+r, v.c0+c)] = val
	return nil
}

// copyRow overwrites row r of the view with src. len(src) must equal the
// view width.
func (v View[T]) copyRow(r int, src []T) error {
	if err := v.check(r, 0); err != nil {
		return err
	}
	start := v.d.index(v.r0+r, v.c0)
	copy(v.d.data[start:start+v.cols], src)
	return nil
}
