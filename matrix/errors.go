package matrix

import "fmt"

// ErrOutOfRange indicates an index outside the valid range of an axis.
type ErrOutOfRange struct {
	Axis  Axis
	Index int
	Size  int
}

func (e *ErrOutOfRange) Error() string {
	return fmt.Sprintf("matrix: %s index %d out of range [0, %d)", e.Axis, e.Index, e.Size)
}

// ErrInvalidShape indicates a negative or otherwise unusable dimension pair.
type ErrInvalidShape struct {
	Rows int
	Cols int
}

func (e *ErrInvalidShape) Error() string {
	return fmt.Sprintf("matrix: invalid shape %dx%d", e.Rows, e.Cols)
}

// ErrStaleView indicates a view access after a structural mutation of the
// underlying matrix. The view was created at generation Have; the storage
// is now at generation Want.
type ErrStaleView struct {
	Have uint64
	Want uint64
}

func (e *ErrStaleView) Error() string {
	return fmt.Sprintf("matrix: view invalidated by structural mutation (view generation %d, storage generation %d)", e.Have, e.Want)
}
