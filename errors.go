package tablego

import (
	"errors"
	"fmt"
	"math"

	"github.com/hupe1980/tablego/matrix"
)

var (
	// ErrEmptyInput is returned when an input sequence produces zero
	// elements, or a required dimension or capacity hint is zero.
	ErrEmptyInput = errors.New("tablego: input produced zero elements")

	// ErrSelfConcatenation is returned when a table is concatenated with
	// itself. Detection is by identity, not value equality: two distinct
	// tables holding equal data concatenate fine.
	ErrSelfConcatenation = errors.New("tablego: cannot concatenate a table with itself")

	// ErrIncompatibleCursors is returned when cursor positions from two
	// different table instances are compared.
	ErrIncompatibleCursors = errors.New("tablego: cursors belong to different tables")

	// ErrNoRows is returned when a timestamp is appended to a table with
	// zero rows.
	ErrNoRows = errors.New("tablego: table has zero rows")

	// ErrTimestampsFull is returned when a timestamp is appended to a
	// table that already has one timestamp per row.
	ErrTimestampsFull = errors.New("tablego: timestamp column already has one timestamp per row")

	// ErrTimestampsStale is returned by timestamp accessors and lookups
	// while the timestamp column is shorter than the row count. Append the
	// missing timestamps to resynchronize.
	ErrTimestampsStale = errors.New("tablego: timestamp column out of sync with rows")
)

// ErrIndexOutOfRange indicates a row or column index outside the valid
// range of the table.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrIndexOutOfRange struct {
	Axis  string
	Index int
	Size  int
	cause error
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("tablego: %s index %d out of range [0, %d)", e.Axis, e.Index, e.Size)
}

func (e *ErrIndexOutOfRange) Unwrap() error { return e.cause }

// ErrShapeMismatch indicates an input whose length disagrees with the
// table's dimension along Axis.
type ErrShapeMismatch struct {
	Axis     string
	Expected int
	Actual   int
}

func (e *ErrShapeMismatch) Error() string {
	return fmt.Sprintf("tablego: %s count mismatch: expected %d, got %d", e.Axis, e.Expected, e.Actual)
}

// ErrLabelConflict indicates a label mutation that would violate the
// uniqueness invariant: either the column already has a label, or the
// label is already used by another column.
type ErrLabelConflict struct {
	Label  string
	Index  int
	Reason string
}

func (e *ErrLabelConflict) Error() string {
	return fmt.Sprintf("tablego: cannot set label %q on column %d: %s", e.Label, e.Index, e.Reason)
}

// ErrLabelMissing indicates a lookup of a label that does not exist, by
// name (Index is -1) or by column index (Label is empty).
type ErrLabelMissing struct {
	Label string
	Index int
}

func (e *ErrLabelMissing) Error() string {
	if e.Label != "" {
		return fmt.Sprintf("tablego: no column with label %q", e.Label)
	}
	return fmt.Sprintf("tablego: column %d has no label", e.Index)
}

// ErrInsufficientElements indicates an input sequence that ended before
// filling the required number of cells.
type ErrInsufficientElements struct {
	Expected int
	Actual   int
}

func (e *ErrInsufficientElements) Error() string {
	return fmt.Sprintf("tablego: input produced too few elements: expected %d, got %d", e.Expected, e.Actual)
}

// ErrExcessElements indicates an input sequence that produced more
// elements than the target shape can hold.
type ErrExcessElements struct {
	Expected int
}

func (e *ErrExcessElements) Error() string {
	return fmt.Sprintf("tablego: input produced more than the expected %d elements", e.Expected)
}

// ErrTimestampOutOfOrder indicates a timestamp that would break the
// strictly increasing invariant. Prev and Next are the neighboring
// timestamps the value was checked against; either is NaN when absent.
type ErrTimestampOutOfOrder struct {
	Timestamp float64
	Prev      float64
	Next      float64
}

func (e *ErrTimestampOutOfOrder) Error() string {
	switch {
	case !math.IsNaN(e.Prev) && !math.IsNaN(e.Next):
		return fmt.Sprintf("tablego: timestamp %v not strictly between neighbors %v and %v", e.Timestamp, e.Prev, e.Next)
	case !math.IsNaN(e.Prev):
		return fmt.Sprintf("tablego: timestamp %v not greater than predecessor %v", e.Timestamp, e.Prev)
	case !math.IsNaN(e.Next):
		return fmt.Sprintf("tablego: timestamp %v not less than successor %v", e.Timestamp, e.Next)
	default:
		return fmt.Sprintf("tablego: timestamp %v violates ordering invariant", e.Timestamp)
	}
}

// ErrTimestampNotFound indicates a timestamp lookup that has no answer
// under the requested direction policy.
type ErrTimestampNotFound struct {
	Timestamp float64
}

func (e *ErrTimestampNotFound) Error() string {
	return fmt.Sprintf("tablego: no row for timestamp %v", e.Timestamp)
}

// translateError normalizes subpackage errors into the public taxonomy.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	var oor *matrix.ErrOutOfRange
	if errors.As(err, &oor) {
		return &ErrIndexOutOfRange{Axis: string(oor.Axis), Index: oor.Index, Size: oor.Size, cause: err}
	}

	return err
}
