package tablego

import (
	"iter"
	"math"
	"slices"
)

// Direction selects the bracketing timestamp when an approximate lookup
// has no exact match.
type Direction int

const (
	// Nearest returns the closer of the two bracketing timestamps, ties
	// broken toward the greater one. Outside the covered range it returns
	// the nearest boundary.
	Nearest Direction = iota
	// Floor returns the largest timestamp <= the query.
	Floor
	// Ceiling returns the smallest timestamp >= the query.
	Ceiling
)

func (d Direction) String() string {
	switch d {
	case Nearest:
		return "nearest"
	case Floor:
		return "floor"
	case Ceiling:
		return "ceiling"
	default:
		return "unknown"
	}
}

// TimestampState describes how the timestamp column relates to the row
// data.
type TimestampState int

const (
	// TimestampsEmpty means no timestamps have been appended.
	TimestampsEmpty TimestampState = iota
	// TimestampsPartial means fewer timestamps than rows exist; lookups
	// fail ErrTimestampsStale until the column is resynchronized.
	TimestampsPartial
	// TimestampsSynced means exactly one timestamp per row exists.
	TimestampsSynced
)

func (s TimestampState) String() string {
	switch s {
	case TimestampsEmpty:
		return "empty"
	case TimestampsPartial:
		return "partial"
	case TimestampsSynced:
		return "synced"
	default:
		return "unknown"
	}
}

// TimeSeriesTable is a Table whose first NumTimestamps rows carry a
// strictly increasing timestamp, supporting exact and nearest-neighbor
// row lookup by time.
//
// Timestamps are appended only after their rows exist and must be kept
// length-synchronized with the row data: appending rows without matching
// timestamps leaves the column partial and all lookups fail
// ErrTimestampsStale until it catches up.
type TimeSeriesTable[T any] struct {
	Table[T]

	ts []float64
}

// NewTimeSeries returns an empty time-series table.
func NewTimeSeries[T any](optFns ...Option[T]) *TimeSeriesTable[T] {
	return &TimeSeriesTable[T]{Table: *New(optFns...)}
}

// NumTimestamps returns the number of appended timestamps.
func (t *TimeSeriesTable[T]) NumTimestamps() int { return len(t.ts) }

// TimestampState returns the synchronization state of the timestamp
// column.
func (t *TimeSeriesTable[T]) TimestampState() TimestampState {
	switch {
	case len(t.ts) == 0 && t.NumRows() > 0:
		return TimestampsPartial
	case len(t.ts) == 0:
		return TimestampsEmpty
	case len(t.ts) < t.NumRows():
		return TimestampsPartial
	default:
		return TimestampsSynced
	}
}

func (t *TimeSeriesTable[T]) synced() bool {
	return len(t.ts) == t.NumRows()
}

// AppendTimestamp appends ts for the next unstamped row.
//
// Fails ErrNoRows when the table has no rows, ErrTimestampsFull when
// every row already has a timestamp, and ErrTimestampOutOfOrder when ts
// is not strictly greater than the last timestamp.
func (t *TimeSeriesTable[T]) AppendTimestamp(ts float64) error {
	if t.NumRows() == 0 {
		return ErrNoRows
	}
	if len(t.ts) == t.NumRows() {
		return ErrTimestampsFull
	}
	if n := len(t.ts); n > 0 && ts <= t.ts[n-1] {
		return &ErrTimestampOutOfOrder{Timestamp: ts, Prev: t.ts[n-1], Next: math.NaN()}
	}
	t.ts = append(t.ts, ts)
	return nil
}

// AppendTimestamps appends timestamps from a sequence, one at a time;
// the first failure aborts the call and timestamps appended before it
// stay applied.
func (t *TimeSeriesTable[T]) AppendTimestamps(seq iter.Seq[float64]) error {
	for ts := range seq {
		if err := t.AppendTimestamp(ts); err != nil {
			return err
		}
	}
	return nil
}

// Timestamp returns the timestamp of the row at index. The timestamp
// column must be synchronized (ErrTimestampsStale otherwise).
func (t *TimeSeriesTable[T]) Timestamp(row int) (float64, error) {
	if !t.synced() {
		return 0, ErrTimestampsStale
	}
	if err := t.checkRow(row); err != nil {
		return 0, err
	}
	return t.ts[row], nil
}

// Timestamps returns a restartable iterator over (row, timestamp) pairs
// in row order.
func (t *TimeSeriesTable[T]) Timestamps() iter.Seq2[int, float64] {
	return func(yield func(int, float64) bool) {
		for i, ts := range t.ts {
			if !yield(i, ts) {
				return
			}
		}
	}
}

// RowIndexAt returns the index of the row whose timestamp equals ts
// exactly. The timestamp column must be synchronized.
func (t *TimeSeriesTable[T]) RowIndexAt(ts float64) (int, error) {
	if !t.synced() {
		return 0, ErrTimestampsStale
	}
	i, found := slices.BinarySearch(t.ts, ts)
	if !found {
		return 0, &ErrTimestampNotFound{Timestamp: ts}
	}
	return i, nil
}

// RowIndexNear returns the index of the row selected by the direction
// policy for ts. The timestamp column must be synchronized.
//
// Floor and Ceiling fail ErrTimestampNotFound when no timestamp lies on
// the requested side; Nearest only fails when the table has no
// timestamps at all.
func (t *TimeSeriesTable[T]) RowIndexNear(ts float64, dir Direction) (int, error) {
	if !t.synced() {
		return 0, ErrTimestampsStale
	}
	if len(t.ts) == 0 {
		return 0, &ErrTimestampNotFound{Timestamp: ts}
	}
	i, found := slices.BinarySearch(t.ts, ts)
	if found {
		return i, nil
	}
	// i is the insertion point: ts[i-1] < ts < ts[i].
	switch dir {
	case Floor:
		if i == 0 {
			return 0, &ErrTimestampNotFound{Timestamp: ts}
		}
		return i - 1, nil
	case Ceiling:
		if i == len(t.ts) {
			return 0, &ErrTimestampNotFound{Timestamp: ts}
		}
		return i, nil
	default: // Nearest
		if i == 0 {
			return 0, nil
		}
		if i == len(t.ts) {
			return len(t.ts) - 1, nil
		}
		if ts-t.ts[i-1] < t.ts[i]-ts {
			return i - 1, nil
		}
		return i, nil
	}
}

// ChangeTimestampAt replaces the timestamp of the row at index with ts,
// revalidating the strictly increasing invariant against both neighbors.
// On violation the column is left unchanged.
func (t *TimeSeriesTable[T]) ChangeTimestampAt(index int, ts float64) error {
	if index < 0 || index >= len(t.ts) {
		return &ErrIndexOutOfRange{Axis: "row", Index: index, Size: len(t.ts)}
	}
	prev, next := math.NaN(), math.NaN()
	if index > 0 {
		prev = t.ts[index-1]
		if ts <= prev {
			return &ErrTimestampOutOfOrder{Timestamp: ts, Prev: prev, Next: next}
		}
	}
	if index < len(t.ts)-1 {
		next = t.ts[index+1]
		if ts >= next {
			return &ErrTimestampOutOfOrder{Timestamp: ts, Prev: prev, Next: next}
		}
	}
	t.ts[index] = ts
	return nil
}

// ChangeTimestamp replaces the timestamp equal to old with ts. Fails
// ErrTimestampNotFound when old is absent; ordering violations leave the
// column unchanged.
func (t *TimeSeriesTable[T]) ChangeTimestamp(old, ts float64) error {
	i, found := slices.BinarySearch(t.ts, old)
	if !found {
		return &ErrTimestampNotFound{Timestamp: old}
	}
	return t.ChangeTimestampAt(i, ts)
}

// AppendRowWithTimestamp appends a row and its timestamp together, in
// that order. If the timestamp append fails the row stays appended and
// the column goes partial; there is no rollback.
func (t *TimeSeriesTable[T]) AppendRowWithTimestamp(ts float64, vals []T) error {
	if err := t.AppendRow(vals); err != nil {
		return err
	}
	return t.AppendTimestamp(ts)
}

// AppendRowSeqWithTimestamp appends a row from a sequence and then its
// timestamp, with AppendRowSeq semantics for the row part.
func (t *TimeSeriesTable[T]) AppendRowSeqWithTimestamp(ts float64, seq iter.Seq[T], optFns ...AppendOption) error {
	if err := t.AppendRowSeq(seq, optFns...); err != nil {
		return err
	}
	return t.AppendTimestamp(ts)
}

// ResizeRetaining resizes the table like Table.ResizeRetaining and
// truncates the timestamp column when rows are dropped, keeping the
// one-timestamp-per-row bound.
func (t *TimeSeriesTable[T]) ResizeRetaining(rows, cols int) error {
	if err := t.Table.ResizeRetaining(rows, cols); err != nil {
		return err
	}
	if len(t.ts) > rows {
		t.ts = t.ts[:rows]
	}
	return nil
}

// ClearData resets the table to 0x0, clearing labels and timestamps.
// Metadata is untouched.
func (t *TimeSeriesTable[T]) ClearData() {
	t.Table.ClearData()
	t.ts = nil
}

// Clone returns a deep copy including the timestamp column.
func (t *TimeSeriesTable[T]) Clone() *TimeSeriesTable[T] {
	return &TimeSeriesTable[T]{
		Table: *t.Table.Clone(),
		ts:    slices.Clone(t.ts),
	}
}
