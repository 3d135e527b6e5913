package tablego

import "github.com/hupe1980/tablego/internal/fill"

type options[T any] struct {
	logger     *Logger
	missing    T
	hasMissing bool
}

func defaultOptions[T any]() options[T] {
	return options[T]{
		logger:  NoopLogger(),
		missing: fill.Missing[T](),
	}
}

// Option configures a Table or TimeSeriesTable constructor.
type Option[T any] func(*options[T])

// WithLogger configures the logger used for debug events on growth, trim,
// resize and concatenation. The default discards all output.
func WithLogger[T any](l *Logger) Option[T] {
	return func(o *options[T]) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMissingValue configures the sentinel stored in cells left unset by
// an append with AllowMissing. The default is a quiet NaN for float
// element types and the zero value otherwise.
func WithMissingValue[T any](v T) Option[T] {
	return func(o *options[T]) {
		o.missing = v
		o.hasMissing = true
	}
}

// defaultCapacityHint is the starting capacity for the open dimension when
// populating an empty table from a sequence without an explicit hint.
const defaultCapacityHint = 2

type appendOptions struct {
	capacityHint int
	allowMissing bool
	count        int
	hasCount     bool
	orthogonal   int
}

func newAppendOptions(optFns []AppendOption) appendOptions {
	o := appendOptions{capacityHint: defaultCapacityHint}
	for _, fn := range optFns {
		fn(&o)
	}
	return o
}

// AppendOption configures a single append call.
type AppendOption func(*appendOptions)

// WithCapacityHint sets the starting capacity for the open dimension when
// appending a sequence to an empty table. The hint may be above or below
// the actual length; it only reduces the number of reallocations. Ignored
// on non-empty tables.
func WithCapacityHint(n int) AppendOption {
	return func(o *appendOptions) {
		o.capacityHint = n
	}
}

// AllowMissing permits the input sequence to end before the last row or
// column is complete; the remaining cells are set to the table's missing
// value instead of failing with ErrInsufficientElements.
func AllowMissing() AppendOption {
	return func(o *appendOptions) {
		o.allowMissing = true
	}
}

// WithCount fixes the number of rows (for AppendRows) or columns (for
// AppendColumns) the sequence must produce. The element count must then
// match exactly: too few fails ErrInsufficientElements, too many fails
// ErrExcessElements.
func WithCount(n int) AppendOption {
	return func(o *appendOptions) {
		o.count = n
		o.hasCount = true
	}
}

// WithColumns sets the number of columns when AppendRows is called on an
// empty table. Ignored when the table already has columns.
func WithColumns(n int) AppendOption {
	return func(o *appendOptions) {
		o.orthogonal = n
	}
}

// WithRows sets the number of rows when AppendColumns is called on an
// empty table. Ignored when the table already has rows.
func WithRows(n int) AppendOption {
	return func(o *appendOptions) {
		o.orthogonal = n
	}
}
