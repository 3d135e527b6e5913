// Package tablego provides a generic in-memory container for tabular
// data: a dense, resizable matrix of typed entries with optional unique
// per-column string labels, a heterogeneous typed metadata store, and a
// time-series extension that attaches a strictly increasing timestamp to
// each row and supports nearest-neighbor lookup by time.
//
// # Quick Start
//
//	dt := tablego.New[float64]()
//	_ = dt.AppendRow([]float64{1, 2, 3})
//	_ = dt.AppendRow([]float64{4, 5, 6})
//	_ = dt.SetColumnLabel(0, "time")
//
//	v, _ := dt.AtLabel(1, "time") // 4
//
// Open-ended appends populate an empty table one value at a time with
// amortized power-of-two growth, trimmed to the exact size once the
// sequence ends:
//
//	dt := tablego.New[float64]()
//	_ = dt.AppendRowSeq(slices.Values(data), tablego.WithCapacityHint(64))
//
// # Time series
//
//	ts := tablego.NewTimeSeries[float64]()
//	_ = ts.AppendRowWithTimestamp(0.5, []float64{1, 2})
//	_ = ts.AppendRowWithTimestamp(1.5, []float64{3, 4})
//
//	row, _ := ts.RowIndexNear(1.1, tablego.Nearest)
//
// # Views
//
// Row, column and block accessors return non-owning views into the
// table's buffer. Any structural mutation (append beyond capacity,
// resize, concatenation) invalidates outstanding views; a stale view
// fails fast with matrix.ErrStaleView instead of reading relocated
// memory.
//
// # Errors
//
// All failures are reported through the typed errors in this package and
// the matrix and metadata subpackages; nothing is silently swallowed.
// Single-element operations leave the table unchanged on failure. Batch
// operations (label batches, timestamp batches, growth-driven appends)
// apply entries one at a time and stop at the first failure without
// rolling back.
//
// Tables are not safe for concurrent mutation.
package tablego
