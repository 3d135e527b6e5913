// Package matrix implements dense, resizable, row-major 2-D storage with
// bounds-checked element access, zero-copy row/column/block views and
// resize-retaining reallocation.
//
// Views are generation-stamped: every structural mutation of a Dense bumps
// its generation, and a view created before the mutation fails fast with
// ErrStaleView instead of reading relocated memory.
package matrix
