// Package metadata provides a heterogeneous key-value store with
// type-checked retrieval.
//
// Values are stored type-erased and recovered with the generic Get, Update
// and Pop functions, which fail with ErrTypeMismatch when the requested
// type differs from the stored one. The store is intended to carry opaque
// auxiliary attributes (units, provenance, sampling rate) alongside a data
// container without the container needing to understand them.
package metadata
