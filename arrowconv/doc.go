// Package arrowconv bridges tablego tables and Apache Arrow records for
// in-memory interchange with the Arrow ecosystem.
//
// Conversion copies data in both directions; records and tables never
// share memory. This is not a file format: serializing the resulting
// records (IPC, Parquet) is the caller's business.
package arrowconv
