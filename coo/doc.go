// Package coo implements sparse matrices in coordinate (COO) form and
// their multiplication as a pipeline of bulk data-parallel passes.
//
// The coo package provides:
//
//   - Matrix — the COO container: dimensions plus three parallel
//     row/column/value sequences, generic over index width and scalar
//     type, with constructors (New, FromTriples, Identity), a Builder
//     for incremental ingestion, and ordering helpers (IsRowGrouped,
//     SortByRowColumn).
//   - Multiply / MultiplyInto — sparse×sparse multiplication as five
//     sequential stages (short-circuit, row-indexing, expansion-sizing,
//     segment resolution & gather, sort & compress), each expressed
//     through the primitives in package prim rather than per-element
//     loops. MultiplyMany runs independent products concurrently.
//   - IndicesToOffsets / OffsetsToIndices — the compressed row-offset
//     view of a row-grouped sequence and its mark-then-scan inverse.
//   - Dense / MultiplyDense — the naive flat-array fallback, also the
//     oracle the sparse pipeline is verified against.
//
// Guarantees: inputs are read-only; a failed call leaves its output
// untouched; Multiply results are (row, column)-ordered with duplicate
// coordinates merged by summation. Error conditions surface as package
// sentinels (ErrDimensionMismatch, ErrRowsNotGrouped, ErrTooLarge, ...)
// matched via errors.Is.
//
// The one storage precondition: Multiply's right operand must be
// row-grouped (nondecreasing row indices). It is checked by default,
// repaired under WithDefensiveSort, and waivable with
// WithNoValidateInputs when grouping is guaranteed by construction.
//
// See the examples in this package and the prim package docs for the
// primitive contracts the pipeline relies on.
package coo
