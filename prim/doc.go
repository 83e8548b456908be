// Package prim supplies the data-parallel primitive set that the sparse
// kernels in coo are written against: index-indirect reads and writes
// (Gather, Scatter, ScatterIf), order-preserving prefix combines
// (InclusiveScan, ExclusiveScan, SegmentedScan), stable key sorts
// (SortByKey, SortPermutation, SortPermutation2), run compaction
// (UniqueByKeyReduce, UniquePairsByKeyReduce) and elementwise maps
// (Transform, TransformUnary, Iota, Fill).
//
// Every primitive is a pure bulk pass over whole slices:
//
//   - Deterministic — scans combine strictly left-to-right over the
//     logical index; sorts are stable; no primitive depends on
//     scheduling or iteration racing.
//   - Fail-fast — length mismatches and out-of-range indices surface as
//     sentinel errors (ErrLengthMismatch, ErrIndexOutOfRange) matched
//     via errors.Is; primitives never panic on user input.
//   - Alias-tolerant where it is useful — the scan family permits
//     dst and src to be the same slice, enabling in-place pipelines.
//
// Operator constructors (Plus, Minus, Multiplies, Maximum) mirror the
// classic functional style of parallel libraries so call sites read as
// pipelines rather than loops:
//
//	_ = prim.InclusiveScan(ranks, ranks, prim.Maximum[int32]())
//
// Complexity: every primitive is O(n) except the sort family, which is
// O(n log n) comparisons with stable ordering.
package prim
