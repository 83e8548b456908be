// Package spmat is an in-memory toolkit for sparse matrices in
// coordinate (COO) form, built entirely on bulk data-parallel
// primitives — map, gather, scatter, scan, segmented scan, sort and
// unique-by-key — instead of row-by-row traversal.
//
// 🚀 What is spmat?
//
//	A small, deterministic library that brings together:
//		• coo/  — the COO container, triple builder, offsets converters,
//		  a dense fallback, and the sparse×sparse multiply pipeline
//		• prim/ — the generic primitive set the kernels are written in:
//		  Gather, ScatterIf, InclusiveScan/ExclusiveScan, SegmentedScan,
//		  stable SortByKey / sort permutations, UniqueByKeyReduce, Transform
//
// ✨ Why choose spmat?
//
//   - Flat-sequence algorithms – every kernel is a fixed pipeline of
//     order-preserving bulk passes, so results are fully deterministic
//   - Fail-fast guarantees – sentinel errors, strict validation, and a
//     no-partial-result rule: an output matrix is written only on success
//   - Pure Go – generic over index width and scalar type, no cgo
//
// Quick taste:
//
//	a, _ := coo.Identity[int32, float64](3)
//	b, _ := coo.FromTriples[int32, float64](3, 3,
//		[]int32{0, 1, 2}, []int32{1, 2, 0}, []float64{2, 3, 4})
//	c, _ := coo.Multiply(a, b)
//	// c holds exactly b's entries: identity × B = B
//
// Dive into the package docs of coo and prim for the full contracts.
package spmat
