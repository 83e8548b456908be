package prim

import "fmt"

// UniqueByKeyReduce compacts consecutive runs of equal keys in place,
// combining the values of each run with reduce (left-to-right). It
// returns the compacted length m: keys[:m] holds one key per run and
// vals[:m] the reduced value of that run. Slots beyond m are left in an
// unspecified state; callers truncate.
//
// Only *adjacent* duplicates merge — sort by key first for a global
// unique, exactly as the sparse pipeline does.
//
// Contract: len(keys) == len(vals) (ErrLengthMismatch), reduce != nil
// (ErrNilOperator). Empty input compacts to length 0.
//
// Complexity: O(n) time, O(1) extra space.
func UniqueByKeyReduce[K comparable, V any](keys []K, vals []V, reduce func(V, V) V) (int, error) {
	if len(keys) != len(vals) {
		return 0, fmt.Errorf("UniqueByKeyReduce: %w", ErrLengthMismatch)
	}
	if reduce == nil {
		return 0, fmt.Errorf("UniqueByKeyReduce: %w", ErrNilOperator)
	}
	if len(keys) == 0 {
		return 0, nil
	}

	w := 0 // write cursor: last committed run
	for r := 1; r < len(keys); r++ {
		if keys[r] == keys[w] {
			vals[w] = reduce(vals[w], vals[r])
			continue
		}
		w++
		keys[w] = keys[r]
		vals[w] = vals[r]
	}

	return w + 1, nil
}

// UniquePairsByKeyReduce is UniqueByKeyReduce over the composite key
// (k1[i], k2[i]): consecutive slots whose key pairs are both equal merge
// into one, values combined with reduce. Both key slices are compacted
// in lockstep. This is the zip-key form the sparse pipeline uses to
// merge duplicate (row, column) coordinates by summation.
//
// Contract: len(k1) == len(k2) == len(vals) (ErrLengthMismatch),
// reduce != nil (ErrNilOperator).
//
// Complexity: O(n) time, O(1) extra space.
func UniquePairsByKeyReduce[K comparable, V any](k1, k2 []K, vals []V, reduce func(V, V) V) (int, error) {
	if len(k1) != len(k2) || len(k1) != len(vals) {
		return 0, fmt.Errorf("UniquePairsByKeyReduce: %w", ErrLengthMismatch)
	}
	if reduce == nil {
		return 0, fmt.Errorf("UniquePairsByKeyReduce: %w", ErrNilOperator)
	}
	if len(k1) == 0 {
		return 0, nil
	}

	w := 0
	for r := 1; r < len(k1); r++ {
		if k1[r] == k1[w] && k2[r] == k2[w] {
			vals[w] = reduce(vals[w], vals[r])
			continue
		}
		w++
		k1[w] = k1[r]
		k2[w] = k2[r]
		vals[w] = vals[r]
	}

	return w + 1, nil
}
