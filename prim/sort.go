package prim

import (
	"fmt"
	"sort"

	"golang.org/x/exp/constraints"
)

// SortByKey stably sorts keys ascending, moving payload[i] together with
// keys[i]. Ties keep their original relative order, which is what makes
// multi-pass key sorts composable: a later pass on a coarser key never
// disturbs the order established by an earlier pass within equal keys.
//
// Contract: len(keys) == len(payload), else ErrLengthMismatch.
//
// Complexity: O(n log n) comparisons, stable; O(1) extra space beyond
// sort.Stable's internals.
func SortByKey[K constraints.Ordered, P any](keys []K, payload []P) error {
	if len(keys) != len(payload) {
		return fmt.Errorf("SortByKey: %w", ErrLengthMismatch)
	}

	sort.Stable(&keyPayloadSorter[K, P]{keys: keys, payload: payload})

	return nil
}

// keyPayloadSorter adapts a (keys, payload) slice pair to sort.Interface,
// swapping both slices in lockstep.
type keyPayloadSorter[K constraints.Ordered, P any] struct {
	keys    []K
	payload []P
}

func (s *keyPayloadSorter[K, P]) Len() int           { return len(s.keys) }
func (s *keyPayloadSorter[K, P]) Less(i, j int) bool { return s.keys[i] < s.keys[j] }
func (s *keyPayloadSorter[K, P]) Swap(i, j int) {
	s.keys[i], s.keys[j] = s.keys[j], s.keys[i]
	s.payload[i], s.payload[j] = s.payload[j], s.payload[i]
}

// indexRangeOK reports whether every position 0..n-1 of an n-slot
// permutation is representable by Ix. Without this guard a too-narrow
// Ix would wrap during the identity fill and index negatively inside
// the comparator.
func indexRangeOK[Ix constraints.Integer](n int) bool {
	if n == 0 {
		return true
	}
	last := n - 1

	return int(Ix(last)) == last && Ix(last) >= 0
}

// SortPermutation fills perm with the stable ascending order of keys:
// after the call, keys[perm[0]], keys[perm[1]], ... is nondecreasing and
// equal keys keep their original relative order. keys itself is not
// modified; reordering any number of payload sequences is then a Gather
// through perm.
//
// Contract: len(perm) == len(keys), else ErrLengthMismatch; every
// position 0..len(keys)-1 must be representable by Ix, else
// ErrIndexOutOfRange.
//
// Complexity: O(n log n) comparisons, stable.
func SortPermutation[K constraints.Ordered, Ix constraints.Integer](keys []K, perm []Ix) error {
	if len(perm) != len(keys) {
		return fmt.Errorf("SortPermutation: %w", ErrLengthMismatch)
	}
	if !indexRangeOK[Ix](len(keys)) {
		return fmt.Errorf("SortPermutation: length %d exceeds index type range: %w", len(keys), ErrIndexOutOfRange)
	}

	Iota(perm, 0)
	sort.Stable(&permSorter[Ix]{
		perm: perm,
		less: func(a, b Ix) bool { return keys[a] < keys[b] },
	})

	return nil
}

// SortPermutation2 is SortPermutation on the composite lexicographic key
// (primary, secondary): perm orders slots by primary first, breaking
// ties by secondary, stably. It replaces the classic two-pass scheme
// (sort by secondary, then stably by primary) with a single pass; the
// two formulations produce identical orderings.
//
// Contract: len(primary) == len(secondary) == len(perm), else
// ErrLengthMismatch; every position must be representable by Ix, else
// ErrIndexOutOfRange.
//
// Complexity: O(n log n) comparisons, stable.
func SortPermutation2[K constraints.Ordered, Ix constraints.Integer](primary, secondary []K, perm []Ix) error {
	if len(primary) != len(secondary) || len(perm) != len(primary) {
		return fmt.Errorf("SortPermutation2: %w", ErrLengthMismatch)
	}
	if !indexRangeOK[Ix](len(primary)) {
		return fmt.Errorf("SortPermutation2: length %d exceeds index type range: %w", len(primary), ErrIndexOutOfRange)
	}

	Iota(perm, 0)
	sort.Stable(&permSorter[Ix]{
		perm: perm,
		less: func(a, b Ix) bool {
			if primary[a] != primary[b] {
				return primary[a] < primary[b]
			}

			return secondary[a] < secondary[b]
		},
	})

	return nil
}

// permSorter sorts a permutation slice by an injected comparison on the
// positions it refers to. Starting from the identity permutation,
// sort.Stable's stability carries over to the produced ordering.
type permSorter[Ix constraints.Integer] struct {
	perm []Ix
	less func(a, b Ix) bool
}

func (s *permSorter[Ix]) Len() int           { return len(s.perm) }
func (s *permSorter[Ix]) Less(i, j int) bool { return s.less(s.perm[i], s.perm[j]) }
func (s *permSorter[Ix]) Swap(i, j int)      { s.perm[i], s.perm[j] = s.perm[j], s.perm[i] }
