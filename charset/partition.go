package charset

import "slices"

// Partition refines possibly overlapping sets into the coarsest cover of
// pairwise disjoint, nonempty sets.
//
// The result satisfies:
//   - the union of the result equals the union of sets
//   - no two result sets intersect
//   - every input set is exactly the union of the result sets that are subsets
//     of it
//
// The result is sorted with Compare, so it does not depend on input order.
// Duplicate inputs are ignored. The cost is quadratic in the number of distinct
// inputs: each input may split every piece found so far.
func Partition(sets []Set) []Set {
	var pieces []Set
	seen := make(map[Set]struct{}, len(sets))
	for _, s := range sets {
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		pieces = disjoin(pieces, s)
	}

	out := pieces[:0]
	for _, p := range pieces {
		if !p.Empty() {
			out = append(out, p)
		}
	}
	slices.SortFunc(out, Compare)
	return out
}

// disjoin splits every piece of a disjoint collection by s and adds the part of
// s not yet covered. Empty fragments are dropped as they appear.
func disjoin(pieces []Set, s Set) []Set {
	next := make([]Set, 0, 2*len(pieces)+1)
	covered := None()
	for _, x := range pieces {
		covered = covered.Union(x)
		if d := x.Difference(s); !d.Empty() {
			next = append(next, d)
		}
		if i := x.Intersection(s); !i.Empty() {
			next = append(next, i)
		}
	}
	if rest := s.Difference(covered); !rest.Empty() {
		next = append(next, rest)
	}
	return next
}
