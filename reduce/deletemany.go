package reduce

import "sort"

// normalizedSet is an index set paired with its elements sorted in
// decreasing order, used only for the tie-break comparison when ordering
// the set list.
type normalizedSet struct {
	members map[int]struct{}
	desc    []int
}

func newNormalizedSet(indices []int) normalizedSet {
	members := make(map[int]struct{}, len(indices))
	for _, idx := range indices {
		members[idx] = struct{}{}
	}

	desc := make([]int, 0, len(members))
	for idx := range members {
		desc = append(desc, idx)
	}

	sort.Sort(sort.Reverse(sort.IntSlice(desc)))

	return normalizedSet{members: members, desc: desc}
}

// sortSetsDescending orders sets by (size descending, then elements in
// decreasing-sorted-order descending) — tie-breaking toward the largest
// indices first, which reduces interference with earlier left-to-right
// passes.
func sortSetsDescending(sets []normalizedSet) {
	sort.SliceStable(sets, func(a, b int) bool {
		A, B := sets[a], sets[b]
		if len(A.desc) != len(B.desc) {
			return len(A.desc) > len(B.desc)
		}

		for i := range A.desc {
			if A.desc[i] != B.desc[i] {
				return A.desc[i] > B.desc[i]
			}
		}

		return false
	})
}

// attemptDeleteManySets is the engine-agnostic core of spec §4.4. target is
// the frozen snapshot at entry; predicate is called with target restricted
// to the surviving indices. It returns the final retained index set.
func attemptDeleteManySets(target []byte, sets [][]int, predicate func([]byte) bool) map[int]struct{} {
	norm := make([]normalizedSet, len(sets))
	for i, s := range sets {
		norm[i] = newNormalizedSet(s)
	}

	sortSetsDescending(norm)

	retained := make(map[int]struct{}, len(target))
	for i := range target {
		retained[i] = struct{}{}
	}

	tryRemove := func(i, j int) bool {
		if j > len(norm) {
			return false
		}

		union := make(map[int]struct{})
		for _, s := range norm[i:j] {
			for idx := range s.members {
				union[idx] = struct{}{}
			}
		}

		disjoint := true

		for idx := range union {
			if _, ok := retained[idx]; ok {
				disjoint = false

				break
			}
		}

		if disjoint {
			return true
		}

		if predicate(materializeRetained(target, retained, union)) {
			for idx := range union {
				delete(retained, idx)
			}

			return true
		}

		return false
	}

	if tryRemove(0, len(norm)) {
		return retained
	}

	i := 0
	for i < len(norm) {
		k := findInteger(func(t int) bool {
			return tryRemove(i, i+t)
		})
		i += k + 1
	}

	return retained
}

// materializeRetained builds the byte string formed by target restricted
// to indices that are in retained and not in remove.
func materializeRetained(target []byte, retained, remove map[int]struct{}) []byte {
	out := make([]byte, 0, len(retained))

	for i, c := range target {
		if _, ok := retained[i]; !ok {
			continue
		}

		if _, ok := remove[i]; ok {
			continue
		}

		out = append(out, c)
	}

	return out
}

// AttemptDeleteManySets deletes as many of the given index sets as
// possible from the current best while keeping the predicate satisfied.
// Each set refers to byte indices in Current() as of the call.
func (e *Engine) AttemptDeleteManySets(sets [][]int) {
	target := e.Current()
	attemptDeleteManySets(target, sets, e.predicateCached)
}
