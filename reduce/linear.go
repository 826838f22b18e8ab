package reduce

// linearReduce runs a single forward sweep that attempts to remove elements
// of sequence subject to predicate, having considered the removal of every
// element at least once. It assumes predicate(sequence) is true on entry
// (f(0) in findInteger's contract) but never checks this itself.
//
// Mirrors the reference implementation closely, including one surprising
// detail: a successful pair-delete probe (removing the elements at i and
// i+2 in one shot) ends the sweep immediately rather than just advancing
// the cursor — the same as the original.
func linearReduce[T any](sequence []T, predicate func([]T) bool) []T {
	i := 0
	for i < len(sequence) {
		before := len(sequence)
		prefix := sequence[:i]

		n := findInteger(func(k int) bool {
			if i+k > len(sequence) {
				return false
			}

			return predicate(concat(prefix, sequence[i+k:]))
		})

		switch {
		case n > 0:
			sequence = concat(prefix, sequence[i+n:])
		default:
			for _, offset := range [2]int{2, 3} {
				if i+offset > len(sequence) {
					continue
				}

				attempt := concat(prefix, sequence[i+offset:])
				if predicate(attempt) {
					sequence = attempt

					break
				}
			}
		}

		if i+2 < len(sequence) {
			attempt := removeTwo(sequence, i, i+2)
			if predicate(attempt) {
				return attempt
			}
		}

		if len(sequence) == before {
			i++
		} else if i > 0 {
			i--
		}
	}

	return sequence
}

// concat returns a freshly allocated slice holding prefix followed by
// suffix.
func concat[T any](prefix, suffix []T) []T {
	out := make([]T, 0, len(prefix)+len(suffix))
	out = append(out, prefix...)
	out = append(out, suffix...)

	return out
}

// removeTwo returns a copy of sequence with the elements at indices a and b
// (a < b) deleted.
func removeTwo[T any](sequence []T, a, b int) []T {
	out := make([]T, 0, len(sequence)-2)
	out = append(out, sequence[:a]...)
	out = append(out, sequence[a+1:b]...)
	out = append(out, sequence[b+1:]...)

	return out
}
