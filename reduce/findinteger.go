package reduce

// findInteger returns the largest n >= 0 such that f(n) is true and
// f(n+1) is false, given that f(0) is assumed true (and is never called).
//
// It biases cost toward small answers with a linear scan of the first four
// candidates, then switches to an exponential probe followed by a binary
// search once f(4) holds. Each distinct k is passed to f at most once.
func findInteger(f func(n int) bool) int {
	for i := 1; i <= 4; i++ {
		if !f(i) {
			return i - 1
		}
	}

	lo, hi := 4, 5
	for f(hi) {
		lo = hi
		hi *= 2
	}

	for lo+1 < hi {
		mid := (lo + hi) / 2
		if f(mid) {
			lo = mid
		} else {
			hi = mid
		}
	}

	return lo
}
