package reduce

import "bytes"

// reduceByDelimiter treats current as a sequence of parts separated by d
// and tries to shrink that sequence. Returns whether current changed.
func (e *Engine) reduceByDelimiter(d []byte) bool {
	startGen := e.generation

	parts := bytes.Split(e.current, d)

	if e.attempt(bytes.Join(parts, nil)) {
		d = nil
	}

	if e.attempt(bytes.Join(nonEmptyParts(parts), d)) {
		parts = bytes.Split(e.current, d)
	}

	reverseParts(parts)

	linearReduce(parts, func(ls [][]byte) bool {
		reversed := make([][]byte, len(ls))
		for i, p := range ls {
			reversed[len(ls)-1-i] = p
		}

		return e.predicateCached(bytes.Join(reversed, d))
	})

	return startGen != e.generation
}

// reduceByAllDelimiters runs reduceByDelimiter for every distinct byte
// present in current at entry, rarest byte first (ties broken by byte
// value), recomputing frequencies against the live current before each
// pick.
func (e *Engine) reduceByAllDelimiters() {
	pending := distinctBytes(e.current)

	for len(pending) > 0 {
		counts := byteCounts(e.current)

		best := pickRarest(pending, counts)
		e.reduceByDelimiter([]byte{best})
		delete(pending, best)
	}
}

func nonEmptyParts(parts [][]byte) [][]byte {
	out := make([][]byte, 0, len(parts))

	for _, p := range parts {
		if len(p) > 0 {
			out = append(out, p)
		}
	}

	return out
}

func reverseParts(parts [][]byte) {
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
}

func distinctBytes(value []byte) map[byte]struct{} {
	set := make(map[byte]struct{})
	for _, c := range value {
		set[c] = struct{}{}
	}

	return set
}

func byteCounts(value []byte) map[byte]int {
	counts := make(map[byte]int)
	for _, c := range value {
		counts[c]++
	}

	return counts
}

func pickRarest(pending map[byte]struct{}, counts map[byte]int) byte {
	var (
		best     byte
		bestSet  bool
		bestFreq int
	)

	for c := range pending {
		freq := counts[c]
		if !bestSet || freq < bestFreq || (freq == bestFreq && c < best) {
			best = c
			bestFreq = freq
			bestSet = true
		}
	}

	return best
}
