package reduce

import (
	"bytes"
	"regexp"
	"sort"
)

var identifierRE = regexp.MustCompile(`\b[A-Za-z_]\w+\b`)

// normalizeIdentifiers extracts ascii identifiers that occur more than
// once, processing the ones with the smallest length*occurrence-count
// first, and for each tries collapsing it to nothing or to a shorter
// stand-in delimiter.
func (e *Engine) normalizeIdentifiers() {
	counts := make(map[string]int)

	var firstSeen []string

	for _, m := range identifierRE.FindAll(e.current, -1) {
		s := string(m)
		if counts[s] == 0 {
			firstSeen = append(firstSeen, s)
		}

		counts[s]++
	}

	var identifiers []string

	for _, s := range firstSeen {
		if counts[s] > 1 {
			identifiers = append(identifiers, s)
		}
	}

	sort.SliceStable(identifiers, func(a, b int) bool {
		return len(identifiers[a])*counts[identifiers[a]] < len(identifiers[b])*counts[identifiers[b]]
	})

	for _, s := range identifiers {
		sb := []byte(s)
		parts := bytes.Split(e.current, sb)

		var delimiter []byte

		if e.predicateCached(bytes.Join(parts, nil)) {
			delimiter = nil
		} else {
			delimiter = linearReduce(sb, func(q []byte) bool {
				return e.predicateCached(bytes.Join(parts, q))
			})
		}

		linearReduce(parts, func(ls [][]byte) bool {
			return e.predicateCached(bytes.Join(ls, delimiter))
		})
	}
}
