package reduce

import "regexp"

var typedefRE = regexp.MustCompile(`typedef\s+(.+)\s+(\w+)\s*;`)

// attemptTypedefSubstitutions is a C-specific pass: it looks for typedef
// declarations and tries, in order, to delete the declaration outright, to
// replace every use of the declared name with its definition, or to
// substitute individual occurrences one at a time. It explores through
// non-shrinking intermediate states (accepted by the predicate but not
// necessarily becoming the new best) to unlock later reductions, the same
// way the reference implementation's local "pumped" variable does — this
// local state is discarded at the end of the pass except for whatever made
// it into Current() via an actual shrink along the way.
func (e *Engine) attemptTypedefSubstitutions() {
	pumped := e.current
	attempted := make(map[string]struct{})

	for {
		matches := typedefRE.FindAllSubmatchIndex(pumped, -1)

		progressed := false

		for _, m := range matches {
			td := string(pumped[m[0]:m[1]])
			if _, seen := attempted[td]; seen {
				continue
			}

			attempted[td] = struct{}{}

			removed := concat(pumped[:m[0]], pumped[m[1]:])
			if e.predicateCached(removed) {
				pumped = removed
				progressed = true

				break
			}

			definition := pumped[m[2]:m[3]]
			name := pumped[m[4]:m[5]]

			nameRE := wordBoundaryRE(name)

			fully := replaceAllLiteral(nameRE, removed, definition)
			if e.predicateCached(fully) {
				pumped = fully
			} else {
				targets := nameRE.FindAllIndex(pumped, -1)

				i := 0
				for i < len(targets) {
					t := targets[i]

					attempt := make([]byte, 0, len(pumped)-(t[1]-t[0])+len(definition))
					attempt = append(attempt, pumped[:t[0]]...)
					attempt = append(attempt, definition...)
					attempt = append(attempt, pumped[t[1]:]...)

					if e.predicateCached(attempt) {
						pumped = attempt
						targets = nameRE.FindAllIndex(pumped, -1)
					} else {
						i++
					}
				}
			}

			progressed = true

			break
		}

		if !progressed {
			break
		}
	}

	finalMatches := typedefRE.FindAllSubmatchIndex(pumped, -1)
	for i := len(finalMatches) - 1; i >= 0; i-- {
		m := finalMatches[i]

		attempt := concat(pumped[:m[0]], pumped[m[1]:])
		if e.predicateCached(attempt) {
			pumped = attempt
		}
	}
}

// wordBoundaryRE compiles a regexp matching name on word boundaries.
func wordBoundaryRE(name []byte) *regexp.Regexp {
	return regexp.MustCompile(`\b` + regexp.QuoteMeta(string(name)) + `\b`)
}

// replaceAllLiteral replaces every match of re in src with repl, treating
// repl as a literal byte string (unlike regexp.ReplaceAll, which
// special-cases "$" in repl as a submatch reference).
func replaceAllLiteral(re *regexp.Regexp, src, repl []byte) []byte {
	matches := re.FindAllIndex(src, -1)
	if matches == nil {
		return append([]byte(nil), src...)
	}

	out := make([]byte, 0, len(src))
	last := 0

	for _, m := range matches {
		out = append(out, src[last:m[0]]...)
		out = append(out, repl...)
		last = m[1]
	}

	out = append(out, src[last:]...)

	return out
}
