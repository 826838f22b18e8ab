package reduce

import (
	"bytes"
	"regexp"
)

var (
	leadingWhitespaceRE  = regexp.MustCompile(`(?m)^\s+`)
	trailingWhitespaceRE = regexp.MustCompile(`(?m)\s+$`)
	lineCommentRE        = regexp.MustCompile(`(#|//)[^\n]+\n`)
	blockCommentRE       = regexp.MustCompile(`/\*.+\*/`)
)

// removeByte is a single-shot attempt to delete every occurrence of c.
func (e *Engine) removeByte(c byte) bool {
	return e.attempt(bytes.ReplaceAll(e.current, []byte{c}, nil))
}

// normalizeWhitespace removes carriage returns, strips leading/trailing
// whitespace on every line, then collapses blank lines to a fixed point.
func (e *Engine) normalizeWhitespace() {
	e.removeByte('\r')

	e.predicateCached(leadingWhitespaceRE.ReplaceAll(e.current, nil))
	e.predicateCached(trailingWhitespaceRE.ReplaceAll(e.current, nil))

	for e.attempt(bytes.ReplaceAll(e.current, []byte("\n\n"), []byte("\n"))) {
	}
}

// removeComments strips line comments (# or //) and single-line block
// comments via attemptDeleteManySets.
func (e *Engine) removeComments() {
	e.stripRegion(lineCommentRE)
	e.stripRegion(blockCommentRE)
}

func (e *Engine) stripRegion(re *regexp.Regexp) {
	matches := re.FindAllIndex(e.current, -1)
	if len(matches) == 0 {
		return
	}

	sets := make([][]int, len(matches))
	for i, m := range matches {
		sets[i] = indexRange(m[0], m[1])
	}

	e.AttemptDeleteManySets(sets)
}

// killStrings deletes the interiors of the regions between consecutive
// occurrences of each quote byte — both the spans inside a quoted literal
// and the spans between two literals are offered up, letting
// attemptDeleteManySets decide which survive.
func (e *Engine) killStrings() {
	for _, quote := range []byte{'\'', '"'} {
		var positions []int

		for i, c := range e.current {
			if c == quote {
				positions = append(positions, i)
			}
		}

		if len(positions) < 2 {
			continue
		}

		sets := make([][]int, 0, len(positions)-1)
		for i := 0; i+1 < len(positions); i++ {
			sets = append(sets, indexRange(positions[i]+1, positions[i+1]))
		}

		e.AttemptDeleteManySets(sets)
	}
}

// deleteBracketContents tries deleting the contents of each matched
// bracket pair, then reduces by the open bracket byte as a delimiter.
func (e *Engine) deleteBracketContents() {
	for _, kind := range bracketAlphabet {
		pairs := findPairedBrackets(kind[0], kind[1], e.current)

		sets := make([][]int, len(pairs))
		for i, p := range pairs {
			sets[i] = indexRange(p.open+1, p.close)
		}

		e.AttemptDeleteManySets(sets)
		e.reduceByDelimiter([]byte{kind[0]})
	}
}

// debracket tries removing the bracket characters themselves, freeing
// later passes from having to keep brackets balanced.
func (e *Engine) debracket() {
	for _, kind := range bracketAlphabet {
		pairs := findPairedBrackets(kind[0], kind[1], e.current)

		sets := make([][]int, len(pairs))
		for i, p := range pairs {
			sets[i] = []int{p.open, p.close}
		}

		e.AttemptDeleteManySets(sets)
	}
}

// pullOutBraces replaces "foo{ ... }" with "foo; ..." wherever that is
// accepted, then tries to collapse the resulting "; ;" and "{ }" noise.
func (e *Engine) pullOutBraces() {
	braces := findPairedBrackets('{', '}', e.current)

	i := 0
	for i < len(braces) {
		pair := braces[i]

		attempt := make([]byte, 0, len(e.current)-1)
		attempt = append(attempt, e.current[:pair.open]...)
		attempt = append(attempt, ';')
		attempt = append(attempt, e.current[pair.open+1:pair.close]...)
		attempt = append(attempt, e.current[pair.close+1:]...)

		if e.predicateCached(attempt) {
			e.attempt(semiSemiRE.ReplaceAll(e.current, nil))
			e.attempt(emptyBraceRE.ReplaceAll(e.current, nil))

			braces = findPairedBrackets('{', '}', e.current)
		} else {
			i++
		}
	}
}

var (
	semiSemiRE   = regexp.MustCompile(`;\s*;`)
	emptyBraceRE = regexp.MustCompile(`\{\s+\}`)
)

// prefixLines truncates each "line" (terminated by \n or ;) at its first
// internal space. A terminator with no space anywhere in current stops the
// whole pass, including any later terminators — matching the reference
// implementation's early return.
func (e *Engine) prefixLines() {
	for _, terminator := range []byte{'\n', ';'} {
		i := bytes.IndexByte(e.current, ' ')
		if i < 0 {
			return
		}

		for i < len(e.current) {
			lineEnd := bytes.IndexByte(e.current[i+1:], terminator)
			if lineEnd < 0 {
				lineEnd = len(e.current)
			} else {
				lineEnd += i + 1
			}

			e.attempt(concat(e.current[:i], e.current[lineEnd:]))

			if i+1 > len(e.current) {
				break
			}

			next := bytes.IndexByte(e.current[i+1:], ' ')
			if next < 0 {
				break
			}

			i += 1 + next
		}
	}
}

func indexRange(start, end int) []int {
	out := make([]int, 0, end-start)
	for i := start; i < end; i++ {
		out = append(out, i)
	}

	return out
}
