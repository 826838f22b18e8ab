package reduce

import "bytes"

// reduceByBytes is the unconditional fallback: linear_reduce over current
// treated as a plain sequence of bytes.
func (e *Engine) reduceByBytes() {
	linearReduce(append([]byte(nil), e.current...), func(ls []byte) bool {
		return e.predicateCached(ls)
	})
}

// reduceCLikeLanguage is an inner fixed point over the passes that work
// well on "bracey" C-descended languages. A round that makes progress
// restarts immediately without running the more expensive tail passes
// (delimiter-by-space, identifier normalization, line prefixing).
func (e *Engine) reduceCLikeLanguage() {
	prevGen := -1

	for prevGen != e.generation {
		prevGen = e.generation

		e.removeComments()
		e.normalizeWhitespace()
		e.deleteBracketContents()
		e.reduceByDelimiter([]byte(";"))
		e.reduceByDelimiter([]byte("\n"))
		e.pullOutBraces()
		e.debracket()
		e.killStrings()
		e.attempt(bytes.ReplaceAll(e.current, []byte("\n;"), []byte(";")))
		e.attemptTypedefSubstitutions()

		if prevGen != e.generation {
			continue
		}

		e.reduceByDelimiter([]byte(" "))
		e.normalizeIdentifiers()
		e.prefixLines()
	}
}

// Reduce runs every pass to a fixed point of Current. It returns when a
// full round (reduceCLikeLanguage, reduceByAllDelimiters, reduceByBytes)
// makes no further progress.
func (e *Engine) Reduce() {
	prevGen := -1

	for prevGen != e.generation {
		prevGen = e.generation

		e.reduceCLikeLanguage()
		e.reduceByAllDelimiters()
		e.reduceByBytes()
	}
}
