package reduce

// bracketPair is an (open, close) index pair into a target byte string.
type bracketPair struct {
	open  int
	close int
}

// bracketAlphabet is the fixed ordered set of bracket kinds the textual
// passes iterate over.
var bracketAlphabet = [][2]byte{
	{'{', '}'},
	{'(', ')'},
	{'[', ']'},
}

// findPairedBrackets returns the balanced (open, close) index pairs found
// by a left-to-right scan with a stack: push on open, pop-and-emit on
// close when the stack is non-empty. Unmatched closes are discarded,
// unmatched opens are dropped. Pairs come out in emission order, which
// puts innermost pairs first within any nested group.
func findPairedBrackets(open, close byte, target []byte) []bracketPair {
	var (
		stack []int
		pairs []bracketPair
	)

	for i, c := range target {
		switch c {
		case open:
			stack = append(stack, i)
		case close:
			if len(stack) > 0 {
				j := stack[len(stack)-1]
				stack = stack[:len(stack)-1]

				pairs = append(pairs, bracketPair{open: j, close: i})
			}
		}
	}

	return pairs
}
