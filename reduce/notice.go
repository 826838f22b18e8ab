package reduce

import "fmt"

// NoticeKind distinguishes the two debug notices the engine ever emits.
type NoticeKind int

const (
	// NoticeShrink fires when a candidate is accepted and is strictly
	// smaller (by sort key) than the current best.
	NoticeShrink NoticeKind = iota
	// NoticeNonShrink fires when a candidate is accepted by the predicate
	// but does not improve on the current best.
	NoticeNonShrink
)

// Notice describes one predicate acceptance, reported only when the engine
// was constructed with debug enabled.
type Notice struct {
	Kind            NoticeKind
	CandidateLen    int
	PreviousBestLen int
	BestLen         int
}

// String renders a notice the way a human watching the run would want to
// read it.
func (n Notice) String() string {
	switch n.Kind {
	case NoticeShrink:
		pct := 0.0
		if n.PreviousBestLen > 0 {
			pct = 100.0 * float64(n.PreviousBestLen-n.BestLen) / float64(n.PreviousBestLen)
		}

		return fmt.Sprintf("shrink from %d to %d bytes (%.2f%%)", n.PreviousBestLen, n.BestLen, pct)
	case NoticeNonShrink:
		return fmt.Sprintf("found non-shrinking example of length %d (current best: %d)", n.CandidateLen, n.BestLen)
	default:
		return "notice"
	}
}
