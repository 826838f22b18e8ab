package reduce

// PredicateFunc is the external interestingness test. It must be
// deterministic and total. It is never assumed monotone: acceptance of a
// string does not imply acceptance of any of its substrings.
type PredicateFunc func(value []byte) bool

// Engine owns the current best candidate and the predicate cache for one
// reduction run. It is not safe for concurrent use — the whole design is
// single-threaded cooperative execution, suspended only inside calls to the
// predicate.
type Engine struct {
	current    []byte
	generation int

	predicate PredicateFunc
	cache     map[uint64]bool

	debug    bool
	onNotice func(Notice)
}

// New constructs an Engine over initial. It fails with ErrInvalidInitial if
// predicate(initial) is false. onNotice may be nil; it is only ever called
// when debug is true.
func New(initial []byte, predicate PredicateFunc, debug bool, onNotice func(Notice)) (*Engine, error) {
	e := &Engine{
		current:   append([]byte(nil), initial...),
		predicate: predicate,
		cache:     make(map[uint64]bool),
		debug:     debug,
		onNotice:  onNotice,
	}

	if !predicate(e.current) {
		return nil, ErrInvalidInitial
	}

	e.cache[fingerprint(e.current)] = true

	return e, nil
}

// Current returns a copy of the shortest accepted candidate seen so far.
func (e *Engine) Current() []byte {
	return append([]byte(nil), e.current...)
}

// predicateCached is the cached predicate from spec §4.3: it memoizes by
// fingerprint and updates the running best on a confirmed strict shrink.
func (e *Engine) predicateCached(value []byte) bool {
	fp := fingerprint(value)

	if verdict, ok := e.cache[fp]; ok {
		return verdict
	}

	verdict := e.predicate(value)
	if verdict {
		if sortKeyLess(value, e.current) {
			previous := len(e.current)
			e.current = append([]byte(nil), value...)
			e.generation++

			if e.debug && e.onNotice != nil {
				e.onNotice(Notice{
					Kind:            NoticeShrink,
					CandidateLen:    len(value),
					PreviousBestLen: previous,
					BestLen:         len(e.current),
				})
			}
		} else if e.debug && e.onNotice != nil {
			e.onNotice(Notice{
				Kind:            NoticeNonShrink,
				CandidateLen:    len(value),
				PreviousBestLen: len(e.current),
				BestLen:         len(e.current),
			})
		}
	}

	e.cache[fp] = verdict

	return verdict
}

// attempt is the shortcut from spec §4.3: only calls the cached predicate
// when value would actually be a strict shrink over the current best.
func (e *Engine) attempt(value []byte) bool {
	if !sortKeyLess(value, e.current) {
		return false
	}

	return e.predicateCached(value)
}
