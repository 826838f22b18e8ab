package reduce

import "errors"

// ErrInvalidInitial is returned by New when the initial input does not
// satisfy the predicate.
var ErrInvalidInitial = errors.New("initial value does not satisfy predicate")
