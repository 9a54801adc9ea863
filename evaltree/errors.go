package evaltree

import "errors"

// ErrAlreadyPresent is returned by Insert when the (value, clause)
// pair is already stored — inserting it again would violate the
// multiset's pair-uniqueness invariant.
var ErrAlreadyPresent = errors.New("evaltree: pair already present")
