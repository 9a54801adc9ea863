package clauseset

// Every error below names a programmer error: a precondition or
// invariant violation that should never occur in a correct caller. Go
// has no separate assert/release build split, so these are panicked
// rather than returned. Plain absence (a missing key, an empty slot)
// is communicated by a nil/zero/false return, never by one of these.

// precondition violations
const (
	errAlreadyInSet         = "clauseset: clause already belongs to a set"
	errNotInThisSet         = "clauseset: clause does not belong to this set"
	errIndexedInsertNoDemod = "clauseset: indexed insert requires a demodulator index"
	errIndexedInsertNotUnit = "clauseset: indexed insert requires a unit equation"
)

// invariant violations
const (
	errEvalExtractMissing = "clauseset: evaluation index missing expected (value, clause) pair"
)
