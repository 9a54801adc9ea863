package demod

import "errors"

// ErrCorruptBucket is returned by DebugVerify when an entry's stored
// term no longer hashes to the bucket it is filed under.
var ErrCorruptBucket = errors.New("demod: entry filed under wrong bucket")
