package demod

import "github.com/gopherprover/saturate/clauseset"

// Insert adds t as a demodulator key for clause c's given side.
// Implements clauseset.DemodIndex.
func (ix *TermIndex) Insert(t *clauseset.Term, c *clauseset.Clause, side clauseset.Side) {
	k := keyOf(t)
	ix.buckets[k] = append(ix.buckets[k], entry{term: t, cl: c, side: side})
	ix.size++
}

// Delete removes the (t, c) entry regardless of side. Implements
// clauseset.DemodIndex; the interface has no error return, so a
// missing entry is a silent no-op rather than a panic.
func (ix *TermIndex) Delete(t *clauseset.Term, c *clauseset.Clause) {
	k := keyOf(t)
	bucket := ix.buckets[k]
	for i, e := range bucket {
		if e.cl == c && e.term.Equal(t) {
			bucket[i] = bucket[len(bucket)-1]
			ix.buckets[k] = bucket[:len(bucket)-1]
			ix.size--
			return
		}
	}
}

// Candidates returns every demodulator clause whose indexed side has
// the same top symbol and arity as query, the set a rewrite attempt
// against query must try matching. A variable query matches every
// bucket, since any demodulator could instantiate to it.
func (ix *TermIndex) Candidates(query *clauseset.Term) []*clauseset.Clause {
	var out []*clauseset.Clause
	if query.Var {
		for _, bucket := range ix.buckets {
			for _, e := range bucket {
				out = append(out, e.cl)
			}
		}
		return out
	}
	for _, e := range ix.buckets[keyOf(query)] {
		out = append(out, e.cl)
	}
	return out
}

// DebugVerify walks every bucket and reports the first entry whose
// stored term no longer matches the bucket it was filed under — a
// consistency check, not something the saturation loop calls in
// normal operation.
func (ix *TermIndex) DebugVerify() error {
	for k, bucket := range ix.buckets {
		for _, e := range bucket {
			if keyOf(e.term) != k {
				return ErrCorruptBucket
			}
		}
	}
	return nil
}
