package fvindex

import "github.com/gopherprover/saturate/clauseset"

// Register computes and stores c's feature vector. Implements
// clauseset.FVIndex.
func (ix *FeatureIndex) Register(c *clauseset.Clause) {
	ix.entries = append(ix.entries, registration{cl: c, vec: computeVector(c, ix.symbols)})
}

// Delete removes c's registration, if present. Implements
// clauseset.FVIndex.
func (ix *FeatureIndex) Delete(c *clauseset.Clause) {
	for i, e := range ix.entries {
		if e.cl == c {
			ix.entries[i] = ix.entries[len(ix.entries)-1]
			ix.entries = ix.entries[:len(ix.entries)-1]
			return
		}
	}
}

// SubsumptionCandidates returns every registered clause that subsumer
// could possibly subsume: those whose every feature is >= the
// corresponding feature of subsumer's vector. A full subsumption check (literal matching) is still
// required on the returned candidates; this only prunes the clauses
// that feature counts alone rule out.
func (ix *FeatureIndex) SubsumptionCandidates(subsumer *clauseset.Clause) []*clauseset.Clause {
	v := computeVector(subsumer, ix.symbols)
	var out []*clauseset.Clause
	for _, e := range ix.entries {
		if v.dominates(e.vec) {
			out = append(out, e.cl)
		}
	}
	return out
}
