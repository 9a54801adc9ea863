package eqaxioms

// Format selects the output syntax Print emits in. Threaded as an
// explicit argument rather than a package-level switch, since nothing
// about axiom printing is process-global: a prover instance working
// in TPTP mode and one working in LOP mode can coexist in the same
// binary.
type Format int

const (
	// LOP is the prover's native Prolog-like clause syntax.
	LOP Format = iota
	// TPTP is the TPTP input_clause syntax.
	TPTP
)
