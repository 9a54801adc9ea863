// Package eqaxioms prints the equality axioms (reflexivity, symmetry,
// transitivity, and substitutivity axioms for every non-internal
// function/predicate symbol of arity > 0: one per symbol, or one per
// argument position in single-substitution mode) needed to complete a first-order clause
// set into one where "=" behaves like true equality, in either the
// LOP or TPTP clause syntax.
//
// The axiom text is reproduced verbatim from the original prover's
// eq_func_axiom_print, eq_pred_axiom_print, tptp_eq_func_axiom_print,
// tptp_eq_pred_axiom_print, and EqAxiomsPrint: this is output a
// downstream TPTP/LOP parser depends on byte-for-byte, so there is no
// freedom to reformat it.
package eqaxioms
