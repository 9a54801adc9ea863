// Package signature implements a minimal symbol table: the set of
// function and predicate symbols a term bank declares, with their
// arities. It exists to give package eqaxioms something to iterate
// over when emitting one set of equality axioms per declared
// function/predicate symbol, standing in for the real prover's full
// signature module (which additionally tracks precedence and type
// information).
package signature
