// Package term gives the clause layer's term/literal representation —
// officially an external collaborator the saturation core only
// consumes through interfaces — a minimal concrete shape so the rest
// of this module can be built and tested standalone. It deliberately
// does not implement unification, rewriting, or a real term ordering;
// those belong to the term bank and ordering modules this package
// stands in for.
package term
