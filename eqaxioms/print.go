package eqaxioms

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gopherprover/saturate/signature"
)

// writer accumulates the first error encountered across a sequence of
// writes, so the call sites below read as a straight-line sequence of
// prints instead of a chain of "if err != nil { return err }".
type writer struct {
	w   io.Writer
	err error
}

func (aw *writer) str(s string) {
	if aw.err != nil {
		return
	}
	_, aw.err = io.WriteString(aw.w, s)
}

// varPattern renders "symbol(v1,v2,...,vArity)", substituting altVar
// for the argument at position exception (1-indexed; exception==0
// means no substitution) — the shared template both LOP and TPTP
// substitutivity axioms build their two equated terms from.
func varPattern(symbol string, arity int, v, altVar string, exception int) string {
	var b strings.Builder
	b.WriteString(symbol)
	b.WriteByte('(')
	for i := 1; i <= arity; i++ {
		if i > 1 {
			b.WriteByte(',')
		}
		if i == exception && altVar != "" {
			b.WriteString(altVar)
		} else {
			b.WriteString(v)
			b.WriteString(strconv.Itoa(i))
		}
	}
	b.WriteByte(')')
	return b.String()
}

// Print writes the equality axioms for sig's declared symbols to w in
// the given format. With singleSubst, each function/predicate symbol
// gets one substitutivity axiom per argument position (replacing only
// that argument); otherwise it gets a single axiom substituting every
// argument at once.
func Print(w io.Writer, sig *signature.Signature, format Format, singleSubst bool) error {
	aw := &writer{w: w}

	switch format {
	case TPTP:
		aw.str("input_clause(eq_reflexive, axiom, [++equal(X,X)]).\n" +
			"input_clause(eq_symmetric, axiom, [++equal(X,Y),--equal(Y,X)]).\n" +
			"input_clause(eq_transitive, axiom, [++equal(X,Z),--equal(X,Y),--equal(Y,Z)]).\n")
		for _, sym := range sig.Symbols() {
			if sym.Predicate {
				tptpPredAxiom(aw, sym.Name, sym.Arity, singleSubst)
			} else {
				tptpFuncAxiom(aw, sym.Name, sym.Arity, singleSubst)
			}
		}
	default:
		aw.str("equal(X,X) <- .\n" +
			"equal(X,Y) <- equal(Y,X).\n" +
			"equal(X,Z) <- equal(X,Y), equal(Y,Z).\n")
		for _, sym := range sig.Symbols() {
			if sym.Predicate {
				lopPredAxiom(aw, sym.Name, sym.Arity, singleSubst)
			} else {
				lopFuncAxiom(aw, sym.Name, sym.Arity, singleSubst)
			}
		}
	}
	return aw.err
}

func lopFuncAxiom(aw *writer, symbol string, arity int, singleSubst bool) {
	if singleSubst {
		for i := 1; i <= arity; i++ {
			aw.str("equal(" + varPattern(symbol, arity, "X", "Y", i) +
				"," + varPattern(symbol, arity, "X", "Z", i) +
				") <- equal(Y,Z).\n")
		}
		return
	}
	aw.str("equal(" + varPattern(symbol, arity, "X", "", 0) +
		"," + varPattern(symbol, arity, "Y", "", 0) + ") <- ")
	prefix := ""
	for i := 1; i <= arity; i++ {
		aw.str(fmt.Sprintf("%sequal(X%d,Y%d)", prefix, i, i))
		prefix = ","
	}
	aw.str(".\n")
}

func lopPredAxiom(aw *writer, symbol string, arity int, singleSubst bool) {
	if singleSubst {
		for i := 1; i <= arity; i++ {
			aw.str(varPattern(symbol, arity, "X", "Y", i) +
				" <- " + varPattern(symbol, arity, "X", "Z", i) +
				", equal(Y,Z).\n")
		}
		return
	}
	aw.str(varPattern(symbol, arity, "X", "", 0) +
		" <- " + varPattern(symbol, arity, "Y", "", 0))
	for i := 1; i <= arity; i++ {
		aw.str(fmt.Sprintf(",equal(X%d,Y%d)", i, i))
	}
	aw.str(".\n")
}

func tptpFuncAxiom(aw *writer, symbol string, arity int, singleSubst bool) {
	if singleSubst {
		for i := 1; i <= arity; i++ {
			aw.str(fmt.Sprintf("input_clause(eq_subst_%s%d, axiom, [++equal(", symbol, i))
			aw.str(varPattern(symbol, arity, "X", "Y", i) +
				"," + varPattern(symbol, arity, "X", "Z", i) +
				"),--equal(Y,Z)]).\n")
		}
		return
	}
	aw.str(fmt.Sprintf("input_clause(eq_subst_%s, axiom, [++equal(", symbol))
	aw.str(varPattern(symbol, arity, "X", "", 0) + "," + varPattern(symbol, arity, "Y", "", 0) + ")")
	for i := 1; i <= arity; i++ {
		aw.str(fmt.Sprintf(",--equal(X%d,Y%d)", i, i))
	}
	aw.str("]).\n")
}

func tptpPredAxiom(aw *writer, symbol string, arity int, singleSubst bool) {
	if singleSubst {
		for i := 1; i <= arity; i++ {
			aw.str(fmt.Sprintf("input_clause(eq_subst_%s%d, axiom, [++", symbol, i))
			aw.str(varPattern(symbol, arity, "X", "Y", i) +
				",--" + varPattern(symbol, arity, "X", "Z", i) +
				",--equal(Y,Z)]).\n")
		}
		return
	}
	aw.str(fmt.Sprintf("input_clause(eq_subst_%s, axiom, [++", symbol))
	aw.str(varPattern(symbol, arity, "X", "", 0) + ",--" + varPattern(symbol, arity, "Y", "", 0))
	for i := 1; i <= arity; i++ {
		aw.str(fmt.Sprintf(",--equal(X%d,Y%d)", i, i))
	}
	aw.str("]).\n")
}
