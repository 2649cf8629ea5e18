package formula

// Expr is a boolean expression AST node produced by Parse, before CNF
// normalization. It is one of: *Lit, *Not, *And, *Or.
type Expr interface {
	isExpr()
}

// Lit is a reference to a feature identifier, with no negation — negation
// is represented by wrapping a Lit in Not.
type Lit struct {
	Feature string
}

// Not negates its operand.
type Not struct {
	X Expr
}

// And is the n-ary conjunction of its operands, parsed left-associatively
// (the AST is always binary: left-folding builds a chain of *And nodes).
type And struct {
	X, Y Expr
}

// Or is the n-ary disjunction of its operands, same shape as And.
type Or struct {
	X, Y Expr
}

func (*Lit) isExpr() {}
func (*Not) isExpr() {}
func (*And) isExpr() {}
func (*Or) isExpr()  {}

// Literal is a single CNF literal: a feature reference with an optional
// negation flag.
type Literal struct {
	Feature  string
	Negated  bool
}

// Clause is a disjunction (OR) of Literals.
type Clause []Literal

// CNF is a conjunction (AND) of Clauses — the normalized form every parsed
// Expr reduces to via Normalize.
type CNF struct {
	Clauses []Clause
}
