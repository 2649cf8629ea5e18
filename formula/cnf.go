package formula

// Normalize reduces a parsed Expr to conjunctive normal form: pushing
// negation to literals (De Morgan), distributing OR over AND, deduplicating
// literals within a clause, dropping tautological clauses (those containing
// both x and ~x — ANDing with TRUE changes nothing), and deduplicating
// identical clauses. The empty AND (no clauses) is TRUE.
func Normalize(e Expr) CNF {
	clauses := cnfOf(e, false)
	clauses = dedupClauses(dropTautologies(clauses))
	return CNF{Clauses: clauses}
}

// cnfOf returns the CNF clauses for e, or for Not(e) when neg is true. It
// implements De Morgan's laws and OR-over-AND distribution in one pass so
// that negation never has to be re-walked afterward.
func cnfOf(e Expr, neg bool) []Clause {
	switch n := e.(type) {
	case *Lit:
		return []Clause{{Literal{Feature: n.Feature, Negated: neg}}}
	case *Not:
		return cnfOf(n.X, !neg)
	case *And:
		if !neg {
			return append(cnfOf(n.X, false), cnfOf(n.Y, false)...)
		}
		// NOT(X & Y) = (NOT X) | (NOT Y)
		return distribute(cnfOf(n.X, true), cnfOf(n.Y, true))
	case *Or:
		if !neg {
			return distribute(cnfOf(n.X, false), cnfOf(n.Y, false))
		}
		// NOT(X | Y) = (NOT X) & (NOT Y)
		return append(cnfOf(n.X, true), cnfOf(n.Y, true)...)
	default:
		panic("formula: unknown Expr node")
	}
}

// distribute computes the CNF clauses of (AND of a-clauses) OR (AND of
// b-clauses) by cross-multiplying every pair of clauses, one from each
// side, into a single combined clause.
func distribute(a, b []Clause) []Clause {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make([]Clause, 0, len(a)*len(b))
	for _, ca := range a {
		for _, cb := range b {
			combined := make(Clause, 0, len(ca)+len(cb))
			combined = append(combined, ca...)
			combined = append(combined, cb...)
			out = append(out, dedupLiterals(combined))
		}
	}
	return out
}

// dedupLiterals removes repeated (feature,negated) pairs within a clause,
// preserving first-seen order.
func dedupLiterals(c Clause) Clause {
	seen := make(map[Literal]bool, len(c))
	out := make(Clause, 0, len(c))
	for _, lit := range c {
		if seen[lit] {
			continue
		}
		seen[lit] = true
		out = append(out, lit)
	}
	return out
}

// isTautology reports whether clause contains both x and ~x for some
// feature, making the clause always TRUE.
func isTautology(c Clause) bool {
	pos := make(map[string]bool, len(c))
	neg := make(map[string]bool, len(c))
	for _, lit := range c {
		if lit.Negated {
			neg[lit.Feature] = true
		} else {
			pos[lit.Feature] = true
		}
	}
	for f := range pos {
		if neg[f] {
			return true
		}
	}
	return false
}

// dropTautologies removes clauses that are always TRUE; ANDing with TRUE
// leaves the formula unchanged.
func dropTautologies(clauses []Clause) []Clause {
	out := make([]Clause, 0, len(clauses))
	for _, c := range clauses {
		if !isTautology(c) {
			out = append(out, c)
		}
	}
	return out
}

// clauseKey produces a canonical, order- and duplicate-insensitive key for
// a clause, used to deduplicate identical clauses regardless of literal
// order (dedupLiterals has already removed in-clause duplicates).
func clauseKey(c Clause) string {
	keys := make([]string, len(c))
	for i, lit := range c {
		k := lit.Feature
		if lit.Negated {
			k = "~" + k
		}
		keys[i] = k
	}
	// Simple insertion sort: clauses are small (few literals per need).
	for i := 1; i < len(keys); i++ {
		for j := i; j > 0 && keys[j-1] > keys[j]; j-- {
			keys[j-1], keys[j] = keys[j], keys[j-1]
		}
	}
	out := ""
	for _, k := range keys {
		out += k + "\x00"
	}
	return out
}

// dedupClauses removes clauses that are structurally identical to an
// earlier clause (same literal set, any order), preserving first-seen
// order.
func dedupClauses(clauses []Clause) []Clause {
	seen := make(map[string]bool, len(clauses))
	out := make([]Clause, 0, len(clauses))
	for _, c := range clauses {
		k := clauseKey(c)
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, c)
	}
	return out
}
