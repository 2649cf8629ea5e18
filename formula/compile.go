package formula

// FeatureTable maps feature identifiers to a fixed, stable integer index.
// Compile resolves every literal against a FeatureTable; the same table is
// shared by the catalog and evaluate packages so that matrix columns and
// compiled-formula indices agree.
type FeatureTable interface {
	// Index returns the integer index for featureID and true if it is
	// known to the table, or (0, false) otherwise.
	Index(featureID string) (int, bool)
}

// CompiledLiteral is a literal resolved to a feature-table index.
type CompiledLiteral struct {
	FeatureIndex int
	Negated      bool
}

// CompiledClause is a disjunction of CompiledLiterals.
type CompiledClause []CompiledLiteral

// Compiled is the flat, index-based evaluation form of a normalized CNF
// formula: a conjunction of CompiledClauses. evaluate.Eval walks this
// structure directly with no string lookups.
type Compiled struct {
	Clauses []CompiledClause
}

// Compile parses s, normalizes it to CNF, and resolves every literal
// against table. It returns an *UnknownFeatureError (matched by
// errors.Is(err, ErrUnknownFeature)) for the first literal whose feature is
// not in table, and a *ParseError for a malformed expression.
func Compile(s string, table FeatureTable) (Compiled, error) {
	expr, err := Parse(s)
	if err != nil {
		return Compiled{}, err
	}
	return CompileCNF(Normalize(expr), table)
}

// CompileCNF resolves an already-normalized CNF against table, without
// re-parsing. Useful when the CNF was built programmatically rather than
// from a formula string.
func CompileCNF(cnf CNF, table FeatureTable) (Compiled, error) {
	out := Compiled{Clauses: make([]CompiledClause, 0, len(cnf.Clauses))}
	for _, clause := range cnf.Clauses {
		cc := make(CompiledClause, 0, len(clause))
		for _, lit := range clause {
			idx, ok := table.Index(lit.Feature)
			if !ok {
				return Compiled{}, &UnknownFeatureError{FeatureID: lit.Feature}
			}
			cc = append(cc, CompiledLiteral{FeatureIndex: idx, Negated: lit.Negated})
		}
		out.Clauses = append(out.Clauses, cc)
	}
	return out, nil
}
