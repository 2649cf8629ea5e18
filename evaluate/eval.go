package evaluate

import (
	"github.com/mihail-gribov/need-solver/catalog"
	"github.com/mihail-gribov/need-solver/formula"
	"github.com/mihail-gribov/need-solver/fuzzy"
)

// Eval evaluates a compiled CNF formula against an object's feature map,
// per spec §4.3: literal → clause (OR fold) → formula (AND fold).
// table resolves each compiled literal's FeatureIndex back to the feature
// id under which obj.Features stores its value.
func Eval(compiled formula.Compiled, obj *catalog.Object, table *catalog.FeatureTable) fuzzy.Value {
	if len(compiled.Clauses) == 0 {
		return fuzzy.True // empty AND is TRUE
	}

	clauseValues := make([]fuzzy.Value, len(compiled.Clauses))
	for i, clause := range compiled.Clauses {
		clauseValues[i] = evalClause(clause, obj, table)
	}
	return fuzzy.AndN(clauseValues...)
}

func evalClause(clause formula.CompiledClause, obj *catalog.Object, table *catalog.FeatureTable) fuzzy.Value {
	if len(clause) == 0 {
		return fuzzy.False // empty OR is FALSE
	}

	litValues := make([]fuzzy.Value, len(clause))
	for i, lit := range clause {
		litValues[i] = evalLiteral(lit, obj, table)
	}
	return fuzzy.OrN(litValues...)
}

func evalLiteral(lit formula.CompiledLiteral, obj *catalog.Object, table *catalog.FeatureTable) fuzzy.Value {
	featureID := table.ID(lit.FeatureIndex)
	v, ok := obj.Features[featureID]
	if !ok {
		return fuzzy.Unknown
	}

	val := fuzzy.Value{T: v, F: 1 - v}
	if lit.Negated {
		val = fuzzy.Not(val)
	}
	return val
}
