// Package evaluate implements the need evaluator and the precomputed
// breed×need — in the general case object×need — satisfaction matrix
// described in spec §4.3.
//
// Eval folds a compiled CNF formula over a catalog.Object's feature map
// using the fuzzy algebra: each literal maps its feature value v to (v,1-v)
// (or its negation), absent features yield fuzzy.Unknown, each clause folds
// its literals with fuzzy.OrN, and the formula folds its clauses with
// fuzzy.AndN.
//
// Matrix precomputes Eval for every (object, need) pair once, in need-major
// column order, so that the question selector (which only ever needs one
// need's column at a time) gets cache-friendly sweeps without re-evaluating
// formulas.
package evaluate
