// Package fuzzy implements the Belnap–Łukasiewicz four-valued truth algebra
// used throughout need-solver to represent uncertain, possibly conflicting
// information.
//
// A Value is a pair (T, F) of truth and falsity degrees in [0,1]. Unlike a
// classical fuzzy logic, T and F are tracked independently — there is no
// requirement that T+F = 1. This lets the algebra express four canonical
// states:
//
//	True      = (1, 0)
//	False     = (0, 1)
//	Unknown   = (0, 0) — no evidence either way
//	Conflict  = (1, 1) — contradictory evidence
//
// Operators (Not, And, Or, Implies, Iff) use the Łukasiewicz t-norm/t-conorm
// on each component; see ops.go for the exact formulas. All operators clamp
// their results to [0,1] and panic if an input arrives already out of range —
// by the time a Value reaches this package it must already be validated at
// the boundary that produced it (catalog ingestion, answer recording).
//
// Complexity: Not, And, Or, Implies, Iff and Similarity are O(1); AndN and
// OrN are linear in the number of operands.
package fuzzy
