// Package formula parses boolean expressions over feature identifiers into
// conjunctive normal form (CNF) and compiles the CNF into a flat,
// index-based representation suitable for fast repeated evaluation.
//
// Grammar (tokens: identifier, &, |, ~, (, )):
//
//	expr    := term ('|' term)*
//	term    := factor ('&' factor)*
//	factor  := '~' factor | '(' expr ')' | IDENT
//
// Precedence high→low: ~, &, |. All operators are left-associative.
// Whitespace is insignificant.
//
// After parsing, Normalize pushes negation to the literals (De Morgan) and
// distributes OR over AND until the formula is an AND of ORs of literals —
// conjunctive normal form. Normalize also deduplicates literals within a
// clause, collapses a clause containing both x and ~x to the tautology
// (dropped, since AND of TRUE has no effect), and deduplicates identical
// clauses. The empty AND (no clauses) is TRUE; the empty OR (no literals in
// a clause) is FALSE.
//
// Compile resolves each literal's feature identifier against a fixed
// feature-index table, producing a Compiled formula of (index, negated)
// pairs with no further string lookups — the form evaluate.Eval walks.
// Compile fails with ErrUnknownFeature if any literal names a feature the
// table does not contain.
package formula
