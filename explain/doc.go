// Package explain produces the structured per-breed breakdown behind a
// ranking (spec §4.7, component G): for a given object, an ordered list of
// (need, U[need], M[o,need], similarity) rows split into "pros" (highest
// similarity), "cons" (lowest similarity), and "conflicts" (needs where the
// user's answer is CONFLICT). There is no natural-language generation here
// — callers render the structured result however they like.
package explain
