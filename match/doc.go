// Package match turns a user-need vector and the precomputed evaluation
// matrix into per-object scores and rankings (spec §4.5, component E).
//
// Score aggregates similarity over the active need set — the needs the
// user has actually answered and that are not UNKNOWN. An empty active set
// yields the uninformative prior 0.5 for every object, so a caller can rank
// before asking a single question.
package match
