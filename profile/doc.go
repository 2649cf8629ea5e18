// Package profile implements the UserProfile described in spec §3 and §4.4:
// an append-only log of raw answers, and a derived, cached aggregate over
// needs plus an independent-need set.
//
// The log is the source of truth; Needs() and AnsweredNeedIDs() are pure
// functions of the log, recomputed lazily and cached until the next
// AddAnswer invalidates them. The aggregation function itself
// (aggregate.go) is a pure, independently testable transform from
// []LogEntry to the aggregated map[string]fuzzy.Value plus the independent
// set.
package profile
