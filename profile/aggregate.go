package profile

import "github.com/mihail-gribov/need-solver/fuzzy"

// needState accumulates one need's yes/no/unknown counts across the log,
// resetting whenever an Independent answer is seen (spec §4.4: "a
// subsequent yes/no re-enters it with Y+N=1", which requires counts to
// restart from zero at the independent boundary).
type needState struct {
	yes, no, unknown int
	independent      bool
	seen             bool // at least one yes/no/unknown answer recorded
}

// aggregate is the pure function from an ordered answer log to (aggregated
// map, independent set). It is total and side-effect free, independently
// testable from the UserProfile that caches its result.
func aggregate(log []LogEntry) (map[string]fuzzy.Value, map[string]bool) {
	states := make(map[string]*needState)

	order := func(id string) *needState {
		s, ok := states[id]
		if !ok {
			s = &needState{}
			states[id] = s
		}
		return s
	}

	for _, e := range log {
		s := order(e.NeedID)
		switch e.Answer {
		case Independent:
			s.independent = true
			s.yes, s.no, s.unknown = 0, 0, 0
			s.seen = false
		case Yes:
			s.independent = false
			s.yes++
			s.seen = true
		case No:
			s.independent = false
			s.no++
			s.seen = true
		case Unknown:
			s.independent = false
			s.unknown++
			s.seen = true
		}
	}

	agg := make(map[string]fuzzy.Value)
	indep := make(map[string]bool)

	for id, s := range states {
		if s.independent {
			indep[id] = true
			continue
		}
		if !s.seen {
			continue
		}
		agg[id] = aggregateCounts(s.yes, s.no, s.unknown)
	}

	return agg, indep
}

// aggregateCounts implements spec §4.4's per-need aggregation formula:
//
//	Y+N = 0           -> UNKNOWN
//	otherwise         -> (Y/(Y+N+U), N/(Y+N+U))
func aggregateCounts(yes, no, unknown int) fuzzy.Value {
	if yes+no == 0 {
		return fuzzy.Unknown
	}
	total := float64(yes + no + unknown)
	return fuzzy.Value{
		T: float64(yes) / total,
		F: float64(no) / total,
	}
}
