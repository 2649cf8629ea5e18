package explain

import (
	"sort"

	"github.com/mihail-gribov/need-solver/evaluate"
	"github.com/mihail-gribov/need-solver/fuzzy"
	"github.com/mihail-gribov/need-solver/match"
)

// Explain builds the breakdown for a single object, per spec §4.7. It
// reuses match.MatchAll's per-need breakdown rather than recomputing
// similarities, then partitions and orders them. Returns false if objectID
// is not present in m.
func Explain(u map[string]fuzzy.Value, m *evaluate.Matrix, objectID string) (Breakdown, bool) {
	ranked := match.MatchAll(u, m, 1, []string{objectID})
	if len(ranked) == 0 {
		return Breakdown{}, false
	}
	rows := ranked[0].Contributions

	var conflicts, rest []match.NeedContribution
	for _, r := range rows {
		if r.User.IsConflict() {
			conflicts = append(conflicts, r)
		} else {
			rest = append(rest, r)
		}
	}

	pros := append([]match.NeedContribution(nil), rest...)
	sort.Slice(pros, func(i, j int) bool {
		if pros[i].Similarity != pros[j].Similarity {
			return pros[i].Similarity > pros[j].Similarity
		}
		return pros[i].NeedID < pros[j].NeedID
	})

	cons := append([]match.NeedContribution(nil), rest...)
	sort.Slice(cons, func(i, j int) bool {
		if cons[i].Similarity != cons[j].Similarity {
			return cons[i].Similarity < cons[j].Similarity
		}
		return cons[i].NeedID < cons[j].NeedID
	})

	sort.Slice(conflicts, func(i, j int) bool { return conflicts[i].NeedID < conflicts[j].NeedID })

	return Breakdown{ObjectID: objectID, Pros: pros, Cons: cons, Conflicts: conflicts}, true
}
