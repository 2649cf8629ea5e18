package match

import (
	"sort"

	"github.com/mihail-gribov/need-solver/evaluate"
	"github.com/mihail-gribov/need-solver/fuzzy"
)

// Score computes score(o) per spec §4.5: the mean similarity between U and
// M's column over the active need set A = {k : U[k] defined, not UNKNOWN}.
// An empty A yields 0.5, the uninformative prior.
func Score(u map[string]fuzzy.Value, m *evaluate.Matrix, objectID string) float64 {
	sum, n := 0.0, 0
	for needID, uv := range u {
		if uv.IsUnknown() {
			continue
		}
		mv, ok := m.At(objectID, needID)
		if !ok {
			continue
		}
		sum += fuzzy.Similarity(uv, mv)
		n++
	}
	if n == 0 {
		return 0.5
	}
	return sum / float64(n)
}

// contributions computes Score(o) alongside the per-need breakdown used by
// match_all, in the matrix's need-column order.
func contributions(u map[string]fuzzy.Value, m *evaluate.Matrix, objectID string) (float64, []NeedContribution) {
	var rows []NeedContribution
	sum, n := 0.0, 0

	for _, needID := range m.NeedIDs() {
		uv, ok := u[needID]
		if !ok || uv.IsUnknown() {
			continue
		}
		mv, _ := m.At(objectID, needID)
		sim := fuzzy.Similarity(uv, mv)
		rows = append(rows, NeedContribution{NeedID: needID, User: uv, Matrix: mv, Similarity: sim})
		sum += sim
		n++
	}

	if n == 0 {
		return 0.5, rows
	}
	return sum / float64(n), rows
}

// candidateIDs returns the object ids to rank: breedSubset if non-nil
// (filtered to ids the matrix actually knows), else every object in m.
func candidateIDs(m *evaluate.Matrix, breedSubset []string) []string {
	if breedSubset == nil {
		return m.ObjectIDs()
	}
	ids := make([]string, 0, len(breedSubset))
	for _, id := range breedSubset {
		if _, ok := m.ObjectIndex(id); ok {
			ids = append(ids, id)
		}
	}
	return ids
}

// sortRanked orders by descending score, ties broken by ascending object id
// (spec §4.5 "ties broken by stable ascending breed-id order").
func sortRanked(ranked []RankedObject) {
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].ObjectID < ranked[j].ObjectID
	})
}

func truncate(n, topK int) int {
	if topK <= 0 || topK > n {
		return n
	}
	return topK
}

// MatchFast returns the top-k object ids by Score, ties broken by ascending
// id. breedSubset, if non-nil, restricts candidates to those ids.
func MatchFast(u map[string]fuzzy.Value, m *evaluate.Matrix, topK int, breedSubset []string) []RankedObject {
	ids := candidateIDs(m, breedSubset)
	ranked := make([]RankedObject, len(ids))
	for i, id := range ids {
		ranked[i] = RankedObject{ObjectID: id, Score: Score(u, m, id)}
	}
	sortRanked(ranked)
	return ranked[:truncate(len(ranked), topK)]
}

// MatchAll is MatchFast plus, per object, the per-need (sim_k, U[k], M[o,k])
// tuples that produced its score.
func MatchAll(u map[string]fuzzy.Value, m *evaluate.Matrix, topK int, breedSubset []string) []RankedObjectDetailed {
	ids := candidateIDs(m, breedSubset)
	ranked := make([]RankedObjectDetailed, len(ids))
	for i, id := range ids {
		score, rows := contributions(u, m, id)
		ranked[i] = RankedObjectDetailed{
			RankedObject:  RankedObject{ObjectID: id, Score: score},
			Contributions: rows,
		}
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].ObjectID < ranked[j].ObjectID
	})

	return ranked[:truncate(len(ranked), topK)]
}
