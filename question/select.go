package question

import (
	"sort"

	"github.com/mihail-gribov/need-solver/evaluate"
	"github.com/mihail-gribov/need-solver/fuzzy"
)

// DefaultEpsilon is the advisory convergence threshold from spec §4.6:
// "the caller may stop when max_k split(k) < ε (default ε=0.01)".
const DefaultEpsilon = 0.01

// GetQuestionRankings computes split(k) for every candidate need (spec
// §4.6) and returns them ordered by descending split, ties broken by the
// order candidateNeedIDs was given in (the caller's "original need order").
//
// Internally this exploits the precomputed matrix: the similarity
// contribution of every already-answered need is summed once per object,
// then each candidate only adds its own column's hypothetical TRUE/FALSE
// contribution — no need to rescore the whole active set per candidate.
func GetQuestionRankings(u map[string]fuzzy.Value, m *evaluate.Matrix, candidateNeedIDs []string) []NeedSplit {
	objects := m.ObjectIDs()
	baseSum := make([]float64, len(objects))
	baseCount := 0

	for needID, uv := range u {
		if uv.IsUnknown() {
			continue
		}
		col, ok := m.Column(needID)
		if !ok {
			continue
		}
		baseCount++
		for i, mv := range col {
			baseSum[i] += fuzzy.Similarity(uv, mv)
		}
	}

	results := make([]NeedSplit, 0, len(candidateNeedIDs))
	for _, needID := range candidateNeedIDs {
		col, ok := m.Column(needID)
		if !ok {
			continue
		}

		denom := float64(baseCount + 1)
		sumAbsDiff := 0.0
		for i, mv := range col {
			sTrue := (baseSum[i] + fuzzy.Similarity(fuzzy.True, mv)) / denom
			sFalse := (baseSum[i] + fuzzy.Similarity(fuzzy.False, mv)) / denom
			sumAbsDiff += absf(sTrue - sFalse)
		}

		split := 0.0
		if len(objects) > 0 {
			split = sumAbsDiff / float64(len(objects))
		}
		results = append(results, NeedSplit{NeedID: needID, Split: split})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Split > results[j].Split
	})
	return results
}

// SelectNext returns the candidate need with the greatest split score,
// ties broken by original need order, or (zero value, false) when
// candidateNeedIDs is empty — the distinguished "no question available"
// result (spec §6 error-propagation rules: an empty candidate set is not
// an error).
func SelectNext(u map[string]fuzzy.Value, m *evaluate.Matrix, candidateNeedIDs []string) (NeedSplit, bool) {
	rankings := GetQuestionRankings(u, m, candidateNeedIDs)
	if len(rankings) == 0 {
		return NeedSplit{}, false
	}
	return rankings[0], true
}

// ConvergenceHint reports whether the selector has effectively run dry:
// true when there are no candidates left, or when the greatest split score
// falls below epsilon (spec §4.6 "advisory" termination criterion). Pass
// DefaultEpsilon absent a caller-specific threshold. This is a hint, not an
// invariant: callers remain free to keep asking.
func ConvergenceHint(rankings []NeedSplit, epsilon float64) bool {
	if len(rankings) == 0 {
		return true
	}
	max := rankings[0].Split
	for _, r := range rankings {
		if r.Split > max {
			max = r.Split
		}
	}
	return max < epsilon
}

// RankingStable reports whether two consecutive top-K object-id rankings
// are identical — the alternative advisory stopping condition from spec
// §4.6 ("the top-K ranking is unchanged across two consecutive answers").
func RankingStable(prevTopK, currTopK []string) bool {
	if len(prevTopK) != len(currTopK) {
		return false
	}
	for i, id := range prevTopK {
		if currTopK[i] != id {
			return false
		}
	}
	return true
}

func absf(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
