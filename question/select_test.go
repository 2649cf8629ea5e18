package question_test

import (
	"testing"

	"github.com/mihail-gribov/need-solver/catalog"
	"github.com/mihail-gribov/need-solver/evaluate"
	"github.com/mihail-gribov/need-solver/fuzzy"
	"github.com/mihail-gribov/need-solver/match"
	"github.com/mihail-gribov/need-solver/question"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildFixtureMatrix reconstructs spec §8's tiny 3-breed, 2-need fixture
// (see match.buildFixtureMatrix for the identical construction).
func buildFixtureMatrix(t *testing.T) *evaluate.Matrix {
	t.Helper()

	table, err := catalog.BuildFeatureTable(catalog.FeatureTableInput{
		Features: []string{"energy", "apartment_ok", "barking"},
	})
	require.NoError(t, err)

	cat, err := catalog.NewCatalog([]catalog.ObjectInput{
		{ID: "A", Features: map[string]float64{"energy": 0.9, "apartment_ok": 0.2}},
		{ID: "B", Features: map[string]float64{"energy": 0.5, "apartment_ok": 0.7}},
		{ID: "C", Features: map[string]float64{"energy": 0.1, "apartment_ok": 0.9}},
	}, table)
	require.NoError(t, err)

	needs, err := catalog.NewNeeds([]catalog.NeedInput{
		{ID: "active", Name: "Active", Formula: "energy"},
		{ID: "apartment", Name: "Apartment-friendly", Formula: "apartment_ok & ~barking"},
	}, table)
	require.NoError(t, err)

	return evaluate.Build(cat, needs, table)
}

// TestScenario6_WidestSpreadWins locks in spec §8 scenario 6: on an empty
// profile, the selector picks the need whose column has the widest spread
// across breeds — here "active" beats "apartment" because apartment's
// contribution is diluted by the UNKNOWN from the absent "barking" feature.
func TestScenario6_WidestSpreadWins(t *testing.T) {
	m := buildFixtureMatrix(t)
	best, ok := question.SelectNext(map[string]fuzzy.Value{}, m, []string{"active", "apartment"})
	require.True(t, ok)
	assert.Equal(t, "active", best.NeedID)
}

// TestGetQuestionRankings_FullOrderAndBounds locks in spec §8 property 16
// (split(k) ∈ [0,1] for every k) and checks the full ordered list.
func TestGetQuestionRankings_FullOrderAndBounds(t *testing.T) {
	m := buildFixtureMatrix(t)
	rankings := question.GetQuestionRankings(map[string]fuzzy.Value{}, m, []string{"active", "apartment"})

	require.Len(t, rankings, 2)
	for _, r := range rankings {
		assert.GreaterOrEqual(t, r.Split, 0.0)
		assert.LessOrEqual(t, r.Split, 1.0)
	}
	assert.Equal(t, "active", rankings[0].NeedID)
	assert.Equal(t, "apartment", rankings[1].NeedID)
	assert.InDelta(t, 1.6/3, rankings[0].Split, 1e-9)
	assert.InDelta(t, 1.2/3, rankings[1].Split, 1e-9)
}

// TestSelectNext_NoCandidates checks the distinguished "no question
// available" result for an empty candidate set.
func TestSelectNext_NoCandidates(t *testing.T) {
	m := buildFixtureMatrix(t)
	_, ok := question.SelectNext(map[string]fuzzy.Value{}, m, nil)
	assert.False(t, ok)
}

// TestGetQuestionRankings_DuplicateCandidatesScoreEqually checks that a need
// listed twice among the candidates appears twice in the rankings with
// identical split scores.
func TestGetQuestionRankings_DuplicateCandidatesScoreEqually(t *testing.T) {
	m := buildFixtureMatrix(t)
	rankings := question.GetQuestionRankings(map[string]fuzzy.Value{}, m, []string{"apartment", "apartment"})
	require.Len(t, rankings, 2)
	assert.Equal(t, rankings[0].Split, rankings[1].Split)
}

// TestAnsweringChosenNeed_DoesNotDecreaseTop1 locks in spec §8 property 17:
// answering the selector's chosen need with its better-of-two-hypotheses
// answer does not decrease the top-1 score.
func TestAnsweringChosenNeed_DoesNotDecreaseTop1(t *testing.T) {
	m := buildFixtureMatrix(t)
	u := map[string]fuzzy.Value{}

	before := match.MatchFast(u, m, 1, nil)
	require.Len(t, before, 1)
	top1Before := before[0].Score

	best, ok := question.SelectNext(u, m, []string{"active", "apartment"})
	require.True(t, ok)

	uTrue := map[string]fuzzy.Value{best.NeedID: fuzzy.True}
	uFalse := map[string]fuzzy.Value{best.NeedID: fuzzy.False}

	afterTrue := match.MatchFast(uTrue, m, 1, nil)[0].Score
	afterFalse := match.MatchFast(uFalse, m, 1, nil)[0].Score

	better := afterTrue
	if afterFalse > better {
		better = afterFalse
	}
	assert.GreaterOrEqual(t, better, top1Before)
}

// TestConvergenceHint checks both the empty-candidate and below-epsilon
// cases report convergence.
func TestConvergenceHint(t *testing.T) {
	assert.True(t, question.ConvergenceHint(nil, question.DefaultEpsilon))
	assert.True(t, question.ConvergenceHint([]question.NeedSplit{{NeedID: "x", Split: 0.005}}, question.DefaultEpsilon))
	assert.False(t, question.ConvergenceHint([]question.NeedSplit{{NeedID: "x", Split: 0.5}}, question.DefaultEpsilon))
}

// TestRankingStable checks the top-K equality helper.
func TestRankingStable(t *testing.T) {
	assert.True(t, question.RankingStable([]string{"A", "B"}, []string{"A", "B"}))
	assert.False(t, question.RankingStable([]string{"A", "B"}, []string{"B", "A"}))
	assert.False(t, question.RankingStable([]string{"A"}, []string{"A", "B"}))
}
