package evaluate_test

import (
	"testing"

	"github.com/mihail-gribov/need-solver/catalog"
	"github.com/mihail-gribov/need-solver/evaluate"
	"github.com/stretchr/testify/require"
)

// buildFixture constructs the tiny 3-object, 2-need fixture from spec §8's
// end-to-end scenarios: breeds A/B/C over energy and apartment_ok, with a
// "barking" feature that is absent from every object (so it evaluates to
// UNKNOWN wherever referenced).
func buildFixture(t *testing.T) (*catalog.Catalog, []*catalog.Need, *catalog.FeatureTable) {
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

	return cat, needs, table
}

func buildFixtureMatrix(t *testing.T) (*evaluate.Matrix, *catalog.FeatureTable) {
	t.Helper()
	cat, needs, table := buildFixture(t)
	return evaluate.Build(cat, needs, table), table
}
