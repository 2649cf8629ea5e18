package evaluate_test

import (
	"testing"

	"github.com/mihail-gribov/need-solver/catalog"
	"github.com/mihail-gribov/need-solver/evaluate"
	"github.com/mihail-gribov/need-solver/fuzzy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func needByID(t *testing.T, needs []*catalog.Need, id string) *catalog.Need {
	t.Helper()
	for _, n := range needs {
		if n.ID == id {
			return n
		}
	}
	t.Fatalf("need %q not found", id)
	return nil
}

// TestEval_SingleLiteral_AbsentFeature checks that a formula consisting of
// a single literal referencing an absent feature evaluates to UNKNOWN
// (spec §8 property 9).
func TestEval_SingleLiteral_AbsentFeature(t *testing.T) {
	cat, _, table := buildFixture(t)

	barkingOnly, err := catalog.NewNeeds([]catalog.NeedInput{
		{ID: "barking_only", Formula: "barking"},
	}, table)
	require.NoError(t, err)

	obj, _ := cat.ByID("A")
	got := evaluate.Eval(barkingOnly[0].Formula, obj, table)
	assert.Equal(t, fuzzy.Unknown, got)
}

// TestEval_ApartmentFold checks the apartment need (apartment_ok & ~barking)
// on breed C folds per §4.3: AND of one clause (apartment_ok, literal) and
// one clause (~barking, UNKNOWN since barking is absent).
func TestEval_ApartmentFold(t *testing.T) {
	cat, needs, table := buildFixture(t)
	obj, _ := cat.ByID("C")

	apartment := needByID(t, needs, "apartment")
	got := evaluate.Eval(apartment.Formula, obj, table)

	// apartment_ok=0.9 -> (0.9,0.1); ~barking absent -> (0,0) (Not(Unknown)=Unknown)
	// AND of two clauses, n=2: T = max(0, 0.9+0-2+1) = 0; F = min(1, 0.1+0) = 0.1
	assert.InDelta(t, 0.0, got.T, 1e-9)
	assert.InDelta(t, 0.1, got.F, 1e-9)
}

// TestMatrixEquivalence checks that every M[o,k] equals an ad-hoc
// evaluation of need k on o (spec §8 property 10).
func TestMatrixEquivalence(t *testing.T) {
	cat, needs, table := buildFixture(t)
	m := evaluate.Build(cat, needs, table)

	for _, obj := range cat.Objects() {
		for _, need := range needs {
			want := evaluate.Eval(need.Formula, obj, table)
			got, ok := m.At(obj.ID, need.ID)
			require.True(t, ok)
			assert.Equal(t, want, got)
		}
	}
}

// TestMatrixColumn_NeedMajorOrder checks Column returns values in the same
// object order as ObjectIDs.
func TestMatrixColumn_NeedMajorOrder(t *testing.T) {
	m, _ := buildFixtureMatrix(t)
	col, ok := m.Column("active")
	require.True(t, ok)
	require.Len(t, col, 3)

	ids := m.ObjectIDs()
	for i, id := range ids {
		v, _ := m.At(id, "active")
		assert.Equal(t, v, col[i])
	}
}

// TestActiveColumn_FixtureValues locks in the exact fixture values from
// spec §8 scenario 2: active=energy directly, so M[o,"active"] == (energy,1-energy).
func TestActiveColumn_FixtureValues(t *testing.T) {
	m, _ := buildFixtureMatrix(t)

	cases := map[string]fuzzy.Value{
		"A": {T: 0.9, F: 0.1},
		"B": {T: 0.5, F: 0.5},
		"C": {T: 0.1, F: 0.9},
	}
	for id, want := range cases {
		got, ok := m.At(id, "active")
		require.True(t, ok)
		assert.InDelta(t, want.T, got.T, 1e-9)
		assert.InDelta(t, want.F, got.F, 1e-9)
	}
}
