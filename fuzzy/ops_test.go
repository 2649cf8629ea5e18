package fuzzy_test

import (
	"math/rand"
	"testing"

	"github.com/mihail-gribov/need-solver/fuzzy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randValue(r *rand.Rand) fuzzy.Value {
	return fuzzy.Value{T: r.Float64(), F: r.Float64()}
}

// TestNot_Involution checks Not(Not(x)) == x over random values.
func TestNot_Involution(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		x := randValue(r)
		assert.Equal(t, x, fuzzy.Not(fuzzy.Not(x)))
	}
}

// TestAndOr_CommutativeAssociative checks commutativity and associativity
// of And/Or over random values.
func TestAndOr_CommutativeAssociative(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for i := 0; i < 200; i++ {
		a, b, c := randValue(r), randValue(r), randValue(r)

		assert.Equal(t, fuzzy.And(a, b), fuzzy.And(b, a))
		assert.Equal(t, fuzzy.Or(a, b), fuzzy.Or(b, a))

		assert.InDeltaf(t, fuzzy.And(fuzzy.And(a, b), c).T, fuzzy.And(a, fuzzy.And(b, c)).T, 1e-9, "AND assoc T")
		assert.InDeltaf(t, fuzzy.And(fuzzy.And(a, b), c).F, fuzzy.And(a, fuzzy.And(b, c)).F, 1e-9, "AND assoc F")
		assert.InDeltaf(t, fuzzy.Or(fuzzy.Or(a, b), c).T, fuzzy.Or(a, fuzzy.Or(b, c)).T, 1e-9, "OR assoc T")
		assert.InDeltaf(t, fuzzy.Or(fuzzy.Or(a, b), c).F, fuzzy.Or(a, fuzzy.Or(b, c)).F, 1e-9, "OR assoc F")
	}
}

// TestAndOr_Monotone checks that increasing T (decreasing F) of one operand
// never decreases the result's T component.
func TestAndOr_Monotone(t *testing.T) {
	lo := fuzzy.Value{T: 0.2, F: 0.6}
	hi := fuzzy.Value{T: 0.6, F: 0.2}
	other := fuzzy.Value{T: 0.3, F: 0.3}

	assert.GreaterOrEqual(t, fuzzy.And(hi, other).T, fuzzy.And(lo, other).T)
	assert.GreaterOrEqual(t, fuzzy.Or(hi, other).T, fuzzy.Or(lo, other).T)
}

// TestDeMorgan checks De Morgan duality under Not/And/Or.
func TestDeMorgan(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for i := 0; i < 200; i++ {
		a, b := randValue(r), randValue(r)

		lhs := fuzzy.Not(fuzzy.And(a, b))
		rhs := fuzzy.Or(fuzzy.Not(a), fuzzy.Not(b))
		assert.Equal(t, lhs, rhs)

		lhs = fuzzy.Not(fuzzy.Or(a, b))
		rhs = fuzzy.And(fuzzy.Not(a), fuzzy.Not(b))
		assert.Equal(t, lhs, rhs)
	}
}

// TestBoundaryAgreesWithBoolean locks in that on {True,False} every operator
// coincides with classical two-valued boolean logic.
func TestBoundaryAgreesWithBoolean(t *testing.T) {
	cases := []struct {
		name string
		a, b bool
	}{
		{"TT", true, true},
		{"TF", true, false},
		{"FT", false, true},
		{"FF", false, false},
	}
	lit := func(b bool) fuzzy.Value {
		if b {
			return fuzzy.True
		}
		return fuzzy.False
	}
	lift := func(b bool) bool { return b }

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, lit(!c.a), fuzzy.Not(lit(c.a)))
			assert.Equal(t, lit(lift(c.a && c.b)), fuzzy.And(lit(c.a), lit(c.b)))
			assert.Equal(t, lit(lift(c.a || c.b)), fuzzy.Or(lit(c.a), lit(c.b)))
			assert.Equal(t, lit(lift(!c.a || c.b)), fuzzy.Implies(lit(c.a), lit(c.b)))
		})
	}
}

// TestUnknownConflictFixedUnderNot checks Unknown and Conflict are fixed
// points of Not.
func TestUnknownConflictFixedUnderNot(t *testing.T) {
	assert.Equal(t, fuzzy.Unknown, fuzzy.Not(fuzzy.Unknown))
	assert.Equal(t, fuzzy.Conflict, fuzzy.Not(fuzzy.Conflict))
}

// TestSimilarity_Identity checks sim(x,x) == 1 and sim(True,False) == 0.
func TestSimilarity_Identity(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	for i := 0; i < 50; i++ {
		x := randValue(r)
		assert.InDelta(t, 1.0, fuzzy.Similarity(x, x), 1e-9)
	}
	assert.InDelta(t, 0.0, fuzzy.Similarity(fuzzy.True, fuzzy.False), 1e-9)
}

// TestSimilarity_SymmetricUnderNot checks sim((t,f),(t',f')) == sim((f,t),(f',t')).
func TestSimilarity_SymmetricUnderNot(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	for i := 0; i < 200; i++ {
		a, b := randValue(r), randValue(r)
		assert.InDelta(t, fuzzy.Similarity(a, b), fuzzy.Similarity(fuzzy.Not(a), fuzzy.Not(b)), 1e-9)
	}
}

// TestCheckRange_PanicsOnInvalidInput locks in the fail-fast policy for
// out-of-range components reaching the algebra.
func TestCheckRange_PanicsOnInvalidInput(t *testing.T) {
	require.Panics(t, func() {
		fuzzy.Not(fuzzy.Value{T: 1.5, F: 0})
	})
	require.Panics(t, func() {
		fuzzy.And(fuzzy.Value{T: 0, F: -0.1}, fuzzy.True)
	})
}

// TestAndN_OrN_EmptyIdentity locks in the CNF identity rule: empty AND is
// TRUE, empty OR is FALSE.
func TestAndN_OrN_EmptyIdentity(t *testing.T) {
	assert.Equal(t, fuzzy.True, fuzzy.AndN())
	assert.Equal(t, fuzzy.False, fuzzy.OrN())
}
