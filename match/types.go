package match

import "github.com/mihail-gribov/need-solver/fuzzy"

// RankedObject is one entry of a match_fast result: an object id and its
// aggregate score, in [0,1].
type RankedObject struct {
	ObjectID string
	Score    float64
}

// NeedContribution is one row of a match_all breakdown: the need that
// contributed, the user's asserted value for it, the object's matrix
// value, and the resulting similarity.
type NeedContribution struct {
	NeedID     string
	User       fuzzy.Value
	Matrix     fuzzy.Value
	Similarity float64
}

// RankedObjectDetailed is one entry of a match_all result.
type RankedObjectDetailed struct {
	RankedObject
	Contributions []NeedContribution
}
