package explain

import "github.com/mihail-gribov/need-solver/match"

// Breakdown is the structured per-breed explanation described in spec
// §4.7. Pros and Cons share the same underlying rows (every need outside
// the conflict set) ordered by descending and ascending similarity
// respectively; Conflicts holds needs where the user's answer is CONFLICT,
// surfaced separately rather than ranked by similarity.
type Breakdown struct {
	ObjectID  string
	Pros      []match.NeedContribution
	Cons      []match.NeedContribution
	Conflicts []match.NeedContribution
}
