package catalog

import "github.com/mihail-gribov/need-solver/formula"

// Need is a named formula over object features representing a user-facing
// preference axis (spec §3). Formula has already been parsed, normalized to
// CNF, and compiled against a FeatureTable by the time a Need exists.
type Need struct {
	ID      string
	Name    string
	Block   string
	Weight  *float64 // nil means "no weight hint supplied"; the core never uses this itself
	Formula formula.Compiled
}

// NewNeeds compiles each NeedInput's formula against table and returns the
// resulting Needs in input order. Returns *DuplicateIDError for a repeated
// need id, and whatever formula.Compile returns (*formula.ParseError or
// *formula.UnknownFeatureError) for a malformed or unresolvable formula.
func NewNeeds(inputs []NeedInput, table *FeatureTable) ([]*Need, error) {
	seen := make(map[string]bool, len(inputs))
	needs := make([]*Need, 0, len(inputs))

	for _, in := range inputs {
		if seen[in.ID] {
			return nil, &DuplicateIDError{Kind: "need", ID: in.ID}
		}
		seen[in.ID] = true

		compiled, err := formula.Compile(in.Formula, table)
		if err != nil {
			return nil, err
		}

		needs = append(needs, &Need{
			ID:      in.ID,
			Name:    in.Name,
			Block:   in.Block,
			Weight:  in.Weight,
			Formula: compiled,
		})
	}

	return needs, nil
}

// Question is a caller-facing prompt linked to a need, carrying
// pass-through metadata the core never interprets (spec §6 "Question
// input").
type Question struct {
	ID           string
	NeedID       string
	Text         string
	Weight       float64
	Style        string
	Verification string
}

// NewQuestions validates NeedID linkage against needs and returns the
// Questions in input order. Returns *DuplicateIDError for a repeated
// question id and *UnknownNeedError for a NeedID not present in needs.
func NewQuestions(inputs []QuestionInput, needs []*Need) ([]*Question, error) {
	validNeed := make(map[string]bool, len(needs))
	for _, n := range needs {
		validNeed[n.ID] = true
	}

	seen := make(map[string]bool, len(inputs))
	questions := make([]*Question, 0, len(inputs))

	for _, in := range inputs {
		if seen[in.ID] {
			return nil, &DuplicateIDError{Kind: "question", ID: in.ID}
		}
		seen[in.ID] = true

		if !validNeed[in.NeedID] {
			return nil, &UnknownNeedError{NeedID: in.NeedID}
		}

		questions = append(questions, &Question{
			ID:           in.ID,
			NeedID:       in.NeedID,
			Text:         in.Text,
			Weight:       in.Weight,
			Style:        in.Style,
			Verification: in.Verification,
		})
	}

	return questions, nil
}
