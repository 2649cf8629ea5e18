package catalog

// FeatureTable assigns a stable integer index to every declared feature id
// — base features, group members, and derived buckets alike — so that
// formula.Compile and the matrix's need-major columns agree on indexing.
// FeatureTable implements formula.FeatureTable.
type FeatureTable struct {
	index   map[string]int
	ids     []string // index -> id, inverse of index
	derived []DerivedBucket
}

// Index implements formula.FeatureTable.
func (t *FeatureTable) Index(featureID string) (int, bool) {
	i, ok := t.index[featureID]
	return i, ok
}

// ID returns the feature id stored at idx, or "" if idx is out of range.
func (t *FeatureTable) ID(idx int) string {
	if idx < 0 || idx >= len(t.ids) {
		return ""
	}
	return t.ids[idx]
}

// Len returns the number of distinct feature ids in the table.
func (t *FeatureTable) Len() int { return len(t.ids) }

// DerivedBuckets returns the derived-bucket definitions registered on the
// table, for use by NewCatalog when expanding per-object values.
func (t *FeatureTable) DerivedBuckets() []DerivedBucket { return t.derived }

// BuildFeatureTable constructs a FeatureTable from a FeatureTableInput. It
// assigns indices to input.Features, then to every group member id, then
// to every derived bucket id — each only once, in first-declaration order.
// A repeated id across Features/group members/derived buckets is a
// *DuplicateIDError.
func BuildFeatureTable(input FeatureTableInput) (*FeatureTable, error) {
	t := &FeatureTable{index: make(map[string]int)}

	add := func(id string) error {
		if _, exists := t.index[id]; exists {
			return &DuplicateIDError{Kind: "feature", ID: id}
		}
		t.index[id] = len(t.ids)
		t.ids = append(t.ids, id)
		return nil
	}

	for _, id := range input.Features {
		if err := add(id); err != nil {
			return nil, err
		}
	}
	for _, g := range input.Groups {
		for _, m := range g.Members {
			if err := add(m.ID); err != nil {
				return nil, err
			}
		}
	}
	for _, g := range input.Groups {
		for _, d := range g.Derived {
			if err := add(d.ID); err != nil {
				return nil, err
			}
			t.derived = append(t.derived, d)
		}
	}

	return t, nil
}
