package catalog

// Object is a single catalog entry: a stable id and a mapping from feature
// id to value in [0,1]. Features absent from the map are UNKNOWN to the
// evaluator, not zero (spec §3). Object.Features already includes expanded
// derived-bucket values; it is the form the evaluator consumes directly.
type Object struct {
	ID       string
	Features map[string]float64
}

// Catalog is the full, immutable set of Objects loaded for a session.
type Catalog struct {
	objects []*Object
	byID    map[string]*Object
}

// Objects returns the catalog's objects in load order.
func (c *Catalog) Objects() []*Object { return c.objects }

// Len returns the number of objects in the catalog.
func (c *Catalog) Len() int { return len(c.objects) }

// ByID looks up an object by id.
func (c *Catalog) ByID(id string) (*Object, bool) {
	o, ok := c.byID[id]
	return o, ok
}

// NewCatalog validates and builds a Catalog from inputs against table,
// expanding any derived bucket values per spec §3. Returns
// *DuplicateIDError for repeated object ids and *ValueOutOfRangeError for
// any feature value outside [0,1].
func NewCatalog(inputs []ObjectInput, table *FeatureTable) (*Catalog, error) {
	c := &Catalog{byID: make(map[string]*Object, len(inputs))}

	for _, in := range inputs {
		if _, exists := c.byID[in.ID]; exists {
			return nil, &DuplicateIDError{Kind: "object", ID: in.ID}
		}

		features := make(map[string]float64, len(in.Features)+len(table.DerivedBuckets()))
		for fid, v := range in.Features {
			if v < 0 || v > 1 {
				return nil, &ValueOutOfRangeError{Field: in.ID + "." + fid, Value: v}
			}
			features[fid] = v
		}

		for _, d := range table.DerivedBuckets() {
			features[d.ID] = expandDerived(d, features)
		}

		obj := &Object{ID: in.ID, Features: features}
		c.objects = append(c.objects, obj)
		c.byID[in.ID] = obj
	}

	return c, nil
}

// expandDerived computes a derived bucket's value as the Łukasiewicz
// disjunction of its member values — min(1, Σ member values) — the same
// fold the evaluator uses for a literal OR clause (spec §4.3). A member
// absent from features contributes 0, the neutral element of the sum.
func expandDerived(d DerivedBucket, features map[string]float64) float64 {
	sum := 0.0
	for _, m := range d.Members {
		sum += features[m]
	}
	if sum > 1 {
		sum = 1
	}
	return sum
}
