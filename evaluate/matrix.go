package evaluate

import (
	"github.com/mihail-gribov/need-solver/catalog"
	"github.com/mihail-gribov/need-solver/fuzzy"
)

// Matrix is the precomputed |catalog|×|needs| table of fuzzy values, stored
// need-major: data[needIdx] is a dense column of fuzzy.Value, one per
// object, in catalog object order. Matrix is built once and is safe for
// concurrent read-only use by any number of sessions (spec §5).
type Matrix struct {
	needIDs     []string
	needIndex   map[string]int
	objectIDs   []string
	objectIndex map[string]int
	data        [][]fuzzy.Value // data[needIdx][objIdx]
}

// NeedIDs returns the need ids in matrix column order.
func (m *Matrix) NeedIDs() []string { return m.needIDs }

// ObjectIDs returns the object ids in matrix row order.
func (m *Matrix) ObjectIDs() []string { return m.objectIDs }

// NeedIndex returns the column index for needID.
func (m *Matrix) NeedIndex(needID string) (int, bool) {
	i, ok := m.needIndex[needID]
	return i, ok
}

// ObjectIndex returns the row index for objectID.
func (m *Matrix) ObjectIndex(objectID string) (int, bool) {
	i, ok := m.objectIndex[objectID]
	return i, ok
}

// At returns M[objectID, needID], or (Unknown, false) if either id is
// unrecognized.
func (m *Matrix) At(objectID, needID string) (fuzzy.Value, bool) {
	ni, ok := m.needIndex[needID]
	if !ok {
		return fuzzy.Unknown, false
	}
	oi, ok := m.objectIndex[objectID]
	if !ok {
		return fuzzy.Unknown, false
	}
	return m.data[ni][oi], true
}

// Column returns the full per-object column for needID, in object order
// (the same order as ObjectIDs), or (nil, false) if needID is unknown.
// The returned slice is a direct view into the matrix's storage and must
// not be mutated.
func (m *Matrix) Column(needID string) ([]fuzzy.Value, bool) {
	ni, ok := m.needIndex[needID]
	if !ok {
		return nil, false
	}
	return m.data[ni], true
}

// ColumnByIndex returns the column at the given need index without a map
// lookup — used by the question selector's hot loop.
func (m *Matrix) ColumnByIndex(idx int) []fuzzy.Value { return m.data[idx] }

// Build evaluates every need's formula against every catalog object once
// and stores the result need-major. cat and needs must have been built
// against the same table (spec's invariant that every literal's feature-id
// resolves in the shared FeatureTable).
func Build(cat *catalog.Catalog, needs []*catalog.Need, table *catalog.FeatureTable) *Matrix {
	objects := cat.Objects()

	m := &Matrix{
		needIDs:     make([]string, len(needs)),
		needIndex:   make(map[string]int, len(needs)),
		objectIDs:   make([]string, len(objects)),
		objectIndex: make(map[string]int, len(objects)),
		data:        make([][]fuzzy.Value, len(needs)),
	}

	for i, obj := range objects {
		m.objectIDs[i] = obj.ID
		m.objectIndex[obj.ID] = i
	}

	for ni, need := range needs {
		m.needIDs[ni] = need.ID
		m.needIndex[need.ID] = ni

		col := make([]fuzzy.Value, len(objects))
		for oi, obj := range objects {
			col[oi] = Eval(need.Formula, obj, table)
		}
		m.data[ni] = col
	}

	return m
}
