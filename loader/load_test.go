package loader_test

import (
	"testing"

	"github.com/mihail-gribov/need-solver/catalog"
	"github.com/mihail-gribov/need-solver/loader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFeatureTable(t *testing.T) {
	data := []byte(`
version: 1
features:
  - energy
  - apartment_ok
groups:
  - name: size
    members:
      - id: size_small
        min: 0
        max: 10
      - id: size_medium
        min: 10
    derived:
      - id: size_small_or_medium
        members: [size_small, size_medium]
`)
	input, err := loader.LoadFeatureTable(data)
	require.NoError(t, err)
	assert.Equal(t, []string{"energy", "apartment_ok"}, input.Features)
	require.Len(t, input.Groups, 1)
	assert.Equal(t, "size", input.Groups[0].Name)
	assert.Len(t, input.Groups[0].Members, 2)
	assert.Len(t, input.Groups[0].Derived, 1)

	table, err := catalog.BuildFeatureTable(input)
	require.NoError(t, err)
	_, ok := table.Index("size_small_or_medium")
	assert.True(t, ok)
}

func TestLoadCatalog(t *testing.T) {
	data := []byte(`
version: 1
objects:
  - id: A
    features:
      energy: 0.9
      apartment_ok: 0.2
  - id: B
    features:
      energy: 0.5
`)
	objs, err := loader.LoadCatalog(data)
	require.NoError(t, err)
	require.Len(t, objs, 2)
	assert.Equal(t, "A", objs[0].ID)
	assert.InDelta(t, 0.9, objs[0].Features["energy"], 1e-9)
}

func TestLoadNeeds(t *testing.T) {
	data := []byte(`
version: 1
needs:
  - id: active
    name: Active
    formula: energy
`)
	needs, err := loader.LoadNeeds(data)
	require.NoError(t, err)
	require.Len(t, needs, 1)
	assert.Equal(t, "energy", needs[0].Formula)
}

func TestLoadQuestions(t *testing.T) {
	data := []byte(`
version: 1
questions:
  - id: q1
    need_id: active
    text: "Is your dog high-energy?"
    weight: 1
`)
	qs, err := loader.LoadQuestions(data)
	require.NoError(t, err)
	require.Len(t, qs, 1)
	assert.Equal(t, "active", qs[0].NeedID)
}

func TestLoad_RejectsBadVersion(t *testing.T) {
	_, err := loader.LoadCatalog([]byte("version: 2\nobjects: []\n"))
	assert.ErrorIs(t, err, catalog.ErrSchema)
}

func TestLoad_RejectsUnknownField(t *testing.T) {
	_, err := loader.LoadNeeds([]byte("version: 1\nneeds: []\nbogus: true\n"))
	assert.ErrorIs(t, err, catalog.ErrSchema)
}
