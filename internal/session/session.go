// Package session wires together the four on-disk documents (feature
// table, catalog, needs, questions) into the in-memory objects the core
// packages operate on, and persists/restores a UserProfile between CLI
// invocations. None of this is a core responsibility — spec §5 keeps the
// core itself free of I/O — it is purely the CLI's own session glue.
package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mihail-gribov/need-solver/catalog"
	"github.com/mihail-gribov/need-solver/evaluate"
	"github.com/mihail-gribov/need-solver/loader"
	"github.com/mihail-gribov/need-solver/profile"
)

// Bundle holds everything a CLI command needs after loading a data
// directory: the resolved catalog/needs/questions plus the precomputed
// matrix built from them.
type Bundle struct {
	Table     *catalog.FeatureTable
	Catalog   *catalog.Catalog
	Needs     []*catalog.Need
	Questions []*catalog.Question
	Matrix    *evaluate.Matrix
}

const (
	featuresFile  = "features.yaml"
	catalogFile   = "catalog.yaml"
	needsFile     = "needs.yaml"
	questionsFile = "questions.yaml"
)

// LoadBundle reads the four documents from dataDir and builds the Bundle.
func LoadBundle(dataDir string) (*Bundle, error) {
	tableInput, err := loadDoc(dataDir, featuresFile, loader.LoadFeatureTable)
	if err != nil {
		return nil, err
	}
	table, err := catalog.BuildFeatureTable(tableInput)
	if err != nil {
		return nil, fmt.Errorf("session: build feature table: %w", err)
	}

	objInputs, err := loadDoc(dataDir, catalogFile, loader.LoadCatalog)
	if err != nil {
		return nil, err
	}
	cat, err := catalog.NewCatalog(objInputs, table)
	if err != nil {
		return nil, fmt.Errorf("session: build catalog: %w", err)
	}

	needInputs, err := loadDoc(dataDir, needsFile, loader.LoadNeeds)
	if err != nil {
		return nil, err
	}
	needs, err := catalog.NewNeeds(needInputs, table)
	if err != nil {
		return nil, fmt.Errorf("session: build needs: %w", err)
	}

	questionInputs, err := loadDoc(dataDir, questionsFile, loader.LoadQuestions)
	if err != nil {
		return nil, err
	}
	questions, err := catalog.NewQuestions(questionInputs, needs)
	if err != nil {
		return nil, fmt.Errorf("session: build questions: %w", err)
	}

	return &Bundle{
		Table:     table,
		Catalog:   cat,
		Needs:     needs,
		Questions: questions,
		Matrix:    evaluate.Build(cat, needs, table),
	}, nil
}

func loadDoc[T any](dataDir, name string, parse func([]byte) (T, error)) (T, error) {
	var zero T
	data, err := os.ReadFile(filepath.Join(dataDir, name))
	if err != nil {
		return zero, fmt.Errorf("session: read %s: %w", name, err)
	}
	v, err := parse(data)
	if err != nil {
		return zero, fmt.Errorf("session: parse %s: %w", name, err)
	}
	return v, nil
}

// KnownNeedIDs returns the set of need ids the bundle knows about, for
// profile.Load's unknown-need check.
func (b *Bundle) KnownNeedIDs() map[string]bool {
	out := make(map[string]bool, len(b.Needs))
	for _, n := range b.Needs {
		out[n.ID] = true
	}
	return out
}

// CandidateNeedIDs returns the needs eligible for the question selector:
// those with a generated question, not already answered, and not marked
// independent (spec §4.6) — the latter two are exactly p.AnsweredNeedIDs().
func (b *Bundle) CandidateNeedIDs(p *profile.UserProfile) []string {
	hasQuestion := make(map[string]bool, len(b.Questions))
	for _, q := range b.Questions {
		hasQuestion[q.NeedID] = true
	}

	answered := p.AnsweredNeedIDs()
	var out []string
	for _, n := range b.Needs {
		if !hasQuestion[n.ID] || answered[n.ID] {
			continue
		}
		out = append(out, n.ID)
	}
	return out
}

// QuestionForNeed returns the first question linked to needID, if any.
func (b *Bundle) QuestionForNeed(needID string) (*catalog.Question, bool) {
	for _, q := range b.Questions {
		if q.NeedID == needID {
			return q, true
		}
	}
	return nil, false
}

// LoadProfile restores a UserProfile from path, or returns a fresh one if
// the file does not yet exist. Answers referencing a need outside
// knownNeedIDs are dropped rather than rejected, since a data directory may
// evolve between a profile's save and its next load.
func LoadProfile(path string, knownNeedIDs map[string]bool) (*profile.UserProfile, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return profile.New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("session: read profile: %w", err)
	}
	p, err := profile.Load(data, knownNeedIDs, true)
	if err != nil {
		return nil, fmt.Errorf("session: parse profile: %w", err)
	}
	return p, nil
}

// SaveProfile persists p to path as YAML.
func SaveProfile(path string, p *profile.UserProfile) error {
	data, err := profile.Save(p)
	if err != nil {
		return fmt.Errorf("session: serialize profile: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("session: write profile: %w", err)
	}
	return nil
}
