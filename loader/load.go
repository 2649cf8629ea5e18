package loader

import (
	"bytes"

	"github.com/mihail-gribov/need-solver/catalog"
	"gopkg.in/yaml.v3"
)

// DocumentVersion is the only version of these four document shapes this
// package currently understands.
const DocumentVersion = 1

type featureTableDocument struct {
	Version                   int `yaml:"version"`
	catalog.FeatureTableInput `yaml:",inline"`
}

type catalogDocument struct {
	Version int                   `yaml:"version"`
	Objects []catalog.ObjectInput `yaml:"objects"`
}

type needsDocument struct {
	Version int                 `yaml:"version"`
	Needs   []catalog.NeedInput `yaml:"needs"`
}

type questionsDocument struct {
	Version   int                     `yaml:"version"`
	Questions []catalog.QuestionInput `yaml:"questions"`
}

// LoadFeatureTable parses a feature-table document.
func LoadFeatureTable(data []byte) (catalog.FeatureTableInput, error) {
	var doc featureTableDocument
	if err := decodeStrict(data, &doc); err != nil {
		return catalog.FeatureTableInput{}, err
	}
	if err := checkVersion(doc.Version, "$.version"); err != nil {
		return catalog.FeatureTableInput{}, err
	}
	return doc.FeatureTableInput, nil
}

// LoadCatalog parses a catalog document into ObjectInputs, in document
// order.
func LoadCatalog(data []byte) ([]catalog.ObjectInput, error) {
	var doc catalogDocument
	if err := decodeStrict(data, &doc); err != nil {
		return nil, err
	}
	if err := checkVersion(doc.Version, "$.version"); err != nil {
		return nil, err
	}
	return doc.Objects, nil
}

// LoadNeeds parses a needs document into NeedInputs, in document order.
func LoadNeeds(data []byte) ([]catalog.NeedInput, error) {
	var doc needsDocument
	if err := decodeStrict(data, &doc); err != nil {
		return nil, err
	}
	if err := checkVersion(doc.Version, "$.version"); err != nil {
		return nil, err
	}
	return doc.Needs, nil
}

// LoadQuestions parses a questions document into QuestionInputs, in
// document order.
func LoadQuestions(data []byte) ([]catalog.QuestionInput, error) {
	var doc questionsDocument
	if err := decodeStrict(data, &doc); err != nil {
		return nil, err
	}
	if err := checkVersion(doc.Version, "$.version"); err != nil {
		return nil, err
	}
	return doc.Questions, nil
}

func decodeStrict(data []byte, v interface{}) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(v); err != nil {
		return &catalog.SchemaError{Path: "$", Reason: err.Error()}
	}
	return nil
}

func checkVersion(v int, path string) error {
	if v != DocumentVersion {
		return &catalog.SchemaError{Path: path, Reason: "unsupported version"}
	}
	return nil
}
