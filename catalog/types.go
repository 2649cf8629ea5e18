package catalog

// ObjectInput is the external-document shape of a catalog object (spec §6
// "Catalog input"): a stable id and a mapping from feature-id to value in
// [0,1]. Features absent from Features are treated as UNKNOWN, not zero.
type ObjectInput struct {
	ID       string             `yaml:"id"`
	Features map[string]float64 `yaml:"features"`
}

// GroupMember declares a single bucket of a categorical feature group, with
// the numeric range it represents. Min/Max are carried as metadata only —
// nothing in this module reads or validates them; the evaluator looks only
// at the member's own [0,1] value in an ObjectInput.
type GroupMember struct {
	ID  string   `yaml:"id"`
	Min float64  `yaml:"min"`
	Max *float64 `yaml:"max,omitempty"` // nil means unbounded above
}

// DerivedBucket names a feature id whose value is defined, at catalog-load
// time, as the disjunction of its member buckets' values (spec §3). Derived
// ids are expanded into concrete per-object values before the evaluator
// ever runs; the evaluator treats them exactly like any other feature.
type DerivedBucket struct {
	ID      string   `yaml:"id"`
	Members []string `yaml:"members"`
}

// FeatureGroup is a named group of soft one-hot bucket members plus any
// derived (OR-expansion) buckets defined over them.
type FeatureGroup struct {
	Name    string          `yaml:"name"`
	Members []GroupMember   `yaml:"members"`
	Derived []DerivedBucket `yaml:"derived,omitempty"`
}

// FeatureTableInput is the external-document shape of the feature table
// (spec §6 "Feature table input"): a flat list of continuous feature ids
// plus any grouped categorical definitions.
type FeatureTableInput struct {
	Features []string       `yaml:"features"`
	Groups   []FeatureGroup `yaml:"groups,omitempty"`
}

// NeedInput is the external-document shape of a need (spec §6 "Needs
// input"): an id, display metadata, and a CNF formula string to be parsed
// and compiled against the feature table.
type NeedInput struct {
	ID      string   `yaml:"id"`
	Name    string   `yaml:"name"`
	Block   string   `yaml:"block"`
	Formula string   `yaml:"formula"`
	Weight  *float64 `yaml:"weight,omitempty"`
}

// QuestionInput is the external-document shape of a question (spec §6
// "Question input"). The core uses only the NeedID linkage; Text and the
// remaining fields pass through unchanged for the caller's UI.
type QuestionInput struct {
	ID           string  `yaml:"id"`
	NeedID       string  `yaml:"need_id"`
	Text         string  `yaml:"text"`
	Weight       float64 `yaml:"weight"`
	Style        string  `yaml:"style,omitempty"`
	Verification string  `yaml:"verification,omitempty"`
}
