package profile

import (
	"bytes"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// DocumentVersion is the only version of the portable document this
// package currently understands.
const DocumentVersion = 1

// Document is the portable, on-disk form of a UserProfile (spec §6
// "Serialization"): version plus the ordered answer log. The aggregate and
// independent set are derived, not stored.
type Document struct {
	Version int            `yaml:"version" json:"version"`
	Answers []AnswerRecord `yaml:"answers" json:"answers"`

	// Extension is the designated extension area: unknown top-level
	// fields elsewhere in the document are a SchemaError, but callers may
	// stash arbitrary forward-compatible data here.
	Extension map[string]interface{} `yaml:"x_extension,omitempty" json:"x_extension,omitempty"`
}

// AnswerRecord is one serialized log entry. Dual yaml/json tags let the
// same struct serve the CLI's on-disk YAML profile and an API caller's
// JSON document from one shape.
type AnswerRecord struct {
	NeedID    string     `yaml:"need_id" json:"need_id"`
	Answer    string     `yaml:"answer" json:"answer"`
	Question  string     `yaml:"question,omitempty" json:"question,omitempty"`
	Timestamp *time.Time `yaml:"timestamp,omitempty" json:"timestamp,omitempty"`
}

// ToDocument renders p's current log as a portable Document.
func (p *UserProfile) ToDocument() Document {
	doc := Document{Version: DocumentVersion}
	for _, e := range p.log {
		doc.Answers = append(doc.Answers, AnswerRecord{
			NeedID:    e.NeedID,
			Answer:    e.Answer.String(),
			Question:  e.Question,
			Timestamp: e.Timestamp,
		})
	}
	return doc
}

// Save marshals p to its YAML portable form.
func Save(p *UserProfile) ([]byte, error) {
	return yaml.Marshal(p.ToDocument())
}

// Load parses a YAML portable document into a fresh UserProfile.
//
// knownNeedIDs, if non-nil, is checked against every answer's need id: an
// id absent from knownNeedIDs is an error unless ignoreUnknown is true, in
// which case that answer is silently dropped (spec §6: "caller chooses
// whether to ignore or propagate"). Pass a nil knownNeedIDs to skip the
// check entirely.
func Load(data []byte, knownNeedIDs map[string]bool, ignoreUnknown bool) (*UserProfile, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, &SchemaError{Path: "$", Reason: err.Error()}
	}

	if doc.Version != DocumentVersion {
		return nil, &SchemaError{Path: "$.version", Reason: "unsupported version"}
	}

	p := New()
	for i, rec := range doc.Answers {
		if knownNeedIDs != nil && !knownNeedIDs[rec.NeedID] {
			if ignoreUnknown {
				continue
			}
			return nil, &UnknownNeedError{NeedID: rec.NeedID}
		}

		kind, ok := parseAnswerKind(rec.Answer)
		if !ok {
			return nil, &SchemaError{Path: pathForAnswer(i), Reason: "unrecognized answer kind " + rec.Answer}
		}

		p.log = append(p.log, LogEntry{
			NeedID:    rec.NeedID,
			Answer:    kind,
			Question:  rec.Question,
			Timestamp: rec.Timestamp,
		})
	}
	p.dirty = true

	return p, nil
}

func parseAnswerKind(s string) (AnswerKind, bool) {
	switch s {
	case "yes":
		return Yes, true
	case "no":
		return No, true
	case "unknown":
		return Unknown, true
	case "independent":
		return Independent, true
	default:
		return 0, false
	}
}

func pathForAnswer(i int) string {
	return "$.answers[" + strconv.Itoa(i) + "]"
}
