package profile

import "github.com/mihail-gribov/need-solver/fuzzy"

// UserProfile holds the append-only answer log described in spec §3/§4.4
// plus a cached derived aggregate. It is not safe for concurrent mutation
// from multiple goroutines; a caller sharing one across threads must
// serialize its own AddAnswer/MarkIndependent calls (spec §5).
type UserProfile struct {
	log   []LogEntry
	dirty bool
	agg   map[string]fuzzy.Value
	indep map[string]bool
}

// New returns an empty UserProfile.
func New() *UserProfile {
	return &UserProfile{dirty: true}
}

// AddAnswer appends a raw answer to the log, tagged with the need it
// addresses and an optional question text. The derived aggregate is
// recomputed lazily on the next Needs/AnsweredNeedIDs call.
func (p *UserProfile) AddAnswer(needID string, answer AnswerKind, questionText string) {
	p.log = append(p.log, LogEntry{NeedID: needID, Answer: answer, Question: questionText})
	p.dirty = true
}

// MarkIndependent is an alias for AddAnswer(needID, Independent, "").
func (p *UserProfile) MarkIndependent(needID string) {
	p.AddAnswer(needID, Independent, "")
}

// Needs returns the aggregated need -> fuzzy.Value map. Needs in the
// independent set are absent from the result.
func (p *UserProfile) Needs() map[string]fuzzy.Value {
	p.refresh()
	out := make(map[string]fuzzy.Value, len(p.agg))
	for k, v := range p.agg {
		out[k] = v
	}
	return out
}

// Independent returns the set of need ids the user has declared irrelevant.
func (p *UserProfile) Independent() map[string]bool {
	p.refresh()
	out := make(map[string]bool, len(p.indep))
	for k := range p.indep {
		out[k] = true
	}
	return out
}

// AnsweredNeedIDs returns the union of the aggregated map's keys and the
// independent set — every need the selector should treat as already
// covered.
func (p *UserProfile) AnsweredNeedIDs() map[string]bool {
	p.refresh()
	out := make(map[string]bool, len(p.agg)+len(p.indep))
	for k := range p.agg {
		out[k] = true
	}
	for k := range p.indep {
		out[k] = true
	}
	return out
}

// Log returns a read-only copy of the ordered answer log, for
// serialization.
func (p *UserProfile) Log() []LogEntry {
	out := make([]LogEntry, len(p.log))
	copy(out, p.log)
	return out
}

func (p *UserProfile) refresh() {
	if !p.dirty {
		return
	}
	p.agg, p.indep = aggregate(p.log)
	p.dirty = false
}
