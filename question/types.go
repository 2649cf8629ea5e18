package question

// NeedSplit is one candidate need's expected split score, in [0,1].
type NeedSplit struct {
	NeedID string
	Split  float64
}
