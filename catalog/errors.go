package catalog

import (
	"errors"
	"fmt"
)

// ErrUnknownNeed is returned when an operation names a need-id not present
// in the current needs set (e.g. NewQuestions given a question whose NeedID
// is not among the supplied needs).
var ErrUnknownNeed = errors.New("catalog: unknown need")

// UnknownNeedError carries the offending need-id alongside ErrUnknownNeed.
type UnknownNeedError struct {
	NeedID string
}

func (e *UnknownNeedError) Error() string {
	return fmt.Sprintf("catalog: unknown need %q", e.NeedID)
}

func (e *UnknownNeedError) Is(target error) bool { return target == ErrUnknownNeed }

// ErrValueOutOfRange is returned when an object's feature value falls
// outside [0,1]. Need and question weights are not range-checked.
var ErrValueOutOfRange = errors.New("catalog: value out of range")

// ValueOutOfRangeError carries the offending field and value.
type ValueOutOfRangeError struct {
	Field string
	Value float64
}

func (e *ValueOutOfRangeError) Error() string {
	return fmt.Sprintf("catalog: value out of range: field %q = %v", e.Field, e.Value)
}

func (e *ValueOutOfRangeError) Is(target error) bool { return target == ErrValueOutOfRange }

// ErrDuplicateID is returned when two features, needs, objects, or
// questions in the same document share an id.
var ErrDuplicateID = errors.New("catalog: duplicate id")

// DuplicateIDError names the offending kind ("feature", "need", "object",
// "question") and id.
type DuplicateIDError struct {
	Kind string
	ID   string
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("catalog: duplicate %s id %q", e.Kind, e.ID)
}

func (e *DuplicateIDError) Is(target error) bool { return target == ErrDuplicateID }

// ErrSchema is returned when an external document does not match the
// shape catalog expects (see the loader package's Load* functions for where
// these documents are actually parsed off disk).
var ErrSchema = errors.New("catalog: schema error")

// SchemaError names the offending path/field and a human reason.
type SchemaError struct {
	Path   string
	Reason string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("catalog: schema error at %q: %s", e.Path, e.Reason)
}

func (e *SchemaError) Is(target error) bool { return target == ErrSchema }
