package profile

import (
	"errors"
	"fmt"
)

// ErrSchema is returned when a serialized profile document does not match
// the expected shape (wrong version, unknown fields outside the extension
// area, or an unrecognized answer kind).
var ErrSchema = errors.New("profile: schema error")

// SchemaError names the offending path/field and a human reason.
type SchemaError struct {
	Path   string
	Reason string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("profile: schema error at %q: %s", e.Path, e.Reason)
}

func (e *SchemaError) Is(target error) bool { return target == ErrSchema }

// ErrUnknownNeed is returned by Load when an answer references a need not
// present in the caller-supplied known-needs set and the caller asked to
// propagate rather than ignore such answers.
var ErrUnknownNeed = errors.New("profile: unknown need")

// UnknownNeedError carries the offending need-id.
type UnknownNeedError struct {
	NeedID string
}

func (e *UnknownNeedError) Error() string {
	return fmt.Sprintf("profile: unknown need %q", e.NeedID)
}

func (e *UnknownNeedError) Is(target error) bool { return target == ErrUnknownNeed }
