package detector

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMissingIdentity is returned when a detector has no name or framework id.
	ErrMissingIdentity = errors.New("detector: name and framework id are required")
	// ErrInvalidCategory is returned for an unknown detector category.
	ErrInvalidCategory = errors.New("detector: invalid category")
	// ErrNoRequiredChecks is returned when a detector declares no Required group.
	ErrNoRequiredChecks = errors.New("detector: no required checks")
	// ErrEmptyRequiredGroup is returned when a Required group holds no checks.
	ErrEmptyRequiredGroup = errors.New("detector: empty required group")
	// ErrNilCheck is returned when a nil check is added to a group.
	ErrNilCheck = errors.New("detector: nil check")
	// ErrVersionOnEmptyGroup is returned when a version provider is bound before any check.
	ErrVersionOnEmptyGroup = errors.New("detector: version provider bound to empty group")
	// ErrVersionProviderMismatch is returned when a provider cannot read the bound check's results.
	ErrVersionProviderMismatch = errors.New("detector: version provider does not fit check")
	// ErrVersionAlreadyBound is returned when a group binds a second version provider.
	ErrVersionAlreadyBound = errors.New("detector: version provider already bound")
	// ErrDuplicateDetector is returned when registering a name twice.
	ErrDuplicateDetector = errors.New("detector: duplicate detector")
)

// BuildError is a configuration error attributed to a detector, and
// optionally to one of its groups and checks.
type BuildError struct {
	// Err is the underlying error.
	Err error

	// Detector is the detector name.
	Detector string

	// Group identifies the group, e.g. "required[0]" (may be empty).
	Group string

	// Check is the offending check name (may be empty).
	Check string
}

// Error implements the error interface.
func (e *BuildError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "detector %q", e.Detector)
	if e.Group != "" {
		fmt.Fprintf(&b, ", group %s", e.Group)
	}
	if e.Check != "" {
		fmt.Fprintf(&b, ", check %q", e.Check)
	}
	fmt.Fprintf(&b, ": %v", e.Err)
	return b.String()
}

func (e *BuildError) Unwrap() error {
	return e.Err
}
