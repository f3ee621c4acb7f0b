// Package check defines check registrations, their argument and result
// types, and the status resolution shared by every check kind.
//
// A Registration describes a kind of check (name, description template,
// required data source categories, evaluation function). A Definition binds
// a Registration to concrete arguments. Definitions of any type parameters
// satisfy Runner, so detectors can hold heterogeneous checks in one slice.
package check

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/specvital/fwdetect/pkg/datasource"
	"github.com/specvital/fwdetect/pkg/domain"
)

var (
	// ErrInvalidArgs is returned when check arguments fail validation.
	ErrInvalidArgs = errors.New("check: invalid arguments")
	// ErrInvalidRegistration is returned for a registration without a name or evaluator.
	ErrInvalidRegistration = errors.New("check: invalid registration")
)

// Args parameterizes one check instance.
type Args interface {
	// Description renders the arguments for humans.
	Description() string
	// Validate fails when required fields are absent or malformed.
	Validate() error
}

// EvaluateFunc scans evidence for a record satisfying args and reports it
// through out.Pass. It must return promptly once ctx is done.
type EvaluateFunc[A Args, O any] func(ctx context.Context, args A, set *datasource.Set, out *Outcome[A, O])

// Registration describes one kind of check.
type Registration[A Args, O any] struct {
	Name string
	// Description is a fmt template receiving the argument description once.
	// An empty template renders the argument description alone.
	Description string
	// DataSources lists the categories that must all be collected for the
	// check to run. A missing category resolves the check to Error.
	DataSources []datasource.ID
	Evaluate    EvaluateFunc[A, O]
}

// Runner is the type-erased view of a Definition.
type Runner interface {
	Name() string
	Description() string
	DataSources() []datasource.ID
	Arguments() Args
	Validate() error
	Run(ctx context.Context, set *datasource.Set) Result
}

// Definition binds a registration to arguments. It is immutable.
type Definition[A Args, O any] struct {
	reg  *Registration[A, O]
	args A
}

// New creates a check definition. Validation is deferred to Validate so
// that builders can attribute failures to the offending check.
func New[A Args, O any](reg *Registration[A, O], args A) *Definition[A, O] {
	return &Definition[A, O]{reg: reg, args: args}
}

// Args returns the definition's arguments.
func (d *Definition[A, O]) Args() A {
	return d.args
}

// Arguments returns the definition's arguments as Args.
func (d *Definition[A, O]) Arguments() Args {
	return d.args
}

func (d *Definition[A, O]) Name() string {
	if d.reg == nil {
		return ""
	}
	return d.reg.Name
}

func (d *Definition[A, O]) Description() string {
	desc := d.args.Description()
	if d.reg == nil || d.reg.Description == "" {
		return desc
	}
	if !strings.Contains(d.reg.Description, "%") {
		return d.reg.Description
	}
	return fmt.Sprintf(d.reg.Description, desc)
}

func (d *Definition[A, O]) DataSources() []datasource.ID {
	if d.reg == nil {
		return nil
	}
	return slices.Clone(d.reg.DataSources)
}

// Validate checks the registration and the arguments.
func (d *Definition[A, O]) Validate() error {
	if d.reg == nil || d.reg.Name == "" || d.reg.Evaluate == nil {
		return ErrInvalidRegistration
	}
	if err := d.args.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArgs, err)
	}
	return nil
}

// Run evaluates the check against set and returns a terminal result:
//   - Error if a required category was never collected (Evaluate is not called)
//   - CompletedPassed if Evaluate reported a match
//   - Canceled if ctx was done before a match
//   - CompletedFailed otherwise
func (d *Definition[A, O]) Run(ctx context.Context, set *datasource.Set) Result {
	out := &Outcome[A, O]{
		name:        d.Name(),
		description: d.Description(),
		status:      domain.CheckStatusNone,
		Args:        d.args,
	}

	if d.reg == nil || d.reg.Evaluate == nil {
		out.transition(domain.CheckStatusError)
		return out
	}

	for _, id := range d.reg.DataSources {
		if !set.Has(id) {
			out.transition(domain.CheckStatusError)
			return out
		}
	}

	out.transition(domain.CheckStatusInProgress)
	d.reg.Evaluate(ctx, d.args, set, out)

	if out.status == domain.CheckStatusInProgress {
		if ctx.Err() != nil {
			out.transition(domain.CheckStatusCanceled)
		} else {
			out.transition(domain.CheckStatusCompletedFailed)
		}
	}
	return out
}
