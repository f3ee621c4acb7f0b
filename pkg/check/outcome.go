package check

import "github.com/specvital/fwdetect/pkg/domain"

// Result is the type-erased record of one check execution.
type Result interface {
	Name() string
	Description() string
	Status() domain.CheckStatus
	Arguments() Args
	// Evidence returns the record that satisfied the check, if any.
	Evidence() (any, bool)
}

// Outcome is the typed, mutable result handle passed to an EvaluateFunc.
// Only Pass may be called by evaluators; status transitions are otherwise
// owned by Definition.Run.
type Outcome[A Args, O any] struct {
	name        string
	description string
	status      domain.CheckStatus

	Args      A
	Output    O
	HasOutput bool
}

// Pass records output as the satisfying evidence. It has no effect unless
// the outcome is in progress, so a check can pass at most once.
func (o *Outcome[A, O]) Pass(output O) {
	if !o.transition(domain.CheckStatusCompletedPassed) {
		return
	}
	o.Output = output
	o.HasOutput = true
}

func (o *Outcome[A, O]) Name() string               { return o.name }
func (o *Outcome[A, O]) Description() string        { return o.description }
func (o *Outcome[A, O]) Status() domain.CheckStatus { return o.status }
func (o *Outcome[A, O]) Arguments() Args            { return o.Args }

func (o *Outcome[A, O]) Evidence() (any, bool) {
	if !o.HasOutput {
		return nil, false
	}
	return o.Output, true
}

func (o *Outcome[A, O]) transition(to domain.CheckStatus) bool {
	if !o.status.CanTransition(to) {
		return false
	}
	o.status = to
	return true
}

// notRun is the result of a check that never started.
type notRun struct {
	runner Runner
	status domain.CheckStatus
}

// Skipped returns a result for a check that was never executed, settled to
// status. Engines use it when a run is abandoned before a check starts.
func Skipped(r Runner, status domain.CheckStatus) Result {
	return &notRun{runner: r, status: status}
}

func (n *notRun) Name() string               { return n.runner.Name() }
func (n *notRun) Description() string        { return n.runner.Description() }
func (n *notRun) Status() domain.CheckStatus { return n.status }
func (n *notRun) Arguments() Args            { return n.runner.Arguments() }
func (n *notRun) Evidence() (any, bool)      { return nil, false }
