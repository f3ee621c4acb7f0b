package detector

import (
	"github.com/specvital/fwdetect/pkg/check"
	"github.com/specvital/fwdetect/pkg/domain"
)

// GroupResult holds the results of one group's checks in declaration order.
type GroupResult struct {
	Group   *Group
	Results []check.Result
}

// Passed reports whether every check in the group passed. Error counts as
// a failed requirement.
func (gr GroupResult) Passed() bool {
	if len(gr.Results) == 0 {
		return false
	}
	passed := 0
	for _, r := range gr.Results {
		if r.Status().IsPassed() {
			passed++
		}
	}
	return passed == len(gr.Results)
}

// Version runs the group's version provider against the bound check's
// result. It returns "" when no provider is bound or the check did not pass.
func (gr GroupResult) Version() string {
	if gr.Group == nil {
		return ""
	}
	idx, provider, ok := gr.Group.VersionSource()
	if !ok || idx >= len(gr.Results) {
		return ""
	}
	return provider.Version(gr.Results[idx])
}

// Result aggregates every check result of one detector against one input.
type Result struct {
	Definition *Definition
	// Input is the name of the input record the detector ran against.
	Input    string
	Required []GroupResult
	Optional []GroupResult

	Status  domain.DetectorStatus
	Found   bool
	Version string
}

// Aggregate derives the verdict of a detector from its group results.
//
// Found is true when any Required group passed. Version comes from the
// first passing Required group with a bound provider. Status is Completed
// when every check reached a terminal status other than Canceled; otherwise
// it is Canceled if cancellation was requested, else InProgress.
func Aggregate(def *Definition, input string, required, optional []GroupResult, canceled bool) *Result {
	res := &Result{
		Definition: def,
		Input:      input,
		Required:   required,
		Optional:   optional,
		Status:     domain.DetectorStatusNone,
	}
	res.transition(domain.DetectorStatusInProgress)

	for _, gr := range required {
		if !gr.Passed() {
			continue
		}
		res.Found = true
		if res.Version == "" {
			res.Version = gr.Version()
		}
	}

	completed := true
	for _, r := range res.Checks() {
		s := r.Status()
		if !s.IsTerminal() || s == domain.CheckStatusCanceled {
			completed = false
			break
		}
	}

	switch {
	case completed:
		res.transition(domain.DetectorStatusCompleted)
	case canceled:
		res.transition(domain.DetectorStatusCanceled)
	}
	return res
}

func (r *Result) transition(to domain.DetectorStatus) {
	if r.Status.CanTransition(to) {
		r.Status = to
	}
}

// Checks returns every check result, Required groups first.
func (r *Result) Checks() []check.Result {
	var out []check.Result
	for _, gr := range r.Required {
		out = append(out, gr.Results...)
	}
	for _, gr := range r.Optional {
		out = append(out, gr.Results...)
	}
	return out
}

// Report renders the result in its serialized form.
func (r *Result) Report() domain.DetectorReport {
	rep := domain.DetectorReport{
		Input:   r.Input,
		Found:   r.Found,
		Version: r.Version,
		Status:  r.Status,
		Checks:  []domain.CheckReport{},
	}
	if r.Definition != nil {
		rep.Name = r.Definition.Name
		rep.FrameworkID = r.Definition.FrameworkID
		rep.Category = r.Definition.Category
	}

	add := func(groups []GroupResult) {
		for _, gr := range groups {
			var kind GroupKind
			var subtitle string
			if gr.Group != nil {
				kind, subtitle = gr.Group.Kind, gr.Group.Subtitle
			}
			for _, cr := range gr.Results {
				entry := domain.CheckReport{
					Name:        cr.Name(),
					Description: cr.Description(),
					Status:      cr.Status(),
					Group:       string(kind),
					Subtitle:    subtitle,
				}
				if args := cr.Arguments(); args != nil {
					entry.InputArgs = args
				}
				if ev, ok := cr.Evidence(); ok {
					entry.OutputData = ev
				}
				rep.Checks = append(rep.Checks, entry)
			}
		}
	}
	add(r.Required)
	add(r.Optional)

	return rep
}
