// Package engine evaluates detector definitions against evidence snapshots.
package engine

import (
	"context"
	"errors"
	"log/slog"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/specvital/fwdetect/pkg/check"
	"github.com/specvital/fwdetect/pkg/datasource"
	"github.com/specvital/fwdetect/pkg/detector"
	"github.com/specvital/fwdetect/pkg/domain"
)

const (
	// DefaultWorkers indicates that the engine should use GOMAXPROCS as the worker count.
	DefaultWorkers = 0
	// DefaultTimeout is the default run timeout duration.
	DefaultTimeout = 5 * time.Minute
	// MaxWorkers is the maximum number of concurrent workers allowed.
	MaxWorkers = 1024
	// DefaultToolName is the tool name reported when none is configured.
	DefaultToolName = "fwdetect"
	// DefaultToolVersion is the tool version reported when none is configured.
	DefaultToolVersion = "dev"
)

var (
	// ErrRunCanceled is returned with a partial result when the run is canceled via context.
	ErrRunCanceled = errors.New("engine: run canceled")
	// ErrRunTimeout is returned with a partial result when the run exceeds its timeout.
	ErrRunTimeout = errors.New("engine: run timeout")
)

// Engine runs detectors against inputs. It holds no per-run state and is
// safe for concurrent use.
type Engine struct {
	options *Options
}

// RunResult is the outcome of one Evaluate call.
type RunResult struct {
	ToolName    string
	ToolVersion string
	Timestamp   time.Time
	// Inputs summarizes the inputs in the order they were supplied.
	Inputs []domain.InputSummary
	// Detectors holds one result per compatible (input, detector) pair,
	// ordered by input then detector.
	Detectors []*detector.Result
	Duration  time.Duration
}

// New creates an engine with the given options.
func New(opts ...Option) *Engine {
	options := &Options{}
	for _, opt := range opts {
		opt(options)
	}
	applyDefaults(options)
	return &Engine{options: options}
}

// Run evaluates every detector of the configured registry against inputs.
func (e *Engine) Run(ctx context.Context, inputs []datasource.Input) (*RunResult, error) {
	return e.Evaluate(ctx, e.options.Registry.All(), inputs)
}

type pair struct {
	slot  int
	def   *detector.Definition
	input datasource.Input
	set   *datasource.Set
}

// Evaluate runs defs against inputs:
//  1. Deduplicate detectors by name
//  2. Build one data source set per input before any check runs
//  3. Pair each detector with every input exposing a category it needs
//  4. Evaluate pairs in parallel, Required groups before Optional groups
//
// Check failures never surface as errors. When ctx is canceled or the
// timeout passes, unfinished checks settle Canceled and the partial result
// is returned together with ErrRunCanceled or ErrRunTimeout.
func (e *Engine) Evaluate(ctx context.Context, defs []*detector.Definition, inputs []datasource.Input) (*RunResult, error) {
	startTime := e.options.Clock()

	ctx, cancel := context.WithTimeout(ctx, e.options.Timeout)
	defer cancel()

	defs = dedupe(defs)
	result := &RunResult{
		ToolName:    e.options.ToolName,
		ToolVersion: e.options.ToolVersion,
		Timestamp:   startTime,
		Inputs:      []domain.InputSummary{},
		Detectors:   []*detector.Result{},
	}

	cache := newSetCache(len(inputs))
	var live []datasource.Input
	for _, in := range inputs {
		if in == nil {
			continue
		}
		cache.add(datasource.NewSet(in))
		live = append(live, in)
		result.Inputs = append(result.Inputs, datasource.Summarize(in))
	}

	var pairs []pair
	for i, in := range live {
		set := cache.get(i)
		for _, def := range defs {
			if !def.AppliesTo(set) {
				continue
			}
			pairs = append(pairs, pair{slot: len(pairs), def: def, input: in, set: set})
		}
	}

	e.options.Logger.Debug("run started",
		slog.Int("detectors", len(defs)),
		slog.Int("inputs", cache.size()),
		slog.Int("pairs", len(pairs)),
	)

	result.Detectors = e.evaluatePairs(ctx, pairs)
	result.Duration = e.options.Clock().Sub(startTime)

	found := 0
	for _, r := range result.Detectors {
		if r.Found {
			found++
		}
	}
	e.options.Logger.Info("run finished",
		slog.Int("results", len(result.Detectors)),
		slog.Int("found", found),
		slog.Duration("duration", result.Duration),
	)

	if err := ctx.Err(); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return result, ErrRunTimeout
		}
		return result, ErrRunCanceled
	}
	return result, nil
}

func (e *Engine) evaluatePairs(ctx context.Context, pairs []pair) []*detector.Result {
	workers := e.options.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > MaxWorkers {
		workers = MaxWorkers
	}

	sem := semaphore.NewWeighted(int64(workers))
	g, gCtx := errgroup.WithContext(ctx)
	tracker := newProgress(len(pairs), e.options.Progress)
	results := make([]*detector.Result, len(pairs))

	for _, p := range pairs {
		g.Go(func() error {
			defer tracker.advance()

			// A failed acquire means the run was canceled. The pair is still
			// reported, with every check settled Canceled.
			if err := sem.Acquire(gCtx, 1); err != nil {
				results[p.slot] = skipPair(p)
				return nil
			}
			defer sem.Release(1)

			results[p.slot] = e.evaluatePair(gCtx, p)
			return nil
		})
	}

	_ = g.Wait()
	tracker.finish()

	return results
}

func (e *Engine) evaluatePair(ctx context.Context, p pair) *detector.Result {
	required := runGroups(ctx, p.def.Required, p.set)
	optional := runGroups(ctx, p.def.Optional, p.set)

	res := detector.Aggregate(p.def, p.input.Name(), required, optional, ctx.Err() != nil)

	e.options.Logger.Debug("detector evaluated",
		slog.String("detector", p.def.Name),
		slog.String("input", p.input.Name()),
		slog.Bool("found", res.Found),
		slog.String("version", res.Version),
		slog.String("status", string(res.Status)),
	)
	return res
}

func skipPair(p pair) *detector.Result {
	skip := func(groups []*detector.Group) []detector.GroupResult {
		out := make([]detector.GroupResult, 0, len(groups))
		for _, g := range groups {
			results := make([]check.Result, 0, len(g.Checks))
			for _, c := range g.Checks {
				results = append(results, check.Skipped(c, domain.CheckStatusCanceled))
			}
			out = append(out, detector.GroupResult{Group: g, Results: results})
		}
		return out
	}
	return detector.Aggregate(p.def, p.input.Name(), skip(p.def.Required), skip(p.def.Optional), true)
}

func runGroups(ctx context.Context, groups []*detector.Group, set *datasource.Set) []detector.GroupResult {
	out := make([]detector.GroupResult, 0, len(groups))
	for _, g := range groups {
		out = append(out, runGroup(ctx, g, set))
	}
	return out
}

// runGroup evaluates the checks of one group concurrently. Results keep
// declaration order.
func runGroup(ctx context.Context, g *detector.Group, set *datasource.Set) detector.GroupResult {
	results := make([]check.Result, len(g.Checks))
	if len(g.Checks) == 1 {
		results[0] = g.Checks[0].Run(ctx, set)
		return detector.GroupResult{Group: g, Results: results}
	}

	var eg errgroup.Group
	for i, c := range g.Checks {
		eg.Go(func() error {
			results[i] = c.Run(ctx, set)
			return nil
		})
	}
	_ = eg.Wait()

	return detector.GroupResult{Group: g, Results: results}
}

func dedupe(defs []*detector.Definition) []*detector.Definition {
	seen := make(map[string]struct{}, len(defs))
	out := make([]*detector.Definition, 0, len(defs))
	for _, d := range defs {
		if d == nil {
			continue
		}
		if _, ok := seen[d.Name]; ok {
			continue
		}
		seen[d.Name] = struct{}{}
		out = append(out, d)
	}
	return out
}

// Report renders the run in its serialized form.
func (r *RunResult) Report() domain.RunReport {
	rep := domain.RunReport{
		ToolName:     r.ToolName,
		ToolVersion:  r.ToolVersion,
		Timestamp:    r.Timestamp,
		InputSummary: r.Inputs,
		Detectors:    make([]domain.DetectorReport, 0, len(r.Detectors)),
	}
	for _, d := range r.Detectors {
		rep.Detectors = append(rep.Detectors, d.Report())
	}
	return rep
}

// Found returns the results whose detector was found.
func (r *RunResult) Found() []*detector.Result {
	var out []*detector.Result
	for _, d := range r.Detectors {
		if d.Found {
			out = append(out, d)
		}
	}
	return out
}
