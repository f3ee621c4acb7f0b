package engine

import (
	"log/slog"
	"time"

	"github.com/specvital/fwdetect/pkg/detector"
)

// Options configures engine behavior.
type Options struct {
	// Clock returns the run timestamp. Defaults to time.Now.
	Clock func() time.Time

	// Logger receives structured run diagnostics. Defaults to a discarding logger.
	Logger *slog.Logger

	// Progress receives the percentage of (detector, input) pairs evaluated.
	// Calls are serialized and values never decrease.
	Progress func(percent float64)

	// Registry supplies detectors to Run. If nil, uses detector.DefaultRegistry().
	Registry *detector.Registry

	// Timeout is the maximum duration of one run.
	// Zero or negative values use DefaultTimeout.
	Timeout time.Duration

	// ToolName and ToolVersion identify the producer in run reports.
	ToolName    string
	ToolVersion string

	// Workers is the number of (detector, input) pairs evaluated concurrently.
	// Zero or negative values use runtime.GOMAXPROCS(0).
	Workers int
}

// Option is a functional option for configuring Engine.
type Option func(*Options)

// WithWorkers sets the number of concurrently evaluated pairs.
// Negative values are ignored.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n >= 0 {
			o.Workers = n
		}
	}
}

// WithTimeout sets the run timeout.
// Negative values are ignored.
func WithTimeout(d time.Duration) Option {
	return func(o *Options) {
		if d >= 0 {
			o.Timeout = d
		}
	}
}

// WithProgress sets the progress callback.
func WithProgress(fn func(percent float64)) Option {
	return func(o *Options) {
		o.Progress = fn
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// WithRegistry sets the registry Run reads detectors from.
func WithRegistry(registry *detector.Registry) Option {
	return func(o *Options) {
		o.Registry = registry
	}
}

// WithToolInfo sets the tool identity reported in run results.
// Empty values keep the defaults.
func WithToolInfo(name, version string) Option {
	return func(o *Options) {
		if name != "" {
			o.ToolName = name
		}
		if version != "" {
			o.ToolVersion = version
		}
	}
}

// WithClock sets the time source used for run timestamps and durations.
func WithClock(clock func() time.Time) Option {
	return func(o *Options) {
		o.Clock = clock
	}
}

func applyDefaults(opts *Options) {
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	if opts.Registry == nil {
		opts.Registry = detector.DefaultRegistry()
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.ToolName == "" {
		opts.ToolName = DefaultToolName
	}
	if opts.ToolVersion == "" {
		opts.ToolVersion = DefaultToolVersion
	}
}
