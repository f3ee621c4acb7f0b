package domain

import "time"

// InputSummary describes one evidence snapshot that took part in a run.
type InputSummary struct {
	// Kind is the perspective the snapshot was taken from (process, package, executable).
	Kind string `json:"kind"`
	// Name identifies the snapshot (process name, package full name, file path).
	Name string `json:"name"`
	// DataSources lists the evidence categories the snapshot exposes.
	DataSources []string `json:"dataSources"`
}

// CheckReport is the serialized form of one check result.
type CheckReport struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Status      CheckStatus `json:"status"`
	// Group is "required" or "optional".
	Group    string `json:"group"`
	Subtitle string `json:"subtitle,omitempty"`
	// InputArgs holds the check arguments.
	InputArgs any `json:"inputArgs,omitempty"`
	// OutputData holds the evidence record that satisfied the check.
	OutputData any `json:"outputData,omitempty"`
}

// DetectorReport is the serialized form of one detector evaluated against one input.
type DetectorReport struct {
	Name        string           `json:"name"`
	FrameworkID string           `json:"frameworkId"`
	Category    DetectorCategory `json:"category"`
	Input       string           `json:"input"`
	Found       bool             `json:"found"`
	Version     string           `json:"version"`
	Status      DetectorStatus   `json:"status"`
	Checks      []CheckReport    `json:"checks"`
}

// RunReport is the top-level result handed to downstream consumers.
type RunReport struct {
	ToolName     string           `json:"toolName"`
	ToolVersion  string           `json:"toolVersion"`
	Timestamp    time.Time        `json:"timestamp"`
	InputSummary []InputSummary   `json:"inputSummary"`
	Detectors    []DetectorReport `json:"detectors"`
}

// FoundFrameworks returns the distinct framework ids that were found, in report order.
func (r RunReport) FoundFrameworks() []string {
	var ids []string
	seen := make(map[string]struct{})
	for _, d := range r.Detectors {
		if !d.Found {
			continue
		}
		if _, ok := seen[d.FrameworkID]; ok {
			continue
		}
		seen[d.FrameworkID] = struct{}{}
		ids = append(ids, d.FrameworkID)
	}
	return ids
}
