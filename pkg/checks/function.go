package checks

import (
	"context"
	"iter"

	"github.com/specvital/fwdetect/pkg/check"
	"github.com/specvital/fwdetect/pkg/check/match"
	"github.com/specvital/fwdetect/pkg/datasource"
)

// ImportArgs selects a function imported by the executable.
type ImportArgs struct {
	// Module must equal the name of the module the function is imported from.
	Module string `json:"module,omitempty"`
	// FunctionPart must be contained in the function name.
	FunctionPart string `json:"functionPart,omitempty"`
	// IncludePrecompiled also accepts the precompiled alias of Module.
	IncludePrecompiled bool `json:"includePrecompiled,omitempty"`
}

func (a ImportArgs) Description() string {
	return describe("module", a.Module, "functionPart", a.FunctionPart)
}

func (a ImportArgs) Validate() error {
	if a.Module == "" && a.FunctionPart == "" {
		return errNoPredicate
	}
	return nil
}

func (a ImportArgs) matches(f datasource.FunctionRecord) bool {
	if a.Module != "" && !match.FileNameMatches(f.Module, a.Module, a.IncludePrecompiled) {
		return false
	}
	return optionalContains(f.Name, a.FunctionPart)
}

// ExportArgs selects a function exported by the executable.
type ExportArgs struct {
	// FunctionPart must be contained in the function name.
	FunctionPart string `json:"functionPart"`
}

func (a ExportArgs) Description() string {
	return describe("functionPart", a.FunctionPart)
}

func (a ExportArgs) Validate() error {
	if a.FunctionPart == "" {
		return errNoPredicate
	}
	return nil
}

// ImportCheck and ExportCheck are the executable symbol check kinds.
type (
	ImportCheck = check.Definition[ImportArgs, datasource.FunctionRecord]
	ExportCheck = check.Definition[ExportArgs, datasource.FunctionRecord]
)

var importedFunction = &check.Registration[ImportArgs, datasource.FunctionRecord]{
	Name:        "Find imported function",
	Description: "Search the executable imports for %s",
	DataSources: []datasource.ID{datasource.Executable},
	Evaluate: func(ctx context.Context, args ImportArgs, set *datasource.Set, out *check.Outcome[ImportArgs, datasource.FunctionRecord]) {
		sources := datasource.Lookup[datasource.ImportSource](set, datasource.Executable)
		rec, ok := check.FirstAcross(ctx, sources,
			func(s datasource.ImportSource) iter.Seq[datasource.FunctionRecord] { return s.ImportedFunctions(ctx) },
			args.matches,
		)
		if ok {
			out.Pass(rec)
		}
	},
}

var exportedFunction = &check.Registration[ExportArgs, datasource.FunctionRecord]{
	Name:        "Find exported function",
	Description: "Search the executable exports for %s",
	DataSources: []datasource.ID{datasource.Executable},
	Evaluate: func(ctx context.Context, args ExportArgs, set *datasource.Set, out *check.Outcome[ExportArgs, datasource.FunctionRecord]) {
		sources := datasource.Lookup[datasource.ExportSource](set, datasource.Executable)
		rec, ok := check.FirstAcross(ctx, sources,
			func(s datasource.ExportSource) iter.Seq[datasource.FunctionRecord] { return s.ExportedFunctions(ctx) },
			func(f datasource.FunctionRecord) bool { return match.ContainsFold(f.Name, args.FunctionPart) },
		)
		if ok {
			out.Pass(rec)
		}
	},
}

// ImportedFunction checks that the executable imports a function matching args.
func ImportedFunction(args ImportArgs) *ImportCheck {
	return check.New(importedFunction, args)
}

// ExportedFunction checks that the executable exports a function matching args.
func ExportedFunction(args ExportArgs) *ExportCheck {
	return check.New(exportedFunction, args)
}
