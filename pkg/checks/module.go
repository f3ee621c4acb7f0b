package checks

import (
	"context"
	"errors"
	"iter"

	"github.com/specvital/fwdetect/pkg/check"
	"github.com/specvital/fwdetect/pkg/check/match"
	"github.com/specvital/fwdetect/pkg/datasource"
)

// ModuleArgs selects a module loaded by the target process.
type ModuleArgs struct {
	// FileName must equal the module file name.
	FileName string `json:"fileName,omitempty"`
	// NamePart must be contained in the module file name.
	NamePart string `json:"namePart,omitempty"`
	// PathPattern is a doublestar glob the module path must match.
	PathPattern string `json:"pathPattern,omitempty"`
	// FileVersionRange constrains the module file version, e.g. ">= 4.0".
	FileVersionRange string `json:"fileVersionRange,omitempty"`
	// ProductVersionRange constrains the module product version.
	ProductVersionRange string `json:"productVersionRange,omitempty"`
	// IncludePrecompiled also accepts the precompiled alias of FileName.
	IncludePrecompiled bool `json:"includePrecompiled,omitempty"`
}

func (a ModuleArgs) Description() string {
	return describe(
		"fileName", a.FileName,
		"namePart", a.NamePart,
		"pathPattern", a.PathPattern,
		"fileVersion", a.FileVersionRange,
		"productVersion", a.ProductVersionRange,
	)
}

func (a ModuleArgs) Validate() error {
	if a.FileName == "" && a.NamePart == "" && a.PathPattern == "" {
		return errNoPredicate
	}
	if a.PathPattern != "" && !match.ValidGlob(a.PathPattern) {
		return errors.New("pathPattern: malformed glob")
	}
	if err := validateRange("fileVersionRange", a.FileVersionRange); err != nil {
		return err
	}
	return validateRange("productVersionRange", a.ProductVersionRange)
}

func (a ModuleArgs) matches(m datasource.ModuleRecord) bool {
	if a.FileName != "" && !match.FileNameMatches(m.FileName, a.FileName, a.IncludePrecompiled) {
		return false
	}
	if !optionalContains(m.FileName, a.NamePart) {
		return false
	}
	if a.PathPattern != "" && !match.Glob(a.PathPattern, m.Path) {
		return false
	}
	if !match.VersionInRange(m.FileVersion, a.FileVersionRange) {
		return false
	}
	return match.VersionInRange(m.ProductVersion, a.ProductVersionRange)
}

// ModuleCheck is the loaded-module check kind.
type ModuleCheck = check.Definition[ModuleArgs, datasource.ModuleRecord]

var loadedModule = &check.Registration[ModuleArgs, datasource.ModuleRecord]{
	Name:        "Find loaded module",
	Description: "Search the process for a loaded module with %s",
	DataSources: []datasource.ID{datasource.Process},
	Evaluate: func(ctx context.Context, args ModuleArgs, set *datasource.Set, out *check.Outcome[ModuleArgs, datasource.ModuleRecord]) {
		sources := datasource.Lookup[datasource.ModuleSource](set, datasource.Process)
		rec, ok := check.FirstAcross(ctx, sources,
			func(s datasource.ModuleSource) iter.Seq[datasource.ModuleRecord] { return s.Modules(ctx) },
			args.matches,
		)
		if ok {
			out.Pass(rec)
		}
	},
}

// LoadedModule checks that the process has loaded a module matching args.
func LoadedModule(args ModuleArgs) *ModuleCheck {
	return check.New(loadedModule, args)
}
