package checks

import (
	"context"
	"iter"

	"github.com/specvital/fwdetect/pkg/check"
	"github.com/specvital/fwdetect/pkg/check/match"
	"github.com/specvital/fwdetect/pkg/datasource"
)

// DependencyArgs selects a dependency declared by an installed package.
type DependencyArgs struct {
	// Name must equal the dependency name.
	Name string `json:"name,omitempty"`
	// NamePart must be contained in the dependency name.
	NamePart string `json:"namePart,omitempty"`
	// VersionRange constrains the declared minimum version.
	VersionRange string `json:"versionRange,omitempty"`
}

func (a DependencyArgs) Description() string {
	return describe("name", a.Name, "namePart", a.NamePart, "version", a.VersionRange)
}

func (a DependencyArgs) Validate() error {
	if a.Name == "" && a.NamePart == "" {
		return errNoPredicate
	}
	return validateRange("versionRange", a.VersionRange)
}

func (a DependencyArgs) matches(d datasource.PackageDependency) bool {
	return optionalEqual(d.Name, a.Name) &&
		optionalContains(d.Name, a.NamePart) &&
		match.VersionInRange(d.MinVersion, a.VersionRange)
}

// DependencyRecord is the evidence produced by a package dependency check.
type DependencyRecord struct {
	Package    string                       `json:"package"`
	Dependency datasource.PackageDependency `json:"dependency"`
}

// DependencyCheck is the package dependency check kind.
type DependencyCheck = check.Definition[DependencyArgs, DependencyRecord]

var packageDependency = &check.Registration[DependencyArgs, DependencyRecord]{
	Name:        "Find package dependency",
	Description: "Search installed package dependencies for %s",
	DataSources: []datasource.ID{datasource.Package},
	Evaluate: func(ctx context.Context, args DependencyArgs, set *datasource.Set, out *check.Outcome[DependencyArgs, DependencyRecord]) {
		sources := datasource.Lookup[datasource.PackageSource](set, datasource.Package)
		rec, ok := check.FirstAcross(ctx, sources,
			func(s datasource.PackageSource) iter.Seq[DependencyRecord] { return dependencies(ctx, s) },
			func(r DependencyRecord) bool { return args.matches(r.Dependency) },
		)
		if ok {
			out.Pass(rec)
		}
	},
}

// dependencies flattens the dependencies of every package in s.
func dependencies(ctx context.Context, s datasource.PackageSource) iter.Seq[DependencyRecord] {
	return func(yield func(DependencyRecord) bool) {
		for pkg := range s.Packages(ctx) {
			for _, dep := range pkg.Dependencies {
				if ctx.Err() != nil {
					return
				}
				if !yield(DependencyRecord{Package: pkg.FullName, Dependency: dep}) {
					return
				}
			}
		}
	}
}

// PackageDependency checks that an installed package declares a dependency matching args.
func PackageDependency(args DependencyArgs) *DependencyCheck {
	return check.New(packageDependency, args)
}
