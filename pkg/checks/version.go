package checks

import (
	"github.com/specvital/fwdetect/pkg/check"
	"github.com/specvital/fwdetect/pkg/datasource"
)

// Version providers for the built-in check kinds.
var (
	// ModuleFileVersion reads the file version of a matched module.
	ModuleFileVersion = check.VersionFrom[ModuleArgs](func(m datasource.ModuleRecord) string {
		return m.FileVersion
	})

	// ModuleProductVersion reads the product version of a matched module,
	// falling back to its file version.
	ModuleProductVersion = check.VersionFrom[ModuleArgs](func(m datasource.ModuleRecord) string {
		if m.ProductVersion != "" {
			return m.ProductVersion
		}
		return m.FileVersion
	})

	// DependencyMinVersion reads the minimum version of a matched package dependency.
	DependencyMinVersion = check.VersionFrom[DependencyArgs](func(r DependencyRecord) string {
		return r.Dependency.MinVersion
	})
)
