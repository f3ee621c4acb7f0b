// Package dotnet detects the .NET (Core) runtime.
package dotnet

import (
	"github.com/specvital/fwdetect/pkg/checks"
	"github.com/specvital/fwdetect/pkg/detector"
	"github.com/specvital/fwdetect/pkg/domain"
)

const detectorName = ".NET"

func init() {
	detector.Register(NewDefinition())
}

func NewDefinition() *detector.Definition {
	return detector.New(detector.Info{
		Name:        detectorName,
		Description: ".NET runtime (CoreCLR)",
		FrameworkID: detector.FrameworkDotNet,
		Category:    domain.CategoryRuntime,
	}).
		Required("CoreCLR", func(g *detector.RequiredGroup) {
			g.Add(checks.LoadedModule(checks.ModuleArgs{FileName: "coreclr.dll"})).
				BindVersion(checks.ModuleProductVersion)
		}).
		Required("Host resolver", func(g *detector.RequiredGroup) {
			g.Add(checks.LoadedModule(checks.ModuleArgs{FileName: "hostfxr.dll"})).
				BindVersion(checks.ModuleProductVersion)
		}).
		Optional("Single-file host", func(g *detector.OptionalGroup) {
			g.Add(checks.ExportedFunction(checks.ExportArgs{FunctionPart: "DotNetRuntimeInfo"}))
		}).
		MustBuild()
}
