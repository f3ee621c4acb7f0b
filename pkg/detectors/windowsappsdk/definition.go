// Package windowsappsdk detects the Windows App SDK.
package windowsappsdk

import (
	"github.com/specvital/fwdetect/pkg/checks"
	"github.com/specvital/fwdetect/pkg/detector"
	"github.com/specvital/fwdetect/pkg/domain"
)

const detectorName = "Windows App SDK"

func init() {
	detector.Register(NewDefinition())
}

func NewDefinition() *detector.Definition {
	return detector.New(detector.Info{
		Name:        detectorName,
		Description: "Windows App SDK runtime",
		FrameworkID: detector.FrameworkWindowsAppSDK,
		Category:    domain.CategoryLibrary,
	}).
		Required("Packaged", func(g *detector.RequiredGroup) {
			g.Add(checks.PackageDependency(checks.DependencyArgs{NamePart: "Microsoft.WindowsAppRuntime"})).
				BindVersion(checks.DependencyMinVersion)
		}).
		Required("Unpackaged bootstrap", func(g *detector.RequiredGroup) {
			g.Add(checks.LoadedModule(checks.ModuleArgs{FileName: "Microsoft.WindowsAppRuntime.Bootstrap.dll"})).
				BindVersion(checks.ModuleFileVersion)
		}).
		MustBuild()
}
