// Package wpf detects Windows Presentation Foundation.
package wpf

import (
	"github.com/specvital/fwdetect/pkg/checks"
	"github.com/specvital/fwdetect/pkg/detector"
	"github.com/specvital/fwdetect/pkg/domain"
)

const detectorName = "WPF"

func init() {
	detector.Register(NewDefinition())
}

func NewDefinition() *detector.Definition {
	return detector.New(detector.Info{
		Name:        detectorName,
		Description: "Windows Presentation Foundation",
		FrameworkID: detector.FrameworkWPF,
		Category:    domain.CategoryFramework,
	}).
		Required("", func(g *detector.RequiredGroup) {
			g.Add(checks.LoadedModule(checks.ModuleArgs{
				FileName:           "PresentationFramework.dll",
				IncludePrecompiled: true,
			})).BindVersion(checks.ModuleFileVersion)
		}).
		Optional("Core assemblies", func(g *detector.OptionalGroup) {
			g.Add(checks.LoadedModule(checks.ModuleArgs{FileName: "PresentationCore.dll", IncludePrecompiled: true}))
			g.Add(checks.LoadedModule(checks.ModuleArgs{FileName: "WindowsBase.dll", IncludePrecompiled: true}))
		}).
		Optional("Windows", func(g *detector.OptionalGroup) {
			g.Add(checks.ActiveWindow(checks.WindowArgs{ClassNamePart: "HwndWrapper["}))
		}).
		MustBuild()
}
