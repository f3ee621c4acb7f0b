// Package winui3 detects WinUI 3.
package winui3

import (
	"github.com/specvital/fwdetect/pkg/checks"
	"github.com/specvital/fwdetect/pkg/detector"
	"github.com/specvital/fwdetect/pkg/domain"
)

const detectorName = "WinUI 3"

func init() {
	detector.Register(NewDefinition())
}

func NewDefinition() *detector.Definition {
	return detector.New(detector.Info{
		Name:        detectorName,
		Description: "WinUI 3 (Windows App SDK XAML)",
		FrameworkID: detector.FrameworkWinUI3,
		Category:    domain.CategoryFramework,
	}).
		Required("", func(g *detector.RequiredGroup) {
			g.Add(checks.LoadedModule(checks.ModuleArgs{FileName: "Microsoft.UI.Xaml.dll"})).
				BindVersion(checks.ModuleProductVersion)
		}).
		Optional("Windows", func(g *detector.OptionalGroup) {
			g.Add(checks.ActiveWindow(checks.WindowArgs{ClassName: "WinUIDesktopWin32WindowClass"}))
		}).
		Optional("Package", func(g *detector.OptionalGroup) {
			g.Add(checks.PackageDependency(checks.DependencyArgs{NamePart: "Microsoft.WindowsAppRuntime"}))
		}).
		MustBuild()
}
