// Package winforms detects Windows Forms.
package winforms

import (
	"github.com/specvital/fwdetect/pkg/checks"
	"github.com/specvital/fwdetect/pkg/detector"
	"github.com/specvital/fwdetect/pkg/domain"
)

const detectorName = "WinForms"

func init() {
	detector.Register(NewDefinition())
}

func NewDefinition() *detector.Definition {
	return detector.New(detector.Info{
		Name:        detectorName,
		Description: "Windows Forms",
		FrameworkID: detector.FrameworkWinForms,
		Category:    domain.CategoryFramework,
	}).
		Required("", func(g *detector.RequiredGroup) {
			g.Add(checks.LoadedModule(checks.ModuleArgs{
				FileName:           "System.Windows.Forms.dll",
				IncludePrecompiled: true,
			})).BindVersion(checks.ModuleFileVersion)
		}).
		Optional("Windows", func(g *detector.OptionalGroup) {
			// Class names look like WindowsForms10.Window.8.app.0.141b42a_r8_ad1.
			g.Add(checks.ActiveWindow(checks.WindowArgs{ClassNamePart: "WindowsForms10."}))
		}).
		MustBuild()
}
