// Package webview2 detects the Microsoft Edge WebView2 control.
package webview2

import (
	"github.com/specvital/fwdetect/pkg/checks"
	"github.com/specvital/fwdetect/pkg/detector"
	"github.com/specvital/fwdetect/pkg/domain"
)

const detectorName = "WebView2"

func init() {
	detector.Register(NewDefinition())
}

func NewDefinition() *detector.Definition {
	return detector.New(detector.Info{
		Name:        detectorName,
		Description: "Microsoft Edge WebView2",
		FrameworkID: detector.FrameworkWebView2,
		Category:    domain.CategoryComponent,
	}).
		Required("Loaded runtime", func(g *detector.RequiredGroup) {
			g.Add(checks.LoadedModule(checks.ModuleArgs{FileName: "EmbeddedBrowserWebView.dll"})).
				BindVersion(checks.ModuleFileVersion)
		}).
		Required("Loader import", func(g *detector.RequiredGroup) {
			g.Add(checks.ImportedFunction(checks.ImportArgs{
				Module:       "WebView2Loader.dll",
				FunctionPart: "CreateCoreWebView2Environment",
			}))
		}).
		Optional("Windows", func(g *detector.OptionalGroup) {
			g.Add(checks.ActiveWindow(checks.WindowArgs{ClassNamePart: "Chrome_WidgetWin_"}))
		}).
		MustBuild()
}
