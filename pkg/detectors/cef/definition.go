// Package cef detects the Chromium Embedded Framework.
package cef

import (
	"github.com/specvital/fwdetect/pkg/checks"
	"github.com/specvital/fwdetect/pkg/detector"
	"github.com/specvital/fwdetect/pkg/domain"
)

const detectorName = "CEF"

func init() {
	detector.Register(NewDefinition())
}

func NewDefinition() *detector.Definition {
	return detector.New(detector.Info{
		Name:        detectorName,
		Description: "Chromium Embedded Framework",
		FrameworkID: detector.FrameworkCEF,
		Category:    domain.CategoryComponent,
	}).
		Required("", func(g *detector.RequiredGroup) {
			g.Add(checks.LoadedModule(checks.ModuleArgs{FileName: "libcef.dll"})).
				BindVersion(checks.ModuleFileVersion)
		}).
		Optional("Entry points", func(g *detector.OptionalGroup) {
			g.Add(checks.ImportedFunction(checks.ImportArgs{Module: "libcef.dll", FunctionPart: "cef_initialize"}))
		}).
		MustBuild()
}
