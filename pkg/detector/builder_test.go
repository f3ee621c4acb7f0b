package detector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specvital/fwdetect/pkg/check"
	"github.com/specvital/fwdetect/pkg/checks"
	"github.com/specvital/fwdetect/pkg/datasource"
	"github.com/specvital/fwdetect/pkg/domain"
)

var wpfInfo = Info{
	Name:        "WPF",
	Description: "Windows Presentation Foundation",
	FrameworkID: FrameworkWPF,
	Category:    domain.CategoryFramework,
}

func TestBuilder_Build(t *testing.T) {
	def, err := New(wpfInfo).
		Required("", func(g *RequiredGroup) {
			g.Add(checks.LoadedModule(checks.ModuleArgs{FileName: "PresentationFramework.dll"})).
				BindVersion(checks.ModuleFileVersion)
		}).
		Optional("Windows", func(g *OptionalGroup) {
			g.Add(checks.ActiveWindow(checks.WindowArgs{ClassNamePart: "HwndWrapper"}))
		}).
		Build()

	require.NoError(t, err)
	require.Len(t, def.Required, 1)
	require.Len(t, def.Optional, 1)
	assert.Equal(t, GroupRequired, def.Required[0].Kind)
	assert.Equal(t, "Windows", def.Optional[0].Subtitle)

	idx, provider, ok := def.Required[0].VersionSource()
	require.True(t, ok)
	assert.Equal(t, 0, idx)
	assert.NotNil(t, provider)
	assert.Equal(t, []datasource.ID{datasource.Process}, def.DataSources())
}

func TestBuilder_ZeroRequiredChecks(t *testing.T) {
	_, err := New(wpfInfo).
		Optional("", func(g *OptionalGroup) {
			g.Add(checks.ActiveWindow(checks.WindowArgs{ClassName: "x"}))
		}).
		Build()

	assert.ErrorIs(t, err, ErrNoRequiredChecks)
}

func TestBuilder_EmptyRequiredGroup(t *testing.T) {
	_, err := New(wpfInfo).Required("empty", nil).Build()

	assert.ErrorIs(t, err, ErrEmptyRequiredGroup)
	var be *BuildError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, "required[0]", be.Group)
}

func TestBuilder_VersionOnEmptyGroup(t *testing.T) {
	_, err := New(wpfInfo).
		Required("", func(g *RequiredGroup) {
			g.BindVersion(checks.ModuleFileVersion)
			g.Add(checks.LoadedModule(checks.ModuleArgs{FileName: "PresentationFramework.dll"}))
		}).
		Build()

	assert.ErrorIs(t, err, ErrVersionOnEmptyGroup)
}

func TestBuilder_VersionProviderMismatch(t *testing.T) {
	_, err := New(wpfInfo).
		Required("", func(g *RequiredGroup) {
			g.Add(checks.ActiveWindow(checks.WindowArgs{ClassName: "HwndWrapper"})).
				BindVersion(checks.ModuleFileVersion)
		}).
		Build()

	assert.ErrorIs(t, err, ErrVersionProviderMismatch)
}

func TestBuilder_VersionAlreadyBound(t *testing.T) {
	_, err := New(wpfInfo).
		Required("", func(g *RequiredGroup) {
			g.Add(checks.LoadedModule(checks.ModuleArgs{FileName: "a.dll"})).BindVersion(checks.ModuleFileVersion)
			g.Add(checks.LoadedModule(checks.ModuleArgs{FileName: "b.dll"})).BindVersion(checks.ModuleFileVersion)
		}).
		Build()

	assert.ErrorIs(t, err, ErrVersionAlreadyBound)
}

func TestBuilder_InvalidArgsLocalizedToCheck(t *testing.T) {
	_, err := New(wpfInfo).
		Required("", func(g *RequiredGroup) {
			g.Add(checks.LoadedModule(checks.ModuleArgs{FileName: "a.dll"}))
			g.Add(checks.LoadedModule(checks.ModuleArgs{}))
		}).
		Build()

	require.Error(t, err)
	assert.ErrorIs(t, err, check.ErrInvalidArgs)

	var be *BuildError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, "WPF", be.Detector)
	assert.Equal(t, "required[0]", be.Group)
	assert.Equal(t, "Find loaded module", be.Check)
	assert.Contains(t, be.Error(), `check "Find loaded module"`)
}

func TestBuilder_BindAfterRejectedCheckDoesNotRetarget(t *testing.T) {
	b := New(wpfInfo).
		Required("", func(g *RequiredGroup) {
			g.Add(checks.ActiveWindow(checks.WindowArgs{ClassName: "x"}))
			g.Add(checks.LoadedModule(checks.ModuleArgs{})).BindVersion(checks.ModuleFileVersion)
		})

	_, err := b.Build()
	assert.ErrorIs(t, err, check.ErrInvalidArgs)
	assert.NotErrorIs(t, err, ErrVersionProviderMismatch)
}

func TestBuilder_BindAfterRejectedFirstCheck(t *testing.T) {
	_, err := New(wpfInfo).
		Required("", func(g *RequiredGroup) {
			g.Add(checks.LoadedModule(checks.ModuleArgs{})).BindVersion(checks.ModuleFileVersion)
		}).
		Build()

	assert.ErrorIs(t, err, check.ErrInvalidArgs)
	assert.NotErrorIs(t, err, ErrVersionOnEmptyGroup, "the rejected check is reported once")
}

func TestBuilder_BuiltDefinitionIsUnaffectedByLaterCalls(t *testing.T) {
	var group *RequiredGroup
	b := New(wpfInfo).
		Required("", func(g *RequiredGroup) {
			group = g
			g.Add(checks.LoadedModule(checks.ModuleArgs{FileName: "a.dll"}))
		}).
		Optional("Windows", func(g *OptionalGroup) {
			g.Add(checks.ActiveWindow(checks.WindowArgs{ClassName: "x"}))
		}).
		Optional("empty", nil)

	def, err := b.Build()
	require.NoError(t, err)

	b.Required("", func(g *RequiredGroup) {
		g.Add(checks.LoadedModule(checks.ModuleArgs{FileName: "b.dll"}))
	})
	b.Optional("later", func(g *OptionalGroup) {
		g.Add(checks.ActiveWindow(checks.WindowArgs{ClassName: "y"}))
	})
	group.Add(checks.LoadedModule(checks.ModuleArgs{FileName: "c.dll"})).BindVersion(checks.ModuleFileVersion)

	require.Len(t, def.Required, 1)
	assert.Len(t, def.Required[0].Checks, 1)
	_, _, bound := def.Required[0].VersionSource()
	assert.False(t, bound)
	require.Len(t, def.Optional, 1)
	assert.Equal(t, "Windows", def.Optional[0].Subtitle)

	again, err := b.Build()
	require.NoError(t, err)
	assert.Len(t, again.Required, 2)
	assert.Len(t, again.Optional, 2, "empty groups are dropped from the result only")
	assert.Len(t, again.Required[0].Checks, 2)
}

func TestBuilder_NilCheck(t *testing.T) {
	_, err := New(wpfInfo).
		Required("", func(g *RequiredGroup) { g.Add(nil) }).
		Build()

	assert.ErrorIs(t, err, ErrNilCheck)
	assert.ErrorIs(t, err, ErrEmptyRequiredGroup)
}

func TestBuilder_Identity(t *testing.T) {
	required := func(g *RequiredGroup) {
		g.Add(checks.LoadedModule(checks.ModuleArgs{FileName: "a.dll"}))
	}

	_, err := New(Info{Name: "x"}).Required("", required).Build()
	assert.ErrorIs(t, err, ErrMissingIdentity)

	_, err = New(Info{Name: "x", FrameworkID: "x", Category: "toolkit"}).Required("", required).Build()
	assert.ErrorIs(t, err, ErrInvalidCategory)

	def, err := New(Info{Name: "x", FrameworkID: "x"}).Required("", required).Build()
	require.NoError(t, err)
	assert.Equal(t, domain.CategoryFramework, def.Category, "category defaults to framework")
}

func TestBuilder_DropsEmptyOptionalGroups(t *testing.T) {
	def, err := New(wpfInfo).
		Required("", func(g *RequiredGroup) {
			g.Add(checks.LoadedModule(checks.ModuleArgs{FileName: "a.dll"}))
		}).
		Optional("nothing", nil).
		Build()

	require.NoError(t, err)
	assert.Empty(t, def.Optional)
}

func TestBuilder_MustBuildPanics(t *testing.T) {
	assert.Panics(t, func() {
		New(wpfInfo).MustBuild()
	})
}

func TestDefinition_AppliesTo(t *testing.T) {
	def := New(wpfInfo).
		Required("", func(g *RequiredGroup) {
			g.Add(checks.LoadedModule(checks.ModuleArgs{FileName: "a.dll"}))
		}).
		Optional("", func(g *OptionalGroup) {
			g.Add(checks.PackageDependency(checks.DependencyArgs{Name: "b"}))
		}).
		MustBuild()

	pkgOnly := datasource.NewSet(datasource.NewRecord("pkg", datasource.KindPackage, &datasource.PackageData{}))
	exeOnly := datasource.NewSet(datasource.NewRecord("exe", datasource.KindExecutable, &datasource.ExecutableData{}))

	assert.True(t, def.AppliesTo(pkgOnly))
	assert.False(t, def.AppliesTo(exeOnly))
	assert.Equal(t, []datasource.ID{datasource.Package, datasource.Process}, def.DataSources())
}
