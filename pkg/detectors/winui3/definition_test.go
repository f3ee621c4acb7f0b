package winui3

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specvital/fwdetect/pkg/datasource"
	"github.com/specvital/fwdetect/pkg/detector"
	"github.com/specvital/fwdetect/pkg/domain"
	"github.com/specvital/fwdetect/pkg/engine"
)

func TestNewDefinition(t *testing.T) {
	def := NewDefinition()

	assert.Equal(t, detector.FrameworkWinUI3, def.FrameworkID)
	assert.Equal(t, []datasource.ID{datasource.Package, datasource.Process}, def.DataSources())
}

func TestDetect(t *testing.T) {
	in := datasource.NewRecord("Contoso.Photos", datasource.KindProcess, &datasource.ProcessData{
		LoadedModules: []datasource.ModuleRecord{{
			FileName:       "Microsoft.UI.Xaml.dll",
			FileVersion:    "3.1.5.0",
			ProductVersion: "1.5.240607001",
		}},
		WindowList: []datasource.WindowRecord{{ClassName: "WinUIDesktopWin32WindowClass", Text: "Photos"}},
	})

	res, err := engine.New().Evaluate(context.Background(), []*detector.Definition{NewDefinition()}, []datasource.Input{in})
	require.NoError(t, err)
	require.Len(t, res.Detectors, 1)

	got := res.Detectors[0]
	assert.True(t, got.Found)
	assert.Equal(t, "1.5.240607001", got.Version)
	assert.Equal(t, domain.DetectorStatusCompleted, got.Status)

	// The package group has no evidence in a process-only input.
	require.Len(t, got.Optional, 2)
	assert.Equal(t, domain.CheckStatusError, got.Optional[1].Results[0].Status())
}

func TestDetect_PackageOnly(t *testing.T) {
	in := datasource.NewRecord("Contoso.Photos", datasource.KindPackage, &datasource.PackageData{
		PackageList: []datasource.PackageRecord{{
			Name:         "Contoso.Photos",
			Dependencies: []datasource.PackageDependency{{Name: "Microsoft.WindowsAppRuntime.1.5", MinVersion: "5001.159.55.0"}},
		}},
	})

	res, err := engine.New().Evaluate(context.Background(), []*detector.Definition{NewDefinition()}, []datasource.Input{in})
	require.NoError(t, err)
	require.Len(t, res.Detectors, 1)

	got := res.Detectors[0]
	assert.False(t, got.Found)
	assert.Equal(t, domain.CheckStatusError, got.Required[0].Results[0].Status())
	assert.Equal(t, domain.CheckStatusCompletedPassed, got.Optional[1].Results[0].Status())
}
