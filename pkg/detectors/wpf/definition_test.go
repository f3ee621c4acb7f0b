package wpf

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

	assert.Equal(t, detectorName, def.Name)
	assert.Equal(t, detector.FrameworkWPF, def.FrameworkID)
	assert.Equal(t, domain.CategoryFramework, def.Category)
	assert.Len(t, def.Required, 1)
	assert.Len(t, def.Optional, 2)
	assert.Equal(t, []datasource.ID{datasource.Process}, def.DataSources())
}

func TestRegistered(t *testing.T) {
	assert.NotNil(t, detector.DefaultRegistry().Find(detectorName))
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name        string
		modules     []datasource.ModuleRecord
		wantFound   bool
		wantVersion string
	}{
		{
			name: "framework assembly",
			modules: []datasource.ModuleRecord{
				{FileName: "PresentationFramework.dll", Path: `C:\Windows\Microsoft.NET\assembly\GAC_MSIL\PresentationFramework\PresentationFramework.dll`, FileVersion: "4.8.9032.0"},
				{FileName: "PresentationCore.dll"},
			},
			wantFound:   true,
			wantVersion: "4.8.9032.0",
		},
		{
			name:        "native image",
			modules:     []datasource.ModuleRecord{{FileName: "PresentationFramework.ni.dll", FileVersion: "4.0.30319.42000"}},
			wantFound:   true,
			wantVersion: "4.0.30319.42000",
		},
		{
			name:    "core assembly only",
			modules: []datasource.ModuleRecord{{FileName: "PresentationCore.dll"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := datasource.NewRecord("app.exe", datasource.KindProcess, &datasource.ProcessData{LoadedModules: tt.modules})

			res, err := engine.New().Evaluate(context.Background(), []*detector.Definition{NewDefinition()}, []datasource.Input{in})
			require.NoError(t, err)
			require.Len(t, res.Detectors, 1)

			got := res.Detectors[0]
			assert.Equal(t, tt.wantFound, got.Found)
			assert.Equal(t, tt.wantVersion, got.Version)
			assert.Equal(t, domain.DetectorStatusCompleted, got.Status)
		})
	}
}
