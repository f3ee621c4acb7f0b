package snapshot

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specvital/fwdetect/pkg/datasource"
)

func TestLoadFile(t *testing.T) {
	inputs, err := LoadFile(filepath.Join("testdata", "desktop.yaml"))
	require.NoError(t, err)
	require.Len(t, inputs, 3)

	proc := inputs[0]
	assert.Equal(t, "Contoso.Editor.exe", proc.Name())
	assert.Equal(t, datasource.KindProcess, proc.Kind())

	set := datasource.NewSet(proc)
	assert.Equal(t, []datasource.ID{datasource.Process}, set.Categories())

	sources := datasource.Lookup[datasource.ModuleSource](set, datasource.Process)
	require.Len(t, sources, 1)
	var names []string
	for m := range sources[0].Modules(context.Background()) {
		names = append(names, m.FileName)
	}
	assert.Equal(t, []string{"PresentationFramework.ni.dll", "EmbeddedBrowserWebView.dll"}, names)

	exe := inputs[1]
	assert.Equal(t, `C:\Program Files\Contoso\Contoso.Editor.exe`, exe.Name())
	assert.True(t, datasource.NewSet(exe).Has(datasource.Executable))

	pkg := datasource.Lookup[datasource.PackageSource](datasource.NewSet(inputs[2]), datasource.Package)
	require.Len(t, pkg, 1)
	for p := range pkg[0].Packages(context.Background()) {
		require.Len(t, p.Dependencies, 1)
		assert.Equal(t, "5001.159.55.0", p.Dependencies[0].MinVersion)
	}
}

func TestLoadFile_EmptySectionCountsAsCollected(t *testing.T) {
	inputs, err := LoadFile(filepath.Join("testdata", "empty_section.yaml"))
	require.NoError(t, err)
	require.Len(t, inputs, 1)

	set := datasource.NewSet(inputs[0])
	assert.True(t, set.Has(datasource.Process))
	assert.False(t, set.Has(datasource.Executable))
}

func TestLoadFile_Errors(t *testing.T) {
	_, err := LoadFile(filepath.Join("testdata", "unknown_kind.yaml"))
	assert.ErrorIs(t, err, ErrUnknownKind)
	assert.Contains(t, err.Error(), "unknown_kind.yaml")

	_, err = LoadFile(filepath.Join("testdata", "missing.yaml"))
	assert.Error(t, err)
}

func TestDecode_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr error
	}{
		{name: "empty document", doc: "", wantErr: ErrNoInputs},
		{name: "no inputs", doc: "inputs: []\n", wantErr: ErrNoInputs},
		{name: "missing name", doc: "inputs:\n  - kind: process\n"},
		{name: "unknown field", doc: "inputs:\n  - name: a\n    kind: process\n    registry: {}\n"},
		{name: "composite kind is not decodable", doc: "inputs:\n  - name: a\n    kind: composite\n", wantErr: ErrUnknownKind},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.doc))
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Decode() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestInput_Record(t *testing.T) {
	in := Input{
		Name:       "app.exe",
		Kind:       datasource.KindExecutable,
		Executable: &ExecutableSection{Exports: []datasource.FunctionRecord{{Module: "app.exe", Name: "DotNetRuntimeInfo"}}},
	}

	rec := in.Record()
	summary := datasource.Summarize(rec)
	assert.Equal(t, []string{"executable"}, summary.DataSources)
	assert.Equal(t, "executable", summary.Kind)
}
