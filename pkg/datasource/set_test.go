package datasource

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSet_HasDistinguishesMissingFromEmpty(t *testing.T) {
	empty := NewRecord("app.exe", KindProcess, &ProcessData{})
	set := NewSet(empty)

	assert.True(t, set.Has(Process), "collected but empty category must be present")
	assert.False(t, set.Has(Executable), "never collected category must be absent")
	assert.Empty(t, Lookup[WindowSource](set, Executable))
	assert.Len(t, Lookup[WindowSource](set, Process), 1)
}

func TestSet_GroupsAcrossInputsInSnapshotOrder(t *testing.T) {
	first := &ProcessData{LoadedModules: []ModuleRecord{{FileName: "a.dll"}}}
	second := &ProcessData{LoadedModules: []ModuleRecord{{FileName: "b.dll"}}}
	exe := &ExecutableData{Imports: []FunctionRecord{{Module: "user32.dll", Name: "CreateWindowExW"}}}

	set := NewSet(
		NewRecord("p1", KindProcess, first),
		NewRecord("e1", KindExecutable, exe),
		NewRecord("p2", KindProcess, second),
	)

	sources := Lookup[ModuleSource](set, Process)
	require.Len(t, sources, 2)
	assert.Same(t, first, sources[0])
	assert.Same(t, second, sources[1])
	assert.Equal(t, []ID{Executable, Process}, set.Categories())
	assert.True(t, set.HasAny(Package, Executable))
	assert.False(t, set.HasAny(Package))
}

func TestLookup_FiltersByCapability(t *testing.T) {
	set := NewSet(NewRecord("x", KindExecutable, &ExecutableData{}))

	assert.Len(t, Lookup[ImportSource](set, Executable), 1)
	assert.Len(t, Lookup[ExportSource](set, Executable), 1)
	assert.Empty(t, Lookup[ModuleSource](set, Executable))
}

func TestSet_NilSafe(t *testing.T) {
	var set *Set
	assert.False(t, set.Has(Process))
	assert.Nil(t, set.Categories())
	assert.Nil(t, Lookup[ModuleSource](set, Process))
}

func TestMergeAndSummarize(t *testing.T) {
	proc := NewRecord("app.exe (42)", KindProcess, &ProcessData{})
	pkg := NewRecord("Contoso.App_1.0.0.0_x64", KindPackage, &PackageData{})

	merged := Merge("Contoso App", proc, nil, pkg)
	set := NewSet(merged)

	assert.Equal(t, KindComposite, merged.Kind())
	assert.True(t, set.Has(Process))
	assert.True(t, set.Has(Package))

	summary := Summarize(merged)
	assert.Equal(t, "composite", summary.Kind)
	assert.Equal(t, "Contoso App", summary.Name)
	assert.Equal(t, []string{"package", "process"}, summary.DataSources)
}

func TestFromSlice_StopsAfterCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	items := []int{1, 2, 3, 4}
	var got []int
	for v := range FromSlice(ctx, items) {
		got = append(got, v)
		if v == 2 {
			cancel()
		}
	}

	assert.Equal(t, []int{1, 2}, got)
}

func TestFromSlice_EarlyBreak(t *testing.T) {
	var got []string
	for v := range FromSlice(context.Background(), []string{"a", "b", "c"}) {
		got = append(got, v)
		if v == "b" {
			break
		}
	}
	assert.Equal(t, []string{"a", "b"}, got)
}
