package datasource

import (
	"context"
	"iter"
)

// ProcessData is in-memory process evidence: loaded modules and windows.
type ProcessData struct {
	LoadedModules []ModuleRecord
	WindowList    []WindowRecord
}

func (p *ProcessData) Category() ID { return Process }

func (p *ProcessData) Modules(ctx context.Context) iter.Seq[ModuleRecord] {
	return FromSlice(ctx, p.LoadedModules)
}

func (p *ProcessData) Windows(ctx context.Context) iter.Seq[WindowRecord] {
	return FromSlice(ctx, p.WindowList)
}

// ExecutableData is in-memory evidence parsed from an executable file header.
type ExecutableData struct {
	Imports []FunctionRecord
	Exports []FunctionRecord
}

func (e *ExecutableData) Category() ID { return Executable }

func (e *ExecutableData) ImportedFunctions(ctx context.Context) iter.Seq[FunctionRecord] {
	return FromSlice(ctx, e.Imports)
}

func (e *ExecutableData) ExportedFunctions(ctx context.Context) iter.Seq[FunctionRecord] {
	return FromSlice(ctx, e.Exports)
}

// PackageData is in-memory installed package evidence.
type PackageData struct {
	PackageList []PackageRecord
}

func (p *PackageData) Category() ID { return Package }

func (p *PackageData) Packages(ctx context.Context) iter.Seq[PackageRecord] {
	return FromSlice(ctx, p.PackageList)
}

// FromSlice returns a lazy sequence over items that stops yielding once ctx
// is done. The context is checked before every item.
func FromSlice[T any](ctx context.Context, items []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range items {
			if ctx.Err() != nil {
				return
			}
			if !yield(item) {
				return
			}
		}
	}
}
