// Package datasource provides the evidence model checks evaluate against.
//
// Evidence is collected by external collaborators before a run starts and
// exposed through capability interfaces grouped by category. Every value in
// this package is read-only once constructed.
package datasource

import (
	"context"
	"iter"
)

// ID identifies a data source category. Sources contributed by different
// input records share an ID when they carry the same kind of evidence.
type ID string

// Well-known data source categories.
const (
	Process    ID = "process"
	Executable ID = "executable"
	Package    ID = "package"
)

// Source is one facet of evidence exposed by an input record.
type Source interface {
	Category() ID
}

// ModuleSource exposes modules loaded into, or statically linked by, the target.
type ModuleSource interface {
	Source
	Modules(ctx context.Context) iter.Seq[ModuleRecord]
}

// WindowSource exposes top-level windows owned by the target.
type WindowSource interface {
	Source
	Windows(ctx context.Context) iter.Seq[WindowRecord]
}

// ImportSource exposes functions imported by an executable.
type ImportSource interface {
	Source
	ImportedFunctions(ctx context.Context) iter.Seq[FunctionRecord]
}

// ExportSource exposes functions exported by an executable.
type ExportSource interface {
	Source
	ExportedFunctions(ctx context.Context) iter.Seq[FunctionRecord]
}

// PackageSource exposes installed package metadata.
type PackageSource interface {
	Source
	Packages(ctx context.Context) iter.Seq[PackageRecord]
}

// ModuleRecord describes one module (DLL, shared object).
type ModuleRecord struct {
	FileName       string `json:"fileName" yaml:"fileName"`
	Path           string `json:"path,omitempty" yaml:"path"`
	FileVersion    string `json:"fileVersion,omitempty" yaml:"fileVersion"`
	ProductVersion string `json:"productVersion,omitempty" yaml:"productVersion"`
}

// WindowRecord describes one window.
type WindowRecord struct {
	ClassName string `json:"className" yaml:"className"`
	Text      string `json:"text,omitempty" yaml:"text"`
}

// FunctionRecord describes one imported or exported function.
type FunctionRecord struct {
	// Module is the file the function is imported from or exported by.
	Module string `json:"module,omitempty" yaml:"module"`
	Name   string `json:"name" yaml:"name"`
}

// PackageDependency is one dependency declared by an installed package.
type PackageDependency struct {
	Name       string `json:"name" yaml:"name"`
	MinVersion string `json:"minVersion,omitempty" yaml:"minVersion"`
}

// PackageRecord describes one installed package.
type PackageRecord struct {
	FullName     string              `json:"fullName" yaml:"fullName"`
	Name         string              `json:"name" yaml:"name"`
	Version      string              `json:"version,omitempty" yaml:"version"`
	Publisher    string              `json:"publisher,omitempty" yaml:"publisher"`
	Dependencies []PackageDependency `json:"dependencies,omitempty" yaml:"dependencies"`
}
