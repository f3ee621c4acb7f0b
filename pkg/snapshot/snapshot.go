// Package snapshot decodes evidence snapshots stored as YAML into input records.
//
// A snapshot lists inputs. Each present section (process, executable, package)
// becomes one in-memory data source of that category, so an empty section such
// as "process: {}" still records that the category was collected.
package snapshot

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/specvital/fwdetect/pkg/datasource"
)

var (
	// ErrNoInputs is returned for a snapshot that defines no inputs.
	ErrNoInputs = errors.New("snapshot: no inputs defined")
	// ErrUnknownKind is returned for an input kind other than process, package or executable.
	ErrUnknownKind = errors.New("snapshot: unknown input kind")
)

// File is the document layout of a snapshot.
type File struct {
	Inputs []Input `yaml:"inputs"`
}

// Input is one captured perspective of an application.
type Input struct {
	Name       string               `yaml:"name"`
	Kind       datasource.InputKind `yaml:"kind"`
	Process    *ProcessSection      `yaml:"process,omitempty"`
	Executable *ExecutableSection   `yaml:"executable,omitempty"`
	Package    *PackageSection      `yaml:"package,omitempty"`
}

type ProcessSection struct {
	Modules []datasource.ModuleRecord `yaml:"modules"`
	Windows []datasource.WindowRecord `yaml:"windows"`
}

type ExecutableSection struct {
	Imports []datasource.FunctionRecord `yaml:"imports"`
	Exports []datasource.FunctionRecord `yaml:"exports"`
}

type PackageSection struct {
	Packages []datasource.PackageRecord `yaml:"packages"`
}

// LoadFile reads and decodes the snapshot at path.
func LoadFile(path string) ([]datasource.Input, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open snapshot %s: %w", path, err)
	}
	defer f.Close()

	inputs, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("load snapshot %s: %w", path, err)
	}
	return inputs, nil
}

// Decode reads one snapshot document from r. Unknown fields are rejected.
func Decode(r io.Reader) ([]datasource.Input, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var file File
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoInputs
		}
		return nil, fmt.Errorf("unmarshal snapshot: %w", err)
	}

	if err := file.Validate(); err != nil {
		return nil, fmt.Errorf("invalid snapshot: %w", err)
	}
	return file.Records(), nil
}

// Validate checks that every input is named and has a known kind.
func (f *File) Validate() error {
	if len(f.Inputs) == 0 {
		return ErrNoInputs
	}
	for i, in := range f.Inputs {
		if in.Name == "" {
			return fmt.Errorf("input %d: name is required", i)
		}
		switch in.Kind {
		case datasource.KindProcess, datasource.KindExecutable, datasource.KindPackage:
		default:
			return fmt.Errorf("input %s: %w %q", in.Name, ErrUnknownKind, in.Kind)
		}
	}
	return nil
}

// Records converts the snapshot into input records in document order.
func (f *File) Records() []datasource.Input {
	out := make([]datasource.Input, 0, len(f.Inputs))
	for _, in := range f.Inputs {
		out = append(out, in.Record())
	}
	return out
}

// Record converts one snapshot input into an input record.
func (in Input) Record() *datasource.Record {
	var sources []datasource.Source
	if in.Process != nil {
		sources = append(sources, &datasource.ProcessData{
			LoadedModules: in.Process.Modules,
			WindowList:    in.Process.Windows,
		})
	}
	if in.Executable != nil {
		sources = append(sources, &datasource.ExecutableData{
			Imports: in.Executable.Imports,
			Exports: in.Executable.Exports,
		})
	}
	if in.Package != nil {
		sources = append(sources, &datasource.PackageData{PackageList: in.Package.Packages})
	}
	return datasource.NewRecord(in.Name, in.Kind, sources...)
}
