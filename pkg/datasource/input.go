package datasource

import (
	"slices"

	"github.com/specvital/fwdetect/pkg/domain"
)

// InputKind is the perspective an input record was captured from.
type InputKind string

// Input kinds.
const (
	KindProcess    InputKind = "process"
	KindPackage    InputKind = "package"
	KindExecutable InputKind = "executable"
	// KindComposite marks an input merged from several perspectives.
	KindComposite InputKind = "composite"
)

// Input is an immutable snapshot of one perspective of the analyzed application.
type Input interface {
	Name() string
	Kind() InputKind
	Sources() []Source
}

// Record is the in-memory Input implementation.
type Record struct {
	name    string
	kind    InputKind
	sources []Source
}

// NewRecord creates an input record. Nil sources are dropped.
func NewRecord(name string, kind InputKind, sources ...Source) *Record {
	r := &Record{name: name, kind: kind}
	for _, s := range sources {
		if s != nil {
			r.sources = append(r.sources, s)
		}
	}
	return r
}

func (r *Record) Name() string      { return r.name }
func (r *Record) Kind() InputKind   { return r.kind }
func (r *Record) Sources() []Source { return slices.Clone(r.sources) }

// Merge combines several perspectives of one application into a single input.
// Sources keep the order of the inputs they came from.
func Merge(name string, inputs ...Input) *Record {
	r := &Record{name: name, kind: KindComposite}
	for _, in := range inputs {
		if in == nil {
			continue
		}
		r.sources = append(r.sources, in.Sources()...)
	}
	return r
}

// Summarize returns the report summary of an input.
func Summarize(in Input) domain.InputSummary {
	var ids []string
	for _, s := range in.Sources() {
		id := string(s.Category())
		if !slices.Contains(ids, id) {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)
	return domain.InputSummary{
		Kind:        string(in.Kind()),
		Name:        in.Name(),
		DataSources: ids,
	}
}
