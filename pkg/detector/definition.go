// Package detector defines detectors: named rules combining Required and
// Optional check groups into a found/not-found verdict with an optional
// version string.
package detector

import (
	"slices"

	"github.com/specvital/fwdetect/pkg/check"
	"github.com/specvital/fwdetect/pkg/datasource"
	"github.com/specvital/fwdetect/pkg/domain"
)

// GroupKind tags a group as Required or Optional.
type GroupKind string

const (
	GroupRequired GroupKind = "required"
	GroupOptional GroupKind = "optional"
)

// Info is the identity of a detector.
type Info struct {
	Name        string
	Description string
	FrameworkID string
	Category    domain.DetectorCategory
}

// Group is an ordered set of checks. Every check of a Required group must
// pass for the group to pass; Optional groups are informational.
type Group struct {
	Kind     GroupKind
	Subtitle string
	Checks   []check.Runner

	version *versionBinding
}

type versionBinding struct {
	index    int
	provider check.VersionProvider
}

// VersionSource returns the index of the check the group's version
// provider is bound to, and the provider.
func (g *Group) VersionSource() (int, check.VersionProvider, bool) {
	if g.version == nil {
		return 0, nil, false
	}
	return g.version.index, g.version.provider, true
}

func (g *Group) clone() *Group {
	c := *g
	c.Checks = slices.Clone(g.Checks)
	if g.version != nil {
		v := *g.version
		c.version = &v
	}
	return &c
}

// DataSources returns the sorted union of the categories the group's checks require.
func (g *Group) DataSources() []datasource.ID {
	var ids []datasource.ID
	for _, c := range g.Checks {
		for _, id := range c.DataSources() {
			if !slices.Contains(ids, id) {
				ids = append(ids, id)
			}
		}
	}
	slices.Sort(ids)
	return ids
}

// Definition is a built, immutable detector.
//
// Several Required groups are alternatives: the detector is found when any
// one of them passes completely.
type Definition struct {
	Info
	Required []*Group
	Optional []*Group
}

// Groups returns the Required groups followed by the Optional groups.
func (d *Definition) Groups() []*Group {
	groups := make([]*Group, 0, len(d.Required)+len(d.Optional))
	groups = append(groups, d.Required...)
	return append(groups, d.Optional...)
}

// DataSources returns the sorted union of the categories any check requires.
func (d *Definition) DataSources() []datasource.ID {
	var ids []datasource.ID
	for _, g := range d.Groups() {
		for _, id := range g.DataSources() {
			if !slices.Contains(ids, id) {
				ids = append(ids, id)
			}
		}
	}
	slices.Sort(ids)
	return ids
}

// AppliesTo reports whether set holds evidence for at least one category
// the detector's checks require.
func (d *Definition) AppliesTo(set *datasource.Set) bool {
	return set.HasAny(d.DataSources()...)
}
