package detector

import (
	"errors"
	"fmt"

	"github.com/specvital/fwdetect/pkg/check"
	"github.com/specvital/fwdetect/pkg/domain"
)

// Builder assembles a Definition.
//
//	def, err := detector.New(info).
//		Required("", func(g *detector.RequiredGroup) {
//			g.Add(checks.LoadedModule(args)).BindVersion(checks.ModuleFileVersion)
//		}).
//		Optional("Windows", func(g *detector.OptionalGroup) {
//			g.Add(checks.ActiveWindow(windowArgs))
//		}).
//		Build()
type Builder struct {
	def  *Definition
	errs []error
}

// New starts a detector definition.
func New(info Info) *Builder {
	return &Builder{def: &Definition{Info: info}}
}

// Required declares a Required group populated by fn. Declaring several
// Required groups makes them alternatives.
func (b *Builder) Required(subtitle string, fn func(g *RequiredGroup)) *Builder {
	group := &Group{Kind: GroupRequired, Subtitle: subtitle}
	gb := &groupBuilder{b: b, group: group, label: fmt.Sprintf("required[%d]", len(b.def.Required))}
	b.def.Required = append(b.def.Required, group)
	if fn != nil {
		fn(&RequiredGroup{gb: gb})
	}
	return b
}

// Optional declares an informational group populated by fn.
func (b *Builder) Optional(subtitle string, fn func(g *OptionalGroup)) *Builder {
	group := &Group{Kind: GroupOptional, Subtitle: subtitle}
	gb := &groupBuilder{b: b, group: group, label: fmt.Sprintf("optional[%d]", len(b.def.Optional))}
	b.def.Optional = append(b.def.Optional, group)
	if fn != nil {
		fn(&OptionalGroup{gb: gb})
	}
	return b
}

// Build validates the definition and returns it, or every configuration
// error found joined together. The returned Definition is a snapshot:
// later calls on the builder do not change it.
func (b *Builder) Build() (*Definition, error) {
	errs := append([]error(nil), b.errs...)

	if b.def.Name == "" || b.def.FrameworkID == "" {
		errs = append(errs, b.errorf("", "", ErrMissingIdentity))
	}
	if b.def.Category != "" && !b.def.Category.IsValid() {
		errs = append(errs, b.errorf("", "", fmt.Errorf("%w: %q", ErrInvalidCategory, b.def.Category)))
	}
	if len(b.def.Required) == 0 {
		errs = append(errs, b.errorf("", "", ErrNoRequiredChecks))
	}
	for i, g := range b.def.Required {
		if len(g.Checks) == 0 {
			errs = append(errs, b.errorf(fmt.Sprintf("required[%d]", i), "", ErrEmptyRequiredGroup))
		}
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	def := &Definition{Info: b.def.Info}
	if def.Category == "" {
		def.Category = domain.CategoryFramework
	}
	for _, g := range b.def.Required {
		def.Required = append(def.Required, g.clone())
	}
	for _, g := range b.def.Optional {
		if len(g.Checks) > 0 {
			def.Optional = append(def.Optional, g.clone())
		}
	}
	return def, nil
}

// MustBuild is like Build but panics on configuration errors. It is meant
// for detectors registered during package initialization.
func (b *Builder) MustBuild() *Definition {
	def, err := b.Build()
	if err != nil {
		panic(err)
	}
	return def
}

func (b *Builder) errorf(group, checkName string, err error) error {
	return &BuildError{Err: err, Detector: b.def.Name, Group: group, Check: checkName}
}

// groupBuilder carries the state shared by RequiredGroup and OptionalGroup.
type groupBuilder struct {
	b     *Builder
	group *Group
	label string
	// attempted is set by the first Add. lastAdded is false when the most
	// recent Add was rejected.
	attempted bool
	lastAdded bool
}

func (gb *groupBuilder) add(r check.Runner) {
	gb.attempted = true
	if r == nil {
		gb.lastAdded = false
		gb.b.errs = append(gb.b.errs, gb.b.errorf(gb.label, "", ErrNilCheck))
		return
	}
	if err := r.Validate(); err != nil {
		gb.lastAdded = false
		gb.b.errs = append(gb.b.errs, gb.b.errorf(gb.label, r.Name(), err))
		return
	}
	gb.group.Checks = append(gb.group.Checks, r)
	gb.lastAdded = true
}

func (gb *groupBuilder) bindVersion(p check.VersionProvider) {
	n := len(gb.group.Checks)
	switch {
	case !gb.lastAdded && gb.attempted:
		// The check this binding targets was rejected and already reported.
	case n == 0:
		gb.b.errs = append(gb.b.errs, gb.b.errorf(gb.label, "", ErrVersionOnEmptyGroup))
	case gb.group.version != nil:
		gb.b.errs = append(gb.b.errs, gb.b.errorf(gb.label, gb.group.Checks[n-1].Name(), ErrVersionAlreadyBound))
	case p == nil || !p.Fits(gb.group.Checks[n-1]):
		gb.b.errs = append(gb.b.errs, gb.b.errorf(gb.label, gb.group.Checks[n-1].Name(), ErrVersionProviderMismatch))
	default:
		gb.group.version = &versionBinding{index: n - 1, provider: p}
	}
}

// RequiredGroup populates a Required group.
type RequiredGroup struct {
	gb *groupBuilder
}

// Add appends a check. Invalid arguments are reported by Build.
func (g *RequiredGroup) Add(r check.Runner) *RequiredGroup {
	g.gb.add(r)
	return g
}

// BindVersion binds p to the most recently added check. The detector's
// version is read from that check when this group is the passing alternative.
func (g *RequiredGroup) BindVersion(p check.VersionProvider) *RequiredGroup {
	g.gb.bindVersion(p)
	return g
}

// OptionalGroup populates an Optional group.
type OptionalGroup struct {
	gb *groupBuilder
}

// Add appends a check. Invalid arguments are reported by Build.
func (g *OptionalGroup) Add(r check.Runner) *OptionalGroup {
	g.gb.add(r)
	return g
}
