package check

// VersionProvider extracts a version string from the result of the check it
// is bound to.
type VersionProvider interface {
	// Fits reports whether the provider can read results of r.
	Fits(r Runner) bool
	// Version returns the extracted version, or "" unless the result passed.
	Version(r Result) string
}

// VersionFrom adapts fn into a provider for checks of type Definition[A, O].
func VersionFrom[A Args, O any](fn func(O) string) VersionProvider {
	return versionFunc[A, O](fn)
}

type versionFunc[A Args, O any] func(O) string

func (f versionFunc[A, O]) Fits(r Runner) bool {
	_, ok := r.(*Definition[A, O])
	return ok
}

func (f versionFunc[A, O]) Version(r Result) string {
	if r == nil || !r.Status().IsPassed() {
		return ""
	}
	o, ok := r.(*Outcome[A, O])
	if !ok || !o.HasOutput {
		return ""
	}
	return f(o.Output)
}
