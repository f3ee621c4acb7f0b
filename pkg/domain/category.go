// Package domain defines the result model shared by checks, detectors and runs.
package domain

// DetectorCategory classifies what kind of dependency a detector looks for.
type DetectorCategory string

// Detector categories.
const (
	// CategoryFramework is a UI or application framework (WPF, WinUI).
	CategoryFramework DetectorCategory = "framework"
	// CategoryLibrary is a redistributable library linked by the application.
	CategoryLibrary DetectorCategory = "library"
	// CategoryRuntime is a managed or native runtime hosting the application.
	CategoryRuntime DetectorCategory = "runtime"
	// CategoryComponent is an embedded component such as a browser engine.
	CategoryComponent DetectorCategory = "component"
)

// IsValid reports whether c is one of the known categories.
func (c DetectorCategory) IsValid() bool {
	switch c {
	case CategoryFramework, CategoryLibrary, CategoryRuntime, CategoryComponent:
		return true
	default:
		return false
	}
}
