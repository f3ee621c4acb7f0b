// Package match implements the string, path and version matching policy shared by checks.
package match

import (
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/text/cases"
)

// PrecompiledInfix is inserted before a file extension to name the
// ahead-of-time compiled image of the same module.
const PrecompiledInfix = ".ni"

// fold applies full Unicode case folding. Every comparison in this package
// goes through it.
func fold(s string) string {
	return cases.Fold().String(s)
}

// EqualFold reports whether two canonical identifiers are equal, ignoring case.
func EqualFold(a, b string) bool {
	return fold(a) == fold(b)
}

// ContainsFold reports whether s contains part, ignoring case.
// An empty part always matches.
func ContainsFold(s, part string) bool {
	return strings.Contains(fold(s), fold(part))
}

// PrecompiledAlias returns the precompiled file name for name, e.g.
// "PresentationFramework.dll" -> "PresentationFramework.ni.dll".
// Names without an extension get the infix appended.
func PrecompiledAlias(name string) string {
	ext := path.Ext(name)
	if ext == "" {
		return name + PrecompiledInfix
	}
	return strings.TrimSuffix(name, ext) + PrecompiledInfix + ext
}

// FileNameMatches reports whether actual names the module want, optionally
// accepting its precompiled alias.
func FileNameMatches(actual, want string, allowPrecompiled bool) bool {
	if EqualFold(actual, want) {
		return true
	}
	return allowPrecompiled && EqualFold(actual, PrecompiledAlias(want))
}

// Glob reports whether filePath matches a doublestar pattern, ignoring case.
// Backslashes in both are treated as separators.
func Glob(pattern, filePath string) bool {
	ok, err := doublestar.Match(normalizePath(pattern), normalizePath(filePath))
	return err == nil && ok
}

// ValidGlob reports whether pattern is a well-formed doublestar pattern.
func ValidGlob(pattern string) bool {
	return doublestar.ValidatePattern(normalizePath(pattern))
}

func normalizePath(p string) string {
	return fold(strings.ReplaceAll(p, `\`, "/"))
}
