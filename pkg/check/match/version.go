package match

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// ErrInvalidVersion is returned for strings with no leading numeric component.
var ErrInvalidVersion = errors.New("match: invalid version")

// ParseVersion parses a version leniently: text after the first space is
// dropped, a leading "v" is stripped, missing minor and patch components
// default to zero, and components after the third are ignored.
//
//	"v3"                          -> 3.0.0
//	"4.8.9032.0 built by: NETFX" -> 4.8.9032
func ParseVersion(s string) (*semver.Version, error) {
	raw := strings.TrimSpace(s)
	if i := strings.IndexAny(raw, " \t"); i >= 0 {
		raw = raw[:i]
	}
	raw = strings.TrimPrefix(strings.TrimPrefix(raw, "v"), "V")
	if raw == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidVersion, s)
	}

	parts := strings.Split(raw, ".")
	var nums [3]uint64
	for i := 0; i < len(parts) && i < len(nums); i++ {
		n, err := leadingNumber(parts[i])
		if err != nil {
			if i == 0 {
				return nil, fmt.Errorf("%w: %q", ErrInvalidVersion, s)
			}
			break
		}
		nums[i] = n
	}

	return semver.New(nums[0], nums[1], nums[2], "", ""), nil
}

// leadingNumber parses the digits at the start of s ("1-beta" -> 1).
func leadingNumber(s string) (uint64, error) {
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, ErrInvalidVersion
	}
	return strconv.ParseUint(s[:end], 10, 64)
}

// ParseRange parses a range expression such as ">= 3.0" or ">=1.2, <2".
func ParseRange(expr string) (*semver.Constraints, error) {
	c, err := semver.NewConstraint(strings.TrimSpace(expr))
	if err != nil {
		return nil, fmt.Errorf("match: invalid version range %q: %w", expr, err)
	}
	return c, nil
}

// VersionInRange reports whether version satisfies expr. An empty expr
// matches anything; an unparsable version or expression matches nothing.
func VersionInRange(version, expr string) bool {
	if strings.TrimSpace(expr) == "" {
		return true
	}
	c, err := ParseRange(expr)
	if err != nil {
		return false
	}
	v, err := ParseVersion(version)
	if err != nil {
		return false
	}
	return c.Check(v)
}
