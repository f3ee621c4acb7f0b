// Package checks provides the built-in check kinds detectors compose.
//
// Filename and class-name fields compare for case-insensitive equality;
// fields suffixed Part compare as case-insensitive substrings. Only fields
// that are set take part in matching.
package checks

import (
	"errors"
	"fmt"
	"strings"

	"github.com/specvital/fwdetect/pkg/check/match"
)

var errNoPredicate = errors.New("at least one match field must be set")

// describe renders non-empty fields as "key=value" pairs in order.
func describe(pairs ...string) string {
	var parts []string
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i+1] == "" {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s=%q", pairs[i], pairs[i+1]))
	}
	return strings.Join(parts, ", ")
}

func validateRange(field, expr string) error {
	if expr == "" {
		return nil
	}
	if _, err := match.ParseRange(expr); err != nil {
		return fmt.Errorf("%s: %w", field, err)
	}
	return nil
}

// optionalEqual matches when want is empty or equals got.
func optionalEqual(got, want string) bool {
	return want == "" || match.EqualFold(got, want)
}

// optionalContains matches when part is empty or contained in got.
func optionalContains(got, part string) bool {
	return part == "" || match.ContainsFold(got, part)
}
