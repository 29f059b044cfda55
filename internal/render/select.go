package render

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/joss/pdgid/pkg/pdgid"
)

// ValidatePatterns rejects malformed glob patterns.
func ValidatePatterns(patterns []string) error {
	for _, p := range patterns {
		if !doublestar.ValidatePattern(p) {
			return fmt.Errorf("invalid query pattern %q", p)
		}
	}
	return nil
}

// Select keeps results whose query name matches any pattern.
// No patterns keeps everything.
func Select(results []pdgid.Result, patterns []string) []pdgid.Result {
	if len(patterns) == 0 {
		return results
	}
	var out []pdgid.Result
	for _, r := range results {
		for _, p := range patterns {
			if ok, _ := doublestar.Match(p, r.Name); ok {
				out = append(out, r)
				break
			}
		}
	}
	return out
}
