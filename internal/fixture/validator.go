package fixture

import (
	"fmt"
	"strings"
)

// Validate checks a suite for:
//   - Required top-level fields
//   - Duplicate case names
//   - Missing case fields and unknown expected statuses
//
// All problems are collected and reported together.
func Validate(s *Suite) error {
	if s.Version == "" {
		return fmt.Errorf("suite: version is required")
	}
	seen := make(map[string]int) // name → first index
	var errs []string

	for i, c := range s.Cases {
		if c.Name == "" {
			errs = append(errs, fmt.Sprintf("cases[%d]: name is required", i))
			continue
		}
		if first, ok := seen[c.Name]; ok {
			errs = append(errs, fmt.Sprintf("duplicate case name %q (cases[%d] and cases[%d])", c.Name, first, i))
		} else {
			seen[c.Name] = i
		}
		if c.File == "" {
			errs = append(errs, fmt.Sprintf("case %s: file is required", c.Name))
		}
		switch c.WantStatus {
		case "", "ok", "error":
		default:
			errs = append(errs, fmt.Sprintf("case %s: want_status must be \"ok\" or \"error\", got %q", c.Name, c.WantStatus))
		}
		if len(c.WantErrors) > 0 && c.WantStatus == "ok" {
			errs = append(errs, fmt.Sprintf("case %s: want_errors is only valid with want_status \"error\"", c.Name))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("suite validation errors:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
