package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/relops-lab/glgate/pkg/domain/types"
)

// minYear is the oldest year accepted by item listings
const minYear = 2010

// ValidationRequest is a sparse set of inputs shared by both operations.
// Only non-nil fields are checked, so one validator serves call sites with
// different required fields.
type ValidationRequest struct {
	Username *string
	Target   *string
	Role     *string
	ItemType *string
	Year     *string
}

// Validate returns human-readable violations in check order: username,
// target, role, item type, year, then token presence. All applicable checks
// run; nothing short-circuits. An empty list means the request is valid.
func (r *ValidationRequest) Validate(tokenConfigured bool) []string {
	var violations []string

	if r.Username != nil && strings.TrimSpace(*r.Username) == "" {
		violations = append(violations, "Username cannot be empty")
	}

	if r.Target != nil && strings.TrimSpace(*r.Target) == "" {
		violations = append(violations, "Target (group/project) cannot be empty")
	}

	if r.Role != nil {
		if _, ok := types.RoleFromString(*r.Role); !ok {
			violations = append(violations, fmt.Sprintf("Invalid role: %s. Valid roles are: %s",
				*r.Role, strings.Join(types.RoleNames(), ", ")))
		}
	}

	if r.ItemType != nil && !types.ItemType(*r.ItemType).IsValid() {
		violations = append(violations, fmt.Sprintf("Invalid item type: %s. Must be 'mr' or 'issues'", *r.ItemType))
	}

	if r.Year != nil {
		// The two year checks are mutually exclusive: only one fires per call.
		// The upper bound is read from the live clock, so the valid range
		// grows each calendar year.
		if year, ok := ParseYear(*r.Year); !ok {
			violations = append(violations, fmt.Sprintf("Year must be a valid integer, got '%s'", *r.Year))
		} else if currentYear := time.Now().Year(); year < minYear || year > currentYear {
			violations = append(violations, fmt.Sprintf("Invalid year: %d. Must be between %d and %d",
				year, minYear, currentYear))
		}
	}

	// The token check always runs, appended last
	if !tokenConfigured {
		violations = append(violations, "GITLAB_TOKEN environment variable is not set")
	}

	return violations
}

// ParseYear parses a year input, tolerating surrounding whitespace
func ParseYear(s string) (int, bool) {
	year, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return year, true
}
