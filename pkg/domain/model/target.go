package model

import (
	"net/url"
	"strings"

	"github.com/relops-lab/glgate/pkg/domain/types"
)

// Target identifies the group or project a membership operation acts on
type Target struct {
	Name string
	Kind types.TargetKind
}

// ParseTarget classifies a raw target string. A path separator marks a
// project path; a bare name is a group. This mirrors the upstream's own
// path-based project addressing.
func ParseTarget(raw string) Target {
	if strings.Contains(raw, "/") {
		return Target{Name: raw, Kind: types.TargetKindProject}
	}
	return Target{Name: raw, Kind: types.TargetKindGroup}
}

// IsProject reports whether the target is a project path
func (t Target) IsProject() bool {
	return t.Kind == types.TargetKindProject
}

// MembersPath returns the members collection path under the API root.
// Project paths are percent-encoded as a single path segment; group names
// are used verbatim.
func (t Target) MembersPath() string {
	if t.IsProject() {
		return "projects/" + url.PathEscape(t.Name) + "/members"
	}
	return "groups/" + t.Name + "/members"
}
