package interfaces

import (
	"context"
	"encoding/json"

	"github.com/relops-lab/glgate/pkg/domain/model"
	"github.com/relops-lab/glgate/pkg/domain/types"
)

// GitLabClient defines the interface for GitLab REST API calls
type GitLabClient interface {
	// HasToken reports whether an API token is configured
	HasToken() bool

	// SearchUsers looks up user accounts by exact username
	SearchUsers(ctx context.Context, username string) ([]model.User, error)

	// AddMember adds a user to the target with the given access level.
	// A conflict with an existing membership is reported with a
	// conflict-tagged error so callers can fall back to UpdateMember.
	AddMember(ctx context.Context, target model.Target, req model.MembershipRequest) (json.RawMessage, error)

	// UpdateMember changes the access level of an existing member
	UpdateMember(ctx context.Context, target model.Target, req model.MembershipRequest) (json.RawMessage, error)

	// ListItems fetches a single page of issues or merge requests
	ListItems(ctx context.Context, itemType types.ItemType, query *model.ListItemsQuery) ([]model.Item, error)
}
