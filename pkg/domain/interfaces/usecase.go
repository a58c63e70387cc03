package interfaces

import (
	"context"
	"encoding/json"

	"github.com/relops-lab/glgate/pkg/domain/model"
)

// Membership defines the interface for role assignment operations
type Membership interface {
	// SetRole grants a user the given role on a group or project and
	// returns the upstream member object
	SetRole(ctx context.Context, username, target, role string) (json.RawMessage, error)
}

// Items defines the interface for item retrieval operations
type Items interface {
	// ListItems retrieves every issue or merge request created in the
	// given year
	ListItems(ctx context.Context, itemType, year string) ([]model.Item, error)
}
