package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/relops-lab/glgate/pkg/domain/interfaces"
	"github.com/relops-lab/glgate/pkg/domain/model"
	"github.com/relops-lab/glgate/pkg/domain/types"
)

// Membership grants roles on groups and projects
type Membership struct {
	client interfaces.GitLabClient
}

// NewMembership creates a role assignment use case
func NewMembership(client interfaces.GitLabClient) interfaces.Membership {
	return &Membership{
		client: client,
	}
}

// SetRole resolves the username to a user ID, classifies the target and
// applies the role. When the user is already a member, the create call is
// retried as an update and the update response is authoritative.
func (u *Membership) SetRole(ctx context.Context, username, target, role string) (json.RawMessage, error) {
	logger := ctxlog.From(ctx)

	request := &model.ValidationRequest{
		Username: &username,
		Target:   &target,
		Role:     &role,
	}
	if violations := request.Validate(u.client.HasToken()); len(violations) > 0 {
		return nil, model.NewValidationError(violations)
	}

	tgt := model.ParseTarget(target)
	r, _ := types.RoleFromString(role)

	// The owner level exists only on groups upstream
	if tgt.IsProject() && r == types.RoleOwner {
		return nil, goerr.New("Owner role is not supported for projects",
			goerr.T(model.ErrTagValidation),
			goerr.V("target", target))
	}

	logger.Info("Looking up user", "username", username)

	users, err := u.client.SearchUsers(ctx, username)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, goerr.New(fmt.Sprintf("User '%s' not found", username),
			goerr.T(model.ErrTagNotFound),
			goerr.V("username", username))
	}

	userID := users[0].ID
	logger.Info("Resolved user", "username", username, "userID", userID)

	membership := model.MembershipRequest{
		UserID:      userID,
		AccessLevel: r.AccessLevel(),
	}

	logger.Info("Adding member",
		"target", tgt.Name,
		"kind", tgt.Kind,
		"accessLevel", membership.AccessLevel.Int())

	raw, err := u.client.AddMember(ctx, tgt, membership)
	if err == nil {
		return raw, nil
	}
	if !goerr.HasTag(err, model.ErrTagConflict) {
		return nil, err
	}

	logger.Info("Member already exists, updating role",
		"target", tgt.Name,
		"userID", userID)

	return u.client.UpdateMember(ctx, tgt, membership)
}
