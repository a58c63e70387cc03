package usecase_test

import (
	"context"
	"encoding/json"

	"github.com/relops-lab/glgate/pkg/domain/model"
	"github.com/relops-lab/glgate/pkg/domain/types"
)

// gitlabClientMock implements interfaces.GitLabClient for tests. Calls are
// counted even when no behavior is configured.
type gitlabClientMock struct {
	hasToken         bool
	searchUsersFunc  func(ctx context.Context, username string) ([]model.User, error)
	addMemberFunc    func(ctx context.Context, target model.Target, req model.MembershipRequest) (json.RawMessage, error)
	updateMemberFunc func(ctx context.Context, target model.Target, req model.MembershipRequest) (json.RawMessage, error)
	listItemsFunc    func(ctx context.Context, itemType types.ItemType, query *model.ListItemsQuery) ([]model.Item, error)

	searchUsersCalls  int
	addMemberCalls    int
	updateMemberCalls int
	listItemsCalls    int
}

func (m *gitlabClientMock) HasToken() bool {
	return m.hasToken
}

func (m *gitlabClientMock) SearchUsers(ctx context.Context, username string) ([]model.User, error) {
	m.searchUsersCalls++
	if m.searchUsersFunc == nil {
		return nil, nil
	}
	return m.searchUsersFunc(ctx, username)
}

func (m *gitlabClientMock) AddMember(ctx context.Context, target model.Target, req model.MembershipRequest) (json.RawMessage, error) {
	m.addMemberCalls++
	if m.addMemberFunc == nil {
		return nil, nil
	}
	return m.addMemberFunc(ctx, target, req)
}

func (m *gitlabClientMock) UpdateMember(ctx context.Context, target model.Target, req model.MembershipRequest) (json.RawMessage, error) {
	m.updateMemberCalls++
	if m.updateMemberFunc == nil {
		return nil, nil
	}
	return m.updateMemberFunc(ctx, target, req)
}

func (m *gitlabClientMock) ListItems(ctx context.Context, itemType types.ItemType, query *model.ListItemsQuery) ([]model.Item, error) {
	m.listItemsCalls++
	if m.listItemsFunc == nil {
		return nil, nil
	}
	return m.listItemsFunc(ctx, itemType, query)
}
