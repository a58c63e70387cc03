package usecase

import (
	"context"
	"fmt"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/relops-lab/glgate/pkg/domain/interfaces"
	"github.com/relops-lab/glgate/pkg/domain/model"
	"github.com/relops-lab/glgate/pkg/domain/types"
)

// perPage is the fixed page size for item listings
const perPage = 100

// Items retrieves issues and merge requests by creation year
type Items struct {
	client   interfaces.GitLabClient
	maxPages int
}

// ItemsOption configures the Items use case
type ItemsOption func(*Items)

// WithMaxPages caps how many pages a single listing may fetch. Zero
// leaves the walk uncapped.
func WithMaxPages(n int) ItemsOption {
	return func(u *Items) {
		u.maxPages = n
	}
}

// NewItems creates an item retrieval use case
func NewItems(client interfaces.GitLabClient, opts ...ItemsOption) interfaces.Items {
	u := &Items{
		client: client,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// ListItems fetches every issue or merge request created in the given
// year, walking pages until an empty one arrives. A failure on any page
// discards everything collected so far.
func (u *Items) ListItems(ctx context.Context, itemType, year string) ([]model.Item, error) {
	logger := ctxlog.From(ctx)

	request := &model.ValidationRequest{
		ItemType: &itemType,
		Year:     &year,
	}
	if violations := request.Validate(u.client.HasToken()); len(violations) > 0 {
		return nil, model.NewValidationError(violations)
	}

	yearNum, _ := model.ParseYear(year)
	query := &model.ListItemsQuery{
		CreatedAfter:  fmt.Sprintf("%d-01-01T00:00:00Z", yearNum),
		CreatedBefore: fmt.Sprintf("%d-12-31T23:59:59Z", yearNum),
		PerPage:       perPage,
		Page:          1,
	}

	items := []model.Item{}
	for {
		page, err := u.client.ListItems(ctx, types.ItemType(itemType), query)
		if err != nil {
			return nil, err
		}
		if len(page) == 0 {
			break
		}

		items = append(items, page...)
		logger.Info("Fetched item page",
			"itemType", itemType,
			"page", query.Page,
			"pageSize", len(page),
			"total", len(items))

		query.Page++
		if u.maxPages > 0 && query.Page > u.maxPages {
			return nil, goerr.New(fmt.Sprintf("page limit exceeded after %d pages", u.maxPages),
				goerr.T(model.ErrTagUpstream),
				goerr.V("max_pages", u.maxPages))
		}
	}

	logger.Info("Item retrieval completed",
		"itemType", itemType,
		"year", yearNum,
		"count", len(items))

	return items, nil
}
