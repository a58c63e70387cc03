package gitlab

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-querystring/query"
	"github.com/m-mizutani/goerr/v2"
	"github.com/relops-lab/glgate/pkg/domain/model"
	"github.com/relops-lab/glgate/pkg/domain/types"
)

// userLookupTimeout caps the user search call only. Membership and item
// calls run without a client-side deadline beyond the request context.
const userLookupTimeout = 10 * time.Second

// Client is a GitLab REST API v4 client covering the calls this service
// needs: user search, membership create and update, and item listings.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client, mainly for tests
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// New creates a GitLab API client. The base URL is normalized to carry
// exactly one trailing slash regardless of how it was configured.
func New(baseURL, token string, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{},
		baseURL:    strings.TrimRight(baseURL, "/") + "/",
		token:      token,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the normalized API base URL
func (c *Client) BaseURL() string {
	return c.baseURL
}

// HasToken reports whether an API token is configured
func (c *Client) HasToken() bool {
	return c.token != ""
}

// SearchUsers queries accounts matching the exact username. The call runs
// under its own 10 second deadline.
func (c *Client) SearchUsers(ctx context.Context, username string) ([]model.User, error) {
	ctx, cancel := context.WithTimeout(ctx, userLookupTimeout)
	defer cancel()

	params := url.Values{}
	params.Set("username", username)

	req, err := c.newRequest(ctx, http.MethodGet, "users", params, nil)
	if err != nil {
		return nil, err
	}

	status, body, err := c.do(req)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, goerr.New(fmt.Sprintf("API request failed with status %d: %s", status, body),
			goerr.T(model.ErrTagUpstream),
			goerr.V("status_code", status))
	}

	var users []model.User
	if err := json.Unmarshal(body, &users); err != nil {
		return nil, goerr.Wrap(err, "Unexpected error", goerr.T(model.ErrTagUnexpected))
	}
	return users, nil
}

// AddMember creates a membership via POST. A 404 means the target itself
// is missing; a 409 means the user is already a member and is reported
// with a conflict tag so callers can retry as an update.
func (c *Client) AddMember(ctx context.Context, target model.Target, m model.MembershipRequest) (json.RawMessage, error) {
	req, err := c.newRequest(ctx, http.MethodPost, target.MembersPath(), nil, m)
	if err != nil {
		return nil, err
	}

	status, body, err := c.do(req)
	if err != nil {
		return nil, err
	}

	switch {
	case status == http.StatusNotFound:
		return nil, goerr.New(fmt.Sprintf("Target '%s' not found", target.Name),
			goerr.T(model.ErrTagNotFound),
			goerr.V("target", target.Name))
	case status == http.StatusConflict:
		return nil, goerr.New("membership already exists",
			goerr.T(model.ErrTagConflict),
			goerr.V("user_id", m.UserID),
			goerr.V("target", target.Name))
	case status < 200 || status >= 300:
		return nil, goerr.New(fmt.Sprintf("Failed to modify permission: %d - %s", status, body),
			goerr.T(model.ErrTagUpstream),
			goerr.V("status_code", status))
	}

	return passthroughMember(body)
}

// UpdateMember changes an existing member's access level via PUT. Its
// response is authoritative; every non-2xx status maps to the same
// failure message, including 404 and 409.
func (c *Client) UpdateMember(ctx context.Context, target model.Target, m model.MembershipRequest) (json.RawMessage, error) {
	path := target.MembersPath() + "/" + m.UserID.String()
	req, err := c.newRequest(ctx, http.MethodPut, path, nil, m)
	if err != nil {
		return nil, err
	}

	status, body, err := c.do(req)
	if err != nil {
		return nil, err
	}
	if status < 200 || status >= 300 {
		return nil, goerr.New(fmt.Sprintf("Failed to modify permission: %d - %s", status, body),
			goerr.T(model.ErrTagUpstream),
			goerr.V("status_code", status))
	}

	return passthroughMember(body)
}

// ListItems fetches a single page of issues or merge requests
func (c *Client) ListItems(ctx context.Context, itemType types.ItemType, q *model.ListItemsQuery) ([]model.Item, error) {
	params, err := query.Values(q)
	if err != nil {
		return nil, goerr.Wrap(err, "Unexpected error", goerr.T(model.ErrTagUnexpected))
	}

	req, err := c.newRequest(ctx, http.MethodGet, listPath(itemType), params, nil)
	if err != nil {
		return nil, err
	}

	status, body, err := c.do(req)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, goerr.New(fmt.Sprintf("%d - %s", status, body),
			goerr.T(model.ErrTagUpstream),
			goerr.V("status_code", status))
	}

	var items []model.Item
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, goerr.New("Invalid JSON response",
			goerr.T(model.ErrTagBadResponse),
			goerr.V("parse_error", err.Error()))
	}
	return items, nil
}

// newRequest builds an API request under /api/v4 with the token header
func (c *Client) newRequest(ctx context.Context, method, apiPath string, params url.Values, body any) (*http.Request, error) {
	endpoint := c.baseURL + "api/v4/" + apiPath
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, goerr.Wrap(err, "Unexpected error", goerr.T(model.ErrTagUnexpected))
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, goerr.Wrap(err, "Unexpected error", goerr.T(model.ErrTagUnexpected))
	}
	req.Header.Set("PRIVATE-TOKEN", c.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

// do executes the request and reads the full response body. Transport and
// read failures surface as network-tagged errors.
func (c *Client) do(req *http.Request) (int, []byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, goerr.Wrap(err, "Network error", goerr.T(model.ErrTagNetwork))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, goerr.Wrap(err, "Network error", goerr.T(model.ErrTagNetwork))
	}
	return resp.StatusCode, body, nil
}

// passthroughMember validates the response body as JSON and passes it
// through untouched
func passthroughMember(body []byte) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, goerr.Wrap(err, "Unexpected error", goerr.T(model.ErrTagUnexpected))
	}
	return raw, nil
}

// listPath maps an item type to its API collection path
func listPath(t types.ItemType) string {
	if t == types.ItemTypeMergeRequest {
		return "merge_requests"
	}
	return "issues"
}
