package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/relops-lab/glgate/pkg/domain/interfaces"
	"github.com/relops-lab/glgate/pkg/domain/model"
)

// Handler carries the use cases behind the HTTP endpoints
type Handler struct {
	membership interfaces.Membership
	items      interfaces.Items
}

// NewHandler creates a new endpoint handler
func NewHandler(membership interfaces.Membership, items interfaces.Items) *Handler {
	return &Handler{
		membership: membership,
		items:      items,
	}
}

// HandlePermission grants a role to a user on a group or project
func (h *Handler) HandlePermission(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var body map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || len(body) == 0 {
		writeError(ctx, w, goerr.New("No JSON data provided",
			goerr.T(model.ErrTagMissingParam)))
		return
	}

	username, hasUsername := stringField(body, "username")
	target, hasTarget := stringField(body, "target")
	role, hasRole := stringField(body, "role")

	var missing []string
	if !hasUsername {
		missing = append(missing, "username")
	}
	if !hasTarget {
		missing = append(missing, "target")
	}
	if !hasRole {
		missing = append(missing, "role")
	}
	if len(missing) > 0 {
		writeError(ctx, w, goerr.New("Missing required parameters: "+strings.Join(missing, ", "),
			goerr.T(model.ErrTagMissingParam)))
		return
	}

	ctxlog.From(ctx).Info("Modifying permission",
		"username", username,
		"target", target,
		"role", role)

	raw, err := h.membership.SetRole(ctx, username, target, role)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, model.NewSetRoleResult(username, target, role, raw))
}

// HandleItems lists the issues or merge requests created in a year
func (h *Handler) HandleItems(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	itemType := r.URL.Query().Get("type")
	if itemType == "" {
		writeError(ctx, w, goerr.New("Missing required parameter: type",
			goerr.T(model.ErrTagMissingParam)))
		return
	}
	year := r.URL.Query().Get("year")
	if year == "" {
		writeError(ctx, w, goerr.New("Missing required parameter: year",
			goerr.T(model.ErrTagMissingParam)))
		return
	}

	ctxlog.From(ctx).Info("Retrieving items",
		"type", itemType,
		"year", year)

	items, err := h.items.ListItems(ctx, itemType, year)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, model.NewListItemsResult(itemType, year, items))
}

// stringField reads a string member from a decoded JSON object. An absent
// key, a JSON null and any non-string value all count as missing. The
// pointer target is what detects null: unmarshaling null into a plain
// string is a no-op that reports no error.
func stringField(body map[string]json.RawMessage, key string) (string, bool) {
	raw, ok := body[key]
	if !ok {
		return "", false
	}
	var s *string
	if err := json.Unmarshal(raw, &s); err != nil || s == nil {
		return "", false
	}
	return *s, true
}
