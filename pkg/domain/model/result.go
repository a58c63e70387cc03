package model

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/m-mizutani/goerr/v2"
)

// Status discriminates operation outcomes on the wire
type Status string

const (
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// Result is the structured outcome returned by both operations. Success
// carries a message and data; errors carry either a single message or, for
// validation failures, the ordered violation list.
type Result struct {
	Status  Status   `json:"status"`
	Message string   `json:"message,omitempty"`
	Errors  []string `json:"errors,omitempty"`
	Data    any      `json:"data,omitempty"`
}

// NewSetRoleResult builds the success result for a completed role change.
// The data payload is the upstream member object, passed through verbatim.
func NewSetRoleResult(username, target, role string, data json.RawMessage) *Result {
	return &Result{
		Status:  StatusSuccess,
		Message: fmt.Sprintf("Successfully set %s's role to %s on %s", username, role, target),
		Data:    data,
	}
}

// NewListItemsResult builds the success result for an item listing
func NewListItemsResult(itemType, year string, items []Item) *Result {
	yearLabel := year
	if n, ok := ParseYear(year); ok {
		yearLabel = strconv.Itoa(n)
	}
	return &Result{
		Status:  StatusSuccess,
		Message: fmt.Sprintf("Retrieved %d %s from %s", len(items), itemType, yearLabel),
		Data:    items,
	}
}

// NewErrorResult maps an operation error onto the wire shape. Validation
// errors carry the ordered violation list; everything else carries the
// error message verbatim.
func NewErrorResult(err error) *Result {
	if messages := ValidationMessages(err); len(messages) > 0 {
		return &Result{Status: StatusError, Errors: messages}
	}

	var message string
	if goErr := goerr.Unwrap(err); goErr != nil {
		message = goErr.Error()
	} else {
		message = err.Error()
	}
	return &Result{Status: StatusError, Message: message}
}
