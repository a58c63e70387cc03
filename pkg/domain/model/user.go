package model

import "github.com/relops-lab/glgate/pkg/domain/types"

// User is an upstream user account as returned by the user search endpoint
type User struct {
	ID       types.UserID `json:"id"`
	Username string       `json:"username"`
}
