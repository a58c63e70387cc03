package model

import "github.com/relops-lab/glgate/pkg/domain/types"

// MembershipRequest is the payload for membership create and update calls.
// It is constructed only after username resolution succeeds.
type MembershipRequest struct {
	UserID      types.UserID      `json:"user_id"`
	AccessLevel types.AccessLevel `json:"access_level"`
}
