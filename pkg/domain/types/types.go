package types

import "fmt"

// UserID represents an upstream user identifier
type UserID int

// Int returns the int representation
func (id UserID) Int() int {
	return int(id)
}

// String returns the string representation
func (id UserID) String() string {
	return fmt.Sprintf("%d", id)
}

// TargetKind distinguishes group and project membership targets
type TargetKind string

const (
	TargetKindGroup   TargetKind = "group"
	TargetKindProject TargetKind = "project"
)

// String returns the string representation
func (k TargetKind) String() string {
	return string(k)
}
