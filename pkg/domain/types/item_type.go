package types

// ItemType represents the kind of items to list
type ItemType string

const (
	ItemTypeMergeRequest ItemType = "mr"
	ItemTypeIssue        ItemType = "issues"
)

// String returns the string representation
func (t ItemType) String() string {
	return string(t)
}

// IsValid checks if the item type is valid. Matching is case-sensitive.
func (t ItemType) IsValid() bool {
	switch t {
	case ItemTypeMergeRequest, ItemTypeIssue:
		return true
	default:
		return false
	}
}
