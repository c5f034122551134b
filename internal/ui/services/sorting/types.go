package sorting

import "yubin/internal/domain"

// State holds sorting state
type State struct {
	CurrentOrder domain.SortOrder
}

// Event types
type SortOrderChangedEvent struct {
	OldOrder domain.SortOrder
	NewOrder domain.SortOrder
}
