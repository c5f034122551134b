package navigation

// State holds all pagination state
type State struct {
	PageSize    int
	CurrentPage int
	TotalItems  int
}

// Direction represents page movements
type Direction string

const (
	DirectionFirst Direction = "first"
	DirectionPrev  Direction = "prev"
	DirectionNext  Direction = "next"
	DirectionLast  Direction = "last"
)

// WindowSize is the number of page buttons shown at once
const WindowSize = 7

// Event types for pagination changes
type PageChangedEvent struct {
	OldPage int
	NewPage int
}

type PageSizeChangedEvent struct {
	OldSize int
	NewSize int
}
