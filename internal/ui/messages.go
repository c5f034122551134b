package ui

import (
	"time"

	"yubin/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// tickMsg is sent on a timer for animations
type tickMsg time.Time

// searchDueMsg carries a debounce sequence whose delay has elapsed
type searchDueMsg struct {
	seq uint64
}

// resultsPagerMsg contains the result of showing results in the pager
type resultsPagerMsg struct {
	err error
}

// helpPagerMsg contains the result of showing help in the pager
type helpPagerMsg struct {
	err error
}

// clearStatusMsg clears the status line
type clearStatusMsg struct{}

// quitMsg signals that the application should quit
type quitMsg struct{}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
