package search

import "yubin/internal/domain"

// State holds search state
type State struct {
	Query     string
	Mode      domain.SearchMode
	Pending   uint64 // sequence of the scheduled search, 0 if none
	Searching bool   // a search is scheduled and has not completed yet
}

// Request is a search captured when it was scheduled
type Request struct {
	Seq   uint64
	Query string
	Mode  domain.SearchMode
}

// Event types
type SearchScheduledEvent struct {
	Seq   uint64
	Query string
	Mode  domain.SearchMode
}

type SearchCancelledEvent struct {
	Seq uint64
}

type SearchCompletedEvent struct {
	Seq        uint64
	Query      string
	Mode       domain.SearchMode
	MatchCount int
	Status     domain.Status
}
