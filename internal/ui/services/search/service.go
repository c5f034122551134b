package search

import (
	"log"
	"time"

	"yubin/internal/domain"
	"yubin/internal/ui/services/events"
)

// DefaultDebounce is the delay between the last keystroke and the search
const DefaultDebounce = 200 * time.Millisecond

// Run filters records by query in mode, preserving record order.
// An empty query yields StatusIdle; a query with no hits yields StatusNoMatches.
func Run(records []domain.Record, query string, mode domain.SearchMode) ([]domain.Record, domain.Status) {
	m := NewMatcher(query, mode)
	if m.Empty() {
		return nil, domain.StatusIdle
	}

	var results []domain.Record
	for _, r := range records {
		if m.Match(r) {
			results = append(results, r)
		}
	}
	if len(results) == 0 {
		return nil, domain.StatusNoMatches
	}
	return results, domain.StatusResults
}

// Service owns the query state and the debounce timer
type Service struct {
	state     *State
	bus       events.EventBus
	scheduler Scheduler
	delay     time.Duration
	dueFn     func(seq uint64) // called when a scheduled search becomes due
	stop      func() bool
	seq       uint64
}

// NewService creates a new search service
func NewService(bus events.EventBus, scheduler Scheduler, delay time.Duration) *Service {
	if scheduler == nil {
		scheduler = TimerScheduler{}
	}
	if delay <= 0 {
		delay = DefaultDebounce
	}
	return &Service{
		state:     &State{Mode: domain.ModeZipCode},
		bus:       bus,
		scheduler: scheduler,
		delay:     delay,
	}
}

// SetDueFunction sets the function told about due searches.
// It is called from the scheduler's goroutine and should only hand the
// sequence over to the owner's event loop.
func (s *Service) SetDueFunction(fn func(seq uint64)) {
	s.dueFn = fn
}

// GetQuery returns the current query text
func (s *Service) GetQuery() string {
	return s.state.Query
}

// GetMode returns the current search mode
func (s *Service) GetMode() domain.SearchMode {
	return s.state.Mode
}

// IsSearching reports whether a search is scheduled and not yet completed
func (s *Service) IsSearching() bool {
	return s.state.Searching
}

// PendingSeq returns the sequence of the scheduled search, 0 if none
func (s *Service) PendingSeq() uint64 {
	return s.state.Pending
}

// Delay returns the debounce delay
func (s *Service) Delay() time.Duration {
	return s.delay
}

// SetQuery records the query text without scheduling anything
func (s *Service) SetQuery(query string) {
	s.state.Query = query
}

// SetMode switches mode and resets the query
func (s *Service) SetMode(mode domain.SearchMode) {
	s.Cancel()
	s.state.Mode = mode
	s.state.Query = ""
}

// Schedule (re)starts the debounce timer for the current query.
// Any earlier pending search is cancelled first.
func (s *Service) Schedule() uint64 {
	s.Cancel()

	s.seq++
	seq := s.seq
	s.state.Pending = seq
	s.state.Searching = true

	due := s.dueFn
	s.stop = s.scheduler.AfterFunc(s.delay, func() {
		if due != nil {
			due(seq)
		}
	})

	s.bus.Publish(SearchScheduledEvent{Seq: seq, Query: s.state.Query, Mode: s.state.Mode})
	return seq
}

// Cancel stops the pending search, if any, and clears the searching flag
func (s *Service) Cancel() {
	if s.stop != nil {
		s.stop()
		s.stop = nil
	}
	if s.state.Pending != 0 {
		s.bus.Publish(SearchCancelledEvent{Seq: s.state.Pending})
	}
	s.state.Pending = 0
	s.state.Searching = false
}

// Claim takes the pending search if seq is still the latest one.
// Stale sequences return false and leave the state untouched.
func (s *Service) Claim(seq uint64) (Request, bool) {
	if seq == 0 || seq != s.state.Pending {
		return Request{}, false
	}
	s.state.Pending = 0
	s.stop = nil
	return Request{Seq: seq, Query: s.state.Query, Mode: s.state.Mode}, true
}

// Execute runs a claimed request against records and clears the searching flag
func (s *Service) Execute(req Request, records []domain.Record) ([]domain.Record, domain.Status) {
	results, status := Run(records, req.Query, req.Mode)
	s.state.Searching = false

	log.Printf("Search completed for %q (%s): %d matches", req.Query, req.Mode, len(results))

	s.bus.Publish(SearchCompletedEvent{
		Seq:        req.Seq,
		Query:      req.Query,
		Mode:       req.Mode,
		MatchCount: len(results),
		Status:     status,
	})
	return results, status
}
