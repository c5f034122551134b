package coordinator

import (
	"log"
	"strings"
	"time"

	"yubin/internal/domain"
	"yubin/internal/logic"
	"yubin/internal/ui/services/events"
	"yubin/internal/ui/services/navigation"
	"yubin/internal/ui/services/search"
	"yubin/internal/ui/services/sorting"
)

// Options configures a Coordinator
type Options struct {
	Debounce  time.Duration
	Scheduler search.Scheduler
	PageSize  int
	SortOrder domain.SortOrder
	Mode      domain.SearchMode
}

// ResultView is everything a renderer needs for one frame
type ResultView struct {
	PageRecords      []domain.Record
	IsSearching      bool
	ErrorMessage     string
	Status           domain.Status
	TotalResults     int
	CurrentPage      int
	TotalPages       int
	PageSize         int
	RangeStart       int
	RangeEnd         int
	PageWindow       []int
	ShowLastShortcut bool
	Mode             domain.SearchMode
	SortOrder        domain.SortOrder
	Query            string
	DataState        logic.LoadState
	RecordCount      int
}

// Coordinator is the search session: it owns the record store, the query
// state, the result set and pagination, and wires the services together.
// It is not safe for concurrent use; drive it from a single goroutine.
type Coordinator struct {
	// Services
	Search     *search.Service
	Sorting    *sorting.Service
	Navigation *navigation.Service

	// Dependencies
	bus   *events.Bus
	store logic.RecordStore

	results []domain.Record
	status  domain.Status
	queued  bool // a query arrived before the dataset was ready
}

// NewCoordinator creates a session over store
func NewCoordinator(store logic.RecordStore, opts Options) *Coordinator {
	bus := events.NewBus()
	c := &Coordinator{
		Search:     search.NewService(bus, opts.Scheduler, opts.Debounce),
		Sorting:    sorting.NewService(bus),
		Navigation: navigation.NewService(bus, opts.PageSize),
		bus:        bus,
		store:      store,
		status:     domain.StatusIdle,
	}

	c.Sorting.SetOrder(opts.SortOrder)
	if opts.Mode != c.Search.GetMode() {
		c.Search.SetMode(opts.Mode)
	}
	if store.State() != logic.StateLoaded {
		c.status = domain.StatusNotReady
	}

	c.subscribeToEvents()

	return c
}

// Bus returns the session's event bus for additional subscribers
func (c *Coordinator) Bus() events.EventBus {
	return c.bus
}

// SetDueFunction sets where due debounce sequences are delivered. The function
// must arrange for RunDue to be called on the session's goroutine.
func (c *Coordinator) SetDueFunction(fn func(seq uint64)) {
	c.Search.SetDueFunction(fn)
}

// subscribeToEvents sets up event handlers
func (c *Coordinator) subscribeToEvents() {
	// When the sort order changes, re-sort the displayed results in place
	c.bus.Subscribe("sorting.SortOrderChangedEvent", func(e interface{}) {
		if len(c.results) > 0 {
			c.results = c.Sorting.Sort(c.results)
		}
	})

	c.bus.Subscribe("navigation.PageSizeChangedEvent", func(e interface{}) {
		if ev, ok := e.(navigation.PageSizeChangedEvent); ok {
			log.Printf("Page size changed %d -> %d", ev.OldSize, ev.NewSize)
		}
	})
}

// Dataset lifecycle

// BeginLoad marks the dataset as loading
func (c *Coordinator) BeginLoad() error {
	if err := c.store.BeginLoad(); err != nil {
		return err
	}
	c.status = domain.StatusNotReady
	return nil
}

// CompleteLoad installs the dataset and replays a query typed while loading
func (c *Coordinator) CompleteLoad(records []domain.Record) error {
	if err := c.store.CompleteLoad(records); err != nil {
		return err
	}
	log.Printf("Dataset ready: %d records", len(records))

	c.status = domain.StatusIdle
	if c.queued {
		c.queued = false
		if strings.TrimSpace(c.Search.GetQuery()) != "" {
			c.Search.Schedule()
		}
	}
	return nil
}

// FailLoad records a fatal load failure; searching stays disabled afterwards
func (c *Coordinator) FailLoad(cause error) error {
	if err := c.store.FailLoad(cause); err != nil {
		return err
	}
	log.Printf("Dataset load failed: %v", cause)

	c.Search.Cancel()
	c.queued = false
	c.results = nil
	c.status = domain.StatusLoadFailed
	c.Navigation.SetTotalItems(0)
	return nil
}

// Rendering inputs

// OnQueryTextChange records new query text and (re)starts the debounce timer
func (c *Coordinator) OnQueryTextChange(text string) {
	c.Search.SetQuery(text)

	if c.store.State() == logic.StateLoadFailed {
		return
	}
	if strings.TrimSpace(text) == "" {
		c.clear()
		return
	}
	if c.store.State() != logic.StateLoaded {
		c.Search.Cancel()
		c.queued = true
		c.status = domain.StatusNotReady
		return
	}

	c.Search.Schedule()
}

// OnModeChange switches search mode, resetting the query and any pending search
func (c *Coordinator) OnModeChange(mode domain.SearchMode) {
	c.Search.SetMode(mode)
	c.clear()
}

// OnSortOrderChange re-sorts the current results without searching again
func (c *Coordinator) OnSortOrderChange(order domain.SortOrder) {
	c.Sorting.SetOrder(order)
}

// NextSortOrder cycles the sort order
func (c *Coordinator) NextSortOrder() domain.SortOrder {
	return c.Sorting.NextOrder()
}

// OnPageSizeChange changes the page size and returns to page 1
func (c *Coordinator) OnPageSizeChange(size int) error {
	return c.Navigation.SetPageSize(size)
}

// NextPageSize cycles the page size
func (c *Coordinator) NextPageSize() int {
	return c.Navigation.NextPageSize()
}

// OnPageChange moves to page, clamped to the available pages
func (c *Coordinator) OnPageChange(page int) int {
	return c.Navigation.GoTo(page)
}

// NavigatePage moves first/prev/next/last
func (c *Coordinator) NavigatePage(direction navigation.Direction) int {
	return c.Navigation.Navigate(direction)
}

// Execution

// RunDue executes the scheduled search identified by seq. Stale sequences are
// ignored and leave the displayed results untouched.
func (c *Coordinator) RunDue(seq uint64) bool {
	req, ok := c.Search.Claim(seq)
	if !ok {
		return false
	}
	c.execute(req)
	return true
}

// SearchNow cancels any pending search and runs the current query immediately
func (c *Coordinator) SearchNow() domain.Status {
	c.Search.Cancel()
	if c.store.State() != logic.StateLoaded {
		if c.store.State() != logic.StateLoadFailed {
			c.status = domain.StatusNotReady
		}
		return c.status
	}
	c.execute(search.Request{Query: c.Search.GetQuery(), Mode: c.Search.GetMode()})
	return c.status
}

func (c *Coordinator) execute(req search.Request) {
	records, err := c.store.Records()
	if err != nil {
		c.Search.Cancel()
		c.queued = true
		c.status = domain.StatusNotReady
		return
	}

	results, status := c.Search.Execute(req, records)
	c.results = c.Sorting.Sort(results)
	c.status = status
	c.Navigation.SetTotalItems(len(c.results))
}

func (c *Coordinator) clear() {
	c.Search.Cancel()
	c.queued = false
	c.results = nil
	c.Navigation.SetTotalItems(0)

	switch c.store.State() {
	case logic.StateLoadFailed:
		c.status = domain.StatusLoadFailed
	case logic.StateLoaded:
		c.status = domain.StatusIdle
	default:
		c.status = domain.StatusNotReady
	}
}

// Output

// Results returns the full sorted result set
func (c *Coordinator) Results() []domain.Record {
	return c.results
}

// Status returns the status a renderer should show
func (c *Coordinator) Status() domain.Status {
	if c.store.State() == logic.StateLoadFailed {
		return domain.StatusLoadFailed
	}
	if c.Search.IsSearching() {
		return domain.StatusSearching
	}
	return c.status
}

// View builds the render output for the current state
func (c *Coordinator) View() ResultView {
	page := c.Navigation.GetCurrentPage()
	size := c.Navigation.GetPageSize()
	total := c.Navigation.GetTotalPages()
	start, end := navigation.Range(page, size, len(c.results))

	v := ResultView{
		PageRecords:      c.Navigation.Slice(c.results),
		IsSearching:      c.Search.IsSearching(),
		Status:           c.Status(),
		TotalResults:     len(c.results),
		CurrentPage:      page,
		TotalPages:       total,
		PageSize:         size,
		RangeStart:       start,
		RangeEnd:         end,
		PageWindow:       navigation.Window(page, total),
		ShowLastShortcut: navigation.ShowLastShortcut(page, total),
		Mode:             c.Search.GetMode(),
		SortOrder:        c.Sorting.GetCurrentOrder(),
		Query:            c.Search.GetQuery(),
		DataState:        c.store.State(),
		RecordCount:      c.store.Len(),
	}

	switch {
	case v.Status == domain.StatusLoadFailed:
		v.ErrorMessage = domain.MsgLoadFailed
	case c.status == domain.StatusNoMatches:
		v.ErrorMessage = domain.MsgNoMatches
	case c.status == domain.StatusNotReady && c.queued:
		v.ErrorMessage = domain.MsgNotReady
	}
	return v
}
