package input

import (
	"yubin/internal/domain"
	"yubin/internal/logic"
	"yubin/internal/ui/coordinator"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	Session *coordinator.Coordinator
}

// SearchMode returns the active search mode
func (c *ModelContext) SearchMode() domain.SearchMode {
	return c.Session.Search.GetMode()
}

// CurrentPage returns the 1-based page on screen
func (c *ModelContext) CurrentPage() int {
	return c.Session.Navigation.GetCurrentPage()
}

// TotalPages returns the number of result pages
func (c *ModelContext) TotalPages() int {
	return c.Session.Navigation.GetTotalPages()
}

// HasResults reports whether the last search found anything
func (c *ModelContext) HasResults() bool {
	return len(c.Session.Results()) > 0
}

// DataReady reports whether the dataset is loaded
func (c *ModelContext) DataReady() bool {
	return c.Session.View().DataState == logic.StateLoaded
}
