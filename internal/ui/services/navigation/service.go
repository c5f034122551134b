package navigation

import (
	"fmt"

	"yubin/internal/domain"
	"yubin/internal/ui/services/events"
)

// TotalPages returns ceil(n/size), 0 when there is nothing to show
func TotalPages(n, size int) int {
	if n <= 0 || size <= 0 {
		return 0
	}
	return (n + size - 1) / size
}

// Clamp bounds page to [1, total]; with no pages it is 1
func Clamp(page, total int) int {
	if page > total {
		page = total
	}
	if page < 1 {
		page = 1
	}
	return page
}

// Page returns the slice of records for a 1-based page, clipped to the available length
func Page(records []domain.Record, size, page int) []domain.Record {
	if size <= 0 || page < 1 {
		return nil
	}
	start := (page - 1) * size
	if start >= len(records) {
		return nil
	}
	end := start + size
	if end > len(records) {
		end = len(records)
	}
	return records[start:end]
}

// Range returns the 1-based first and last item numbers shown on page
func Range(page, size, n int) (start, end int) {
	if n <= 0 || size <= 0 {
		return 0, 0
	}
	start = (page-1)*size + 1
	end = page * size
	if end > n {
		end = n
	}
	return start, end
}

// Window returns the page numbers to show as buttons around page
func Window(page, total int) []int {
	var pages []int
	if total <= WindowSize {
		for n := 1; n <= total; n++ {
			pages = append(pages, n)
		}
		return pages
	}
	for i := 0; i < WindowSize; i++ {
		var n int
		switch {
		case page <= 4:
			n = i + 1
		case page >= total-3:
			n = total - (WindowSize - 1 - i)
		default:
			n = page - 3 + i
		}
		if n > 0 && n <= total {
			pages = append(pages, n)
		}
	}
	return pages
}

// ShowLastShortcut reports whether an ellipsis and a jump to the last page are shown
func ShowLastShortcut(page, total int) bool {
	return total > WindowSize && page < total-3
}

// Service handles all pagination logic
type Service struct {
	state *State
	bus   events.EventBus
}

// NewService creates a new pagination service
func NewService(bus events.EventBus, pageSize int) *Service {
	if !domain.ValidPageSize(pageSize) {
		pageSize = domain.DefaultPageSize
	}
	return &Service{
		state: &State{
			PageSize:    pageSize,
			CurrentPage: 1,
		},
		bus: bus,
	}
}

// GetPageSize returns the current page size
func (s *Service) GetPageSize() int {
	return s.state.PageSize
}

// GetCurrentPage returns the current 1-based page
func (s *Service) GetCurrentPage() int {
	return s.state.CurrentPage
}

// GetTotalPages returns the number of pages for the current item count
func (s *Service) GetTotalPages() int {
	return TotalPages(s.state.TotalItems, s.state.PageSize)
}

// SetTotalItems updates the item count and goes back to page 1
func (s *Service) SetTotalItems(n int) {
	s.state.TotalItems = n
	s.moveTo(1)
}

// SetPageSize changes the page size and always returns to page 1
func (s *Service) SetPageSize(size int) error {
	if !domain.ValidPageSize(size) {
		return fmt.Errorf("page size %d: %w", size, domain.ErrInvalidPageSize)
	}
	oldSize := s.state.PageSize
	s.state.PageSize = size
	s.moveTo(1)

	if oldSize != size {
		s.bus.Publish(PageSizeChangedEvent{OldSize: oldSize, NewSize: size})
	}
	return nil
}

// NextPageSize cycles through the allowed page sizes
func (s *Service) NextPageSize() int {
	idx := 0
	for i, size := range domain.PageSizes {
		if size == s.state.PageSize {
			idx = i
			break
		}
	}
	next := domain.PageSizes[(idx+1)%len(domain.PageSizes)]
	_ = s.SetPageSize(next)
	return next
}

// GoTo moves to page, clamped to the available pages
func (s *Service) GoTo(page int) int {
	s.moveTo(Clamp(page, s.GetTotalPages()))
	return s.state.CurrentPage
}

// Navigate moves in a direction
func (s *Service) Navigate(direction Direction) int {
	switch direction {
	case DirectionFirst:
		return s.GoTo(1)
	case DirectionPrev:
		return s.GoTo(s.state.CurrentPage - 1)
	case DirectionNext:
		return s.GoTo(s.state.CurrentPage + 1)
	case DirectionLast:
		return s.GoTo(s.GetTotalPages())
	}
	return s.state.CurrentPage
}

// Slice returns the current page of records
func (s *Service) Slice(records []domain.Record) []domain.Record {
	return Page(records, s.state.PageSize, s.state.CurrentPage)
}

func (s *Service) moveTo(page int) {
	oldPage := s.state.CurrentPage
	s.state.CurrentPage = page
	if oldPage != page {
		s.bus.Publish(PageChangedEvent{OldPage: oldPage, NewPage: page})
	}
}
